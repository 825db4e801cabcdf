package usecase

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/volleyverse/fantasy-volley/internal/domain/player"
	"github.com/volleyverse/fantasy-volley/internal/infrastructure/repository/memory"
	"github.com/volleyverse/fantasy-volley/internal/platform/id"
	"github.com/volleyverse/fantasy-volley/internal/platform/logging"
)

type stubImageFetcher struct {
	calls atomic.Int32
	fail  bool
}

func (f *stubImageFetcher) FetchImage(_ context.Context, rawURL string) (string, error) {
	f.calls.Add(1)
	if f.fail {
		return "", fmt.Errorf("provider status=503")
	}
	return "aW1hZ2U=", nil
}

func TestSeedService_SeedsFullRoster(t *testing.T) {
	playerRepo := memory.NewPlayerRepository(nil)
	fetcher := &stubImageFetcher{}
	svc := NewSeedService(playerRepo, fetcher, id.NewUUIDGenerator(), logging.NewNop(), 4)

	inserted, err := svc.Seed(t.Context())
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if inserted != 35 {
		t.Fatalf("expected 35 seeded players, got %d", inserted)
	}
	if got := fetcher.calls.Load(); got != 35 {
		t.Fatalf("expected 35 portrait fetches, got %d", got)
	}

	items, err := playerRepo.List(t.Context(), player.ListFilter{Limit: 100})
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if len(items) != 35 {
		t.Fatalf("expected 35 players in catalog, got %d", len(items))
	}
	for _, item := range items {
		if item.ID == "" {
			t.Fatalf("player %s seeded without id", item.Name)
		}
		if item.ImageBase64 == "" {
			t.Fatalf("player %s seeded without portrait", item.Name)
		}
	}
}

func TestSeedService_IsIdempotent(t *testing.T) {
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	svc := NewSeedService(playerRepo, &stubImageFetcher{}, id.NewUUIDGenerator(), logging.NewNop(), 4)

	inserted, err := svc.Seed(t.Context())
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if inserted != 0 {
		t.Fatalf("expected no inserts on populated catalog, got %d", inserted)
	}
}

func TestSeedService_ToleratesPortraitFailures(t *testing.T) {
	playerRepo := memory.NewPlayerRepository(nil)
	svc := NewSeedService(playerRepo, &stubImageFetcher{fail: true}, id.NewUUIDGenerator(), logging.NewNop(), 4)

	inserted, err := svc.Seed(t.Context())
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if inserted != 35 {
		t.Fatalf("expected 35 seeded players, got %d", inserted)
	}

	items, err := playerRepo.List(t.Context(), player.ListFilter{Limit: 100})
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	for _, item := range items {
		if item.ImageBase64 != "" {
			t.Fatalf("expected empty portrait for %s after fetch failure", item.Name)
		}
	}
}

func TestSeedService_SeedsWithoutFetcher(t *testing.T) {
	playerRepo := memory.NewPlayerRepository(nil)
	svc := NewSeedService(playerRepo, nil, id.NewUUIDGenerator(), logging.NewNop(), 0)

	inserted, err := svc.Seed(t.Context())
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if inserted != 35 {
		t.Fatalf("expected 35 seeded players, got %d", inserted)
	}
}
