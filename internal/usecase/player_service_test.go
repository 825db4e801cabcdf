package usecase

import (
	"errors"
	"testing"

	"github.com/volleyverse/fantasy-volley/internal/domain/player"
	"github.com/volleyverse/fantasy-volley/internal/infrastructure/repository/memory"
)

func TestPlayerService_ListPlayers_FilterByPosition(t *testing.T) {
	svc := NewPlayerService(memory.NewPlayerRepository(memory.SeedPlayers()))

	items, err := svc.ListPlayers(t.Context(), player.ListFilter{Position: player.PositionLibero})
	if err != nil {
		t.Fatalf("list players failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 liberos, got %d", len(items))
	}
	for _, item := range items {
		if item.Position != player.PositionLibero {
			t.Fatalf("unexpected position %s for %s", item.Position, item.Name)
		}
	}
}

func TestPlayerService_ListPlayers_SearchIsCaseInsensitive(t *testing.T) {
	svc := NewPlayerService(memory.NewPlayerRepository(memory.SeedPlayers()))

	items, err := svc.ListPlayers(t.Context(), player.ListFilter{Search: "alex"})
	if err != nil {
		t.Fatalf("list players failed: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Alex Chen" {
		t.Fatalf("unexpected search result: %+v", items)
	}
}

func TestPlayerService_ListPlayers_SortByCreditCost(t *testing.T) {
	svc := NewPlayerService(memory.NewPlayerRepository(memory.SeedPlayers()))

	items, err := svc.ListPlayers(t.Context(), player.ListFilter{SortBy: player.SortByCreditCost})
	if err != nil {
		t.Fatalf("list players failed: %v", err)
	}
	for i := 1; i < len(items); i++ {
		if items[i-1].CreditCost > items[i].CreditCost {
			t.Fatalf("players not sorted by cost at %d: %d > %d", i, items[i-1].CreditCost, items[i].CreditCost)
		}
	}
}

func TestPlayerService_ListPlayers_UnknownPositionMatchesNothing(t *testing.T) {
	svc := NewPlayerService(memory.NewPlayerRepository(memory.SeedPlayers()))

	items, err := svc.ListPlayers(t.Context(), player.ListFilter{Position: player.Position("GK")})
	if err != nil {
		t.Fatalf("list players failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no players for unknown position, got %d", len(items))
	}
}

func TestPlayerService_ListPlayers_UnknownSortKeyFallsBackToName(t *testing.T) {
	svc := NewPlayerService(memory.NewPlayerRepository(memory.SeedPlayers()))

	items, err := svc.ListPlayers(t.Context(), player.ListFilter{SortBy: "jerseyNumber"})
	if err != nil {
		t.Fatalf("list players failed: %v", err)
	}
	if len(items) == 0 {
		t.Fatal("expected players")
	}
	for i := 1; i < len(items); i++ {
		if items[i-1].Name > items[i].Name {
			t.Fatalf("players not sorted by name at %d: %s > %s", i, items[i-1].Name, items[i].Name)
		}
	}
}

func TestPlayerService_GetPlayerByID(t *testing.T) {
	svc := NewPlayerService(memory.NewPlayerRepository(memory.SeedPlayers()))

	item, err := svc.GetPlayerByID(t.Context(), "vb-oh-01")
	if err != nil {
		t.Fatalf("get player failed: %v", err)
	}
	if item.Name != "Jordan Smith" {
		t.Fatalf("unexpected player: %s", item.Name)
	}
}

func TestPlayerService_GetPlayerByID_NotFound(t *testing.T) {
	svc := NewPlayerService(memory.NewPlayerRepository(memory.SeedPlayers()))

	_, err := svc.GetPlayerByID(t.Context(), "vb-unknown")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
