package usecase

import (
	"errors"
	"strings"
	"testing"

	"github.com/volleyverse/fantasy-volley/internal/domain/lineup"
	"github.com/volleyverse/fantasy-volley/internal/infrastructure/repository/memory"
)

func validLineupIDs() map[lineup.Slot]string {
	return map[lineup.Slot]string{
		lineup.SlotSetter:              "vb-s-01",
		lineup.SlotOutsideHitter:       "vb-oh-01",
		lineup.SlotOppositeHitter:      "vb-opp-01",
		lineup.SlotMiddleBlocker:       "vb-mb-01",
		lineup.SlotLibero:              "vb-l-01",
		lineup.SlotDefensiveSpecialist: "vb-ds-01",
	}
}

func TestLineupService_Save_ValidLineup(t *testing.T) {
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	lineupRepo := memory.NewLineupRepository()
	svc := NewLineupService(lineupRepo, playerRepo)

	saved, err := svc.Save(t.Context(), "user-1", validLineupIDs())
	if err != nil {
		t.Fatalf("save lineup failed: %v", err)
	}

	if saved.CreditsUsed != 100 || saved.Remaining != 0 {
		t.Fatalf("unexpected totals: used=%d remaining=%d", saved.CreditsUsed, saved.Remaining)
	}
	if saved.UpdatedAt.IsZero() {
		t.Fatal("expected updated timestamp to be set")
	}

	stored, exists, err := lineupRepo.GetByUser(t.Context(), "user-1")
	if err != nil || !exists {
		t.Fatalf("expected stored lineup, exists=%t err=%v", exists, err)
	}
	if stored.PlayerIDs[lineup.SlotSetter] != "vb-s-01" {
		t.Fatalf("unexpected stored setter: %s", stored.PlayerIDs[lineup.SlotSetter])
	}
}

func TestLineupService_Save_IncompleteLineup(t *testing.T) {
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	svc := NewLineupService(memory.NewLineupRepository(), playerRepo)

	ids := validLineupIDs()
	delete(ids, lineup.SlotLibero)

	_, err := svc.Save(t.Context(), "user-1", ids)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if !strings.Contains(err.Error(), "All 6 positions must be filled") {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestLineupService_Save_BudgetExceeded(t *testing.T) {
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	svc := NewLineupService(memory.NewLineupRepository(), playerRepo)

	ids := validLineupIDs()
	// The backup outside hitter costs 30, pushing the total to 110.
	ids[lineup.SlotOutsideHitter] = "vb-oh-02"

	_, err := svc.Save(t.Context(), "user-1", ids)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if !strings.Contains(err.Error(), "Budget exceeded. Total: 110/100") {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestLineupService_Save_UnknownPlayer(t *testing.T) {
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	svc := NewLineupService(memory.NewLineupRepository(), playerRepo)

	ids := validLineupIDs()
	ids[lineup.SlotSetter] = "vb-missing"

	_, err := svc.Save(t.Context(), "user-1", ids)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestLineupService_Save_UnknownSlot(t *testing.T) {
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	svc := NewLineupService(memory.NewLineupRepository(), playerRepo)

	ids := validLineupIDs()
	ids[lineup.Slot("coach")] = "vb-s-02"

	_, err := svc.Save(t.Context(), "user-1", ids)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestLineupService_Save_OverwritesExisting(t *testing.T) {
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	lineupRepo := memory.NewLineupRepository()
	svc := NewLineupService(lineupRepo, playerRepo)

	if _, err := svc.Save(t.Context(), "user-1", validLineupIDs()); err != nil {
		t.Fatalf("first save failed: %v", err)
	}

	ids := validLineupIDs()
	ids[lineup.SlotSetter] = "vb-s-02"
	saved, err := svc.Save(t.Context(), "user-1", ids)
	if err != nil {
		t.Fatalf("second save failed: %v", err)
	}
	if saved.CreditsUsed != 94 {
		t.Fatalf("unexpected credits after swap: %d", saved.CreditsUsed)
	}

	stored, _, err := lineupRepo.GetByUser(t.Context(), "user-1")
	if err != nil {
		t.Fatalf("get stored lineup: %v", err)
	}
	if stored.PlayerIDs[lineup.SlotSetter] != "vb-s-02" {
		t.Fatalf("expected setter replaced, got %s", stored.PlayerIDs[lineup.SlotSetter])
	}
}

func TestLineupService_Get_EmptyLineup(t *testing.T) {
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	svc := NewLineupService(memory.NewLineupRepository(), playerRepo)

	resolved, err := svc.Get(t.Context(), "user-1")
	if err != nil {
		t.Fatalf("get lineup failed: %v", err)
	}

	if resolved.CreditsUsed != 0 || resolved.CreditsRemaining != lineup.BudgetCap {
		t.Fatalf("unexpected totals: used=%d remaining=%d", resolved.CreditsUsed, resolved.CreditsRemaining)
	}
	for _, slot := range lineup.Slots() {
		if resolved.Players[slot] != nil {
			t.Fatalf("expected empty slot %s", slot)
		}
	}
}

func TestLineupService_Get_ResolvesPlayers(t *testing.T) {
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	lineupRepo := memory.NewLineupRepository()
	svc := NewLineupService(lineupRepo, playerRepo)

	if _, err := svc.Save(t.Context(), "user-1", validLineupIDs()); err != nil {
		t.Fatalf("save lineup failed: %v", err)
	}

	resolved, err := svc.Get(t.Context(), "user-1")
	if err != nil {
		t.Fatalf("get lineup failed: %v", err)
	}

	if resolved.CreditsUsed != 100 || resolved.CreditsRemaining != 0 {
		t.Fatalf("unexpected totals: used=%d remaining=%d", resolved.CreditsUsed, resolved.CreditsRemaining)
	}
	setter := resolved.Players[lineup.SlotSetter]
	if setter == nil || setter.Name != "Alex Chen" {
		t.Fatalf("unexpected setter: %+v", setter)
	}
}

func TestLineupService_Get_SkipsStaleReferences(t *testing.T) {
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	lineupRepo := memory.NewLineupRepository()
	svc := NewLineupService(lineupRepo, playerRepo)

	stored := lineup.Lineup{
		UserID: "user-1",
		PlayerIDs: map[lineup.Slot]string{
			lineup.SlotSetter: "vb-retired",
			lineup.SlotLibero: "vb-l-01",
		},
	}
	if err := lineupRepo.Upsert(t.Context(), stored); err != nil {
		t.Fatalf("seed stored lineup: %v", err)
	}

	resolved, err := svc.Get(t.Context(), "user-1")
	if err != nil {
		t.Fatalf("get lineup failed: %v", err)
	}
	if resolved.Players[lineup.SlotSetter] != nil {
		t.Fatal("expected stale setter reference to resolve as empty")
	}
	if resolved.CreditsUsed != 10 {
		t.Fatalf("unexpected credits: %d", resolved.CreditsUsed)
	}
}
