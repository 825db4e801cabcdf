package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/volleyverse/fantasy-volley/internal/domain/lineup"
	"github.com/volleyverse/fantasy-volley/internal/domain/player"
)

// ResolvedLineup is a stored lineup joined against the player catalog.
// Unfilled slots map to nil entries.
type ResolvedLineup struct {
	Players          map[lineup.Slot]*player.Player
	CreditsUsed      int
	CreditsRemaining int
	UpdatedAt        time.Time
}

type LineupService struct {
	lineupRepo lineup.Repository
	playerRepo player.Repository
	now        func() time.Time
}

func NewLineupService(lineupRepo lineup.Repository, playerRepo player.Repository) *LineupService {
	return &LineupService{
		lineupRepo: lineupRepo,
		playerRepo: playerRepo,
		now:        time.Now,
	}
}

// Get returns the caller's saved lineup resolved against the catalog.
// A user with no saved lineup gets empty slots and the full budget.
func (s *LineupService) Get(ctx context.Context, userID string) (ResolvedLineup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.Get")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ResolvedLineup{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	stored, exists, err := s.lineupRepo.GetByUser(ctx, userID)
	if err != nil {
		return ResolvedLineup{}, fmt.Errorf("get lineup by user: %w", err)
	}
	if !exists {
		return ResolvedLineup{
			Players:          emptySlots(),
			CreditsRemaining: lineup.BudgetCap,
		}, nil
	}

	// Tolerate stale references after a reseed: unknown players leave
	// their slot empty instead of failing the read.
	selection, err := s.resolveSelection(ctx, stored.PlayerIDs, false)
	if err != nil {
		return ResolvedLineup{}, err
	}

	resolved := ResolvedLineup{
		Players:          emptySlots(),
		CreditsUsed:      selection.CreditsUsed(),
		CreditsRemaining: selection.Remaining(),
		UpdatedAt:        stored.UpdatedAt,
	}
	for _, slot := range lineup.Slots() {
		resolved.Players[slot] = selection.Player(slot)
	}

	return resolved, nil
}

// Save validates and persists the caller's lineup. The lineup must
// fill every slot and stay within the credit budget.
func (s *LineupService) Save(ctx context.Context, userID string, playerIDs map[lineup.Slot]string) (lineup.Lineup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.Save")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return lineup.Lineup{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	for slot := range playerIDs {
		if !lineup.ValidSlot(slot) {
			return lineup.Lineup{}, fmt.Errorf("%w: unknown lineup slot %q", ErrInvalidInput, slot)
		}
	}

	selection, err := s.resolveSelection(ctx, playerIDs, true)
	if err != nil {
		return lineup.Lineup{}, err
	}

	if !selection.Complete() {
		return lineup.Lineup{}, fmt.Errorf("%w: All 6 positions must be filled", ErrInvalidInput)
	}
	if selection.CreditsUsed() > lineup.BudgetCap {
		return lineup.Lineup{}, fmt.Errorf("%w: Budget exceeded. Total: %d/%d", ErrInvalidInput, selection.CreditsUsed(), lineup.BudgetCap)
	}

	item := lineup.Lineup{
		UserID:      userID,
		PlayerIDs:   selection.PlayerIDs(),
		CreditsUsed: selection.CreditsUsed(),
		Remaining:   selection.Remaining(),
		UpdatedAt:   s.now().UTC(),
	}
	if err := s.lineupRepo.Upsert(ctx, item); err != nil {
		return lineup.Lineup{}, fmt.Errorf("upsert lineup: %w", err)
	}

	return item, nil
}

// resolveSelection loads the referenced players and assigns them into
// a fresh selection, which recomputes the credit totals.
func (s *LineupService) resolveSelection(ctx context.Context, playerIDs map[lineup.Slot]string, strict bool) (*lineup.Selection, error) {
	ids := make([]string, 0, len(playerIDs))
	for _, playerID := range playerIDs {
		if playerID = strings.TrimSpace(playerID); playerID != "" {
			ids = append(ids, playerID)
		}
	}

	byID := make(map[string]player.Player, len(ids))
	if len(ids) > 0 {
		items, err := s.playerRepo.GetByIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("get players by ids: %w", err)
		}
		for _, item := range items {
			byID[item.ID] = item
		}
	}

	selection := lineup.NewSelection()
	for slot, playerID := range playerIDs {
		playerID = strings.TrimSpace(playerID)
		if playerID == "" {
			continue
		}
		item, ok := byID[playerID]
		if !ok {
			if !strict {
				continue
			}
			return nil, fmt.Errorf("%w: Player not found: %s", ErrInvalidInput, playerID)
		}
		if err := selection.Assign(slot, &item); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	return selection, nil
}

func emptySlots() map[lineup.Slot]*player.Player {
	out := make(map[lineup.Slot]*player.Player, len(lineup.Slots()))
	for _, slot := range lineup.Slots() {
		out[slot] = nil
	}
	return out
}
