package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/volleyverse/fantasy-volley/internal/domain/player"
)

// maxPlayerListSize caps catalog responses regardless of filters.
const maxPlayerListSize = 100

type PlayerService struct {
	playerRepo player.Repository
}

func NewPlayerService(playerRepo player.Repository) *PlayerService {
	return &PlayerService{playerRepo: playerRepo}
}

// ListPlayers returns the catalog filtered by position and name search,
// sorted by name or credit cost.
func (s *PlayerService) ListPlayers(ctx context.Context, filter player.ListFilter) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayers")
	defer span.End()

	filter.Search = strings.TrimSpace(filter.Search)
	filter.SortBy = strings.TrimSpace(filter.SortBy)

	// Unknown positions pass through and match nothing; unknown sort keys
	// fall back to name ordering. Catalog reads never reject a filter.
	if filter.SortBy != player.SortByCreditCost {
		filter.SortBy = player.SortByName
	}
	if filter.Limit <= 0 || filter.Limit > maxPlayerListSize {
		filter.Limit = maxPlayerListSize
	}

	items, err := s.playerRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	return items, nil
}

func (s *PlayerService) GetPlayerByID(ctx context.Context, playerID string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayerByID")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	item, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player by id: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: Player not found", ErrNotFound)
	}

	return item, nil
}
