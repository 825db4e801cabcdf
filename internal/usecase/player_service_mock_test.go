package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/volleyverse/fantasy-volley/internal/domain/player"
)

type mockPlayerRepository struct {
	mock.Mock
}

func (m *mockPlayerRepository) List(ctx context.Context, filter player.ListFilter) ([]player.Player, error) {
	args := m.Called(ctx, filter)
	items, _ := args.Get(0).([]player.Player)
	return items, args.Error(1)
}

func (m *mockPlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	args := m.Called(ctx, playerID)
	item, _ := args.Get(0).(player.Player)
	return item, args.Bool(1), args.Error(2)
}

func (m *mockPlayerRepository) GetByIDs(ctx context.Context, playerIDs []string) ([]player.Player, error) {
	args := m.Called(ctx, playerIDs)
	items, _ := args.Get(0).([]player.Player)
	return items, args.Error(1)
}

func (m *mockPlayerRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *mockPlayerRepository) InsertMany(ctx context.Context, players []player.Player) error {
	args := m.Called(ctx, players)
	return args.Error(0)
}

func TestPlayerService_ListPlayers_PropagatesRepositoryFailure(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := &mockPlayerRepository{}
	repo.Test(t)

	repo.
		On("List", mock.Anything, mock.MatchedBy(func(f player.ListFilter) bool { return f.SortBy == player.SortByName })).
		Return(nil, fmt.Errorf("connection reset")).
		Once()

	service := NewPlayerService(repo)
	if _, err := service.ListPlayers(ctx, player.ListFilter{}); err == nil {
		t.Fatalf("expected repository failure to propagate")
	}
	repo.AssertExpectations(t)
}

func TestPlayerService_GetPlayerByID_MapsMissingToNotFound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := &mockPlayerRepository{}
	repo.Test(t)

	repo.
		On("GetByID", mock.Anything, "ghost").
		Return(player.Player{}, false, nil).
		Once()

	service := NewPlayerService(repo)
	_, err := service.GetPlayerByID(ctx, "ghost")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	repo.AssertExpectations(t)
}
