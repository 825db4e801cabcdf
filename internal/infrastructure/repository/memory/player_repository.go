package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/volleyverse/fantasy-volley/internal/domain/player"
)

type PlayerRepository struct {
	mu    sync.RWMutex
	items []player.Player
	index map[string]player.Player
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	items := append([]player.Player(nil), players...)
	index := make(map[string]player.Player, len(items))
	for _, p := range items {
		index[p.ID] = p
	}

	return &PlayerRepository{
		items: items,
		index: index,
	}
}

func (r *PlayerRepository) List(_ context.Context, filter player.ListFilter) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	out := make([]player.Player, 0, len(r.items))
	for _, p := range r.items {
		if filter.Position != "" && p.Position != filter.Position {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		out = append(out, p)
	}

	switch filter.SortBy {
	case player.SortByCreditCost:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreditCost < out[j].CreditCost })
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	}

	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}

	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.index[playerID]
	if !ok {
		return player.Player{}, false, nil
	}

	return item, true, nil
}

func (r *PlayerRepository) GetByIDs(_ context.Context, playerIDs []string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(playerIDs))
	for _, id := range playerIDs {
		p, ok := r.index[id]
		if !ok {
			continue
		}
		out = append(out, p)
	}

	return out, nil
}

func (r *PlayerRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items), nil
}

func (r *PlayerRepository) InsertMany(_ context.Context, players []player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range players {
		if _, ok := r.index[p.ID]; ok {
			continue
		}
		r.items = append(r.items, p)
		r.index[p.ID] = p
	}

	return nil
}
