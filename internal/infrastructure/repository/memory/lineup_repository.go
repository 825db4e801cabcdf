package memory

import (
	"context"
	"sync"

	"github.com/volleyverse/fantasy-volley/internal/domain/lineup"
)

type LineupRepository struct {
	mu    sync.RWMutex
	items map[string]lineup.Lineup
}

func NewLineupRepository() *LineupRepository {
	return &LineupRepository{items: make(map[string]lineup.Lineup)}
}

func (r *LineupRepository) GetByUser(_ context.Context, userID string) (lineup.Lineup, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[userID]
	if !ok {
		return lineup.Lineup{}, false, nil
	}

	return cloneLineup(item), true, nil
}

func (r *LineupRepository) Upsert(_ context.Context, item lineup.Lineup) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.UserID] = cloneLineup(item)
	return nil
}

func cloneLineup(item lineup.Lineup) lineup.Lineup {
	copied := item
	copied.PlayerIDs = make(map[lineup.Slot]string, len(item.PlayerIDs))
	for slot, playerID := range item.PlayerIDs {
		copied.PlayerIDs[slot] = playerID
	}
	return copied
}
