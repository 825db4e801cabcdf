package lineup

import "context"

// Repository exposes lineup persistence operations.
type Repository interface {
	GetByUser(ctx context.Context, userID string) (Lineup, bool, error)
	Upsert(ctx context.Context, item Lineup) error
}
