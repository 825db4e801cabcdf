package player

import "context"

// Sort fields accepted by List.
const (
	SortByName       = "name"
	SortByCreditCost = "creditCost"
)

// ListFilter narrows and orders a roster listing. Zero values mean
// "no constraint"; Search matches name case-insensitively.
type ListFilter struct {
	Position Position
	Search   string
	SortBy   string
	Limit    int
}

// Repository describes player persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]Player, error)
	GetByID(ctx context.Context, playerID string) (Player, bool, error)
	GetByIDs(ctx context.Context, playerIDs []string) ([]Player, error)
	Count(ctx context.Context) (int, error)
	InsertMany(ctx context.Context, players []Player) error
}
