package user

import "context"

// Repository abstracts account persistence. Lookups report existence
// explicitly so callers can distinguish "absent" from storage failures.
type Repository interface {
	GetByEmail(ctx context.Context, email string) (User, bool, error)
	GetByID(ctx context.Context, id string) (User, bool, error)
	Insert(ctx context.Context, item User) error
}
