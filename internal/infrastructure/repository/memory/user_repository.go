package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/volleyverse/fantasy-volley/internal/domain/user"
)

type UserRepository struct {
	mu      sync.RWMutex
	byID    map[string]user.User
	byEmail map[string]string
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:    make(map[string]user.User),
		byEmail: make(map[string]string),
	}
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return user.User{}, false, nil
	}

	return r.byID[id], true, nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[id]
	if !ok {
		return user.User{}, false, nil
	}

	return item, true, nil
}

func (r *UserRepository) Insert(_ context.Context, item user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[item.ID] = item
	r.byEmail[strings.ToLower(item.Email)] = item.ID
	return nil
}
