package memory

import (
	"context"
	"sync"

	"rideshare/internal/domain/entities"
)

type UserRepository struct {
	mu    sync.RWMutex
	users map[int]*entities.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users: make(map[int]*entities.User),
	}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.ID]; exists {
		return ErrAlreadyExists
	}
	r.users[user.ID] = user
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.users[id]
	if !exists {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// List returns all users in ID order.
func (r *UserRepository) List(ctx context.Context) ([]*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return sortedValues(r.users), nil
}
