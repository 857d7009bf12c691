package infrastructure

import (
	"context"
	"sync"

	"github.com/mydrtv/backend/internal/users/domain"
	pkgApp "github.com/mydrtv/backend/pkg/application"
)

type InMemoryUserRepository struct {
	mu     sync.RWMutex
	data   map[string]domain.User
	logger pkgApp.AppLogger
}

func NewInMemoryUserRepository(logger pkgApp.AppLogger) *InMemoryUserRepository {
	return &InMemoryUserRepository{
		data:   make(map[string]domain.User),
		logger: logger,
	}
}

func (r *InMemoryUserRepository) Save(ctx context.Context, user domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.data[user.ID]; exists {
		return domain.ErrUserAlreadyExists
	}
	r.data[user.ID] = user

	pkgApp.LogDebug(ctx, r.logger, "user saved", map[string]interface{}{"user_id": user.ID})
	return nil
}

func (r *InMemoryUserRepository) FindByID(ctx context.Context, id string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.data[id]
	if !exists {
		return domain.User{}, domain.ErrUserNotFound
	}
	return user, nil
}
