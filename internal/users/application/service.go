package application

import (
	"context"

	"github.com/mydrtv/backend/internal/users/domain"
	pkgApp "github.com/mydrtv/backend/pkg/application"
	pkgDomain "github.com/mydrtv/backend/pkg/domain"
)

type UserService struct {
	repository  domain.UserRepository
	eventBus    pkgApp.EventBus
	idGenerator pkgDomain.IDGenerator[string]
	logger      pkgApp.AppLogger
}

func NewUserService(repository domain.UserRepository, eventBus pkgApp.EventBus, idGenerator pkgDomain.IDGenerator[string], logger pkgApp.AppLogger) *UserService {
	return &UserService{
		repository:  repository,
		eventBus:    eventBus,
		idGenerator: idGenerator,
		logger:      logger,
	}
}

// RegisterUser stores a new user and publishes user.registered. The returned
// identifier is generated here; the event is delivered asynchronously after
// this call has returned.
func (s *UserService) RegisterUser(ctx context.Context, username, email string) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	user := domain.User{
		ID:       s.idGenerator(),
		Username: username,
		Email:    email,
	}

	if err := s.repository.Save(ctx, user); err != nil {
		pkgApp.LogError(ctx, s.logger, "could not save user", err, map[string]interface{}{"username": username})
		return "", err
	}

	if err := s.eventBus.Publish(ctx, NewUserRegisteredEvent(user.ID, user.Username, user.Email)); err != nil {
		pkgApp.LogError(ctx, s.logger, "could not publish user.registered", err, map[string]interface{}{"user_id": user.ID})
		return "", err
	}

	s.logger.Info(ctx, "user registered", map[string]interface{}{"user_id": user.ID, "username": username})
	return user.ID, nil
}
