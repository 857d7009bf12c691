package users

import (
	"github.com/mydrtv/backend/internal/users/application"
	"github.com/mydrtv/backend/internal/users/domain"
	pkgApp "github.com/mydrtv/backend/pkg/application"
	pkgDomain "github.com/mydrtv/backend/pkg/domain"
)

type UserSlice struct {
	service *application.UserService
}

func NewUserSlice(
	eventBus pkgApp.EventBus,
	idGenerator pkgDomain.IDGenerator[string],
	logger pkgApp.AppLogger,
	repository domain.UserRepository,
) *UserSlice {
	service := application.NewUserService(repository, eventBus, idGenerator, logger)

	eventBus.Subscribe(application.UserRegisteredEventName, application.NewUserRegisteredEventHandler(logger))

	return &UserSlice{service: service}
}

func (s *UserSlice) Service() *application.UserService {
	return s.service
}
