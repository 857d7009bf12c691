package application

import (
	"context"
	"fmt"

	pkgApp "github.com/mydrtv/backend/pkg/application"
	pkgDomain "github.com/mydrtv/backend/pkg/domain"
)

type userRegisteredEventHandler struct {
	logger pkgApp.AppLogger
}

func (h *userRegisteredEventHandler) Handle(ctx context.Context, event pkgDomain.Event) error {
	registered, ok := event.(UserRegisteredEvent)
	if !ok {
		return fmt.Errorf("unexpected event type %T for %s", event, UserRegisteredEventName)
	}

	pkgApp.LogInfo(ctx, h.logger, "welcome mail queued", map[string]interface{}{
		"user_id":  registered.UserID,
		"username": registered.Username,
		"email":    registered.Email,
	})
	return nil
}

func NewUserRegisteredEventHandler(logger pkgApp.AppLogger) pkgApp.EventHandler {
	return &userRegisteredEventHandler{logger: logger}
}
