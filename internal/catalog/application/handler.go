package application

import (
	"context"
	"fmt"

	pkgApp "github.com/mydrtv/backend/pkg/application"
	pkgDomain "github.com/mydrtv/backend/pkg/domain"
)

type programAddedEventHandler struct {
	logger pkgApp.AppLogger
}

func (h *programAddedEventHandler) Handle(ctx context.Context, event pkgDomain.Event) error {
	added, ok := event.(ProgramAddedEvent)
	if !ok {
		return fmt.Errorf("unexpected event type %T for %s", event, ProgramAddedEventName)
	}

	pkgApp.LogInfo(ctx, h.logger, "catalog updated", map[string]interface{}{
		"program_id": added.ProgramID,
		"title":      added.Title,
		"year":       added.Year,
		"genre":      added.Genre,
	})
	return nil
}

func NewProgramAddedEventHandler(logger pkgApp.AppLogger) pkgApp.EventHandler {
	return &programAddedEventHandler{logger: logger}
}
