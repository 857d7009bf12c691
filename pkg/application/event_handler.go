package application

import (
	"context"

	"github.com/mydrtv/backend/pkg/domain"
)

// EventHandler reacts to events of one name delivered by the event bus.
type EventHandler interface {
	Handle(ctx context.Context, event domain.Event) error
}

// EventHandlerFunc adapts a plain function to the EventHandler interface.
type EventHandlerFunc func(ctx context.Context, event domain.Event) error

func (f EventHandlerFunc) Handle(ctx context.Context, event domain.Event) error {
	return f(ctx, event)
}

// EventBus routes published events to the handlers subscribed to their name.
// Publish is fire-and-forget: it returns before any handler has run, and
// handler failures are never reported back to the publisher.
type EventBus interface {
	Subscribe(eventName string, handler EventHandler)
	Publish(ctx context.Context, event domain.Event) error
	Stop()
}
