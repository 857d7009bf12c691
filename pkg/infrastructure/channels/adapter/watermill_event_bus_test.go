package adapter_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mydrtv/backend/pkg/application"
	"github.com/mydrtv/backend/pkg/domain"
	"github.com/mydrtv/backend/pkg/infrastructure"
	"github.com/mydrtv/backend/pkg/infrastructure/channels/adapter"
	zapAdapter "github.com/mydrtv/backend/pkg/infrastructure/zaplogger/adapter"
)

type testEvent struct {
	name string
	seq  int
}

func (e testEvent) EventName() string {
	return e.name
}

type recorder struct {
	mu     sync.Mutex
	events []domain.Event
}

func (r *recorder) Handle(_ context.Context, event domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *recorder) Events() []domain.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	events := make([]domain.Event, len(r.events))
	copy(events, r.events)
	return events
}

func (r *recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func TestGoChannelEventBusDeliversTypedEvents(t *testing.T) {
	bus := adapter.NewGoChannelEventBus(zapAdapter.NewNopAppLogger())
	t.Cleanup(bus.Stop)

	received := &recorder{}
	bus.Subscribe("test.event", received)

	ctx := context.Background()
	require.NoError(t, bus.Publish(ctx, testEvent{name: "test.event", seq: 1}))
	require.NoError(t, bus.Publish(ctx, testEvent{name: "test.event", seq: 2}))

	assert.Eventually(t, func() bool { return received.Len() == 2 }, time.Second, 5*time.Millisecond)

	assert.Equal(t, []domain.Event{
		testEvent{name: "test.event", seq: 1},
		testEvent{name: "test.event", seq: 2},
	}, received.Events())
}

func TestGoChannelEventBusIsolatesHandlerFailures(t *testing.T) {
	bus := adapter.NewGoChannelEventBus(zapAdapter.NewNopAppLogger())
	t.Cleanup(bus.Stop)

	bus.Subscribe("test.event", application.EventHandlerFunc(func(context.Context, domain.Event) error {
		return errors.New("boom")
	}))
	tail := &recorder{}
	bus.Subscribe("test.event", tail)

	require.NoError(t, bus.Publish(context.Background(), testEvent{name: "test.event", seq: 1}))

	assert.Eventually(t, func() bool { return tail.Len() == 1 }, time.Second, 5*time.Millisecond)
}

func TestGoChannelEventBusPublishWithoutSubscriberIsNoOp(t *testing.T) {
	bus := adapter.NewGoChannelEventBus(zapAdapter.NewNopAppLogger())
	t.Cleanup(bus.Stop)

	require.NoError(t, bus.Publish(context.Background(), testEvent{name: "unknown"}))
}

func TestGoChannelEventBusPublishAfterStop(t *testing.T) {
	bus := adapter.NewGoChannelEventBus(zapAdapter.NewNopAppLogger())
	bus.Subscribe("test.event", &recorder{})
	bus.Stop()

	err := bus.Publish(context.Background(), testEvent{name: "test.event"})
	assert.ErrorIs(t, err, infrastructure.ErrBusClosed)
}

func TestGoChannelEventBusRejectsInvalidEvents(t *testing.T) {
	bus := adapter.NewGoChannelEventBus(zapAdapter.NewNopAppLogger())
	t.Cleanup(bus.Stop)

	assert.ErrorIs(t, bus.Publish(context.Background(), nil), infrastructure.ErrInvalidEvent)
}
