package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/mydrtv/backend/pkg/application"
	"github.com/mydrtv/backend/pkg/domain"
)

var (
	// ErrInvalidEvent is returned by Publish when the value is not a usable
	// event record (nil, or without an event name).
	ErrInvalidEvent = errors.New("invalid event")

	// ErrBusClosed is returned by Publish once Stop has been called.
	ErrBusClosed = errors.New("event bus closed")
)

const (
	defaultShutdownTimeout = 1 * time.Second
	defaultPollInterval    = 100 * time.Millisecond
)

// queuedEventBus delivers published events asynchronously from a single
// worker goroutine. Events are queued FIFO in global publish order across
// all event names; handlers for one event run sequentially in subscription
// order, each behind its own failure boundary.
type queuedEventBus struct {
	logger application.AppLogger

	mu       sync.Mutex
	handlers map[string][]application.EventHandler
	queue    []domain.Event
	closed   bool

	wake     chan struct{}
	stopping chan struct{}
	done     chan struct{}

	shutdownTimeout time.Duration
	pollInterval    time.Duration
}

// Option configures a queued event bus at construction time.
type Option func(*queuedEventBus)

// WithShutdownTimeout bounds how long Stop waits for the worker to drain the
// queue and exit. Small values give fast-and-lossy shutdowns, large values
// slow-and-complete ones.
func WithShutdownTimeout(d time.Duration) Option {
	return func(bus *queuedEventBus) {
		bus.shutdownTimeout = d
	}
}

// WithPollInterval sets how often the idle worker re-checks for work and for
// the stop signal.
func WithPollInterval(d time.Duration) Option {
	return func(bus *queuedEventBus) {
		bus.pollInterval = d
	}
}

// NewQueuedEventBus creates the bus and starts its delivery worker.
func NewQueuedEventBus(logger application.AppLogger, opts ...Option) application.EventBus {
	bus := &queuedEventBus{
		logger:          logger,
		handlers:        make(map[string][]application.EventHandler),
		wake:            make(chan struct{}, 1),
		stopping:        make(chan struct{}),
		done:            make(chan struct{}),
		shutdownTimeout: defaultShutdownTimeout,
		pollInterval:    defaultPollInterval,
	}
	for _, opt := range opts {
		opt(bus)
	}

	go bus.run()

	return bus
}

// Subscribe appends the handler to the ordered list for eventName. It is
// safe to call while delivery is in progress; the handler sees events
// dequeued after registration, not events already delivered.
func (bus *queuedEventBus) Subscribe(eventName string, handler application.EventHandler) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	bus.handlers[eventName] = append(bus.handlers[eventName], handler)
}

// Publish enqueues the event for asynchronous delivery and returns without
// waiting for any handler. Safe to call from any goroutine.
func (bus *queuedEventBus) Publish(ctx context.Context, event domain.Event) error {
	if event == nil || event.EventName() == "" {
		return ErrInvalidEvent
	}

	bus.mu.Lock()
	if bus.closed {
		bus.mu.Unlock()
		return ErrBusClosed
	}
	bus.queue = append(bus.queue, event)
	bus.mu.Unlock()

	select {
	case bus.wake <- struct{}{}:
	default:
	}

	bus.logger.Debug(ctx, "event queued", map[string]interface{}{
		"event_name": event.EventName(),
	})

	return nil
}

// Stop closes the bus to further publishes and waits up to the shutdown
// timeout for the worker to drain the events already queued. It returns when
// the queue is drained or the timeout elapses, whichever comes first; a
// stuck handler never blocks Stop's return, though the worker itself stays
// blocked in that case.
func (bus *queuedEventBus) Stop() {
	bus.mu.Lock()
	alreadyClosed := bus.closed
	bus.closed = true
	bus.mu.Unlock()

	if !alreadyClosed {
		close(bus.stopping)
	}

	select {
	case <-bus.done:
	case <-time.After(bus.shutdownTimeout):
		bus.logger.Error(context.Background(), "event bus shutdown timed out", map[string]interface{}{
			"dropped_events": bus.pending(),
		})
	}
}

func (bus *queuedEventBus) run() {
	defer close(bus.done)

	for {
		event, ok := bus.dequeue()
		if ok {
			bus.deliver(event)
			continue
		}

		select {
		case <-bus.wake:
		case <-bus.stopping:
			bus.drain()
			return
		case <-time.After(bus.pollInterval):
		}
	}
}

// drain delivers whatever is still queued at shutdown. The queue is frozen
// at this point since Publish rejects once the bus is closed.
func (bus *queuedEventBus) drain() {
	for {
		event, ok := bus.dequeue()
		if !ok {
			return
		}
		bus.deliver(event)
	}
}

func (bus *queuedEventBus) dequeue() (domain.Event, bool) {
	bus.mu.Lock()
	defer bus.mu.Unlock()

	if len(bus.queue) == 0 {
		return nil, false
	}
	event := bus.queue[0]
	bus.queue = bus.queue[1:]
	return event, true
}

func (bus *queuedEventBus) pending() int {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	return len(bus.queue)
}

// deliver invokes every handler subscribed to the event's name at dequeue
// time, strictly in subscription order.
func (bus *queuedEventBus) deliver(event domain.Event) {
	eventName := event.EventName()

	bus.mu.Lock()
	handlers := make([]application.EventHandler, len(bus.handlers[eventName]))
	copy(handlers, bus.handlers[eventName])
	bus.mu.Unlock()

	ctx := context.Background()

	if len(handlers) == 0 {
		bus.logger.Debug(ctx, "no handler subscribed for event", map[string]interface{}{
			"event_name": eventName,
		})
		return
	}

	for i, handler := range handlers {
		bus.invoke(ctx, eventName, i, handler, event)
	}
}

// invoke runs one handler behind its own failure boundary. A failing or
// panicking handler must not prevent delivery to the handlers after it, nor
// stall the worker loop.
func (bus *queuedEventBus) invoke(ctx context.Context, eventName string, index int, handler application.EventHandler, event domain.Event) {
	defer func() {
		if r := recover(); r != nil {
			bus.logger.Error(ctx, "event handler panicked", map[string]interface{}{
				"event_name": eventName,
				"handler":    index,
				"panic":      fmt.Sprintf("%v", r),
			})
		}
	}()

	if err := handler.Handle(ctx, event); err != nil {
		bus.logger.Error(ctx, "event handler failed", map[string]interface{}{
			"event_name": eventName,
			"handler":    index,
			"error":      err,
		})
	}
}
