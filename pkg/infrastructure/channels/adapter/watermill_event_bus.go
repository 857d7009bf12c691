package adapter

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/mydrtv/backend/pkg/application"
	"github.com/mydrtv/backend/pkg/domain"
	"github.com/mydrtv/backend/pkg/infrastructure"
	watermillAdapter "github.com/mydrtv/backend/pkg/infrastructure/watermill/adapter"
)

const eventNameMetadataKey = "event_name"

// GoChannelEventBus is an EventBus backed by watermill's in-process
// gochannel transport: one topic per event name, one consumer goroutine per
// topic. Unlike the queued bus, ordering holds per event name rather than
// across the whole bus.
type GoChannelEventBus struct {
	pubSub *gochannel.GoChannel
	logger application.AppLogger

	mu       sync.RWMutex
	handlers map[string][]application.EventHandler
	inflight map[string]domain.Event
	closed   bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewGoChannelEventBus(logger application.AppLogger) *GoChannelEventBus {
	ctx, cancel := context.WithCancel(context.Background())

	return &GoChannelEventBus{
		pubSub:   gochannel.NewGoChannel(gochannel.Config{}, watermillAdapter.NewWatermillLoggerAdapter(logger)),
		logger:   logger,
		handlers: make(map[string][]application.EventHandler),
		inflight: make(map[string]domain.Event),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Subscribe appends the handler to the list for eventName, opening the
// underlying topic subscription on first use.
func (bus *GoChannelEventBus) Subscribe(eventName string, handler application.EventHandler) {
	bus.mu.Lock()
	defer bus.mu.Unlock()

	if bus.closed {
		bus.logger.Error(bus.ctx, "subscribe on closed event bus", map[string]interface{}{
			"event_name": eventName,
		})
		return
	}

	first := len(bus.handlers[eventName]) == 0
	bus.handlers[eventName] = append(bus.handlers[eventName], handler)

	if !first {
		return
	}

	messages, err := bus.pubSub.Subscribe(bus.ctx, eventName)
	if err != nil {
		bus.logger.Error(bus.ctx, "could not subscribe to topic", map[string]interface{}{
			"event_name": eventName,
			"error":      err,
		})
		return
	}

	bus.wg.Add(1)
	go bus.consume(eventName, messages)
}

// Publish serializes the event onto the gochannel topic named after the
// event and returns without waiting for handlers.
func (bus *GoChannelEventBus) Publish(ctx context.Context, event domain.Event) error {
	if event == nil || event.EventName() == "" {
		return infrastructure.ErrInvalidEvent
	}
	eventName := event.EventName()

	bus.mu.Lock()
	if bus.closed {
		bus.mu.Unlock()
		return infrastructure.ErrBusClosed
	}
	subscribed := len(bus.handlers[eventName]) > 0
	bus.mu.Unlock()

	if !subscribed {
		bus.logger.Debug(ctx, "no handler subscribed for event", map[string]interface{}{
			"event_name": eventName,
		})
		return nil
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set(eventNameMetadataKey, eventName)

	// The typed event rides alongside the message so handlers receive the
	// original value, not a decoded copy.
	bus.mu.Lock()
	bus.inflight[msg.UUID] = event
	bus.mu.Unlock()

	if err := bus.pubSub.Publish(eventName, msg); err != nil {
		bus.mu.Lock()
		delete(bus.inflight, msg.UUID)
		bus.mu.Unlock()
		return err
	}

	return nil
}

// Stop closes the transport and waits for the consumer goroutines to finish.
func (bus *GoChannelEventBus) Stop() {
	bus.mu.Lock()
	if bus.closed {
		bus.mu.Unlock()
		return
	}
	bus.closed = true
	bus.mu.Unlock()

	if err := bus.pubSub.Close(); err != nil {
		bus.logger.Error(context.Background(), "error closing gochannel pubsub", map[string]interface{}{
			"error": err,
		})
	}
	bus.cancel()
	bus.wg.Wait()
}

func (bus *GoChannelEventBus) consume(eventName string, messages <-chan *message.Message) {
	defer bus.wg.Done()

	for msg := range messages {
		event := bus.takeInflight(msg.UUID)
		msg.Ack()
		if event == nil {
			continue
		}

		bus.mu.RLock()
		handlers := make([]application.EventHandler, len(bus.handlers[eventName]))
		copy(handlers, bus.handlers[eventName])
		bus.mu.RUnlock()

		for i, handler := range handlers {
			bus.invoke(eventName, i, handler, event)
		}
	}
}

func (bus *GoChannelEventBus) takeInflight(uuid string) domain.Event {
	bus.mu.Lock()
	defer bus.mu.Unlock()

	event, ok := bus.inflight[uuid]
	if !ok {
		return nil
	}
	delete(bus.inflight, uuid)
	return event
}

func (bus *GoChannelEventBus) invoke(eventName string, index int, handler application.EventHandler, event domain.Event) {
	defer func() {
		if r := recover(); r != nil {
			bus.logger.Error(bus.ctx, "event handler panicked", map[string]interface{}{
				"event_name": eventName,
				"handler":    index,
				"panic":      r,
			})
		}
	}()

	if err := handler.Handle(bus.ctx, event); err != nil {
		bus.logger.Error(bus.ctx, "event handler failed", map[string]interface{}{
			"event_name": eventName,
			"handler":    index,
			"error":      err,
		})
	}
}
