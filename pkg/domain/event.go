package domain

// Event describes a state change that already happened. Implementations are
// immutable value types; EventName is the routing key used by the event bus.
type Event interface {
	EventName() string
}
