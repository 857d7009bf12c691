package domain

// Query is a read-only request dispatched on the query bus.
type Query[T any] interface {
	QueryName() string
	Payload() T
}
