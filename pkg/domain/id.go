package domain

// IDGenerator produces a new unique identifier per call.
type IDGenerator[T any] func() T
