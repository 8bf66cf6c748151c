package res

import "time"

type ValueProvider[T any] interface {
	// Value returns the successful payload
	Value() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithErr defines an interface for types that can return a value or an error
type WithErr[T any] interface {
	ValueProvider[T]
	// Err returns the error if the operation failed
	Err() error
	// IsOk returns true if the operation was successful
	IsOk() bool
}

// anyResult is the type-parameter-free method set shared by every Result[T]
// instantiation; it is what boundary checks over `any` can see.
type anyResult interface {
	IsOk() bool
	IsErr() bool
	IsEmpty() bool
	Err() error
}
