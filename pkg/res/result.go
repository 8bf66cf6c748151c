package res

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrUnspecified replaces a nil reason passed to Err, so a failure can
// never read as success through Err() == nil.
var ErrUnspecified = errors.New("unspecified failure")

type Result[T any] struct {
	id         uuid.UUID
	createdAt  time.Time
	value      T
	err        error
	isOk       bool
	wellFormed bool
}

func Ok[T any](v T) Result[T] {
	return Result[T]{
		value:      v,
		err:        nil,
		isOk:       true,
		wellFormed: true,
		createdAt:  time.Now().UTC(),
		id:         uuid.New(),
	}
}

func Err[T any](err error) Result[T] {
	if err == nil {
		err = ErrUnspecified
	}
	return Result[T]{
		err:        err,
		isOk:       false,
		wellFormed: true,
		createdAt:  time.Now().UTC(),
		id:         uuid.New(),
	}
}

// From adapts an idiomatic (value, error) pair into a Result.
func From[T any](v T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(v)
}

func (r Result[T]) Value() T {
	return r.value
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsOk() bool {
	return r.isOk
}

func (r Result[T]) IsErr() bool {
	return r.wellFormed && !r.isOk
}

// IsEmpty reports the zero value Result{}, which no constructor produces.
func (r Result[T]) IsEmpty() bool {
	return !r.wellFormed
}

// Unpack returns the underlying (value, error) pair.
func (r Result[T]) Unpack() (T, error) {
	return r.value, r.err
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}
