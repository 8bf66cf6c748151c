package res

import "errors"

// ErrMustErrOnOk is the panic value raised by MustErr on a success.
var ErrMustErrOnOk = errors.New("called MustErr on an Ok result")

// MustValue returns the payload of a success. On a failure it panics with
// the stored reason itself, identity preserved, so a recover() sees the
// original error value. Panics with ErrNotResult on the zero value.
func (r Result[T]) MustValue() T {
	if r.IsEmpty() {
		panic(ErrNotResult)
	}
	if r.IsErr() {
		panic(r.err)
	}
	return r.value
}

// ValueOr returns the payload of a success, or def on failure. def is
// evaluated eagerly by the caller.
func (r Result[T]) ValueOr(def T) T {
	if r.IsOk() {
		return r.value
	}
	return def
}

// ValueOrElse returns the payload of a success; on failure the thunk is
// invoked and its value returned. The thunk runs only on failure.
func (r Result[T]) ValueOrElse(thunk func() T) T {
	if r.IsOk() {
		return r.value
	}
	return thunk()
}

// MustErr returns the reason of a failure. Calling it on a success is a
// programmer error and panics with ErrMustErrOnOk; the zero value panics
// with ErrNotResult.
func (r Result[T]) MustErr() error {
	if r.IsEmpty() {
		panic(ErrNotResult)
	}
	if r.IsOk() {
		panic(ErrMustErrOnOk)
	}
	return r.err
}
