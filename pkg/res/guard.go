package res

import "errors"

// ErrNotResult is the panic value raised by AssertResult and MustValue /
// MustErr when handed a value that is not a well-formed Result.
var ErrNotResult = errors.New("not a result")

// IsResult reports whether v is a well-formed Result of any payload type.
// It never panics; the zero value Result{} and non-Result values both
// report false. Useful at dynamic trust boundaries (deserialization,
// `any`-typed plumbing) where the static guarantee does not reach.
func IsResult(v any) bool {
	r, ok := v.(anyResult)
	return ok && !r.IsEmpty()
}

// AssertResult returns v unchanged as a Result[T], panicking with
// ErrNotResult when v is not a well-formed Result of that payload type.
func AssertResult[T any](v any) Result[T] {
	r, ok := v.(Result[T])
	if !ok || r.IsEmpty() {
		panic(ErrNotResult)
	}
	return r
}
