package res

// Map transforms the successful payload, leaving failures untouched.
func Map[In, Out any](r Result[In], f func(In) Out) Result[Out] {
	if r.IsOk() {
		return Ok(f(r.Value()))
	}
	return Err[Out](r.Err())
}

// MapOr collapses r to a plain value: f over the payload on success,
// def on failure. def is already materialized; nothing is deferred.
func MapOr[In, Out any](r Result[In], def Out, f func(In) Out) Out {
	if r.IsOk() {
		return f(r.Value())
	}
	return def
}

// AndThen composes a continuation that itself returns a Result. The
// continuation's Result is returned directly, never re-wrapped; failures
// pass through without invoking f.
func AndThen[In, Out any](r Result[In], f func(In) Result[Out]) Result[Out] {
	if r.IsOk() {
		return f(r.Value())
	}
	return Err[Out](r.Err())
}

// MapErr transforms the failure reason, leaving successes untouched.
func (r Result[T]) MapErr(f func(error) error) Result[T] {
	if r.IsErr() {
		return Err[T](f(r.Err()))
	}
	return r
}

// OrElse recovers from a failure via a continuation over the reason; the
// continuation's Result is returned directly. Successes pass through
// without invoking f.
func (r Result[T]) OrElse(f func(error) Result[T]) Result[T] {
	if r.IsErr() {
		return f(r.Err())
	}
	return r
}

// TapOk runs a side effect on the payload of a success and returns r
// unchanged. Failures skip the effect.
func (r Result[T]) TapOk(f func(T)) Result[T] {
	if r.IsOk() {
		f(r.Value())
	}
	return r
}

// TapErr runs a side effect on the reason of a failure and returns r
// unchanged. Successes skip the effect.
func (r Result[T]) TapErr(f func(error)) Result[T] {
	if r.IsErr() {
		f(r.Err())
	}
	return r
}

// Finally reduces r to a concrete value via one of the two handlers.
func Finally[In, Out any](r Result[In], onOk func(In) Out, onErr func(error) Out) Out {
	if r.IsOk() {
		return onOk(r.Value())
	}
	return onErr(r.Err())
}
