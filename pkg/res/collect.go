package res

import "errors"

// Collect turns a slice of Results into a Result of a slice. The first
// failure in slice order wins and later elements are discarded, errors
// included. An empty input collects to Ok of an empty slice.
func Collect[T any](rs []Result[T]) Result[[]T] {
	values := make([]T, 0, len(rs))
	for _, r := range rs {
		if !r.IsOk() {
			return Err[[]T](r.Err())
		}
		values = append(values, r.Value())
	}
	return Ok(values)
}

// CollectAll is Collect without the short circuit: every failure reason is
// accumulated via errors.Join, in slice order. GetErrors recovers the
// individual reasons from the joined error.
func CollectAll[T any](rs []Result[T]) Result[[]T] {
	values := make([]T, 0, len(rs))
	var err error
	for _, r := range rs {
		if !r.IsOk() {
			e := GetErrors(err)
			e = append(e, r.Err())
			err = errors.Join(e...)
			continue
		}
		values = append(values, r.Value())
	}
	if err != nil {
		return Err[[]T](err)
	}
	return Ok(values)
}

// Traverse maps items through a fallible function and collects the
// outcomes, failing fast on the first failure.
func Traverse[In, Out any](items []In, f func(In) Result[Out]) Result[[]Out] {
	values := make([]Out, 0, len(items))
	for _, item := range items {
		r := f(item)
		if !r.IsOk() {
			return Err[[]Out](r.Err())
		}
		values = append(values, r.Value())
	}
	return Ok(values)
}

// Partition splits Results into payloads and reasons, preserving order
// within each side. Nothing fails; both sides may be empty.
func Partition[T any](rs []Result[T]) ([]T, []error) {
	values := make([]T, 0, len(rs))
	errs := make([]error, 0)
	for _, r := range rs {
		if r.IsOk() {
			values = append(values, r.Value())
			continue
		}
		errs = append(errs, r.Err())
	}
	return values, errs
}
