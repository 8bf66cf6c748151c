package res

// FailOnNil adapts APIs that signal absence with a nil value into the
// Result convention: nil (including typed nil pointers) becomes
// Err(reason), anything else becomes Ok(v).
func FailOnNil[T any](v T, reason error) Result[T] {
	if IsNil(v) {
		return Err[T](reason)
	}
	return Ok(v)
}

// AndFailOnNil is FailOnNil over an already-wrapped input. Ok(nil) becomes
// Err(reason); Ok(non-nil) is unchanged; an existing failure passes
// through verbatim and reason is ignored.
func AndFailOnNil[T any](r Result[T], reason error) Result[T] {
	if r.IsOk() && IsNil(r.Value()) {
		return Err[T](reason)
	}
	return r
}
