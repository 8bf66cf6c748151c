// Package pipe provides a fluent Chain[T] for synchronous composition of
// res.Result values.
//
// A chain groups each continuation with its own stage: once a stage has
// failed, every later success stage is skipped and the failure flows to
// the end untouched. A trailing Map or Then after a failed stage never
// sees the error as its argument.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T] or value
// - Then/ThenTry: compose result-returning or error-returning functions
// - Map/MapErr/OrElse: transform either side of the chain
// - FailOnNil: turn a successful nil value into a failure
// - Ensure: trigger side effects without changing the result
// - Finally: reduce to a concrete value via handlers
//
// Same-type stages are methods; type-changing stages are the package-level
// functions of the same name.
package pipe
