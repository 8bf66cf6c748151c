// Package res implements a two-variant Result[T] value for error-aware
// composition without tag checking at every step.
//
// A Result is either Ok with a payload or Err with a reason; the zero
// value is neither and is rejected at dynamic boundaries by IsResult and
// AssertResult. Expected failures travel as Err values; misuse of the API
// (MustValue on a failure, MustErr on a success, a non-Result where a
// Result is required) panics immediately and is never recovered here.
//
// Highlights:
// - Ok/Err/From: construct a Result, or adapt a (value, error) pair
// - Map/MapErr/AndThen/OrElse: transform either side, with short circuit
// - TapOk/TapErr: side effects that leave the result untouched
// - MustValue/ValueOr/ValueOrElse/MustErr: extraction with failure policy
// - FailOnNil/AndFailOnNil: adapt nil-signalling APIs into failures
// - Collect/CollectAll/Traverse/Partition: reduce many Results to one
// - Finally: collapse to a concrete value via success/error handlers
package res
