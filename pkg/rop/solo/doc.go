// Package solo contains single-value, synchronous primitives over
// rop.Result[T]. The converter builds its whole run out of them: no channels,
// one step after another, first failure wins.
//
// Highlights:
// - Succeed/Fail/Cancel: construct Result[T]
// - Guard: turn a done context into a cancel
// - Validate: fail the value when a check returns an error
// - Switch/Map/Try: move from Result[In] to Result[Out]
// - Each: run a step over a slice, stopping at the first non-success
// - Tee/DoubleTee: side effects
// - Finally: reduce to a concrete value
package solo
