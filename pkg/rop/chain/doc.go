// Package chain provides a fluent wrapper around Result[T] for building
// synchronous railway chains out of solo primitives.
//
// Every step carries a stage name. A failing or cancelled chain keeps the
// stage of the step that left the success track, so callers can report
// where a run stopped without inspecting the error itself.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T] or value
// - Then: switch to a new Result[U] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - Check: fail on a validation error
// - Ensure: run side effects on success without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
