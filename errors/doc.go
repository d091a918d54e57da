// Package errors provides structured error types for the grid module.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the offending axis, Go/WIT type names, a config key path
// and a cause chain.
//
// Package grid has no recoverable error channel: construction and bounds failures
// panic with an *Error value. Recover it and inspect it with errors.As:
//
//	defer func() {
//		if r := recover(); r != nil {
//			var gerr *errors.Error
//			if err, ok := r.(error); ok && stderrors.As(err, &gerr) {
//				log.Printf("%s on axis %s", gerr.Kind, gerr.Axis)
//			}
//		}
//	}()
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseAccess, errors.KindOutOfBounds).
//		Axis("y").
//		Value(7).
//		Detail("index %d out of bounds (extent %d)", 7, 4).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.ZeroExtent("x", 0)
//	err := errors.OutOfBounds(errors.PhaseAccess, "z", 3, 2)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
