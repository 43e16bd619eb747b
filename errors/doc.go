// Package errors provides structured error types for the configur launcher.
//
// Errors are categorized by Phase (where in the launch the error occurred) and
// Kind (error category). Errors from the extract, parse and validate phases are
// usage errors: the launcher rejected its own input and no module was invoked.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseResolve, errors.KindInvalidInput).
//		Value(dir).
//		Detail("cannot resolve %q", dir).
//		Cause(cause).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.FieldUnknown(errors.PhaseParse, "--bogus")
//	err := errors.NotFound(errors.PhaseLoad, "module", path)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
