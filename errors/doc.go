// Package errors provides structured error types for the scorer-runtime library.
//
// Errors are categorized by Phase (where at the call boundary the error
// occurred) and Kind (failure category). The Kind vocabulary deliberately
// mirrors the native failure categories that the hostabi translator maps
// onto host-runtime error classes.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseConstruct, errors.KindValue).
//		Detail("prefix weight %v out of range", pw).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Logic(errors.PhaseDispatch, "invalid width tag %d", tag)
//	err := errors.Type(errors.PhaseValidate, diag)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
