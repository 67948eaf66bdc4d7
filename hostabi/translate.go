package hostabi

import (
	stderrors "errors"

	"github.com/wippyai/scorer-runtime/errors"
)

// Translate converts a caught native failure into host error state. It is
// called only from a failure-handling path that has already captured the
// failure value (a returned error or a recovered panic).
//
// The host's execution right is reacquired for exactly the duration of
// the update. A pending host error always wins: the caught failure is
// dropped rather than overwriting the host's own, usually more specific,
// diagnostic.
func Translate(rt Runtime, failure any) {
	tok := rt.Ensure()
	defer rt.Release(tok)

	if rt.ErrOccurred() {
		return
	}

	err, ok := failure.(error)
	if !ok {
		rt.SetError(CatRuntime, UnknownFailure)
		return
	}

	var se *errors.Error
	if stderrors.As(err, &se) {
		rt.SetError(categoryOf(se.Kind), messageOf(se))
		return
	}
	rt.SetError(CatRuntime, err.Error())
}

// categoryOf maps a structured failure kind onto a host error category.
// First match wins; anything unlisted lands on the generic runtime class,
// including logic-kind contract violations.
func categoryOf(k errors.Kind) Category {
	switch k {
	case errors.KindMemory:
		return CatMemory
	case errors.KindType:
		return CatType
	case errors.KindValue:
		return CatValue
	case errors.KindIO:
		return CatIO
	case errors.KindIndex:
		return CatIndex
	case errors.KindOverflow:
		return CatOverflow
	case errors.KindArithmetic:
		return CatArithmetic
	}
	return CatRuntime
}

// messageOf prefers the detail the raiser supplied over the rendered
// phase/kind prefix, matching what the host surfaces to its users.
func messageOf(e *errors.Error) string {
	if e.Detail != "" {
		return e.Detail
	}
	return e.Error()
}
