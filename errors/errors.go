package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where at the call boundary the error occurred
type Phase string

const (
	PhaseValidate  Phase = "validate"  // host object validation
	PhaseMarshal   Phase = "marshal"   // host string extraction
	PhaseDispatch  Phase = "dispatch"  // width resolution
	PhaseConstruct Phase = "construct" // scorer construction
	PhaseInvoke    Phase = "invoke"    // scorer invocation
	PhaseTranslate Phase = "translate" // failure translation
	PhaseHost      Phase = "host"      // host runtime operations
)

// Kind categorizes the error. The set mirrors the native failure
// categories the translator maps onto host error classes.
type Kind string

const (
	KindLogic      Kind = "logic"      // programming-contract violation
	KindType       Kind = "type"       // bad dynamic type
	KindValue      Kind = "value"      // invalid domain input or argument
	KindMemory     Kind = "memory"     // allocation failure
	KindIO         Kind = "io"         // I/O failure
	KindIndex      Kind = "index"      // out-of-range index
	KindOverflow   Kind = "overflow"   // numeric overflow
	KindArithmetic Kind = "arithmetic" // numeric range or underflow
	KindRuntime    Kind = "runtime"    // any other recognized failure
)

// Error is the structured error type used throughout the module
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// Logic creates a programming-contract violation error
func Logic(phase Phase, detail string, args ...any) *Error {
	return build(phase, KindLogic, detail, args...)
}

// Type creates a bad dynamic type error
func Type(phase Phase, detail string, args ...any) *Error {
	return build(phase, KindType, detail, args...)
}

// Value creates an invalid domain input error
func Value(phase Phase, detail string, args ...any) *Error {
	return build(phase, KindValue, detail, args...)
}

// Memory creates an allocation failure error
func Memory(phase Phase, detail string, args ...any) *Error {
	return build(phase, KindMemory, detail, args...)
}

// IO creates an I/O failure error
func IO(phase Phase, detail string, args ...any) *Error {
	return build(phase, KindIO, detail, args...)
}

// Index creates an out-of-range index error
func Index(phase Phase, detail string, args ...any) *Error {
	return build(phase, KindIndex, detail, args...)
}

// Overflow creates a numeric overflow error
func Overflow(phase Phase, detail string, args ...any) *Error {
	return build(phase, KindOverflow, detail, args...)
}

// Arithmetic creates a numeric range error
func Arithmetic(phase Phase, detail string, args ...any) *Error {
	return build(phase, KindArithmetic, detail, args...)
}

// Runtime creates a generic runtime failure error
func Runtime(phase Phase, detail string, args ...any) *Error {
	return build(phase, KindRuntime, detail, args...)
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

func build(phase Phase, kind Kind, detail string, args ...any) *Error {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
	}
}
