package hostabi

import (
	"unsafe"
)

// Category identifies a host-runtime error class.
type Category uint8

const (
	CatNone Category = iota
	CatMemory
	CatType
	CatValue
	CatIO
	CatIndex
	CatOverflow
	CatArithmetic
	CatRuntime
)

func (c Category) String() string {
	switch c {
	case CatNone:
		return "none"
	case CatMemory:
		return "memory"
	case CatType:
		return "type"
	case CatValue:
		return "value"
	case CatIO:
		return "io"
	case CatIndex:
		return "index"
	case CatOverflow:
		return "overflow"
	case CatArithmetic:
		return "arithmetic"
	case CatRuntime:
		return "runtime"
	}
	return "unknown"
}

// UnknownFailure is installed when a failure carries no structure at all.
const UnknownFailure = "Unknown exception"

// Token is the opaque state handed back by Runtime.Ensure and consumed by
// Runtime.Release. Its meaning belongs entirely to the host.
type Token any

// Runtime is the host runtime collaborator. This layer never holds the
// execution right across a computation; it is acquired only around error
// installation.
type Runtime interface {
	// Ensure acquires the host's single global execution right.
	Ensure() Token

	// Release returns the execution right acquired by Ensure.
	Release(Token)

	// ErrOccurred reports whether the host already has a pending error.
	// Only valid while the execution right is held.
	ErrOccurred() bool

	// SetError installs cat with msg as the host's current error state.
	// Only valid while the execution right is held.
	SetError(cat Category, msg string)
}

// Object is a reference-counted host object.
type Object interface {
	IncRef()
	DecRef()
}

// ByteSeq is a host object exposing a raw byte sequence, treated as 8-bit
// code units.
type ByteSeq interface {
	Object

	// ByteData returns the object's internal byte buffer without copying.
	ByteData() []byte
}

// TextSeq is a host object exposing a text sequence with a native
// code-unit width.
type TextSeq interface {
	Object

	// UnitSize reports the size of one code unit in bytes (1, 2 or 4).
	UnitSize() int

	// TextData points at the first code unit of the native buffer. Only
	// valid after Ready has succeeded.
	TextData() unsafe.Pointer

	// TextLen reports the buffer length in code units.
	TextLen() int

	// Ready performs any one-time normalization the host requires before
	// TextData is valid. A non-nil error is the host's own diagnostic and
	// is propagated unwrapped.
	Ready() error
}
