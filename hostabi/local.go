package hostabi

import (
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/wippyai/scorer-runtime/encstr"
)

// LocalRuntime is an in-process reference implementation of Runtime used
// by tests and the CLI. A plain mutex stands in for the host's global
// execution right; the error slot is guarded by that right.
type LocalRuntime struct {
	mu      sync.Mutex
	cat     Category
	msg     string
	pending bool
}

func NewLocalRuntime() *LocalRuntime {
	return &LocalRuntime{}
}

func (r *LocalRuntime) Ensure() Token {
	r.mu.Lock()
	return nil
}

func (r *LocalRuntime) Release(Token) {
	r.mu.Unlock()
}

func (r *LocalRuntime) ErrOccurred() bool {
	return r.pending
}

func (r *LocalRuntime) SetError(cat Category, msg string) {
	r.cat = cat
	r.msg = msg
	r.pending = true
}

// Err returns the pending error state, if any.
func (r *LocalRuntime) Err() (Category, string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cat, r.msg, r.pending
}

// ClearErr resets the error slot, like the host observing the error.
func (r *LocalRuntime) ClearErr() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cat = CatNone
	r.msg = ""
	r.pending = false
}

// refCounted implements Object with an observable count. New objects
// start with one reference, held by their creator.
type refCounted struct {
	refs atomic.Int32
}

func (o *refCounted) IncRef() { o.refs.Add(1) }
func (o *refCounted) DecRef() { o.refs.Add(-1) }

// Refs exposes the live reference count for leak checks.
func (o *refCounted) Refs() int32 { return o.refs.Load() }

// LocalBytes is a reference-counted byte-sequence host object.
type LocalBytes struct {
	refCounted
	data []byte
}

func NewLocalBytes(b []byte) *LocalBytes {
	o := &LocalBytes{data: b}
	o.refs.Store(1)
	return o
}

func (o *LocalBytes) ByteData() []byte { return o.data }

// LocalText is a reference-counted text-sequence host object holding
// code units of a fixed width. A Ready failure can be injected to model
// hosts whose legacy text needs a normalization step.
type LocalText struct {
	refCounted
	anchor   any
	data     unsafe.Pointer
	readyErr error
	units    int
	unitSize int
}

// NewLocalText copies units into a text object reporting T's unit size.
func NewLocalText[T encstr.Unit](units []T) *LocalText {
	cp := append([]T(nil), units...)
	var zero T
	o := &LocalText{
		anchor:   cp,
		data:     unsafe.Pointer(unsafe.SliceData(cp)),
		units:    len(cp),
		unitSize: int(unsafe.Sizeof(zero)),
	}
	o.refs.Store(1)
	return o
}

// FailReady makes the next Ready calls report err, as a host would when
// normalization of a legacy encoding fails.
func (o *LocalText) FailReady(err error) { o.readyErr = err }

func (o *LocalText) UnitSize() int { return o.unitSize }
func (o *LocalText) TextData() unsafe.Pointer { return o.data }
func (o *LocalText) TextLen() int { return o.units }
func (o *LocalText) Ready() error { return o.readyErr }
