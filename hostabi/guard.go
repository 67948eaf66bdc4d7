package hostabi

import (
	"github.com/wippyai/scorer-runtime/encstr"
)

// StringGuard scopes the lifetime of one encoded view together with an
// optional reference on the host object backing it. At most one live
// guard owns a given view; Move transfers that ownership.
type StringGuard struct {
	Str   encstr.String
	owner Object
}

// Guard takes ownership of view and, when owner is non-nil, a reference
// on it. The reference is the only sanctioned way to extend a borrow past
// the immediate call.
func Guard(view encstr.String, owner Object) StringGuard {
	if owner != nil {
		owner.IncRef()
	}
	return StringGuard{Str: view, owner: owner}
}

// Owner returns the held host object, if any.
func (g *StringGuard) Owner() Object {
	return g.owner
}

// Move transfers ownership out of g and leaves it inert: no destructor,
// no data, no owner. Destroying a moved-from guard is a no-op.
func (g *StringGuard) Move() StringGuard {
	moved := StringGuard{Str: g.Str, owner: g.owner}
	g.Str.Reset()
	g.owner = nil
	return moved
}

// Release runs the view's destructor first, then drops the owner
// reference, in that order, then clears the guard. Safe to call on an
// inert guard; never call it twice on the same live guard from two paths.
func (g *StringGuard) Release() {
	g.Str.Release()
	if g.owner != nil {
		g.owner.DecRef()
		g.owner = nil
	}
}
