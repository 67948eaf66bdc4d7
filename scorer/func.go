package scorer

import (
	"go.uber.org/zap"

	"github.com/wippyai/scorer-runtime/encstr"
	"github.com/wippyai/scorer-runtime/errors"
	"github.com/wippyai/scorer-runtime/hostabi"
)

// Cached is a width-specialized algorithm instance bound to one pattern
// string. The four Ratio methods are the closed width enumeration for the
// candidate side; concrete scorers implement all of them from one generic
// body, so the width decision never enters the comparison loop.
type Cached interface {
	Ratio8(cand []uint8, cutoff float64) (float64, error)
	Ratio16(cand []uint16, cutoff float64) (float64, error)
	Ratio32(cand []uint32, cutoff float64) (float64, error)
	Ratio64(cand []uint64, cutoff float64) (float64, error)

	// Close releases the algorithm state. Called exactly once by Dtor.
	Close()
}

// Family builds a Cached scorer from a pattern resolved to its concrete
// code-unit type. A family is exactly a width visitor producing Cached;
// algorithm parameters (weights and the like) are captured in the family
// value itself.
type Family = encstr.UnitOp[Cached]

// Func is the opaque scorer handle handed across the ABI. Lifecycle:
//
//	f := scorer.New(host, family)
//	f.Init(patterns)   // once; false means the host error state is set
//	f.CallF64(...)     // any number of times
//	f.Dtor()           // exactly once
//
// Calling CallF64 after Dtor, or Dtor twice, is a caller contract
// violation and is not guarded internally.
type Func struct {
	host   hostabi.Runtime
	family Family
	cached Cached
}

// New binds a host runtime and an algorithm family to a fresh, not yet
// constructed handle.
func New(host hostabi.Runtime, fam Family) *Func {
	return &Func{host: host, family: fam}
}

// Init constructs the algorithm state against exactly one pattern string.
// The pattern's width is resolved once, here; the view itself is not
// retained. Reports false after translating any failure, with no state
// allocated.
func (f *Func) Init(patterns []encstr.String) (ok bool) {
	defer f.trap(&ok)

	if len(patterns) != 1 {
		// multi-pattern construction is unsupported
		return f.fail(errors.Logic(errors.PhaseConstruct,
			"only a single pattern string is supported, got %d", len(patterns)))
	}

	cached, err := encstr.Visit[Cached](&patterns[0], f.family)
	if err != nil {
		return f.fail(err)
	}

	f.cached = cached
	Logger().Debug("scorer constructed",
		zap.Stringer("pattern_width", patterns[0].Width),
		zap.Int("pattern_len", patterns[0].Len))
	return true
}

// CallF64 scores one candidate string against the stored pattern. The
// candidate's width is resolved independently of the pattern's. On
// success the score is written through out; on failure out is left
// untouched, the failure is translated into host error state, and false
// is returned.
func (f *Func) CallF64(cand *encstr.String, cutoff float64, out *float64) (ok bool) {
	defer f.trap(&ok)

	score, err := encstr.Visit[float64](cand, ratioOp{cached: f.cached, cutoff: cutoff})
	if err != nil {
		return f.fail(err)
	}

	*out = score
	return true
}

// Dtor releases the algorithm state and invalidates the handle. Call
// exactly once.
func (f *Func) Dtor() {
	if f.cached != nil {
		f.cached.Close()
		f.cached = nil
	}
	f.family = nil
	Logger().Debug("scorer destroyed")
}

// fail translates err into host error state and reports false.
func (f *Func) fail(err error) bool {
	hostabi.Translate(f.host, err)
	return false
}

// trap keeps a panicking algorithm from unwinding into host code: the
// failure is translated exactly once and the entry point reports false.
func (f *Func) trap(ok *bool) {
	if r := recover(); r != nil {
		hostabi.Translate(f.host, r)
		*ok = false
	}
}

// ratioOp routes a resolved candidate slice to the matching Ratio method.
type ratioOp struct {
	cached Cached
	cutoff float64
}

func (o ratioOp) U8(u []uint8) (float64, error) { return o.cached.Ratio8(u, o.cutoff) }
func (o ratioOp) U16(u []uint16) (float64, error) { return o.cached.Ratio16(u, o.cutoff) }
func (o ratioOp) U32(u []uint32) (float64, error) { return o.cached.Ratio32(u, o.cutoff) }
func (o ratioOp) U64(u []uint64) (float64, error) { return o.cached.Ratio64(u, o.cutoff) }
