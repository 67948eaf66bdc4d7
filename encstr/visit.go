package encstr

import (
	"unsafe"

	"github.com/wippyai/scorer-runtime/errors"
)

// UnitOp is a width-polymorphic operation over a decoded code-unit slice.
// Visit calls exactly one method, chosen by the view's width tag.
type UnitOp[R any] interface {
	U8(units []uint8) (R, error)
	U16(units []uint16) (R, error)
	U32(units []uint32) (R, error)
	U64(units []uint64) (R, error)
}

// PairOp is the two-string form of UnitOp. Bind* receives the second
// view's units and returns the operation applied to the first view.
type PairOp[R any] interface {
	Bind8(units []uint8) UnitOp[R]
	Bind16(units []uint16) UnitOp[R]
	Bind32(units []uint32) UnitOp[R]
	Bind64(units []uint64) UnitOp[R]
}

// Units reinterprets the view's buffer as a slice of T. The view's width
// must match T; a mismatch is a contract violation.
func Units[T Unit](s *String) ([]T, error) {
	if w := WidthOf[T](); s.Width != w {
		return nil, errors.Logic(errors.PhaseDispatch,
			"view holds %s units, requested %s", s.Width, w)
	}
	if s.Data == nil || s.Len == 0 {
		return nil, nil
	}
	return unsafe.Slice((*T)(s.Data), s.Len), nil
}

// Visit resolves the view's width tag and invokes the matching method of
// op with strongly typed units spanning exactly Len elements. An
// unrecognized tag aborts the dispatch with a logic-kind error.
func Visit[R any](s *String, op UnitOp[R]) (R, error) {
	switch s.Width {
	case Width8:
		return visitAs[uint8](s, op.U8)
	case Width16:
		return visitAs[uint16](s, op.U16)
	case Width32:
		return visitAs[uint32](s, op.U32)
	case Width64:
		return visitAs[uint64](s, op.U64)
	default:
		var zero R
		return zero, errors.Logic(errors.PhaseDispatch,
			"invalid string width tag %d", uint8(s.Width))
	}
}

// VisitPair resolves the second view first, then the first, so op observes
// the second view's units bound before the first view's units arrive.
func VisitPair[R any](first, second *String, op PairOp[R]) (R, error) {
	inner, err := Visit[UnitOp[R]](second, binder[R]{op})
	if err != nil {
		var zero R
		return zero, err
	}
	return Visit(first, inner)
}

func visitAs[T Unit, R any](s *String, f func([]T) (R, error)) (R, error) {
	units, err := Units[T](s)
	if err != nil {
		var zero R
		return zero, err
	}
	return f(units)
}

// binder adapts a PairOp into a UnitOp over the second view.
type binder[R any] struct {
	op PairOp[R]
}

func (b binder[R]) U8(u []uint8) (UnitOp[R], error) { return b.op.Bind8(u), nil }
func (b binder[R]) U16(u []uint16) (UnitOp[R], error) { return b.op.Bind16(u), nil }
func (b binder[R]) U32(u []uint32) (UnitOp[R], error) { return b.op.Bind32(u), nil }
func (b binder[R]) U64(u []uint64) (UnitOp[R], error) { return b.op.Bind64(u), nil }
