package hostabi

import (
	"unsafe"

	"github.com/wippyai/scorer-runtime/encstr"
	"github.com/wippyai/scorer-runtime/errors"
)

// IsString reports whether obj is a supported host string representation.
// A failed text normalization propagates the host's own error unwrapped.
func IsString(obj any) (bool, error) {
	switch o := obj.(type) {
	case ByteSeq:
		return true, nil
	case TextSeq:
		if err := o.Ready(); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

// ValidateString fails with a type-kind error carrying diag when obj is
// neither a byte sequence nor a text sequence. A failed text normalization
// propagates the host's own error unwrapped, since the host usually has
// the more specific diagnostic.
func ValidateString(obj any, diag string) error {
	switch o := obj.(type) {
	case ByteSeq:
		return nil
	case TextSeq:
		if err := o.Ready(); err != nil {
			return err
		}
		return nil
	}
	return errors.Type(errors.PhaseValidate, diag)
}

// ConvertString borrows obj's internal buffer as an encoded view without
// copying. Ownership stays with the host object, so the view carries no
// destructor; Owner anchors the object for the borrow's duration.
//
// Callers must run ValidateString first. Converting an unsupported object
// is a contract violation and panics with a logic-kind error.
func ConvertString(obj any) encstr.String {
	switch o := obj.(type) {
	case ByteSeq:
		b := o.ByteData()
		return encstr.String{
			Owner: obj,
			Data:  unsafe.Pointer(unsafe.SliceData(b)),
			Len:   len(b),
			Width: encstr.Width8,
		}
	case TextSeq:
		return encstr.String{
			Owner: obj,
			Data:  o.TextData(),
			Len:   o.TextLen(),
			Width: widthForUnitSize(o.UnitSize()),
		}
	}
	panic(errors.Logic(errors.PhaseMarshal,
		"convert called on unsupported host object %T", obj))
}

// widthForUnitSize maps a host-reported code-unit size onto the width tag
// vocabulary. Sizes other than 1 and 2 normalize to the widest supported
// tag.
func widthForUnitSize(size int) encstr.Width {
	switch size {
	case 1:
		return encstr.Width8
	case 2:
		return encstr.Width16
	default:
		return encstr.Width32
	}
}
