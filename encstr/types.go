package encstr

import (
	"unsafe"
)

// Width tags the code-unit width of an encoded string buffer.
// The numeric value is the size of one code unit in bytes.
type Width uint8

const (
	Width8  Width = 1
	Width16 Width = 2
	Width32 Width = 4
	Width64 Width = 8
)

// Valid reports whether w is one of the four supported width tags.
func (w Width) Valid() bool {
	switch w {
	case Width8, Width16, Width32, Width64:
		return true
	}
	return false
}

// Bytes returns the size of one code unit in bytes.
func (w Width) Bytes() int { return int(w) }

// Bits returns the width of one code unit in bits.
func (w Width) Bits() int { return int(w) * 8 }

func (w Width) String() string {
	switch w {
	case Width8:
		return "uint8"
	case Width16:
		return "uint16"
	case Width32:
		return "uint32"
	case Width64:
		return "uint64"
	}
	return "invalid"
}

// Unit is the closed set of code-unit types a String can hold.
type Unit interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// WidthOf returns the width tag for the unit type T.
func WidthOf[T Unit]() Width {
	var zero T
	return Width(unsafe.Sizeof(zero))
}

// String is a non-owning descriptor of an encoded string buffer.
//
// Owner is an opaque handle on whatever backs Data; the view never owns
// it, but keeping it here anchors borrowed Go slices against collection.
// Len counts code units of the tagged width, never bytes. Free, when set,
// releases Data and must run exactly once; Release takes care of that.
type String struct {
	Owner any
	Data  unsafe.Pointer
	Free  func(*String)
	Len   int
	Width Width
}

// Bytes borrows b as 8-bit code units. Ownership stays with the caller.
func Bytes(b []byte) String {
	return String{
		Owner: b,
		Data:  unsafe.Pointer(unsafe.SliceData(b)),
		Len:   len(b),
		Width: Width8,
	}
}

// Make borrows units at the width inferred from T.
func Make[T Unit](units []T) String {
	return String{
		Owner: units,
		Data:  unsafe.Pointer(unsafe.SliceData(units)),
		Len:   len(units),
		Width: WidthOf[T](),
	}
}

// Text borrows the UTF-8 bytes of s as an 8-bit view.
func Text(s string) String {
	return Bytes([]byte(s))
}

// Empty reports whether the view is in the neutral empty state.
func (s *String) Empty() bool {
	return s.Data == nil && s.Len == 0 && s.Free == nil && s.Owner == nil
}

// Reset clears the view to the neutral empty state without invoking Free.
func (s *String) Reset() {
	*s = String{}
}

// Release invokes the destructor, if any, then resets the view. A second
// Release on the same view is a no-op.
func (s *String) Release() {
	if s.Free != nil {
		s.Free(s)
	}
	s.Reset()
}
