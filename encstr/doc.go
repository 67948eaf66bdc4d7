// Package encstr defines the encoded string view shared across the scorer
// ABI and the width dispatcher that resolves a view to its concrete
// code-unit type.
//
// A String is a non-owning descriptor: a width tag, a raw pointer to
// contiguous code units, a length in units (never bytes), an optional
// destructor, and an optional opaque owner handle. The four supported
// widths form a closed enumeration; Visit makes the width decision exactly
// once, outside any scoring loop, and hands strongly typed unit slices to
// the caller's operation.
package encstr
