// Package wasmhost backs host string objects with a WebAssembly linear
// memory, using wazero as the guest engine.
//
// It exists for embedders whose string data already lives in guest
// memory: Buffer implements hostabi.ByteSeq over a region of the exported
// memory, so the scorer ABI borrows the bytes zero-copy instead of
// round-tripping them through Go heap allocations. The usual borrow rule
// applies with extra force here: a view must never outlive the memory
// that owns it, so the host stays open until every buffer is released.
package wasmhost
