package wasmhost

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/scorer-runtime/errors"
)

const pageSize = 65536

// memoryModule is a minimal core module exporting one memory of one page:
// header, memory section (min 1 page, no max), export section ("memory").
var memoryModule = []byte{
	0x00, 0x61, 0x73, 0x6d, // magic
	0x01, 0x00, 0x00, 0x00, // version 1
	0x05, 0x03, 0x01, 0x00, 0x01, // memory section
	0x07, 0x0a, 0x01, 0x06, 0x6d, 0x65, 0x6d, 0x6f, 0x72, 0x79, 0x02, 0x00, // export "memory"
}

// MemoryHost owns a guest instance whose linear memory backs string
// buffers. Allocation is a simple bump pointer; buffers live until the
// host closes.
type MemoryHost struct {
	rt   wazero.Runtime
	mod  api.Module
	mu   sync.Mutex
	next uint32
}

// New instantiates the guest memory module.
func New(ctx context.Context) (*MemoryHost, error) {
	rt := wazero.NewRuntime(ctx)
	mod, err := rt.Instantiate(ctx, memoryModule)
	if err != nil {
		_ = rt.Close(ctx)
		return nil, errors.Wrap(errors.PhaseHost, errors.KindRuntime, err, "instantiate guest memory")
	}
	return &MemoryHost{rt: rt, mod: mod}, nil
}

// Close tears down the guest instance. All buffers become invalid.
func (h *MemoryHost) Close(ctx context.Context) error {
	return h.rt.Close(ctx)
}

// NewBytes copies b into guest memory and returns a byte-sequence object
// whose buffer is the live memory region, not a Go copy.
func (h *MemoryHost) NewBytes(b []byte) (*Buffer, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	mem := h.mod.Memory()
	end := uint64(h.next) + uint64(len(b))
	if end > uint64(mem.Size()) {
		needed := (end - uint64(mem.Size()) + pageSize - 1) / pageSize
		if _, ok := mem.Grow(uint32(needed)); !ok {
			return nil, errors.Memory(errors.PhaseHost,
				"guest memory grow by %d pages refused", needed)
		}
	}
	if len(b) > 0 && !mem.Write(h.next, b) {
		return nil, errors.Memory(errors.PhaseHost,
			"guest memory write of %d bytes at %d failed", len(b), h.next)
	}

	buf := &Buffer{host: h, off: h.next, size: uint32(len(b))}
	buf.refs.Store(1)
	h.next += uint32(len(b))
	return buf, nil
}

// Buffer is a reference-counted byte-sequence host object living in
// guest memory. It satisfies hostabi.ByteSeq.
type Buffer struct {
	refs atomic.Int32
	host *MemoryHost
	off  uint32
	size uint32
}

func (b *Buffer) IncRef() { b.refs.Add(1) }
func (b *Buffer) DecRef() { b.refs.Add(-1) }

// Refs exposes the live reference count for leak checks.
func (b *Buffer) Refs() int32 { return b.refs.Load() }

// ByteData returns a view straight into guest memory. The view is only
// valid while the owning MemoryHost stays open.
func (b *Buffer) ByteData() []byte {
	if b.size == 0 {
		return nil
	}
	view, ok := b.host.mod.Memory().Read(b.off, b.size)
	if !ok {
		return nil
	}
	return view
}
