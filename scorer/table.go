package scorer

import (
	"sync"
)

// Handle is an opaque reference to a scorer context in a Table.
// Handle 0 is reserved and always invalid.
type Handle uint32

// Table maps integer handles to live scorer contexts, for embedders that
// cannot carry Go pointers across their own boundary. Closing the table
// destroys every remaining context.
type Table struct {
	entries  []tableEntry
	freeList []Handle
	mu       sync.RWMutex
	closed   bool
}

type tableEntry struct {
	fn    *Func
	valid bool
}

// NewTable creates an empty handle table.
func NewTable() *Table {
	return &Table{
		entries:  make([]tableEntry, 0, 16),
		freeList: make([]Handle, 0, 8),
	}
}

// Insert stores a constructed scorer and returns its handle. Returns 0
// when the table is closed.
func (t *Table) Insert(fn *Func) Handle {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return 0
	}

	e := tableEntry{fn: fn, valid: true}

	if len(t.freeList) > 0 {
		handle := t.freeList[len(t.freeList)-1]
		t.freeList = t.freeList[:len(t.freeList)-1]
		t.entries[handle-1] = e
		return handle
	}

	t.entries = append(t.entries, e)
	return Handle(len(t.entries))
}

// Get retrieves a scorer by handle.
func (t *Table) Get(handle Handle) (*Func, bool) {
	if handle == 0 {
		return nil, false
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	idx := handle - 1
	if int(idx) >= len(t.entries) {
		return nil, false
	}

	e := t.entries[idx]
	if !e.valid {
		return nil, false
	}
	return e.fn, true
}

// Remove drops a handle and destroys its scorer. Reports false for an
// invalid or already removed handle.
func (t *Table) Remove(handle Handle) bool {
	if handle == 0 {
		return false
	}

	t.mu.Lock()
	idx := handle - 1
	if int(idx) >= len(t.entries) || !t.entries[idx].valid {
		t.mu.Unlock()
		return false
	}

	fn := t.entries[idx].fn
	t.entries[idx] = tableEntry{}
	t.freeList = append(t.freeList, handle)
	t.mu.Unlock()

	fn.Dtor()
	return true
}

// Len returns the number of live scorers.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	count := 0
	for _, e := range t.entries {
		if e.valid {
			count++
		}
	}
	return count
}

// Close destroys every remaining scorer and stops accepting inserts.
func (t *Table) Close() error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}
	t.closed = true
	entries := t.entries
	t.entries = nil
	t.freeList = nil
	t.mu.Unlock()

	for _, e := range entries {
		if e.valid {
			e.fn.Dtor()
		}
	}
	return nil
}
