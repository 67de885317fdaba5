package alloc

import (
	"sync"

	"modernc.org/memory"
)

// offHeap is a mutex-protected wrapper around memory.Allocator. Each array
// has a single owner, but different owners (and runtime cleanups) reach the
// process-wide allocator from different goroutines.
type offHeap struct {
	mu sync.Mutex
	a  memory.Allocator
}

var platform offHeap

// calloc returns size zeroed bytes outside the Go heap.
func (h *offHeap) calloc(size int) ([]byte, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.a.Calloc(size)
}

// free returns b to the allocator.
func (h *offHeap) free(b []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.a.Free(b)
}
