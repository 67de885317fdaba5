package alloc

import "sync"

// Metrics is a snapshot of allocator statistics.
type Metrics struct {
	LiveAllocations    int // Handles allocated and not yet freed
	OffHeapAllocations int // Live handles outside the Go heap
	BytesInUse         int // Sum of layout sizes of live handles
	TotalAllocations   int // Successful Allocate calls
	TotalFrees         int // Successful Free calls on non-zero handles
}

type counters struct {
	mu sync.Mutex
	m  Metrics
}

var stats counters

func (c *counters) recordAlloc(l Layout, offHeap bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m.LiveAllocations++
	c.m.TotalAllocations++
	c.m.BytesInUse += int(l.Size)
	if offHeap {
		c.m.OffHeapAllocations++
	}
}

func (c *counters) recordFree(l Layout, offHeap bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m.LiveAllocations--
	c.m.TotalFrees++
	c.m.BytesInUse -= int(l.Size)
	if offHeap {
		c.m.OffHeapAllocations--
	}
}

// Stats returns a snapshot of allocator statistics for the whole process.
func Stats() Metrics {
	stats.mu.Lock()
	defer stats.mu.Unlock()
	return stats.m
}
