// Package alloc computes array layouts and hands out zeroed memory for them.
//
// Allocate is the only place in the module that calls into a platform
// allocator. Element types without pointers are served from
// modernc.org/memory, outside the Go heap; types holding pointers are served
// from the Go heap so the garbage collector can trace them. Either way the
// caller pairs every Allocate with exactly one Free:
//
//	h, err := alloc.Allocate[int32](64)
//	if err != nil {
//		return err
//	}
//	defer alloc.Free(h)
//
//	s := h.Slice() // 64 zeroed int32 values
//
// Allocate performs no logging and no retries. Every failure is returned
// immediately as one of the Err* values, which compare by message.
package alloc
