package alloc

import (
	"fmt"
	"reflect"
	"runtime"
	"unsafe"
)

// Handle refers to a zeroed region holding exactly Len() values of T.
// A handle obtained from Allocate is never nil and never aliases another
// live handle. It must be released with Free exactly once.
type Handle[T any] struct {
	ptr    unsafe.Pointer
	n      int
	layout Layout
	raw    []byte // off-heap backing; nil when the region lives on the Go heap
}

// Pointer returns the start of the region.
func (h Handle[T]) Pointer() unsafe.Pointer { return h.ptr }

// Len returns the number of elements the region holds.
func (h Handle[T]) Len() int { return h.n }

// Layout returns the layout the region was allocated with.
func (h Handle[T]) Layout() Layout { return h.layout }

// OffHeap reports whether the region lives outside the Go heap.
func (h Handle[T]) OffHeap() bool { return h.raw != nil }

// IsZero reports whether h is the zero Handle.
func (h Handle[T]) IsZero() bool { return h.ptr == nil }

// Slice returns a view of the whole region. It is valid until Free.
func (h Handle[T]) Slice() []T {
	if h.ptr == nil {
		return nil
	}
	return unsafe.Slice((*T)(h.ptr), h.n)
}

// Allocate returns a handle to zeroed memory for n values of T.
//
// Element types without pointers are placed outside the Go heap. Types that
// hold pointers stay on the Go heap so the collector keeps tracing them.
//
// Error states:
//   - see ArrayLayout
//   - the platform reports failure or hands back unusable memory: ErrAllocationFailed
func Allocate[T any](n int) (Handle[T], error) {
	layout, err := ArrayLayout[T](n)
	if err != nil {
		return Handle[T]{}, err
	}

	if hasPointers(reflect.TypeFor[T]()) {
		s, err := goHeapAlloc[T](n)
		if err != nil {
			return Handle[T]{}, err
		}
		stats.recordAlloc(layout, false)
		return Handle[T]{ptr: unsafe.Pointer(unsafe.SliceData(s)), n: n, layout: layout}, nil
	}

	b, err := platform.calloc(int(layout.Size))
	if err != nil {
		return Handle[T]{}, fmt.Errorf("%w: %w", ErrAllocationFailed, err)
	}
	p := unsafe.Pointer(unsafe.SliceData(b))
	if p == nil || uintptr(len(b)) < layout.Size || uintptr(p)%layout.Align != 0 {
		if len(b) != 0 {
			_ = platform.free(b)
		}
		return Handle[T]{}, fmt.Errorf("%w: unusable region for %s", ErrAllocationFailed, layout)
	}
	stats.recordAlloc(layout, true)
	return Handle[T]{ptr: p, n: n, layout: layout, raw: b}, nil
}

// Free releases the region behind h using the layout it was allocated with.
// Freeing the zero Handle is a no-op.
func Free[T any](h Handle[T]) error {
	if h.ptr == nil {
		return nil
	}
	if h.raw != nil {
		if err := platform.free(h.raw); err != nil {
			return fmt.Errorf("alloc: free %s: %w", h.layout, err)
		}
	}
	stats.recordFree(h.layout, h.raw != nil)
	return nil
}

// goHeapAlloc converts the runtime's length panic into ErrAllocationFailed.
// Running out of memory outright is fatal in Go and cannot be reported.
func goHeapAlloc[T any](n int) (s []T, err error) {
	defer func() {
		if r := recover(); r != nil {
			if re, ok := r.(runtime.Error); ok {
				err = fmt.Errorf("%w: %w", ErrAllocationFailed, re)
				return
			}
			panic(r)
		}
	}()
	return make([]T, n), nil
}

// hasPointers reports whether values of t contain anything the garbage
// collector has to trace.
func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	case reflect.Pointer, reflect.UnsafePointer, reflect.Slice, reflect.Map,
		reflect.String, reflect.Interface, reflect.Chan, reflect.Func:
		return true
	default:
		return false
	}
}
