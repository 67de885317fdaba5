package fixedarray

import (
	"fmt"
	"iter"
	"runtime"
	"slices"
	"unsafe"

	"github.com/pavanmanishd/fixedarray/alloc"
)

// Array is a fixed-capacity array of T backed by a single zeroed allocation.
// Not goroutine-safe; give each array a single owner.
type Array[T any] struct {
	h       alloc.Handle[T]
	cap     int
	moved   bool
	cleanup runtime.Cleanup
}

// New creates an Array of capacity zeroed elements.
//
// Error states:
//   - see alloc.Allocate
func New[T any](capacity int) (*Array[T], error) {
	h, err := alloc.Allocate[T](capacity)
	if err != nil {
		return nil, err
	}
	return adopt(h), nil
}

// MustNew is like New but panics if the allocation fails.
// Only use it with capacities that are known to be valid.
func MustNew[T any](capacity int) *Array[T] {
	a, err := New[T](capacity)
	if err != nil {
		panic(fmt.Sprintf("fixedarray: %v", err))
	}
	return a
}

// FromSeq collects seq and returns an Array holding its elements in order.
// The capacity is the number of elements yielded. It panics if the Array
// cannot be allocated, which includes an empty seq.
func FromSeq[T any](seq iter.Seq[T]) *Array[T] {
	staged := slices.Collect(seq)
	a, err := New[T](len(staged))
	if err != nil {
		panic(fmt.Sprintf("fixedarray: from sequence: %v", err))
	}
	if unsafe.SliceData(staged) == nil {
		panic("fixedarray: from sequence: staged elements have no backing array")
	}
	copy(a.h.Slice(), staged)
	return a
}

// FromSlice returns an Array holding a copy of s.
//
// Error states:
//   - see alloc.Allocate (an empty s is a zero sized allocation)
func FromSlice[T any](s []T) (*Array[T], error) {
	a, err := New[T](len(s))
	if err != nil {
		return nil, err
	}
	copy(a.h.Slice(), s)
	return a, nil
}

// FromRaw returns a new Array holding a copy of the n elements starting at
// h.Pointer().
//
// FromRaw trusts n: it does not check it against the region behind h. The
// caller must keep h valid, and at least n elements long, until FromRaw
// returns.
func FromRaw[T any](h alloc.Handle[T], n int) (*Array[T], error) {
	a, err := New[T](n)
	if err != nil {
		return nil, err
	}
	copy(a.h.Slice(), unsafe.Slice((*T)(h.Pointer()), n))
	return a, nil
}

// adopt takes ownership of h. A runtime cleanup frees h if the Array becomes
// unreachable without Release.
func adopt[T any](h alloc.Handle[T]) *Array[T] {
	a := &Array[T]{h: h, cap: h.Len()}
	a.cleanup = runtime.AddCleanup(a, freeHandle[T], h)
	return a
}

func freeHandle[T any](h alloc.Handle[T]) {
	_ = alloc.Free(h)
}

// Cap returns the capacity the Array was created with.
func (a *Array[T]) Cap() int {
	a.panicIfUnusable()
	return a.cap
}

// Get returns a copy of the value at idx.
//
// Error states:
//   - idx is outside [0, Cap()): ErrIndexOutOfRange
func (a *Array[T]) Get(idx int) (T, error) {
	var zero T
	if err := a.inBounds(idx); err != nil {
		return zero, err
	}
	return a.h.Slice()[idx], nil
}

// Set overwrites the value at idx with v.
//
// Error states:
//   - idx is outside [0, Cap()): ErrIndexOutOfRange
func (a *Array[T]) Set(idx int, v T) error {
	if err := a.inBounds(idx); err != nil {
		return err
	}
	a.h.Slice()[idx] = v
	return nil
}

// Remove returns the value at idx and zeroes its slot. The capacity does not
// change.
//
// Error states:
//   - idx is outside [0, Cap()): ErrIndexOutOfRange
func (a *Array[T]) Remove(idx int) (T, error) {
	var zero T
	if err := a.inBounds(idx); err != nil {
		return zero, err
	}
	s := a.h.Slice()
	v := s[idx]
	clear(s[idx : idx+1])
	return v, nil
}

// Fill sets every slot to v.
func (a *Array[T]) Fill(v T) {
	a.panicIfUnusable()
	s := a.h.Slice()
	for i := range s {
		s[i] = v
	}
}

// Handle returns the handle backing the Array. It stays owned by the Array
// and is invalid after Release.
func (a *Array[T]) Handle() alloc.Handle[T] {
	a.panicIfUnusable()
	return a.h
}

// Release frees the backing memory. The Array is unusable afterwards and any
// further operation panics. Calling Release more than once is a no-op.
func (a *Array[T]) Release() {
	if a.h.IsZero() {
		return
	}
	a.cleanup.Stop()
	h := a.h
	a.h = alloc.Handle[T]{}
	if err := alloc.Free(h); err != nil {
		panic(fmt.Sprintf("fixedarray: release: %v", err))
	}
}

// inBounds validates idx against the capacity before any memory access.
func (a *Array[T]) inBounds(idx int) error {
	a.panicIfUnusable()
	if idx < 0 || idx >= a.cap {
		return ErrIndexOutOfRange
	}
	return nil
}

// panicIfUnusable panics if the Array was released or moved into an iterator.
func (a *Array[T]) panicIfUnusable() {
	if a.moved {
		panic("fixedarray: use after move")
	}
	if a.h.IsZero() {
		panic("fixedarray: use after Release()")
	}
}
