package fixedarray

import (
	"fmt"
	"iter"

	"github.com/pavanmanishd/fixedarray/alloc"
)

// Iter yields the elements of an Array it owns, once, in index order.
// It frees the Array's memory when exhausted or released.
type Iter[T any] struct {
	arr *Array[T]
	idx int
	cap int
}

// IntoIter moves the Array into an Iter. The Array must not be used again;
// any further operation on it panics.
func (a *Array[T]) IntoIter() *Iter[T] {
	a.panicIfUnusable()
	a.cleanup.Stop()
	owned := adopt(a.h)
	a.h = alloc.Handle[T]{}
	a.moved = true
	return &Iter[T]{arr: owned, cap: owned.cap}
}

// Next returns the element at the cursor and advances it. ok is false once
// every element has been yielded.
func (it *Iter[T]) Next() (v T, ok bool) {
	if it.arr == nil {
		return v, false
	}
	v, err := it.arr.Get(it.idx)
	if err != nil {
		panic(fmt.Sprintf("fixedarray: iterator cursor %d: %v", it.idx, err))
	}
	it.idx++
	if it.idx == it.cap {
		it.Release()
	}
	return v, true
}

// Remaining returns how many elements Next has yet to yield.
func (it *Iter[T]) Remaining() int {
	if it.arr == nil {
		return 0
	}
	return it.cap - it.idx
}

// All returns a sequence of (index, value) pairs for the remaining elements.
// The Iter is released when the sequence ends or the loop breaks.
func (it *Iter[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		defer it.Release()
		for {
			i := it.idx
			v, ok := it.Next()
			if !ok || !yield(i, v) {
				return
			}
		}
	}
}

// Values is like All without the indices.
func (it *Iter[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range it.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Release frees the remaining elements. Next returns false afterwards.
func (it *Iter[T]) Release() {
	if it.arr == nil {
		return
	}
	it.arr.Release()
	it.arr = nil
}
