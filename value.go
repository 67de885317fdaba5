package fixedarray

import (
	"fmt"
	"slices"
)

// Clone returns a deep copy of a in a fresh allocation. The two Arrays share
// no memory. Clone panics if the allocation fails.
//
// Elements are copied by assignment, so pointers held inside T are shared.
func (a *Array[T]) Clone() *Array[T] {
	a.panicIfUnusable()
	c, err := New[T](a.cap)
	if err != nil {
		panic(fmt.Sprintf("fixedarray: clone: %v", err))
	}
	copy(c.h.Slice(), a.h.Slice())
	return c
}

// String renders the elements like a slice, e.g. "[1 2 3]".
func (a *Array[T]) String() string {
	return fmt.Sprint(slices.Collect(a.Clone().IntoIter().Values()))
}

// Equal reports whether a and b hold equal elements at every position.
//
// Only positions present in both are compared: Arrays of different
// capacities are equal if the shorter one is a prefix of the longer.
func Equal[T comparable](a, b *Array[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T any](a, b *Array[T], eq func(T, T) bool) bool {
	ai := a.Clone().IntoIter()
	defer ai.Release()
	bi := b.Clone().IntoIter()
	defer bi.Release()

	for {
		x, ok := ai.Next()
		if !ok {
			return true
		}
		y, ok := bi.Next()
		if !ok {
			return true
		}
		if !eq(x, y) {
			return false
		}
	}
}

// Count returns how many elements of a equal v.
func Count[T comparable](a *Array[T], v T) int {
	n := 0
	for x := range a.Clone().IntoIter().Values() {
		if x == v {
			n++
		}
	}
	return n
}
