// Package fixedarray implements a fixed-capacity array backed by a single
// zeroed allocation.
//
// # Overview
//
// An Array owns exactly one region obtained from the alloc package. Its
// capacity is set at construction and never changes: Remove zeroes a slot
// instead of compacting, and there is no append. Every indexed operation
// checks the index before touching memory.
//
// # Basic Usage
//
//	arr, err := fixedarray.New[int32](64)
//	if err != nil {
//		return err
//	}
//	defer arr.Release() // Free the backing memory
//
//	arr.Fill(math.MaxInt32)
//	v, err := arr.Get(3)      // copy of slot 3
//	old, err := arr.Remove(3) // returns the value, zeroes the slot
//	err = arr.Set(64, 1)      // ErrIndexOutOfRange
//
// # Ownership
//
// An Array has a single owner. Release frees its memory; a runtime cleanup
// frees arrays that become unreachable without it. IntoIter moves the Array
// into an Iter, after which the original panics on use:
//
//	it := arr.IntoIter()
//	for i, v := range it.All() {
//		fmt.Println(i, v)
//	}
//
// Clone makes a deep copy in a fresh allocation. Equal, Count and String
// work on clones, so they never consume their arguments.
//
// # Errors
//
// All errors are Error values, which compare by message. Allocation errors
// come straight from the alloc package. MustNew, FromSeq and Clone panic
// instead of returning allocation errors.
//
// # Thread Safety
//
// Array and Iter are not goroutine-safe. Different goroutines may own
// different arrays.
package fixedarray
