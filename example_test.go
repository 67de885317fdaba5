package fixedarray

import (
	"errors"
	"fmt"
	"math"
)

// Example demonstrates basic array usage
func Example() {
	arr, err := New[int32](64)
	if err != nil {
		panic(err)
	}
	defer arr.Release() // Always clean up

	arr.Fill(math.MaxInt32)

	// Remove every slot holding the maximum value
	for idx, item := range arr.Clone().IntoIter().All() {
		if item == math.MaxInt32 {
			_, _ = arr.Remove(idx)
		}
	}
	fmt.Printf("Zeroed slots: %d of %d\n", Count(arr, 0), arr.Cap())

	counts := MustNew[uint](64)
	defer counts.Release()
	for idx := 0; idx < counts.Cap(); idx++ {
		_ = counts.Set(idx, 10)
	}
	fmt.Printf("Slots holding 10: %d\n", Count(counts, 10))

	// Output:
	// Zeroed slots: 64 of 64
	// Slots holding 10: 64
}

// ExampleFromSeq demonstrates building an array from a sequence
func ExampleFromSeq() {
	arr := FromSeq(func(yield func(int) bool) {
		for i := 0; i < 5; i++ {
			if !yield(i * 2) {
				return
			}
		}
	})
	defer arr.Release()

	fmt.Println(arr.Cap(), arr)

	// Output:
	// 5 [0 2 4 6 8]
}

// ExampleArray_Get demonstrates bounds checking
func ExampleArray_Get() {
	arr := MustNew[byte](4)
	defer arr.Release()

	_, err := arr.Get(arr.Cap() - 1)
	fmt.Println("last index:", err)

	_, err = arr.Get(arr.Cap())
	fmt.Println("capacity:", err, errors.Is(err, ErrIndexOutOfRange))

	// Output:
	// last index: <nil>
	// capacity: index out of range true
}

// ExampleArray_IntoIter demonstrates consuming iteration
func ExampleArray_IntoIter() {
	arr, err := FromSlice([]string{"a", "b", "c"})
	if err != nil {
		panic(err)
	}

	it := arr.IntoIter() // arr must not be used from here on
	for i, v := range it.All() {
		fmt.Printf("%d=%s\n", i, v)
	}

	// Output:
	// 0=a
	// 1=b
	// 2=c
}
