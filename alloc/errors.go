package alloc

import "github.com/pavanmanishd/fixedarray/arrayerr"

var (
	// ErrZeroSizeAllocation indicates the requested region would be zero bytes long.
	ErrZeroSizeAllocation = arrayerr.New("alloc: cannot allocate zero sized value")

	// ErrSizeOverflow indicates element size * count does not fit the platform int.
	ErrSizeOverflow = arrayerr.New("alloc: overflow when computing layout size")

	// ErrInvalidLayout indicates the (size, align) pair is not a legal layout.
	ErrInvalidLayout = arrayerr.New("alloc: invalid layout")

	// ErrAllocationFailed indicates the platform returned no usable memory.
	ErrAllocationFailed = arrayerr.New("alloc: failed to allocate memory for the array")
)
