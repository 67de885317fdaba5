package alloc

import (
	"fmt"
	"math"
	"unsafe"
)

// MaxAlign is the largest alignment the backing allocator guarantees.
const MaxAlign = 2 * unsafe.Sizeof(uintptr(0))

// Layout describes the shape of a memory region.
type Layout struct {
	Size  uintptr // bytes
	Align uintptr // power of two, <= MaxAlign
}

// NewLayout validates size and align. align must be a power of two no larger
// than MaxAlign, and size rounded up to align must still fit in an int.
func NewLayout(size, align uintptr) (Layout, error) {
	if align == 0 || align&(align-1) != 0 || align > MaxAlign {
		return Layout{}, badLayout(size, align)
	}
	if size > uintptr(math.MaxInt)-(align-1) {
		return Layout{}, badLayout(size, align)
	}
	return Layout{Size: size, Align: align}, nil
}

// ArrayLayout returns the layout of n contiguous values of T.
//
// Error states:
//   - the byte size is zero (n == 0 or T is zero sized): ErrZeroSizeAllocation
//   - n is negative, or size * n overflows int: ErrSizeOverflow
//   - the resulting pair is not a legal layout: ErrInvalidLayout
func ArrayLayout[T any](n int) (Layout, error) {
	var zero T
	if n < 0 {
		return Layout{}, ErrSizeOverflow
	}
	size, ok := mulOverflowSafe(int(unsafe.Sizeof(zero)), n)
	switch {
	case !ok:
		return Layout{}, ErrSizeOverflow
	case size == 0:
		return Layout{}, ErrZeroSizeAllocation
	}
	return NewLayout(uintptr(size), unsafe.Alignof(zero))
}

// Padded returns Size rounded up to Align.
func (l Layout) Padded() uintptr {
	return alignUp(l.Size, l.Align)
}

func (l Layout) String() string {
	return fmt.Sprintf("(size: %d, align: %d)", l.Size, l.Align)
}

func badLayout(size, align uintptr) error {
	return fmt.Errorf("%w (size: %d, align: %d)", ErrInvalidLayout, size, align)
}

// alignUp rounds off up to a multiple of align, which must be a power of two.
func alignUp(off, align uintptr) uintptr {
	mask := align - 1
	return (off + mask) &^ mask
}

// mulOverflowSafe multiplies two non-negative ints, returning ok = false when
// the result would overflow int.
func mulOverflowSafe(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}
