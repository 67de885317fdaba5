package fixedarray

import (
	"github.com/pavanmanishd/fixedarray/alloc"
	"github.com/pavanmanishd/fixedarray/arrayerr"
)

// Error is the message-carrying error value returned by this module.
// Two Errors are equal iff their messages are equal.
type Error = arrayerr.Error

// ErrIndexOutOfRange is returned by Get, Set and Remove for an index outside
// [0, Cap()).
var ErrIndexOutOfRange = arrayerr.New("index out of range")

// Allocator errors, returned unchanged by New, FromSlice and FromRaw.
var (
	ErrZeroSizeAllocation = alloc.ErrZeroSizeAllocation
	ErrSizeOverflow       = alloc.ErrSizeOverflow
	ErrInvalidLayout      = alloc.ErrInvalidLayout
	ErrAllocationFailed   = alloc.ErrAllocationFailed
)
