package alloc

import (
	"math"
	"reflect"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type plainStruct struct {
	a int64
	b int32
	c int16
	d int8
}

type pointerStruct struct {
	id   int
	name string
}

func TestAllocateZeroed(t *testing.T) {
	h, err := Allocate[int32](64)
	require.NoError(t, err)
	defer Free(h)

	require.False(t, h.IsZero())
	assert.NotNil(t, h.Pointer())
	assert.Equal(t, 64, h.Len())
	assert.True(t, h.OffHeap())
	assert.Equal(t, Layout{Size: 256, Align: 4}, h.Layout())

	s := h.Slice()
	require.Len(t, s, 64)
	for i, v := range s {
		assert.Zero(t, v, "slot %d", i)
	}

	s[10] = 42
	assert.Equal(t, int32(42), h.Slice()[10])
}

func TestAllocateStruct(t *testing.T) {
	h, err := Allocate[plainStruct](8)
	require.NoError(t, err)
	defer Free(h)

	assert.True(t, h.OffHeap())
	for _, v := range h.Slice() {
		assert.Equal(t, plainStruct{}, v)
	}
	addr := uintptr(h.Pointer())
	assert.Zero(t, addr%unsafe.Alignof(plainStruct{}), "pointer %x not aligned", addr)
}

func TestAllocatePointerTypesStayOnGoHeap(t *testing.T) {
	h, err := Allocate[pointerStruct](4)
	require.NoError(t, err)
	defer Free(h)

	assert.False(t, h.OffHeap())
	s := h.Slice()
	s[0] = pointerStruct{id: 1, name: "one"}
	assert.Equal(t, "one", h.Slice()[0].name)
	assert.Equal(t, pointerStruct{}, h.Slice()[3])
}

func TestAllocateDisjoint(t *testing.T) {
	a, err := Allocate[int64](16)
	require.NoError(t, err)
	defer Free(a)
	b, err := Allocate[int64](16)
	require.NoError(t, err)
	defer Free(b)

	require.NotEqual(t, a.Pointer(), b.Pointer())
	a.Slice()[0] = 7
	assert.Zero(t, b.Slice()[0])
}

func TestAllocateErrors(t *testing.T) {
	_, err := Allocate[int](0)
	assert.ErrorIs(t, err, ErrZeroSizeAllocation)

	_, err = Allocate[struct{}](8)
	assert.ErrorIs(t, err, ErrZeroSizeAllocation)

	_, err = Allocate[int64](-5)
	assert.ErrorIs(t, err, ErrSizeOverflow)

	_, err = Allocate[[1 << 20]byte](math.MaxInt / (1 << 10))
	assert.ErrorIs(t, err, ErrSizeOverflow)
}

func TestFreeZeroHandle(t *testing.T) {
	before := Stats()
	require.NoError(t, Free(Handle[int]{}))
	assert.Equal(t, before, Stats())

	var h Handle[int]
	assert.True(t, h.IsZero())
	assert.Nil(t, h.Slice())
}

func TestHasPointers(t *testing.T) {
	tests := []struct {
		value any
		want  bool
	}{
		{int32(0), false},
		{float64(0), false},
		{plainStruct{}, false},
		{[4]uint16{}, false},
		{complex128(0), false},
		{"", true},
		{[]int{}, true},
		{&plainStruct{}, true},
		{pointerStruct{}, true},
		{map[int]int{}, true},
		{[2]string{}, true},
		{[0]string{}, false},
		{struct{ p unsafe.Pointer }{}, true},
	}

	for _, tt := range tests {
		typ := reflect.TypeOf(tt.value)
		assert.Equal(t, tt.want, hasPointers(typ), "hasPointers(%s)", typ)
	}

	assert.True(t, hasPointers(reflect.TypeFor[error]()))
}

func BenchmarkAllocate(b *testing.B) {
	b.Run("off-heap", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			h, _ := Allocate[int64](64)
			_ = Free(h)
		}
	})

	b.Run("go-heap", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			h, _ := Allocate[*int64](64)
			_ = Free(h)
		}
	})

	b.Run("builtin", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = make([]int64, 64)
		}
	})
}
