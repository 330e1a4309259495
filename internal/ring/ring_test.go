package ring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuffer_PushAndOrder(t *testing.T) {
	b := New[int](4)
	for i := 1; i <= 3; i++ {
		assert.False(t, b.Push(i))
	}
	assert.Equal(t, 3, b.Len())
	assert.Equal(t, []int{1, 2, 3}, b.Slice())
	assert.Equal(t, 1, b.At(0))
	assert.Equal(t, 3, b.Newest(0))
	assert.Equal(t, 2, b.Newest(1))
}

func TestBuffer_EvictsOldest(t *testing.T) {
	b := New[int](4)
	for i := 1; i <= 4; i++ {
		b.Push(i)
	}
	assert.True(t, b.Full())
	assert.True(t, b.Push(5), "push into a full buffer evicts")
	assert.Equal(t, []int{2, 3, 4, 5}, b.Slice())
	assert.Equal(t, 4, b.Len())
}

func TestBuffer_NonPowerOfTwoCapacity(t *testing.T) {
	b := New[string](5)
	assert.Equal(t, 5, b.Cap())
	for _, s := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		b.Push(s)
	}
	assert.Equal(t, []string{"c", "d", "e", "f", "g"}, b.Slice())
}

func TestBuffer_WrapsManyTimes(t *testing.T) {
	b := New[int](128)
	for i := range 1000 {
		b.Push(i)
	}
	assert.Equal(t, 128, b.Len())
	for i := range 128 {
		assert.Equal(t, 1000-128+i, b.At(i))
	}
}

func TestBuffer_MinimumCapacity(t *testing.T) {
	b := New[int](0)
	assert.Equal(t, 1, b.Cap())
	b.Push(7)
	b.Push(8)
	assert.Equal(t, []int{8}, b.Slice())
}

func TestBuffer_AtOutOfRange(t *testing.T) {
	b := New[int](2)
	assert.Panics(t, func() { b.At(0) })
	b.Push(1)
	assert.Panics(t, func() { b.At(1) })
	assert.Panics(t, func() { b.Newest(1) })
}

func TestBuffer_Clear(t *testing.T) {
	b := New[int](3)
	b.Push(1)
	b.Push(2)
	b.Clear()
	assert.Zero(t, b.Len())
	assert.Empty(t, b.Slice())
	b.Push(9)
	assert.Equal(t, []int{9}, b.Slice())
}

func BenchmarkBuffer_Push(b *testing.B) {
	r := New[[2]float32](128)
	b.ReportAllocs()
	for b.Loop() {
		r.Push([2]float32{1, 2})
	}
}
