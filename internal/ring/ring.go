// Package ring provides a fixed-capacity FIFO that overwrites its oldest
// element when full.
package ring

// Buffer is a fixed-capacity circular buffer.
// Capacity is rounded up to a power of 2 so positions wrap with a mask
// instead of a modulo. Push never allocates.
//
// Buffer is not safe for concurrent use.
type Buffer[T any] struct {
	data     []T
	mask     int // len(data) - 1
	limit    int // Requested capacity, <= len(data)
	size     int
	readPos  int
	writePos int
}

// New creates a buffer holding at most capacity elements.
func New[T any](capacity int) *Buffer[T] {
	if capacity < 1 {
		capacity = 1
	}

	cap2 := 1
	for cap2 < capacity {
		cap2 <<= 1
	}

	return &Buffer[T]{
		data:  make([]T, cap2),
		mask:  cap2 - 1,
		limit: capacity,
	}
}

// Push appends v, evicting the oldest element if the buffer is full.
// It reports whether an element was evicted.
func (b *Buffer[T]) Push(v T) bool {
	evicted := false
	if b.size >= b.limit {
		var zero T
		b.data[b.readPos] = zero
		b.readPos = (b.readPos + 1) & b.mask
		b.size--
		evicted = true
	}

	b.data[b.writePos] = v
	b.writePos = (b.writePos + 1) & b.mask
	b.size++
	return evicted
}

// At returns the i-th element, oldest first. It panics if i is out of range.
func (b *Buffer[T]) At(i int) T {
	if i < 0 || i >= b.size {
		panic("ring: index out of range")
	}
	return b.data[(b.readPos+i)&b.mask]
}

// Newest returns the i-th most recent element; Newest(0) is the last push.
func (b *Buffer[T]) Newest(i int) T {
	return b.At(b.size - 1 - i)
}

// Len returns the number of stored elements.
func (b *Buffer[T]) Len() int {
	return b.size
}

// Cap returns the maximum number of stored elements.
func (b *Buffer[T]) Cap() int {
	return b.limit
}

// Full reports whether the next Push will evict.
func (b *Buffer[T]) Full() bool {
	return b.size >= b.limit
}

// Slice returns a copy of the contents, oldest first.
func (b *Buffer[T]) Slice() []T {
	out := make([]T, b.size)
	for i := range out {
		out[i] = b.data[(b.readPos+i)&b.mask]
	}
	return out
}

// Clear removes all elements.
func (b *Buffer[T]) Clear() {
	clear(b.data)
	b.size = 0
	b.readPos = 0
	b.writePos = 0
}
