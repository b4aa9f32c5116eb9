package vector

import "fmt"

// Vector is a growable sequence of T stored in one contiguous buffer.
// len(data) is the capacity; the live elements occupy data[:size]. Slots in
// data[size:] are either zero-valued or stale, and never observable through
// the checked accessors. The zero Vector (and *New*) is the empty mode:
// nil buffer, zero size, zero capacity.
//
// Not goroutine-safe. Callers must serialize concurrent mutation.
type Vector[T any] struct {
	data []T
	size int
}

// New creates an empty vector with no allocated buffer.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewSize creates a vector of n zero-valued elements with capacity exactly
// n. It panics with an ErrInvalidArgument wrap when n is negative.
func NewSize[T any](n int) *Vector[T] {
	var zero T
	return NewFill(n, zero)
}

// NewFill creates a vector of n copies of fill with capacity exactly n.
// It panics with an ErrInvalidArgument wrap when n is negative.
func NewFill[T any](n int, fill T) *Vector[T] {
	if n < 0 {
		panic(fmt.Errorf("%w: negative size %d", ErrInvalidArgument, n))
	}
	v := &Vector[T]{data: make([]T, n), size: n}
	for i := range v.data {
		v.data[i] = fill
	}
	return v
}

// Of creates a vector holding values in order, with size == capacity.
func Of[T any](values ...T) *Vector[T] {
	v := &Vector[T]{data: make([]T, len(values)), size: len(values)}
	copy(v.data, values)
	return v
}

// Clone returns a deep copy: a fresh buffer of the receiver's capacity with
// the live elements copied across. The two vectors share no storage.
func (v *Vector[T]) Clone() *Vector[T] {
	c := &Vector[T]{size: v.size}
	if v.data != nil {
		c.data = make([]T, len(v.data))
		copy(c.data, v.data[:v.size])
	}
	return c
}

// Move transfers buffer ownership to a new vector and resets the receiver
// to the empty mode. The reset is what prevents two vectors from aliasing
// one buffer.
func (v *Vector[T]) Move() *Vector[T] {
	moved := &Vector[T]{data: v.data, size: v.size}
	v.data = nil
	v.size = 0
	return moved
}

// Reserve grows the buffer to at least n slots when n exceeds the current
// capacity. Smaller values are a no-op; Reserve never shrinks.
func (v *Vector[T]) Reserve(n int) {
	if n <= len(v.data) {
		return
	}
	v.realloc(n)
}

// ShrinkToFit reallocates so capacity matches size exactly. An empty
// vector drops its buffer and returns to the empty mode.
func (v *Vector[T]) ShrinkToFit() {
	if v.size == len(v.data) {
		return
	}
	if v.size == 0 {
		v.data = nil
		return
	}
	block := make([]T, v.size)
	copy(block, v.data[:v.size])
	v.data = block
}

// PushBack appends x, growing the buffer first when it is full, and returns
// a pointer to the stored slot. The pointer is valid until the next
// reallocation.
func (v *Vector[T]) PushBack(x T) *T {
	if v.size == len(v.data) {
		v.realloc(growCapacity(len(v.data)))
	}
	v.data[v.size] = x
	v.size++
	return &v.data[v.size-1]
}

// PopBack removes and returns the last element, zeroing its slot so the
// collector can reclaim what it referenced. On an empty vector it returns
// the zero value instead of failing; callers who must distinguish the two
// cases check Empty first.
func (v *Vector[T]) PopBack() T {
	var zero T
	if v.size == 0 {
		return zero
	}
	v.size--
	popped := v.data[v.size]
	v.data[v.size] = zero
	return popped
}

// Resize sets the size to n, filling newly exposed slots with the zero
// value. See ResizeFill.
func (v *Vector[T]) Resize(n int) {
	var zero T
	v.ResizeFill(n, zero)
}

// ResizeFill sets the size to exactly n. Growing beyond the current
// capacity reallocates to exactly n slots; growing within it only exposes
// slots, filling each with fill. Shrinking reduces size and leaves capacity
// alone. Panics with an ErrInvalidArgument wrap when n is negative.
func (v *Vector[T]) ResizeFill(n int, fill T) {
	if n < 0 {
		panic(fmt.Errorf("%w: negative size %d", ErrInvalidArgument, n))
	}
	if n > len(v.data) {
		block := make([]T, n)
		copy(block, v.data[:v.size])
		for i := v.size; i < n; i++ {
			block[i] = fill
		}
		v.data = block
		v.size = n
		return
	}
	for i := v.size; i < n; i++ {
		v.data[i] = fill
	}
	v.size = n
}

// Clear destroys all live elements and resets size to zero. Capacity is
// untouched; the buffer is kept for reuse.
func (v *Vector[T]) Clear() {
	if v.size == 0 {
		return
	}
	clear(v.data[:v.size])
	v.size = 0
}

// Swap exchanges buffer, size and capacity with other in O(1).
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.data, other.data = other.data, v.data
	v.size, other.size = other.size, v.size
}

// realloc moves the live elements into a fresh buffer of newCap slots.
// Extra slots carry the zero value. Every outstanding iterator and raw
// pointer is invalid afterwards.
func (v *Vector[T]) realloc(newCap int) {
	block := make([]T, newCap)
	copy(block, v.data[:v.size])
	v.data = block
}

// growCapacity applies the 1.5x policy: c + c/2. The formula makes no
// progress below capacity two, so those cases step by one instead.
func growCapacity(c int) int {
	n := c + c/2
	if n <= c {
		n = c + 1
	}
	return n
}
