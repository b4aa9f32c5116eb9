package vector

import "fmt"

// At returns a pointer to the element at index. It panics with an error
// wrapping ErrInvalidArgument when index is outside [0, Size()). The
// returned pointer is valid until the next reallocation.
func (v *Vector[T]) At(index int) *T {
	if index < 0 || index >= v.size {
		panic(fmt.Errorf("%w: index %d out of range for size %d", ErrInvalidArgument, index, v.size))
	}
	return &v.data[index]
}

// Get returns a pointer to the element at index. It is the subscript
// counterpart to At: same check, but an out-of-range index panics with
// *Error instead of an ErrInvalidArgument wrap. The two kinds are kept
// distinct so callers can tell the access paths apart.
func (v *Vector[T]) Get(index int) *T {
	if index < 0 || index >= v.size {
		panic(NewError(fmt.Sprintf("invalid index: %d out of range for size %d", index, v.size)))
	}
	return &v.data[index]
}

// Front returns a pointer to the first live element. It panics with an
// ErrOutOfRange wrap when the vector is empty.
func (v *Vector[T]) Front() *T {
	if v.size == 0 {
		panic(fmt.Errorf("%w: vector is empty", ErrOutOfRange))
	}
	return &v.data[0]
}

// Back returns a pointer to the last live element. It panics with an
// ErrOutOfRange wrap when the vector is empty.
func (v *Vector[T]) Back() *T {
	if v.size == 0 {
		panic(fmt.Errorf("%w: vector is empty", ErrOutOfRange))
	}
	return &v.data[v.size-1]
}

// Data returns the whole backing buffer, capacity slots long. Only
// [0, Size()) holds live elements; the rest is zero-valued or stale.
// The slice goes stale on the next reallocation.
func (v *Vector[T]) Data() []T {
	return v.data
}

// Slice returns the live elements as a view into the buffer. Same validity
// caveat as Data.
func (v *Vector[T]) Slice() []T {
	return v.data[:v.size]
}
