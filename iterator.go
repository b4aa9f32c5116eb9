package vector

import "unsafe"

// Iterator is a forward cursor over a vector's buffer: one raw position,
// no ownership, no allocation. Its lifetime is independent of the vector's,
// but any reallocation of the buffer — or the vector becoming unreachable —
// leaves the cursor dangling, and using it then is undefined behavior.
// That is a precondition on the caller; nothing here checks it.
//
// Two iterators are equal exactly when they reference the same position.
type Iterator[T any] struct {
	cur *T
}

// NewIterator returns an iterator positioned at ptr.
func NewIterator[T any](ptr *T) Iterator[T] {
	return Iterator[T]{cur: ptr}
}

// Ptr returns the current position. It doubles as the member-access route
// for struct elements: it.Ptr().Field.
func (it Iterator[T]) Ptr() *T {
	return it.cur
}

// SetPtr repositions the iterator at ptr.
func (it *Iterator[T]) SetPtr(ptr *T) {
	it.cur = ptr
}

// Value returns the element at the current position. Undefined when the
// position is nil or one past the last live element.
func (it Iterator[T]) Value() T {
	return *it.cur
}

// Next advances by one slot and returns the receiver.
func (it *Iterator[T]) Next() *Iterator[T] {
	it.advance(1)
	return it
}

// NextPost advances by one slot and returns the pre-advance copy.
func (it *Iterator[T]) NextPost() Iterator[T] {
	old := *it
	it.advance(1)
	return old
}

// Prev steps back by one slot and returns the receiver.
func (it *Iterator[T]) Prev() *Iterator[T] {
	it.advance(-1)
	return it
}

// PrevPost steps back by one slot and returns the pre-step copy.
func (it *Iterator[T]) PrevPost() Iterator[T] {
	old := *it
	it.advance(-1)
	return old
}

// Add moves the cursor forward by n slots in place and returns the
// receiver, not a fresh iterator. That mutating behavior deviates from
// conventional cursor arithmetic on purpose; copy the iterator first when
// the original position must survive.
func (it *Iterator[T]) Add(n int) *Iterator[T] {
	it.advance(n)
	return it
}

// Sub moves the cursor backward by n slots in place and returns the
// receiver. Same mutating contract as Add.
func (it *Iterator[T]) Sub(n int) *Iterator[T] {
	it.advance(-n)
	return it
}

// Distance returns the absolute number of slots between the two positions,
// never a signed offset. Both iterators must point into the same buffer.
// Zero-size element types collapse to distance zero.
func (it Iterator[T]) Distance(other Iterator[T]) int {
	var zero T
	size := unsafe.Sizeof(zero)
	if size == 0 {
		return 0
	}
	a := uintptr(unsafe.Pointer(it.cur))
	b := uintptr(unsafe.Pointer(other.cur))
	if a < b {
		a, b = b, a
	}
	return int((a - b) / size)
}

// Equal reports whether both iterators reference the same position.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.cur == other.cur
}

func (it *Iterator[T]) advance(n int) {
	var zero T
	it.cur = (*T)(unsafe.Add(unsafe.Pointer(it.cur), n*int(unsafe.Sizeof(zero))))
}

// Begin returns an iterator at the first element, or the zero iterator when
// no buffer is allocated. Begin and End compare equal on an empty vector.
func (v *Vector[T]) Begin() Iterator[T] {
	if len(v.data) == 0 {
		return Iterator[T]{}
	}
	return Iterator[T]{cur: &v.data[0]}
}

// End returns an iterator one past the last live element.
func (v *Vector[T]) End() Iterator[T] {
	if len(v.data) == 0 {
		return Iterator[T]{}
	}
	it := v.Begin()
	it.advance(v.size)
	return it
}
