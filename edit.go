package vector

import "fmt"

// Erase removes the element at index by shifting the tail left one slot and
// returns a copy of the removed value. An out-of-range index is a silent
// no-op returning the zero value; callers who need to tell "erased a zero"
// from "index was invalid" must bounds-check beforehand.
func (v *Vector[T]) Erase(index int) T {
	var zero T
	if index < 0 || index >= v.size {
		return zero
	}
	erased := v.data[index]
	copy(v.data[index:v.size-1], v.data[index+1:v.size])
	v.size--
	v.data[v.size] = zero
	return erased
}

// ErasePos removes the element at the iterator position, computed as the
// offset from Begin. Positions outside the live region are ignored.
func (v *Vector[T]) ErasePos(pos Iterator[T]) {
	index := pos.Distance(v.Begin())
	if index >= v.size {
		return
	}
	v.Erase(index)
}

// EraseRange removes the half-open range [first, last) with the same
// left-shift semantics as Erase. An empty range or one starting outside the
// live region is ignored; a range overshooting the live region is clamped
// to it.
func (v *Vector[T]) EraseRange(first, last Iterator[T]) {
	count := first.Distance(last)
	if count == 0 {
		return
	}
	start := v.Begin().Distance(first)
	if start >= v.size {
		return
	}
	end := start + count
	if end > v.size {
		end = v.size
	}
	copy(v.data[start:], v.data[end:v.size])
	removed := end - start
	clear(v.data[v.size-removed : v.size])
	v.size -= removed
}

// Insert places x at index, shifting the elements in [index, Size()) right
// by one, growing the buffer first when it is full. It panics with an
// ErrOutOfRange wrap when index is negative or not below Size(); appending
// goes through PushBack. Returns a pointer to the inserted slot.
func (v *Vector[T]) Insert(index int, x T) *T {
	if index < 0 || index >= v.size {
		panic(fmt.Errorf("%w: insert index %d for size %d", ErrOutOfRange, index, v.size))
	}
	if v.size == len(v.data) {
		v.realloc(growCapacity(len(v.data)))
	}
	copy(v.data[index+1:v.size+1], v.data[index:v.size])
	v.data[index] = x
	v.size++
	return &v.data[index]
}

// InsertPos inserts x at the iterator position, computed as the offset from
// Begin. Same contract as Insert.
func (v *Vector[T]) InsertPos(pos Iterator[T], x T) {
	v.Insert(pos.Distance(v.Begin()), x)
}

// InsertSlice inserts values in order starting at the iterator position.
// The end position is allowed (bulk append). When the buffer is too small
// it grows to max(cap+cap/2, Size()+len(values)) in one reallocation, then
// the tail shifts right by len(values). Panics with an ErrOutOfRange wrap
// when the position lies beyond End.
func (v *Vector[T]) InsertSlice(pos Iterator[T], values ...T) {
	index := pos.Distance(v.Begin())
	if index > v.size {
		panic(fmt.Errorf("%w: insert position %d for size %d", ErrOutOfRange, index, v.size))
	}
	count := len(values)
	if count == 0 {
		return
	}
	newSize := v.size + count
	if newSize > len(v.data) {
		newCap := growCapacity(len(v.data))
		if newSize > newCap {
			newCap = newSize
		}
		v.realloc(newCap)
	}
	copy(v.data[index+count:newSize], v.data[index:v.size])
	copy(v.data[index:], values)
	v.size = newSize
}
