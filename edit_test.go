package vector

import "testing"

func TestEraseIndex(t *testing.T) {
	v := Of(1, 2, 3, 4, 5)
	if got := v.Erase(2); got != 3 {
		t.Errorf("Erase(2) = %d, want 3", got)
	}
	checkElements(t, v, []int{1, 2, 4, 5})
	if v.Cap() != 5 {
		t.Errorf("Cap() = %d, want 5", v.Cap())
	}
}

func TestEraseLastIndex(t *testing.T) {
	v := Of(1, 2, 3)
	if got := v.Erase(2); got != 3 {
		t.Errorf("Erase(2) = %d, want 3", got)
	}
	checkElements(t, v, []int{1, 2})
}

func TestEraseOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		index int
	}{
		{"past end", 5},
		{"at size", 3},
		{"negative", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Of(1, 2, 3)
			// Silent no-op: zero value back, nothing changed.
			if got := v.Erase(tt.index); got != 0 {
				t.Errorf("Erase(%d) = %d, want 0", tt.index, got)
			}
			checkElements(t, v, []int{1, 2, 3})
		})
	}
}

func TestErasePos(t *testing.T) {
	v := Of(1, 2, 3, 4, 5)
	it := v.Begin()
	it.Add(2)
	v.ErasePos(it)
	checkElements(t, v, []int{1, 2, 4, 5})
}

func TestErasePosPastEnd(t *testing.T) {
	v := Of(1, 2, 3)
	v.ErasePos(v.End())
	checkElements(t, v, []int{1, 2, 3})
}

func TestEraseRange(t *testing.T) {
	v := Of(1, 2, 3, 4, 5)
	first := v.Begin()
	first.Add(1)
	last := v.End()
	last.Sub(1)
	v.EraseRange(first, last)
	checkElements(t, v, []int{1, 5})
	if v.Cap() != 5 {
		t.Errorf("Cap() = %d, want 5", v.Cap())
	}
}

func TestEraseRangeEmpty(t *testing.T) {
	v := Of(1, 2, 3)
	it := v.Begin()
	it.Add(1)
	v.EraseRange(it, it)
	checkElements(t, v, []int{1, 2, 3})
}

func TestEraseRangeAll(t *testing.T) {
	v := Of(1, 2, 3)
	v.EraseRange(v.Begin(), v.End())
	if v.Size() != 0 {
		t.Errorf("Size() = %d, want 0", v.Size())
	}
	if v.Cap() != 3 {
		t.Errorf("Cap() = %d, want 3", v.Cap())
	}
}

func TestInsertIndex(t *testing.T) {
	v := New[int]()
	for i := 1; i <= 5; i++ {
		v.PushBack(i)
	}
	// size 5, capacity 6: in-place shift, no growth.
	slot := v.Insert(2, 10)
	if *slot != 10 {
		t.Errorf("returned slot = %d, want 10", *slot)
	}
	checkElements(t, v, []int{1, 2, 10, 3, 4, 5})
	if v.Cap() != 6 {
		t.Errorf("Cap() = %d, want 6", v.Cap())
	}
}

func TestInsertGrows(t *testing.T) {
	v := Of(1, 2, 3)
	v.Insert(1, 9)
	checkElements(t, v, []int{1, 9, 2, 3})
	if v.Cap() != 4 {
		t.Errorf("Cap() = %d, want 4", v.Cap())
	}
}

func TestInsertOutOfRange(t *testing.T) {
	v := Of(1, 2, 3)
	mustPanicIs(t, ErrOutOfRange, func() {
		v.Insert(v.Size(), 10)
	})
	mustPanicIs(t, ErrOutOfRange, func() {
		v.Insert(-1, 10)
	})
	checkElements(t, v, []int{1, 2, 3})
}

func TestInsertPos(t *testing.T) {
	v := Of(1, 2, 3, 4, 5)
	pos := v.Begin()
	pos.Add(2)
	v.InsertPos(pos, 10)
	checkElements(t, v, []int{1, 2, 10, 3, 4, 5})
}

func TestInsertSlice(t *testing.T) {
	v := New[int]()
	for i := 1; i <= 5; i++ {
		v.PushBack(i)
	}
	// size 5, capacity 6; 5+3 > 6, so capacity becomes max(6+6/2, 8) = 9.
	pos := v.Begin()
	pos.Add(2)
	v.InsertSlice(pos, 10, 20, 30)
	checkElements(t, v, []int{1, 2, 10, 20, 30, 3, 4, 5})
	if v.Cap() != 9 {
		t.Errorf("Cap() = %d, want 9", v.Cap())
	}
}

func TestInsertSliceAtEnd(t *testing.T) {
	v := Of(1, 2, 3)
	v.InsertSlice(v.End(), 4, 5)
	checkElements(t, v, []int{1, 2, 3, 4, 5})
}

func TestInsertSliceNothing(t *testing.T) {
	v := Of(1, 2, 3)
	v.InsertSlice(v.Begin())
	checkElements(t, v, []int{1, 2, 3})
	if v.Cap() != 3 {
		t.Errorf("Cap() = %d, want 3", v.Cap())
	}
}

func TestInsertSlicePastEnd(t *testing.T) {
	v := Of(1, 2, 3)
	v.Reserve(6)
	pos := v.End()
	pos.Add(1)
	mustPanicIs(t, ErrOutOfRange, func() {
		v.InsertSlice(pos, 9)
	})
	checkElements(t, v, []int{1, 2, 3})
}

// Erasing an element and reinserting it at the same index restores the
// original sequence.
func TestEraseInsertInverse(t *testing.T) {
	for index := 0; index < 4; index++ {
		v := Of(1, 2, 3, 4, 5)
		old := v.Erase(index)
		v.Insert(index, old)
		checkElements(t, v, []int{1, 2, 3, 4, 5})
	}
}
