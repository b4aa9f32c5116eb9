// Package vector implements a generic dynamic array: a growable container
// backed by a single contiguous heap buffer.
//
// # Overview
//
// A Vector owns exactly one buffer of element slots and tracks how many of
// them are live. Appends are amortized O(1) thanks to geometric capacity
// growth, random access is O(1), and positional insert/erase are O(n).
// This is useful for:
//
//   - Sequences whose length is unknown up front
//   - Index-heavy workloads that want contiguous storage
//   - Code ported from languages with vector/ArrayList-style containers
//
// # Basic Usage
//
//	v := vector.Of(1, 2, 3)
//	v.PushBack(4)
//
//	for it := v.Begin(); !it.Equal(v.End()); it.Next() {
//		fmt.Println(it.Value())
//	}
//
//	last := v.PopBack() // 4
//
// # Growth Policy
//
// When an append finds the buffer full, capacity grows by half its current
// value (the 1.5x rule), with small capacities bumped so growth always makes
// progress. Starting from an empty vector the capacity sequence is
// 1, 2, 3, 4, 6, 9, ... Growth reallocates: live elements are copied into
// the new buffer and the old one is dropped. Capacity never shrinks except
// through ShrinkToFit.
//
// # Bounds Checking
//
// Element access comes in two checked flavors that fail through different
// kinds: At panics with an error wrapping ErrInvalidArgument, Get panics
// with *Error (the container's own message-carrying type). Front, Back and
// Insert panic with ErrOutOfRange wraps. Erase with a bad index is a silent
// no-op returning the zero value. All failed calls leave the vector
// untouched.
//
// # Iterator Validity
//
// Iterators and the slices returned by Data and Slice are raw views into
// the current buffer. Any operation that may reallocate (PushBack, Insert,
// InsertSlice, Reserve, Resize, ShrinkToFit) invalidates all of them, as
// does the vector becoming unreachable. Using a stale iterator is undefined
// behavior; the cursor performs no checking.
//
// # Thread Safety
//
// None. A Vector must not be mutated concurrently; callers needing shared
// access must serialize it themselves. No locked wrapper is provided
// because the pointer and iterator surfaces could not be made safe by a
// lock around the container anyway.
//
// # Arithmetic and Comparison
//
// Elementwise combinators and lexicographic comparisons live in free
// generic functions (Add, Sub, Mul, Div, their scalar variants, Compare,
// Equal and friends) because they need Ordered or numeric element types,
// which a method on Vector[T any] cannot require. Add and Sub tolerate
// mismatched sizes by zero-padding the shorter operand; Mul and Div demand
// equal sizes.
package vector
