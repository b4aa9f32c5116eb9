package vector

import (
	"fmt"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Number constrains the element types accepted by the arithmetic
// combinators.
type Number interface {
	constraints.Integer | constraints.Float
}

// These live as free functions rather than methods because they need
// Ordered or numeric elements, and a method on Vector[T any] cannot narrow
// its own type parameter.

// Compare orders two vectors lexicographically: first by size, then by the
// first differing element. It returns -1 when a sorts before b, 1 when
// after, and 0 when they are equal.
func Compare[T constraints.Ordered](a, b *Vector[T]) int {
	if a.size != b.size {
		if a.size < b.size {
			return -1
		}
		return 1
	}
	for i := 0; i < a.size; i++ {
		switch {
		case a.data[i] < b.data[i]:
			return -1
		case b.data[i] < a.data[i]:
			return 1
		}
	}
	return 0
}

// Less reports whether a sorts before b under Compare.
func Less[T constraints.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) < 0
}

// Greater reports whether a sorts after b under Compare.
func Greater[T constraints.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) > 0
}

// LessEqual reports whether a sorts before b or equals it.
func LessEqual[T constraints.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) <= 0
}

// GreaterEqual reports whether a sorts after b or equals it.
func GreaterEqual[T constraints.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) >= 0
}

// Equal reports whether both vectors have the same size and elementwise
// equal live elements. Capacity is ignored.
func Equal[T comparable](a, b *Vector[T]) bool {
	return slices.Equal(a.Slice(), b.Slice())
}

// NotEqual is the negation of Equal.
func NotEqual[T comparable](a, b *Vector[T]) bool {
	return !Equal(a, b)
}

// Contains reports whether x occurs among the live elements.
func Contains[T comparable](v *Vector[T], x T) bool {
	return slices.Contains(v.Slice(), x)
}

// IndexOf returns the index of the first occurrence of x among the live
// elements, or -1 when absent.
func IndexOf[T comparable](v *Vector[T], x T) int {
	return slices.Index(v.Slice(), x)
}

// Add combines two vectors elementwise into a new vector. Mismatched sizes
// are tolerated: the shorter operand is zero-padded and the result takes
// the longer length.
func Add[T Number](a, b *Vector[T]) *Vector[T] {
	return combinePadded(a, b, func(x, y T) T { return x + y })
}

// Sub subtracts b from a elementwise with the same zero-padding rule as
// Add.
func Sub[T Number](a, b *Vector[T]) *Vector[T] {
	return combinePadded(a, b, func(x, y T) T { return x - y })
}

// Mul multiplies two vectors elementwise. Unlike Add and Sub it requires
// equal sizes, panicking with an ErrInvalidArgument wrap otherwise; the
// additive operators pad, the multiplicative ones reject.
func Mul[T Number](a, b *Vector[T]) *Vector[T] {
	return combineStrict(a, b, func(x, y T) T { return x * y })
}

// Div divides a by b elementwise. Sizes must match, as for Mul. A zero
// divisor element surfaces as the runtime's own division panic for integer
// types.
func Div[T Number](a, b *Vector[T]) *Vector[T] {
	return combineStrict(a, b, func(x, y T) T { return x / y })
}

// AddScalar adds s to every live element, returning a new vector of the
// same length.
func AddScalar[T Number](v *Vector[T], s T) *Vector[T] {
	return mapElems(v, func(x T) T { return x + s })
}

// SubScalar subtracts s from every live element.
func SubScalar[T Number](v *Vector[T], s T) *Vector[T] {
	return mapElems(v, func(x T) T { return x - s })
}

// MulScalar multiplies every live element by s.
func MulScalar[T Number](v *Vector[T], s T) *Vector[T] {
	return mapElems(v, func(x T) T { return x * s })
}

// DivScalar divides every live element by s. A zero s surfaces as the
// runtime's division panic for integer types.
func DivScalar[T Number](v *Vector[T], s T) *Vector[T] {
	return mapElems(v, func(x T) T { return x / s })
}

func combinePadded[T Number](a, b *Vector[T], op func(x, y T) T) *Vector[T] {
	n := a.size
	if b.size > n {
		n = b.size
	}
	result := NewSize[T](n)
	for i := 0; i < n; i++ {
		var x, y T
		if i < a.size {
			x = a.data[i]
		}
		if i < b.size {
			y = b.data[i]
		}
		result.data[i] = op(x, y)
	}
	return result
}

func combineStrict[T Number](a, b *Vector[T], op func(x, y T) T) *Vector[T] {
	if a.size != b.size {
		panic(fmt.Errorf("%w: vector sizes %d and %d are not equal", ErrInvalidArgument, a.size, b.size))
	}
	result := NewSize[T](a.size)
	for i := 0; i < a.size; i++ {
		result.data[i] = op(a.data[i], b.data[i])
	}
	return result
}

func mapElems[T Number](v *Vector[T], op func(x T) T) *Vector[T] {
	result := NewSize[T](v.size)
	for i := 0; i < v.size; i++ {
		result.data[i] = op(v.data[i])
	}
	return result
}
