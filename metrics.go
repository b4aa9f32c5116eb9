package vector

import "math"

// Size returns the number of live elements.
func (v *Vector[T]) Size() int {
	return v.size
}

// Cap returns the number of allocated slots, occupied or not.
func (v *Vector[T]) Cap() int {
	return len(v.data)
}

// Empty reports whether the vector holds no live elements.
func (v *Vector[T]) Empty() bool {
	return v.size == 0
}

// Full reports whether every allocated slot is live. Note an empty vector
// with no buffer is full by this definition (zero of zero slots).
func (v *Vector[T]) Full() bool {
	return v.size == len(v.data)
}

// MaxSize returns the theoretical upper bound on the element count.
func (v *Vector[T]) MaxSize() int {
	return math.MaxInt
}

// Utilization returns the ratio of live elements to allocated slots
// (0.0 to 1.0). Returns 0.0 when no buffer is allocated.
func (v *Vector[T]) Utilization() float64 {
	if len(v.data) == 0 {
		return 0
	}
	return float64(v.size) / float64(len(v.data))
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	return VectorMetrics{
		Size:        v.size,
		Capacity:    len(v.data),
		Utilization: v.Utilization(),
	}
}

// VectorMetrics contains statistical information about a vector.
type VectorMetrics struct {
	Size        int     // Live elements
	Capacity    int     // Allocated slots
	Utilization float64 // Ratio of live to allocated (0.0-1.0)
}
