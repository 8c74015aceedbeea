package tensor

import "fmt"

// MaxRank is the highest tensor rank the compiler understands.
const MaxRank = 4

// Shape represents the logical dimensions of a tensor in row-major
// significance order: the first entry is the most significant dimension.
type Shape []int

// Rank returns the number of dimensions. A scalar has rank 0.
func (s Shape) Rank() int {
	return len(s)
}

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that every dimension is positive.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// Strides calculates row-major strides for the shape:
// strides[i] = product of all dimensions after i, strides[rank-1] = 1.
func (s Shape) Strides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// InnerSize returns the number of elements covered by one step of the most
// significant dimension, i.e. the product of all dimensions after the first.
// It is 1 for ranks 0 and 1.
func (s Shape) InnerSize() int {
	if len(s) == 0 {
		return 1
	}
	n := 1
	for _, dim := range s[1:] {
		n *= dim
	}
	return n
}
