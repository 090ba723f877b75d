package tensor

import (
	"fmt"
	"math"
)

// Shape represents the extents of a view, one per dimension.
type Shape []int

// NumElements returns the logical element count (product of all extents).
// A rank-0 shape describes a scalar and has 1 element.
// The result is only meaningful for shapes that pass Validate.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that no extent is negative and that the element count
// fits in an int. Zero extents are allowed and describe empty views.
func (s Shape) Validate() error {
	empty := false
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("%w: dimension %d is %d (must be >= 0)", ErrInvalidShape, i, dim)
		}
		if dim == 0 {
			empty = true
		}
	}
	if empty {
		return nil
	}

	n := 1
	for _, dim := range s {
		var ok bool
		if n, ok = mulInt(n, dim); !ok {
			return fmt.Errorf("%w: element count of %v overflows int", ErrInvalidShape, s)
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

// ComputeStrides calculates row-major strides for the shape.
// stride[i] is the product of all extents after i.
func (s Shape) ComputeStrides() []int {
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

// reach returns the lowest and highest buffer index, relative to the view
// offset, reachable through shape and stride. ok is false for empty views.
// An index that does not fit in an int is reported as ErrOutOfBounds.
// shape must be non-negative.
func reach(shape Shape, stride []int) (lo, hi int, ok bool, err error) {
	for _, dim := range shape {
		if dim == 0 {
			return 0, 0, false, nil
		}
	}
	for i, dim := range shape {
		step, fits := mulInt(dim-1, stride[i])
		if fits {
			if step < 0 {
				lo, fits = addInt(lo, step)
			} else {
				hi, fits = addInt(hi, step)
			}
		}
		if !fits {
			return 0, 0, false, fmt.Errorf("%w: shape %v with stride %v overflows int indexing",
				ErrOutOfBounds, shape, stride)
		}
	}
	return lo, hi, true, nil
}

// mulInt returns a*b and whether the product fits in an int.
func mulInt(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt) || (b == -1 && a == math.MinInt) {
		return 0, false
	}
	c := a * b
	if c/b != a {
		return 0, false
	}
	return c, true
}

// addInt returns a+b and whether the sum fits in an int.
func addInt(a, b int) (int, bool) {
	c := a + b
	if (b > 0 && c < a) || (b < 0 && c > a) {
		return 0, false
	}
	return c, true
}
