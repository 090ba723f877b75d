// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/strided/internal/tensor"
)

// Type aliases for public API

// DType is a constraint for view element types.
// Supported types: float32, float64, int32, int64, uint8, bool.
type DType = tensor.DType

// DataType represents the element type of a view at runtime.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint8   DataType = tensor.Uint8
	Bool    DataType = tensor.Bool
)

// Shape represents the extents of a view.
// Example: Shape{2, 3, 4} is a 3D view with dimensions 2×3×4.
type Shape = tensor.Shape

// View is a strided window over a shared buffer.
//
// View provides:
//   - Zero-copy slicing (Slice) and broadcasting (Expand)
//   - Row-major copy-out (FlattenTo, Flatten)
//   - Element access (At, Set)
//   - Reference-counted buffer sharing (Clone, Release)
type View[T DType] = tensor.View[T]

// Range selects an interval of one dimension for Slice.
type Range = tensor.Range

// Error types carrying the offending dimension.
type (
	RankMismatchError = tensor.RankMismatchError
	BroadcastError    = tensor.BroadcastError
	RangeError        = tensor.RangeError
)

// Sentinel errors.
var (
	ErrRankMismatch        = tensor.ErrRankMismatch
	ErrNotBroadcastable    = tensor.ErrNotBroadcastable
	ErrInvalidShape        = tensor.ErrInvalidShape
	ErrShapeMismatch       = tensor.ErrShapeMismatch
	ErrInvalidStride       = tensor.ErrInvalidStride
	ErrOutOfRange          = tensor.ErrOutOfRange
	ErrOutOfBounds         = tensor.ErrOutOfBounds
	ErrDestinationTooShort = tensor.ErrDestinationTooShort
)

// Creation functions

// Wrap creates a row-major view over data without copying it.
//
// Example:
//
//	v, err := tensor.Wrap([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
func Wrap[T DType](data []T, shape Shape) (*View[T], error) {
	return tensor.Wrap(data, shape)
}

// WrapPinned creates a row-major view over data whose buffer is marked
// pinned. Every view derived from it reports IsPinned.
func WrapPinned[T DType](data []T, shape Shape) (*View[T], error) {
	return tensor.WrapPinned(data, shape)
}

// WrapStrided creates a view over data with an explicit, non-negative
// stride. Every reachable index must fall inside data.
func WrapStrided[T DType](data []T, shape Shape, stride []int, pinned bool) (*View[T], error) {
	return tensor.WrapStrided(data, shape, stride, pinned)
}

// FromSlice creates a view over a copy of data.
func FromSlice[T DType](data []T, shape Shape) (*View[T], error) {
	return tensor.FromSlice(data, shape)
}

// Zeros creates a view over a new zeroed buffer.
//
// Example:
//
//	x, err := tensor.Zeros[float32](tensor.Shape{2, 3})
func Zeros[T DType](shape Shape) (*View[T], error) {
	return tensor.Zeros[T](shape)
}

// ExpandStrides returns the strides Expand would assign when broadcasting
// a view with the given shape and stride to target.
func ExpandStrides(shape Shape, stride []int, target Shape) ([]int, error) {
	return tensor.ExpandStrides(shape, stride, target)
}

// Slicing ranges

// Span selects [start, end) of a dimension.
func Span(start, end int) Range {
	return tensor.Span(start, end)
}

// Index selects position i of a dimension, keeping it with extent 1.
func Index(i int) Range {
	return tensor.Index(i)
}

// All selects the full extent of a dimension.
func All() Range {
	return tensor.All()
}
