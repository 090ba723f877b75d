package tensor

// maxStackRank is the largest rank whose expanded strides are computed in
// a fixed-size array rather than a heap slice.
const maxStackRank = 8

// Expand returns a view of v broadcast to shape.
//
// shape must have the same rank as v. Each dimension either keeps its
// extent (and stride), or has source extent 1 and is widened to shape[i]
// with stride 0, so every index along it reads the same buffer slot.
// No elements are copied; the result shares v's buffer and pinned flag.
//
// Unlike PyTorch, -1 ("keep this dimension") is not accepted.
//
// Errors:
//   - *RankMismatchError (ErrRankMismatch) if len(shape) != v.Rank()
//   - ErrInvalidShape if shape has a negative extent
//   - *BroadcastError (ErrNotBroadcastable) for the first dimension whose
//     source extent is neither shape[i] nor 1
//
// Example:
//
//	row, _ := tensor.Wrap([]int32{1, 2, 3}, Shape{1, 3})
//	batch, _ := row.Expand(Shape{4, 3}) // stride [0, 1], 12 logical elements
func (v *View[T]) Expand(shape Shape) (*View[T], error) {
	var scratch [maxStackRank]int
	stride := scratch[:0]
	if len(shape) > maxStackRank {
		stride = make([]int, 0, len(shape))
	}

	stride, err := appendExpandedStrides(stride, v.shape, v.stride, shape)
	if err != nil {
		return nil, err
	}
	return WithShapeAndStrideUnchecked(v, shape, stride), nil
}

// ExpandStrides computes the strides that broadcast a view with the given
// shape and stride to target. It reports the same errors as Expand.
func ExpandStrides(shape Shape, stride []int, target Shape) ([]int, error) {
	return appendExpandedStrides(make([]int, 0, len(target)), shape, stride, target)
}

func appendExpandedStrides(dst []int, shape Shape, stride []int, target Shape) ([]int, error) {
	if len(target) != len(shape) {
		return nil, &RankMismatchError{Got: len(target), Want: len(shape)}
	}
	if len(stride) != len(shape) {
		return nil, &RankMismatchError{Got: len(stride), Want: len(shape)}
	}
	if err := target.Validate(); err != nil {
		return nil, err
	}

	for i, dim := range shape {
		switch {
		case dim == target[i]:
			dst = append(dst, stride[i])
		case dim == 1:
			dst = append(dst, 0)
		default:
			return nil, &BroadcastError{Dim: i, From: dim, To: target[i]}
		}
	}
	return dst, nil
}
