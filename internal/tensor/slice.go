package tensor

// Range selects the half-open interval [Start, End) of one dimension.
type Range struct {
	Start int
	End   int
	full  bool
}

// Span selects [start, end).
func Span(start, end int) Range {
	return Range{Start: start, End: end}
}

// Index selects the single position i, keeping the dimension with extent 1.
func Index(i int) Range {
	return Range{Start: i, End: i + 1}
}

// All selects the full extent of a dimension.
func All() Range {
	return Range{full: true}
}

// Slice narrows v along each dimension by the given ranges.
// Dimensions without a range are selected fully. The result shares v's
// buffer and strides; only its shape and offset change, so slicing a
// broadcast view keeps its zero strides.
//
// Example:
//
//	batch, _ := row.Expand(Shape{100, 10})
//	r, _ := batch.Slice(tensor.Index(42), tensor.All()) // shape [1, 10]
func (v *View[T]) Slice(ranges ...Range) (*View[T], error) {
	if len(ranges) > len(v.shape) {
		return nil, &RankMismatchError{Got: len(ranges), Want: len(v.shape)}
	}

	shape := v.shape.Clone()
	offset := v.offset
	for d, r := range ranges {
		if r.full {
			continue
		}
		if r.Start < 0 || r.Start > r.End || r.End > v.shape[d] {
			return nil, &RangeError{Dim: d, Range: r, Extent: v.shape[d]}
		}
		shape[d] = r.End - r.Start
		if shape[d] > 0 {
			offset += r.Start * v.stride[d]
		}
	}
	return v.derive(shape, v.stride, offset), nil
}
