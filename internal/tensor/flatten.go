package tensor

import "fmt"

// FlattenTo copies v's logical elements into dst in row-major order (last
// dimension fastest). Broadcast dimensions produce repeated elements.
//
// dst must hold at least NumElements() values; any tail beyond that is left
// untouched. Views whose reach falls outside their buffer, which only the
// unchecked mutators can build, fail with ErrOutOfBounds before anything is
// copied.
func (v *View[T]) FlattenTo(dst []T) error {
	if err := v.checkBounds(); err != nil {
		return err
	}
	n := v.NumElements()
	if len(dst) < n {
		return fmt.Errorf("%w: need %d elements, got %d", ErrDestinationTooShort, n, len(dst))
	}
	if n == 0 {
		return nil
	}

	data := v.buf.data
	if v.IsContiguous() {
		copy(dst[:n], data[v.offset:v.offset+n])
		return nil
	}

	// Rank 0 is always contiguous, so rank >= 1 here. Odometer over all
	// but the last dimension; the inner loop walks the last dimension.
	rank := len(v.shape)
	var scratch [maxStackRank]int
	idx := scratch[:]
	if rank > maxStackRank {
		idx = make([]int, rank)
	}

	inner, innerStride := v.shape[rank-1], v.stride[rank-1]
	base := v.offset
	for out := 0; out < n; out += inner {
		pos := base
		for j := 0; j < inner; j++ {
			dst[out+j] = data[pos]
			pos += innerStride
		}

		for d := rank - 2; d >= 0; d-- {
			idx[d]++
			base += v.stride[d]
			if idx[d] < v.shape[d] {
				break
			}
			base -= idx[d] * v.stride[d]
			idx[d] = 0
		}
	}
	return nil
}

// Flatten returns a newly allocated row-major copy of v's logical elements.
func (v *View[T]) Flatten() ([]T, error) {
	if err := v.checkBounds(); err != nil {
		return nil, err
	}
	dst := make([]T, v.NumElements())
	if err := v.FlattenTo(dst); err != nil {
		return nil, err
	}
	return dst, nil
}

// checkBounds verifies that every slot reachable from the view lies inside
// its buffer.
func (v *View[T]) checkBounds() error {
	if err := v.shape.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrOutOfBounds, err)
	}
	if len(v.stride) != len(v.shape) {
		return fmt.Errorf("%w: shape %v has rank %d, stride %v has %d entries",
			ErrOutOfBounds, v.shape, len(v.shape), v.stride, len(v.stride))
	}
	lo, hi, ok, err := reach(v.shape, v.stride)
	if err != nil || !ok {
		return err
	}
	first, okLo := addInt(v.offset, lo)
	last, okHi := addInt(v.offset, hi)
	if !okLo || !okHi || first < 0 || last >= len(v.buf.data) {
		return fmt.Errorf("%w: %v reaches [%d, %d] from offset %d, buffer has %d elements",
			ErrOutOfBounds, v, lo, hi, v.offset, len(v.buf.data))
	}
	return nil
}
