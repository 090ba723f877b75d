package tensor

import (
	"fmt"
)

// View is a strided window over a shared buffer of T.
//
// Element (i0, i1, ..., in) lives at buffer index
// offset + i0*stride[0] + i1*stride[1] + ... + in*stride[n].
// A stride of 0 makes every index along that dimension read the same slot.
//
// Views are immutable: every operation returns a new View sharing the
// buffer. Writes through Set are visible to all views aliasing the slot.
type View[T DType] struct {
	buf    *buffer[T] // Shared reference-counted buffer
	shape  Shape      // Logical extents
	stride []int      // Element step per dimension
	offset int        // Index of element (0, ..., 0) in buf.data
}

// Wrap creates a row-major view over data without copying it.
func Wrap[T DType](data []T, shape Shape) (*View[T], error) {
	return wrap(data, shape, false)
}

// WrapPinned is like Wrap but marks the buffer as pinned. The flag is
// carried to every derived view so callers handing data to foreign code
// can tell which views must keep a stable address.
func WrapPinned[T DType](data []T, shape Shape) (*View[T], error) {
	return wrap(data, shape, true)
}

func wrap[T DType](data []T, shape Shape, pinned bool) (*View[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but got %d",
			ErrShapeMismatch, shape, shape.NumElements(), len(data))
	}

	return &View[T]{
		buf:    newBuffer(data, pinned),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
	}, nil
}

// FromSlice creates a view over a copy of data.
func FromSlice[T DType](data []T, shape Shape) (*View[T], error) {
	return Wrap(append([]T(nil), data...), shape)
}

// Zeros creates a view over a freshly allocated, zeroed buffer.
func Zeros[T DType](shape Shape) (*View[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return Wrap(make([]T, shape.NumElements()), shape)
}

// WrapStrided creates a view over data with an explicit stride.
// Strides must be non-negative and every reachable index must fall
// inside data.
//
// Example:
//
//	// Every row reads data[0:10].
//	v, err := tensor.WrapStrided(data, Shape{100, 10}, []int{0, 1}, false)
func WrapStrided[T DType](data []T, shape Shape, stride []int, pinned bool) (*View[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if len(stride) != len(shape) {
		return nil, &RankMismatchError{Got: len(stride), Want: len(shape)}
	}
	for i, s := range stride {
		if s < 0 {
			return nil, fmt.Errorf("%w: dimension %d has stride %d (must be >= 0)", ErrInvalidStride, i, s)
		}
	}
	_, hi, ok, err := reach(shape, stride)
	if err != nil {
		return nil, err
	}
	if ok && hi >= len(data) {
		return nil, fmt.Errorf("%w: shape %v with stride %v reaches index %d, buffer has %d elements",
			ErrOutOfBounds, shape, stride, hi, len(data))
	}

	return &View[T]{
		buf:    newBuffer(data, pinned),
		shape:  shape.Clone(),
		stride: append([]int(nil), stride...),
	}, nil
}

// Shape returns a copy of the view's extents.
func (v *View[T]) Shape() Shape {
	return v.shape.Clone()
}

// Strides returns a copy of the view's strides.
func (v *View[T]) Strides() []int {
	return append([]int(nil), v.stride...)
}

// Offset returns the buffer index of the view's first element.
func (v *View[T]) Offset() int {
	return v.offset
}

// Rank returns the number of dimensions.
func (v *View[T]) Rank() int {
	return len(v.shape)
}

// NumElements returns the flattened length: the number of logical elements
// the view presents, regardless of how many buffer slots they alias.
func (v *View[T]) NumElements() int {
	return v.shape.NumElements()
}

// IsPinned reports whether the underlying buffer is pinned.
func (v *View[T]) IsPinned() bool {
	return v.buf.pinned
}

// DType returns the element data type.
func (v *View[T]) DType() DataType {
	return DataTypeOf[T]()
}

// IsContiguous reports whether the view's elements occupy consecutive
// buffer slots in row-major order. The answer is only meaningful for views
// whose reach lies inside the buffer; FlattenTo checks bounds before it
// relies on it.
func (v *View[T]) IsContiguous() bool {
	want := 1
	for i := len(v.shape) - 1; i >= 0; i-- {
		if v.shape[i] == 1 {
			continue
		}
		if v.stride[i] != want {
			return false
		}
		want *= v.shape[i]
	}
	return true
}

// SharesBuffer reports whether v and other are views over the same buffer.
func (v *View[T]) SharesBuffer(other *View[T]) bool {
	return v.buf == other.buf
}

// At returns the element at the given indices.
// Panics if the index count or any index is out of range.
//
// Example:
//
//	v, _ := tensor.Wrap([]int32{1, 2, 3, 4, 5, 6}, Shape{2, 3})
//	value := v.At(1, 2) // 6
func (v *View[T]) At(indices ...int) T {
	return v.buf.data[v.index(indices)]
}

// Set stores value at the given indices.
// Every logical position aliasing the same slot observes the write.
// Panics if the index count or any index is out of range.
func (v *View[T]) Set(value T, indices ...int) {
	v.buf.data[v.index(indices)] = value
}

func (v *View[T]) index(indices []int) int {
	if len(indices) != len(v.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(v.shape), len(indices)))
	}

	offset := v.offset
	for i, idx := range indices {
		if idx < 0 || idx >= v.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, v.shape[i]))
		}
		offset += idx * v.stride[i]
	}
	return offset
}

// String returns a human-readable description of the view.
func (v *View[T]) String() string {
	s := fmt.Sprintf("View[%s]%v stride=%v", v.DType(), v.shape, v.stride)
	if v.offset != 0 {
		s += fmt.Sprintf(" offset=%d", v.offset)
	}
	if v.buf.pinned {
		s += " pinned"
	}
	return s
}

// Clone returns a new view with the same metadata over the same buffer.
// No elements are copied.
func (v *View[T]) Clone() *View[T] {
	return v.derive(v.shape, v.stride, v.offset)
}

// Release drops this view's reference to the buffer. The buffer's data is
// dropped when the last view is released.
func (v *View[T]) Release() {
	v.buf.release()
}

// IsUnique returns true if this view is the only reference to its buffer.
func (v *View[T]) IsUnique() bool {
	return v.buf.isUnique()
}

// derive builds a view over v's buffer with copies of shape and stride.
func (v *View[T]) derive(shape Shape, stride []int, offset int) *View[T] {
	v.buf.addRef()
	return &View[T]{
		buf:    v.buf,
		shape:  shape.Clone(),
		stride: append([]int(nil), stride...),
		offset: offset,
	}
}
