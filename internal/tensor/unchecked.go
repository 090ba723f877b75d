package tensor

// The functions in this file rebuild a view over the same buffer with
// caller-supplied metadata. They perform no validation at all: shape and
// stride lengths may disagree and the result may address slots outside the
// buffer. Such a view only fails later, when FlattenTo checks its reach
// (ErrOutOfBounds) or when At/Set panics.
//
// They are the kernel Expand is built on and are deliberately not part of
// the public tensor package.

// WithShapeUnchecked returns a view with the same buffer, stride, offset and
// pinned flag as v, but with shape replaced.
//
// WARNING: unchecked. See the file comment.
func WithShapeUnchecked[T DType](v *View[T], shape Shape) *View[T] {
	return v.derive(shape, v.stride, v.offset)
}

// WithStrideUnchecked returns a view with the same buffer, shape, offset and
// pinned flag as v, but with stride replaced.
//
// WARNING: unchecked. See the file comment.
func WithStrideUnchecked[T DType](v *View[T], stride []int) *View[T] {
	return v.derive(v.shape, stride, v.offset)
}

// WithShapeAndStrideUnchecked returns a view with the same buffer, offset
// and pinned flag as v, but with both shape and stride replaced.
//
// WARNING: unchecked. See the file comment.
func WithShapeAndStrideUnchecked[T DType](v *View[T], shape Shape, stride []int) *View[T] {
	return v.derive(shape, stride, v.offset)
}
