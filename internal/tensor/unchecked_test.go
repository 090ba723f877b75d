package tensor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithShapeUnchecked(t *testing.T) {
	v, err := Wrap([]int32{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	require.NoError(t, err)

	m := WithShapeUnchecked(v, Shape{3, 2})
	assert.Equal(t, Shape{3, 2}, m.Shape())
	assert.Equal(t, []int{3, 1}, m.Strides(), "stride is kept")
	assert.True(t, m.SharesBuffer(v))
	assert.Equal(t, Shape{2, 3}, v.Shape(), "source is not modified")
	assert.False(t, v.IsUnique())

	m.Release()
	assert.True(t, v.IsUnique())
}

func TestWithStrideUnchecked(t *testing.T) {
	v, err := Wrap([]int32{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	require.NoError(t, err)

	m := WithStrideUnchecked(v, []int{0, 1})
	defer m.Release()
	assert.Equal(t, Shape{2, 3}, m.Shape())
	assert.Equal(t, []int{0, 1}, m.Strides())

	got, err := m.Flatten()
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 2, 3, 1, 2, 3}, got)
}

func TestWithShapeAndStrideUncheckedCopiesInputs(t *testing.T) {
	v, err := WrapPinned([]float64{1, 2, 3, 4}, Shape{4})
	require.NoError(t, err)
	defer v.Release()

	shape := Shape{2, 2}
	stride := []int{2, 1}
	m := WithShapeAndStrideUnchecked(v, shape, stride)
	defer m.Release()
	shape[0] = 100
	stride[0] = 100

	assert.Equal(t, Shape{2, 2}, m.Shape())
	assert.Equal(t, []int{2, 1}, m.Strides())
	assert.True(t, m.IsPinned(), "pinned flag is carried through")
	assert.Equal(t, v.Offset(), m.Offset())
}

func TestUncheckedOverrunSurfacesOnRead(t *testing.T) {
	v, err := Wrap([]int32{1, 2, 3}, Shape{1, 3})
	require.NoError(t, err)
	flat, err := Wrap([]int32{1, 2, 3}, Shape{3})
	require.NoError(t, err)

	tests := []struct {
		name string
		view *View[int32]
	}{
		{"shape past buffer", WithShapeUnchecked(v, Shape{2, 3})},
		{"stride past buffer", WithStrideUnchecked(v, []int{3, 2})},
		{"negative stride", WithStrideUnchecked(v, []int{0, -1})},
		{"rank disagreement", WithStrideUnchecked(v, []int{1})},
		{"negative extent", WithShapeUnchecked(v, Shape{-1, 3})},
		{"stride overflows int", WithShapeAndStrideUnchecked(flat, Shape{5}, []int{1 << 62})},
		{"negative stride overflows int", WithShapeAndStrideUnchecked(flat, Shape{5}, []int{-(1 << 62)})},
		{"reach overflows int", WithShapeAndStrideUnchecked(flat, Shape{2, 2}, []int{math.MaxInt, 1})},
		{"element count overflows int", WithShapeAndStrideUnchecked(flat, Shape{1 << 32, 1 << 32}, []int{0, 0})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Building the view never fails; reading it does.
			require.NotNil(t, tt.view)

			_, err := tt.view.Flatten()
			assert.ErrorIs(t, err, ErrOutOfBounds)

			dst := make([]int32, 8)
			assert.ErrorIs(t, tt.view.FlattenTo(dst), ErrOutOfBounds)
			assert.Equal(t, make([]int32, 8), dst, "nothing is copied")

			tt.view.Release()
		})
	}
	assert.True(t, v.IsUnique())
	assert.True(t, flat.IsUnique())
}
