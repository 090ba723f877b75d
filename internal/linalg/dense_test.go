package linalg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/strided/internal/tensor"
)

func TestFromDenseAliases(t *testing.T) {
	m := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})

	v, err := FromDense(m)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 3}, v.Shape())
	assert.Equal(t, []int{3, 1}, v.Strides())

	v.Set(50, 1, 1)
	assert.Equal(t, 50.0, m.At(1, 1))

	m.Set(0, 2, -1)
	assert.Equal(t, -1.0, v.At(0, 2))
}

func TestFromDenseSubMatrix(t *testing.T) {
	m := mat.NewDense(3, 4, []float64{
		0, 1, 2, 3,
		10, 11, 12, 13,
		20, 21, 22, 23,
	})
	sub := m.Slice(1, 3, 1, 3).(*mat.Dense)

	v, err := FromDense(sub)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 1}, v.Strides(), "row stride comes from the parent matrix")

	got, err := v.Flatten()
	require.NoError(t, err)
	assert.Equal(t, []float64{11, 12, 21, 22}, got)
}

func TestToDense(t *testing.T) {
	v, err := tensor.Wrap([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{3, 2})
	require.NoError(t, err)

	m, err := ToDense(v)
	require.NoError(t, err)
	r, c := m.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, 6.0, m.At(2, 1))

	m.Set(0, 0, 100)
	assert.Equal(t, 1.0, v.At(0, 0), "ToDense copies")
}

func TestToDenseErrors(t *testing.T) {
	v3, err := tensor.Zeros[float64](tensor.Shape{1, 2, 3})
	require.NoError(t, err)
	_, err = ToDense(v3)
	assert.ErrorIs(t, err, tensor.ErrRankMismatch)

	empty, err := tensor.Zeros[float64](tensor.Shape{0, 3})
	require.NoError(t, err)
	_, err = ToDense(empty)
	assert.ErrorIs(t, err, ErrEmptyMatrix)
}

func TestBroadcastRow(t *testing.T) {
	row := mat.NewDense(1, 3, []float64{1, 2, 3})

	v, err := BroadcastRow(row, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, v.Strides())

	m, err := ToDense(v)
	require.NoError(t, err)

	want := mat.NewDense(4, 3, []float64{
		1, 2, 3,
		1, 2, 3,
		1, 2, 3,
		1, 2, 3,
	})
	assert.True(t, mat.Equal(want, m))

	// The product of a broadcast matrix and a vector repeats one dot product.
	var y mat.VecDense
	y.MulVec(m, mat.NewVecDense(3, []float64{1, 1, 1}))
	for i := 0; i < 4; i++ {
		assert.Equal(t, 6.0, y.AtVec(i))
	}
}

func TestBroadcastRowRejectsTallMatrix(t *testing.T) {
	m := mat.NewDense(2, 3, nil)
	_, err := BroadcastRow(m, 4)
	assert.ErrorIs(t, err, tensor.ErrNotBroadcastable)
}
