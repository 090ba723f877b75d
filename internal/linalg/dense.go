// Package linalg bridges rank-2 float64 views and gonum matrices.
package linalg

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/strided/internal/tensor"
)

// ErrEmptyMatrix is returned when a view with a zero extent is converted;
// gonum has no representation for empty dense matrices.
var ErrEmptyMatrix = errors.New("matrix has a zero dimension")

// FromDense returns a view aliasing m's storage. The view's row stride is
// m's row stride, so sub-matrices obtained with m.Slice map directly.
// Writes through either side are visible to the other.
func FromDense(m *mat.Dense) (*tensor.View[float64], error) {
	raw := m.RawMatrix()
	return tensor.WrapStrided(raw.Data, tensor.Shape{raw.Rows, raw.Cols}, []int{raw.Stride, 1}, false)
}

// ToDense copies a rank-2 view, broadcast or not, into a new dense matrix.
func ToDense(v *tensor.View[float64]) (*mat.Dense, error) {
	if v.Rank() != 2 {
		return nil, &tensor.RankMismatchError{Got: v.Rank(), Want: 2}
	}
	shape := v.Shape()
	if shape[0] == 0 || shape[1] == 0 {
		return nil, fmt.Errorf("%w: %v", ErrEmptyMatrix, shape)
	}

	data, err := v.Flatten()
	if err != nil {
		return nil, err
	}
	return mat.NewDense(shape[0], shape[1], data), nil
}

// BroadcastRow expands a 1×c matrix to r×c without copying and returns
// the view. The row is shared: every logical row reads m's storage.
func BroadcastRow(m *mat.Dense, r int) (*tensor.View[float64], error) {
	v, err := FromDense(m)
	if err != nil {
		return nil, err
	}
	defer v.Release()

	_, c := m.Dims()
	return v.Expand(tensor.Shape{r, c})
}
