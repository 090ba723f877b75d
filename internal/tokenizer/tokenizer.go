package tokenizer

import (
	"errors"
	"fmt"

	"github.com/born-ml/strided/internal/tensor"
)

// ErrEmptyInput is returned when text encodes to no tokens.
var ErrEmptyInput = errors.New("text produced no tokens")

// Tokenizer converts between text and token IDs.
type Tokenizer interface {
	// Encode converts text to token IDs.
	Encode(text string) ([]int32, error)

	// Decode converts token IDs back to text.
	Decode(tokens []int32) (string, error)

	// Name returns the encoding or model name.
	Name() string
}

// EncodeRow encodes text and wraps the token IDs as a [1, K] view.
// The view owns the freshly encoded slice.
func EncodeRow(tok Tokenizer, text string) (*tensor.View[int32], error) {
	tokens, err := tok.Encode(text)
	if err != nil {
		return nil, fmt.Errorf("encode with %s: %w", tok.Name(), err)
	}
	if len(tokens) == 0 {
		return nil, ErrEmptyInput
	}
	return tensor.Wrap(tokens, tensor.Shape{1, len(tokens)})
}

// DecodeRows decodes every row of a rank-2 token view.
// Broadcast views decode the same row repeatedly. The row views it slices
// are released before it returns, so v's buffer references are unchanged.
func DecodeRows(tok Tokenizer, v *tensor.View[int32]) ([]string, error) {
	if v.Rank() != 2 {
		return nil, &tensor.RankMismatchError{Got: v.Rank(), Want: 2}
	}

	shape := v.Shape()
	row := make([]int32, shape[1])
	texts := make([]string, 0, shape[0])
	for i := 0; i < shape[0]; i++ {
		r, err := v.Slice(tensor.Index(i), tensor.All())
		if err != nil {
			return nil, err
		}
		err = r.FlattenTo(row)
		r.Release()
		if err != nil {
			return nil, err
		}
		text, err := tok.Decode(row)
		if err != nil {
			return nil, fmt.Errorf("decode row %d: %w", i, err)
		}
		texts = append(texts, text)
	}
	return texts, nil
}
