package tokenizer

import (
	"fmt"
	"math"

	"github.com/pkoukk/tiktoken-go"
)

// DefaultEncoding is the encoding used when none is configured.
const DefaultEncoding = "cl100k_base"

// TikToken adapts github.com/pkoukk/tiktoken-go to Tokenizer.
//
// Special tokens such as <|endoftext|> are encoded as ordinary text, so any
// prompt string is accepted.
type TikToken struct {
	enc  *tiktoken.Tiktoken
	name string
}

// NewTikToken loads the named encoding ("cl100k_base", "p50k_base",
// "r50k_base", ...).
func NewTikToken(encoding string) (*TikToken, error) {
	enc, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return nil, fmt.Errorf("load tiktoken encoding %q: %w", encoding, err)
	}
	return &TikToken{enc: enc, name: encoding}, nil
}

// NewTikTokenForModel loads the encoding used by a model such as "gpt-4".
func NewTikTokenForModel(model string) (*TikToken, error) {
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		return nil, fmt.Errorf("load tiktoken for model %q: %w", model, err)
	}
	return &TikToken{enc: enc, name: model}, nil
}

// Encode converts text to token IDs.
func (t *TikToken) Encode(text string) ([]int32, error) {
	ids := t.enc.EncodeOrdinary(text)

	out := make([]int32, len(ids))
	for i, id := range ids {
		if id > math.MaxInt32 {
			return nil, fmt.Errorf("token %d at position %d does not fit int32", id, i)
		}
		out[i] = int32(id)
	}
	return out, nil
}

// Decode converts token IDs back to text.
func (t *TikToken) Decode(tokens []int32) (string, error) {
	ids := make([]int, len(tokens))
	for i, tok := range tokens {
		if tok < 0 {
			return "", fmt.Errorf("negative token %d at position %d", tok, i)
		}
		ids[i] = int(tok)
	}
	return t.enc.Decode(ids), nil
}

// Name returns the encoding or model name.
func (t *TikToken) Name() string {
	return t.name
}
