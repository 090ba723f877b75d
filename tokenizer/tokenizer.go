// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tokenizer turns text into token rows usable as strided views.
//
// Example usage:
//
//	tok, err := tokenizer.NewTikToken("cl100k_base")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	row, err := tokenizer.EncodeRow(tok, "Hello, world!") // shape [1, K]
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// The same K tokens, seen as 32 rows.
//	batch, err := row.Expand(tensor.Shape{32, row.Shape()[1]})
package tokenizer

import (
	"github.com/born-ml/strided/internal/tokenizer"
	"github.com/born-ml/strided/tensor"
)

// Tokenizer converts between text and token IDs.
type Tokenizer = tokenizer.Tokenizer

// DefaultEncoding is the tiktoken encoding used when none is configured.
const DefaultEncoding = tokenizer.DefaultEncoding

// ErrEmptyInput is returned when text encodes to no tokens.
var ErrEmptyInput = tokenizer.ErrEmptyInput

// NewTikToken loads a tiktoken encoding ("cl100k_base", "p50k_base", ...).
func NewTikToken(encoding string) (Tokenizer, error) {
	tok, err := tokenizer.NewTikToken(encoding)
	if err != nil {
		return nil, err
	}
	return tok, nil
}

// NewTikTokenForModel loads the tiktoken encoding used by a model.
func NewTikTokenForModel(model string) (Tokenizer, error) {
	tok, err := tokenizer.NewTikTokenForModel(model)
	if err != nil {
		return nil, err
	}
	return tok, nil
}

// EncodeRow encodes text and wraps the token IDs as a [1, K] view.
func EncodeRow(tok Tokenizer, text string) (*tensor.View[int32], error) {
	return tokenizer.EncodeRow(tok, text)
}

// DecodeRows decodes every row of a rank-2 token view.
func DecodeRows(tok Tokenizer, v *tensor.View[int32]) ([]string, error) {
	return tokenizer.DecodeRows(tok, v)
}
