// Package tokenizer turns text into int32 token rows that can be broadcast
// as strided views.
//
// The only backend is tiktoken (cl100k_base, p50k_base, r50k_base). The
// first use of an encoding downloads its BPE ranks unless they are cached
// (see TIKTOKEN_CACHE_DIR in github.com/pkoukk/tiktoken-go).
//
// Example usage:
//
//	tok, err := tokenizer.NewTikToken("cl100k_base")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// [1, K] view over the prompt's token IDs.
//	row, err := tokenizer.EncodeRow(tok, "Hello, world!")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	batch, err := row.Expand(tensor.Shape{32, row.Shape()[1]})
package tokenizer
