// Package demo broadcasts one row of values across a batch and prints
// every logical row, reading all of them from a single row of storage.
package demo

import (
	"errors"
	"fmt"

	"github.com/born-ml/strided/internal/tokenizer"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("invalid demo config")

// Config controls the batch broadcast run.
type Config struct {
	Batches  int    // Number of logical rows after expansion.
	Width    int    // Row length when no prompt is given (values 1..Width).
	Prompt   string // Text to tokenize into the row. Empty uses 1..Width.
	Encoding string // tiktoken encoding for Prompt.
}

// DefaultConfig returns a 100-row broadcast of the integers 1..10.
func DefaultConfig() Config {
	return Config{
		Batches:  100,
		Width:    10,
		Encoding: tokenizer.DefaultEncoding,
	}
}

// Validate checks the config for values Run cannot use.
func (c Config) Validate() error {
	if c.Batches < 0 {
		return fmt.Errorf("%w: batches must be >= 0, got %d", ErrInvalidConfig, c.Batches)
	}
	if c.Prompt == "" && c.Width <= 0 {
		return fmt.Errorf("%w: width must be > 0, got %d", ErrInvalidConfig, c.Width)
	}
	if c.Prompt != "" && c.Encoding == "" {
		return fmt.Errorf("%w: encoding required with a prompt", ErrInvalidConfig)
	}
	return nil
}
