package demo

import (
	"context"
	"fmt"
	"io"
	"strings"

	"k8s.io/klog/v2"

	"github.com/born-ml/strided/internal/tensor"
	"github.com/born-ml/strided/internal/tokenizer"
)

// Run builds a [1, K] row, expands it to [cfg.Batches, K] and writes every
// logical row to w, one per line, as "[v0, v1, ...]".
//
// A tokenizer is loaded only when cfg.Prompt is set.
func Run(ctx context.Context, cfg Config, w io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	row, err := sourceRow(cfg)
	if err != nil {
		return err
	}
	defer row.Release()

	return Broadcast(ctx, row, cfg.Batches, w)
}

// Broadcast expands a [1, K] row to [batches, K] and writes each logical row
// to w. The row's storage is read batches times; nothing is copied into a
// larger buffer.
func Broadcast[T tensor.DType](ctx context.Context, row *tensor.View[T], batches int, w io.Writer) error {
	if row.Rank() != 2 {
		return &tensor.RankMismatchError{Got: row.Rank(), Want: 2}
	}
	width := row.Shape()[1]

	batch, err := row.Expand(tensor.Shape{batches, width})
	if err != nil {
		return fmt.Errorf("expand row: %w", err)
	}
	defer batch.Release()
	klog.V(1).Infof("expanded %v to %v", row, batch)

	dst := make([]T, width)
	for i := 0; i < batches; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		slice, err := batch.Slice(tensor.Span(i, i+1), tensor.All())
		if err != nil {
			return fmt.Errorf("slice row %d: %w", i, err)
		}
		if n := slice.NumElements(); n != width {
			slice.Release()
			return fmt.Errorf("row %d has %d elements, want %d", i, n, width)
		}
		err = slice.FlattenTo(dst)
		slice.Release()
		if err != nil {
			return fmt.Errorf("flatten row %d: %w", i, err)
		}

		if _, err := io.WriteString(w, Format(dst)+"\n"); err != nil {
			return err
		}
	}
	klog.V(2).Infof("wrote %d rows of %d elements", batches, width)
	return nil
}

// Format renders values as "[v0, v1, ...]".
func Format[T any](values []T) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte(']')
	return sb.String()
}

func sourceRow(cfg Config) (*tensor.View[int32], error) {
	if cfg.Prompt == "" {
		values := make([]int32, cfg.Width)
		for i := range values {
			values[i] = int32(i + 1) //nolint:gosec // G115: Width is a small CLI value.
		}
		return tensor.Wrap(values, tensor.Shape{1, cfg.Width})
	}

	tok, err := tokenizer.NewTikToken(cfg.Encoding)
	if err != nil {
		return nil, err
	}
	row, err := tokenizer.EncodeRow(tok, cfg.Prompt)
	if err != nil {
		return nil, err
	}
	klog.V(1).Infof("prompt %q encoded with %s to %d tokens", cfg.Prompt, tok.Name(), row.Shape()[1])
	return row, nil
}
