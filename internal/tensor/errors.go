package tensor

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrRankMismatch        = errors.New("new dimensions must match the number of existing dimensions")
	ErrNotBroadcastable    = errors.New("expanded dimensions must have an initial dimension of 1")
	ErrInvalidShape        = errors.New("invalid shape")
	ErrShapeMismatch       = errors.New("shape does not match buffer length")
	ErrInvalidStride       = errors.New("invalid stride")
	ErrOutOfRange          = errors.New("range out of bounds")
	ErrOutOfBounds         = errors.New("view extends beyond its buffer")
	ErrDestinationTooShort = errors.New("destination shorter than flattened length")
)

// RankMismatchError reports a shape or range list whose length does not
// match the rank of the view it is applied to.
type RankMismatchError struct {
	Got  int // Length supplied by the caller
	Want int // Rank of the view
}

// Error implements the error interface.
func (e *RankMismatchError) Error() string {
	return fmt.Sprintf("%v: got %d, view has rank %d", ErrRankMismatch, e.Got, e.Want)
}

// Is reports whether target is ErrRankMismatch.
func (e *RankMismatchError) Is(target error) bool {
	return target == ErrRankMismatch
}

// BroadcastError reports the first dimension that cannot be expanded
// because its source extent is neither the target extent nor 1.
type BroadcastError struct {
	Dim  int // Offending dimension index
	From int // Source extent
	To   int // Requested extent
}

// Error implements the error interface.
func (e *BroadcastError) Error() string {
	return fmt.Sprintf("%v: dimension %d has extent %d, cannot expand to %d", ErrNotBroadcastable, e.Dim, e.From, e.To)
}

// Is reports whether target is ErrNotBroadcastable.
func (e *BroadcastError) Is(target error) bool {
	return target == ErrNotBroadcastable
}

// RangeError reports a slice range that does not fit its dimension.
type RangeError struct {
	Dim    int
	Range  Range
	Extent int
}

// Error implements the error interface.
func (e *RangeError) Error() string {
	return fmt.Sprintf("%v: dimension %d: [%d, %d) outside [0, %d)", ErrOutOfRange, e.Dim, e.Range.Start, e.Range.End, e.Extent)
}

// Is reports whether target is ErrOutOfRange.
func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}
