// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides strided views over shared element buffers.
//
// # Overview
//
// A View interprets a flat slice as an N-dimensional array through a shape
// and a stride. Views never own their elements exclusively: slicing and
// broadcasting produce new views over the same buffer.
//
// # Basic Usage
//
//	import "github.com/born-ml/strided/tensor"
//
//	func main() {
//	    row, _ := tensor.Wrap([]int32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, tensor.Shape{1, 10})
//
//	    // 100 logical rows, still 10 elements of storage.
//	    batch, _ := row.Expand(tensor.Shape{100, 10})
//
//	    dst := make([]int32, 10)
//	    r, _ := batch.Slice(tensor.Index(42), tensor.All())
//	    _ = r.FlattenTo(dst) // [1 2 3 4 5 6 7 8 9 10]
//	}
//
// # Broadcasting
//
// Expand widens dimensions of extent 1 to any extent by giving them a
// stride of 0. The target must have the same rank as the view; -1 is not
// accepted as a "keep" marker. Writes through a broadcast view are visible
// at every logical position sharing the slot.
//
// # Errors
//
// Failures are reported as sentinel errors usable with errors.Is
// (ErrRankMismatch, ErrNotBroadcastable, ErrOutOfRange, ...) and as typed
// errors carrying the offending dimension (RankMismatchError,
// BroadcastError, RangeError) usable with errors.As.
//
// # Supported Data Types
//
//   - float32, float64
//   - int32, int64
//   - uint8
//   - bool
package tensor
