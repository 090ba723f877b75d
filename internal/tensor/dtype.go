// Package tensor implements strided views over shared element buffers.
//
// A View interprets a flat buffer as an N-dimensional array through a shape
// (extent per dimension), a stride (element step per dimension) and an
// offset. Views never copy their buffer: slicing, expansion and the
// unchecked shape/stride mutators all return new views over the same
// elements.
package tensor

import "reflect"

// DType is a constraint for supported element types.
// Every element type has a fixed memory layout.
type DType interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~uint8 | ~bool
}

// DataType represents runtime type information for views.
type DataType int

// Supported data types.
const (
	Float32 DataType = iota
	Float64
	Int32
	Int64
	Uint8
	Bool
)

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	case Bool:
		return "bool"
	default:
		return "unknown"
	}
}

// DataTypeOf returns the runtime data type for the element type T.
// Named types resolve to their underlying kind.
func DataTypeOf[T DType]() DataType {
	var zero T
	switch reflect.TypeOf(zero).Kind() {
	case reflect.Float32:
		return Float32
	case reflect.Float64:
		return Float64
	case reflect.Int32:
		return Int32
	case reflect.Int64:
		return Int64
	case reflect.Uint8:
		return Uint8
	case reflect.Bool:
		return Bool
	default:
		panic("unsupported type")
	}
}
