package tensor

import "testing"

type label int32

func TestDataTypeString(t *testing.T) {
	tests := []struct {
		dtype DataType
		str   string
	}{
		{Float32, "float32"},
		{Int64, "int64"},
		{Bool, "bool"},
		{DataType(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.dtype.String(); got != tt.str {
			t.Errorf("DataType(%d).String() = %q, want %q", int(tt.dtype), got, tt.str)
		}
	}
}

func TestDataTypeOf(t *testing.T) {
	if dt := DataTypeOf[float32](); dt != Float32 {
		t.Errorf("DataTypeOf[float32]() = %v, want float32", dt)
	}
	if dt := DataTypeOf[int64](); dt != Int64 {
		t.Errorf("DataTypeOf[int64]() = %v, want int64", dt)
	}
	if dt := DataTypeOf[bool](); dt != Bool {
		t.Errorf("DataTypeOf[bool]() = %v, want bool", dt)
	}
	if dt := DataTypeOf[label](); dt != Int32 {
		t.Errorf("DataTypeOf[label]() = %v, want int32", dt)
	}
}
