package tensor

import (
	"testing"

	"github.com/x448/float16"
)

func TestNewRawAllTypes(t *testing.T) {
	types := []struct {
		dtype       DataType
		elementSize int
	}{
		{Float32, 4},
		{Float64, 8},
		{Float16, 2},
		{Int32, 4},
		{Int64, 8},
		{Uint8, 1},
		{Bool, 1},
		{QUInt8, 1},
		{QInt8, 1},
	}

	shape := Shape{2, 3}
	for _, tt := range types {
		raw, err := NewRaw(shape, tt.dtype, CPU)
		if err != nil {
			t.Fatalf("NewRaw(%v, %v) failed: %v", shape, tt.dtype, err)
		}
		if raw.ByteSize() != shape.NumElements()*tt.elementSize {
			t.Errorf("%v: ByteSize = %d, want %d", tt.dtype, raw.ByteSize(), shape.NumElements()*tt.elementSize)
		}
	}
}

func TestNewRawInvalidShape(t *testing.T) {
	if _, err := NewRaw(Shape{2, 0}, Float32, CPU); err == nil {
		t.Error("NewRaw with zero dimension should fail")
	}
}

func TestRawTensorAsFloat16(t *testing.T) {
	raw, _ := NewRaw(Shape{3}, Float16, CPU)
	data := raw.AsFloat16()

	if len(data) != 3 {
		t.Errorf("AsFloat16 length = %d, want 3", len(data))
	}

	// Modify and verify zero-copy
	data[0] = float16.Fromfloat32(1.5)
	if raw.AsFloat16()[0].Float32() != 1.5 {
		t.Error("AsFloat16 should return zero-copy slice")
	}
}

func TestRawTensorAsInt8(t *testing.T) {
	raw, _ := NewRaw(Shape{4}, QInt8, CPU)
	data := raw.AsInt8()

	data[0] = -5
	if raw.AsInt8()[0] != -5 {
		t.Error("AsInt8 should return zero-copy slice")
	}
}

func TestRawTensorAsUint8AcceptsQUInt8(t *testing.T) {
	raw, _ := NewRaw(Shape{4}, QUInt8, CPU)
	data := raw.AsUint8()

	data[0] = 255
	if raw.AsUint8()[0] != 255 {
		t.Error("AsUint8 should return zero-copy slice")
	}
}

func TestRawTensorAccessorDTypeMismatch(t *testing.T) {
	raw, _ := NewRaw(Shape{2}, Float32, CPU)
	defer func() {
		if recover() == nil {
			t.Error("AsFloat64 on float32 tensor should panic")
		}
	}()
	raw.AsFloat64()
}

func TestRawTensorCloneIsShared(t *testing.T) {
	raw, _ := NewRaw(Shape{2, 2}, Float32, CPU)
	data := raw.AsFloat32()
	data[0] = 1.0

	clone := raw.Clone()

	if clone.AsFloat32()[0] != 1.0 {
		t.Error("Clone should share data initially")
	}
	if raw.IsUnique() || clone.IsUnique() {
		t.Error("After Clone(), neither tensor should be unique")
	}
}

func TestRawTensorRelease(_ *testing.T) {
	raw, _ := NewRaw(Shape{2, 2}, Float32, CPU)

	// Should not panic
	raw.Release()
}

func TestDataTypeIsQuantized(t *testing.T) {
	for _, dt := range []DataType{QUInt8, QInt8} {
		if !dt.IsQuantized() {
			t.Errorf("%v should be quantized", dt)
		}
	}
	for _, dt := range []DataType{Float32, Float16, Uint8, Bool} {
		if dt.IsQuantized() {
			t.Errorf("%v should not be quantized", dt)
		}
	}
}
