// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public tensor types for the kernels module.
//
// The package defines the core types shared by all backends:
//   - RawTensor: low-level dense storage with typed zero-copy accessors
//   - QuantizedTensor: raw integer storage plus affine quantization params
//   - Shape, DataType, Device: core type definitions
//
// Example:
//
//	raw, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32, tensor.CPU)
//	data := raw.AsFloat32() // Type-safe zero-copy access
package tensor

import (
	"github.com/born-ml/kernels/internal/tensor"
)

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Float16 DataType = tensor.Float16
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint8   DataType = tensor.Uint8
	Bool    DataType = tensor.Bool
	QUInt8  DataType = tensor.QUInt8
	QInt8   DataType = tensor.QInt8
)

// Device represents the device where tensor data resides.
type Device = tensor.Device

// Device constants.
const (
	CPU    Device = tensor.CPU
	WebGPU Device = tensor.WebGPU
)

// Shape represents the dimensions of a tensor.
type Shape = tensor.Shape

// RawTensor is the low-level tensor representation.
type RawTensor = tensor.RawTensor

// QuantizedTensor pairs raw integer storage with the affine parameters that
// map it back to real values.
type QuantizedTensor = tensor.QuantizedTensor

// NewRaw creates a new RawTensor with the given shape and type.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype, device)
}

// NewQuantized wraps a raw tensor with affine quantization parameters.
func NewQuantized(raw *RawTensor, scale float64, zeroPoint int64) (*QuantizedTensor, error) {
	return tensor.NewQuantized(raw, scale, zeroPoint)
}

// EmptyAffineQuantized allocates an uninitialized quantized tensor.
func EmptyAffineQuantized(shape Shape, dtype DataType, device Device, scale float64, zeroPoint int64) (*QuantizedTensor, error) {
	return tensor.EmptyAffineQuantized(shape, dtype, device, scale, zeroPoint)
}

// EmptyAffineQuantizedLike allocates an uninitialized quantized tensor with
// the same shape, dtype and device as t, carrying the given affine
// parameters.
func EmptyAffineQuantizedLike(t *QuantizedTensor, scale float64, zeroPoint int64) (*QuantizedTensor, error) {
	return tensor.EmptyAffineQuantizedLike(t, scale, zeroPoint)
}
