package tensor

import "fmt"

// QuantizedTensor pairs raw integer storage with the affine parameters that
// map it back to real values: real = (q - zeroPoint) * scale.
//
// The affine parameters belong to the tensor, not to individual operations:
// ops that produce a fresh quantized output must copy or propagate them.
type QuantizedTensor struct {
	raw       *RawTensor
	scale     float64
	zeroPoint int64
}

// NewQuantized wraps a raw tensor with affine quantization parameters.
// The raw tensor's dtype must be one of the quantized types.
func NewQuantized(raw *RawTensor, scale float64, zeroPoint int64) (*QuantizedTensor, error) {
	if !raw.DType().IsQuantized() {
		return nil, fmt.Errorf("dtype %s is not a quantized type", raw.DType())
	}
	if scale <= 0 {
		return nil, fmt.Errorf("quantization scale must be positive, got %v", scale)
	}
	return &QuantizedTensor{raw: raw, scale: scale, zeroPoint: zeroPoint}, nil
}

// EmptyAffineQuantized allocates an uninitialized quantized tensor.
func EmptyAffineQuantized(shape Shape, dtype DataType, device Device, scale float64, zeroPoint int64) (*QuantizedTensor, error) {
	raw, err := NewRaw(shape, dtype, device)
	if err != nil {
		return nil, err
	}
	return NewQuantized(raw, scale, zeroPoint)
}

// EmptyAffineQuantizedLike allocates an uninitialized quantized tensor with
// the same shape, dtype and device as t, carrying the given affine parameters.
func EmptyAffineQuantizedLike(t *QuantizedTensor, scale float64, zeroPoint int64) (*QuantizedTensor, error) {
	return EmptyAffineQuantized(t.Shape(), t.DType(), t.Device(), scale, zeroPoint)
}

// Raw returns the underlying raw tensor.
func (q *QuantizedTensor) Raw() *RawTensor {
	return q.raw
}

// Shape returns the tensor's shape.
func (q *QuantizedTensor) Shape() Shape {
	return q.raw.Shape()
}

// DType returns the tensor's data type.
func (q *QuantizedTensor) DType() DataType {
	return q.raw.DType()
}

// Device returns the tensor's compute device.
func (q *QuantizedTensor) Device() Device {
	return q.raw.Device()
}

// NumElements returns the total number of elements.
func (q *QuantizedTensor) NumElements() int {
	return q.raw.NumElements()
}

// Scale returns the affine quantization scale.
func (q *QuantizedTensor) Scale() float64 {
	return q.scale
}

// ZeroPoint returns the affine quantization zero point.
func (q *QuantizedTensor) ZeroPoint() int64 {
	return q.zeroPoint
}

// CopyFrom copies src's storage and affine parameters into q, leaving q's
// identity (and any external references to it) stable.
// Panics on shape or dtype mismatch.
func (q *QuantizedTensor) CopyFrom(src *QuantizedTensor) {
	if !q.Shape().Equal(src.Shape()) {
		panic(fmt.Sprintf("quantized copy: shape mismatch %v vs %v", q.Shape(), src.Shape()))
	}
	if q.DType() != src.DType() {
		panic(fmt.Sprintf("quantized copy: dtype mismatch %s vs %s", q.DType(), src.DType()))
	}
	copy(q.raw.Data(), src.raw.Data())
	q.scale = src.scale
	q.zeroPoint = src.zeroPoint
}

// Dequantize returns the real value of element i.
func (q *QuantizedTensor) Dequantize(i int) float64 {
	switch q.DType() {
	case QUInt8:
		return (float64(q.raw.AsUint8()[i]) - float64(q.zeroPoint)) * q.scale
	case QInt8:
		return (float64(q.raw.AsInt8()[i]) - float64(q.zeroPoint)) * q.scale
	default:
		panic(fmt.Sprintf("dequantize: unsupported dtype %s", q.DType()))
	}
}
