// Package tensor provides the core tensor types shared by the kernel backends.
package tensor

// DataType represents runtime type information for tensors.
type DataType int

// Supported data types for tensors.
const (
	Float32 DataType = iota
	Float64
	Float16
	Int32
	Int64
	Uint8
	Bool
	QUInt8 // affine-quantized uint8
	QInt8  // affine-quantized int8
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float32, Int32:
		return 4
	case Float64, Int64:
		return 8
	case Float16:
		return 2
	case Uint8, Bool, QUInt8, QInt8:
		return 1
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Float16:
		return "float16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	case Bool:
		return "bool"
	case QUInt8:
		return "quint8"
	case QInt8:
		return "qint8"
	default:
		return "unknown"
	}
}

// IsQuantized reports whether the data type carries affine quantization
// parameters (scale and zero point) alongside its raw storage.
func (dt DataType) IsQuantized() bool {
	return dt == QUInt8 || dt == QInt8
}
