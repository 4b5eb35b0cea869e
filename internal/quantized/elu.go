// Package quantized routes quantized elementwise activations to
// device-specific numeric kernels.
//
// Kernels are registered per device at process initialization (backends call
// RegisterEluKernel from init). The dispatch layer owns output allocation and
// in-place semantics; it does not validate shapes or dtypes, which are the
// calling layer's responsibility. A missing kernel for a device is a fatal
// configuration error.
package quantized

import (
	"fmt"

	"github.com/born-ml/kernels/internal/tensor"
)

// EluKernel computes quantized ELU from in into out. in and out never alias.
// scale and inputScale are forwarded from the entry points; a kernel may
// ignore them if its numeric formulation does not need them.
type EluKernel func(out, in *tensor.QuantizedTensor, alpha, scale, inputScale float64)

var eluKernels = map[tensor.Device]EluKernel{}

// RegisterEluKernel installs the ELU kernel for a device. Called from
// backend init functions; registering a device twice is a programming error.
func RegisterEluKernel(device tensor.Device, kernel EluKernel) {
	if _, dup := eluKernels[device]; dup {
		panic(fmt.Sprintf("quantized: duplicate ELU kernel for device %s", device))
	}
	eluKernels[device] = kernel
}

func eluKernel(device tensor.Device) EluKernel {
	kernel, ok := eluKernels[device]
	if !ok {
		panic(fmt.Sprintf("quantized: no ELU kernel registered for device %s", device))
	}
	return kernel
}

// Elu computes quantized ELU out of place: it allocates a fresh output with
// the input's shape and affine parameters, fills it via the device kernel,
// and returns it.
//
// scale and inputScale are accepted for operator-schema compatibility and
// forwarded to the kernel unchanged; current kernels ignore them.
func Elu(qx *tensor.QuantizedTensor, alpha, scale, inputScale float64) *tensor.QuantizedTensor {
	qy, err := tensor.EmptyAffineQuantizedLike(qx, qx.Scale(), qx.ZeroPoint())
	if err != nil {
		panic(fmt.Sprintf("quantized elu: %v", err))
	}
	eluKernel(qx.Device())(qy, qx, alpha, scale, inputScale)
	return qy
}

// EluOut is Elu writing into a caller-supplied result tensor instead of
// allocating one. Returns result.
func EluOut(result, qx *tensor.QuantizedTensor, alpha, scale, inputScale float64) *tensor.QuantizedTensor {
	eluKernel(qx.Device())(result, qx, alpha, scale, inputScale)
	return result
}

// EluInplace computes quantized ELU into qx's own storage and returns qx.
//
// The kernel runs into a scratch tensor which is copied back only after it
// is fully populated, so a kernel is never asked to alias its read and write
// buffers and external aliases of qx never observe a partial result.
func EluInplace(qx *tensor.QuantizedTensor, alpha, scale, inputScale float64) *tensor.QuantizedTensor {
	qy, err := tensor.EmptyAffineQuantizedLike(qx, qx.Scale(), qx.ZeroPoint())
	if err != nil {
		panic(fmt.Sprintf("quantized elu_: %v", err))
	}
	eluKernel(qx.Device())(qy, qx, alpha, scale, inputScale)
	qx.CopyFrom(qy)
	return qx
}
