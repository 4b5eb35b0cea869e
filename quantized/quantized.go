// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package quantized provides the public API for quantized elementwise
// activations.
//
// Entry points dispatch to device-specific kernels registered at process
// initialization (importing a backend package registers its kernels). The
// scale and inputScale parameters are part of the operator schema and are
// forwarded to kernels unchanged; current kernels ignore them.
//
// Example:
//
//	import _ "github.com/born-ml/kernels/backend/cpu"
//
//	qy := quantized.Elu(qx, 1.0, 1.0, 1.0)
package quantized

import (
	"github.com/born-ml/kernels/internal/quantized"
	"github.com/born-ml/kernels/tensor"
)

// EluKernel computes quantized ELU from in into out.
type EluKernel = quantized.EluKernel

// RegisterEluKernel installs the ELU kernel for a device.
func RegisterEluKernel(device tensor.Device, kernel EluKernel) {
	quantized.RegisterEluKernel(device, kernel)
}

// Elu computes quantized ELU out of place, preserving the input's affine
// parameters on the freshly allocated output.
func Elu(qx *tensor.QuantizedTensor, alpha, scale, inputScale float64) *tensor.QuantizedTensor {
	return quantized.Elu(qx, alpha, scale, inputScale)
}

// EluOut is Elu writing into a caller-supplied result tensor. Returns result.
func EluOut(result, qx *tensor.QuantizedTensor, alpha, scale, inputScale float64) *tensor.QuantizedTensor {
	return quantized.EluOut(result, qx, alpha, scale, inputScale)
}

// EluInplace computes quantized ELU into qx's own storage through a scratch
// tensor and returns qx.
func EluInplace(qx *tensor.QuantizedTensor, alpha, scale, inputScale float64) *tensor.QuantizedTensor {
	return quantized.EluInplace(qx, alpha, scale, inputScale)
}
