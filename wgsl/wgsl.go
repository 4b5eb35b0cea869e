// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package wgsl provides the public API for kernel source generation.
//
// KernelSource specializes a scheme's WGSL template for concrete output and
// input element type names; CoeffsBytes returns the packed coefficient table
// matching that kernel's declared struct layout. The two must always be
// paired by scheme.
//
// Example:
//
//	src := wgsl.KernelSource(erfinv.PreciseApprox, "f32", "f32")
//	coeffs := wgsl.CoeffsBytes(erfinv.PreciseApprox)
package wgsl

import (
	"github.com/born-ml/kernels/erfinv"
	"github.com/born-ml/kernels/internal/wgsl"
)

// WorkgroupSize is the number of invocations per workgroup; one output
// element is produced per invocation.
const WorkgroupSize = wgsl.WorkgroupSize

// KernelSource returns complete kernel source for the scheme, specialized
// for the given output and input element type names.
func KernelSource(scheme erfinv.Scheme, outType, inType string) string {
	return wgsl.KernelSource(scheme, outType, inType)
}

// CoeffsBytes returns the packed coefficient table matching the scheme's
// kernel struct layout.
func CoeffsBytes(scheme erfinv.Scheme) []byte {
	return wgsl.CoeffsBytes(scheme)
}

// FastKernelF32 returns the fast kernel specialized for f32 output and
// input, built once on first use.
func FastKernelF32() string {
	return wgsl.FastKernelF32()
}

// PreciseKernelF32 returns the precise kernel specialized for f32 output
// and input, built once on first use.
func PreciseKernelF32() string {
	return wgsl.PreciseKernelF32()
}
