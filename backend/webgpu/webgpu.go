//go:build windows

// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package webgpu provides the public API for the WebGPU backend.
//
// Example:
//
//	gpu, err := webgpu.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer gpu.Release()
//
//	out, err := gpu.Erfinv(input, erfinv.PreciseApprox)
package webgpu

import (
	"github.com/born-ml/kernels/internal/backend/webgpu"
)

// Backend executes generated WGSL kernels on GPU.
type Backend = webgpu.Backend

// New creates a new WebGPU backend.
// Returns an error if WebGPU is not available or initialization fails.
func New() (*Backend, error) {
	return webgpu.New()
}
