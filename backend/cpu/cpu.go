// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the public API for the CPU backend.
//
// Importing this package registers the CPU quantized-activation kernels with
// the dispatch layer.
package cpu

import (
	"github.com/born-ml/kernels/internal/backend/cpu"
)

// CPUBackend executes elementwise kernels on the host.
type CPUBackend = cpu.CPUBackend

// New creates a new CPU backend.
func New() *CPUBackend {
	return cpu.New()
}
