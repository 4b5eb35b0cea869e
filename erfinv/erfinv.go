// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package erfinv provides the public API for the inverse error function.
//
// Two approximation schemes are available: FastApprox (short rational
// expansion) and PreciseApprox (7-region rational approximation accurate to
// single-precision roundoff). Domain edges follow IEEE-754: |y| > 1 yields
// NaN, |y| == 1 yields signed infinity, and the precise scheme maps signed
// zero to signed zero.
//
// Example:
//
//	x := erfinv.Eval(0.5, erfinv.PreciseApprox) // 0.47693628
package erfinv

import (
	"github.com/born-ml/kernels/internal/erfinv"
)

// Scheme selects the approximation variant.
type Scheme = erfinv.Scheme

// Scheme constants.
const (
	FastApprox    Scheme = erfinv.FastApprox
	PreciseApprox Scheme = erfinv.PreciseApprox
)

// Eval evaluates erfinv(y) under the given scheme.
func Eval(y float32, scheme Scheme) float32 {
	return erfinv.Eval(y, scheme)
}

// Fast evaluates erfinv(y) with the 2-branch rational expansion.
func Fast(y float32) float32 {
	return erfinv.Fast(y)
}

// Precise evaluates erfinv(y) with the 7-region rational approximation.
func Precise(y float32) float32 {
	return erfinv.Precise(y)
}
