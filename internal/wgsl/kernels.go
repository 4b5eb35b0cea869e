// Package wgsl generates WGSL compute-kernel source for the erfinv op.
//
// Each scheme has its own template and its own coefficient struct; a kernel
// must be paired with the matching packed table (erfinv.PackFast /
// erfinv.PackPrecise) when the coefficient buffer is populated. The
// templates expose exactly two ordered substitution slots, filled with the
// output and input element type names; everything else is type-independent.
package wgsl

import (
	"fmt"
	"strings"
	"sync"

	"github.com/born-ml/kernels/internal/erfinv"
)

// WorkgroupSize is the number of invocations per workgroup; one output
// element is produced per invocation.
const WorkgroupSize = 256

// fastKernelTemplate evaluates erfinv with the 2-branch rational expansion.
// Buffer order follows the dispatch convention: output(0), input(1),
// coefficient table(2), element count(3).
const fastKernelTemplate = `
alias OutT = %s;
alias InT = %s;

struct ErfinvFastCoeffs {
    a: vec4<f32>,
    b: vec4<f32>,
    c: vec4<f32>,
    d: vec4<f32>, // only the first two lanes are meaningful
}

@group(0) @binding(0) var<storage, read_write> output: array<OutT>;
@group(0) @binding(1) var<storage, read> input: array<InT>;
@group(0) @binding(2) var<uniform> coeffs: ErfinvFastCoeffs;

struct Params {
    size: u32,
}
@group(0) @binding(3) var<uniform> params: Params;

@compute @workgroup_size(256)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let idx = global_id.x;
    if (idx >= params.size) {
        return;
    }

    let y = f32(input[idx]);
    let y_abs = abs(y);
    if (y_abs > 1.0) {
        output[idx] = OutT(bitcast<f32>(0x7fc00000u)); // NaN
        return;
    }
    if (y_abs == 1.0) {
        output[idx] = OutT(sign(y) * bitcast<f32>(0x7f800000u)); // +/-Inf
        return;
    }

    var x: f32;
    if (y_abs <= 0.7) {
        let z = y * y;
        let num = ((coeffs.a[3] * z + coeffs.a[2]) * z + coeffs.a[1]) * z + coeffs.a[0];
        let dem = (((coeffs.b[3] * z + coeffs.b[2]) * z + coeffs.b[1]) * z + coeffs.b[0]) * z + 1.0;
        x = y * num / dem;
    } else {
        let z = sqrt(-log((1.0 - y_abs) / 2.0));
        let num = ((coeffs.c[3] * z + coeffs.c[2]) * z + coeffs.c[1]) * z + coeffs.c[0];
        let dem = (coeffs.d[1] * z + coeffs.d[0]) * z + 1.0;
        x = sign(y) * num / dem;
    }

    output[idx] = OutT(x);
}
`

// preciseKernelTemplate evaluates erfinv with the 7-region rational
// approximation. Coefficient rows are stored row-major with a fixed stride
// of 11; the per-region Horner loops read only the leading non-padded terms.
const preciseKernelTemplate = `
alias OutT = %s;
alias InT = %s;

struct ErfinvCoeffs {
    y: array<f32, 7>,
    p: array<f32, 77>,
    q: array<f32, 77>,
}

@group(0) @binding(0) var<storage, read_write> output: array<OutT>;
@group(0) @binding(1) var<storage, read> input: array<InT>;
@group(0) @binding(2) var<storage, read> coeffs: ErfinvCoeffs;

struct Params {
    size: u32,
}
@group(0) @binding(3) var<uniform> params: Params;

fn horner_p(row: u32, n: u32, x: f32) -> f32 {
    var r = coeffs.p[row * 11u + n - 1u];
    var i = n - 1u;
    while (i > 0u) {
        i = i - 1u;
        r = r * x + coeffs.p[row * 11u + i];
    }
    return r;
}

fn horner_q(row: u32, n: u32, x: f32) -> f32 {
    var r = coeffs.q[row * 11u + n - 1u];
    var i = n - 1u;
    while (i > 0u) {
        i = i - 1u;
        r = r * x + coeffs.q[row * 11u + i];
    }
    return r;
}

@compute @workgroup_size(256)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let idx = global_id.x;
    if (idx >= params.size) {
        return;
    }

    let y = f32(input[idx]);
    let y_abs = abs(y);
    if (y_abs > 1.0) {
        output[idx] = OutT(bitcast<f32>(0x7fc00000u)); // NaN
        return;
    }
    if (y_abs == 1.0) {
        output[idx] = OutT(sign(y) * bitcast<f32>(0x7f800000u)); // +/-Inf
        return;
    }
    if (y_abs == 0.0) {
        output[idx] = OutT(y); // keeps the sign of zero
        return;
    }

    let p = y_abs;
    let q = 1.0 - p;
    var r: f32;
    if (p <= 0.5) {
        let g = p * (p + 10.0);
        r = g * coeffs.y[0] + g * (horner_p(0u, 8u, p) / horner_q(0u, 10u, p));
    } else if (q >= 0.25) {
        let g = sqrt(-2.0 * log(q));
        let xs = q - 0.25;
        r = g / (coeffs.y[1] + horner_p(1u, 9u, xs) / horner_q(1u, 9u, xs));
    } else {
        let x = sqrt(-log(q));
        var row: u32;
        var np: u32;
        var nq: u32;
        var off: f32;
        if (x < 3.0) {
            row = 2u; np = 11u; nq = 8u; off = 1.125;
        } else if (x < 6.0) {
            row = 3u; np = 9u; nq = 7u; off = 3.0;
        } else if (x < 18.0) {
            row = 4u; np = 9u; nq = 7u; off = 6.0;
        } else if (x < 44.0) {
            row = 5u; np = 8u; nq = 7u; off = 18.0;
        } else {
            row = 6u; np = 8u; nq = 7u; off = 44.0;
        }
        let xs = x - off;
        let rat = horner_p(row, np, xs) / horner_q(row, nq, xs);
        r = coeffs.y[row] * x + rat * x;
    }

    output[idx] = OutT(sign(y) * r);
}
`

// KernelSource returns complete kernel source for the scheme, specialized
// for the given output and input element type names. Substitution is purely
// textual; type-name validity is the caller's responsibility.
func KernelSource(scheme erfinv.Scheme, outType, inType string) string {
	switch scheme {
	case erfinv.FastApprox:
		return specialize(fastKernelTemplate, outType, inType)
	case erfinv.PreciseApprox:
		return specialize(preciseKernelTemplate, outType, inType)
	default:
		panic(fmt.Sprintf("wgsl: unknown scheme %d", scheme))
	}
}

// CoeffsBytes returns the packed coefficient table matching the scheme's
// kernel struct layout.
func CoeffsBytes(scheme erfinv.Scheme) []byte {
	switch scheme {
	case erfinv.FastApprox:
		return erfinv.PackFast()
	case erfinv.PreciseApprox:
		return erfinv.PackPrecise()
	default:
		panic(fmt.Sprintf("wgsl: unknown scheme %d", scheme))
	}
}

var (
	fastF32Once    sync.Once
	fastF32Src     string
	preciseF32Once sync.Once
	preciseF32Src  string
)

// FastKernelF32 returns the fast kernel specialized for f32 output and
// input, built once on first use.
func FastKernelF32() string {
	fastF32Once.Do(func() {
		fastF32Src = KernelSource(erfinv.FastApprox, "f32", "f32")
	})
	return fastF32Src
}

// PreciseKernelF32 returns the precise kernel specialized for f32 output and
// input, built once on first use.
func PreciseKernelF32() string {
	preciseF32Once.Do(func() {
		preciseF32Src = KernelSource(erfinv.PreciseApprox, "f32", "f32")
	})
	return preciseF32Src
}

func specialize(tmpl, outType, inType string) string {
	if n := strings.Count(tmpl, "%s"); n != 2 {
		panic(fmt.Sprintf("wgsl: template has %d substitution slots, want 2", n))
	}
	return fmt.Sprintf(tmpl, outType, inType)
}
