package cpu

import (
	"fmt"
	"math"

	"github.com/born-ml/kernels/internal/parallel"
	"github.com/born-ml/kernels/internal/quantized"
	"github.com/born-ml/kernels/internal/tensor"
)

func init() {
	quantized.RegisterEluKernel(tensor.CPU, qelu)
}

var qeluCfg = parallel.DefaultConfig()

// qelu is the CPU quantized ELU kernel: dequantize with the input's affine
// parameters, apply ELU, requantize with the output's. out and in must not
// alias; the dispatch layer guarantees that.
//
// scale and inputScale are part of the kernel signature but unused here: the
// output tensor already carries the affine parameters this formulation needs.
func qelu(out, in *tensor.QuantizedTensor, alpha, scale, inputScale float64) {
	n := in.NumElements()
	inScale, inZP := in.Scale(), float64(in.ZeroPoint())
	outScale, outZP := out.Scale(), float64(out.ZeroPoint())

	switch in.DType() {
	case tensor.QUInt8:
		src := in.Raw().AsUint8()
		dst := out.Raw().AsUint8()
		parallel.For(n, func(i int) {
			x := (float64(src[i]) - inZP) * inScale
			dst[i] = uint8(requant(elu(x, alpha)/outScale+outZP, 0, math.MaxUint8))
		}, qeluCfg)
	case tensor.QInt8:
		src := in.Raw().AsInt8()
		dst := out.Raw().AsInt8()
		parallel.For(n, func(i int) {
			x := (float64(src[i]) - inZP) * inScale
			dst[i] = int8(requant(elu(x, alpha)/outScale+outZP, math.MinInt8, math.MaxInt8))
		}, qeluCfg)
	default:
		panic(fmt.Sprintf("qelu: unsupported dtype %s (only quint8/qint8 supported)", in.DType()))
	}
}

// elu is the real-valued activation: x for x > 0, alpha*(exp(x)-1) otherwise.
func elu(x, alpha float64) float64 {
	if x > 0 {
		return x
	}
	return alpha * math.Expm1(x)
}

// requant rounds to nearest-even and clamps to the storage range.
func requant(v, lo, hi float64) int64 {
	r := math.RoundToEven(v)
	if r < lo {
		r = lo
	}
	if r > hi {
		r = hi
	}
	return int64(r)
}
