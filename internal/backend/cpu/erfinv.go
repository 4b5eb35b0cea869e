package cpu

import (
	"fmt"

	"github.com/x448/float16"

	"github.com/born-ml/kernels/internal/erfinv"
	"github.com/born-ml/kernels/internal/parallel"
	"github.com/born-ml/kernels/internal/tensor"
)

// Erfinv computes the inverse error function elementwise under the given
// approximation scheme. Inputs outside [-1, 1] produce NaN and |x| == 1
// produces signed infinity; no error is raised for domain edges.
//
// The evaluation itself is single precision for every dtype; Float64 tensors
// are narrowed per element before evaluation.
func (cpu *CPUBackend) Erfinv(x *tensor.RawTensor, scheme erfinv.Scheme) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("erfinv: %v", err))
	}

	n := x.NumElements()
	switch x.DType() {
	case tensor.Float32:
		src := x.AsFloat32()
		dst := result.AsFloat32()
		parallel.For(n, func(i int) {
			dst[i] = erfinv.Eval(src[i], scheme)
		}, cpu.cfg)
	case tensor.Float64:
		src := x.AsFloat64()
		dst := result.AsFloat64()
		parallel.For(n, func(i int) {
			dst[i] = float64(erfinv.Eval(float32(src[i]), scheme))
		}, cpu.cfg)
	case tensor.Float16:
		src := x.AsFloat16()
		dst := result.AsFloat16()
		parallel.For(n, func(i int) {
			dst[i] = float16.Fromfloat32(erfinv.Eval(src[i].Float32(), scheme))
		}, cpu.cfg)
	default:
		panic(fmt.Sprintf("erfinv: unsupported dtype %s (only float16/float32/float64 supported)", x.DType()))
	}

	return result
}
