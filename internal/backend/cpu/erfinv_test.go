package cpu

import (
	"math"
	"testing"

	"github.com/x448/float16"

	"github.com/born-ml/kernels/internal/erfinv"
	"github.com/born-ml/kernels/internal/tensor"
)

func TestErfinvFloat32(t *testing.T) {
	backend := New()
	in := []float32{-0.999, -0.7, -0.5, 0, 0.5, 0.7, 0.999}

	x, err := tensor.NewRaw(tensor.Shape{len(in)}, tensor.Float32, tensor.CPU)
	if err != nil {
		t.Fatalf("NewRaw: %v", err)
	}
	copy(x.AsFloat32(), in)

	for _, scheme := range []erfinv.Scheme{erfinv.FastApprox, erfinv.PreciseApprox} {
		out := backend.Erfinv(x, scheme)
		if !out.Shape().Equal(x.Shape()) {
			t.Fatalf("%s: shape = %v, want %v", scheme, out.Shape(), x.Shape())
		}
		got := out.AsFloat32()
		for i, y := range in {
			want := erfinv.Eval(y, scheme)
			if got[i] != want {
				t.Errorf("%s: erfinv(%v) = %v, want %v", scheme, y, got[i], want)
			}
		}
	}
}

func TestErfinvFloat32_DomainEdges(t *testing.T) {
	backend := New()
	x, _ := tensor.NewRaw(tensor.Shape{4}, tensor.Float32, tensor.CPU)
	copy(x.AsFloat32(), []float32{1, -1, 1.5, -1.5})

	out := backend.Erfinv(x, erfinv.PreciseApprox).AsFloat32()
	if !math.IsInf(float64(out[0]), 1) {
		t.Errorf("erfinv(1) = %v, want +Inf", out[0])
	}
	if !math.IsInf(float64(out[1]), -1) {
		t.Errorf("erfinv(-1) = %v, want -Inf", out[1])
	}
	if !math.IsNaN(float64(out[2])) || !math.IsNaN(float64(out[3])) {
		t.Errorf("erfinv outside [-1,1] = %v, %v, want NaN", out[2], out[3])
	}
}

func TestErfinvFloat64(t *testing.T) {
	backend := New()
	x, _ := tensor.NewRaw(tensor.Shape{3}, tensor.Float64, tensor.CPU)
	copy(x.AsFloat64(), []float64{-0.5, 0.25, 0.9})

	out := backend.Erfinv(x, erfinv.PreciseApprox).AsFloat64()
	for i, y := range x.AsFloat64() {
		want := float64(erfinv.Precise(float32(y)))
		if out[i] != want {
			t.Errorf("erfinv(%v) = %v, want %v", y, out[i], want)
		}
	}
}

func TestErfinvFloat16(t *testing.T) {
	backend := New()
	x, _ := tensor.NewRaw(tensor.Shape{3}, tensor.Float16, tensor.CPU)
	bits := x.AsFloat16()
	vals := []float32{-0.5, 0.25, 0.9}
	for i, v := range vals {
		bits[i] = float16.Fromfloat32(v)
	}

	out := backend.Erfinv(x, erfinv.PreciseApprox).AsFloat16()
	for i := range vals {
		want := float16.Fromfloat32(erfinv.Precise(bits[i].Float32()))
		if out[i] != want {
			t.Errorf("erfinv(%v) = %v, want %v", bits[i].Float32(), out[i].Float32(), want.Float32())
		}
	}
}

func TestErfinvUnsupportedDType(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Erfinv on int32 tensor should panic")
		}
	}()
	backend := New()
	x, _ := tensor.NewRaw(tensor.Shape{2}, tensor.Int32, tensor.CPU)
	backend.Erfinv(x, erfinv.FastApprox)
}
