//go:build windows

package webgpu

import (
	"encoding/binary"
	"fmt"

	"github.com/go-webgpu/webgpu/wgpu"

	"github.com/born-ml/kernels/internal/erfinv"
	"github.com/born-ml/kernels/internal/tensor"
	"github.com/born-ml/kernels/internal/wgsl"
)

// Erfinv computes the inverse error function elementwise on GPU using the
// generated kernel for the requested scheme. One invocation is dispatched
// per output element.
func (b *Backend) Erfinv(input *tensor.RawTensor, scheme erfinv.Scheme) (*tensor.RawTensor, error) {
	if input.DType() != tensor.Float32 {
		return nil, fmt.Errorf("webgpu: only float32 is supported, got %s", input.DType())
	}

	numElements := input.NumElements()
	name := "erfinv_" + scheme.String()

	var code string
	switch scheme {
	case erfinv.FastApprox:
		code = wgsl.FastKernelF32()
	case erfinv.PreciseApprox:
		code = wgsl.PreciseKernelF32()
	default:
		return nil, fmt.Errorf("webgpu: unknown erfinv scheme %d", scheme)
	}

	shader := b.compileShader(name, code)
	pipeline := b.getOrCreatePipeline(name, shader)

	//nolint:gosec // G115: Safe conversion, ByteSize() returns non-negative int
	resultSize := uint64(input.ByteSize())
	bufferOutput := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: wgpu.BufferUsageStorage | wgpu.BufferUsageCopySrc | wgpu.BufferUsageCopyDst,
		Size:  resultSize,
	})
	defer bufferOutput.Release()

	bufferInput := b.createBuffer(input.Data(), wgpu.BufferUsageStorage|wgpu.BufferUsageCopySrc)
	defer bufferInput.Release()

	// The fast scheme's table is a uniform struct of vec4s; the precise
	// scheme's larger table lives in a read-only storage buffer.
	coeffs := wgsl.CoeffsBytes(scheme)
	var bufferCoeffs *wgpu.Buffer
	if scheme == erfinv.FastApprox {
		bufferCoeffs = b.createUniformBuffer(coeffs)
	} else {
		bufferCoeffs = b.createBuffer(coeffs, wgpu.BufferUsageStorage)
	}
	defer bufferCoeffs.Release()
	coeffsSize := uint64(len(coeffs))

	params := make([]byte, 16) // 16-byte aligned
	//nolint:gosec // G115: Safe conversion, NumElements() returns non-negative int
	binary.LittleEndian.PutUint32(params[0:4], uint32(numElements))
	bufferParams := b.createUniformBuffer(params)
	defer bufferParams.Release()

	bindGroupLayout := pipeline.GetBindGroupLayout(0)
	bindGroup := b.device.CreateBindGroupSimple(bindGroupLayout, []wgpu.BindGroupEntry{
		wgpu.BufferBindingEntry(0, bufferOutput, 0, resultSize),
		wgpu.BufferBindingEntry(1, bufferInput, 0, resultSize),
		wgpu.BufferBindingEntry(2, bufferCoeffs, 0, coeffsSize),
		wgpu.BufferBindingEntry(3, bufferParams, 0, 16),
	})
	defer bindGroup.Release()

	encoder := b.device.CreateCommandEncoder(nil)
	computePass := encoder.BeginComputePass(nil)

	computePass.SetPipeline(pipeline)
	computePass.SetBindGroup(0, bindGroup, nil)

	//nolint:gosec // G115: Safe conversion, workgroup count is non-negative
	workgroups := uint32((numElements + wgsl.WorkgroupSize - 1) / wgsl.WorkgroupSize)
	computePass.DispatchWorkgroups(workgroups, 1, 1)
	computePass.End()

	cmdBuffer := encoder.Finish(nil)
	b.queue.Submit(cmdBuffer)

	resultData, err := b.readBuffer(bufferOutput, resultSize)
	if err != nil {
		return nil, err
	}

	result, err := tensor.NewRaw(input.Shape(), input.DType(), tensor.WebGPU)
	if err != nil {
		return nil, err
	}

	copy(result.Data(), resultData)
	return result, nil
}
