//go:build windows

package wgpu

import (
	"encoding/binary"
	"fmt"

	"github.com/go-webgpu/webgpu/wgpu"

	"github.com/AntiAnimeGeneral/cubecl/internal/ir"
	"github.com/AntiAnimeGeneral/cubecl/internal/matmul"
	"github.com/AntiAnimeGeneral/cubecl/internal/tensor"
)

// RunMatmul executes a generated batched matmul shader on the GPU:
// [B, M, K] @ [B, K, N] -> [B, M, N]. The shader must have been generated
// from a configuration whose output tile matches tile; the dispatch grid
// covers the output with one workgroup per tile.
func (l *Launcher) RunMatmul(name, shaderSource string, lhs, rhs *tensor.RawTensor, tile matmul.StageDim) (*tensor.RawTensor, error) {
	if lhs.Elem() != ir.Float32 || rhs.Elem() != ir.Float32 {
		return nil, fmt.Errorf("wgpu: only float32 is supported, got %s and %s", lhs.Elem(), rhs.Elem())
	}
	lhsShape := lhs.Shape()
	rhsShape := rhs.Shape()
	if len(lhsShape) != 3 || len(rhsShape) != 3 {
		return nil, fmt.Errorf("wgpu: inputs must be 3D, got %dD and %dD", len(lhsShape), len(rhsShape))
	}
	if lhsShape[0] != rhsShape[0] || lhsShape[2] != rhsShape[1] {
		return nil, fmt.Errorf("wgpu: shape mismatch: %v @ %v", lhsShape, rhsShape)
	}

	batches, m, k, n := lhsShape[0], lhsShape[1], lhsShape[2], rhsShape[2]

	out, err := tensor.NewRaw(tensor.Shape{batches, m, n}, ir.Float32, lhs.LineSize())
	if err != nil {
		return nil, fmt.Errorf("wgpu: failed to create result tensor: %w", err)
	}

	shader := l.compileShader(name, shaderSource)
	pipeline := l.getOrCreatePipeline(name, shader)

	bufferLhs := l.createBuffer(lhs.Data(), wgpu.BufferUsageStorage|wgpu.BufferUsageCopySrc)
	defer bufferLhs.Release()

	bufferRhs := l.createBuffer(rhs.Data(), wgpu.BufferUsageStorage|wgpu.BufferUsageCopySrc)
	defer bufferRhs.Release()

	//nolint:gosec // G115: Safe conversion, ByteSize() returns non-negative int
	resultSize := uint64(out.ByteSize())
	bufferResult := l.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: wgpu.BufferUsageStorage | wgpu.BufferUsageCopySrc | wgpu.BufferUsageCopyDst,
		Size:  resultSize,
	})
	defer bufferResult.Release()

	// Params uniform: m, k, n, batches as u32.
	params := make([]byte, 16)
	binary.LittleEndian.PutUint32(params[0:4], uint32(m))         //nolint:gosec // G115: dims fit in u32
	binary.LittleEndian.PutUint32(params[4:8], uint32(k))         //nolint:gosec // G115
	binary.LittleEndian.PutUint32(params[8:12], uint32(n))        //nolint:gosec // G115
	binary.LittleEndian.PutUint32(params[12:16], uint32(batches)) //nolint:gosec // G115
	bufferParams := l.createUniformBuffer(params)
	defer bufferParams.Release()

	bindGroupLayout := pipeline.GetBindGroupLayout(0)
	bindGroup := l.device.CreateBindGroupSimple(bindGroupLayout, []wgpu.BindGroupEntry{
		wgpu.BufferBindingEntry(0, bufferLhs, 0, uint64(lhs.ByteSize())), //nolint:gosec // G115
		wgpu.BufferBindingEntry(1, bufferRhs, 0, uint64(rhs.ByteSize())), //nolint:gosec // G115
		wgpu.BufferBindingEntry(2, bufferResult, 0, resultSize),
		wgpu.BufferBindingEntry(3, bufferParams, 0, 16),
	})
	defer bindGroup.Release()

	encoder := l.device.CreateCommandEncoder(nil)
	computePass := encoder.BeginComputePass(nil)

	computePass.SetPipeline(pipeline)
	computePass.SetBindGroup(0, bindGroup, nil)

	// One workgroup per output tile: x covers columns, y covers rows.
	groupsX := uint32((n + tile.TileSizeY - 1) / tile.TileSizeY)      //nolint:gosec // G115
	groupsY := uint32((m + tile.TileSizeX - 1) / tile.TileSizeX)      //nolint:gosec // G115
	computePass.DispatchWorkgroups(groupsX, groupsY, uint32(batches)) //nolint:gosec // G115
	computePass.End()

	cmdBuffer := encoder.Finish(nil)
	l.queue.Submit(cmdBuffer)

	resultData, err := l.readBuffer(bufferResult, resultSize)
	if err != nil {
		return nil, fmt.Errorf("wgpu: failed to read result: %w", err)
	}
	copy(out.Data(), resultData)

	return out, nil
}
