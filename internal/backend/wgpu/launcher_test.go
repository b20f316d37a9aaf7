//go:build windows

package wgpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntiAnimeGeneral/cubecl/internal/codegen"
	"github.com/AntiAnimeGeneral/cubecl/internal/ir"
	"github.com/AntiAnimeGeneral/cubecl/internal/matmul"
	"github.com/AntiAnimeGeneral/cubecl/internal/tensor"
)

func gpuConfig(tile int) *matmul.KernelConfig {
	op := matmul.OperandConfig{
		LineSize: 1,
		Tile:     matmul.StageDim{TileSizeX: tile, TileSizeY: tile},
	}
	return &matmul.KernelConfig{Lhs: op, Rhs: op, Out: op, CheckM: true, CheckN: true}
}

func TestRunMatmul(t *testing.T) {
	launcher, err := New()
	if err != nil {
		t.Skip("WebGPU not available on this system")
	}
	defer launcher.Release()

	cfg := gpuConfig(8)
	lhs, err := tensor.FromSlice(tensor.Shape{1, 2, 3}, 1, []float32{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	rhs, err := tensor.FromSlice(tensor.Shape{1, 3, 2}, 1, []float32{7, 8, 9, 10, 11, 12})
	require.NoError(t, err)

	out, err := launcher.RunMatmul("matmul_8", codegen.MatmulShader(cfg), lhs, rhs, cfg.StageDim(ir.Out))
	require.NoError(t, err)

	require.True(t, out.Shape().Equal(tensor.Shape{1, 2, 2}))
	want := []float32{58, 64, 139, 154}
	got := out.AsFloat32()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-4, "element %d", i)
	}
}
