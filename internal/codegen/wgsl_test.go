package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntiAnimeGeneral/cubecl/internal/ir"
	"github.com/AntiAnimeGeneral/cubecl/internal/matmul"
)

func shaderConfig(lhsLayout, rhsLayout ir.MatrixLayout, checkM, checkN bool) *matmul.KernelConfig {
	op := func(layout ir.MatrixLayout) matmul.OperandConfig {
		return matmul.OperandConfig{
			LineSize: 1,
			Tile:     matmul.StageDim{TileSizeX: 16, TileSizeY: 16},
			Layout:   layout.String(),
		}
	}
	return &matmul.KernelConfig{
		Lhs:    op(lhsLayout),
		Rhs:    op(rhsLayout),
		Out:    op(ir.RowMajor),
		CheckM: checkM,
		CheckN: checkN,
	}
}

func TestMatmulShaderBoundsGuards(t *testing.T) {
	both := MatmulShader(shaderConfig(ir.RowMajor, ir.RowMajor, true, true))
	assert.Contains(t, both, "if (row >= params.m || col >= params.n)")

	mOnly := MatmulShader(shaderConfig(ir.RowMajor, ir.RowMajor, true, false))
	assert.Contains(t, mOnly, "if (row >= params.m)")
	assert.NotContains(t, mOnly, "col >= params.n")

	none := MatmulShader(shaderConfig(ir.RowMajor, ir.RowMajor, false, false))
	assert.NotContains(t, none, "if (row")
	assert.NotContains(t, none, "if (col")
}

func TestMatmulShaderLayouts(t *testing.T) {
	rowMajor := MatmulShader(shaderConfig(ir.RowMajor, ir.RowMajor, true, true))
	assert.Contains(t, rowMajor, "lhs[lhs_offset + row * params.k + kk]")
	assert.Contains(t, rowMajor, "rhs[rhs_offset + kk * params.n + col]")

	colMajor := MatmulShader(shaderConfig(ir.ColMajor, ir.ColMajor, true, true))
	assert.Contains(t, colMajor, "lhs[lhs_offset + kk * params.m + row]")
	assert.Contains(t, colMajor, "rhs[rhs_offset + col * params.k + kk]")
}

func TestMatmulShaderWorkgroupSize(t *testing.T) {
	cfg := shaderConfig(ir.RowMajor, ir.RowMajor, true, true)
	cfg.Out.Tile = matmul.StageDim{TileSizeX: 8, TileSizeY: 32}

	got := MatmulShader(cfg)
	assert.Contains(t, got, "@workgroup_size(32, 8, 1)")
}

func TestMatmulShaderCompiles(t *testing.T) {
	for _, cfg := range []*matmul.KernelConfig{
		shaderConfig(ir.RowMajor, ir.RowMajor, true, true),
		shaderConfig(ir.ColMajor, ir.RowMajor, true, false),
		shaderConfig(ir.RowMajor, ir.ColMajor, false, false),
	} {
		words, err := CompileWGSL(MatmulShader(cfg))
		require.NoError(t, err)
		require.NotEmpty(t, words)
		assert.Equal(t, uint32(0x07230203), words[0], "SPIR-V magic number")
	}
}
