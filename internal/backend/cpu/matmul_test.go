package cpu

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntiAnimeGeneral/cubecl/internal/matmul"
	"github.com/AntiAnimeGeneral/cubecl/internal/tensor"
)

func directConfig(tile int, checkM, checkN bool) *matmul.KernelConfig {
	op := matmul.OperandConfig{
		LineSize: 1,
		Tile:     matmul.StageDim{TileSizeX: tile, TileSizeY: tile},
	}
	return &matmul.KernelConfig{Lhs: op, Rhs: op, Out: op, CheckM: checkM, CheckN: checkN}
}

func randomTensor(t *testing.T, rng *rand.Rand, shape tensor.Shape) *tensor.RawTensor {
	t.Helper()
	values := make([]float32, shape.NumElements())
	for i := range values {
		values[i] = rng.Float32()*2 - 1
	}
	raw, err := tensor.FromSlice(shape, 1, values)
	require.NoError(t, err)
	return raw
}

// naiveBatchMatMul is the reference the tiled kernel is checked against.
func naiveBatchMatMul(lhs, rhs []float32, batches, m, k, n int) []float32 {
	out := make([]float32, batches*m*n)
	for b := 0; b < batches; b++ {
		for i := 0; i < m; i++ {
			for j := 0; j < n; j++ {
				var sum float32
				for kk := 0; kk < k; kk++ {
					sum += lhs[b*m*k+i*k+kk] * rhs[b*k*n+kk*n+j]
				}
				out[b*m*n+i*n+j] = sum
			}
		}
	}
	return out
}

func TestBatchMatMulExactTileMultiple(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	lhs := randomTensor(t, rng, tensor.Shape{2, 4, 4})
	rhs := randomTensor(t, rng, tensor.Shape{2, 4, 4})

	// Shapes are exact tile multiples, so both checks can be disabled.
	out := BatchMatMul(lhs, rhs, directConfig(2, false, false))

	want := naiveBatchMatMul(lhs.AsFloat32(), rhs.AsFloat32(), 2, 4, 4, 4)
	got := out.AsFloat32()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-5, "element %d", i)
	}
}

func TestBatchMatMulRaggedShapes(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	// 5x7 @ 7x3 with 4x4 tiles: every dimension crosses a tile boundary,
	// exercising zero-filled loads and bounds-checked stores.
	lhs := randomTensor(t, rng, tensor.Shape{1, 5, 7})
	rhs := randomTensor(t, rng, tensor.Shape{1, 7, 3})

	out := BatchMatMul(lhs, rhs, directConfig(4, true, true))

	require.True(t, out.Shape().Equal(tensor.Shape{1, 5, 3}))
	want := naiveBatchMatMul(lhs.AsFloat32(), rhs.AsFloat32(), 1, 5, 7, 3)
	got := out.AsFloat32()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-5, "element %d", i)
	}
}

func TestBatchMatMulShapeMismatchPanics(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	lhs := randomTensor(t, rng, tensor.Shape{1, 4, 4})
	rhs := randomTensor(t, rng, tensor.Shape{1, 5, 4})

	assert.Panics(t, func() {
		BatchMatMul(lhs, rhs, directConfig(2, true, true))
	})
}

func TestBatchMatMulRejectsUnsupportedConfig(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	lhs := randomTensor(t, rng, tensor.Shape{1, 4, 4})
	rhs := randomTensor(t, rng, tensor.Shape{1, 4, 4})

	vectorized := directConfig(2, false, false)
	vectorized.Lhs.LineSize = 4
	assert.Panics(t, func() {
		BatchMatMul(lhs, rhs, vectorized)
	})

	rect := directConfig(2, false, false)
	rect.Lhs.Tile = matmul.StageDim{TileSizeX: 2, TileSizeY: 4}
	assert.Panics(t, func() {
		BatchMatMul(lhs, rhs, rect)
	})
}
