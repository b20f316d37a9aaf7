package cpu

import (
	"fmt"

	"github.com/AntiAnimeGeneral/cubecl/internal/ir"
	"github.com/AntiAnimeGeneral/cubecl/internal/matmul"
	"github.com/AntiAnimeGeneral/cubecl/internal/tensor"
)

// BatchMatMul performs batched matrix multiplication by executing the
// tiled kernel body directly: [B, M, K] @ [B, K, N] -> [B, M, N].
//
// Per output tile, a cooperative group of one lane per tile element
// stages operand tiles through tensor views, synchronizes on a group
// barrier, accumulates over the k dimension and stores through the
// bounds-checked output view. It is the in-process counterpart of the
// generated device kernels and shares their configuration.
//
// The direct kernel stages scalar lines and square row-major tiles;
// other configurations are the province of the generated kernels.
func BatchMatMul(lhs, rhs *tensor.RawTensor, config matmul.Config) *tensor.RawTensor {
	lhsShape := lhs.Shape()
	rhsShape := rhs.Shape()

	if len(lhsShape) != 3 || len(rhsShape) != 3 {
		panic(fmt.Sprintf("BatchMatMul: inputs must be 3D, got %dD and %dD", len(lhsShape), len(rhsShape)))
	}
	if lhsShape[0] != rhsShape[0] {
		panic(fmt.Sprintf("BatchMatMul: batch dimension mismatch: %d vs %d", lhsShape[0], rhsShape[0]))
	}
	if lhsShape[2] != rhsShape[1] {
		panic(fmt.Sprintf("BatchMatMul: inner dimension mismatch: %d vs %d", lhsShape[2], rhsShape[1]))
	}

	batches := lhsShape[0]
	m, k, n := lhsShape[1], lhsShape[2], rhsShape[2]
	tile := tileSize(config)

	out, err := tensor.NewRaw(tensor.Shape{batches, m, n}, ir.Float32, 1)
	if err != nil {
		panic(fmt.Sprintf("BatchMatMul: failed to create result tensor: %v", err))
	}

	lhsBuf := tensor.View[float32](lhs)
	rhsBuf := tensor.View[float32](rhs)
	outBuf := tensor.View[float32](out)

	numTilesM := (m + tile - 1) / tile
	numTilesN := (n + tile - 1) / tile
	numTilesK := (k + tile - 1) / tile

	for batch := 0; batch < batches; batch++ {
		for tileM := 0; tileM < numTilesM; tileM++ {
			for tileN := 0; tileN < numTilesN; tileN++ {
				runTile(lhsBuf, rhsBuf, outBuf, config, batch, tileM, tileN, tile, numTilesK)
			}
		}
	}

	return out
}

// runTile computes one output tile with a cooperative group of
// tile*tile lanes.
func runTile(lhsBuf, rhsBuf, outBuf tensor.Lines[float32], config matmul.Config, batch, tileM, tileN, tile, numTilesK int) {
	group := NewGroup(tile * tile)
	lhsStage := make([]float32, tile*tile)
	rhsStage := make([]float32, tile*tile)

	group.Launch(func(unitID int) {
		// Views are lane-local; only the stages are shared.
		lhsView := matmul.NewTensorView(lhsBuf, 0, 0, batch)
		rhsView := matmul.NewTensorView(rhsBuf, 0, 0, batch)
		outView := matmul.NewTensorView(outBuf, 0, 0, batch)
		barrier := group.Barrier("stage")

		var acc float32
		i, j := unitID/tile, unitID%tile

		for kt := 0; kt < numTilesK; kt++ {
			lhsLine := lhsView.LoadCoalesced(tileM, 0, unitID, ir.Lhs, config)
			rhsLine := rhsView.LoadCoalesced(0, tileN, unitID, ir.Rhs, config)
			lhsStage[unitID] = lhsLine[0]
			rhsStage[unitID] = rhsLine[0]
			barrier.ArriveAndWait()

			for kk := 0; kk < tile; kk++ {
				acc += lhsStage[i*tile+kk] * rhsStage[kk*tile+j]
			}
			barrier.ArriveAndWait() // stages are reused next iteration

			lhsView.Advance(tile, ir.Lhs)
			rhsView.Advance(tile, ir.Rhs)
		}

		outView.StoreCoalesced(tileM, tileN, unitID, matmul.Line[float32]{acc}, config)
	})
}

// tileSize validates the configuration against what the direct kernel
// supports and returns the shared tile extent.
func tileSize(config matmul.Config) int {
	tile := config.StageDim(ir.Out)
	for _, ident := range []ir.Ident{ir.Lhs, ir.Rhs, ir.Out} {
		if config.LineSize(ident) != 1 {
			panic(fmt.Sprintf("BatchMatMul: %s line size %d (direct kernel stages scalar lines)", ident, config.LineSize(ident)))
		}
		if config.Layout(ident) != ir.RowMajor {
			panic(fmt.Sprintf("BatchMatMul: %s layout %s (direct kernel is row-major)", ident, config.Layout(ident)))
		}
		if config.StageDim(ident) != tile {
			panic(fmt.Sprintf("BatchMatMul: %s tile differs from output tile", ident))
		}
	}
	if tile.TileSizeX != tile.TileSizeY {
		panic(fmt.Sprintf("BatchMatMul: tile %dx%d (direct kernel uses square tiles)", tile.TileSizeX, tile.TileSizeY))
	}
	return tile.TileSizeX
}
