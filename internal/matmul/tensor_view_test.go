package matmul

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntiAnimeGeneral/cubecl/internal/ir"
	"github.com/AntiAnimeGeneral/cubecl/internal/tensor"
)

// testConfig builds a KernelConfig with identical geometry for all three
// operands.
func testConfig(lineSize, tileX, tileY int, layout ir.MatrixLayout, checkM, checkN bool) *KernelConfig {
	op := OperandConfig{
		LineSize: lineSize,
		Tile:     StageDim{TileSizeX: tileX, TileSizeY: tileY},
		Layout:   layout.String(),
	}
	return &KernelConfig{Lhs: op, Rhs: op, Out: op, CheckM: checkM, CheckN: checkN}
}

// counting fills a buffer with its own linear element indices so reads
// reveal physical positions.
func counting(t *testing.T, shape tensor.Shape, lineSize int) tensor.Lines[float32] {
	t.Helper()
	values := make([]float32, shape.NumElements())
	for i := range values {
		values[i] = float32(i)
	}
	raw, err := tensor.FromSlice(shape, lineSize, values)
	require.NoError(t, err)
	return tensor.View[float32](raw)
}

func TestNewTensorViewBindsTrailingDims(t *testing.T) {
	buf := counting(t, tensor.Shape{2, 4, 6}, 1)
	view := NewTensorView(buf, 1, 2, 1)

	assert.Equal(t, 6, view.StrideX)
	assert.Equal(t, 1, view.StrideY)
	assert.Equal(t, 4, view.ShapeX)
	assert.Equal(t, 6, view.ShapeY)
	assert.Equal(t, 24, view.BatchOffset)
	assert.Equal(t, 1, view.XOffset)
	assert.Equal(t, 2, view.YOffset)
}

func TestNewTensorViewRequiresRank3(t *testing.T) {
	buf := counting(t, tensor.Shape{4, 4}, 1)
	assert.Panics(t, func() {
		NewTensorView(buf, 0, 0, 0)
	})
}

func TestAdvanceRoundTrip(t *testing.T) {
	buf := counting(t, tensor.Shape{1, 4, 4}, 1)

	tests := []struct {
		ident        ir.Ident
		wantX, wantY int // offsets after advancing by +8
	}{
		{ir.Lhs, 0, 8},
		{ir.Rhs, 8, 0},
		{ir.Out, 0, 0},
	}

	for _, tt := range tests {
		view := NewTensorView(buf, 0, 0, 0)

		view.Advance(8, tt.ident)
		assert.Equal(t, tt.wantX, view.XOffset, "%s x after +8", tt.ident)
		assert.Equal(t, tt.wantY, view.YOffset, "%s y after +8", tt.ident)

		view.Advance(-8, tt.ident)
		assert.Equal(t, 0, view.XOffset, "%s x after round trip", tt.ident)
		assert.Equal(t, 0, view.YOffset, "%s y after round trip", tt.ident)
	}
}

func TestLoadCoalescedReadsLogicalPosition(t *testing.T) {
	// [batch=2, rows=4, cols=4], line width 1, row-major, 2x2 tiles,
	// view on batch 1 at origin. Unit 3 of tile (1,1) must read logical
	// position (row=3, col=3) of batch 1, i.e. linear index 31.
	buf := counting(t, tensor.Shape{2, 4, 4}, 1)
	view := NewTensorView(buf, 0, 0, 1)
	cfg := testConfig(1, 2, 2, ir.RowMajor, false, false)

	line := view.LoadCoalesced(1, 1, 3, ir.Lhs, cfg)
	require.Len(t, line, 1)
	assert.Equal(t, float32(31), line[0])
}

func TestLoadCoalescedZeroFillsOutOfBounds(t *testing.T) {
	raw, err := tensor.FromSlice(tensor.Shape{1, 4, 4},
		2, []float32{7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7})
	require.NoError(t, err)
	buf := tensor.View[float32](raw)
	cfg := testConfig(2, 2, 2, ir.RowMajor, false, false)

	tests := []struct {
		name             string
		xOffset, yOffset int
	}{
		{"x out of range", 4, 0},
		{"y out of range", 0, 4},
		{"both out of range", 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := NewTensorView(buf, tt.xOffset, tt.yOffset, 0)
			line := view.LoadCoalesced(0, 0, 0, ir.Lhs, cfg)
			require.Len(t, line, 2, "zero line keeps the configured width")
			assert.Equal(t, Line[float32]{0, 0}, line)
		})
	}
}

func TestLoadCoalescedRowMajorIsContiguous(t *testing.T) {
	buf := counting(t, tensor.Shape{1, 8, 8}, 1)
	view := NewTensorView(buf, 0, 0, 0)
	cfg := testConfig(1, 4, 4, ir.RowMajor, false, false)

	// Within a row of the tile, consecutive units must read consecutive
	// physical positions (stride 1 in stride_y units).
	for unit := 0; unit < 16; unit++ {
		if unit%4 == 3 {
			continue // last unit of the row
		}
		cur := view.LoadCoalesced(0, 0, unit, ir.Lhs, cfg)[0]
		next := view.LoadCoalesced(0, 0, unit+1, ir.Lhs, cfg)[0]
		assert.Equal(t, cur+1, next, "unit %d -> %d", unit, unit+1)
	}
}

func TestLoadCoalescedColMajorIsContiguous(t *testing.T) {
	// Column-major physical layout: stride_x == 1. Mirror it with a
	// transposed counting pattern so element values equal physical
	// positions again.
	raw, err := tensor.NewRaw(tensor.Shape{1, 8, 8}, ir.Float32, 1)
	require.NoError(t, err)
	data := raw.AsFloat32()
	for i := range data {
		data[i] = float32(i)
	}
	buf := tensor.View[float32](raw)

	view := NewTensorView(buf, 0, 0, 0)
	view.StrideX, view.StrideY = 1, 8 // column-major strides
	cfg := testConfig(1, 4, 4, ir.ColMajor, false, false)

	// Within a column of the tile, consecutive units must read
	// consecutive physical positions (stride 1 in stride_x units).
	for unit := 0; unit < 16; unit++ {
		if unit%4 == 3 {
			continue // last unit of the column
		}
		cur := view.LoadCoalesced(0, 0, unit, ir.Lhs, cfg)[0]
		next := view.LoadCoalesced(0, 0, unit+1, ir.Lhs, cfg)[0]
		assert.Equal(t, cur+1, next, "unit %d -> %d", unit, unit+1)
	}
}

func TestStoreCoalescedBothBoundsChecked(t *testing.T) {
	// Logical shape 3x4 inside a rank-3 buffer; tile grid 2x2 covers
	// 4x4, so tile row 1 crosses the M bound.
	raw, err := tensor.NewRaw(tensor.Shape{1, 3, 4}, ir.Float32, 1)
	require.NoError(t, err)
	buf := tensor.View[float32](raw)
	view := NewTensorView(buf, 0, 0, 0)
	cfg := testConfig(1, 2, 2, ir.RowMajor, true, true)

	for tileX := 0; tileX < 2; tileX++ {
		for tileY := 0; tileY < 2; tileY++ {
			for unit := 0; unit < 4; unit++ {
				view.StoreCoalesced(tileX, tileY, unit, Line[float32]{1}, cfg)
			}
		}
	}

	data := raw.AsFloat32()
	for i, v := range data {
		assert.Equal(t, float32(1), v, "in-bounds position %d must be written", i)
	}
}

func TestStoreCoalescedUnchecked(t *testing.T) {
	// Exact tile multiple with both checks disabled: every
	// (tile_x, tile_y, unit) triple writes.
	raw, err := tensor.NewRaw(tensor.Shape{1, 4, 4}, ir.Float32, 1)
	require.NoError(t, err)
	buf := tensor.View[float32](raw)
	view := NewTensorView(buf, 0, 0, 0)
	cfg := testConfig(1, 2, 2, ir.RowMajor, false, false)

	for tileX := 0; tileX < 2; tileX++ {
		for tileY := 0; tileY < 2; tileY++ {
			for unit := 0; unit < 4; unit++ {
				view.StoreCoalesced(tileX, tileY, unit, Line[float32]{9}, cfg)
			}
		}
	}

	for i, v := range raw.AsFloat32() {
		assert.Equal(t, float32(9), v, "position %d must be written", i)
	}
}

func TestStoreCoalescedMBoundOnly(t *testing.T) {
	// shape_x = 3: any view_x == 3 suppresses the write, while view_y out
	// of range alone must not.
	raw, err := tensor.NewRaw(tensor.Shape{2, 3, 4}, ir.Float32, 1)
	require.NoError(t, err)
	buf := tensor.View[float32](raw)
	view := NewTensorView(buf, 0, 0, 0)
	cfg := testConfig(1, 2, 2, ir.RowMajor, true, false)

	// tile (1, 0), unit 2 -> view (3, 0): out of range along M, suppressed.
	view.StoreCoalesced(1, 0, 2, Line[float32]{5}, cfg)
	data := raw.AsFloat32()
	assert.Equal(t, float32(0), data[12], "write with view_x == 3 must be suppressed")

	// tile (0, 2), unit 0 -> view (0, 4): out of range along N only, the
	// unchecked write lands at the aliased physical position.
	view.StoreCoalesced(0, 2, 0, Line[float32]{5}, cfg)
	assert.Equal(t, float32(5), data[4], "write with view_y out of range must not be suppressed")
}

func TestStoreCoalescedUsesDestinationLineWidth(t *testing.T) {
	// Output buffer packed in lines of 2 while the configured operand
	// width stays 1: the write position is expressed in the buffer's own
	// width.
	raw, err := tensor.NewRaw(tensor.Shape{1, 4, 4}, ir.Float32, 2)
	require.NoError(t, err)
	buf := tensor.View[float32](raw)
	view := NewTensorView(buf, 0, 0, 0)

	op := OperandConfig{LineSize: 1, Tile: StageDim{TileSizeX: 2, TileSizeY: 1}, Layout: "row_major"}
	cfg := &KernelConfig{Lhs: op, Rhs: op, Out: op}

	// tile (1, 1), unit 0 -> view (2, 1): element position 9, line 4.
	view.StoreCoalesced(1, 1, 0, Line[float32]{3, 4}, cfg)
	data := raw.AsFloat32()
	assert.Equal(t, float32(3), data[8])
	assert.Equal(t, float32(4), data[9])
}
