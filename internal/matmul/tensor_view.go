package matmul

import (
	"fmt"

	"github.com/AntiAnimeGeneral/cubecl/internal/ir"
)

// Numeric is the element constraint for tensor views.
type Numeric interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~uint8
}

// Line is a fixed-width vector of elements read or written as one unit for
// memory coalescing.
type Line[T Numeric] []T

// EmptyLine returns a zero-filled line of the given width.
func EmptyLine[T Numeric](width int) Line[T] {
	return make(Line[T], width)
}

// Buffer is the minimal capability set a tensor view requires from a
// buffer-like collaborator: rank, per-dimension strides and shapes, and
// indexed line access.
type Buffer[T Numeric] interface {
	Rank() int
	Stride(dim int) int
	Shape(dim int) int
	LineSize() int
	ReadLine(pos int) []T
	WriteLine(pos int, line []T)
}

// TensorView is a view of a tensor that starts reading data from a
// specified offset. It ensures safe access by preventing out-of-bounds
// effects and caches the needed strides and shapes at construction.
//
// The two trailing logical dimensions are the matrix dimensions; all
// leading dimensions collapse into a single precomputed batch offset.
type TensorView[T Numeric] struct {
	Tensor      Buffer[T]
	XOffset     int
	YOffset     int
	StrideX     int
	StrideY     int
	ShapeX      int
	ShapeY      int
	BatchOffset int
}

// NewTensorView instantiates a view over the given buffer, pre-fetching
// the needed strides and shapes for the batch slice nthBatch.
// Panics if the buffer's rank is below 3.
func NewTensorView[T Numeric](buffer Buffer[T], xOffset, yOffset, nthBatch int) *TensorView[T] {
	rank := buffer.Rank()
	if rank < 3 {
		panic(fmt.Sprintf("matmul: tensor view requires rank >= 3, got %d", rank))
	}

	return &TensorView[T]{
		Tensor:      buffer,
		XOffset:     xOffset,
		YOffset:     yOffset,
		StrideX:     buffer.Stride(rank - 2),
		StrideY:     buffer.Stride(rank - 1),
		ShapeX:      buffer.Shape(rank - 2),
		ShapeY:      buffer.Shape(rank - 1),
		BatchOffset: nthBatch * buffer.Stride(rank-3),
	}
}

// Advance moves the view along the k dimension by kOffset. The reduction
// dimension is the column index of the left operand and the row index of
// the right operand, so both views stay aligned on the same k-slice when
// advanced together. Output views never move along k.
func (v *TensorView[T]) Advance(kOffset int, ident ir.Ident) {
	switch ident {
	case ir.Lhs:
		v.YOffset += kOffset
	case ir.Rhs:
		v.XOffset += kOffset
	case ir.Out:
	}
}

// LoadCoalesced reads one line from the view at the given tile coordinates.
//
// Each unit loads one line in a coalesced manner: for row-major operands,
// subsequent units read lines horizontally within the tile, while for
// column-major operands they read lines vertically, so units always
// traverse the fastest-varying physical dimension.
//
// Out-of-bounds reads are translated to zero-filled lines.
func (v *TensorView[T]) LoadCoalesced(tileX, tileY, unitID int, ident ir.Ident, config Config) Line[T] {
	lineSize := config.LineSize(ident)
	dim := config.StageDim(ident)

	viewTileX := tileX*dim.TileSizeX + v.XOffset
	viewTileY := tileY*dim.TileSizeY + v.YOffset

	var loadX, loadY int
	switch config.Layout(ident) {
	case ir.RowMajor:
		loadX, loadY = unitID/dim.TileSizeY, unitID%dim.TileSizeY
	case ir.ColMajor:
		loadX, loadY = unitID%dim.TileSizeX, unitID/dim.TileSizeX
	}

	viewX := viewTileX + loadX
	viewY := viewTileY + loadY

	readPos := (viewX*v.StrideX + viewY*v.StrideY + v.BatchOffset) / lineSize

	if viewX < v.ShapeX && viewY < v.ShapeY {
		return Line[T](v.Tensor.ReadLine(readPos))
	}
	return EmptyLine[T](lineSize)
}

// StoreCoalesced writes one line into the view at the given tile
// coordinates, assuming a row-major output layout. The write position is
// expressed in the destination buffer's own line width, which may differ
// from the configured operand line width.
//
// Which bounds are enforced is fixed by the configuration's comptime
// check flags; kernels shaped as exact tile multiples can disable either
// check.
func (v *TensorView[T]) StoreCoalesced(tileX, tileY, unitID int, value Line[T], config Config) {
	dim := config.StageDim(ir.Out)

	viewX := tileX*dim.TileSizeX + unitID/dim.TileSizeY + v.XOffset
	viewY := tileY*dim.TileSizeY + unitID%dim.TileSizeY + v.YOffset

	writePos := (viewX*v.StrideX + viewY*v.StrideY + v.BatchOffset) / v.Tensor.LineSize()

	if config.CheckMBounds() {
		if config.CheckNBounds() {
			if viewX < v.ShapeX && viewY < v.ShapeY {
				v.Tensor.WriteLine(writePos, value)
			}
		} else if viewX < v.ShapeX {
			v.Tensor.WriteLine(writePos, value)
		}
	} else if config.CheckNBounds() {
		if viewY < v.ShapeY {
			v.Tensor.WriteLine(writePos, value)
		}
	} else {
		v.Tensor.WriteLine(writePos, value)
	}
}
