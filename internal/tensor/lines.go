package tensor

import (
	"fmt"

	"github.com/AntiAnimeGeneral/cubecl/internal/ir"
)

// Lines is a typed, line-granular view over a RawTensor. It exposes the
// minimal capability set tensor views need from a buffer: rank, strides,
// shapes and indexed line reads/writes.
type Lines[T DType] struct {
	raw  *RawTensor
	data []T
}

// View reinterprets the tensor as lines of T.
// Panics if T does not match the tensor's element type.
func View[T DType](r *RawTensor) Lines[T] {
	var zero T
	if want := inferElemType(zero); r.elem != want {
		panic(fmt.Sprintf("tensor element type is %s, not %s", r.elem, want))
	}
	return Lines[T]{raw: r, data: asSlice[T](r)}
}

// Raw returns the underlying RawTensor.
func (l Lines[T]) Raw() *RawTensor {
	return l.raw
}

// Rank returns the number of dimensions.
func (l Lines[T]) Rank() int {
	return l.raw.Rank()
}

// Stride returns the stride of the given dimension, in elements.
func (l Lines[T]) Stride(dim int) int {
	return l.raw.stride[dim]
}

// Shape returns the extent of the given dimension.
func (l Lines[T]) Shape(dim int) int {
	return l.raw.shape[dim]
}

// LineSize returns the number of elements per line.
func (l Lines[T]) LineSize() int {
	return l.raw.lineSize
}

// Len returns the total number of lines.
func (l Lines[T]) Len() int {
	return l.raw.NumLines()
}

// Item returns the element item of the underlying tensor.
func (l Lines[T]) Item() ir.Item {
	return l.raw.Item()
}

// ReadLine returns the line at the given line position. The returned slice
// aliases the tensor's memory; callers must not grow it.
func (l Lines[T]) ReadLine(pos int) []T {
	width := l.raw.lineSize
	return l.data[pos*width : (pos+1)*width : (pos+1)*width]
}

// WriteLine copies the given line into the given line position.
// Panics if the line width does not match the tensor's.
func (l Lines[T]) WriteLine(pos int, line []T) {
	width := l.raw.lineSize
	if len(line) != width {
		panic(fmt.Sprintf("line width %d does not match tensor line size %d", len(line), width))
	}
	copy(l.data[pos*width:(pos+1)*width], line)
}
