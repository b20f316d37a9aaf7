package tensor

import (
	"fmt"
	"unsafe"

	"github.com/AntiAnimeGeneral/cubecl/internal/ir"
)

// RawTensor is the low-level buffer representation backing generated
// kernels. Data is stored row-major; memory is addressed in lines of
// lineSize elements for coalesced access.
type RawTensor struct {
	data     []byte
	shape    Shape
	stride   []int
	elem     ir.ElemType
	lineSize int
}

// NewRaw creates a new RawTensor with the given shape, element type and
// line width. Memory is allocated zero-filled.
func NewRaw(shape Shape, elem ir.ElemType, lineSize int) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if lineSize < 1 {
		return nil, fmt.Errorf("invalid line size %d (must be >= 1)", lineSize)
	}

	numElements := shape.NumElements()
	if numElements%lineSize != 0 {
		return nil, fmt.Errorf("line size %d does not divide element count %d", lineSize, numElements)
	}

	return &RawTensor{
		data:     make([]byte, numElements*elem.Size()),
		shape:    shape.Clone(),
		stride:   shape.ComputeStrides(),
		elem:     elem,
		lineSize: lineSize,
	}, nil
}

// FromSlice creates a RawTensor initialized with the given values.
func FromSlice[T DType](shape Shape, lineSize int, values []T) (*RawTensor, error) {
	if len(values) != shape.NumElements() {
		return nil, fmt.Errorf("value count %d does not match shape %v (%d elements)",
			len(values), shape, shape.NumElements())
	}
	raw, err := NewRaw(shape, inferElemType(values[0]), lineSize)
	if err != nil {
		return nil, err
	}
	copy(asSlice[T](raw), values)
	return raw, nil
}

// Shape returns the tensor's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// Strides returns the tensor's memory strides, in elements.
func (r *RawTensor) Strides() []int {
	return r.stride
}

// Elem returns the tensor's element type.
func (r *RawTensor) Elem() ir.ElemType {
	return r.elem
}

// Item returns the tensor's element item: its element type at the
// tensor's line width.
func (r *RawTensor) Item() ir.Item {
	return ir.NewItem(r.elem, r.lineSize)
}

// Rank returns the number of dimensions.
func (r *RawTensor) Rank() int {
	return len(r.shape)
}

// LineSize returns the number of elements per line.
func (r *RawTensor) LineSize() int {
	return r.lineSize
}

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int {
	return r.shape.NumElements()
}

// NumLines returns the total number of lines.
func (r *RawTensor) NumLines() int {
	return r.NumElements() / r.lineSize
}

// ByteSize returns the total memory size in bytes.
func (r *RawTensor) ByteSize() int {
	return r.NumElements() * r.elem.Size()
}

// Data returns the raw byte slice.
// WARNING: Direct access to underlying memory. Use with caution.
func (r *RawTensor) Data() []byte {
	return r.data
}

// AsFloat32 interprets the data as []float32.
// Panics if the tensor's element type is not Float32.
func (r *RawTensor) AsFloat32() []float32 {
	if r.elem != ir.Float32 {
		panic(fmt.Sprintf("tensor element type is %s, not float32", r.elem))
	}
	return asSlice[float32](r)
}

// AsFloat64 interprets the data as []float64.
// Panics if the tensor's element type is not Float64.
func (r *RawTensor) AsFloat64() []float64 {
	if r.elem != ir.Float64 {
		panic(fmt.Sprintf("tensor element type is %s, not float64", r.elem))
	}
	return asSlice[float64](r)
}

// AsInt32 interprets the data as []int32.
// Panics if the tensor's element type is not Int32.
func (r *RawTensor) AsInt32() []int32 {
	if r.elem != ir.Int32 {
		panic(fmt.Sprintf("tensor element type is %s, not int32", r.elem))
	}
	return asSlice[int32](r)
}

// asSlice reinterprets the raw bytes as a []T without copying.
func asSlice[T DType](r *RawTensor) []T {
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*T)(unsafe.Pointer(&r.data[0])), r.NumElements())
}
