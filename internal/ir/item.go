// Package ir defines the kernel intermediate representation consumed by the
// code generators: variable identities, element items, barrier levels and
// the matmul operand/layout enums.
package ir

import "fmt"

// ElemType represents the scalar element type of device values.
type ElemType int

// Supported element types.
const (
	Float32 ElemType = iota
	Float64
	Int32
	Int64
	Uint8
)

// Size returns the byte size of the element type.
func (e ElemType) Size() int {
	switch e {
	case Float32, Int32:
		return 4
	case Float64, Int64:
		return 8
	case Uint8:
		return 1
	default:
		panic("unknown element type")
	}
}

// String returns a human-readable name for the element type.
func (e ElemType) String() string {
	switch e {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	default:
		return "unknown"
	}
}

// Item describes the value layout of a variable: a scalar element type
// replicated Vectorization times into one line. A Vectorization of 0 or 1
// means scalar access.
type Item struct {
	Elem          ElemType
	Vectorization int
}

// NewItem creates an item with the given element type and vectorization.
func NewItem(elem ElemType, vectorization int) Item {
	if vectorization < 0 {
		panic(fmt.Sprintf("ir: negative vectorization %d", vectorization))
	}
	return Item{Elem: elem, Vectorization: vectorization}
}

// LineSize returns the number of elements in one line of this item.
func (it Item) LineSize() int {
	if it.Vectorization <= 1 {
		return 1
	}
	return it.Vectorization
}

// ByteSize returns the byte size of one line of this item.
func (it Item) ByteSize() int {
	return it.Elem.Size() * it.LineSize()
}
