// Copyright 2026 The CubeCL Go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for host-side tensor storage:
// shapes, raw byte-backed tensors and typed line views.
package tensor

import (
	"github.com/AntiAnimeGeneral/cubecl/internal/ir"
	"github.com/AntiAnimeGeneral/cubecl/internal/tensor"
)

// Shape represents tensor dimensions.
type Shape = tensor.Shape

// DType constrains the element types a tensor can hold.
type DType = tensor.DType

// RawTensor is a contiguous byte-backed tensor with a line size.
type RawTensor = tensor.RawTensor

// NewRaw allocates a zeroed tensor with the given shape, element type and
// line size.
func NewRaw(shape Shape, elem ir.ElemType, lineSize int) (*RawTensor, error) {
	return tensor.NewRaw(shape, elem, lineSize)
}

// FromSlice builds a tensor from existing values.
func FromSlice[T DType](shape Shape, lineSize int, values []T) (*RawTensor, error) {
	return tensor.FromSlice(shape, lineSize, values)
}

// Lines is a typed line-granular view over a raw tensor.
type Lines[T DType] = tensor.Lines[T]

// View creates a typed line view over a raw tensor. It panics when T does
// not match the tensor's element type.
func View[T DType](r *RawTensor) Lines[T] {
	return tensor.View[T](r)
}
