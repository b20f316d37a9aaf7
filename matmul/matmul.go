// Copyright 2026 The CubeCL Go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matmul provides the public API for tiled matmul planning:
// windowed tensor views, coalesced tile loads and stores, and the kernel
// configuration loaded from YAML.
package matmul

import (
	"github.com/AntiAnimeGeneral/cubecl/internal/matmul"
)

// Numeric constrains the element types a tensor view can address.
type Numeric = matmul.Numeric

// Line is one vectorized unit of tensor data.
type Line[T Numeric] = matmul.Line[T]

// EmptyLine returns a zero line of the given width.
func EmptyLine[T Numeric](width int) Line[T] {
	return matmul.EmptyLine[T](width)
}

// Buffer is the line-granular storage a tensor view reads and writes.
type Buffer[T Numeric] = matmul.Buffer[T]

// TensorView is a movable window over one matmul operand.
type TensorView[T Numeric] = matmul.TensorView[T]

// NewTensorView creates a view over the given buffer positioned at the
// nth batch.
func NewTensorView[T Numeric](buffer Buffer[T], xOffset, yOffset, nthBatch int) *TensorView[T] {
	return matmul.NewTensorView(buffer, xOffset, yOffset, nthBatch)
}

// StageDim is the thread-tile geometry of one operand stage.
type StageDim = matmul.StageDim

// Config supplies per-operand line sizes, tile geometry, layouts and
// bounds-check flags.
type Config = matmul.Config

// OperandConfig is the YAML configuration of one matmul operand.
type OperandConfig = matmul.OperandConfig

// KernelConfig is the YAML-loadable kernel configuration implementing
// Config.
type KernelConfig = matmul.KernelConfig

// LoadKernelConfig reads and validates a kernel configuration file.
func LoadKernelConfig(path string) (*KernelConfig, error) {
	return matmul.LoadKernelConfig(path)
}
