// Copyright 2026 The CubeCL Go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package codegen provides the public API for rendering barrier
// operations through target dialects and generating compute shaders.
package codegen

import (
	"github.com/AntiAnimeGeneral/cubecl/internal/codegen"
	"github.com/AntiAnimeGeneral/cubecl/internal/ir"
	"github.com/AntiAnimeGeneral/cubecl/internal/matmul"
)

// BarrierOp is one operation in a barrier lifecycle.
type BarrierOp = codegen.BarrierOp

// Init declares and initializes a barrier at its level.
type Init = codegen.Init

// MemCopyAsync registers an asynchronous copy on a barrier.
type MemCopyAsync = codegen.MemCopyAsync

// Wait blocks until all registered copies on a barrier complete.
type Wait = codegen.Wait

// BarrierID returns the identity of the barrier an operation targets.
func BarrierID(op BarrierOp) ir.VarID {
	return codegen.BarrierID(op)
}

// Render emits the source fragment for a barrier operation in the given
// dialect.
func Render(op BarrierOp, d Dialect) string {
	return codegen.Render(op, d)
}

// Dialect renders target-specific source fragments.
type Dialect = codegen.Dialect

// RegisterDialect registers a dialect under its name, replacing any
// earlier dialect with the same name.
func RegisterDialect(d Dialect) {
	codegen.RegisterDialect(d)
}

// GetDialect looks up a registered dialect by name.
func GetDialect(name string) (Dialect, error) {
	return codegen.GetDialect(name)
}

// AvailableDialects returns the sorted names of all registered dialects.
func AvailableDialects() []string {
	return codegen.AvailableDialects()
}

// MatmulShader generates the WGSL tiled matmul shader for a kernel
// configuration.
func MatmulShader(config matmul.Config) string {
	return codegen.MatmulShader(config)
}

// CompileWGSL validates WGSL source by compiling it to SPIR-V words.
func CompileWGSL(source string) ([]uint32, error) {
	return codegen.CompileWGSL(source)
}
