//go:build windows

// Copyright 2026 The CubeCL Go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package wgpu provides the WebGPU launcher for dispatching generated
// WGSL matmul kernels on the GPU.
//
// Example:
//
//	import (
//	    "github.com/AntiAnimeGeneral/cubecl/backend/wgpu"
//	    "github.com/AntiAnimeGeneral/cubecl/codegen"
//	)
//
//	func main() {
//	    gpu, err := wgpu.New()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer gpu.Release()
//
//	    shader := codegen.MatmulShader(config)
//	    out, err := gpu.RunMatmul("matmul", shader, lhs, rhs, config.StageDim(ir.Out))
//	}
package wgpu

import (
	internalwgpu "github.com/AntiAnimeGeneral/cubecl/internal/backend/wgpu"
)

// Launcher owns the WebGPU device state and dispatches compute kernels.
type Launcher = internalwgpu.Launcher

// New creates a new WebGPU launcher.
//
// Returns an error if WebGPU initialization fails (e.g., no compatible GPU).
// Call Release() when done to free GPU resources.
func New() (*Launcher, error) {
	return internalwgpu.New()
}

// IsAvailable checks if WebGPU is available on the current system.
//
// It attempts to initialize a WebGPU adapter to verify that a compatible
// GPU and drivers are present. Useful for graceful fallback to the direct
// execution backend when no GPU is available.
func IsAvailable() bool {
	return internalwgpu.IsAvailable()
}
