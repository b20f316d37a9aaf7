// Copyright 2026 The CubeCL Go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the public API for the direct-execution backend:
// cooperative groups, asynchronous-copy barriers and the tiled batch
// matmul runner.
package cpu

import (
	internalcpu "github.com/AntiAnimeGeneral/cubecl/internal/backend/cpu"
	"github.com/AntiAnimeGeneral/cubecl/internal/matmul"
	"github.com/AntiAnimeGeneral/cubecl/internal/tensor"
)

// Barrier tracks asynchronous copies and synchronizes its participants.
type Barrier = internalcpu.Barrier

// NewBarrier creates a barrier for the given number of participants.
func NewBarrier(participants int) *Barrier {
	return internalcpu.NewBarrier(participants)
}

// Group is a cooperative group of concurrently launched units.
type Group = internalcpu.Group

// NewGroup creates a cooperative group of the given size.
func NewGroup(size int) *Group {
	return internalcpu.NewGroup(size)
}

// BatchMatMul runs the tiled batch matmul on the host.
func BatchMatMul(lhs, rhs *tensor.RawTensor, config matmul.Config) *tensor.RawTensor {
	return internalcpu.BatchMatMul(lhs, rhs, config)
}
