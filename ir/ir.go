// Copyright 2026 The CubeCL Go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ir provides the public API for the kernel intermediate
// representation: variable identities, element items, barrier levels and
// the matmul operand/layout enums consumed by the code generators.
package ir

import (
	"github.com/AntiAnimeGeneral/cubecl/internal/ir"
)

// ElemType represents the scalar element type of device values.
type ElemType = ir.ElemType

// Element type constants.
const (
	Float32 ElemType = ir.Float32
	Float64 ElemType = ir.Float64
	Int32   ElemType = ir.Int32
	Int64   ElemType = ir.Int64
	Uint8   ElemType = ir.Uint8
)

// Item describes the value layout of a variable: a scalar element type
// replicated Vectorization times into one line.
type Item = ir.Item

// NewItem creates an item with the given element type and vectorization.
func NewItem(elem ElemType, vectorization int) Item {
	return ir.NewItem(elem, vectorization)
}

// VarID is the stable numeric identity of a declared variable.
type VarID = ir.VarID

// VarKind classifies declared kernel variables.
type VarKind = ir.VarKind

// Variable kind constants.
const (
	KindBarrier      VarKind = ir.KindBarrier
	KindGlobalMemory VarKind = ir.KindGlobalMemory
	KindSharedMemory VarKind = ir.KindSharedMemory
	KindLocal        VarKind = ir.KindLocal
	KindConst        VarKind = ir.KindConst
)

// Variable is an opaque handle to a declared kernel variable.
type Variable = ir.Variable

// Const returns an immediate unsigned constant.
func Const(v uint32) Variable {
	return ir.Const(v)
}

// Arena assigns identities to declared kernel variables.
type Arena = ir.Arena

// NewArena creates an empty variable arena.
func NewArena() *Arena {
	return ir.NewArena()
}

// Scope is the participant extent of a barrier.
type Scope = ir.Scope

// Barrier scope constants.
const (
	ScopeUnit Scope = ir.ScopeUnit
	ScopeCube Scope = ir.ScopeCube
)

// BarrierLevel describes who participates in a barrier.
type BarrierLevel = ir.BarrierLevel

// Unit returns the single-thread barrier level.
func Unit() BarrierLevel {
	return ir.Unit()
}

// Cube returns the cooperative-group barrier level with the given elected
// thread index expression.
func Cube(elected Variable) BarrierLevel {
	return ir.Cube(elected)
}

// Ident names which matmul operand a tensor view addresses.
type Ident = ir.Ident

// Matmul operand constants.
const (
	Lhs Ident = ir.Lhs
	Rhs Ident = ir.Rhs
	Out Ident = ir.Out
)

// MatrixLayout determines how a linear thread index maps to a 2-D offset
// within a tile.
type MatrixLayout = ir.MatrixLayout

// Layout constants.
const (
	RowMajor MatrixLayout = ir.RowMajor
	ColMajor MatrixLayout = ir.ColMajor
)
