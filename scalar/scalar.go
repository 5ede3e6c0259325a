// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package scalar provides differentiable float64 scalars.
//
// Scalars are allocated by an Arena, which assigns their ids. A Scalar is a
// Leaf (differentiable input), a Constant, or the result of an Operation.
//
// Example:
//
//	arena := scalar.NewArena()
//	a := arena.Leaf(1.5)
//	d := arena.Add(arena.Mul(a, arena.Constant(3)), arena.Mul(a, arena.Constant(5)))
//	d.Backward()
//	fmt.Println(a.Derivative()) // 8
package scalar

import "github.com/born-ml/minigrad/internal/scalar"

// Scalar is a node of a scalar computation graph.
type Scalar = scalar.Scalar

// Arena allocates scalars for one computation graph.
type Arena = scalar.Arena

// Kind is the variant of a Scalar.
type Kind = scalar.Kind

// Scalar variants.
const (
	Leaf      = scalar.Leaf
	Constant  = scalar.Constant
	Operation = scalar.Operation
)

// Function is a differentiable scalar operation usable with Arena.Apply.
type Function = scalar.Function

// Built-in functions.
type (
	AddOp     = scalar.AddOp
	MulOp     = scalar.MulOp
	NegOp     = scalar.NegOp
	InvOp     = scalar.InvOp
	LogOp     = scalar.LogOp
	ExpOp     = scalar.ExpOp
	SigmoidOp = scalar.SigmoidOp
	ReLUOp    = scalar.ReLUOp
	LTOp      = scalar.LTOp
	EQOp      = scalar.EQOp
)

// NewArena creates an empty arena.
func NewArena() *Arena {
	return scalar.NewArena()
}
