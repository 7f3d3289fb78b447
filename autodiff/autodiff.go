// Copyright 2025 Gradix ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation.
//
// Operations on Variables are recorded into a Graph (a gradient tape); a
// single Backward pass then computes the gradient of a loss with respect to
// every parameter that contributed to it.
//
// Example:
//
//	import (
//	    "github.com/gradix-ml/gradix/autodiff"
//	    "github.com/gradix-ml/gradix/tensor"
//	)
//
//	func main() {
//	    g := autodiff.NewGraph()
//	    x := g.Parameter(tensor.Scalar(3))
//
//	    // y = x^2, recorded on the tape
//	    y, _ := x.Mul(x)
//
//	    grads, _ := autodiff.Backward(y)
//	    dx, _ := grads.Of(x) // 2x = 6
//	    _ = dx
//	}
//
// Graphs are single-goroutine; call Reset between training steps to reuse
// the tape without reallocating.
package autodiff

import (
	"github.com/gradix-ml/gradix/internal/autodiff"
)

// NodeID identifies a node within its Graph.
type NodeID = autodiff.NodeID

// OpKind discriminates the operation recorded at a node.
type OpKind = autodiff.OpKind

// Op describes one recorded operation.
type Op = autodiff.Op

// Operation kinds.
const (
	OpLeaf      = autodiff.OpLeaf
	OpAdd       = autodiff.OpAdd
	OpSub       = autodiff.OpSub
	OpMul       = autodiff.OpMul
	OpDiv       = autodiff.OpDiv
	OpMatMul    = autodiff.OpMatMul
	OpNeg       = autodiff.OpNeg
	OpExp       = autodiff.OpExp
	OpLn        = autodiff.OpLn
	OpRelu      = autodiff.OpRelu
	OpSigmoid   = autodiff.OpSigmoid
	OpTanh      = autodiff.OpTanh
	OpTranspose = autodiff.OpTranspose
	OpPow       = autodiff.OpPow
	OpMulScalar = autodiff.OpMulScalar
	OpAddScalar = autodiff.OpAddScalar
	OpSumAll    = autodiff.OpSumAll
	OpMeanAll   = autodiff.OpMeanAll
)

// Node is one entry on the tape.
type Node = autodiff.Node

// Graph is the gradient tape: an append-only arena of nodes.
type Graph = autodiff.Graph

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return autodiff.NewGraph()
}

// Variable is a tensor recorded on a graph.
type Variable = autodiff.Variable

// Gradients maps node IDs to their computed gradient tensors.
type Gradients = autodiff.Gradients

// Backward computes gradients of loss with respect to every grad-requiring
// node that contributed to it.
func Backward(loss *Variable) (Gradients, error) {
	return autodiff.Backward(loss)
}

// ErrGradShape reports a gradient whose shape cannot be reconciled with its
// target node's shape during accumulation.
var ErrGradShape = autodiff.ErrGradShape
