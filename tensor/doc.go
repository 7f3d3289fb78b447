// Copyright 2025 Gradix ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides dense float64 tensors for the Gradix ML framework.
//
// # Overview
//
// Tensors are the fundamental data structure in Gradix. This package provides:
//   - Dense row-major float64 tensors of arbitrary rank
//   - NumPy-style broadcasting for elementwise operations
//   - Batched matrix multiplication
//   - Axis and full reductions
//
// # Basic Usage
//
//	import "github.com/gradix-ml/gradix/tensor"
//
//	func main() {
//	    x := tensor.Zeros(tensor.Shape{2, 3})
//	    y := tensor.Ones(tensor.Shape{2, 3})
//
//	    z, _ := x.Add(y)
//	    yt, _ := y.Transpose()
//	    r, _ := x.MatMul(yt)
//	}
//
// # Broadcasting
//
// Elementwise operations follow NumPy broadcasting rules:
//
//	a := tensor.Zeros(tensor.Shape{3, 1}) // (3, 1)
//	b := tensor.Ones(tensor.Shape{3, 4})  // (3, 4)
//	c, _ := a.Add(b)                      // (3, 4)
//
// Shapes are compatible when, aligned from the trailing dimension, each
// pair of dimensions is equal or one of them is 1. Incompatible shapes
// fail with ErrBroadcast.
//
// # Errors
//
// Fallible operations return sentinel errors (ErrBroadcast, ErrInnerDim,
// ErrRank, ...) that callers can test with errors.Is.
package tensor
