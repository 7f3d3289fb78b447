// Copyright 2025 Gradix ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/gradix-ml/gradix/internal/tensor"
)

// Shape describes the dimensions of a tensor, outermost first.
type Shape = tensor.Shape

// Tensor is a dense, row-major N-dimensional array of float64 values.
type Tensor = tensor.Tensor

// New creates a tensor from data and shape. The data slice is used directly
// (not copied); callers must not alias it afterwards.
func New(data []float64, shape Shape) (*Tensor, error) {
	return tensor.New(data, shape)
}

// FromSlice creates a 1-D tensor holding a copy of the given values.
func FromSlice(values []float64) *Tensor {
	return tensor.FromSlice(values)
}

// Zeros creates a tensor of the given shape filled with 0.
func Zeros(shape Shape) *Tensor {
	return tensor.Zeros(shape)
}

// Ones creates a tensor of the given shape filled with 1.
func Ones(shape Shape) *Tensor {
	return tensor.Ones(shape)
}

// Full creates a tensor of the given shape filled with value.
func Full(shape Shape, value float64) *Tensor {
	return tensor.Full(shape, value)
}

// Scalar creates a 1-element tensor holding value.
func Scalar(value float64) *Tensor {
	return tensor.Scalar(value)
}

// Eye creates an n×n identity matrix.
func Eye(n int) *Tensor {
	return tensor.Eye(n)
}

// Rand creates a tensor with values drawn uniformly from [0, 1).
// The seed makes initialization reproducible.
func Rand(shape Shape, seed int64) *Tensor {
	return tensor.Rand(shape, seed)
}

// Randn creates a tensor with values drawn from the standard normal
// distribution.
func Randn(shape Shape, seed int64) *Tensor {
	return tensor.Randn(shape, seed)
}

// BroadcastShapes computes the broadcast result shape for a and b following
// NumPy rules. The boolean reports whether any broadcasting is required.
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	return tensor.BroadcastShapes(a, b)
}
