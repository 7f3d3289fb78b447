// Copyright 2025 Gradix ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/gradix-ml/gradix/internal/autodiff"
	"github.com/gradix-ml/gradix/internal/nn"
	"github.com/gradix-ml/gradix/internal/tensor"
)

// Module is a unit of computation with trainable parameters.
type Module = nn.Module

// Linear is a fully connected layer: y = x @ W + b.
type Linear = nn.Linear

// NewLinear creates a Linear layer with Xavier-initialized weights.
func NewLinear(inFeatures, outFeatures int, seed int64) *Linear {
	return nn.NewLinear(inFeatures, outFeatures, seed)
}

// Sequential chains modules, feeding each output into the next.
type Sequential = nn.Sequential

// NewSequential creates a Sequential from the given modules.
func NewSequential(modules ...Module) *Sequential {
	return nn.NewSequential(modules...)
}

// Activation layers.
type (
	ReLU    = nn.ReLU
	Sigmoid = nn.Sigmoid
	Tanh    = nn.Tanh
)

// NewReLU creates a ReLU activation module.
func NewReLU() *ReLU { return nn.NewReLU() }

// NewSigmoid creates a Sigmoid activation module.
func NewSigmoid() *Sigmoid { return nn.NewSigmoid() }

// NewTanh creates a Tanh activation module.
func NewTanh() *Tanh { return nn.NewTanh() }

// MSELoss computes mean squared error between predictions and targets.
func MSELoss(pred, target *autodiff.Variable) (*autodiff.Variable, error) {
	return nn.MSELoss(pred, target)
}

// BCELoss computes binary cross-entropy between predictions in (0, 1) and
// 0/1 targets.
func BCELoss(pred, target *autodiff.Variable) (*autodiff.Variable, error) {
	return nn.BCELoss(pred, target)
}

// Xavier returns a tensor initialized with Xavier/Glorot uniform values.
func Xavier(fanIn, fanOut int, shape tensor.Shape, seed int64) *tensor.Tensor {
	return nn.Xavier(fanIn, fanOut, shape, seed)
}
