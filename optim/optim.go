// Copyright 2025 Gradix ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/gradix-ml/gradix/internal/autodiff"
	"github.com/gradix-ml/gradix/internal/nn"
	"github.com/gradix-ml/gradix/internal/optim"
)

// Optimizer applies one update step from computed gradients.
type Optimizer = optim.Optimizer

// SGD (stochastic gradient descent)

// SGD is the SGD optimizer with optional momentum.
type SGD = optim.SGD

// SGDConfig configures SGD.
type SGDConfig = optim.SGDConfig

// NewSGD creates an SGD optimizer over params.
func NewSGD(params []*nn.Parameter, cfg SGDConfig) *SGD {
	return optim.NewSGD(params, cfg)
}

// Adam

// Adam is the Adam optimizer with bias-corrected moment estimates.
type Adam = optim.Adam

// AdamConfig configures Adam.
type AdamConfig = optim.AdamConfig

// NewAdam creates an Adam optimizer over params.
func NewAdam(params []*nn.Parameter, cfg AdamConfig) *Adam {
	return optim.NewAdam(params, cfg)
}

// AdaGrad

// AdaGrad is the AdaGrad optimizer with accumulated squared gradients.
type AdaGrad = optim.AdaGrad

// AdaGradConfig configures AdaGrad.
type AdaGradConfig = optim.AdaGradConfig

// NewAdaGrad creates an AdaGrad optimizer over params.
func NewAdaGrad(params []*nn.Parameter, cfg AdaGradConfig) *AdaGrad {
	return optim.NewAdaGrad(params, cfg)
}

// RMSProp

// RMSProp is the RMSProp optimizer.
type RMSProp = optim.RMSProp

// RMSPropConfig configures RMSProp.
type RMSPropConfig = optim.RMSPropConfig

// NewRMSProp creates an RMSProp optimizer over params.
func NewRMSProp(params []*nn.Parameter, cfg RMSPropConfig) *RMSProp {
	return optim.NewRMSProp(params, cfg)
}

// ClipGradNorm scales the parameters' gradients so their global L2 norm does
// not exceed maxNorm, and returns the norm before clipping.
func ClipGradNorm(params []*nn.Parameter, grads autodiff.Gradients, maxNorm float64) float64 {
	return optim.ClipGradNorm(params, grads, maxNorm)
}
