// Package optim implements optimization algorithms for training models
// built on the autodiff engine.
//
// This package provides:
//   - Optimizer interface: base interface for all optimizers
//   - SGD: stochastic gradient descent with momentum
//   - Adam: adaptive moment estimation
//   - AdaGrad: accumulated squared-gradient scaling
//   - RMSProp: running-average squared-gradient scaling
//   - ClipGradNorm: global-norm gradient clipping
//
// Optimizers hold nn.Parameters and update their tensors in place after
// Backward returns. Reading gradients and writing parameters is a strictly
// ordered, non-concurrent step; the gradient table is never mutated.
//
// Example usage:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.1})
//
//	for epoch := 0; epoch < epochs; epoch++ {
//	    graph.Reset()
//	    out, _ := model.Forward(graph.Input(x))
//	    loss, _ := nn.MSELoss(out, graph.Input(y))
//	    grads, _ := autodiff.Backward(loss)
//	    optimizer.Step(grads)
//	}
package optim

import (
	"math"

	"github.com/gradix-ml/gradix/internal/autodiff"
	"github.com/gradix-ml/gradix/internal/nn"
	"github.com/gradix-ml/gradix/internal/tensor"
	"gonum.org/v1/gonum/floats"
)

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies one gradient update to every parameter that received a
	// gradient in the table. Parameters whose current binding has no entry
	// (off the loss path) are left untouched.
	Step(grads autodiff.Gradients) error
}

// paramGrad returns the gradient accumulated for p's current graph binding,
// or nil if the parameter was not bound or received no gradient.
func paramGrad(p *nn.Parameter, grads autodiff.Gradients) *tensor.Tensor {
	v := p.Variable()
	if v == nil {
		return nil
	}
	grad, ok := grads.Of(v)
	if !ok {
		return nil
	}
	return grad
}

// ClipGradNorm scales the parameters' gradients in place so that their
// global L2 norm does not exceed maxNorm. Returns the pre-clip norm.
//
// Only the gradients of params are touched; intermediate-node entries in the
// table do not contribute to the norm. A gradient tensor shared by several
// parameters is counted and scaled once.
func ClipGradNorm(params []*nn.Parameter, grads autodiff.Gradients, maxNorm float64) float64 {
	var clipped []*tensor.Tensor
	seen := make(map[*tensor.Tensor]bool, len(params))

	sumSq := 0.0
	for _, p := range params {
		g := paramGrad(p, grads)
		if g == nil || seen[g] {
			continue
		}
		seen[g] = true
		clipped = append(clipped, g)

		n := floats.Norm(g.Data(), 2)
		sumSq += n * n
	}
	total := math.Sqrt(sumSq)

	if total > maxNorm && total > 0 {
		scale := maxNorm / total
		for _, g := range clipped {
			floats.Scale(scale, g.Data())
		}
	}
	return total
}
