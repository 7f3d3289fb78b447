package nn

import (
	"github.com/gradix-ml/gradix/internal/autodiff"
	"github.com/gradix-ml/gradix/internal/tensor"
)

// Parameter is a trainable tensor together with its binding on the current
// graph. The tensor is owned by the parameter and updated in place by
// optimizers; the binding is re-created lazily whenever the parameter is
// used with a new graph or a new generation of the same graph, so models
// survive the reset-per-step tape lifecycle.
type Parameter struct {
	name string
	data *tensor.Tensor
	v    *autodiff.Variable
}

// NewParameter creates a named trainable parameter holding data.
func NewParameter(name string, data *tensor.Tensor) *Parameter {
	return &Parameter{name: name, data: data}
}

// Name returns the parameter's name (used for checkpoints).
func (p *Parameter) Name() string {
	return p.name
}

// Data returns the parameter's tensor. Optimizers mutate it in place.
func (p *Parameter) Data() *tensor.Tensor {
	return p.data
}

// SetData replaces the parameter's tensor (checkpoint loading) and drops any
// existing graph binding.
func (p *Parameter) SetData(data *tensor.Tensor) {
	p.data = data
	p.v = nil
}

// Bind registers the parameter as a grad-requiring leaf on g, reusing the
// existing binding while it is still valid for g's current generation.
func (p *Parameter) Bind(g *autodiff.Graph) *autodiff.Variable {
	if p.v != nil && p.v.Graph() == g && p.v.Valid() {
		return p.v
	}
	p.v = g.Parameter(p.data)
	return p.v
}

// Variable returns the current graph binding, or nil if the parameter has
// not been bound since its last reset.
func (p *Parameter) Variable() *autodiff.Variable {
	if p.v != nil && !p.v.Valid() {
		return nil
	}
	return p.v
}
