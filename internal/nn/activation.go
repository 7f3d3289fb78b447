package nn

import "github.com/gradix-ml/gradix/internal/autodiff"

// ReLU applies max(x, 0) element-wise.
type ReLU struct{}

// NewReLU creates a ReLU activation module.
func NewReLU() *ReLU { return &ReLU{} }

// Forward applies the activation.
func (*ReLU) Forward(input *autodiff.Variable) (*autodiff.Variable, error) {
	return input.Relu(), nil
}

// Parameters returns nil; activations have no trainable state.
func (*ReLU) Parameters() []*Parameter { return nil }

// Sigmoid applies 1/(1+e^-x) element-wise.
type Sigmoid struct{}

// NewSigmoid creates a sigmoid activation module.
func NewSigmoid() *Sigmoid { return &Sigmoid{} }

// Forward applies the activation.
func (*Sigmoid) Forward(input *autodiff.Variable) (*autodiff.Variable, error) {
	return input.Sigmoid(), nil
}

// Parameters returns nil; activations have no trainable state.
func (*Sigmoid) Parameters() []*Parameter { return nil }

// Tanh applies the hyperbolic tangent element-wise.
type Tanh struct{}

// NewTanh creates a tanh activation module.
func NewTanh() *Tanh { return &Tanh{} }

// Forward applies the activation.
func (*Tanh) Forward(input *autodiff.Variable) (*autodiff.Variable, error) {
	return input.Tanh(), nil
}

// Parameters returns nil; activations have no trainable state.
func (*Tanh) Parameters() []*Parameter { return nil }
