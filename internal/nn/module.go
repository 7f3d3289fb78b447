// Package nn implements neural network building blocks on top of the
// autodiff engine.
//
// This package provides:
//   - Module interface: base interface for all NN components
//   - Parameter: trainable tensors rebound to each fresh graph
//   - Linear: fully connected layer
//   - Activations: ReLU, Sigmoid, Tanh
//   - Loss functions: MSE, BCE
//   - Sequential: container for stacking layers
//
// Modules hold their parameters as plain tensors and register them on
// whatever graph the input variable carries, so the tape can be reset (or
// replaced) between training steps without touching the model.
package nn

import "github.com/gradix-ml/gradix/internal/autodiff"

// Module is the base interface for all neural network components.
//
// Modules can be composed to build deeper architectures:
//
//	model := nn.NewSequential(
//	    nn.NewLinear(2, 4, 1),
//	    nn.NewTanh(),
//	    nn.NewLinear(4, 1, 2),
//	)
type Module interface {
	// Forward computes the output of the module for the given input.
	// The returned variable is recorded on the input's graph.
	Forward(input *autodiff.Variable) (*autodiff.Variable, error)

	// Parameters returns all trainable parameters of this module,
	// including nested module parameters. Modules without trainable state
	// (activations) return nil.
	Parameters() []*Parameter
}
