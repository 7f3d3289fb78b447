package nn

import (
	"fmt"

	"github.com/gradix-ml/gradix/internal/autodiff"
	"github.com/gradix-ml/gradix/internal/tensor"
)

// Linear is a fully connected layer computing y = xW + b.
//
// Input shape [batch, inFeatures], output [batch, outFeatures]. The bias is
// stored as [1, outFeatures] and broadcast over the batch axis; its gradient
// is summed back over that axis by the engine's broadcast reduction.
type Linear struct {
	weight *Parameter
	bias   *Parameter

	inFeatures  int
	outFeatures int
}

// NewLinear creates a linear layer with Xavier-uniform weight initialization
// and zero bias. The seed makes initialization reproducible.
func NewLinear(inFeatures, outFeatures int, seed int64) *Linear {
	w := Xavier(inFeatures, outFeatures, tensor.Shape{inFeatures, outFeatures}, seed)
	b := tensor.Zeros(tensor.Shape{1, outFeatures})

	return &Linear{
		weight:      NewParameter(fmt.Sprintf("linear_%dx%d.weight", inFeatures, outFeatures), w),
		bias:        NewParameter(fmt.Sprintf("linear_%dx%d.bias", inFeatures, outFeatures), b),
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
	}
}

// Forward computes input @ W + b on the input's graph.
func (l *Linear) Forward(input *autodiff.Variable) (*autodiff.Variable, error) {
	g := input.Graph()
	xw, err := input.MatMul(l.weight.Bind(g))
	if err != nil {
		return nil, fmt.Errorf("linear: %w", err)
	}
	out, err := xw.Add(l.bias.Bind(g))
	if err != nil {
		return nil, fmt.Errorf("linear: %w", err)
	}
	return out, nil
}

// Parameters returns the weight and bias.
func (l *Linear) Parameters() []*Parameter {
	return []*Parameter{l.weight, l.bias}
}
