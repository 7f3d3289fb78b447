package nn

import (
	"fmt"

	"github.com/gradix-ml/gradix/internal/autodiff"
)

// Sequential chains modules, feeding each module's output to the next.
type Sequential struct {
	modules []Module
}

// NewSequential creates a sequential container from the given modules.
func NewSequential(modules ...Module) *Sequential {
	return &Sequential{modules: modules}
}

// Forward runs the input through every module in order.
func (s *Sequential) Forward(input *autodiff.Variable) (*autodiff.Variable, error) {
	out := input
	var err error
	for i, m := range s.modules {
		if out, err = m.Forward(out); err != nil {
			return nil, fmt.Errorf("sequential module %d: %w", i, err)
		}
	}
	return out, nil
}

// Parameters returns the parameters of all contained modules.
func (s *Sequential) Parameters() []*Parameter {
	var params []*Parameter
	for _, m := range s.modules {
		params = append(params, m.Parameters()...)
	}
	return params
}
