package optim

import (
	"math"

	"github.com/gradix-ml/gradix/internal/autodiff"
	"github.com/gradix-ml/gradix/internal/nn"
)

// RMSPropConfig configures the RMSProp optimizer. Zero fields take the
// standard defaults (lr=0.01, α=0.99, ε=1e-8).
type RMSPropConfig struct {
	LR          float64
	Alpha       float64 // squared-gradient averaging coefficient
	Eps         float64
	WeightDecay float64
}

// RMSProp maintains a running average of squared gradients and normalizes
// each update by it, which helps with non-stationary objectives.
//
// v = α*v + (1-α)*grad²
// p -= lr * grad / (sqrt(v) + ε)
type RMSProp struct {
	cfg    RMSPropConfig
	params []*nn.Parameter
	v      [][]float64
}

// NewRMSProp creates an RMSProp optimizer over the given parameters.
func NewRMSProp(params []*nn.Parameter, cfg RMSPropConfig) *RMSProp {
	if cfg.LR == 0 {
		cfg.LR = 0.01
	}
	if cfg.Alpha == 0 {
		cfg.Alpha = 0.99
	}
	if cfg.Eps == 0 {
		cfg.Eps = 1e-8
	}

	v := make([][]float64, len(params))
	for i, p := range params {
		v[i] = make([]float64, p.Data().NumElements())
	}
	return &RMSProp{cfg: cfg, params: params, v: v}
}

// Step applies one RMSProp update to every parameter with a gradient.
func (r *RMSProp) Step(grads autodiff.Gradients) error {
	for i, p := range r.params {
		grad := paramGrad(p, grads)
		if grad == nil {
			continue
		}

		data := p.Data().Data()
		g := grad.Data()
		v := r.v[i]
		for j := range data {
			gj := g[j]
			if r.cfg.WeightDecay != 0 {
				gj += r.cfg.WeightDecay * data[j]
			}
			v[j] = r.cfg.Alpha*v[j] + (1-r.cfg.Alpha)*gj*gj
			data[j] -= r.cfg.LR * gj / (math.Sqrt(v[j]) + r.cfg.Eps)
		}
	}
	return nil
}
