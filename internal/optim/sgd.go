package optim

import (
	"github.com/gradix-ml/gradix/internal/autodiff"
	"github.com/gradix-ml/gradix/internal/nn"
)

// SGDConfig configures the SGD optimizer.
type SGDConfig struct {
	LR       float64 // learning rate (default 0.01)
	Momentum float64 // momentum coefficient, 0 disables
}

// SGD implements stochastic gradient descent with optional momentum.
//
// Update rule without momentum: p -= lr * grad
// With momentum: v = momentum*v - lr*grad; p += v
type SGD struct {
	cfg        SGDConfig
	params     []*nn.Parameter
	velocities [][]float64
}

// NewSGD creates an SGD optimizer over the given parameters.
func NewSGD(params []*nn.Parameter, cfg SGDConfig) *SGD {
	if cfg.LR == 0 {
		cfg.LR = 0.01
	}
	velocities := make([][]float64, len(params))
	for i, p := range params {
		velocities[i] = make([]float64, p.Data().NumElements())
	}
	return &SGD{cfg: cfg, params: params, velocities: velocities}
}

// LR returns the current learning rate.
func (s *SGD) LR() float64 {
	return s.cfg.LR
}

// Step applies one SGD update to every parameter with a gradient.
func (s *SGD) Step(grads autodiff.Gradients) error {
	for i, p := range s.params {
		grad := paramGrad(p, grads)
		if grad == nil {
			continue
		}

		data := p.Data().Data()
		g := grad.Data()
		if s.cfg.Momentum == 0 {
			for j := range data {
				data[j] -= s.cfg.LR * g[j]
			}
			continue
		}

		v := s.velocities[i]
		for j := range data {
			v[j] = s.cfg.Momentum*v[j] - s.cfg.LR*g[j]
			data[j] += v[j]
		}
	}
	return nil
}
