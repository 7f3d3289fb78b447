package optim

import (
	"math"

	"github.com/gradix-ml/gradix/internal/autodiff"
	"github.com/gradix-ml/gradix/internal/nn"
)

// AdamConfig configures the Adam optimizer. Zero fields take the standard
// defaults (lr=0.001, β1=0.9, β2=0.999, ε=1e-8).
type AdamConfig struct {
	LR    float64
	Beta1 float64
	Beta2 float64
	Eps   float64
}

// Adam implements the Adam optimizer (Kingma & Ba, 2014).
//
// m = β1*m + (1-β1)*grad
// v = β2*v + (1-β2)*grad²
// p -= lr * m̂ / (sqrt(v̂) + ε)   with bias-corrected m̂, v̂.
type Adam struct {
	cfg    AdamConfig
	params []*nn.Parameter
	m      [][]float64 // first moment
	v      [][]float64 // second moment
	t      int
}

// NewAdam creates an Adam optimizer over the given parameters.
func NewAdam(params []*nn.Parameter, cfg AdamConfig) *Adam {
	if cfg.LR == 0 {
		cfg.LR = 0.001
	}
	if cfg.Beta1 == 0 {
		cfg.Beta1 = 0.9
	}
	if cfg.Beta2 == 0 {
		cfg.Beta2 = 0.999
	}
	if cfg.Eps == 0 {
		cfg.Eps = 1e-8
	}

	m := make([][]float64, len(params))
	v := make([][]float64, len(params))
	for i, p := range params {
		m[i] = make([]float64, p.Data().NumElements())
		v[i] = make([]float64, p.Data().NumElements())
	}
	return &Adam{cfg: cfg, params: params, m: m, v: v}
}

// LR returns the current learning rate.
func (a *Adam) LR() float64 {
	return a.cfg.LR
}

// Step applies one Adam update to every parameter with a gradient.
func (a *Adam) Step(grads autodiff.Gradients) error {
	a.t++
	bc1 := 1.0 - math.Pow(a.cfg.Beta1, float64(a.t))
	bc2 := 1.0 - math.Pow(a.cfg.Beta2, float64(a.t))

	for i, p := range a.params {
		grad := paramGrad(p, grads)
		if grad == nil {
			continue
		}

		data := p.Data().Data()
		g := grad.Data()
		m, v := a.m[i], a.v[i]
		for j := range data {
			m[j] = a.cfg.Beta1*m[j] + (1-a.cfg.Beta1)*g[j]
			v[j] = a.cfg.Beta2*v[j] + (1-a.cfg.Beta2)*g[j]*g[j]

			mHat := m[j] / bc1
			vHat := v[j] / bc2
			data[j] -= a.cfg.LR * mHat / (math.Sqrt(vHat) + a.cfg.Eps)
		}
	}
	return nil
}
