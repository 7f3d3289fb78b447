package optim

import (
	"math"

	"github.com/gradix-ml/gradix/internal/autodiff"
	"github.com/gradix-ml/gradix/internal/nn"
)

// AdaGradConfig configures the AdaGrad optimizer. Zero fields take the
// standard defaults (lr=0.01, ε=1e-10).
type AdaGradConfig struct {
	LR          float64
	Eps         float64
	WeightDecay float64
}

// AdaGrad accumulates the sum of squared gradients per parameter and scales
// each update by it, giving rarely-updated parameters larger steps.
//
// G += grad²
// p -= lr * grad / (sqrt(G) + ε)
type AdaGrad struct {
	cfg    AdaGradConfig
	params []*nn.Parameter
	sumSq  [][]float64
}

// NewAdaGrad creates an AdaGrad optimizer over the given parameters.
func NewAdaGrad(params []*nn.Parameter, cfg AdaGradConfig) *AdaGrad {
	if cfg.LR == 0 {
		cfg.LR = 0.01
	}
	if cfg.Eps == 0 {
		cfg.Eps = 1e-10
	}

	sumSq := make([][]float64, len(params))
	for i, p := range params {
		sumSq[i] = make([]float64, p.Data().NumElements())
	}
	return &AdaGrad{cfg: cfg, params: params, sumSq: sumSq}
}

// Step applies one AdaGrad update to every parameter with a gradient.
func (a *AdaGrad) Step(grads autodiff.Gradients) error {
	for i, p := range a.params {
		grad := paramGrad(p, grads)
		if grad == nil {
			continue
		}

		data := p.Data().Data()
		g := grad.Data()
		sumSq := a.sumSq[i]
		for j := range data {
			gj := g[j]
			if a.cfg.WeightDecay != 0 {
				gj += a.cfg.WeightDecay * data[j]
			}
			sumSq[j] += gj * gj
			data[j] -= a.cfg.LR * gj / (math.Sqrt(sumSq[j]) + a.cfg.Eps)
		}
	}
	return nil
}
