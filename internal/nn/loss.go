package nn

import (
	"fmt"

	"github.com/gradix-ml/gradix/internal/autodiff"
)

// MSELoss computes mean((pred - target)²), differentiable end to end.
func MSELoss(pred, target *autodiff.Variable) (*autodiff.Variable, error) {
	diff, err := pred.Sub(target)
	if err != nil {
		return nil, fmt.Errorf("mse: %w", err)
	}
	sq, err := diff.Mul(diff)
	if err != nil {
		return nil, fmt.Errorf("mse: %w", err)
	}
	return sq.Mean(), nil
}

// BCELoss computes binary cross-entropy -mean(t·ln(p) + (1-t)·ln(1-p)).
//
// pred must hold probabilities in (0, 1); both logs are stabilized with a
// small epsilon so saturated predictions do not produce infinities.
func BCELoss(pred, target *autodiff.Variable) (*autodiff.Variable, error) {
	const eps = 1e-7

	logPred := pred.AddScalar(eps).Ln()
	term1, err := target.Mul(logPred)
	if err != nil {
		return nil, fmt.Errorf("bce: %w", err)
	}

	oneMinusTarget := target.Neg().AddScalar(1.0)
	logOneMinusPred := pred.Neg().AddScalar(1.0 + eps).Ln()
	term2, err := oneMinusTarget.Mul(logOneMinusPred)
	if err != nil {
		return nil, fmt.Errorf("bce: %w", err)
	}

	sum, err := term1.Add(term2)
	if err != nil {
		return nil, fmt.Errorf("bce: %w", err)
	}
	return sum.Neg().Mean(), nil
}
