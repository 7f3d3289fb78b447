package autodiff_test

import (
	"testing"

	"github.com/gradix-ml/gradix/internal/autodiff"
	"github.com/gradix-ml/gradix/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scalarExpr builds a scalar expression from a scalar input variable.
type scalarExpr func(x *autodiff.Variable) (*autodiff.Variable, error)

// evalAt runs expr on a fresh graph and returns the forward value.
func evalAt(t *testing.T, expr scalarExpr, at float64) float64 {
	t.Helper()
	g := autodiff.NewGraph()
	x := g.Parameter(tensor.Scalar(at))
	y, err := expr(x)
	require.NoError(t, err)
	v, err := y.Item()
	require.NoError(t, err)
	return v
}

// checkGradient compares the autodiff gradient of expr at a point against a
// central finite difference.
func checkGradient(t *testing.T, expr scalarExpr, at float64) {
	t.Helper()
	const eps = 1e-6

	numerical := (evalAt(t, expr, at+eps) - evalAt(t, expr, at-eps)) / (2 * eps)

	g := autodiff.NewGraph()
	x := g.Parameter(tensor.Scalar(at))
	y, err := expr(x)
	require.NoError(t, err)

	grads, err := autodiff.Backward(y)
	require.NoError(t, err)
	dx, ok := grads.Of(x)
	require.True(t, ok)
	analytic, err := dx.Item()
	require.NoError(t, err)

	assert.InDelta(t, numerical, analytic, 1e-4,
		"analytic %g vs numerical %g at x=%g", analytic, numerical, at)
}

func TestGradientCheck_Unary(t *testing.T) {
	tests := []struct {
		name string
		expr scalarExpr
		at   float64
	}{
		{"exp", func(x *autodiff.Variable) (*autodiff.Variable, error) { return x.Exp(), nil }, 0.7},
		{"ln", func(x *autodiff.Variable) (*autodiff.Variable, error) { return x.Ln(), nil }, 2.5},
		{"tanh", func(x *autodiff.Variable) (*autodiff.Variable, error) { return x.Tanh(), nil }, 0.3},
		{"sigmoid", func(x *autodiff.Variable) (*autodiff.Variable, error) { return x.Sigmoid(), nil }, -0.8},
		{"relu positive", func(x *autodiff.Variable) (*autodiff.Variable, error) { return x.Relu(), nil }, 1.2},
		{"relu negative", func(x *autodiff.Variable) (*autodiff.Variable, error) { return x.Relu(), nil }, -1.2},
		{"neg", func(x *autodiff.Variable) (*autodiff.Variable, error) { return x.Neg(), nil }, 0.4},
		{"pow3", func(x *autodiff.Variable) (*autodiff.Variable, error) { return x.Pow(3), nil }, 1.5},
		{"pow-1", func(x *autodiff.Variable) (*autodiff.Variable, error) { return x.Pow(-1), nil }, 2.0},
		{"mul_scalar", func(x *autodiff.Variable) (*autodiff.Variable, error) { return x.MulScalar(4.5), nil }, 0.9},
		{"add_scalar", func(x *autodiff.Variable) (*autodiff.Variable, error) { return x.AddScalar(-2), nil }, 0.9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkGradient(t, tt.expr, tt.at)
		})
	}
}

func TestGradientCheck_Composite(t *testing.T) {
	// f(x) = tanh(x²) · eˣ: exercises product and chain rules together.
	expr := func(x *autodiff.Variable) (*autodiff.Variable, error) {
		sq, err := x.Mul(x)
		if err != nil {
			return nil, err
		}
		return sq.Tanh().Mul(x.Exp())
	}
	checkGradient(t, expr, 0.6)
}

func TestGradientCheck_DivChain(t *testing.T) {
	// f(x) = (x + 1) / (x² + 2)
	expr := func(x *autodiff.Variable) (*autodiff.Variable, error) {
		num := x.AddScalar(1)
		den, err := x.Mul(x)
		if err != nil {
			return nil, err
		}
		return num.Div(den.AddScalar(2))
	}
	checkGradient(t, expr, 1.3)
}

func TestGradientCheck_LnExpIdentity(t *testing.T) {
	// f(x) = ln(eˣ) = x, so f'(x) = 1 everywhere.
	expr := func(x *autodiff.Variable) (*autodiff.Variable, error) {
		return x.Exp().Ln(), nil
	}
	checkGradient(t, expr, -0.5)
}

func TestGradientCheck_MatMulElements(t *testing.T) {
	// Perturb a single matrix element and compare against the autodiff
	// gradient of loss = sum(A @ B).
	const eps = 1e-6
	aVals := []float64{1, 2, 3, 4}
	bVals := []float64{5, 6, 7, 8}

	lossAt := func(a, b []float64) float64 {
		g := autodiff.NewGraph()
		at, err := tensor.New(append([]float64(nil), a...), tensor.Shape{2, 2})
		require.NoError(t, err)
		bt, err := tensor.New(append([]float64(nil), b...), tensor.Shape{2, 2})
		require.NoError(t, err)
		c, err := g.Parameter(at).MatMul(g.Parameter(bt))
		require.NoError(t, err)
		v, err := c.Sum().Item()
		require.NoError(t, err)
		return v
	}

	g := autodiff.NewGraph()
	at, _ := tensor.New(append([]float64(nil), aVals...), tensor.Shape{2, 2})
	bt, _ := tensor.New(append([]float64(nil), bVals...), tensor.Shape{2, 2})
	a := g.Parameter(at)
	b := g.Parameter(bt)
	c, err := a.MatMul(b)
	require.NoError(t, err)

	grads, err := autodiff.Backward(c.Sum())
	require.NoError(t, err)
	da, _ := grads.Of(a)
	db, _ := grads.Of(b)

	for i := range aVals {
		plus := append([]float64(nil), aVals...)
		minus := append([]float64(nil), aVals...)
		plus[i] += eps
		minus[i] -= eps
		numerical := (lossAt(plus, bVals) - lossAt(minus, bVals)) / (2 * eps)
		assert.InDelta(t, numerical, da.Data()[i], 1e-4, "dA[%d]", i)
	}
	for i := range bVals {
		plus := append([]float64(nil), bVals...)
		minus := append([]float64(nil), bVals...)
		plus[i] += eps
		minus[i] -= eps
		numerical := (lossAt(aVals, plus) - lossAt(aVals, minus)) / (2 * eps)
		assert.InDelta(t, numerical, db.Data()[i], 1e-4, "dB[%d]", i)
	}
}
