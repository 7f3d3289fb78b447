package tensor

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// binaryOp applies fn element-wise over a and b with NumPy-style
// broadcasting. The fast path handles equal shapes with a flat loop; the
// broadcast path walks the output with stride-0 views of the operands.
func binaryOp(a, b *Tensor, fn func(x, y float64) float64) (*Tensor, error) {
	if a.shape.Equal(b.shape) {
		data := make([]float64, len(a.data))
		for i := range data {
			data[i] = fn(a.data[i], b.data[i])
		}
		return &Tensor{data: data, shape: a.shape.Clone()}, nil
	}

	outShape, _, err := BroadcastShapes(a.shape, b.shape)
	if err != nil {
		return nil, err
	}

	out := Zeros(outShape)
	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(a.shape, outShape)
	bStrides := broadcastStrides(b.shape, outShape)

	for i := range out.data {
		av := a.data[flatIndex(i, outStrides, aStrides)]
		bv := b.data[flatIndex(i, outStrides, bStrides)]
		out.data[i] = fn(av, bv)
	}
	return out, nil
}

// Add computes element-wise a + b with broadcasting.
func (t *Tensor) Add(other *Tensor) (*Tensor, error) {
	if t.shape.Equal(other.shape) {
		data := make([]float64, len(t.data))
		floats.AddTo(data, t.data, other.data)
		return &Tensor{data: data, shape: t.shape.Clone()}, nil
	}
	return binaryOp(t, other, func(x, y float64) float64 { return x + y })
}

// Sub computes element-wise a - b with broadcasting.
func (t *Tensor) Sub(other *Tensor) (*Tensor, error) {
	if t.shape.Equal(other.shape) {
		data := make([]float64, len(t.data))
		floats.SubTo(data, t.data, other.data)
		return &Tensor{data: data, shape: t.shape.Clone()}, nil
	}
	return binaryOp(t, other, func(x, y float64) float64 { return x - y })
}

// Mul computes element-wise a * b with broadcasting.
func (t *Tensor) Mul(other *Tensor) (*Tensor, error) {
	if t.shape.Equal(other.shape) {
		data := make([]float64, len(t.data))
		floats.MulTo(data, t.data, other.data)
		return &Tensor{data: data, shape: t.shape.Clone()}, nil
	}
	return binaryOp(t, other, func(x, y float64) float64 { return x * y })
}

// Div computes element-wise a / b with broadcasting.
func (t *Tensor) Div(other *Tensor) (*Tensor, error) {
	if t.shape.Equal(other.shape) {
		data := make([]float64, len(t.data))
		floats.DivTo(data, t.data, other.data)
		return &Tensor{data: data, shape: t.shape.Clone()}, nil
	}
	return binaryOp(t, other, func(x, y float64) float64 { return x / y })
}

// Apply returns a new tensor with fn applied to every element.
func (t *Tensor) Apply(fn func(float64) float64) *Tensor {
	data := make([]float64, len(t.data))
	for i, v := range t.data {
		data[i] = fn(v)
	}
	return &Tensor{data: data, shape: t.shape.Clone()}
}

// AddScalar computes element-wise x + s.
func (t *Tensor) AddScalar(s float64) *Tensor {
	return t.Apply(func(x float64) float64 { return x + s })
}

// SubScalar computes element-wise x - s.
func (t *Tensor) SubScalar(s float64) *Tensor {
	return t.Apply(func(x float64) float64 { return x - s })
}

// MulScalar computes element-wise x * s.
func (t *Tensor) MulScalar(s float64) *Tensor {
	out := t.Clone()
	floats.Scale(s, out.data)
	return out
}

// DivScalar computes element-wise x / s.
func (t *Tensor) DivScalar(s float64) *Tensor {
	return t.Apply(func(x float64) float64 { return x / s })
}

// Neg computes element-wise -x.
func (t *Tensor) Neg() *Tensor {
	return t.MulScalar(-1.0)
}

// Pow computes element-wise x^n for a scalar exponent.
func (t *Tensor) Pow(n float64) *Tensor {
	return t.Apply(func(x float64) float64 { return math.Pow(x, n) })
}

// Exp computes element-wise e^x.
func (t *Tensor) Exp() *Tensor {
	return t.Apply(math.Exp)
}

// Ln computes element-wise natural logarithm.
func (t *Tensor) Ln() *Tensor {
	return t.Apply(math.Log)
}

// Sqrt computes element-wise square root.
func (t *Tensor) Sqrt() *Tensor {
	return t.Apply(math.Sqrt)
}

// Relu computes element-wise max(x, 0).
func (t *Tensor) Relu() *Tensor {
	return t.Apply(func(x float64) float64 {
		if x > 0 {
			return x
		}
		return 0
	})
}

// Sigmoid computes element-wise 1 / (1 + e^-x).
func (t *Tensor) Sigmoid() *Tensor {
	return t.Apply(func(x float64) float64 { return 1.0 / (1.0 + math.Exp(-x)) })
}

// Tanh computes element-wise hyperbolic tangent.
func (t *Tensor) Tanh() *Tensor {
	return t.Apply(math.Tanh)
}
