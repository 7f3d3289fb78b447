// Package tensor provides the dense float64 N-dimensional array that the
// gradix autodiff engine computes with.
//
// Tensors are immutable from the engine's point of view: every operation
// allocates a fresh result. Storage is row-major and contiguous; broadcasting
// is performed with stride-0 views, never by materializing the expanded
// operand.
package tensor

import (
	"fmt"
	"math/rand"
	"strings"
)

// Tensor is a dense, row-major N-dimensional array of float64 values.
type Tensor struct {
	data  []float64
	shape Shape
}

// New creates a tensor from data and shape. The data slice is used directly
// (not copied); callers must not alias it afterwards.
func New(data []float64, shape Shape) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if len(data) != shape.NumElements() {
		return nil, fmt.Errorf("%w: %d values for shape %v (need %d)",
			ErrElementCount, len(data), shape, shape.NumElements())
	}
	return &Tensor{data: data, shape: shape.Clone()}, nil
}

// FromSlice creates a 1-D tensor holding a copy of the given values.
func FromSlice(values []float64) *Tensor {
	data := make([]float64, len(values))
	copy(data, values)
	return &Tensor{data: data, shape: Shape{len(values)}}
}

// Zeros creates a tensor of the given shape filled with 0.
func Zeros(shape Shape) *Tensor {
	return &Tensor{data: make([]float64, shape.NumElements()), shape: shape.Clone()}
}

// Ones creates a tensor of the given shape filled with 1.
func Ones(shape Shape) *Tensor {
	return Full(shape, 1.0)
}

// Full creates a tensor of the given shape filled with value.
func Full(shape Shape, value float64) *Tensor {
	data := make([]float64, shape.NumElements())
	for i := range data {
		data[i] = value
	}
	return &Tensor{data: data, shape: shape.Clone()}
}

// Scalar creates a 1-element tensor holding value.
func Scalar(value float64) *Tensor {
	return &Tensor{data: []float64{value}, shape: Shape{1}}
}

// Eye creates an n×n identity matrix.
func Eye(n int) *Tensor {
	t := Zeros(Shape{n, n})
	for i := 0; i < n; i++ {
		t.data[i*n+i] = 1.0
	}
	return t
}

// Rand creates a tensor with values drawn uniformly from [0, 1).
// The seed makes initialization reproducible.
func Rand(shape Shape, seed int64) *Tensor {
	//nolint:gosec // Using math/rand for weight initialization (not security-critical)
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, shape.NumElements())
	for i := range data {
		data[i] = rng.Float64()
	}
	return &Tensor{data: data, shape: shape.Clone()}
}

// Randn creates a tensor with values drawn from the standard normal
// distribution.
func Randn(shape Shape, seed int64) *Tensor {
	//nolint:gosec // Using math/rand for weight initialization (not security-critical)
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, shape.NumElements())
	for i := range data {
		data[i] = rng.NormFloat64()
	}
	return &Tensor{data: data, shape: shape.Clone()}
}

// Shape returns the tensor's shape. Callers must not modify it.
func (t *Tensor) Shape() Shape {
	return t.shape
}

// NumDims returns the tensor's rank.
func (t *Tensor) NumDims() int {
	return len(t.shape)
}

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int {
	return len(t.data)
}

// Data returns the underlying storage. Callers must not modify it unless they
// exclusively own the tensor (optimizers updating parameters in place do).
func (t *Tensor) Data() []float64 {
	return t.data
}

// IsScalar reports whether the tensor holds exactly one element.
func (t *Tensor) IsScalar() bool {
	return t.shape.IsScalar()
}

// Item returns the single value of a 1-element tensor.
func (t *Tensor) Item() (float64, error) {
	if len(t.data) != 1 {
		return 0, fmt.Errorf("%w: shape %v", ErrNotScalar, t.shape)
	}
	return t.data[0], nil
}

// At returns the value at the given multi-dimensional index.
func (t *Tensor) At(indices ...int) (float64, error) {
	if len(indices) != len(t.shape) {
		return 0, fmt.Errorf("%w: %d indices for rank-%d tensor", ErrIndexBounds, len(indices), len(t.shape))
	}
	strides := t.shape.ComputeStrides()
	flat := 0
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			return 0, fmt.Errorf("%w: index %d for axis %d with size %d", ErrIndexBounds, idx, i, t.shape[i])
		}
		flat += idx * strides[i]
	}
	return t.data[flat], nil
}

// Clone returns a deep copy of the tensor.
func (t *Tensor) Clone() *Tensor {
	data := make([]float64, len(t.data))
	copy(data, t.data)
	return &Tensor{data: data, shape: t.shape.Clone()}
}

// Reshape returns a tensor with the same data and a new shape.
// Fails if the element count does not match.
func (t *Tensor) Reshape(shape Shape) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(t.data) {
		return nil, fmt.Errorf("%w: cannot reshape %v into %v", ErrElementCount, t.shape, shape)
	}
	data := make([]float64, len(t.data))
	copy(data, t.data)
	return &Tensor{data: data, shape: shape.Clone()}, nil
}

// Unsqueeze inserts a size-1 axis at the given position.
func (t *Tensor) Unsqueeze(axis int) (*Tensor, error) {
	if axis < 0 || axis > len(t.shape) {
		return nil, fmt.Errorf("%w: %d for rank-%d tensor", ErrInvalidAxis, axis, len(t.shape))
	}
	shape := make(Shape, 0, len(t.shape)+1)
	shape = append(shape, t.shape[:axis]...)
	shape = append(shape, 1)
	shape = append(shape, t.shape[axis:]...)
	return t.Reshape(shape)
}

// Squeeze removes all size-1 axes. A scalar keeps shape [1].
func (t *Tensor) Squeeze() *Tensor {
	shape := make(Shape, 0, len(t.shape))
	for _, dim := range t.shape {
		if dim != 1 {
			shape = append(shape, dim)
		}
	}
	if len(shape) == 0 {
		shape = Shape{1}
	}
	out, _ := t.Reshape(shape) // same element count, cannot fail
	return out
}

// String returns a compact human-readable representation.
func (t *Tensor) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Tensor%v", t.shape)
	if len(t.data) <= 8 {
		fmt.Fprintf(&sb, "%v", t.data)
	} else {
		fmt.Fprintf(&sb, "[%g %g %g ... %g]", t.data[0], t.data[1], t.data[2], t.data[len(t.data)-1])
	}
	return sb.String()
}
