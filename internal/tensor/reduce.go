package tensor

import "fmt"

// SumAll returns the sum of all elements.
func (t *Tensor) SumAll() float64 {
	sum := 0.0
	for _, v := range t.data {
		sum += v
	}
	return sum
}

// MeanAll returns the mean of all elements.
func (t *Tensor) MeanAll() float64 {
	return t.SumAll() / float64(len(t.data))
}

// SumAxis sums tensor elements along the given axis.
//
// Negative axes index from the end (-1 = last axis). If keepDims is true the
// reduced axis is kept with size 1, otherwise it is removed (a rank-1 input
// reduces to shape [1]).
func (t *Tensor) SumAxis(axis int, keepDims bool) (*Tensor, error) {
	ndim := len(t.shape)
	if axis < 0 {
		axis = ndim + axis
	}
	if axis < 0 || axis >= ndim {
		return nil, fmt.Errorf("%w: axis %d for rank-%d tensor", ErrInvalidAxis, axis, ndim)
	}

	var outShape Shape
	if keepDims {
		outShape = t.shape.Clone()
		outShape[axis] = 1
	} else {
		outShape = make(Shape, 0, ndim-1)
		for i, dim := range t.shape {
			if i != axis {
				outShape = append(outShape, dim)
			}
		}
		if len(outShape) == 0 {
			outShape = Shape{1}
		}
	}
	out := Zeros(outShape)

	// outer iterates over axes before the reduced one, inner over axes after.
	outer, inner := 1, 1
	for i := 0; i < axis; i++ {
		outer *= t.shape[i]
	}
	for i := axis + 1; i < ndim; i++ {
		inner *= t.shape[i]
	}
	axisLen := t.shape[axis]

	for o := 0; o < outer; o++ {
		for in := 0; in < inner; in++ {
			sum := 0.0
			base := o * axisLen * inner
			for a := 0; a < axisLen; a++ {
				sum += t.data[base+a*inner+in]
			}
			out.data[o*inner+in] = sum
		}
	}
	return out, nil
}

// MeanAxis averages tensor elements along the given axis.
func (t *Tensor) MeanAxis(axis int, keepDims bool) (*Tensor, error) {
	sum, err := t.SumAxis(axis, keepDims)
	if err != nil {
		return nil, err
	}
	norm := axis
	if norm < 0 {
		norm = len(t.shape) + norm
	}
	return sum.DivScalar(float64(t.shape[norm])), nil
}
