package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// MatMul computes the matrix product of t and other.
//
// Both operands must have rank >= 2. The last two axes are contracted
// ([..., m, k] @ [..., k, n] → [..., m, n]); leading batch axes are broadcast
// with the usual rules. The 2-D kernel is gonum's mat.Dense multiply.
func (t *Tensor) MatMul(other *Tensor) (*Tensor, error) {
	if len(t.shape) < 2 || len(other.shape) < 2 {
		return nil, fmt.Errorf("%w: matmul needs rank >= 2, got %v and %v", ErrRank, t.shape, other.shape)
	}

	m, ka := t.shape[len(t.shape)-2], t.shape[len(t.shape)-1]
	kb, n := other.shape[len(other.shape)-2], other.shape[len(other.shape)-1]
	if ka != kb {
		return nil, fmt.Errorf("%w: %v @ %v", ErrInnerDim, t.shape, other.shape)
	}

	aBatch := t.shape[:len(t.shape)-2]
	bBatch := other.shape[:len(other.shape)-2]
	outBatch, _, err := BroadcastShapes(aBatch, bBatch)
	if err != nil {
		return nil, fmt.Errorf("%w: matmul batch dims of %v and %v", ErrBroadcast, t.shape, other.shape)
	}

	outShape := append(outBatch.Clone(), m, n)
	out := Zeros(outShape)

	batchCount := outBatch.NumElements()
	outStrides := outBatch.ComputeStrides()
	aStrides := broadcastStrides(aBatch, outBatch)
	bStrides := broadcastStrides(bBatch, outBatch)

	aMat, bMat, cMat := m*ka, kb*n, m*n
	for i := 0; i < batchCount; i++ {
		aOff := flatIndex(i, outStrides, aStrides) * aMat
		bOff := flatIndex(i, outStrides, bStrides) * bMat

		av := mat.NewDense(m, ka, t.data[aOff:aOff+aMat])
		bv := mat.NewDense(kb, n, other.data[bOff:bOff+bMat])
		cv := mat.NewDense(m, n, out.data[i*cMat:(i+1)*cMat])
		cv.Mul(av, bv)
	}

	return out, nil
}

// Transpose swaps the last two axes. Fails for tensors of rank < 2.
func (t *Tensor) Transpose() (*Tensor, error) {
	nd := len(t.shape)
	if nd < 2 {
		return nil, fmt.Errorf("%w: transpose needs rank >= 2, got %v", ErrRank, t.shape)
	}

	rows, cols := t.shape[nd-2], t.shape[nd-1]
	outShape := t.shape.Clone()
	outShape[nd-2], outShape[nd-1] = cols, rows
	out := Zeros(outShape)

	matSize := rows * cols
	for base := 0; base < len(t.data); base += matSize {
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				out.data[base+j*rows+i] = t.data[base+i*cols+j]
			}
		}
	}
	return out, nil
}
