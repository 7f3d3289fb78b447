package nn

import (
	"math"

	"github.com/gradix-ml/gradix/internal/tensor"
)

// Xavier returns a tensor initialized with the Glorot uniform distribution
// U(-b, b), b = sqrt(6 / (fanIn + fanOut)).
//
// This initialization keeps the variance of activations roughly constant
// across layers.
func Xavier(fanIn, fanOut int, shape tensor.Shape, seed int64) *tensor.Tensor {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
	return tensor.Rand(shape, seed).MulScalar(2 * bound).AddScalar(-bound)
}
