package tensor

import "errors"

// Common errors returned by tensor operations.
//
// All shape and type violations surface as wrapped sentinel errors so callers
// can match with errors.Is; tensor operations never panic on bad input.
var (
	ErrInvalidShape  = errors.New("invalid shape")
	ErrShapeMismatch = errors.New("shape mismatch")
	ErrBroadcast     = errors.New("shapes cannot be broadcast together")
	ErrInvalidAxis   = errors.New("axis out of range")
	ErrRank          = errors.New("tensor rank too low")
	ErrInnerDim      = errors.New("matmul inner dimensions do not match")
	ErrElementCount  = errors.New("element count mismatch")
	ErrNotScalar     = errors.New("tensor does not hold exactly one element")
	ErrIndexBounds   = errors.New("index out of bounds")
)
