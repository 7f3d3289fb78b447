// Copyright 2025 Gradix ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/gradix-ml/gradix/internal/tensor"
)

// Sentinel errors returned by tensor operations.
var (
	ErrInvalidShape  = tensor.ErrInvalidShape
	ErrShapeMismatch = tensor.ErrShapeMismatch
	ErrBroadcast     = tensor.ErrBroadcast
	ErrInvalidAxis   = tensor.ErrInvalidAxis
	ErrRank          = tensor.ErrRank
	ErrInnerDim      = tensor.ErrInnerDim
	ErrElementCount  = tensor.ErrElementCount
	ErrNotScalar     = tensor.ErrNotScalar
	ErrIndexBounds   = tensor.ErrIndexBounds
)
