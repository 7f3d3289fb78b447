// Copyright 2025 Gradix ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/gradix-ml/gradix/internal/nn"
	"github.com/gradix-ml/gradix/internal/tensor"
)

// Parameter is a named trainable tensor that outlives any single graph.
type Parameter = nn.Parameter

// NewParameter creates a parameter holding data.
func NewParameter(name string, data *tensor.Tensor) *Parameter {
	return nn.NewParameter(name, data)
}
