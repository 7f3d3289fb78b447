// Copyright 2025 Gradix ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network building blocks for Gradix.
//
// A Module transforms a recorded Variable and exposes its trainable
// Parameters. Layers compose with Sequential:
//
//	model := nn.NewSequential(
//	    nn.NewLinear(2, 4, 1),
//	    nn.NewTanh(),
//	    nn.NewLinear(4, 1, 2),
//	    nn.NewSigmoid(),
//	)
//
//	g := autodiff.NewGraph()
//	out, err := model.Forward(g.Input(x))
//
// Parameters hold their tensors across training steps; Forward binds them
// to whichever graph the input was recorded on, so the tape can be Reset
// every step without losing weights.
package nn
