// Copyright 2025 Gradix ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides gradient-based optimizers for Gradix.
//
// An Optimizer updates parameter tensors in place from the gradients of a
// backward pass:
//
//	opt := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.1})
//
//	for epoch := 0; epoch < epochs; epoch++ {
//	    g.Reset()
//	    out, _ := model.Forward(g.Input(x))
//	    loss, _ := nn.MSELoss(out, g.Input(y))
//	    grads, _ := autodiff.Backward(loss)
//	    opt.Step(grads)
//	}
package optim
