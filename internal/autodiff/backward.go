package autodiff

import (
	"errors"
	"fmt"

	"github.com/gradix-ml/gradix/internal/tensor"
)

// ErrGradShape reports a gradient whose shape could not be reconciled with
// its operand's shape by any legal broadcast reduction. It signals a bug in
// a differentiation rule or a forward broadcast backward cannot undo, never
// a recoverable runtime state.
var ErrGradShape = errors.New("gradient shape cannot be reconciled with operand shape")

// Gradients maps node IDs to accumulated gradient tensors for one Backward
// call. The caller owns the map; typically only the parameter leaves'
// entries are read.
type Gradients map[NodeID]*tensor.Tensor

// Of looks up the gradient accumulated for a variable. The second return is
// false when no gradient flowed to it (off the loss path, or requiresGrad
// was false).
func (g Gradients) Of(v *Variable) (*tensor.Tensor, bool) {
	grad, ok := g[v.ID()]
	return grad, ok
}

// Backward computes d(loss)/d(node) for every grad-requiring node the loss
// depends on, by walking the tape in reverse creation order.
//
// The gradient table is seeded with ones at the loss node (for a scalar loss
// this is the standard d y/d y = 1). Node IDs are then visited strictly
// descending from the loss; at each visited node the local rule for its op
// tag pushes contributions to its operands, summing when a node feeds
// several consumers (multivariate chain rule). Contributions are reduced
// over broadcast axes before accumulation so a gradient always has its
// operand's shape.
//
// Backward is all-or-nothing: any tensor error while computing a local rule
// aborts the call and no partial table is returned.
func Backward(loss *Variable) (Gradients, error) {
	loss.check()
	graph := loss.graph

	grads := make(Gradients)

	lossNode := graph.Get(loss.id)
	if lossNode.Shape.IsScalar() {
		grads[loss.id] = tensor.Scalar(1.0)
	} else {
		grads[loss.id] = tensor.Ones(lossNode.Shape)
	}

	for idx := int(loss.id); idx >= 0; idx-- {
		id := NodeID(idx)
		grad, ok := grads[id]
		if !ok {
			continue // not on any path to the loss
		}

		node := graph.Get(id)
		if !node.RequiresGrad {
			// A node's flag is the OR of its operands', so nothing
			// upstream of it can require a gradient either.
			continue
		}

		if err := propagate(graph, grads, node, grad); err != nil {
			return nil, fmt.Errorf("backward through %s (node %d): %w", node.Op.Kind, id, err)
		}
	}

	return grads, nil
}

// propagate applies the local differentiation rule for node's op tag,
// pushing the operand contributions into grads. x and y denote operand
// forward values, g the incoming gradient for the node.
func propagate(graph *Graph, grads Gradients, node *Node, g *tensor.Tensor) error {
	op := node.Op

	switch op.Kind {
	case OpLeaf:
		return nil // gradient already sits in the table

	case OpAdd:
		if err := accumulate(graph, grads, op.A, g); err != nil {
			return err
		}
		return accumulate(graph, grads, op.B, g)

	case OpSub:
		if err := accumulate(graph, grads, op.A, g); err != nil {
			return err
		}
		return accumulate(graph, grads, op.B, g.Neg())

	case OpMul:
		// d/dx (x*y) = y·g, d/dy = x·g
		ga, err := g.Mul(graph.Get(op.B).Value)
		if err != nil {
			return err
		}
		if err := accumulate(graph, grads, op.A, ga); err != nil {
			return err
		}
		gb, err := g.Mul(graph.Get(op.A).Value)
		if err != nil {
			return err
		}
		return accumulate(graph, grads, op.B, gb)

	case OpDiv:
		// d/dx (x/y) = g/y, d/dy = -x·g/y²
		x, y := graph.Get(op.A).Value, graph.Get(op.B).Value
		ga, err := g.Div(y)
		if err != nil {
			return err
		}
		if err := accumulate(graph, grads, op.A, ga); err != nil {
			return err
		}
		num, err := x.Neg().Mul(g)
		if err != nil {
			return err
		}
		ySq, err := y.Mul(y)
		if err != nil {
			return err
		}
		gb, err := num.Div(ySq)
		if err != nil {
			return err
		}
		return accumulate(graph, grads, op.B, gb)

	case OpMatMul:
		// d/dX (X@Y) = g @ Yᵀ, d/dY = Xᵀ @ g
		yT, err := graph.Get(op.B).Value.Transpose()
		if err != nil {
			return err
		}
		ga, err := g.MatMul(yT)
		if err != nil {
			return err
		}
		if err := accumulate(graph, grads, op.A, ga); err != nil {
			return err
		}
		xT, err := graph.Get(op.A).Value.Transpose()
		if err != nil {
			return err
		}
		gb, err := xT.MatMul(g)
		if err != nil {
			return err
		}
		return accumulate(graph, grads, op.B, gb)

	case OpNeg:
		return accumulate(graph, grads, op.A, g.Neg())

	case OpExp:
		// d/dx e^x = e^x: reuse the forward output.
		ga, err := node.Value.Mul(g)
		if err != nil {
			return err
		}
		return accumulate(graph, grads, op.A, ga)

	case OpLn:
		ga, err := g.Div(graph.Get(op.A).Value)
		if err != nil {
			return err
		}
		return accumulate(graph, grads, op.A, ga)

	case OpRelu:
		// Hard mask at the documented x > 0 convention.
		mask := graph.Get(op.A).Value.Apply(func(x float64) float64 {
			if x > 0 {
				return 1
			}
			return 0
		})
		ga, err := mask.Mul(g)
		if err != nil {
			return err
		}
		return accumulate(graph, grads, op.A, ga)

	case OpSigmoid:
		// σ' = σ·(1-σ): reuse the forward output.
		sig := node.Value
		deriv, err := sig.Mul(sig.Apply(func(x float64) float64 { return 1 - x }))
		if err != nil {
			return err
		}
		ga, err := deriv.Mul(g)
		if err != nil {
			return err
		}
		return accumulate(graph, grads, op.A, ga)

	case OpTanh:
		// tanh' = 1 - tanh²: reuse the forward output.
		th := node.Value
		thSq, err := th.Mul(th)
		if err != nil {
			return err
		}
		ga, err := thSq.Apply(func(x float64) float64 { return 1 - x }).Mul(g)
		if err != nil {
			return err
		}
		return accumulate(graph, grads, op.A, ga)

	case OpTranspose:
		ga, err := g.Transpose()
		if err != nil {
			return err
		}
		return accumulate(graph, grads, op.A, ga)

	case OpPow:
		// d/dx x^n = n·x^(n-1)
		ga, err := graph.Get(op.A).Value.Pow(op.Scalar - 1).MulScalar(op.Scalar).Mul(g)
		if err != nil {
			return err
		}
		return accumulate(graph, grads, op.A, ga)

	case OpMulScalar:
		return accumulate(graph, grads, op.A, g.MulScalar(op.Scalar))

	case OpAddScalar:
		return accumulate(graph, grads, op.A, g)

	case OpSumAll:
		seed, err := g.Item()
		if err != nil {
			return err
		}
		ga := tensor.Full(graph.Get(op.A).Shape, seed)
		return accumulate(graph, grads, op.A, ga)

	case OpMeanAll:
		seed, err := g.Item()
		if err != nil {
			return err
		}
		aShape := graph.Get(op.A).Shape
		ga := tensor.Full(aShape, seed/float64(aShape.NumElements()))
		return accumulate(graph, grads, op.A, ga)

	default:
		panic(fmt.Sprintf("autodiff: no differentiation rule for %s", op.Kind))
	}
}

// accumulate merges a gradient contribution into grads[id], first reducing
// it to the operand's recorded shape whenever the forward op broadcast the
// operand up to a larger result. Nodes with RequiresGrad false are skipped.
func accumulate(graph *Graph, grads Gradients, id NodeID, incoming *tensor.Tensor) error {
	target := graph.Get(id)
	if !target.RequiresGrad {
		return nil
	}

	grad, err := reduceBroadcast(incoming, target.Shape)
	if err != nil {
		return err
	}

	if existing, ok := grads[id]; ok {
		sum, err := existing.Add(grad)
		if err != nil {
			return err
		}
		grads[id] = sum
	} else {
		// Pass-through rules (add, add-scalar) hand the consumer's own
		// gradient down unchanged; insert a copy so no two table entries
		// share storage. Callers mutate gradients in place (clipping).
		if grad == incoming {
			grad = incoming.Clone()
		}
		grads[id] = grad
	}
	return nil
}

// reduceBroadcast sums a gradient over the axes the forward pass expanded,
// restoring the operand's original shape.
//
// Leading axes absent from the target are summed away first, then any axis
// where the target has size 1 but the gradient more is summed with the
// size-1 axis kept. A remaining difference is bridged by reshape only when
// the element counts agree; anything else is ErrGradShape.
func reduceBroadcast(grad *tensor.Tensor, target tensor.Shape) (*tensor.Tensor, error) {
	if grad.Shape().Equal(target) {
		return grad, nil
	}

	if target.IsScalar() {
		return tensor.Scalar(grad.SumAll()), nil
	}

	result := grad
	var err error
	for result.NumDims() > len(target) {
		if result, err = result.SumAxis(0, false); err != nil {
			return nil, err
		}
	}

	for i := 0; i < len(target) && i < result.NumDims(); i++ {
		if target[i] == 1 && result.Shape()[i] > 1 {
			if result, err = result.SumAxis(i, true); err != nil {
				return nil, err
			}
		}
	}

	if !result.Shape().Equal(target) {
		if result.NumElements() != target.NumElements() {
			return nil, fmt.Errorf("%w: gradient %v vs operand %v", ErrGradShape, grad.Shape(), target)
		}
		if result, err = result.Reshape(target); err != nil {
			return nil, fmt.Errorf("%w: gradient %v vs operand %v", ErrGradShape, grad.Shape(), target)
		}
	}

	return result, nil
}
