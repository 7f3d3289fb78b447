package autodiff

import (
	"fmt"

	"github.com/gradix-ml/gradix/internal/tensor"
)

// Variable is the user-facing handle for building a differentiable
// computation: a node ID paired with the materialized value recorded at that
// ID. The value is a cached reference to the same tensor stored in the
// graph, so callers read results without a graph lookup.
//
// Variables do not own the graph; many Variables share one. A Variable is
// valid only for the graph generation it was created against; using it
// after Graph.Reset panics.
type Variable struct {
	graph *Graph
	id    NodeID
	gen   uint64
	data  *tensor.Tensor
}

// Parameter records a trainable leaf (requires gradient).
func (g *Graph) Parameter(data *tensor.Tensor) *Variable {
	return g.leaf(data, true)
}

// Input records a non-trainable leaf (no gradient).
func (g *Graph) Input(data *tensor.Tensor) *Variable {
	return g.leaf(data, false)
}

func (g *Graph) leaf(data *tensor.Tensor, requiresGrad bool) *Variable {
	id := g.AddNode(leafOp(), data, requiresGrad)
	return &Variable{graph: g, id: id, gen: g.generation, data: data}
}

// ID returns the variable's node ID.
func (v *Variable) ID() NodeID {
	return v.id
}

// Graph returns the graph this variable records into.
func (v *Variable) Graph() *Graph {
	return v.graph
}

// Valid reports whether the variable still belongs to its graph's current
// generation. After Graph.Reset it returns false and any operation on the
// variable panics.
func (v *Variable) Valid() bool {
	return v.gen == v.graph.generation
}

// Data returns the variable's materialized value.
func (v *Variable) Data() *tensor.Tensor {
	return v.data
}

// Shape returns the shape of the variable's value.
func (v *Variable) Shape() tensor.Shape {
	return v.data.Shape()
}

// RequiresGrad reports whether backward accumulates a gradient for this
// variable.
func (v *Variable) RequiresGrad() bool {
	v.check()
	return v.graph.Get(v.id).RequiresGrad
}

// Item returns the single value of a 1-element variable.
func (v *Variable) Item() (float64, error) {
	return v.data.Item()
}

// check panics if the variable outlived its graph generation. A stale handle
// would otherwise silently read a reused node index.
func (v *Variable) check() {
	if v.gen != v.graph.generation {
		panic(fmt.Sprintf("autodiff: variable for node %d used after graph reset", v.id))
	}
}

// record appends a derived node. requiresGrad is the OR of the operand
// flags, so gradient bookkeeping skips branches no parameter feeds into.
func (v *Variable) record(op Op, result *tensor.Tensor, requiresGrad bool) *Variable {
	id := v.graph.AddNode(op, result, requiresGrad)
	return &Variable{graph: v.graph, id: id, gen: v.graph.generation, data: result}
}

func (v *Variable) binary(kind OpKind, other *Variable, forward func(a, b *tensor.Tensor) (*tensor.Tensor, error)) (*Variable, error) {
	v.check()
	other.check()
	if v.graph != other.graph {
		panic(fmt.Sprintf("autodiff: %s of variables from two different graphs", kind))
	}

	// Forward first: on a shape error nothing is recorded.
	result, err := forward(v.data, other.data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", kind, err)
	}

	grad := v.graph.Get(v.id).RequiresGrad || v.graph.Get(other.id).RequiresGrad
	return v.record(binaryOp(kind, v.id, other.id), result, grad), nil
}

func (v *Variable) unary(kind OpKind, result *tensor.Tensor) *Variable {
	v.check()
	return v.record(unaryOp(kind, v.id), result, v.graph.Get(v.id).RequiresGrad)
}

// Add computes element-wise v + other with broadcasting.
func (v *Variable) Add(other *Variable) (*Variable, error) {
	return v.binary(OpAdd, other, (*tensor.Tensor).Add)
}

// Sub computes element-wise v - other with broadcasting.
func (v *Variable) Sub(other *Variable) (*Variable, error) {
	return v.binary(OpSub, other, (*tensor.Tensor).Sub)
}

// Mul computes element-wise v * other with broadcasting.
func (v *Variable) Mul(other *Variable) (*Variable, error) {
	return v.binary(OpMul, other, (*tensor.Tensor).Mul)
}

// Div computes element-wise v / other with broadcasting.
func (v *Variable) Div(other *Variable) (*Variable, error) {
	return v.binary(OpDiv, other, (*tensor.Tensor).Div)
}

// MatMul computes the (batched) matrix product v @ other.
func (v *Variable) MatMul(other *Variable) (*Variable, error) {
	return v.binary(OpMatMul, other, (*tensor.Tensor).MatMul)
}

// Neg computes element-wise -v.
func (v *Variable) Neg() *Variable {
	return v.unary(OpNeg, v.data.Neg())
}

// Exp computes element-wise e^v.
func (v *Variable) Exp() *Variable {
	return v.unary(OpExp, v.data.Exp())
}

// Ln computes element-wise natural logarithm of v.
func (v *Variable) Ln() *Variable {
	return v.unary(OpLn, v.data.Ln())
}

// Relu computes element-wise max(v, 0).
func (v *Variable) Relu() *Variable {
	return v.unary(OpRelu, v.data.Relu())
}

// Sigmoid computes element-wise 1 / (1 + e^-v).
func (v *Variable) Sigmoid() *Variable {
	return v.unary(OpSigmoid, v.data.Sigmoid())
}

// Tanh computes element-wise hyperbolic tangent of v.
func (v *Variable) Tanh() *Variable {
	return v.unary(OpTanh, v.data.Tanh())
}

// Transpose swaps the last two axes of v.
func (v *Variable) Transpose() (*Variable, error) {
	v.check()
	result, err := v.data.Transpose()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", OpTranspose, err)
	}
	return v.record(unaryOp(OpTranspose, v.id), result, v.graph.Get(v.id).RequiresGrad), nil
}

// Pow computes element-wise v^n for a plain scalar exponent.
func (v *Variable) Pow(n float64) *Variable {
	v.check()
	return v.record(scalarOp(OpPow, v.id, n), v.data.Pow(n), v.graph.Get(v.id).RequiresGrad)
}

// MulScalar computes element-wise v * s for a plain scalar.
func (v *Variable) MulScalar(s float64) *Variable {
	v.check()
	return v.record(scalarOp(OpMulScalar, v.id, s), v.data.MulScalar(s), v.graph.Get(v.id).RequiresGrad)
}

// AddScalar computes element-wise v + s for a plain scalar.
func (v *Variable) AddScalar(s float64) *Variable {
	v.check()
	return v.record(scalarOp(OpAddScalar, v.id, s), v.data.AddScalar(s), v.graph.Get(v.id).RequiresGrad)
}

// Sum reduces all elements to a 1-element tensor.
func (v *Variable) Sum() *Variable {
	return v.unary(OpSumAll, tensor.Scalar(v.data.SumAll()))
}

// Mean reduces all elements to their mean as a 1-element tensor.
func (v *Variable) Mean() *Variable {
	return v.unary(OpMeanAll, tensor.Scalar(v.data.MeanAll()))
}
