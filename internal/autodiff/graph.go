// Package autodiff implements reverse-mode automatic differentiation over a
// dynamically recorded computation graph (tape).
//
// The graph is an append-only arena of nodes indexed by NodeID. Forward
// operations on Variable both compute a result through the tensor package
// and append a tagged node; Backward walks the arena from the loss down to
// id 0, applying the local differentiation rule for each tag and
// accumulating per-node gradients.
//
// A Graph is owned by a single goroutine. Independent training steps use
// independent graphs (or Reset between steps); sharing one graph across
// goroutines requires external synchronization.
package autodiff

import (
	"fmt"

	"github.com/gradix-ml/gradix/internal/tensor"
)

// NodeID identifies a node within exactly one Graph generation.
// IDs are dense, monotonically increasing, and never reused; Reset
// invalidates all previously issued IDs.
type NodeID int

// OpKind enumerates how a node's value was produced.
//
// The set is closed: the backward dispatcher switches exhaustively over it,
// so adding a kind without a differentiation rule is caught loudly at
// runtime rather than silently ignored.
type OpKind int

// Operation kinds recorded on the tape.
const (
	OpLeaf OpKind = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMatMul
	OpNeg
	OpExp
	OpLn
	OpRelu
	OpSigmoid
	OpTanh
	OpTranspose
	OpPow
	OpMulScalar
	OpAddScalar
	OpSumAll
	OpMeanAll
)

// String returns the operation kind's name.
func (k OpKind) String() string {
	switch k {
	case OpLeaf:
		return "leaf"
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMul:
		return "mul"
	case OpDiv:
		return "div"
	case OpMatMul:
		return "matmul"
	case OpNeg:
		return "neg"
	case OpExp:
		return "exp"
	case OpLn:
		return "ln"
	case OpRelu:
		return "relu"
	case OpSigmoid:
		return "sigmoid"
	case OpTanh:
		return "tanh"
	case OpTranspose:
		return "transpose"
	case OpPow:
		return "pow"
	case OpMulScalar:
		return "mul_scalar"
	case OpAddScalar:
		return "add_scalar"
	case OpSumAll:
		return "sum_all"
	case OpMeanAll:
		return "mean_all"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

// Op tags the production provenance of a node's value: the kind, the operand
// NodeIDs (A for unary, A and B for binary kinds), and the scalar parameter
// for OpPow / OpMulScalar / OpAddScalar.
//
// Operands are index references, never pointers: nodes stay cheaply copyable
// and the arena may reallocate freely.
type Op struct {
	Kind   OpKind
	A, B   NodeID
	Scalar float64
}

func leafOp() Op {
	return Op{Kind: OpLeaf, A: -1, B: -1}
}

func unaryOp(kind OpKind, a NodeID) Op {
	return Op{Kind: kind, A: a, B: -1}
}

func binaryOp(kind OpKind, a, b NodeID) Op {
	return Op{Kind: kind, A: a, B: b}
}

func scalarOp(kind OpKind, a NodeID, s float64) Op {
	return Op{Kind: kind, A: a, B: -1, Scalar: s}
}

// Node is one recorded entry in the tape. Nodes are immutable after
// creation and owned exclusively by their graph's arena.
type Node struct {
	ID           NodeID
	Op           Op
	Shape        tensor.Shape
	Value        *tensor.Tensor
	RequiresGrad bool
}

// Graph is the append-only arena of recorded nodes for one forward pass.
//
// Invariant: operand NodeIDs referenced by any node's Op are strictly less
// than that node's own ID, so the tape is a DAG in creation order and can
// never contain a cycle.
type Graph struct {
	nodes      []Node
	generation uint64
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		nodes: make([]Node, 0, 64),
	}
}

// AddNode appends a node with the next sequential ID and returns that ID.
// The node captures value's shape at record time. No operand validation is
// performed here; recording is the Variable layer's responsibility.
func (g *Graph) AddNode(op Op, value *tensor.Tensor, requiresGrad bool) NodeID {
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, Node{
		ID:           id,
		Op:           op,
		Shape:        value.Shape().Clone(),
		Value:        value,
		RequiresGrad: requiresGrad,
	})
	return id
}

// Get returns the node with the given ID.
//
// Using an ID from a different or reset graph is a programming error with no
// recoverable interpretation, so Get panics rather than returning a stale
// node.
func (g *Graph) Get(id NodeID) *Node {
	if id < 0 || int(id) >= len(g.nodes) {
		panic(fmt.Sprintf("autodiff: node id %d out of range for graph of %d nodes (stale or foreign NodeID?)", id, len(g.nodes)))
	}
	return &g.nodes[id]
}

// Len returns the number of nodes recorded so far.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Reset discards all recorded nodes, releasing their memory, and invalidates
// every NodeID and Variable issued against the previous generation.
// Call it between independent training steps to keep the tape bounded.
func (g *Graph) Reset() {
	g.nodes = make([]Node, 0, cap(g.nodes))
	g.generation++
}
