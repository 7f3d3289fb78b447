package autodiff_test

import (
	"testing"

	"github.com/gradix-ml/gradix/internal/autodiff"
	"github.com/gradix-ml/gradix/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraph_SequentialIDs(t *testing.T) {
	g := autodiff.NewGraph()

	a := g.Parameter(tensor.Scalar(1))
	b := g.Parameter(tensor.Scalar(2))
	c, err := a.Add(b)
	require.NoError(t, err)

	assert.Equal(t, autodiff.NodeID(0), a.ID())
	assert.Equal(t, autodiff.NodeID(1), b.ID())
	assert.Equal(t, autodiff.NodeID(2), c.ID())
	assert.Equal(t, 3, g.Len())
}

func TestGraph_OperandsPrecedeNode(t *testing.T) {
	g := autodiff.NewGraph()

	x := g.Parameter(tensor.Ones(tensor.Shape{2, 2}))
	y := g.Parameter(tensor.Ones(tensor.Shape{2, 2}))
	z, err := x.Mul(y)
	require.NoError(t, err)
	w, err := z.Add(x)
	require.NoError(t, err)

	// The tape is a DAG in creation order: every operand id is strictly
	// less than its node's id.
	for i := 0; i < g.Len(); i++ {
		node := g.Get(autodiff.NodeID(i))
		if node.Op.Kind == autodiff.OpLeaf {
			continue
		}
		assert.Less(t, int(node.Op.A), i, "node %d operand A", i)
		if node.Op.B >= 0 {
			assert.Less(t, int(node.Op.B), i, "node %d operand B", i)
		}
	}
	assert.Equal(t, autodiff.NodeID(3), w.ID())
}

func TestGraph_GetPanicsOutOfRange(t *testing.T) {
	g := autodiff.NewGraph()
	g.Parameter(tensor.Scalar(1))

	assert.Panics(t, func() { g.Get(autodiff.NodeID(5)) })
	assert.Panics(t, func() { g.Get(autodiff.NodeID(-1)) })
}

func TestGraph_NodeCapturesShapeAndValue(t *testing.T) {
	g := autodiff.NewGraph()
	data, _ := tensor.New([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})

	v := g.Parameter(data)
	node := g.Get(v.ID())

	assert.True(t, node.Shape.Equal(tensor.Shape{2, 3}))
	assert.Equal(t, data, node.Value)
	assert.True(t, node.RequiresGrad)
	assert.Equal(t, autodiff.OpLeaf, node.Op.Kind)
}

func TestGraph_ResetInvalidatesVariables(t *testing.T) {
	g := autodiff.NewGraph()
	x := g.Parameter(tensor.Scalar(3))

	g.Reset()
	assert.Equal(t, 0, g.Len())
	assert.False(t, x.Valid())

	// Any operation on a stale handle is a loud programming error.
	assert.Panics(t, func() { x.Neg() })
	assert.Panics(t, func() { _, _ = x.Add(x) })
}

func TestGraph_ResetAllowsReuse(t *testing.T) {
	g := autodiff.NewGraph()
	g.Parameter(tensor.Scalar(1))
	g.Parameter(tensor.Scalar(2))
	require.Equal(t, 2, g.Len())

	g.Reset()
	y := g.Parameter(tensor.Scalar(5))
	assert.Equal(t, autodiff.NodeID(0), y.ID())
	assert.True(t, y.Valid())
	assert.Equal(t, 1, g.Len())
}

func TestGraph_MixingGraphsPanics(t *testing.T) {
	g1 := autodiff.NewGraph()
	g2 := autodiff.NewGraph()
	a := g1.Parameter(tensor.Scalar(1))
	b := g2.Parameter(tensor.Scalar(2))

	assert.Panics(t, func() { _, _ = a.Add(b) })
}
