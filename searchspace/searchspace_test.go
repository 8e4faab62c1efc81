package searchspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeRootNode(t *testing.T) {
	root := MakeRootNode[string, string]("init")

	assert.Equal(t, "init", root.State)
	assert.Nil(t, root.Parent)
	assert.Empty(t, root.Action)
	assert.Equal(t, 0.0, root.G)
}

func TestMakeChildNode_AccumulatesCost(t *testing.T) {
	root := MakeRootNode[string, string]("a")
	child := MakeChildNode(root, "go-b", "b", 1)
	grandchild := MakeChildNode(child, "go-c", "c", 2.5)

	assert.Equal(t, 1.0, child.G)
	assert.Equal(t, 3.5, grandchild.G)
	assert.Same(t, root, child.Parent)
	assert.Same(t, child, grandchild.Parent)
}

func TestExtractSolution_OrderedRootToNode(t *testing.T) {
	root := MakeRootNode[string, string]("a")
	b := MakeChildNode(root, "first", "b", 1)
	c := MakeChildNode(b, "second", "c", 1)
	d := MakeChildNode(c, "third", "d", 1)

	plan := ExtractSolution(d)

	require.Len(t, plan, 3)
	assert.Equal(t, []string{"first", "second", "third"}, plan)
}

func TestExtractSolution_RootIsEmpty(t *testing.T) {
	root := MakeRootNode[int, string](7)

	assert.Empty(t, ExtractSolution(root))
}
