package bestfirst

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/searchcraft/bestfirst/searchspace"
)

func orderTestNode(g float64) *searchspace.Node[string, string] {
	root := searchspace.MakeRootNode[string, string]("a")
	return searchspace.MakeChildNode(root, "step", "b", g)
}

func TestOrderedAStar(t *testing.T) {
	node := orderTestNode(3)
	entry := OrderedAStar(node, 4, 7)

	assert.Equal(t, 7.0, entry.F)
	assert.Equal(t, 4.0, entry.H)
	assert.Equal(t, 7, entry.Tie)
	assert.Same(t, node, entry.Node)
}

func TestOrderedWeightedAStar(t *testing.T) {
	// Fixing the weight yields the actual per-node entry maker.
	makeEntry := OrderedWeightedAStar[string, string](2)

	node := orderTestNode(3)
	entry := makeEntry(node, 4, 1)

	assert.Equal(t, 11.0, entry.F) // 3 + 2*4
	assert.Equal(t, 4.0, entry.H)
	assert.Equal(t, 1, entry.Tie)
	assert.Same(t, node, entry.Node)
}

func TestOrderedWeightedAStar_WeightOneIsPlainAStar(t *testing.T) {
	makeEntry := OrderedWeightedAStar[string, string](1)
	node := orderTestNode(5)

	assert.Equal(t, OrderedAStar(node, 2, 0), makeEntry(node, 2, 0))
}

func TestOrderedGreedyBestFirst_IgnoresG(t *testing.T) {
	cheap := orderTestNode(1)
	expensive := orderTestNode(100)

	assert.Equal(t, 4.0, OrderedGreedyBestFirst(cheap, 4, 0).F)
	assert.Equal(t, 4.0, OrderedGreedyBestFirst(expensive, 4, 0).F)
}
