// Package searchspace implements the node model shared by the search
// algorithms: immutable-once-created nodes linking each reached state back to
// the path that produced it.
package searchspace

// Node is a single point in the search space. It records the state reached,
// the parent node and action that produced it, and the accumulated path cost
// g from the root. Nodes are never mutated after construction; parent links
// form a DAG rooted at the initial node.
type Node[S comparable, A any] struct {
	State  S
	Parent *Node[S, A] // nil for the root
	Action A           // zero value for the root
	G      float64
}

// MakeRootNode constructs the node for the initial state, with no parent, no
// generating action and a path cost of zero.
func MakeRootNode[S comparable, A any](state S) *Node[S, A] {
	return &Node[S, A]{State: state}
}

// MakeChildNode constructs a successor node reached from parent by applying
// action, at cost g(parent) + cost.
func MakeChildNode[S comparable, A any](parent *Node[S, A], action A, state S, cost float64) *Node[S, A] {
	return &Node[S, A]{
		State:  state,
		Parent: parent,
		Action: action,
		G:      parent.G + cost,
	}
}

// ExtractSolution returns the sequence of actions leading from the root to
// node, by walking the parent chain and reversing it.
func ExtractSolution[S comparable, A any](node *Node[S, A]) []A {
	var plan []A
	for n := node; n.Parent != nil; n = n.Parent {
		plan = append(plan, n.Action)
	}
	for i, j := 0, len(plan)-1; i < j; i, j = i+1, j-1 {
		plan[i], plan[j] = plan[j], plan[i]
	}
	return plan
}
