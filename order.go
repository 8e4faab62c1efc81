package bestfirst

import "github.com/searchcraft/bestfirst/searchspace"

// Entry is a frontier element: a search node together with the priority it
// is ordered by. Entries compare lexicographically on the (F, H, Tie)
// prefix; Node is carried but never compared. H is the second component so
// that among entries with equal F the one heuristically closer to the goal
// wins.
type Entry[S comparable, A any] struct {
	F    float64
	H    float64
	Tie  int
	Node *searchspace.Node[S, A]
}

// EntryMaker builds a frontier entry from a node, its heuristic value and a
// tiebreaker. The three ordering policies below all share this shape, so the
// driver treats them interchangeably.
type EntryMaker[S comparable, A any] func(node *searchspace.Node[S, A], h float64, tie int) Entry[S, A]

// OrderedAStar orders entries by f = g + h (plain A*).
func OrderedAStar[S comparable, A any](node *searchspace.Node[S, A], h float64, tie int) Entry[S, A] {
	return Entry[S, A]{F: node.G + h, H: h, Tie: tie, Node: node}
}

// OrderedWeightedAStar fixes weight and returns the actual per-node entry
// maker, ordering by f = g + weight*h (weighted A*).
func OrderedWeightedAStar[S comparable, A any](weight float64) EntryMaker[S, A] {
	return func(node *searchspace.Node[S, A], h float64, tie int) Entry[S, A] {
		return Entry[S, A]{F: node.G + weight*h, H: h, Tie: tie, Node: node}
	}
}

// OrderedGreedyBestFirst orders entries by f = h alone, ignoring the path
// cost accumulated so far (greedy best-first).
func OrderedGreedyBestFirst[S comparable, A any](node *searchspace.Node[S, A], h float64, tie int) Entry[S, A] {
	return Entry[S, A]{F: h, H: h, Tie: tie, Node: node}
}
