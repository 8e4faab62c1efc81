// Package bestfirst provides a generic best-first state-space search engine
// for discrete transition systems (planning tasks).
//
// It exposes three entry points sharing one search loop:
//
//   - AStarSearch: plain A* ordering (f = g + h).
//   - WeightedAStarSearch: weighted A* ordering (f = g + w*h).
//   - GreedyBestFirstSearch: greedy ordering (f = h, ignoring g).
//
// A Stepper iterates the same search one expansion at a time to drive UIs or
// debugging tools.
//
// The library is generic over state and action types. The frontier is a plain
// binary heap: a superseded entry is never re-keyed or removed in place but
// filtered lazily on pop against the best known cost for its state. Ties
// between equal priorities are broken by insertion order, so a search over a
// fixed task, heuristic and ordering policy always expands nodes in the same
// sequence.
package bestfirst
