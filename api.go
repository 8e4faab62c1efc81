package bestfirst

import (
	"container/heap"
	"context"
	"math"

	"github.com/google/uuid"
	"github.com/searchcraft/bestfirst/logging"
	"github.com/searchcraft/bestfirst/searchspace"
)

// Task is the external problem definition: states, goal test and successor
// enumeration. S must be comparable so states can key the best-known-cost
// table. SuccessorStates must return a finite slice in a stable order; that
// order defines the expansion order among successors of the same node.
type Task[S comparable, A any] interface {
	InitialState() S
	GoalReached(state S) bool
	SuccessorStates(state S) []Successor[S, A]
}

// Successor is a state reachable in one step, with the action that reaches
// it and the task-defined step cost (>= 0).
type Successor[S comparable, A any] struct {
	Action A
	State  S
	Cost   float64
}

// Heuristic estimates the remaining cost from a node to a goal. It must be
// non-negative; Unreachable marks a dead end, pruning the node from the
// search without it ever being enqueued or costed.
type Heuristic[S comparable, A any] func(node *searchspace.Node[S, A]) float64

// Unreachable is the heuristic value signalling that no goal can be reached
// from a node.
var Unreachable = math.Inf(1)

// DefaultWeight is the heuristic weight WeightedAStarSearch applies when the
// caller passes a non-positive one.
const DefaultWeight = 5.0

// Result contains the outcome of a search.
type Result[A any] struct {
	// Plan is the ordered action sequence from the initial state to the
	// goal; nil when Found is false.
	Plan []A
	// Cost is the path cost g of the goal node.
	Cost float64
	// Expansions counts valid (non-stale) node expansions.
	Expansions int
	// Found reports whether a goal state was reached. An unsolvable task is
	// a valid outcome, not an error.
	Found bool
}

// Options defines parameters for the search.
type Options[S comparable, A any] struct {
	Ordering EntryMaker[S, A]
	Logger   logging.Logger
}

// Option is a function that modifies Options.
type Option[S comparable, A any] func(*Options[S, A])

// WithOrdering substitutes the ordering policy used to build frontier
// entries.
func WithOrdering[S comparable, A any](ordering EntryMaker[S, A]) Option[S, A] {
	return func(options *Options[S, A]) { options.Ordering = ordering }
}

// WithLogger installs a logger on the search driver. The default is
// logging.NoOpLogger.
func WithLogger[S comparable, A any](logger logging.Logger) Option[S, A] {
	return func(options *Options[S, A]) { options.Logger = logger }
}

func newOptions[S comparable, A any](opts ...Option[S, A]) Options[S, A] {
	options := Options[S, A]{
		Ordering: OrderedAStar[S, A],
		Logger:   logging.NoOpLogger{},
	}
	for _, option := range opts {
		option(&options)
	}
	if options.Ordering == nil {
		options.Ordering = OrderedAStar[S, A]
	}
	if options.Logger == nil {
		options.Logger = logging.NoOpLogger{}
	}
	return options
}

// AStarSearch searches for a plan in the given task using A* search. The
// ordering policy defaults to plain A* (f = g + h) and can be substituted
// with WithOrdering.
func AStarSearch[S comparable, A any](
	ctx context.Context,
	task Task[S, A],
	heuristic Heuristic[S, A],
	opts ...Option[S, A],
) (Result[A], error) {
	return search(ctx, task, heuristic, newOptions(opts...))
}

// WeightedAStarSearch searches for a plan in the given task using weighted
// A* search (f = g + weight*h). A non-positive weight falls back to
// DefaultWeight. With weight 1 the search is plain A*.
func WeightedAStarSearch[S comparable, A any](
	ctx context.Context,
	task Task[S, A],
	heuristic Heuristic[S, A],
	weight float64,
	opts ...Option[S, A],
) (Result[A], error) {
	if weight <= 0 {
		weight = DefaultWeight
	}
	opts = append([]Option[S, A]{WithOrdering(OrderedWeightedAStar[S, A](weight))}, opts...)
	return search(ctx, task, heuristic, newOptions(opts...))
}

// GreedyBestFirstSearch searches for a plan in the given task using greedy
// best first search (f = h).
func GreedyBestFirstSearch[S comparable, A any](
	ctx context.Context,
	task Task[S, A],
	heuristic Heuristic[S, A],
	opts ...Option[S, A],
) (Result[A], error) {
	opts = append([]Option[S, A]{WithOrdering[S, A](OrderedGreedyBestFirst[S, A])}, opts...)
	return search(ctx, task, heuristic, newOptions(opts...))
}

// search runs the shared best-first loop: pop the minimum entry, discard it
// if stale, check the goal, expand, prune dead ends and push strictly
// improving children. The tiebreaker counter is owned by this invocation so
// concurrent searches never interfere.
func search[S comparable, A any](
	ctx context.Context,
	task Task[S, A],
	heuristic Heuristic[S, A],
	options Options[S, A],
) (Result[A], error) {
	makeEntry := options.Ordering
	logger := options.Logger
	runID := uuid.NewString()

	root := searchspace.MakeRootNode[S, A](task.InitialState())
	stateCost := map[S]float64{task.InitialState(): 0}
	tiebreaker := 0

	initH := heuristic(root)
	open := make(Frontier[S, A], 0)
	heap.Init(&open)
	heap.Push(&open, makeEntry(root, initH, tiebreaker))
	logger.Info("search started", "run_id", runID, "initial_h", initH)

	bestH := math.Inf(1)
	expansions := 0

	for open.Len() > 0 {
		if err := ctx.Err(); err != nil {
			logger.Warn("search aborted", "run_id", runID, "expansions", expansions)
			return Result[A]{Expansions: expansions}, err
		}

		entry := heap.Pop(&open).(Entry[S, A])
		if entry.H < bestH {
			bestH = entry.H
			logger.Debug("new best h", "run_id", runID, "h", bestH, "expansions", expansions)
		}

		node := entry.Node

		// Only expand the node if its cost is the lowest known for its
		// state. Otherwise a cheaper path was found after this entry was
		// pushed and the entry is stale.
		if stateCost[node.State] != node.G {
			continue
		}

		expansions++

		if task.GoalReached(node.State) {
			logger.Info("goal reached", "run_id", runID, "expansions", expansions, "cost", node.G)
			return Result[A]{
				Plan:       searchspace.ExtractSolution(node),
				Cost:       node.G,
				Expansions: expansions,
				Found:      true,
			}, nil
		}

		for _, successor := range task.SuccessorStates(node.State) {
			child := searchspace.MakeChildNode(node, successor.Action, successor.State, successor.Cost)
			h := heuristic(child)
			if math.IsInf(h, 1) {
				// Dead end: the goal cannot be reached through here.
				continue
			}
			oldG, seen := stateCost[successor.State]
			if !seen || child.G < oldG {
				// Either a never-seen state or a cheaper path to it.
				tiebreaker++
				heap.Push(&open, makeEntry(child, h, tiebreaker))
				stateCost[successor.State] = child.G
			}
		}
	}

	logger.Info("frontier exhausted, task unsolvable", "run_id", runID, "expansions", expansions)
	return Result[A]{Expansions: expansions}, nil
}
