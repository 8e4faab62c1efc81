package bestfirst

import (
	"container/heap"
	"context"

	"github.com/searchcraft/bestfirst/logging"
	"github.com/searchcraft/bestfirst/searchspace"
)

// StepSnapshot exposes the per-step state of the search.
type StepSnapshot[S comparable, A any] struct {
	// Node is the node expanded this step; nil once the search is done or
	// when the frontier emptied without a goal.
	Node *searchspace.Node[S, A]
	// F and H are the priority components of the expanded entry.
	F float64
	H float64
	// StepIndex counts completed steps; Expansions counts valid expansions
	// (the two match, stale pops are skipped inside Step).
	StepIndex  int
	Expansions int
	Done       bool
	Found      bool
	// Plan and Cost are set on the goal step.
	Plan []A
	Cost float64
}

// Stepper drives the same best-first loop as the batch entry points one
// expansion at a time, for UIs and debugging tools. Semantics are identical:
// same lazy stale-entry deletion, same tiebreaking, so stepping a task to
// completion yields the plan AStarSearch would return.
type Stepper[S comparable, A any] struct {
	ctx       context.Context
	task      Task[S, A]
	heuristic Heuristic[S, A]
	makeEntry EntryMaker[S, A]
	logger    logging.Logger

	open       Frontier[S, A]
	stateCost  map[S]float64
	tiebreaker int

	stepCount  int
	expansions int
	done       bool
	found      bool
}

// NewStepper seeds a stepper with the task's initial state. The same options
// as the batch entry points select the ordering policy and logger.
func NewStepper[S comparable, A any](
	ctx context.Context,
	task Task[S, A],
	heuristic Heuristic[S, A],
	opts ...Option[S, A],
) *Stepper[S, A] {
	options := newOptions(opts...)
	s := &Stepper[S, A]{
		ctx:       ctx,
		task:      task,
		heuristic: heuristic,
		makeEntry: options.Ordering,
		logger:    options.Logger,
		open:      make(Frontier[S, A], 0),
		stateCost: map[S]float64{task.InitialState(): 0},
	}
	heap.Init(&s.open)
	root := searchspace.MakeRootNode[S, A](task.InitialState())
	heap.Push(&s.open, s.makeEntry(root, heuristic(root), s.tiebreaker))
	return s
}

// Done reports whether the search has terminated.
func (s *Stepper[S, A]) Done() bool { return s.done }

// Step advances the search by one valid node expansion and returns a
// snapshot. Stale entries popped along the way are discarded without
// counting as a step. Once the search has terminated further calls return a
// terminal snapshot.
func (s *Stepper[S, A]) Step() (StepSnapshot[S, A], error) {
	if s.done {
		return s.terminalSnapshot(), nil
	}

	for s.open.Len() > 0 {
		if err := s.ctx.Err(); err != nil {
			s.done = true
			return s.terminalSnapshot(), err
		}

		entry := heap.Pop(&s.open).(Entry[S, A])
		node := entry.Node
		if s.stateCost[node.State] != node.G {
			continue // stale
		}

		s.stepCount++
		s.expansions++

		if s.task.GoalReached(node.State) {
			s.done = true
			s.found = true
			s.logger.Info("goal reached", "expansions", s.expansions, "cost", node.G)
			return StepSnapshot[S, A]{
				Node:       node,
				F:          entry.F,
				H:          entry.H,
				StepIndex:  s.stepCount,
				Expansions: s.expansions,
				Done:       true,
				Found:      true,
				Plan:       searchspace.ExtractSolution(node),
				Cost:       node.G,
			}, nil
		}

		for _, successor := range s.task.SuccessorStates(node.State) {
			child := searchspace.MakeChildNode(node, successor.Action, successor.State, successor.Cost)
			h := s.heuristic(child)
			if h == Unreachable {
				continue
			}
			oldG, seen := s.stateCost[successor.State]
			if !seen || child.G < oldG {
				s.tiebreaker++
				heap.Push(&s.open, s.makeEntry(child, h, s.tiebreaker))
				s.stateCost[successor.State] = child.G
			}
		}

		return StepSnapshot[S, A]{
			Node:       node,
			F:          entry.F,
			H:          entry.H,
			StepIndex:  s.stepCount,
			Expansions: s.expansions,
		}, nil
	}

	s.done = true
	s.logger.Info("frontier exhausted, task unsolvable", "expansions", s.expansions)
	return s.terminalSnapshot(), nil
}

func (s *Stepper[S, A]) terminalSnapshot() StepSnapshot[S, A] {
	return StepSnapshot[S, A]{
		StepIndex:  s.stepCount,
		Expansions: s.expansions,
		Done:       true,
		Found:      s.found,
	}
}
