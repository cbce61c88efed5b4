// Package search implements the core driver: a single best-first loop
// realising A*, uniform-cost, and greedy search over internal/board,
// internal/frontier, internal/explored, and internal/heuristic,
// producing an internal/report.Report. The loop runs synchronously on
// one goroutine: pop the best frontier node, test it against the goal,
// and expand it.
package search

import (
	"fmt"
	"time"

	"github.com/Shigurex/n-puzzle/internal/board"
	"github.com/Shigurex/n-puzzle/internal/errs"
	"github.com/Shigurex/n-puzzle/internal/explored"
	"github.com/Shigurex/n-puzzle/internal/frontier"
	"github.com/Shigurex/n-puzzle/internal/goalmodel"
	"github.com/Shigurex/n-puzzle/internal/heuristic"
	"github.com/Shigurex/n-puzzle/internal/report"
)

// Algorithm selects which of the three search variants to run.
type Algorithm int

const (
	AStar Algorithm = iota
	UniformCost
	Greedy
)

func (a Algorithm) String() string {
	switch a {
	case AStar:
		return "astar"
	case UniformCost:
		return "uniform_cost"
	case Greedy:
		return "greedy"
	default:
		return "unknown"
	}
}

// Options parameterises a single Run call. Heuristic is ignored for
// UniformCost, which always searches with the Zero heuristic. A zero
// Timeout means no deadline.
type Options struct {
	Algorithm Algorithm
	Heuristic heuristic.Kind
	Timeout   time.Duration
}

// Engine runs searches against a fixed GoalModel. GoalModel caches are
// read-only, so one Engine may be reused sequentially across several Run
// calls with different start boards.
type Engine struct {
	goal *goalmodel.GoalModel
}

// New builds an Engine targeting gm's goal arrangement.
func New(gm *goalmodel.GoalModel) *Engine {
	return &Engine{goal: gm}
}

// Run searches from start to the engine's goal under opts. Each call
// instantiates its own Frontier and Explored set: they do not outlive
// the call and are not shared across concurrent Run invocations on the
// same Engine.
func (e *Engine) Run(start board.Board, opts Options) (report.Report, error) {
	h, err := e.heuristicFunc(opts)
	if err != nil {
		return report.Report{}, err
	}

	startTime := time.Now()
	fr := frontier.New()
	ex := explored.New()
	goalBoard := e.goal.GoalBoard()

	startNode := &frontier.Node{Board: start, G: 0, H: h(start, e.goal)}
	fr.Insert(startNode)
	peak := fr.Size() + ex.Size()

	for {
		if opts.Timeout > 0 && time.Since(startTime) > opts.Timeout {
			return report.Report{}, fmt.Errorf("%w: exceeded %s", errs.ErrTimeout, opts.Timeout)
		}

		node, ok := fr.Pop()
		if !ok {
			return report.Report{}, errs.ErrNoSolution
		}

		if node.Board.Equal(goalBoard) {
			return report.New(node.Path(), fr.AppendCount(), peak, time.Since(startTime)), nil
		}

		switch opts.Algorithm {
		case Greedy:
			successor, successorH, found := bestNeighbour(node.Board, h, e.goal)
			if !found || successorH >= node.H {
				return report.Report{}, errs.ErrNoSolution
			}
			fr.Insert(&frontier.Node{
				Board:  successor.Board,
				Parent: node,
				Move:   successor.Move,
				G:      node.G + 1,
				H:      successorH,
			})
		default: // AStar, UniformCost
			ex.Insert(node.Board)
			for _, nb := range node.Board.Neighbours() {
				if ex.Contains(nb.Board) {
					continue
				}
				fr.Insert(&frontier.Node{
					Board:  nb.Board,
					Parent: node,
					Move:   nb.Move,
					G:      node.G + 1,
					H:      h(nb.Board, e.goal),
				})
			}
		}

		if cur := fr.Size() + ex.Size(); cur > peak {
			peak = cur
		}
	}
}

func (e *Engine) heuristicFunc(opts Options) (heuristic.Func, error) {
	if opts.Algorithm == UniformCost {
		return heuristic.ZeroDistance, nil
	}
	return heuristic.Select(opts.Heuristic)
}

// bestNeighbour returns the legal neighbour minimising h, scanning in
// board.Order so ties resolve to the earliest direction.
func bestNeighbour(b board.Board, h heuristic.Func, gm *goalmodel.GoalModel) (board.Neighbour, int, bool) {
	neighbours := b.Neighbours()
	bestIdx := -1
	bestH := 0
	for i, nb := range neighbours {
		hv := h(nb.Board, gm)
		if bestIdx == -1 || hv < bestH {
			bestIdx = i
			bestH = hv
		}
	}
	if bestIdx == -1 {
		return board.Neighbour{}, 0, false
	}
	return neighbours[bestIdx], bestH, true
}
