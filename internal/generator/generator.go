// Package generator produces random start boards that are solvable by
// construction: a bounded random walk of legal blank moves starting from
// the goal board. Because every step is a legal move, the walk can never
// leave the solvable half of the permutation group, so the result needs
// no separate solvability check.
package generator

import (
	"fmt"
	"math/rand"

	"github.com/Shigurex/n-puzzle/internal/board"
	"github.com/Shigurex/n-puzzle/internal/goalmodel"
)

// Generate returns a board of size n reached from gm's goal board by
// steps random legal blank moves. A larger steps count yields a more
// thoroughly scrambled board; callers typically pass a multiple of
// n*n*n.
func Generate(gm *goalmodel.GoalModel, steps int, rng *rand.Rand) (board.Board, error) {
	if gm.Size() < 2 {
		return board.Board{}, fmt.Errorf("generator: size %d < 2", gm.Size())
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	current := gm.GoalBoard()
	var lastMove board.Move
	hasLast := false

	for i := 0; i < steps; i++ {
		neighbours := current.Neighbours()
		candidates := neighbours[:0:0]
		for _, nb := range neighbours {
			if hasLast && nb.Move == opposite(lastMove) {
				continue // avoid immediately undoing the previous step
			}
			candidates = append(candidates, nb)
		}
		if len(candidates) == 0 {
			candidates = neighbours
		}

		pick := candidates[rng.Intn(len(candidates))]
		current = pick.Board
		lastMove = pick.Move
		hasLast = true
	}

	return current, nil
}

func opposite(m board.Move) board.Move {
	switch m {
	case board.Up:
		return board.Down
	case board.Down:
		return board.Up
	case board.Left:
		return board.Right
	case board.Right:
		return board.Left
	default:
		return m
	}
}
