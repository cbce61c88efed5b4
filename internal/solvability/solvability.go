// Package solvability decides, in O(N⁴), whether a board can reach a given
// GoalModel's goal arrangement, via permutation-inversion parity combined
// with the taxicab distance the blank must travel.
package solvability

import (
	"fmt"

	"github.com/Shigurex/n-puzzle/internal/board"
	"github.com/Shigurex/n-puzzle/internal/goalmodel"
)

// IsSolvable reports whether b can reach gm's goal arrangement.
//
// Method: relabel every non-blank cell through gm's arrangement-index map
// and the blank to a sentinel that sorts exactly where the goal's blank
// sits (so the goal board itself relabels to a sorted sequence), count the
// parity of the inversions in that relabeled sequence, and add the taxicab
// distance between b's blank and the goal's blank. Every move swaps the
// blank with one tile, flipping both parities, so the board is solvable
// iff that sum is even.
func IsSolvable(b board.Board, gm *goalmodel.GoalModel) (bool, error) {
	n := b.Size()
	if n != gm.Size() {
		return false, fmt.Errorf("solvability: board size %d does not match goal model size %d", n, gm.Size())
	}

	// Ranks are doubled so the blank's sentinel fits between the ranks of
	// the goal tiles just before and just after the goal's blank cell.
	goalBlank := gm.GoalBoard().Blank()
	blankSentinel := 2*(goalBlank.Y*n+goalBlank.X) + 1

	relabeled := make([]int, 0, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			v, err := b.At(board.Position{X: x, Y: y})
			if err != nil {
				return false, err
			}
			if v == 0 {
				relabeled = append(relabeled, blankSentinel)
				continue
			}
			idx, ok := gm.ArrangementIndex(v)
			if !ok {
				return false, fmt.Errorf("solvability: value %d has no arrangement index", v)
			}
			relabeled = append(relabeled, 2*idx)
		}
	}

	inversions := 0
	for i := 0; i < len(relabeled); i++ {
		for j := i + 1; j < len(relabeled); j++ {
			if relabeled[i] > relabeled[j] {
				inversions++
			}
		}
	}

	blank := b.Blank()
	manhattan := abs(blank.X-goalBlank.X) + abs(blank.Y-goalBlank.Y)

	return (inversions+manhattan)%2 == 0, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
