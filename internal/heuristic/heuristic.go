// Package heuristic implements the admissible/consistent distance estimates
// used by the search engine: Manhattan, Hamming, Linear Conflict, Inversion
// Distance, and the constant Zero heuristic that reduces A* to uniform
// cost.
//
// All functions are pure: Board → ℕ, no shared state, idempotent on
// repeated calls.
package heuristic

import (
	"fmt"

	"github.com/Shigurex/n-puzzle/internal/board"
	"github.com/Shigurex/n-puzzle/internal/errs"
	"github.com/Shigurex/n-puzzle/internal/goalmodel"
)

// Kind tags the heuristic a caller wants; None is only valid as the
// "not yet chosen" zero value and is rejected by Select.
type Kind int

const (
	None Kind = iota
	Manhattan
	Hamming
	LinearConflict
	InversionDistance
	Zero
)

func (k Kind) String() string {
	switch k {
	case Manhattan:
		return "manhattan"
	case Hamming:
		return "hamming"
	case LinearConflict:
		return "linear_conflict"
	case InversionDistance:
		return "inversion_distance"
	case Zero:
		return "zero"
	default:
		return "none"
	}
}

// Func estimates the distance from b to gm's goal.
type Func func(b board.Board, gm *goalmodel.GoalModel) int

// Select maps a Kind to its Func. None fails with HeuristicNotSet.
func Select(k Kind) (Func, error) {
	switch k {
	case Manhattan:
		return ManhattanDistance, nil
	case Hamming:
		return HammingDistance, nil
	case LinearConflict:
		return LinearConflictDistance, nil
	case InversionDistance:
		return InversionDistanceValue, nil
	case Zero:
		return ZeroDistance, nil
	default:
		return nil, fmt.Errorf("%w: kind %v", errs.ErrHeuristicNotSet, k)
	}
}

// ZeroDistance is the constant-0 heuristic; A* with it behaves as
// uniform-cost search.
func ZeroDistance(board.Board, *goalmodel.GoalModel) int { return 0 }

// HammingDistance counts non-blank tiles not at their goal position.
func HammingDistance(b board.Board, gm *goalmodel.GoalModel) int {
	n := b.Size()
	count := 0
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			pos := board.Position{X: x, Y: y}
			v, _ := b.At(pos)
			if v == 0 {
				continue
			}
			goalPos, _ := gm.GoalPosition(v)
			if goalPos != pos {
				count++
			}
		}
	}
	return count
}

// ManhattanDistance sums, over non-blank tiles, the taxicab distance from
// their current position to their goal position. The blank contributes 0.
func ManhattanDistance(b board.Board, gm *goalmodel.GoalModel) int {
	n := b.Size()
	total := 0
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			pos := board.Position{X: x, Y: y}
			v, _ := b.At(pos)
			if v == 0 {
				continue
			}
			goalPos, _ := gm.GoalPosition(v)
			total += abs(goalPos.X-pos.X) + abs(goalPos.Y-pos.Y)
		}
	}
	return total
}

// LinearConflictDistance is Manhattan distance plus 2 per linear conflict:
// a pair of non-blank tiles sharing a row (resp. column) whose goal
// positions are both in that row (resp. column), in an order inverted
// relative to their current order. Each conflict forces at least two
// extra moves beyond Manhattan distance.
func LinearConflictDistance(b board.Board, gm *goalmodel.GoalModel) int {
	n := b.Size()
	total := ManhattanDistance(b, gm)
	total += 2 * countRowConflicts(b, gm, n)
	total += 2 * countColumnConflicts(b, gm, n)
	return total
}

func countRowConflicts(b board.Board, gm *goalmodel.GoalModel, n int) int {
	conflicts := 0
	for y := 0; y < n; y++ {
		var values, goalCols []int
		for x := 0; x < n; x++ {
			pos := board.Position{X: x, Y: y}
			if !gm.IsInGoalRow(b, pos) {
				continue
			}
			v, _ := b.At(pos)
			goalPos, _ := gm.GoalPosition(v)
			values = append(values, v)
			goalCols = append(goalCols, goalPos.X)
		}
		conflicts += countInversionPairs(goalCols)
	}
	return conflicts
}

func countColumnConflicts(b board.Board, gm *goalmodel.GoalModel, n int) int {
	conflicts := 0
	for x := 0; x < n; x++ {
		var goalRows []int
		for y := 0; y < n; y++ {
			pos := board.Position{X: x, Y: y}
			if !gm.IsInGoalColumn(b, pos) {
				continue
			}
			v, _ := b.At(pos)
			goalPos, _ := gm.GoalPosition(v)
			goalRows = append(goalRows, goalPos.Y)
		}
		conflicts += countInversionPairs(goalRows)
	}
	return conflicts
}

// countInversionPairs counts pairs (i, j), i < j, with ordered[i] >
// ordered[j]. ordered lists goal coordinates in current-position order, so
// an inversion here is exactly a pair whose goal order is swapped relative
// to their current order.
func countInversionPairs(ordered []int) int {
	count := 0
	for i := 0; i < len(ordered); i++ {
		for j := i + 1; j < len(ordered); j++ {
			if ordered[i] > ordered[j] {
				count++
			}
		}
	}
	return count
}

// InversionDistanceValue sums a horizontal and a vertical inversion-based
// lower bound (Michael Kim's puzzle heuristic). Admissible.
func InversionDistanceValue(b board.Board, gm *goalmodel.GoalModel) int {
	n := b.Size()

	horizontalSeq := make([]int, 0, n*n-1)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			v, _ := b.At(board.Position{X: x, Y: y})
			if v == 0 {
				continue
			}
			idx, _ := gm.ArrangementIndex(v)
			horizontalSeq = append(horizontalSeq, idx)
		}
	}

	columnMajorIndex := columnMajorArrangementIndex(gm)
	verticalSeq := make([]int, 0, n*n-1)
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			v, _ := b.At(board.Position{X: x, Y: y})
			if v == 0 {
				continue
			}
			verticalSeq = append(verticalSeq, columnMajorIndex[v])
		}
	}

	return reduceInversions(countInversionPairs(horizontalSeq), n) +
		reduceInversions(countInversionPairs(verticalSeq), n)
}

// columnMajorArrangementIndex ranks each non-blank value by the order its
// goal position is visited when the goal board is scanned column-major
// (column outer, row inner). This is distinct from GoalModel's row-major
// ArrangementIndex and is only meaningful to the vertical inversion count.
func columnMajorArrangementIndex(gm *goalmodel.GoalModel) map[int]int {
	n := gm.Size()
	goal := gm.GoalBoard()
	idx := make(map[int]int, n*n-1)
	rank := 0
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			v, _ := goal.At(board.Position{X: x, Y: y})
			if v == 0 {
				continue
			}
			rank++
			idx[v] = rank
		}
	}
	return idx
}

// reduceInversions folds a raw inversion count against descending odd
// denominators starting at n-1: accumulate ⌊r/m⌋, take r mod m, and step
// m down by 2 while m is at least 1. An odd n-1 finishes with m=1; an even
// n-1 stops after m=2.
func reduceInversions(inversions, n int) int {
	total := 0
	r := inversions
	for m := n - 1; m >= 1; m -= 2 {
		total += r / m
		r = r % m
	}
	return total
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
