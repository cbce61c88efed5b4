// Package goalmodel builds the canonical spiral-filled goal arrangement for
// an N×N puzzle and the lookups the search engine derives from it: the
// value→goal-position map, the goal's row-major arrangement index (used by
// internal/solvability and internal/heuristic), and the goal-row/-column
// membership predicates.
package goalmodel

import (
	"fmt"

	"github.com/Shigurex/n-puzzle/internal/board"
)

type direction struct{ dx, dy int }

// clockwise turn order: Right, Down, Left, Up.
var spiralDirections = [4]direction{
	{dx: 1, dy: 0},
	{dx: 0, dy: 1},
	{dx: -1, dy: 0},
	{dx: 0, dy: -1},
}

// GoalModel is the precomputed, read-only goal arrangement for a given N.
// It may be shared across concurrently running searches.
type GoalModel struct {
	n                int
	goalBoard        board.Board
	valueToGoalPos   map[int]board.Position
	arrangementIndex map[int]int // value -> 1-based row-major rank, blank excluded
}

// New builds the spiral goal arrangement for size n.
func New(n int) (*GoalModel, error) {
	if n < 2 {
		return nil, fmt.Errorf("goalmodel: size %d < 2", n)
	}
	values := make([]int, n*n)
	filled := make([]bool, n*n)

	cur := board.Position{X: 0, Y: 0}
	filled[0] = true
	values[0] = 1
	dirIdx := 0

	for v := 2; v <= n*n-1; v++ {
		next := board.Position{X: cur.X + spiralDirections[dirIdx].dx, Y: cur.Y + spiralDirections[dirIdx].dy}
		if !inBounds(next, n) || filled[next.Y*n+next.X] {
			dirIdx = (dirIdx + 1) % 4
			next = board.Position{X: cur.X + spiralDirections[dirIdx].dx, Y: cur.Y + spiralDirections[dirIdx].dy}
		}
		cur = next
		idx := cur.Y*n + cur.X
		values[idx] = v
		filled[idx] = true
	}

	// the one remaining unfilled cell holds the blank.
	blankIdx := -1
	for i, f := range filled {
		if !f {
			blankIdx = i
			break
		}
	}
	values[blankIdx] = 0

	goalBoard, err := board.New(n, values)
	if err != nil {
		return nil, fmt.Errorf("goalmodel: building spiral board: %w", err)
	}

	gm := &GoalModel{
		n:                n,
		goalBoard:        goalBoard,
		valueToGoalPos:   make(map[int]board.Position, n*n-1),
		arrangementIndex: make(map[int]int, n*n-1),
	}

	rank := 0
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			v := values[y*n+x]
			if v == 0 {
				continue
			}
			pos := board.Position{X: x, Y: y}
			gm.valueToGoalPos[v] = pos
			rank++
			gm.arrangementIndex[v] = rank
		}
	}

	return gm, nil
}

func inBounds(p board.Position, n int) bool {
	return p.X >= 0 && p.X < n && p.Y >= 0 && p.Y < n
}

// Size returns N.
func (gm *GoalModel) Size() int { return gm.n }

// GoalBoard returns the canonical spiral-filled goal board.
func (gm *GoalModel) GoalBoard() board.Board { return gm.goalBoard }

// GoalPosition returns the position value occupies in the goal board.
// value must be non-zero.
func (gm *GoalModel) GoalPosition(value int) (board.Position, bool) {
	pos, ok := gm.valueToGoalPos[value]
	return pos, ok
}

// ArrangementIndex returns the 1-based rank of value when the goal board is
// scanned row-major, skipping the blank. Relabeling any board through this
// map turns the goal board into the identity permutation 1..N²-1, which is
// what internal/solvability and the inversion-distance heuristic rely on.
func (gm *GoalModel) ArrangementIndex(value int) (int, bool) {
	idx, ok := gm.arrangementIndex[value]
	return idx, ok
}

// IsInGoalRow reports whether the tile currently at pos on b has its goal
// position in the same row as pos. The blank never satisfies this.
func (gm *GoalModel) IsInGoalRow(b board.Board, pos board.Position) bool {
	v, err := b.At(pos)
	if err != nil || v == 0 {
		return false
	}
	goalPos, ok := gm.GoalPosition(v)
	return ok && goalPos.Y == pos.Y
}

// IsInGoalColumn reports whether the tile currently at pos on b has its
// goal position in the same column as pos. The blank never satisfies this.
func (gm *GoalModel) IsInGoalColumn(b board.Board, pos board.Position) bool {
	v, err := b.At(pos)
	if err != nil || v == 0 {
		return false
	}
	goalPos, ok := gm.GoalPosition(v)
	return ok && goalPos.X == pos.X
}
