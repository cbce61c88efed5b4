// Package board implements the immutable-by-value sliding-puzzle state: an
// N×N grid of cell values, the cached blank coordinate, move application,
// neighbour enumeration, and structural hashing.
package board

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"

	"github.com/Shigurex/n-puzzle/internal/errs"
)

// Position is a zero-based (x, y) coordinate; x indexes columns, y indexes
// rows. 0 ≤ x, y < N.
type Position struct {
	X, Y int
}

// Move is one of the four directions the blank tile can travel.
type Move int

const (
	Up Move = iota
	Down
	Left
	Right
)

// Order is the fixed enumeration order that determines tie-breaking among
// equal-f successors in the frontier.
var Order = [4]Move{Up, Down, Left, Right}

func (m Move) String() string {
	switch m {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

func (m Move) delta() (dx, dy int) {
	switch m {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

// Board is an N×N grid of values in [0, N²), with 0 denoting the blank.
// Zero value is not usable; construct with New.
type Board struct {
	n     int
	cells []int // row-major, length n*n
	blank Position
}

// New builds a Board from row-major cell values, validating invariants
// (i) exactly one zero, (ii) every value in [0, n²) appears exactly once.
func New(n int, values []int) (Board, error) {
	if n < 2 {
		return Board{}, fmt.Errorf("%w: size %d < 2", errs.ErrMalformedBoard, n)
	}
	if len(values) != n*n {
		return Board{}, fmt.Errorf("%w: expected %d values, got %d", errs.ErrMalformedBoard, n*n, len(values))
	}
	seen := make([]bool, n*n)
	blankIdx := -1
	for i, v := range values {
		if v < 0 || v >= n*n {
			return Board{}, fmt.Errorf("%w: value %d out of range [0,%d)", errs.ErrMalformedBoard, v, n*n)
		}
		if seen[v] {
			return Board{}, fmt.Errorf("%w: duplicate value %d", errs.ErrMalformedBoard, v)
		}
		seen[v] = true
		if v == 0 {
			blankIdx = i
		}
	}
	if blankIdx == -1 {
		return Board{}, fmt.Errorf("%w: no blank cell", errs.ErrMalformedBoard)
	}
	cells := make([]int, len(values))
	copy(cells, values)
	return Board{
		n:     n,
		cells: cells,
		blank: Position{X: blankIdx % n, Y: blankIdx / n},
	}, nil
}

// Size returns N.
func (b Board) Size() int { return b.n }

// Blank returns the cached blank-cell coordinate (invariant iii).
func (b Board) Blank() Position { return b.blank }

func (b Board) index(pos Position) (int, error) {
	if pos.X < 0 || pos.X >= b.n || pos.Y < 0 || pos.Y >= b.n {
		return 0, fmt.Errorf("%w: position %+v outside [0,%d)", errs.ErrOutOfBounds, pos, b.n)
	}
	return pos.Y*b.n + pos.X, nil
}

// At returns the value at pos.
func (b Board) At(pos Position) (int, error) {
	i, err := b.index(pos)
	if err != nil {
		return 0, err
	}
	return b.cells[i], nil
}

// Set returns a new Board with value placed at pos. Fails with
// DuplicateValue if value already occupies a different cell.
func (b Board) Set(pos Position, value int) (Board, error) {
	i, err := b.index(pos)
	if err != nil {
		return Board{}, err
	}
	if value < 0 || value >= b.n*b.n {
		return Board{}, fmt.Errorf("%w: value %d out of range", errs.ErrOutOfBounds, value)
	}
	for j, existing := range b.cells {
		if existing == value && j != i {
			return Board{}, fmt.Errorf("%w: value %d already at index %d", errs.ErrDuplicateValue, value, j)
		}
	}
	out := b.clone()
	out.cells[i] = value
	if value == 0 {
		out.blank = pos
	}
	return out, nil
}

// Swap returns a new Board with the values at posA and posB exchanged,
// keeping the blank-coordinate cache consistent.
func (b Board) Swap(posA, posB Position) (Board, error) {
	ia, err := b.index(posA)
	if err != nil {
		return Board{}, err
	}
	ib, err := b.index(posB)
	if err != nil {
		return Board{}, err
	}
	out := b.clone()
	out.cells[ia], out.cells[ib] = out.cells[ib], out.cells[ia]
	switch b.blank {
	case posA:
		out.blank = posB
	case posB:
		out.blank = posA
	}
	return out, nil
}

func (b Board) clone() Board {
	cells := make([]int, len(b.cells))
	copy(cells, b.cells)
	return Board{n: b.n, cells: cells, blank: b.blank}
}

// MoveBlank applies move, swapping the blank with its neighbour in that
// direction. Fails with IllegalMove when the blank sits on the
// corresponding border.
func (b Board) MoveBlank(m Move) (Board, error) {
	dx, dy := m.delta()
	target := Position{X: b.blank.X + dx, Y: b.blank.Y + dy}
	if target.X < 0 || target.X >= b.n || target.Y < 0 || target.Y >= b.n {
		return Board{}, fmt.Errorf("%w: blank at %+v cannot move %s", errs.ErrIllegalMove, b.blank, m)
	}
	return b.Swap(b.blank, target)
}

// Neighbour is a legal successor board paired with the move that produced
// it.
type Neighbour struct {
	Move  Move
	Board Board
}

// Neighbours yields, in the fixed Order {Up, Down, Left, Right}, the
// successor boards for each legal direction; illegal directions are
// skipped. This order determines tie-breaking among equal-f successors.
func (b Board) Neighbours() []Neighbour {
	out := make([]Neighbour, 0, 4)
	for _, m := range Order {
		nb, err := b.MoveBlank(m)
		if err != nil {
			continue
		}
		out = append(out, Neighbour{Move: m, Board: nb})
	}
	return out
}

// Equal reports structural equality: same size and same cell values.
func (b Board) Equal(other Board) bool {
	if b.n != other.n {
		return false
	}
	for i, v := range b.cells {
		if other.cells[i] != v {
			return false
		}
	}
	return true
}

// Hash returns a stable structural hash over size and cell values, usable
// as a map key via Key.
func (b Board) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte{byte(b.n)})
	buf := make([]byte, 0, 8)
	for _, v := range b.cells {
		buf = strconv.AppendInt(buf[:0], int64(v), 10)
		h.Write(buf)
		h.Write([]byte{';'})
	}
	return h.Sum64()
}

// Key returns a comparable value suitable as a Go map key, since Board
// itself holds a slice and cannot be compared or hashed by the language
// directly.
func (b Board) Key() string {
	var sb strings.Builder
	sb.Grow(len(b.cells) * 3)
	for _, v := range b.cells {
		sb.WriteString(strconv.Itoa(v))
		sb.WriteByte(',')
	}
	return sb.String()
}

// Values returns a copy of the row-major cell values.
func (b Board) Values() []int {
	out := make([]int, len(b.cells))
	copy(out, b.cells)
	return out
}

// Display renders the board as rows separated by newlines, values
// separated by single spaces, with a trailing newline on each row.
func (b Board) Display() string {
	var sb strings.Builder
	for y := 0; y < b.n; y++ {
		for x := 0; x < b.n; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			v, _ := b.At(Position{X: x, Y: y})
			sb.WriteString(strconv.Itoa(v))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// String satisfies fmt.Stringer with the same rendering as Display.
func (b Board) String() string {
	return b.Display()
}
