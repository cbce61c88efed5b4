// Package explored implements the search engine's closed set: the boards
// already expanded, pruning re-expansion during A*/uniform-cost search.
package explored

import "github.com/Shigurex/n-puzzle/internal/board"

// Explored is a set of boards that have been expanded.
type Explored struct {
	seen map[string]struct{}
}

// New returns an empty Explored set.
func New() *Explored {
	return &Explored{seen: make(map[string]struct{})}
}

// Insert records b as expanded.
func (e *Explored) Insert(b board.Board) {
	e.seen[b.Key()] = struct{}{}
}

// Contains reports whether b has already been expanded.
func (e *Explored) Contains(b board.Board) bool {
	_, ok := e.seen[b.Key()]
	return ok
}

// Size returns the number of distinct boards recorded.
func (e *Explored) Size() int { return len(e.seen) }
