// Package report defines the immutable aggregate a successful search
// produces: the move path and the search-effort metrics.
package report

import (
	"time"

	"github.com/Shigurex/n-puzzle/internal/board"
)

// Report is produced exactly once per successful search.
type Report struct {
	Path           []board.Move
	Expansions     int     // Frontier.AppendCount() at the moment the goal was popped
	PeakMembers    int     // max observed |Frontier| + |Explored| during the search
	ElapsedSeconds float64
}

// New builds a Report from the raw metrics.
func New(path []board.Move, expansions, peakMembers int, elapsed time.Duration) Report {
	return Report{
		Path:           path,
		Expansions:     expansions,
		PeakMembers:    peakMembers,
		ElapsedSeconds: elapsed.Seconds(),
	}
}

// Moves returns len(Path), the number of moves in the solution.
func (r Report) Moves() int { return len(r.Path) }
