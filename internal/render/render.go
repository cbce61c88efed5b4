// Package render formats a completed search as text for the CLI: a
// verbose mode that unfolds every move of the solution board-by-board,
// and a compact mode that lists just the move sequence. Move headers in
// verbose mode are colourised via github.com/fatih/color.
package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/Shigurex/n-puzzle/internal/board"
	"github.com/Shigurex/n-puzzle/internal/report"
)

var moveHeader = color.New(color.FgCyan, color.Bold)

// Summary renders the metrics common to both output modes: complexity in
// time (Expansions), complexity in size (PeakMembers), elapsed seconds,
// and move count.
func Summary(r report.Report) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Complexity in time: %d\n", r.Expansions)
	fmt.Fprintf(&sb, "Complexity in size: %d\n", r.PeakMembers)
	fmt.Fprintf(&sb, "Elapsed time: %.6f seconds\n", r.ElapsedSeconds)
	fmt.Fprintf(&sb, "Number of moves: %d\n", r.Moves())
	return sb.String()
}

// Verbose renders the summary followed by the start board and then, for
// each move, a "↓ <Move>" header and the board that results from applying
// it — the full unfolding of the solution path.
func Verbose(start board.Board, r report.Report) (string, error) {
	var sb strings.Builder
	sb.WriteString(Summary(r))
	sb.WriteString(start.Display())

	cur := start
	for _, m := range r.Path {
		next, err := cur.MoveBlank(m)
		if err != nil {
			return "", fmt.Errorf("render: replaying move %s: %w", m, err)
		}
		sb.WriteString(moveHeader.Sprintf("↓ %s\n", m))
		sb.WriteString(next.Display())
		cur = next
	}
	return sb.String(), nil
}

// Compact renders the summary, the start board, and a single "Moves: …"
// line listing the path in order.
func Compact(start board.Board, r report.Report) string {
	var sb strings.Builder
	sb.WriteString(Summary(r))
	sb.WriteString(start.Display())
	sb.WriteString("Moves: ")
	for _, m := range r.Path {
		sb.WriteString(m.String())
		sb.WriteByte(' ')
	}
	sb.WriteByte('\n')
	return sb.String()
}

// Result renders either Verbose or Compact depending on verbose.
func Result(start board.Board, r report.Report, verbose bool) (string, error) {
	if verbose {
		return Verbose(start, r)
	}
	return Compact(start, r), nil
}
