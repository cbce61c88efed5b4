// Package puzzleio parses the text puzzle file format: a leading size N,
// N² whitespace-separated values, and '#'-to-end-of-line comments. It
// strips comments line-by-line with bufio.Scanner, then tokenizes the
// joined text before parsing the integers.
package puzzleio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Shigurex/n-puzzle/internal/board"
	"github.com/Shigurex/n-puzzle/internal/errs"
)

// Parse reads a puzzle description from r and builds a Board. The format
// is a leading size token, followed by exactly size*size integer tokens,
// all whitespace-separated; anything from '#' to end of line is a
// comment and is discarded before tokenising.
func Parse(r io.Reader) (board.Board, error) {
	stripped, err := stripComments(r)
	if err != nil {
		return board.Board{}, err
	}

	fields := strings.Fields(stripped)
	if len(fields) == 0 {
		return board.Board{}, fmt.Errorf("%w: empty puzzle description", errs.ErrMalformedBoard)
	}

	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return board.Board{}, fmt.Errorf("%w: size token %q: %v", errs.ErrMalformedBoard, fields[0], err)
	}

	rest := fields[1:]
	if len(rest) != n*n {
		return board.Board{}, fmt.Errorf("%w: expected %d values for size %d, got %d", errs.ErrMalformedBoard, n*n, n, len(rest))
	}

	values := make([]int, len(rest))
	for i, tok := range rest {
		v, err := strconv.Atoi(tok)
		if err != nil {
			return board.Board{}, fmt.Errorf("%w: value %q at index %d: %v", errs.ErrMalformedBoard, tok, i, err)
		}
		values[i] = v
	}

	return board.New(n, values)
}

// stripComments returns r's contents with everything from the first '#'
// on each line to that line's end removed, lines rejoined with spaces.
func stripComments(r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)
	var lines []string
	for scanner.Scan() {
		line := scanner.Text()
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("puzzleio: reading input: %w", err)
	}
	return strings.Join(lines, " "), nil
}
