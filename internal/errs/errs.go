// Package errs declares the error kinds propagated out of the core search
// engine. None of them are recovered internally; they terminate the
// current operation and are returned to the caller.
package errs

import "errors"

// Sentinel kinds, matched with errors.Is against wrapped errors returned
// by the core packages.
var (
	ErrOutOfBounds    = errors.New("out of bounds")
	ErrDuplicateValue = errors.New("duplicate value")
	ErrIllegalMove    = errors.New("illegal move")
	ErrMalformedBoard = errors.New("malformed board")
	ErrHeuristicNotSet = errors.New("heuristic not set")
	ErrNoSolution     = errors.New("no solution")
	ErrTimeout        = errors.New("search timeout")
	ErrInvalidOption  = errors.New("invalid option")
)
