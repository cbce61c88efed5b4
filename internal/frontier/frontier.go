// Package frontier implements the search engine's open set: a binary
// min-heap of search nodes ordered by ascending f-cost, built on
// container/heap, with parent-pointer path reconstruction instead of
// per-node path copies.
//
// The Frontier carries no mutex or condition variable: it is owned
// exclusively by the one search that is running, so there is no
// concurrent producer to guard against (see DESIGN.md).
package frontier

import (
	"container/heap"

	"github.com/Shigurex/n-puzzle/internal/board"
)

// Node is a search tree node: (board, parent pointer + move, g, h). f is
// derived as g+h. Equality/ordering for frontier purposes is by F() only;
// insertion order is not a tie-breaker.
type Node struct {
	Board  board.Board
	Parent *Node
	Move   board.Move
	G      int
	H      int

	index int // heap bookkeeping, managed by container/heap
}

// F returns the total estimated cost g+h.
func (n *Node) F() int { return n.G + n.H }

// Path reconstructs the sequence of moves from the start node to n by
// walking parent pointers and reversing.
func (n *Node) Path() []board.Move {
	var moves []board.Move
	for cur := n; cur.Parent != nil; cur = cur.Parent {
		moves = append(moves, cur.Move)
	}
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}
	return moves
}

type nodeHeap []*Node

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool { return h[i].F() < h[j].F() }

func (h nodeHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *nodeHeap) Push(x interface{}) {
	n := x.(*Node)
	n.index = len(*h)
	*h = append(*h, n)
}

func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*h = old[:n-1]
	return item
}

// Frontier is the best-first open set: a min-priority queue of search
// nodes keyed by f-cost, with counters for total inserts and the peak
// concurrent membership observed.
type Frontier struct {
	items       nodeHeap
	appendCount int
	peakSize    int
}

// New returns an empty Frontier.
func New() *Frontier {
	return &Frontier{}
}

// Insert adds node to the frontier, incrementing appendCount and updating
// peakSize.
func (f *Frontier) Insert(n *Node) {
	heap.Push(&f.items, n)
	f.appendCount++
	if len(f.items) > f.peakSize {
		f.peakSize = len(f.items)
	}
}

// Pop removes and returns the minimum-f node. Ties among equal-f nodes are
// broken arbitrarily but consistently by container/heap's sift order.
func (f *Frontier) Pop() (*Node, bool) {
	if len(f.items) == 0 {
		return nil, false
	}
	n := heap.Pop(&f.items).(*Node)
	return n, true
}

// Size returns the current membership count.
func (f *Frontier) Size() int { return len(f.items) }

// AppendCount returns the total number of nodes ever inserted.
func (f *Frontier) AppendCount() int { return f.appendCount }

// PeakSize returns the maximum concurrent membership observed so far.
func (f *Frontier) PeakSize() int { return f.peakSize }
