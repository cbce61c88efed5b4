package frontier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shigurex/n-puzzle/internal/frontier"
)

func TestPopReturnsMinimumF(t *testing.T) {
	f := frontier.New()
	f.Insert(&frontier.Node{G: 10, H: 0})
	f.Insert(&frontier.Node{G: 5, H: 0})
	f.Insert(&frontier.Node{G: 15, H: 0})
	f.Insert(&frontier.Node{G: 1, H: 0})

	expected := []int{1, 5, 10, 15}
	for _, want := range expected {
		n, ok := f.Pop()
		require.True(t, ok)
		assert.Equal(t, want, n.F())
	}
	assert.Equal(t, 0, f.Size())
}

func TestPopEmptyReturnsFalse(t *testing.T) {
	f := frontier.New()
	_, ok := f.Pop()
	assert.False(t, ok)
}

func TestAppendCountAndPeakSize(t *testing.T) {
	f := frontier.New()
	for i := 0; i < 5; i++ {
		f.Insert(&frontier.Node{G: i})
	}
	assert.Equal(t, 5, f.AppendCount())
	assert.Equal(t, 5, f.PeakSize())

	f.Pop()
	f.Pop()
	assert.Equal(t, 3, f.Size())
	assert.Equal(t, 5, f.PeakSize(), "peak size must not decrease after pops")

	f.Insert(&frontier.Node{G: 99})
	assert.Equal(t, 6, f.AppendCount())
	assert.Equal(t, 5, f.PeakSize(), "peak size only grows past its previous max")
}

func TestPathReconstructionViaParentPointers(t *testing.T) {
	root := &frontier.Node{G: 0}
	child1 := &frontier.Node{Parent: root, Move: 0, G: 1}
	child2 := &frontier.Node{Parent: child1, Move: 3, G: 2}

	path := child2.Path()
	require.Len(t, path, 2)
	assert.Equal(t, 0, int(path[0]))
	assert.Equal(t, 3, int(path[1]))
}
