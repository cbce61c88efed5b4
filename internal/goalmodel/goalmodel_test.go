package goalmodel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shigurex/n-puzzle/internal/board"
	"github.com/Shigurex/n-puzzle/internal/goalmodel"
)

func TestSpiralGoalFor3x3(t *testing.T) {
	gm, err := goalmodel.New(3)
	require.NoError(t, err)

	want := "1 2 3\n8 0 4\n7 6 5\n"
	assert.Equal(t, want, gm.GoalBoard().Display())
}

func TestGoalPositionAndArrangementIndexBijection(t *testing.T) {
	gm, err := goalmodel.New(3)
	require.NoError(t, err)

	seenRanks := make(map[int]bool)
	for v := 1; v <= 8; v++ {
		pos, ok := gm.GoalPosition(v)
		require.True(t, ok)
		got, err := gm.GoalBoard().At(pos)
		require.NoError(t, err)
		assert.Equal(t, v, got)

		rank, ok := gm.ArrangementIndex(v)
		require.True(t, ok)
		assert.False(t, seenRanks[rank], "arrangement index must be a bijection onto 1..N²-1")
		seenRanks[rank] = true
		assert.GreaterOrEqual(t, rank, 1)
		assert.LessOrEqual(t, rank, 8)
	}
}

func TestRelabelingGoalBoardYieldsIdentity(t *testing.T) {
	gm, err := goalmodel.New(4)
	require.NoError(t, err)

	goal := gm.GoalBoard()
	rank := 0
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			v, err := goal.At(board.Position{X: x, Y: y})
			require.NoError(t, err)
			if v == 0 {
				continue
			}
			rank++
			idx, ok := gm.ArrangementIndex(v)
			require.True(t, ok)
			assert.Equal(t, rank, idx)
		}
	}
}

func TestGoalRowColumnPredicates(t *testing.T) {
	gm, err := goalmodel.New(3)
	require.NoError(t, err)

	b, err := board.New(3, []int{1, 2, 3, 8, 0, 4, 7, 6, 5})
	require.NoError(t, err)

	assert.True(t, gm.IsInGoalRow(b, board.Position{X: 0, Y: 0}))
	assert.True(t, gm.IsInGoalColumn(b, board.Position{X: 0, Y: 0}))
	assert.False(t, gm.IsInGoalRow(b, board.Position{X: 1, Y: 1}), "blank never satisfies the predicate")

	shuffled, err := board.New(3, []int{7, 2, 3, 8, 0, 4, 1, 6, 5})
	require.NoError(t, err)
	assert.False(t, gm.IsInGoalRow(shuffled, board.Position{X: 0, Y: 0}), "value 7's goal row is 2, not the current row 0")
}
