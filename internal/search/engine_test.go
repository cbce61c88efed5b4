package search_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shigurex/n-puzzle/internal/board"
	"github.com/Shigurex/n-puzzle/internal/errs"
	"github.com/Shigurex/n-puzzle/internal/goalmodel"
	"github.com/Shigurex/n-puzzle/internal/heuristic"
	"github.com/Shigurex/n-puzzle/internal/search"
)

func mustGoal(t *testing.T, n int) *goalmodel.GoalModel {
	t.Helper()
	gm, err := goalmodel.New(n)
	require.NoError(t, err)
	return gm
}

func mustBoard(t *testing.T, n int, values []int) board.Board {
	t.Helper()
	b, err := board.New(n, values)
	require.NoError(t, err)
	return b
}

// One move from the goal: greedy/hamming finds it directly.
func TestGreedyHammingFindsSingleMoveSolution(t *testing.T) {
	gm := mustGoal(t, 3)
	start := mustBoard(t, 3, []int{1, 2, 3, 0, 8, 4, 7, 6, 5})

	e := search.New(gm)
	rep, err := e.Run(start, search.Options{Algorithm: search.Greedy, Heuristic: heuristic.Hamming})
	require.NoError(t, err)
	require.Equal(t, []board.Move{board.Right}, rep.Path)
}

// Two moves from the goal: greedy/hamming still finds a solution.
func TestGreedyHammingFindsTwoMoveSolution(t *testing.T) {
	gm := mustGoal(t, 3)
	start := mustBoard(t, 3, []int{0, 2, 3, 1, 8, 4, 7, 6, 5})

	e := search.New(gm)
	rep, err := e.Run(start, search.Options{Algorithm: search.Greedy, Heuristic: heuristic.Hamming})
	require.NoError(t, err)
	require.Len(t, rep.Path, 2)

	got := start
	for _, m := range rep.Path {
		next, err := got.MoveBlank(m)
		require.NoError(t, err)
		got = next
	}
	assert.True(t, got.Equal(gm.GoalBoard()))
}

// An unsolvable arrangement must surface as NoSolution rather than
// running forever. A board one transposition away from the goal is
// guaranteed odd parity, and therefore guaranteed unsolvable (see
// DESIGN.md for the parity argument).
func TestUnsolvableBoardYieldsNoSolution(t *testing.T) {
	gm := mustGoal(t, 3)
	goalValues := gm.GoalBoard().Values()
	goalValues[0], goalValues[1] = goalValues[1], goalValues[0] // one transposition: odd parity
	start := mustBoard(t, 3, goalValues)

	e := search.New(gm)
	_, err := e.Run(start, search.Options{Algorithm: search.AStar, Heuristic: heuristic.Manhattan})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrNoSolution))
}

func TestAStarFindsOptimalPathLength(t *testing.T) {
	gm := mustGoal(t, 3)
	start := mustBoard(t, 3, []int{0, 2, 3, 1, 8, 4, 7, 6, 5})

	e := search.New(gm)
	rep, err := e.Run(start, search.Options{Algorithm: search.AStar, Heuristic: heuristic.Manhattan})
	require.NoError(t, err)
	assert.Len(t, rep.Path, 2)
}

// A* with an admissible heuristic must match uniform-cost's optimal length:
// neither can find a shorter solution than the other, since both are
// optimal; A* simply explores less.
func TestAStarMatchesUniformCostOptimalLength(t *testing.T) {
	gm := mustGoal(t, 3)
	start := mustBoard(t, 3, []int{0, 2, 3, 1, 8, 4, 7, 6, 5})

	e := search.New(gm)
	astarRep, err := e.Run(start, search.Options{Algorithm: search.AStar, Heuristic: heuristic.LinearConflict})
	require.NoError(t, err)

	ucRep, err := e.Run(start, search.Options{Algorithm: search.UniformCost})
	require.NoError(t, err)

	assert.Equal(t, len(ucRep.Path), len(astarRep.Path))
	assert.LessOrEqual(t, astarRep.Expansions, ucRep.Expansions,
		"an admissible heuristic should never expand more nodes than uniform cost")
}

func TestGreedyOnGoalBoardIsImmediateSuccess(t *testing.T) {
	gm := mustGoal(t, 3)
	e := search.New(gm)
	rep, err := e.Run(gm.GoalBoard(), search.Options{Algorithm: search.Greedy, Heuristic: heuristic.Manhattan})
	require.NoError(t, err)
	assert.Empty(t, rep.Path)
}

func TestTimeoutIsReported(t *testing.T) {
	gm := mustGoal(t, 3)
	e := search.New(gm)
	goalValues := gm.GoalBoard().Values()
	goalValues[0], goalValues[1] = goalValues[1], goalValues[0] // unsolvable, so AStar would exhaust the reachable half
	start := mustBoard(t, 3, goalValues)

	_, err := e.Run(start, search.Options{
		Algorithm: search.AStar,
		Heuristic: heuristic.Manhattan,
		Timeout:   time.Nanosecond,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrTimeout))
}

func TestUniformCostIgnoresRequestedHeuristic(t *testing.T) {
	gm := mustGoal(t, 3)
	start := mustBoard(t, 3, []int{1, 2, 3, 0, 8, 4, 7, 6, 5})
	e := search.New(gm)

	// None would normally fail Select, but UniformCost must never consult
	// the requested heuristic at all.
	rep, err := e.Run(start, search.Options{Algorithm: search.UniformCost, Heuristic: heuristic.None})
	require.NoError(t, err)
	assert.Equal(t, []board.Move{board.Right}, rep.Path)
}

func TestAlgorithmStringer(t *testing.T) {
	assert.Equal(t, "astar", search.AStar.String())
	assert.Equal(t, "uniform_cost", search.UniformCost.String())
	assert.Equal(t, "greedy", search.Greedy.String())
}
