package breach_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/breakwall/breach"
	"github.com/katalvlaran/breakwall/grid"
	"github.com/katalvlaran/breakwall/mazegen"
)

// fixture3x3 is the reference maze: breaching either middle-column wall
// joins the corners at 5 steps, the same length as the floor-only detour.
var fixture3x3 = [][]int{
	{0, 1, 0},
	{0, 1, 0},
	{0, 0, 0},
}

// TestSolve_InvalidMaze verifies that grid construction errors propagate
// unchanged through Solve.
func TestSolve_InvalidMaze(t *testing.T) {
	_, err := breach.Solve([][]int{})
	assert.ErrorIs(t, err, grid.ErrEmptyGrid, "empty maze must surface ErrEmptyGrid")

	_, err = breach.Solve([][]int{{}})
	assert.ErrorIs(t, err, grid.ErrEmptyGrid, "zero-column maze must surface ErrEmptyGrid")

	_, err = breach.Solve([][]int{{0, 1}, {0}})
	assert.ErrorIs(t, err, grid.ErrRagged, "ragged rows must surface ErrRagged")
}

// TestSolve_BadOption ensures a negative worker count is rejected before
// any work happens.
func TestSolve_BadOption(t *testing.T) {
	_, err := breach.Solve(fixture3x3, breach.WithParallel(-2))
	assert.ErrorIs(t, err, breach.ErrOptionViolation, "negative workers must error")
}

// TestSolve_Fixture pins the hand-computed answer for the reference maze:
// both middle walls score 5, and row-major tie-breaking picks (0,1).
func TestSolve_Fixture(t *testing.T) {
	res, err := breach.Solve(fixture3x3)
	require.NoError(t, err)
	assert.Equal(t, 5, res.Steps, "manual BFS gives 1+3+1 through (0,1) and 2+2+1 through (1,1)")
	assert.Equal(t, grid.Position{Row: 0, Col: 1}, res.Breach, "first minimal wall in row-major order wins")
	assert.False(t, res.Direct)
}

// TestSolve_FullWallColumn covers corners separated by one full wall
// column: no direct route exists, every breach scores 5.
func TestSolve_FullWallColumn(t *testing.T) {
	maze := [][]int{
		{0, 1, 0},
		{0, 1, 0},
		{0, 1, 0},
	}
	res, err := breach.Solve(maze)
	require.NoError(t, err)
	assert.Equal(t, 5, res.Steps)
	assert.Equal(t, grid.Position{Row: 0, Col: 1}, res.Breach)

	// Direct-path mode must fall back to the breach: there is no
	// breach-free route to prefer.
	res, err = breach.Solve(maze, breach.WithDirectPath())
	require.NoError(t, err)
	assert.Equal(t, 5, res.Steps)
	assert.False(t, res.Direct)
}

// TestSolve_NoWalls asserts the faithful behavior: a maze with a direct
// floor route but zero wall cells has no one-breach solution by default,
// and WithDirectPath opts into the floor-only answer.
func TestSolve_NoWalls(t *testing.T) {
	maze := [][]int{
		{0, 0},
		{0, 0},
	}
	_, err := breach.Solve(maze)
	assert.ErrorIs(t, err, breach.ErrNoSolution, "no wall to breach means no solution by default")

	res, err := breach.Solve(maze, breach.WithDirectPath())
	require.NoError(t, err)
	assert.Equal(t, 3, res.Steps, "corner, one side cell, corner")
	assert.True(t, res.Direct)
}

// TestSolve_ThickSeparation covers corners split by a two-cell-thick wall:
// every wall cell touches only one region, so no breach can join them.
func TestSolve_ThickSeparation(t *testing.T) {
	maze := [][]int{
		{0, 1, 1, 0},
		{0, 1, 1, 0},
		{0, 1, 1, 0},
	}
	_, err := breach.Solve(maze)
	assert.ErrorIs(t, err, breach.ErrNoSolution)

	// Direct-path mode cannot help either: the regions stay disjoint.
	_, err = breach.Solve(maze, breach.WithDirectPath())
	assert.ErrorIs(t, err, breach.ErrNoSolution)
}

// TestSolve_SingleTile pins the degenerate 1×1 conventions explicitly.
func TestSolve_SingleTile(t *testing.T) {
	// Single floor cell: nothing to breach by default; with direct-path
	// mode the origin's own 1-based step count is the answer.
	_, err := breach.Solve([][]int{{0}})
	assert.ErrorIs(t, err, breach.ErrNoSolution)

	res, err := breach.Solve([][]int{{0}}, breach.WithDirectPath())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Steps, "start equals end; standing on it is step 1")
	assert.True(t, res.Direct)

	// Single wall cell: no floor neighbors on either side, and the
	// direct check refuses wall corners.
	_, err = breach.Solve([][]int{{1}})
	assert.ErrorIs(t, err, breach.ErrNoSolution)
	_, err = breach.Solve([][]int{{1}}, breach.WithDirectPath())
	assert.ErrorIs(t, err, breach.ErrNoSolution)
}

// TestSolve_BreachBeatsDirect uses a maze whose best breach (7 steps)
// undercuts the floor-only detour (11 steps).
func TestSolve_BreachBeatsDirect(t *testing.T) {
	maze := [][]int{
		{0, 1, 0, 0, 0},
		{0, 1, 0, 1, 0},
		{0, 0, 0, 1, 0},
	}
	res, err := breach.Solve(maze, breach.WithDirectPath())
	require.NoError(t, err)
	assert.Equal(t, 7, res.Steps, "through (0,1): 1 + 5 + 1")
	assert.Equal(t, grid.Position{Row: 0, Col: 1}, res.Breach)
	assert.False(t, res.Direct, "shorter breach must beat the direct route")
}

// TestSolve_DirectWinsTie verifies the tie rule: the reference maze's
// direct route and best breach both score 5, and direct-path mode prefers
// the route that breaks nothing.
func TestSolve_DirectWinsTie(t *testing.T) {
	res, err := breach.Solve(fixture3x3, breach.WithDirectPath())
	require.NoError(t, err)
	assert.Equal(t, 5, res.Steps)
	assert.True(t, res.Direct)
}

// rotate180 flips a maze in both axes, which swaps the roles of the two
// solve corners.
func rotate180(cells [][]int) [][]int {
	h, w := len(cells), len(cells[0])
	out := make([][]int, h)
	for r := 0; r < h; r++ {
		out[r] = make([]int, w)
		for c := 0; c < w; c++ {
			out[r][c] = cells[h-1-r][w-1-c]
		}
	}

	return out
}

// TestSolve_CornerSwapSymmetry asserts that exchanging start and end
// (via 180° rotation) never changes the step count.
func TestSolve_CornerSwapSymmetry(t *testing.T) {
	mazes := [][][]int{
		fixture3x3,
		{
			{0, 1, 0, 0, 0},
			{0, 1, 0, 1, 0},
			{0, 0, 0, 1, 0},
		},
		{
			{0, 0, 1, 0},
			{1, 0, 1, 0},
			{0, 0, 1, 0},
			{0, 1, 1, 0},
			{0, 0, 0, 0},
		},
	}
	for _, maze := range mazes {
		fwd, errFwd := breach.Steps(maze)
		rev, errRev := breach.Steps(rotate180(maze))
		require.NoError(t, errFwd)
		require.NoError(t, errRev)
		assert.Equal(t, fwd, rev, "rotating the maze must not change the answer")
	}
}

// TestSolve_Reproducible runs the same solve repeatedly and demands
// identical results every time.
func TestSolve_Reproducible(t *testing.T) {
	first, err := breach.Solve(fixture3x3)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		res, err := breach.Solve(fixture3x3)
		require.NoError(t, err)
		assert.Equal(t, first, res, "solve %d diverged", i)
	}
}

// TestSolve_ParallelMatchesSequential compares full Results (steps AND
// tie-broken breach cell) across worker counts on generated mazes.
func TestSolve_ParallelMatchesSequential(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		cells, err := mazegen.Generate(12, 9,
			mazegen.WithSeed(seed),
			mazegen.WithExtraOpenings(0.15),
		)
		require.NoError(t, err)

		seq, seqErr := breach.Solve(cells)
		for _, workers := range []int{2, 4, 8} {
			par, parErr := breach.Solve(cells, breach.WithParallel(workers))
			if seqErr != nil {
				assert.ErrorIs(t, parErr, breach.ErrNoSolution, "seed %d workers %d", seed, workers)

				continue
			}
			require.NoError(t, parErr, "seed %d workers %d", seed, workers)
			assert.Equal(t, seq, par, "seed %d workers %d", seed, workers)
		}
	}
}

// TestSolve_Cancellation verifies a cancelled context aborts the solve.
func TestSolve_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate
	_, err := breach.Solve(fixture3x3, breach.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestSteps covers the scalar wrapper in both outcomes.
func TestSteps(t *testing.T) {
	steps, err := breach.Steps(fixture3x3)
	require.NoError(t, err)
	assert.Equal(t, 5, steps)

	_, err = breach.Steps([][]int{{0}})
	assert.ErrorIs(t, err, breach.ErrNoSolution)
}
