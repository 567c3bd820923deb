// Package breach finds the minimum corner-to-corner step count of a binary
// maze when exactly one wall cell may be converted to floor.
//
// Solve runs two independent frontier expansions (one per corner), then
// joins their distance maps through every wall cell via Evaluate and keeps
// the global minimum.
package breach

import (
	"sync"

	"github.com/katalvlaran/breakwall/frontier"
	"github.com/katalvlaran/breakwall/grid"
)

// candidate pairs a route length with the row-major index of its wall,
// so parallel shards merge deterministically.
type candidate struct {
	steps int
	idx   int
}

// Solve computes the best one-breach route for the given maze rows
// (0 = floor, non-zero = wall), applying any number of functional Options.
//
// Grid construction errors (grid.ErrEmptyGrid, grid.ErrRagged) propagate
// unchanged. Returns ErrOptionViolation for bad options, a context error
// on cancellation, and ErrNoSolution when no wall cell joins the two
// corners' reachable regions — which is also the outcome for mazes with no
// wall cells at all, unless WithDirectPath is set.
//
// Ties between equally short breach candidates resolve to the wall that
// comes first in row-major order, so results are fully deterministic.
// Cost: O(H×W) time and memory regardless of worker count.
func Solve(cells [][]int, opts ...Option) (Result, error) {
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}

	g, err := grid.New(cells)
	if err != nil {
		return Result{}, err
	}

	startMap, endMap, err := cornerMaps(g, o)
	if err != nil {
		return Result{}, err
	}

	walls := g.Walls()
	best, found := scanWalls(g, walls, startMap, endMap, o.Workers)

	if o.DirectPath {
		if steps, ok := directSteps(g, startMap); ok && (!found || steps <= best.steps) {
			return Result{Steps: steps, Direct: true}, nil
		}
	}
	if !found {
		return Result{}, ErrNoSolution
	}

	return Result{Steps: best.steps, Breach: walls[best.idx]}, nil
}

// Steps returns only the minimal step count for the given maze rows.
// It is the scalar entry point; see Solve for the full result and errors.
func Steps(cells [][]int, opts ...Option) (int, error) {
	res, err := Solve(cells, opts...)
	if err != nil {
		return 0, err
	}

	return res.Steps, nil
}

// cornerMaps runs the two frontier expansions, concurrently when Workers
// permits. The runs share only the immutable grid, so no locking is needed.
func cornerMaps(g *grid.Grid, o Options) (startMap, endMap frontier.DistanceMap, err error) {
	if o.Workers <= 1 {
		if startMap, err = frontier.Distances(g, g.Start(), frontier.WithContext(o.Ctx)); err != nil {
			return nil, nil, err
		}
		if endMap, err = frontier.Distances(g, g.End(), frontier.WithContext(o.Ctx)); err != nil {
			return nil, nil, err
		}

		return startMap, endMap, nil
	}

	var wg sync.WaitGroup
	var startErr, endErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		startMap, startErr = frontier.Distances(g, g.Start(), frontier.WithContext(o.Ctx))
	}()
	go func() {
		defer wg.Done()
		endMap, endErr = frontier.Distances(g, g.End(), frontier.WithContext(o.Ctx))
	}()
	wg.Wait()
	if startErr != nil {
		return nil, nil, startErr
	}
	if endErr != nil {
		return nil, nil, endErr
	}

	return startMap, endMap, nil
}

// scanWalls evaluates every wall cell and returns the minimal candidate.
// With workers > 1 the scan is sharded by stride; every shard reads only
// the completed distance maps, so the merge is the sole synchronization
// point.
func scanWalls(g *grid.Grid, walls []grid.Position, startMap, endMap frontier.DistanceMap, workers int) (candidate, bool) {
	if workers <= 1 || len(walls) < workers {
		return scanRange(g, walls, startMap, endMap, 0, 1)
	}

	results := make([]candidate, workers)
	founds := make([]bool, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for k := 0; k < workers; k++ {
		go func(k int) {
			defer wg.Done()
			results[k], founds[k] = scanRange(g, walls, startMap, endMap, k, workers)
		}(k)
	}
	wg.Wait()

	best, found := candidate{}, false
	for k := 0; k < workers; k++ {
		if !founds[k] {
			continue
		}
		if !found || results[k].steps < best.steps ||
			(results[k].steps == best.steps && results[k].idx < best.idx) {
			best, found = results[k], true
		}
	}

	return best, found
}

// scanRange evaluates walls[first], walls[first+stride], … and keeps the
// shard's minimum; within a shard the lowest index wins ties because the
// scan runs in increasing index order and only strictly better candidates
// replace the current best.
func scanRange(g *grid.Grid, walls []grid.Position, startMap, endMap frontier.DistanceMap, first, stride int) (candidate, bool) {
	best, found := candidate{}, false
	for i := first; i < len(walls); i += stride {
		steps, ok := Evaluate(g, startMap, endMap, walls[i])
		if !ok {
			continue
		}
		if !found || steps < best.steps {
			best, found = candidate{steps: steps, idx: i}, true
		}
	}

	return best, found
}

// directSteps reports the breach-free corner-to-corner step count. Wall
// corners are refused: a frontier map seeds its origin even on a wall, and
// that entry must not masquerade as a walkable route.
func directSteps(g *grid.Grid, startMap frontier.DistanceMap) (int, bool) {
	if !g.IsFloor(g.Start()) || !g.IsFloor(g.End()) {
		return 0, false
	}

	return startMap.Steps(g.End())
}
