// Package frontier computes breadth-first distance maps over a grid.Grid,
// assigning every floor cell reachable from a single origin its minimum
// 1-based step count.
//
// Expansion is level-ordered: the origin's ring carries step count 1, each
// following ring adds 1, and the first step count a cell receives is final.
package frontier

import (
	"fmt"

	"github.com/katalvlaran/breakwall/grid"
)

// walker encapsulates mutable state for one frontier run.
type walker struct {
	grid  *grid.Grid
	opts  Options
	dist  DistanceMap
	ring  []grid.Position
	steps int
}

// Distances runs a breadth-first expansion on g from origin, applying any
// number of functional Options, and returns the resulting DistanceMap.
//
// The origin is always recorded at step count OriginStep, even when it is
// a wall cell (the two solve corners are used as-is); expansion itself only
// enters floor cells. Returns ErrNilGrid or ErrOriginOutOfBounds for invalid
// input, ErrOptionViolation for bad options, a context error on
// cancellation, or any user-supplied hook error.
//
// Cost: O(H×W) time and memory — each floor cell is entered at most once,
// each of its 4 edges examined once.
func Distances(g *grid.Grid, origin grid.Position, opts ...Option) (DistanceMap, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.InBounds(origin) {
		return nil, fmt.Errorf("%w: %v", ErrOriginOutOfBounds, origin)
	}

	w := &walker{
		grid:  g,
		opts:  o,
		dist:  make(DistanceMap, g.Height()*g.Width()),
		ring:  make([]grid.Position, 0, g.Width()),
		steps: OriginStep,
	}
	// Seed the first ring with the origin
	w.dist[origin] = OriginStep
	w.ring = append(w.ring, origin)

	return w.dist, w.loop()
}

// loop processes one ring per iteration until no cells remain, an error
// occurs, or the context is cancelled.
func (w *walker) loop() error {
	for len(w.ring) > 0 {
		// cancellation check (once per ring)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		if err := w.visitRing(); err != nil {
			return err
		}
		w.advance()
	}

	return nil
}

// visitRing fires OnVisit for every cell in the current ring.
func (w *walker) visitRing() error {
	for _, p := range w.ring {
		if err := w.opts.OnVisit(p, w.steps); err != nil {
			return fmt.Errorf("frontier: OnVisit error at %v: %w", p, err)
		}
	}

	return nil
}

// advance builds the next ring from the current ring's unseen floor
// neighbors at steps+1, honoring MaxSteps. The first step count assigned
// to a cell is its minimum and is never overwritten.
func (w *walker) advance() {
	next := w.steps + 1
	if w.opts.MaxSteps > 0 && next > w.opts.MaxSteps {
		w.ring = w.ring[:0]

		return
	}

	nextRing := make([]grid.Position, 0, len(w.ring))
	for _, p := range w.ring {
		for _, n := range w.grid.Neighbors(p) {
			if !w.grid.IsFloor(n) {
				continue
			}
			// first time seen?
			if _, seen := w.dist[n]; seen {
				continue
			}
			w.dist[n] = next
			nextRing = append(nextRing, n)
		}
	}
	w.ring = nextRing
	w.steps = next
}
