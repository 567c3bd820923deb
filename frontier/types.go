// Package frontier provides tunable options and error definitions
// for breadth-first distance maps over a grid.Grid.
package frontier

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/breakwall/grid"
)

// Sentinel errors for frontier execution.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("frontier: grid is nil")

	// ErrOriginOutOfBounds is returned when the origin lies outside the grid.
	ErrOriginOutOfBounds = errors.New("frontier: origin out of bounds")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("frontier: invalid option supplied")
)

// OriginStep is the step count assigned to the origin itself. Distances
// are 1-based: a cell N moves from the origin maps to N+1. Downstream
// breach arithmetic depends on this offset.
const OriginStep = 1

// DistanceMap maps each reached Position to its 1-based step count from
// the run's origin. Absence of a key means the cell was not reached;
// there is no "infinite" placeholder value.
type DistanceMap map[grid.Position]int

// Steps returns the step count for p and whether p was reached.
func (m DistanceMap) Steps(p grid.Position) (int, bool) {
	s, ok := m[p]

	return s, ok
}

// Reached reports whether p was reached from the origin.
func (m DistanceMap) Reached(p grid.Position) bool {
	_, ok := m[p]

	return ok
}

// Len returns the number of reached cells.
func (m DistanceMap) Len() int { return len(m) }

// Option configures a frontier run via functional arguments.
// If an Option is invalid (e.g. negative step limit), it is recorded
// internally and surfaced as ErrOptionViolation when Distances is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a frontier run.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxSteps, if > 0, stops expanding once the next ring would exceed
	// this step count. A value of 0 explicitly disables any limit.
	MaxSteps int

	// OnVisit is called for every cell as its ring is processed. If it
	// returns an error, the run aborts and propagates that error.
	OnVisit func(p grid.Position, steps int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no step limit (MaxSteps == 0)
//   - no-op OnVisit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxSteps: 0,
		OnVisit:  func(grid.Position, int) error { return nil },
		err:      nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxSteps stops the expansion at the given step count (inclusive).
//
//	n > 0: cells beyond step count n are not entered
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			// explicit "no limit"
			o.MaxSteps = 0
		default:
			o.MaxSteps = n
		}
	}
}

// WithOnVisit registers a callback to run per visited cell; returning an
// error from this callback stops the run.
func WithOnVisit(fn func(p grid.Position, steps int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
