// Package breach defines core types, options, and sentinel errors
// for the one-breach maze solver of github.com/katalvlaran/breakwall.
package breach

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/breakwall/grid"
)

// Sentinel errors for breach solving.
var (
	// ErrNoSolution indicates that no single wall cell joins the two
	// corners' reachable regions. This is a normal outcome for some mazes
	// (including mazes with no wall cells at all), not a crash condition.
	ErrNoSolution = errors.New("breach: no single-wall breach connects the corners")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("breach: invalid option supplied")
)

// Result describes the best route found by Solve.
type Result struct {
	// Steps is the minimal 1-based step count from the top-left corner to
	// the bottom-right corner. The count includes both corner cells and,
	// for breach routes, the converted wall cell.
	Steps int

	// Breach is the wall cell the winning route converts to floor.
	// Meaningful only when Direct is false.
	Breach grid.Position

	// Direct reports that the winning route breaks no wall at all. Only
	// possible under WithDirectPath.
	Direct bool
}

// Option configures Solve via functional arguments.
// If an Option is invalid (e.g. negative worker count), it is recorded
// internally and surfaced as ErrOptionViolation when Solve is invoked.
type Option func(*Options)

// Options holds parameters to customize a solve.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Workers, if > 1, runs the two corner expansions concurrently and
	// shards the wall scan across that many goroutines. 0 or 1 means
	// fully sequential.
	Workers int

	// DirectPath, if true, also considers the breach-free corner-to-corner
	// route and returns it when it is at least as short as every breach
	// candidate. Off by default: the classic behavior always routes
	// through exactly one converted wall.
	DirectPath bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - sequential execution (Workers == 0)
//   - breach-only routing (DirectPath == false).
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Workers:    0,
		DirectPath: false,
		err:        nil,
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

// WithParallel runs the two corner expansions concurrently and shards the
// wall scan across n goroutines.
//
//	n > 1: parallel with n workers
//	n == 0 or n == 1: explicit sequential execution
//	n < 0: invalid option → ErrOptionViolation
func WithParallel(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: worker count cannot be negative (%d)", ErrOptionViolation, n)

			return
		}
		o.Workers = n
	}
}

// WithDirectPath additionally considers the route that breaks no wall.
// A direct route wins ties against breach candidates of equal length.
func WithDirectPath() Option {
	return func(o *Options) {
		o.DirectPath = true
	}
}
