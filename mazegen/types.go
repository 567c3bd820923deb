// Package mazegen defines options and sentinel errors for reproducible
// binary maze generation.
package mazegen

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// Sentinel errors for maze generation.
var (
	// ErrBadDimensions indicates a requested room count below 1×1.
	ErrBadDimensions = errors.New("mazegen: dimensions must be at least 1×1 rooms")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("mazegen: invalid option supplied")
)

// Option configures Generate via functional arguments.
// If an Option is invalid (e.g. an openings fraction outside [0,1]), it is
// recorded internally and surfaced as ErrOptionViolation when Generate is
// invoked.
type Option func(*Options)

// Options holds parameters to customize maze generation.
type Options struct {
	// Rng drives all random choices. Defaults to a time-seeded source;
	// set WithSeed for reproducible mazes.
	Rng *rand.Rand

	// ExtraOpenings is the fraction of leftover internal walls to knock
	// out after the maze is connected, in [0,1]. 0 keeps the maze
	// "perfect" (exactly one floor route between any two rooms).
	ExtraOpenings float64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a time-seeded RNG and no extra
// openings.
func DefaultOptions() Options {
	return Options{
		Rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
		ExtraOpenings: 0,
		err:           nil,
	}
}

// WithSeed replaces the RNG with a deterministic source, locking the
// generated maze for tests, benchmarks and examples.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rng = rand.New(rand.NewSource(seed))
	}
}

// WithExtraOpenings knocks out the given fraction of leftover internal
// walls after the maze is connected, creating loops and therefore more
// breach opportunities.
//
//	f in [0,1]: fraction of leftover walls to open
//	otherwise:  invalid option → ErrOptionViolation
func WithExtraOpenings(f float64) Option {
	return func(o *Options) {
		if f < 0 || f > 1 {
			o.err = fmt.Errorf("%w: openings fraction must be in [0,1], got %v", ErrOptionViolation, f)

			return
		}
		o.ExtraOpenings = f
	}
}
