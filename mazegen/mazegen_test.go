package mazegen_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/breakwall/frontier"
	"github.com/katalvlaran/breakwall/grid"
	"github.com/katalvlaran/breakwall/mazegen"
)

// TestGenerate_Errors verifies dimension and option validation.
func TestGenerate_Errors(t *testing.T) {
	if _, err := mazegen.Generate(0, 5); !errors.Is(err, mazegen.ErrBadDimensions) {
		t.Errorf("zero width: want ErrBadDimensions, got %v", err)
	}
	if _, err := mazegen.Generate(5, -1); !errors.Is(err, mazegen.ErrBadDimensions) {
		t.Errorf("negative height: want ErrBadDimensions, got %v", err)
	}
	if _, err := mazegen.Generate(5, 5, mazegen.WithExtraOpenings(1.5)); !errors.Is(err, mazegen.ErrOptionViolation) {
		t.Errorf("fraction > 1: want ErrOptionViolation, got %v", err)
	}
	if _, err := mazegen.Generate(5, 5, mazegen.WithExtraOpenings(-0.1)); !errors.Is(err, mazegen.ErrOptionViolation) {
		t.Errorf("negative fraction: want ErrOptionViolation, got %v", err)
	}
}

// TestGenerate_Dimensions checks the (2W−1)×(2H−1) layout and floor
// corners, including the degenerate single-room maze.
func TestGenerate_Dimensions(t *testing.T) {
	cases := []struct{ w, h int }{{1, 1}, {2, 3}, {7, 4}}
	for _, tc := range cases {
		cells, err := mazegen.Generate(tc.w, tc.h, mazegen.WithSeed(7))
		if err != nil {
			t.Fatalf("Generate(%d,%d) error: %v", tc.w, tc.h, err)
		}
		if len(cells) != 2*tc.h-1 || len(cells[0]) != 2*tc.w-1 {
			t.Fatalf("Generate(%d,%d) = %d×%d grid; want %d×%d",
				tc.w, tc.h, len(cells), len(cells[0]), 2*tc.h-1, 2*tc.w-1)
		}
		if cells[0][0] != 0 || cells[len(cells)-1][len(cells[0])-1] != 0 {
			t.Errorf("Generate(%d,%d): corners must be floor rooms", tc.w, tc.h)
		}
	}
}

// TestGenerate_Connected ensures every floor cell of a perfect maze is
// reachable from the start corner.
func TestGenerate_Connected(t *testing.T) {
	cells, err := mazegen.Generate(10, 8, mazegen.WithSeed(3))
	if err != nil {
		t.Fatal(err)
	}
	g, err := grid.New(cells)
	if err != nil {
		t.Fatal(err)
	}
	dist, err := frontier.Distances(g, g.Start())
	if err != nil {
		t.Fatal(err)
	}

	floors := 0
	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			p := grid.Position{Row: r, Col: c}
			if !g.IsFloor(p) {
				continue
			}
			floors++
			if !dist.Reached(p) {
				t.Errorf("floor cell %v unreachable from start", p)
			}
		}
	}
	if dist.Len() != floors {
		t.Errorf("reached %d cells; want all %d floor cells", dist.Len(), floors)
	}
}

// TestGenerate_Reproducible locks the same seed to the same maze, and
// different seeds to (almost certainly) different mazes.
func TestGenerate_Reproducible(t *testing.T) {
	a, err := mazegen.Generate(9, 9, mazegen.WithSeed(11))
	if err != nil {
		t.Fatal(err)
	}
	b, err := mazegen.Generate(9, 9, mazegen.WithSeed(11))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed produced different mazes")
	}
	c, err := mazegen.Generate(9, 9, mazegen.WithSeed(12))
	if err != nil {
		t.Fatal(err)
	}
	if reflect.DeepEqual(a, c) {
		t.Error("different seeds produced identical mazes")
	}
}

// countFloors tallies floor cells.
func countFloors(cells [][]int) int {
	n := 0
	for _, row := range cells {
		for _, v := range row {
			if v == 0 {
				n++
			}
		}
	}

	return n
}

// TestGenerate_ExtraOpenings confirms braiding strictly increases floor
// area while keeping the grid connected.
func TestGenerate_ExtraOpenings(t *testing.T) {
	perfect, err := mazegen.Generate(10, 10, mazegen.WithSeed(5))
	if err != nil {
		t.Fatal(err)
	}
	braided, err := mazegen.Generate(10, 10, mazegen.WithSeed(5), mazegen.WithExtraOpenings(0.5))
	if err != nil {
		t.Fatal(err)
	}
	if countFloors(braided) <= countFloors(perfect) {
		t.Errorf("braided floors = %d; want more than perfect %d",
			countFloors(braided), countFloors(perfect))
	}

	// A perfect W×H maze opens exactly W×H−1 walls.
	rooms, opened := 10*10, countFloors(perfect)-10*10
	if opened != rooms-1 {
		t.Errorf("perfect maze opened %d walls; want %d", opened, rooms-1)
	}
}
