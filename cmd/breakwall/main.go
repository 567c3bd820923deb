// This defines a basic executable for solving one-breach mazes: load a
// maze from a text file or generate a random one, print the minimal step
// count, and optionally save a PNG with the breach cell highlighted.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/katalvlaran/breakwall/breach"
	"github.com/katalvlaran/breakwall/grid"
	"github.com/katalvlaran/breakwall/mazegen"
	"github.com/katalvlaran/breakwall/render"
)

// readMazeFile parses a text maze: one row per line, cells written as
// 0/1 or ./#, spaces ignored, blank lines skipped.
func readMazeFile(path string) ([][]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cells [][]int
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var row []int
		for _, ch := range scanner.Text() {
			switch ch {
			case '0', '.':
				row = append(row, 0)
			case '1', '#':
				row = append(row, 1)
			case ' ', '\t':
				// separators
			default:
				return nil, fmt.Errorf("unsupported maze character %q", ch)
			}
		}
		if len(row) > 0 {
			cells = append(cells, row)
		}
	}
	if err = scanner.Err(); err != nil {
		return nil, err
	}

	return cells, nil
}

// saveImage renders the maze (with the winning breach highlighted, if
// any) and writes it as a PNG.
func saveImage(path string, cells [][]int, res breach.Result, solved bool) error {
	g, err := grid.New(cells)
	if err != nil {
		return err
	}
	opts := []render.Option{render.WithCorners(), render.WithBorder(4)}
	if solved && !res.Direct {
		opts = append(opts, render.WithBreach(res.Breach))
	}
	img, err := render.Image(g, opts...)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return render.WritePNG(f, img)
}

func run() int {
	var cellsWide, cellsHigh, workers int
	var randomSeed int64
	var extraOpenings float64
	var directPath bool
	var inputFile, outFilename string
	flag.IntVar(&cellsWide, "cells_wide", 20,
		"The width of a generated maze, in rooms.")
	flag.IntVar(&cellsHigh, "cells_high", 20,
		"The height of a generated maze, in rooms.")
	flag.Int64Var(&randomSeed, "random_seed", -1,
		"If positive, specifies the random seed to use when generating.")
	flag.Float64Var(&extraOpenings, "extra_openings", 0.1,
		"The fraction of leftover walls to open in a generated maze.")
	flag.StringVar(&inputFile, "input_file", "",
		"An optional path to a text maze (rows of 0/1 or ./#). "+
			"Overrides cells_wide and cells_high.")
	flag.IntVar(&workers, "parallel", 0,
		"If > 1, the number of goroutines used by the solver.")
	flag.BoolVar(&directPath, "direct", false,
		"If set, also accepts a route that breaks no wall.")
	flag.StringVar(&outFilename, "output_file", "",
		"The name of an optional .png file to which the maze will be saved.")
	flag.Parse()
	if inputFile == "" && ((cellsWide < 1) || (cellsHigh < 1)) {
		fmt.Println("Invalid or missing argument.")
		fmt.Println("Run with -help for more information.")
		return 1
	}

	var cells [][]int
	var e error
	if inputFile != "" {
		cells, e = readMazeFile(inputFile)
		if e != nil {
			fmt.Printf("Error reading maze %s: %s\n", inputFile, e)
			return 1
		}
	} else {
		genOpts := []mazegen.Option{mazegen.WithExtraOpenings(extraOpenings)}
		if randomSeed > 0 {
			genOpts = append(genOpts, mazegen.WithSeed(randomSeed))
		}
		cells, e = mazegen.Generate(cellsWide, cellsHigh, genOpts...)
		if e != nil {
			fmt.Printf("Failed generating maze: %s\n", e)
			return 1
		}
		fmt.Printf("Generated a %dx%d maze OK.\n", len(cells), len(cells[0]))
	}

	solveOpts := []breach.Option{breach.WithParallel(workers)}
	if directPath {
		solveOpts = append(solveOpts, breach.WithDirectPath())
	}
	res, e := breach.Solve(cells, solveOpts...)
	solved := e == nil
	switch {
	case errors.Is(e, breach.ErrNoSolution):
		fmt.Println("The maze has no one-breach solution.")
	case e != nil:
		fmt.Printf("Error solving maze: %s\n", e)
		return 1
	case res.Direct:
		fmt.Printf("Solved in %d steps without breaking a wall.\n", res.Steps)
	default:
		fmt.Printf("Solved in %d steps, breaking the wall at row %d, col %d.\n",
			res.Steps, res.Breach.Row, res.Breach.Col)
	}

	if outFilename != "" {
		e = saveImage(outFilename, cells, res, solved)
		if e != nil {
			fmt.Printf("Error writing image to %s: %s\n", outFilename, e)
			return 1
		}
		fmt.Printf("Image %s written OK.\n", outFilename)
	}
	return 0
}

func main() {
	os.Exit(run())
}
