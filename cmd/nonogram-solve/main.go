package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/lixenwraith/nonogram/genetic"
	"github.com/lixenwraith/nonogram/nonogram"
	"github.com/lixenwraith/nonogram/parameter"
)

func main() {
	var (
		file       = flag.String("file", "", "path to a .ngram puzzle file (default: built-in tree)")
		seed       = flag.Uint64("seed", parameter.GASeed, "random seed")
		population = flag.Int("population", parameter.GAPopulationSize, "population size")
		cross      = flag.Float64("cross", parameter.GACrossProbability, "crossover probability")
		mutation   = flag.Float64("mutation", parameter.GAMutationProbability, "mutation probability")
		tournament = flag.Int("tournament", parameter.GATournamentSize, "tournament size")
		slides     = flag.Int("slides", parameter.GASlideTries, "slide tries per row")
		iterations = flag.Int("iterations", parameter.GAMaxIterations, "iteration budget")
	)
	flag.Parse()

	puzzle, palette, err := loadPuzzle(*file)
	if err != nil {
		log.Fatalf("load puzzle: %v", err)
	}
	if err := puzzle.Validate(); err != nil {
		log.Fatalf("invalid puzzle: %v", err)
	}

	cfg := genetic.Config{
		PopulationSize:      *population,
		CrossProbability:    *cross,
		MutationProbability: *mutation,
		TournamentSize:      *tournament,
		SlideTries:          *slides,
		MaxIterations:       *iterations,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Solving %dx%d puzzle (population %d, budget %d, seed %d)\n",
		puzzle.Rows, puzzle.Cols, cfg.PopulationSize, cfg.MaxIterations, *seed)

	start := time.Now()
	history := genetic.Search(ctx, cfg, puzzle, genetic.NewRand(*seed))
	elapsed := time.Since(start)

	if history.Solved() {
		fmt.Printf("Solved in %d generations (%v)\n\n", history.Iterations, elapsed)
	} else {
		fmt.Printf("Budget exhausted after %d generations (%v), best score %d\n\n",
			history.Iterations, elapsed, genetic.Score(puzzle, history.Winner))
	}

	draw(history.Winner, palette)
	fmt.Println()
	printTrajectory(history)
}

// loadPuzzle reads a .ngram file or falls back to the built-in tree.
func loadPuzzle(path string) (nonogram.Puzzle, nonogram.Palette, error) {
	if path == "" {
		return nonogram.TreePuzzle(), nonogram.TreePalette(), nil
	}
	f, err := nonogram.LoadFile(path)
	if err != nil {
		return nonogram.Puzzle{}, nonogram.Palette{}, err
	}
	return f.Puzzle(), f.Palette, nil
}

// draw prints the grid with one glyph per palette index.
func draw(s nonogram.Solution, palette nonogram.Palette) {
	glyphs := []rune{'·', '█', '▒', '▓', '░', '◆'}
	for _, row := range s.Grid {
		for _, c := range row {
			g := '?'
			if c < len(glyphs) {
				g = glyphs[c]
			}
			fmt.Printf("%c%c", g, g)
		}
		fmt.Println()
	}
	for i := range palette.Colors {
		if i < len(glyphs) {
			fmt.Printf("%c%c %s  ", glyphs[i], glyphs[i], palette.Colors[i])
		}
	}
	fmt.Println()
}

// printTrajectory summarizes the score series at a few checkpoints.
func printTrajectory(h genetic.History) {
	fmt.Println("gen   best  median  worst")
	step := h.Iterations / 10
	if step == 0 {
		step = 1
	}
	for i := 0; i < h.Iterations; i += step {
		fmt.Printf("%4d %6d %7.1f %6d\n", i, h.Best[i], h.Median[i], h.Worst[i])
	}
	last := h.Iterations - 1
	if last >= 0 && last%step != 0 {
		fmt.Printf("%4d %6d %7.1f %6d\n", last, h.Best[last], h.Median[last], h.Worst[last])
	}
}
