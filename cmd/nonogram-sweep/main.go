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
)

func main() {
	var (
		file       = flag.String("file", "", "path to a .ngram puzzle file (default: built-in tree)")
		iterations = flag.Int("iterations", 0, "override iteration budget per run (0 = default)")
		population = flag.Int("population", 0, "override population size per run (0 = default)")
	)
	flag.Parse()

	puzzle := nonogram.TreePuzzle()
	if *file != "" {
		f, err := nonogram.LoadFile(*file)
		if err != nil {
			log.Fatalf("load puzzle: %v", err)
		}
		puzzle = f.Puzzle()
	}
	if err := puzzle.Validate(); err != nil {
		log.Fatalf("invalid puzzle: %v", err)
	}

	sc := genetic.DefaultSweepConfig()
	if *iterations > 0 {
		sc.MaxIterations = *iterations
	}
	if *population > 0 {
		sc.PopulationSize = *population
	}

	total := len(sc.CrossProbabilities) * len(sc.MutationProbabilities) * len(sc.SlideTries) * len(sc.Seeds)
	fmt.Printf("Sweeping %d combinations on a %dx%d puzzle\n", total, puzzle.Rows, puzzle.Cols)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	done := 0
	result := genetic.Sweep(ctx, puzzle, sc, func(run genetic.SweepRun) {
		done++
		fmt.Printf("[%3d/%d] cross=%.1f mutation=%.1f slides=%d seed=%d -> score %d\n",
			done, total, run.Config.CrossProbability, run.Config.MutationProbability,
			run.Config.SlideTries, run.Seed, run.Score)
	})

	fmt.Printf("\nFinished %d runs in %v\n", result.Runs, time.Since(start))
	switch {
	case !result.Found:
		fmt.Println("No combinations were run")
	case result.Best.Solved:
		fmt.Printf("Best: score 0 with cross=%.1f mutation=%.1f slides=%d seed=%d\n",
			result.Best.Config.CrossProbability, result.Best.Config.MutationProbability,
			result.Best.Config.SlideTries, result.Best.Seed)
	default:
		fmt.Printf("No combination reached 0; best score %d with cross=%.1f mutation=%.1f slides=%d seed=%d\n",
			result.Best.Score, result.Best.Config.CrossProbability, result.Best.Config.MutationProbability,
			result.Best.Config.SlideTries, result.Best.Seed)
	}
}
