package genetic

import (
	"context"
	"math/rand/v2"

	"github.com/lixenwraith/nonogram/nonogram"
	"github.com/lixenwraith/nonogram/parameter"
)

// SearchState describes where a search run ended.
type SearchState int

const (
	// Running means the search has not finished yet.
	Running SearchState = iota
	// Won means a zero-score solution was found.
	Won
	// Exhausted means the iteration budget ran out (or the context
	// was cancelled) before a zero score was reached.
	Exhausted
)

func (s SearchState) String() string {
	switch s {
	case Running:
		return "running"
	case Won:
		return "won"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// History records the per-generation score trajectory of one search
// run. Winner holds the exact solution when State is Won, otherwise
// the best candidate of the final generation. Non-convergence is data
// to report, never an error.
type History struct {
	Iterations int
	Best       []int
	Median     []float64
	Worst      []int
	State      SearchState
	Winner     nonogram.Solution
}

// Solved reports whether the run reached a zero score.
func (h History) Solved() bool {
	return h.State == Won
}

// push appends one generation's best, median and worst scores. The
// population must be sorted ascending by score.
func (h *History) push(pop Population) {
	h.Iterations++
	h.Best = append(h.Best, pop[0].Score)
	h.Median = append(h.Median, median(pop))
	h.Worst = append(h.Worst, pop[len(pop)-1].Score)
}

// median of a score-sorted population: the mean of the two central
// scores for even sizes, the single central score otherwise.
func median(pop Population) float64 {
	n := len(pop)
	if n%2 == 0 {
		return float64(pop[n/2-1].Score+pop[n/2].Score) / 2.0
	}
	return float64(pop[n/2].Score)
}

// Search runs the evolutionary loop until a zero-score winner appears
// or the iteration budget is exhausted. The context is checked once
// per generation at the top of the loop; cancellation finishes the
// run as Exhausted with the best-effort winner. One invocation is
// single-threaded, synchronous and CPU-bound.
func Search(ctx context.Context, cfg Config, p nonogram.Puzzle, rng *rand.Rand) History {
	pop := initialPopulation(p, cfg.PopulationSize, rng)
	history := History{State: Running}

	for history.Iterations < cfg.MaxIterations {
		if ctx.Err() != nil {
			break
		}

		history.push(pop)
		if pop[0].Score == 0 {
			history.State = Won
			history.Winner = pop[0].Solution.Clone()
			break
		}

		offspring := recombine(p, pop, cfg, rng)
		for i := range offspring {
			Mutate(p, &offspring[i], cfg.MutationProbability, cfg.SlideTries, rng)
		}
		pop = preserveElite(p, pop, offspring)
	}

	if history.State != Won {
		history.State = Exhausted
		history.Winner = pop[0].Solution.Clone()
	}
	return history
}

// Solve runs Search with the tuned defaults and fixed seed.
func Solve(ctx context.Context, p nonogram.Puzzle) History {
	return Search(ctx, DefaultConfig(), p, NewRand(parameter.GASeed))
}

// initialPopulation samples and scores a fresh generation, sorted
// ascending by score.
func initialPopulation(p nonogram.Puzzle, size int, rng *rand.Rand) Population {
	pop := make(Population, 0, size)
	for i := 0; i < size; i++ {
		solution := NewChromosome(p, rng)
		pop = append(pop, Candidate{Solution: solution, Score: Score(p, solution)})
	}
	pop.sortByScore()
	return pop
}

// recombine builds at least len(pop) offspring. Each pair of
// tournament-selected parents goes through uniform or two-point
// crossover, chosen by a fair coin.
func recombine(p nonogram.Puzzle, pop Population, cfg Config, rng *rand.Rand) []nonogram.Solution {
	offspring := make([]nonogram.Solution, 0, len(pop)+1)
	for len(offspring) < len(pop) {
		a1 := tournamentSelect(pop, cfg.TournamentSize, rng)
		a2 := tournamentSelect(pop, cfg.TournamentSize, rng)

		var d1, d2 nonogram.Solution
		var err error
		if rng.Float64() < 0.5 {
			d1, d2, err = UniformCross(p, a1.Solution, a2.Solution, cfg.CrossProbability, rng)
		} else {
			d1, d2, err = TwoPointCross(p, a1.Solution, a2.Solution, cfg.CrossProbability, rng)
		}
		if err != nil {
			// Parents come from one puzzle's population, so a
			// dimension mismatch is a violated internal invariant.
			panic(err)
		}
		offspring = append(offspring, d1, d2)
	}
	return offspring
}
