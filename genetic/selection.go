package genetic

import (
	"math/rand/v2"
	"sort"

	"github.com/lixenwraith/nonogram/nonogram"
)

// Candidate pairs a row-valid solution with its score.
type Candidate struct {
	Solution nonogram.Solution
	Score    int
}

// Population is a generation of candidates, kept ascending by score.
type Population []Candidate

func (pop Population) sortByScore() {
	sort.SliceStable(pop, func(i, j int) bool { return pop[i].Score < pop[j].Score })
}

// tournamentSelect samples k distinct candidates uniformly without
// replacement and returns the lowest-scoring one, first-encountered
// winning ties. k is clamped to the population size.
func tournamentSelect(pop Population, k int, rng *rand.Rand) *Candidate {
	if k > len(pop) {
		k = len(pop)
	}
	order := rng.Perm(len(pop))
	best := &pop[order[0]]
	for _, idx := range order[1:k] {
		if pop[idx].Score < best.Score {
			best = &pop[idx]
		}
	}
	return best
}

// preserveElite merges the current population with scored offspring
// and keeps the best len(pop) candidates: (μ+λ) replacement, so the
// best individual seen is never lost to a worse one.
func preserveElite(p nonogram.Puzzle, pop Population, offspring []nonogram.Solution) Population {
	size := len(pop)
	combined := make(Population, 0, size+len(offspring))
	combined = append(combined, pop...)
	for _, solution := range offspring {
		combined = append(combined, Candidate{Solution: solution, Score: Score(p, solution)})
	}
	combined.sortByScore()
	return combined[:size]
}
