// Package genetic solves color nonogram puzzles with an evolutionary
// search over row-valid candidate grids.
//
// The chromosome representation preserves row constraints by
// construction: sampling distributes background gaps around each
// row's segments, crossover recombines whole rows, and mutation only
// slides runs into adjacent background cells. Fitness is the
// divergence between a candidate's derived column constraints and the
// target, so a score of zero is a fully correct solution.
//
// Randomness flows through a single explicit *rand.Rand passed into
// every operation; a run is fully deterministic given a fixed seed.
package genetic

import (
	"math/rand/v2"

	"github.com/lixenwraith/nonogram/parameter"
)

// Config holds the search hyperparameters.
type Config struct {
	// PopulationSize is the number of candidates per generation
	PopulationSize int
	// CrossProbability gates crossover: per-row swap chance for the
	// uniform form, whole-operation chance for the two-point form
	CrossProbability float64
	// MutationProbability is the per-trial chance of one slide
	MutationProbability float64
	// TournamentSize is the number of candidates competing per parent
	// selection, clamped to the population size
	TournamentSize int
	// SlideTries is the number of independent mutation trials per row
	SlideTries int
	// MaxIterations caps the number of generations
	MaxIterations int
}

// DefaultConfig returns the tuned defaults.
func DefaultConfig() Config {
	return Config{
		PopulationSize:      parameter.GAPopulationSize,
		CrossProbability:    parameter.GACrossProbability,
		MutationProbability: parameter.GAMutationProbability,
		TournamentSize:      parameter.GATournamentSize,
		SlideTries:          parameter.GASlideTries,
		MaxIterations:       parameter.GAMaxIterations,
	}
}

// NewRand returns a deterministic generator for the given seed, used
// by the solver entry points and the parameter sweep.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}
