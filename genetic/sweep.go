package genetic

import (
	"context"

	"github.com/lixenwraith/nonogram/nonogram"
	"github.com/lixenwraith/nonogram/parameter"
)

// SweepConfig defines the Cartesian product of hyperparameters a
// sweep explores and the fixed settings every run shares.
type SweepConfig struct {
	CrossProbabilities    []float64
	MutationProbabilities []float64
	SlideTries            []int
	Seeds                 []uint64

	PopulationSize int
	TournamentSize int
	MaxIterations  int
}

// DefaultSweepConfig returns the grids and fixed settings of the
// standard diagnostic sweep.
func DefaultSweepConfig() SweepConfig {
	return SweepConfig{
		CrossProbabilities:    parameter.SweepCrossProbabilities,
		MutationProbabilities: parameter.SweepMutationProbabilities,
		SlideTries:            parameter.SweepSlideTries,
		Seeds:                 parameter.SweepSeeds,
		PopulationSize:        parameter.SweepPopulationSize,
		TournamentSize:        parameter.SweepTournamentSize,
		MaxIterations:         parameter.SweepMaxIterations,
	}
}

// SweepRun is the outcome of one parameter combination.
type SweepRun struct {
	Config Config
	Seed   uint64
	Score  int
	Solved bool
}

// SweepResult reports the best-performing combination of a sweep.
// Found is false when the grids were empty; a best score above zero
// is a reportable outcome, not an error.
type SweepResult struct {
	Best  SweepRun
	Found bool
	Runs  int
}

// Sweep exhaustively runs Search over every combination of the
// configured grids, tracking the combination with the lowest final
// best score. Purely diagnostic; normal solving never calls it. The
// optional observe callback sees every finished run in order. The
// context is passed through to each Search and also checked between
// runs, so a cancelled sweep reports the combinations finished so
// far.
func Sweep(ctx context.Context, p nonogram.Puzzle, sc SweepConfig, observe func(SweepRun)) SweepResult {
	var result SweepResult

	for _, crossProbability := range sc.CrossProbabilities {
		for _, mutationProbability := range sc.MutationProbabilities {
			for _, slideTries := range sc.SlideTries {
				for _, seed := range sc.Seeds {
					if ctx.Err() != nil {
						return result
					}

					cfg := Config{
						PopulationSize:      sc.PopulationSize,
						CrossProbability:    crossProbability,
						MutationProbability: mutationProbability,
						TournamentSize:      sc.TournamentSize,
						SlideTries:          slideTries,
						MaxIterations:       sc.MaxIterations,
					}
					history := Search(ctx, cfg, p, NewRand(seed))
					if history.Iterations == 0 {
						// Cancelled before the run's first
						// generation; there is no score to record.
						return result
					}

					run := SweepRun{
						Config: cfg,
						Seed:   seed,
						Score:  history.Best[len(history.Best)-1],
						Solved: history.Solved(),
					}
					if observe != nil {
						observe(run)
					}

					result.Runs++
					if !result.Found || run.Score < result.Best.Score {
						result.Best = run
						result.Found = true
					}
				}
			}
		}
	}
	return result
}
