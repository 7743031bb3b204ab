package parameter

// Genetic Algorithm - Solver Defaults
const (
	// GAPopulationSize is the number of candidates in each population
	GAPopulationSize = 500

	// GACrossProbability gates crossover application (0.0-1.0)
	GACrossProbability = 0.6

	// GAMutationProbability is the per-trial slide chance (0.0-1.0)
	GAMutationProbability = 0.1

	// GATournamentSize for selection pressure
	GATournamentSize = 3

	// GASlideTries is independent mutation trials per row
	GASlideTries = 3

	// GAMaxIterations caps a synchronous search run
	GAMaxIterations = 300

	// GASeed is the fixed seed of the default solver entry point
	GASeed = 23
)

// Genetic Algorithm - Parameter Sweep Grids
var (
	// SweepCrossProbabilities tested by the sweep
	SweepCrossProbabilities = []float64{0.3, 0.6, 0.9}

	// SweepMutationProbabilities tested by the sweep
	SweepMutationProbabilities = []float64{0.1, 0.2, 0.3}

	// SweepSlideTries tested by the sweep
	SweepSlideTries = []int{3, 5, 7}

	// SweepSeeds tested by the sweep
	SweepSeeds = []uint64{11, 13, 17, 19, 23, 29, 31, 37, 41, 43}
)

// Genetic Algorithm - Sweep Fixed Settings
const (
	// SweepPopulationSize for every sweep run
	SweepPopulationSize = 500

	// SweepTournamentSize for every sweep run
	SweepTournamentSize = 3

	// SweepMaxIterations for every sweep run
	SweepMaxIterations = 300
)
