package genetic

import (
	"math/rand/v2"

	"github.com/lixenwraith/nonogram/nonogram"
)

// Mutate applies segment-slide mutation to the candidate in place.
// Each row gets slideTries independent trials; a trial fires with
// mutationProbability, scans the row for slidable pairs and swaps one
// uniformly chosen pair. A slide shifts one run a single cell into
// adjacent background without changing its length, color or the run
// sequence, so row constraints are invariant under mutation.
func Mutate(p nonogram.Puzzle, candidate *nonogram.Solution, mutationProbability float64, slideTries int, rng *rand.Rand) {
	for _, row := range candidate.Grid {
		for t := 0; t < slideTries; t++ {
			if rng.Float64() >= mutationProbability {
				continue
			}
			pairs := Slidables(row)
			if len(pairs) == 0 {
				continue
			}
			pair := pairs[rng.IntN(len(pairs))]
			row[pair[0]], row[pair[1]] = row[pair[1]], row[pair[0]]
		}
	}
}

// Slidables scans a row left to right and returns every cell pair
// whose swap slides a run one cell into background. Each pair is one
// background cell adjacent to an end of a run together with the cell
// at the run's opposite end.
//
// A slide that would merge two same-colored runs is suppressed on
// both sides: a pending left slide is cancelled when the new run has
// the color of the previously closed one, and a right slide is
// skipped when the cell past the gap has the run's own color.
func Slidables(row []int) [][2]int {
	var pairs [][2]int
	if len(row) == 0 {
		return pairs
	}

	previous := row[0]
	closedColor := nonogram.Background // color of the last closed run, Background = none yet
	backgroundEnd := -1                // pending end of a background run, -1 = none
	segmentStart := -1                 // start of the open run, -1 = none
	if previous != nonogram.Background {
		segmentStart = 0
	}

	for i := 1; i < len(row); i++ {
		current := row[i]
		switch {
		case previous == nonogram.Background && current != nonogram.Background:
			// Run starts after a gap. Remember both marks, but a left
			// slide into this gap would merge with an equal-colored
			// run on the far side.
			backgroundEnd = i - 1
			segmentStart = i
			if closedColor == current {
				backgroundEnd = -1
			}

		case previous != nonogram.Background && current == nonogram.Background:
			// Run ends. A pending background mark on the left yields
			// the left slide; the right slide is valid unless the
			// cell past this gap continues the same color.
			closedColor = previous
			if backgroundEnd >= 0 {
				pairs = append(pairs, [2]int{backgroundEnd, i - 1})
				backgroundEnd = -1
			}
			if i+1 >= len(row) || previous != row[i+1] {
				pairs = append(pairs, [2]int{segmentStart, i})
			}
			segmentStart = -1

		case previous != current:
			// Adjacent runs with no gap: neither can slide across
			// this boundary. Flush the left mark and reopen.
			if backgroundEnd >= 0 {
				pairs = append(pairs, [2]int{backgroundEnd, i - 1})
				backgroundEnd = -1
			}
			segmentStart = i
		}
		previous = current
	}

	// A still-pending mark means the final run touches the row edge.
	if backgroundEnd >= 0 {
		pairs = append(pairs, [2]int{backgroundEnd, len(row) - 1})
	}
	return pairs
}
