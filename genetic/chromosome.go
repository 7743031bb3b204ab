package genetic

import (
	"math/rand/v2"

	"github.com/lixenwraith/nonogram/nonogram"
)

// NewChromosome builds one random candidate whose every row exactly
// satisfies the puzzle's row constraints. This is the representation
// invariant all operators preserve; column constraints fall where
// they may and fitness measures their distance from the target.
//
// Per row, the free slack is the column count minus the minimum width
// of the constraints (segment lengths plus one mandatory separator
// between adjacent same-colored segments). Before each segment a coin
// flip decides whether to spend a uniform share of the remaining
// slack as a gap; mandatory separators are emitted unconditionally
// and never charged to slack. Leftover slack trails as background.
func NewChromosome(p nonogram.Puzzle, rng *rand.Rand) nonogram.Solution {
	grid := make([][]int, 0, len(p.RowConstraints))
	for _, segments := range p.RowConstraints {
		grid = append(grid, newChromosomeRow(segments, p.Cols, rng))
	}
	return nonogram.Solution{Grid: grid}
}

func newChromosomeRow(segments []nonogram.Segment, cols int, rng *rand.Rand) []int {
	slack := cols - nonogram.MinLineWidth(segments)

	row := make([]int, 0, cols)
	for i, seg := range segments {
		if rng.Float64() < 0.5 {
			gap := rng.IntN(slack + 1)
			slack -= gap
			for ; gap > 0; gap-- {
				row = append(row, nonogram.Background)
			}
		}
		for n := 0; n < seg.Length; n++ {
			row = append(row, seg.Color)
		}
		if i+1 < len(segments) && segments[i+1].Color == seg.Color {
			row = append(row, nonogram.Background)
		}
	}
	for ; slack > 0; slack-- {
		row = append(row, nonogram.Background)
	}
	return row
}
