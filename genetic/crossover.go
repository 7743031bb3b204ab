package genetic

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/lixenwraith/nonogram/nonogram"
)

// ErrMismatchedDimensions reports crossover ancestors whose row
// counts do not match the puzzle.
var ErrMismatchedDimensions = errors.New("genetic: mismatched ancestor dimensions")

// UniformCross recombines two row-valid ancestors into two children.
// Per row index, with probability crossProbability the children keep
// their own ancestor's row, otherwise the rows are exchanged. Rows
// are copied whole, so each child's rows stay individually valid.
func UniformCross(p nonogram.Puzzle, a1, a2 nonogram.Solution, crossProbability float64, rng *rand.Rand) (nonogram.Solution, nonogram.Solution, error) {
	if err := checkAncestors(p, a1, a2); err != nil {
		return nonogram.Solution{}, nonogram.Solution{}, err
	}

	d1 := make([][]int, 0, p.Rows)
	d2 := make([][]int, 0, p.Rows)
	for i := 0; i < p.Rows; i++ {
		r1 := copyRow(a1.Grid[i])
		r2 := copyRow(a2.Grid[i])
		if rng.Float64() < crossProbability {
			d1 = append(d1, r1)
			d2 = append(d2, r2)
		} else {
			d1 = append(d1, r2)
			d2 = append(d2, r1)
		}
	}
	return nonogram.Solution{Grid: d1}, nonogram.Solution{Grid: d2}, nil
}

// TwoPointCross recombines two ancestors by swapping a contiguous
// block of rows. With probability 1-crossProbability the ancestors
// are returned as verbatim clones. Otherwise two interior points
// point1 <= point2 are drawn and rows with index in [point1, point2]
// are exchanged between the children.
//
// The points are drawn from the column-count range and applied to row
// indices, matching the reference behavior.
func TwoPointCross(p nonogram.Puzzle, a1, a2 nonogram.Solution, crossProbability float64, rng *rand.Rand) (nonogram.Solution, nonogram.Solution, error) {
	if err := checkAncestors(p, a1, a2); err != nil {
		return nonogram.Solution{}, nonogram.Solution{}, err
	}

	if rng.Float64() >= crossProbability {
		return a1.Clone(), a2.Clone(), nil
	}

	point1 := 1 + rng.IntN(p.Cols-2)
	point2 := 1 + rng.IntN(p.Cols-2)
	if point1 > point2 {
		point1, point2 = point2, point1
	}

	d1 := make([][]int, 0, p.Rows)
	d2 := make([][]int, 0, p.Rows)
	for i := 0; i < p.Rows; i++ {
		r1 := copyRow(a1.Grid[i])
		r2 := copyRow(a2.Grid[i])
		if i < point1 || i > point2 {
			d1 = append(d1, r1)
			d2 = append(d2, r2)
		} else {
			d1 = append(d1, r2)
			d2 = append(d2, r1)
		}
	}
	return nonogram.Solution{Grid: d1}, nonogram.Solution{Grid: d2}, nil
}

func checkAncestors(p nonogram.Puzzle, a1, a2 nonogram.Solution) error {
	if len(a1.Grid) != p.Rows {
		return fmt.Errorf("%w: first ancestor has %d rows, puzzle has %d", ErrMismatchedDimensions, len(a1.Grid), p.Rows)
	}
	if len(a2.Grid) != p.Rows {
		return fmt.Errorf("%w: second ancestor has %d rows, puzzle has %d", ErrMismatchedDimensions, len(a2.Grid), p.Rows)
	}
	return nil
}

func copyRow(row []int) []int {
	out := make([]int, len(row))
	copy(out, row)
	return out
}
