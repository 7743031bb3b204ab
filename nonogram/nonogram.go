// Package nonogram models color nonogram puzzles: grids of palette
// indices constrained by per-row and per-column run-length sequences.
//
// A Puzzle holds the constraints, a Solution holds a concrete grid.
// The two are bidirectionally derivable: constraints are recovered
// from any grid by run-length-encoding its lines, and FromSolution
// builds the puzzle a grid realizes.
package nonogram

import "fmt"

// Background is the palette index of an uncolored cell. Runs of
// Background never produce a Segment.
const Background = 0

// Segment is one maximal run of a single color along a line.
type Segment struct {
	Color  int `json:"color"`
	Length int `json:"length"`
}

// Puzzle holds the dimensions and the ordered per-line constraints.
// It is read-only to the solver.
type Puzzle struct {
	Rows           int
	Cols           int
	RowConstraints [][]Segment
	ColConstraints [][]Segment
}

// Solution is a mutable working grid. Grid[y][x] is a palette index,
// Background for empty cells.
type Solution struct {
	Grid [][]int `json:"solution_grid"`
}

// NewSolution returns an all-background grid of the given size.
func NewSolution(rows, cols int) Solution {
	grid := make([][]int, rows)
	for y := range grid {
		grid[y] = make([]int, cols)
	}
	return Solution{Grid: grid}
}

// Rows returns the number of rows in the grid.
func (s Solution) Rows() int {
	return len(s.Grid)
}

// Cols returns the number of columns. Panics on a zero-row grid,
// which is a caller invariant violation.
func (s Solution) Cols() int {
	if len(s.Grid) == 0 {
		panic("nonogram: solution has zero rows")
	}
	return len(s.Grid[0])
}

// Clone returns a deep copy of the grid.
func (s Solution) Clone() Solution {
	grid := make([][]int, len(s.Grid))
	for y, row := range s.Grid {
		grid[y] = make([]int, len(row))
		copy(grid[y], row)
	}
	return Solution{Grid: grid}
}

// FromSolution derives the puzzle that the given grid realizes.
func FromSolution(s Solution) Puzzle {
	return Puzzle{
		Rows:           s.Rows(),
		Cols:           s.Cols(),
		RowConstraints: s.RowConstraints(),
		ColConstraints: s.ColConstraints(),
	}
}

func (seg Segment) String() string {
	return fmt.Sprintf("%d:%d", seg.Color, seg.Length)
}
