package genetic

import (
	"reflect"
	"testing"

	"github.com/lixenwraith/nonogram/nonogram"
)

func TestNewChromosomeSatisfiesRowConstraints(t *testing.T) {
	puzzle := nonogram.TreePuzzle()

	for seed := uint64(0); seed < 50; seed++ {
		rng := NewRand(seed)
		solution := NewChromosome(puzzle, rng)

		if solution.Rows() != puzzle.Rows || solution.Cols() != puzzle.Cols {
			t.Fatalf("seed %d: got %dx%d grid, want %dx%d",
				seed, solution.Rows(), solution.Cols(), puzzle.Rows, puzzle.Cols)
		}
		if got := solution.RowConstraints(); !reflect.DeepEqual(got, puzzle.RowConstraints) {
			t.Fatalf("seed %d: row constraints mismatch:\ngot  %v\nwant %v", seed, got, puzzle.RowConstraints)
		}
	}
}

func TestNewChromosomeSeparatesEqualColorSegments(t *testing.T) {
	// Two same-color segments need a mandatory separator the sampler
	// must emit without spending slack.
	puzzle := nonogram.Puzzle{
		Rows:           2,
		Cols:           6,
		RowConstraints: [][]nonogram.Segment{
			{{Color: 1, Length: 2}, {Color: 1, Length: 2}},
			{{Color: 2, Length: 1}, {Color: 2, Length: 1}, {Color: 2, Length: 1}},
		},
		ColConstraints: make([][]nonogram.Segment, 6),
	}

	for seed := uint64(0); seed < 50; seed++ {
		solution := NewChromosome(puzzle, NewRand(seed))
		if got := solution.RowConstraints(); !reflect.DeepEqual(got, puzzle.RowConstraints) {
			t.Fatalf("seed %d: row constraints mismatch:\ngot  %v\nwant %v", seed, got, puzzle.RowConstraints)
		}
	}
}

func TestNewChromosomeEmptyRow(t *testing.T) {
	puzzle := nonogram.Puzzle{
		Rows:           1,
		Cols:           4,
		RowConstraints: [][]nonogram.Segment{nil},
		ColConstraints: make([][]nonogram.Segment, 4),
	}
	solution := NewChromosome(puzzle, NewRand(1))
	for x, c := range solution.Grid[0] {
		if c != nonogram.Background {
			t.Fatalf("cell %d = %d, want background", x, c)
		}
	}
}

func TestNewChromosomeDeterministic(t *testing.T) {
	puzzle := nonogram.TreePuzzle()
	a := NewChromosome(puzzle, NewRand(42))
	b := NewChromosome(puzzle, NewRand(42))
	if !reflect.DeepEqual(a.Grid, b.Grid) {
		t.Error("same seed produced different chromosomes")
	}
}
