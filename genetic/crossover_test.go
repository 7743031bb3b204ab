package genetic

import (
	"errors"
	"reflect"
	"testing"

	"github.com/lixenwraith/nonogram/nonogram"
)

func TestUniformCrossPreservesRowConstraints(t *testing.T) {
	puzzle := nonogram.TreePuzzle()

	for seed := uint64(0); seed < 20; seed++ {
		rng := NewRand(seed)
		a1 := NewChromosome(puzzle, rng)
		a2 := NewChromosome(puzzle, rng)

		d1, d2, err := UniformCross(puzzle, a1, a2, 0.5, rng)
		if err != nil {
			t.Fatalf("seed %d: unexpected error: %v", seed, err)
		}
		assertRowConstraints(t, puzzle, d1, "first descendant")
		assertRowConstraints(t, puzzle, d2, "second descendant")
	}
}

func TestTwoPointCrossPreservesRowConstraints(t *testing.T) {
	puzzle := nonogram.TreePuzzle()

	for seed := uint64(0); seed < 20; seed++ {
		rng := NewRand(seed)
		a1 := NewChromosome(puzzle, rng)
		a2 := NewChromosome(puzzle, rng)

		d1, d2, err := TwoPointCross(puzzle, a1, a2, 1.0, rng)
		if err != nil {
			t.Fatalf("seed %d: unexpected error: %v", seed, err)
		}
		assertRowConstraints(t, puzzle, d1, "first descendant")
		assertRowConstraints(t, puzzle, d2, "second descendant")
	}
}

func TestTwoPointCrossSkippedReturnsClones(t *testing.T) {
	puzzle := nonogram.TreePuzzle()
	rng := NewRand(9)
	a1 := NewChromosome(puzzle, rng)
	a2 := NewChromosome(puzzle, rng)

	d1, d2, err := TwoPointCross(puzzle, a1, a2, 0.0, rng)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(d1.Grid, a1.Grid) || !reflect.DeepEqual(d2.Grid, a2.Grid) {
		t.Error("skipped crossover should return verbatim clones")
	}

	// Clones must be independent copies.
	d1.Grid[0][0] = 9
	if a1.Grid[0][0] == 9 {
		t.Error("descendant shares storage with its ancestor")
	}
}

func TestTwoPointCrossSwapsRowBlock(t *testing.T) {
	// Distinct constant rows make the swapped block visible.
	puzzle := nonogram.Puzzle{Rows: 5, Cols: 5}
	a1 := nonogram.Solution{Grid: [][]int{
		{1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1},
	}}
	a2 := nonogram.Solution{Grid: [][]int{
		{2, 2, 2, 2, 2},
		{2, 2, 2, 2, 2},
		{2, 2, 2, 2, 2},
		{2, 2, 2, 2, 2},
		{2, 2, 2, 2, 2},
	}}

	d1, d2, err := TwoPointCross(puzzle, a1, a2, 1.0, NewRand(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	swapped := 0
	for i := 0; i < puzzle.Rows; i++ {
		fromOther := d1.Grid[i][0] == 2
		if fromOther != (d2.Grid[i][0] == 1) {
			t.Fatalf("row %d: descendants disagree on swap", i)
		}
		if fromOther {
			swapped++
		}
	}
	if swapped == 0 || swapped == puzzle.Rows {
		t.Errorf("swapped block covers %d of %d rows, want a proper interior block", swapped, puzzle.Rows)
	}
}

func TestCrossMismatchedAncestors(t *testing.T) {
	puzzle := nonogram.TreePuzzle()
	rng := NewRand(0)
	whole := NewChromosome(puzzle, rng)
	short := nonogram.Solution{Grid: whole.Grid[:3]}

	if _, _, err := UniformCross(puzzle, short, whole, 0.5, rng); !errors.Is(err, ErrMismatchedDimensions) {
		t.Errorf("uniform cross: got %v, want ErrMismatchedDimensions", err)
	}
	if _, _, err := TwoPointCross(puzzle, whole, short, 0.5, rng); !errors.Is(err, ErrMismatchedDimensions) {
		t.Errorf("two-point cross: got %v, want ErrMismatchedDimensions", err)
	}
}

func TestComposedOperatorsPreserveRowConstraints(t *testing.T) {
	puzzle := nonogram.TreePuzzle()
	rng := NewRand(5)

	a1 := NewChromosome(puzzle, rng)
	a2 := NewChromosome(puzzle, rng)
	Mutate(puzzle, &a1, 0.5, 5, rng)

	d1, d2, err := UniformCross(puzzle, a1, a2, 0.5, rng)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	Mutate(puzzle, &d1, 0.5, 5, rng)

	d3, d4, err := TwoPointCross(puzzle, d1, d2, 1.0, rng)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	Mutate(puzzle, &d4, 0.3, 7, rng)

	for name, s := range map[string]nonogram.Solution{
		"mutated ancestor": a1, "crossed+mutated": d1, "crossed": d2,
		"recrossed": d3, "recrossed+mutated": d4,
	} {
		assertRowConstraints(t, puzzle, s, name)
	}
}

func assertRowConstraints(t *testing.T, p nonogram.Puzzle, s nonogram.Solution, name string) {
	t.Helper()
	if got := s.RowConstraints(); !reflect.DeepEqual(got, p.RowConstraints) {
		t.Fatalf("%s violates row constraints:\ngot  %v\nwant %v", name, got, p.RowConstraints)
	}
}
