package nonogram

import (
	"reflect"
	"testing"
)

func TestDrawLine(t *testing.T) {
	t.Run("horizontal dominant", func(t *testing.T) {
		s := NewSolution(3, 4)
		s.DrawLine(1, 0, 1, 3, 2)
		want := [][]int{
			{0, 0, 0, 0},
			{2, 2, 2, 2},
			{0, 0, 0, 0},
		}
		if !reflect.DeepEqual(s.Grid, want) {
			t.Errorf("grid = %v, want %v", s.Grid, want)
		}
	})

	t.Run("vertical dominant", func(t *testing.T) {
		s := NewSolution(4, 3)
		s.DrawLine(3, 1, 0, 2, 1)
		// dy=3 > dx=1, so the stroke snaps to column 1.
		want := [][]int{
			{0, 1, 0},
			{0, 1, 0},
			{0, 1, 0},
			{0, 1, 0},
		}
		if !reflect.DeepEqual(s.Grid, want) {
			t.Errorf("grid = %v, want %v", s.Grid, want)
		}
	})

	t.Run("diagonal ties go horizontal", func(t *testing.T) {
		s := NewSolution(3, 3)
		s.DrawLine(0, 0, 2, 2, 1)
		if got := s.RowConstraints()[0]; !reflect.DeepEqual(got, []Segment{{1, 3}}) {
			t.Errorf("row 0 = %v, want single run of 3", got)
		}
	})
}

func TestInLine(t *testing.T) {
	s := NewSolution(4, 4)
	if !s.InLine(1, 0, 1, 3, 1, 2) {
		t.Error("cell on the stroke should be in line")
	}
	if s.InLine(1, 0, 1, 3, 2, 2) {
		t.Error("cell off the stroke row should not be in line")
	}
	if !s.InLine(0, 2, 3, 2, 2, 2) {
		t.Error("cell on a vertical stroke should be in line")
	}
}

func TestResize(t *testing.T) {
	s := TreeSolution()

	s.SetCols(7)
	if s.Cols() != 7 {
		t.Fatalf("cols = %d, want 7", s.Cols())
	}
	if s.Grid[0][5] != Background || s.Grid[0][6] != Background {
		t.Error("grown cells should be background")
	}

	s.SetCols(3)
	if s.Cols() != 3 {
		t.Fatalf("cols = %d, want 3", s.Cols())
	}

	s.SetRows(2)
	if s.Rows() != 2 {
		t.Fatalf("rows = %d, want 2", s.Rows())
	}

	s.SetRows(4)
	if s.Rows() != 4 || s.Grid[3][0] != Background {
		t.Error("grown rows should be background-filled")
	}

	// Resizing clamps at the 2-cell minimum.
	s.SetRows(0)
	s.SetCols(1)
	if s.Rows() != 2 || s.Cols() != 2 {
		t.Errorf("minimum size: got %dx%d, want 2x2", s.Rows(), s.Cols())
	}
}

func TestClear(t *testing.T) {
	s := TreeSolution()
	s.Clear()
	for y, row := range s.Grid {
		for x, c := range row {
			if c != Background {
				t.Fatalf("cell (%d,%d) = %d after clear", y, x, c)
			}
		}
	}
}

func TestShift(t *testing.T) {
	s := Solution{Grid: [][]int{
		{1, 0, 0},
		{0, 2, 0},
		{0, 0, 0},
	}}
	s.Shift(1, 1)
	want := [][]int{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 2},
	}
	if !reflect.DeepEqual(s.Grid, want) {
		t.Errorf("shifted grid = %v, want %v", s.Grid, want)
	}

	// Cells shifted past the edge are dropped.
	s.Shift(-2, -2)
	want = [][]int{
		{2, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
	}
	if !reflect.DeepEqual(s.Grid, want) {
		t.Errorf("second shift = %v, want %v", s.Grid, want)
	}
}
