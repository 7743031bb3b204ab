package nonogram

// Grid editing operations used by interactive callers. The solver
// never mutates a Solution through these.

// DrawLine fills the cells between start and end with color. The line
// snaps to the dominant axis: mostly-horizontal strokes fill along
// the start row, mostly-vertical strokes along the start column.
// Coordinates are (row, col).
func (s *Solution) DrawLine(startY, startX, endY, endX, color int) {
	dy := abs(startY - endY)
	dx := abs(startX - endX)

	if dx >= dy {
		x0, x1 := minMax(startX, endX)
		for x := x0; x <= x1; x++ {
			s.Grid[startY][x] = color
		}
	} else {
		y0, y1 := minMax(startY, endY)
		for y := y0; y <= y1; y++ {
			s.Grid[y][startX] = color
		}
	}
}

// InLine reports whether (y, x) lies on the snapped line from start
// to end, using the same axis-dominance rule as DrawLine.
func (s Solution) InLine(startY, startX, endY, endX, y, x int) bool {
	dy := abs(startY - endY)
	dx := abs(startX - endX)

	if dx >= dy {
		x0, x1 := minMax(startX, endX)
		return y == startY && x >= x0 && x <= x1
	}
	y0, y1 := minMax(startY, endY)
	return x == startX && y >= y0 && y <= y1
}

// SetCols resizes the grid to the given column count, at least 2.
// New cells are Background; truncated cells are discarded.
func (s *Solution) SetCols(cols int) {
	current := s.Cols()
	target := max(cols, 2)

	switch {
	case target > current:
		for y := range s.Grid {
			s.Grid[y] = append(s.Grid[y], make([]int, target-current)...)
		}
	case target < current:
		for y := range s.Grid {
			s.Grid[y] = s.Grid[y][:target]
		}
	}
}

// SetRows resizes the grid to the given row count, at least 2.
func (s *Solution) SetRows(rows int) {
	current := s.Rows()
	target := max(rows, 2)

	switch {
	case target > current:
		cols := s.Cols()
		for i := current; i < target; i++ {
			s.Grid = append(s.Grid, make([]int, cols))
		}
	case target < current:
		s.Grid = s.Grid[:target]
	}
}

// Clear resets every cell to Background.
func (s *Solution) Clear() {
	for _, row := range s.Grid {
		for x := range row {
			row[x] = Background
		}
	}
}

// Shift translates the grid content by (dx, dy). Cells shifted past
// the edge are dropped; vacated cells become Background.
func (s *Solution) Shift(dx, dy int) {
	rows, cols := s.Rows(), s.Cols()
	next := make([][]int, rows)
	for y := range next {
		next[y] = make([]int, cols)
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			nx, ny := x+dx, y+dy
			if nx >= 0 && nx < cols && ny >= 0 && ny < rows {
				next[ny][nx] = s.Grid[y][x]
			}
		}
	}
	s.Grid = next
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func minMax(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}
