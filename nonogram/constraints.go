package nonogram

// lineConstraints run-length-encodes one line of cells into maximal
// runs of identical nonzero color. A Background cell terminates the
// current run without emitting a Segment.
func lineConstraints(line func(i int) int, n int) []Segment {
	var segments []Segment
	previous := Background
	length := 0
	for i := 0; i < n; i++ {
		color := line(i)
		if color == previous {
			length++
			continue
		}
		if length != 0 && previous != Background {
			segments = append(segments, Segment{Color: previous, Length: length})
		}
		previous = color
		length = 1
	}
	if length != 0 && previous != Background {
		segments = append(segments, Segment{Color: previous, Length: length})
	}
	return segments
}

// RowConstraints derives the per-row segment lists of the grid.
func (s Solution) RowConstraints() [][]Segment {
	constraints := make([][]Segment, 0, s.Rows())
	for _, row := range s.Grid {
		row := row
		constraints = append(constraints, lineConstraints(func(i int) int { return row[i] }, len(row)))
	}
	return constraints
}

// ColConstraints derives the per-column segment lists, scanning each
// column top to bottom. It is the exact inverse consumed by the
// fitness scorer.
func (s Solution) ColConstraints() [][]Segment {
	cols := s.Cols()
	constraints := make([][]Segment, 0, cols)
	for x := 0; x < cols; x++ {
		x := x
		constraints = append(constraints, lineConstraints(func(i int) int { return s.Grid[i][x] }, len(s.Grid)))
	}
	return constraints
}
