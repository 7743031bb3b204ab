package nonogram

import (
	"errors"
	"fmt"
)

var (
	// ErrBadDimensions reports nonpositive puzzle dimensions.
	ErrBadDimensions = errors.New("nonogram: puzzle dimensions must be positive")

	// ErrLineOverflow reports a constraint list that cannot fit its
	// line: total segment length plus one mandatory separator between
	// adjacent same-colored segments exceeds the line size.
	ErrLineOverflow = errors.New("nonogram: constraint exceeds line capacity")

	// ErrBadSegment reports a segment with a nonpositive length or a
	// background color.
	ErrBadSegment = errors.New("nonogram: invalid segment")
)

// MinLineWidth returns the minimum number of cells the segment list
// needs: the sum of segment lengths plus one separator for every
// adjacent pair of equal-colored segments.
func MinLineWidth(segments []Segment) int {
	width := 0
	for i, seg := range segments {
		width += seg.Length
		if i > 0 && segments[i-1].Color == seg.Color {
			width++
		}
	}
	return width
}

// Validate checks the construction invariants of the puzzle: positive
// dimensions, well-formed segments, constraint list counts matching
// the dimensions, and every line's constraints fitting its length.
func (p Puzzle) Validate() error {
	if p.Rows <= 0 || p.Cols <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrBadDimensions, p.Rows, p.Cols)
	}
	if len(p.RowConstraints) != p.Rows {
		return fmt.Errorf("%w: %d row constraint lists for %d rows", ErrBadDimensions, len(p.RowConstraints), p.Rows)
	}
	if len(p.ColConstraints) != p.Cols {
		return fmt.Errorf("%w: %d column constraint lists for %d columns", ErrBadDimensions, len(p.ColConstraints), p.Cols)
	}
	if err := validateLines(p.RowConstraints, p.Cols, "row"); err != nil {
		return err
	}
	return validateLines(p.ColConstraints, p.Rows, "column")
}

func validateLines(constraints [][]Segment, size int, kind string) error {
	for i, segments := range constraints {
		for _, seg := range segments {
			if seg.Length <= 0 || seg.Color == Background {
				return fmt.Errorf("%w: %s %d has segment %v", ErrBadSegment, kind, i, seg)
			}
		}
		if width := MinLineWidth(segments); width > size {
			return fmt.Errorf("%w: %s %d needs %d cells, has %d", ErrLineOverflow, kind, i, width, size)
		}
	}
	return nil
}
