package genetic

import "github.com/lixenwraith/nonogram/nonogram"

// Score measures how far a row-valid candidate is from realizing the
// puzzle: the divergence between the candidate's derived column
// constraints and the target ones, summed over all columns. Zero
// means every column matches exactly, and since rows are exact by
// construction, a zero score is a fully correct solution.
//
// Per column, the shorter segment list is front-padded with zero
// segments so both lists align from the end. Aligned pairs of the
// same color cost the length difference; pairs of different colors
// cost the sum of both lengths, a strictly larger penalty that biases
// the search toward color correctness before length correctness.
func Score(p nonogram.Puzzle, candidate nonogram.Solution) int {
	total := 0
	derived := candidate.ColConstraints()
	for col, current := range derived {
		expected := p.ColConstraints[col]
		n := max(len(current), len(expected))
		for i := 0; i < n; i++ {
			cur := paddedSegment(current, n, i)
			exp := paddedSegment(expected, n, i)
			if cur.Color == exp.Color {
				total += abs(cur.Length - exp.Length)
			} else {
				total += cur.Length + exp.Length
			}
		}
	}
	return total
}

// paddedSegment reads index i of the list as if it were front-padded
// with zero-length, zero-color segments up to length n.
func paddedSegment(segments []nonogram.Segment, n, i int) nonogram.Segment {
	pad := n - len(segments)
	if i < pad {
		return nonogram.Segment{}
	}
	return segments[i-pad]
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
