package nonogram

// Built-in puzzles for tests and the bundled commands.

// Palette indices of the tree puzzle.
const (
	TreeLeaves = 1
	TreeWood   = 2
)

const (
	treeRows = 5
	treeCols = 5
)

// TreePuzzle returns the 5x5 two-color tree puzzle.
func TreePuzzle() Puzzle {
	return Puzzle{
		Rows: treeRows,
		Cols: treeCols,
		RowConstraints: [][]Segment{
			{{TreeLeaves, 3}},
			{{TreeLeaves, 5}},
			{{TreeLeaves, 2}, {TreeWood, 1}, {TreeLeaves, 2}},
			{{TreeWood, 1}},
			{{TreeWood, 1}},
		},
		ColConstraints: [][]Segment{
			{{TreeLeaves, 2}},
			{{TreeLeaves, 3}},
			{{TreeLeaves, 2}, {TreeWood, 3}},
			{{TreeLeaves, 3}},
			{{TreeLeaves, 2}},
		},
	}
}

// TreeSolution returns the grid the tree puzzle encodes.
func TreeSolution() Solution {
	return Solution{Grid: [][]int{
		{0, 1, 1, 1, 0},
		{1, 1, 1, 1, 1},
		{1, 1, 2, 1, 1},
		{0, 0, 2, 0, 0},
		{0, 0, 2, 0, 0},
	}}
}

// TreeEmptySolution returns an all-background grid with the tree
// puzzle's dimensions.
func TreeEmptySolution() Solution {
	return NewSolution(treeRows, treeCols)
}

// TreePalette returns sky blue background, forest green leaves and
// saddle brown wood.
func TreePalette() Palette {
	return Palette{Colors: []string{
		"#87ceeb",
		"#228b22",
		"#8b4513",
	}}
}

// TreeFile bundles the tree solution and palette for persistence.
func TreeFile() File {
	return File{Solution: TreeSolution(), Palette: TreePalette()}
}
