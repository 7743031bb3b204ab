package nonogram

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree"+Extension)

	if err := TreeFile().Save(path); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if !reflect.DeepEqual(loaded.Solution.Grid, TreeSolution().Grid) {
		t.Errorf("solution grid changed across round trip:\ngot  %v\nwant %v", loaded.Solution.Grid, TreeSolution().Grid)
	}
	if !reflect.DeepEqual(loaded.Palette.Colors, TreePalette().Colors) {
		t.Errorf("palette changed across round trip: %v", loaded.Palette.Colors)
	}

	puzzle := loaded.Puzzle()
	if !reflect.DeepEqual(puzzle.RowConstraints, TreePuzzle().RowConstraints) {
		t.Error("puzzle derived from loaded file does not match the tree puzzle")
	}
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadFile(filepath.Join(dir, "missing.ngram")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.ngram")
	if err := os.WriteFile(bad, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(bad); err == nil {
		t.Error("expected error for malformed JSON")
	}

	empty := filepath.Join(dir, "empty.ngram")
	if err := os.WriteFile(empty, []byte(`{"solution":{"solution_grid":[]},"palette":{"color_palette":[]}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(empty); err == nil {
		t.Error("expected error for empty solution grid")
	}
}
