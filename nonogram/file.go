package nonogram

import (
	"encoding/json"
	"fmt"
	"os"
)

// Extension is the conventional suffix of nonogram files.
const Extension = ".ngram"

// File is the on-disk bundle of a solution grid and its palette,
// stored as JSON in .ngram files.
type File struct {
	Solution Solution `json:"solution"`
	Palette  Palette  `json:"palette"`
}

// LoadFile reads and decodes a .ngram file.
func LoadFile(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("nonogram: load %s: %w", path, err)
	}
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("nonogram: decode %s: %w", path, err)
	}
	if f.Solution.Rows() == 0 {
		return File{}, fmt.Errorf("nonogram: decode %s: empty solution grid", path)
	}
	return f, nil
}

// Save encodes the file as indented JSON and writes it to path.
func (f File) Save(path string) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("nonogram: encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("nonogram: save %s: %w", path, err)
	}
	return nil
}

// Puzzle derives the puzzle the stored solution realizes.
func (f File) Puzzle() Puzzle {
	return FromSolution(f.Solution)
}
