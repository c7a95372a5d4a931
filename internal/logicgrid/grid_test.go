package logicgrid

import (
	"testing"

	"github.com/nandinis/edudeck/internal/catalog"
)

func testPuzzle() catalog.Puzzle {
	return catalog.Puzzle{
		Size:       3,
		Categories: []string{"Student", "Subject"},
		Items: [][]string{
			{"Ana", "Ben", "Cleo"},
			{"Art", "Biology", "Chemistry"},
		},
		Clues: []string{
			"Ana does not study Art.",
			"Ben studies a science.",
			"Cleo's subject starts with the same letter as her name.",
		},
	}
}

func TestCellCycle(t *testing.T) {
	c := Unknown
	want := []Cell{Possible, Impossible, Unknown, Possible}
	for i, w := range want {
		c = c.Cycle()
		if c != w {
			t.Fatalf("cycle step %d = %v, want %v", i, c, w)
		}
	}
}

func TestToggleAndRead(t *testing.T) {
	g := NewGrid(testPuzzle())
	if g.Cell(0, 0) != Unknown {
		t.Fatal("fresh grid not unknown")
	}
	g.Toggle(0, 0)
	if g.Cell(0, 0) != Possible {
		t.Errorf("cell = %v, want Possible", g.Cell(0, 0))
	}
	g.Toggle(0, 0)
	if g.Cell(0, 0) != Impossible {
		t.Errorf("cell = %v, want Impossible", g.Cell(0, 0))
	}

	// Out-of-range access is harmless.
	g.Toggle(-1, 0)
	g.Toggle(0, 5)
	if g.Cell(5, 5) != Unknown {
		t.Error("out-of-range read should be Unknown")
	}
}

func TestSolvedThreshold(t *testing.T) {
	g := NewGrid(testPuzzle())
	if g.Solved() {
		t.Fatal("empty grid reported solved")
	}

	g.Toggle(0, 1) // possible
	g.Toggle(1, 2) // possible
	if g.Solved() {
		t.Fatal("two marks on a size-3 puzzle reported solved")
	}

	g.Toggle(2, 0) // possible
	if !g.Solved() {
		t.Error("three possible marks should solve a size-3 puzzle")
	}

	// Impossible marks do not count toward the threshold.
	g.Toggle(2, 0) // possible -> impossible
	if g.Solved() {
		t.Error("impossible mark counted as possible")
	}
}

func TestReset(t *testing.T) {
	g := NewGrid(testPuzzle())
	g.Toggle(0, 0)
	g.Toggle(1, 1)
	g.Reset()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if g.Cell(r, c) != Unknown {
				t.Fatalf("cell %d,%d = %v after Reset", r, c, g.Cell(r, c))
			}
		}
	}
}
