package wordexplorer

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/nandinis/edudeck/internal/catalog"
)

func testContent() catalog.WordContent {
	return catalog.WordContent{
		Letters: []string{"C", "A", "T", "S", "R", "E", "D", "O", "G", "N", "I", "L"},
		Dictionary: map[string]string{
			"CAT":  "A small domesticated feline",
			"CATS": "More than one cat",
			"DOG":  "A domesticated canine",
		},
	}
}

func testBoard(seed int64) *Board {
	return NewBoard(testContent(), rand.New(rand.NewSource(seed)))
}

// selectWord walks the rack and selects the tiles spelling word, one
// tile per letter occurrence.
func selectWord(t *testing.T, b *Board, word string) {
	t.Helper()
	for _, r := range word {
		found := false
		for i, l := range b.Letters {
			if l == string(r) && !b.Selected(i) {
				b.Select(i)
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("letter %q not available on board %v", string(r), b.Letters)
		}
	}
}

func TestNewBoardDealsTwelve(t *testing.T) {
	b := testBoard(1)
	if len(b.Letters) != RackSize {
		t.Fatalf("dealt %d letters, want %d", len(b.Letters), RackSize)
	}
}

func TestSubmitValidWord(t *testing.T) {
	b := testBoard(1)
	selectWord(t, b, "CAT")

	fw, err := b.Submit()
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if fw.Word != "CAT" {
		t.Errorf("word = %q, want CAT", fw.Word)
	}
	if fw.Definition == "" {
		t.Error("definition missing")
	}
	if b.Current() != "" {
		t.Error("selection not cleared after submit")
	}
	if got := b.Found(); len(got) != 1 || got[0] != "CAT" {
		t.Errorf("Found() = %v", got)
	}
}

func TestSubmitTooShort(t *testing.T) {
	b := testBoard(2)
	selectWord(t, b, "CA")

	if _, err := b.Submit(); !errors.Is(err, ErrTooShort) {
		t.Fatalf("err = %v, want ErrTooShort", err)
	}
	// Selection survives so the player can keep typing.
	if b.Current() != "CA" {
		t.Errorf("current = %q, want CA preserved", b.Current())
	}
}

func TestSubmitDuplicateRejected(t *testing.T) {
	b := testBoard(3)
	selectWord(t, b, "DOG")
	if _, err := b.Submit(); err != nil {
		t.Fatalf("first submit: %v", err)
	}

	selectWord(t, b, "DOG")
	if _, err := b.Submit(); !errors.Is(err, ErrAlreadyFound) {
		t.Fatalf("err = %v, want ErrAlreadyFound", err)
	}
	if len(b.Found()) != 1 {
		t.Errorf("word credited twice: %v", b.Found())
	}
}

func TestSubmitNotInDictionary(t *testing.T) {
	b := testBoard(4)
	selectWord(t, b, "TAC")

	if _, err := b.Submit(); !errors.Is(err, ErrNotInDictionary) {
		t.Fatalf("err = %v, want ErrNotInDictionary", err)
	}
	if b.Current() != "" {
		t.Error("selection not cleared after invalid word")
	}
}

func TestSelectTileOnlyOnce(t *testing.T) {
	b := testBoard(5)
	b.Select(0)
	b.Select(0)
	if len(b.Current()) != len(b.Letters[0]) {
		t.Errorf("tile used twice: current = %q", b.Current())
	}
	b.Select(-1)
	b.Select(len(b.Letters))
}

func TestClear(t *testing.T) {
	b := testBoard(6)
	b.Select(0)
	b.Select(1)
	b.Clear()
	if b.Current() != "" {
		t.Errorf("current = %q after Clear", b.Current())
	}
	if b.Selected(0) || b.Selected(1) {
		t.Error("tiles still selected after Clear")
	}
}
