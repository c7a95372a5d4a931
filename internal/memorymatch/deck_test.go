package memorymatch

import (
	"math/rand"
	"testing"

	"github.com/nandinis/edudeck/internal/catalog"
)

func testPairs() []catalog.Pair {
	return []catalog.Pair{
		{Key: "fr", Prompt: "France", Answer: "Paris"},
		{Key: "jp", Prompt: "Japan", Answer: "Tokyo"},
		{Key: "br", Prompt: "Brazil", Answer: "Brasília"},
	}
}

func testDeck(seed int64) *Deck {
	return NewDeck(testPairs(), rand.New(rand.NewSource(seed)))
}

// pairIndices finds the two card positions sharing key.
func pairIndices(t *testing.T, d *Deck, key string) (int, int) {
	t.Helper()
	found := []int{}
	for i, c := range d.Cards {
		if c.Key == key {
			found = append(found, i)
		}
	}
	if len(found) != 2 {
		t.Fatalf("key %q has %d cards, want 2", key, len(found))
	}
	return found[0], found[1]
}

func TestNewDeckTwoCardsPerPair(t *testing.T) {
	d := testDeck(1)
	if len(d.Cards) != 6 {
		t.Fatalf("deck has %d cards, want 6", len(d.Cards))
	}
	for _, p := range testPairs() {
		a, b := pairIndices(t, d, p.Key)
		faces := map[string]bool{d.Cards[a].Face: true, d.Cards[b].Face: true}
		if !faces[p.Prompt] || !faces[p.Answer] {
			t.Errorf("pair %q faces wrong: %v", p.Key, faces)
		}
	}
}

func TestFlipMatch(t *testing.T) {
	d := testDeck(2)
	a, b := pairIndices(t, d, "fr")

	if got := d.Flip(a); got != FlipFirst {
		t.Fatalf("first flip = %v, want FlipFirst", got)
	}
	if got := d.Flip(b); got != FlipMatch {
		t.Fatalf("second flip = %v, want FlipMatch", got)
	}
	if !d.Cards[a].Matched || !d.Cards[b].Matched {
		t.Error("matched cards not marked")
	}
	if d.Moves() != 1 {
		t.Errorf("moves = %d, want 1", d.Moves())
	}
	if d.MatchedPairs() != 1 {
		t.Errorf("matched pairs = %d, want 1", d.MatchedPairs())
	}
}

func TestFlipMissThenSettle(t *testing.T) {
	d := testDeck(3)
	a, _ := pairIndices(t, d, "fr")
	b, _ := pairIndices(t, d, "jp")

	d.Flip(a)
	if got := d.Flip(b); got != FlipMiss {
		t.Fatalf("mismatched flip = %v, want FlipMiss", got)
	}
	if !d.Pending() {
		t.Fatal("miss should be pending")
	}
	// Third flip is ignored while the miss is visible.
	c, _ := pairIndices(t, d, "br")
	if got := d.Flip(c); got != FlipIgnored {
		t.Fatalf("flip during pending = %v, want FlipIgnored", got)
	}

	d.Settle()
	if d.FaceUp(a) || d.FaceUp(b) {
		t.Error("missed cards still face-up after Settle")
	}
	if d.Moves() != 1 {
		t.Errorf("moves = %d, want 1", d.Moves())
	}
}

func TestFlipIgnoredCases(t *testing.T) {
	d := testDeck(4)
	a, b := pairIndices(t, d, "jp")

	if got := d.Flip(-1); got != FlipIgnored {
		t.Errorf("out of range flip = %v", got)
	}
	d.Flip(a)
	if got := d.Flip(a); got != FlipIgnored {
		t.Errorf("re-flip of face-up card = %v", got)
	}
	d.Flip(b)
	// Matched cards stay face-up and cannot be flipped again.
	if got := d.Flip(a); got != FlipIgnored {
		t.Errorf("flip of matched card = %v", got)
	}
	if !d.FaceUp(a) || !d.FaceUp(b) {
		t.Error("matched cards should remain visible")
	}
}

func TestComplete(t *testing.T) {
	d := testDeck(5)
	for _, p := range testPairs() {
		a, b := pairIndices(t, d, p.Key)
		d.Flip(a)
		d.Flip(b)
	}
	if !d.Complete() {
		t.Error("deck not complete after matching every pair")
	}
	if d.Moves() != 3 {
		t.Errorf("moves = %d, want 3", d.Moves())
	}
}
