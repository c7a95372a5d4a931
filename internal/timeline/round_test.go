package timeline

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/nandinis/edudeck/internal/catalog"
)

func testEvents() []catalog.Event {
	return []catalog.Event{
		{ID: "moon", Label: "Moon landing", Year: 1969},
		{ID: "www", Label: "World Wide Web invented", Year: 1989},
		{ID: "wall", Label: "Berlin Wall falls", Year: 1989},
		{ID: "dna", Label: "DNA structure discovered", Year: 1953},
	}
}

func testRound(seed int64) *Round {
	return NewRound(testEvents(), rand.New(rand.NewSource(seed)))
}

// poolIndexByID locates an event in the shuffled pool.
func poolIndexByID(t *testing.T, r *Round, id string) int {
	t.Helper()
	for i, e := range r.Pool {
		if e.ID == id {
			return i
		}
	}
	t.Fatalf("event %q not in pool", id)
	return -1
}

func placeInOrder(t *testing.T, r *Round, ids ...string) {
	t.Helper()
	for slot, id := range ids {
		r.Place(poolIndexByID(t, r, id), slot)
	}
}

func TestCheckIncomplete(t *testing.T) {
	r := testRound(1)
	if _, err := r.Check(); !errors.Is(err, ErrIncomplete) {
		t.Fatalf("err = %v, want ErrIncomplete", err)
	}
	r.Place(0, 0)
	if _, err := r.Check(); !errors.Is(err, ErrIncomplete) {
		t.Fatalf("partially placed: err = %v, want ErrIncomplete", err)
	}
}

func TestCheckCorrectOrder(t *testing.T) {
	r := testRound(2)
	placeInOrder(t, r, "dna", "moon", "www", "wall")

	ok, err := r.Check()
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if !ok {
		t.Error("chronological order rejected")
	}
}

func TestCheckTiedYearsEitherOrder(t *testing.T) {
	r := testRound(3)
	placeInOrder(t, r, "dna", "moon", "wall", "www")

	ok, err := r.Check()
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if !ok {
		t.Error("same-year events should be accepted in either order")
	}
}

func TestCheckWrongOrder(t *testing.T) {
	r := testRound(4)
	placeInOrder(t, r, "moon", "dna", "www", "wall")

	ok, err := r.Check()
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if ok {
		t.Error("out-of-order placement accepted")
	}
}

func TestPlaceMovesEvent(t *testing.T) {
	r := testRound(5)
	i := poolIndexByID(t, r, "moon")

	r.Place(i, 0)
	r.Place(i, 2)
	if r.Slot(0) != nil {
		t.Error("event still in old slot after moving")
	}
	if got := r.Slot(2); got == nil || got.ID != "moon" {
		t.Errorf("slot 2 = %v, want moon", got)
	}
	if !r.Placed(i) {
		t.Error("Placed should report true")
	}
}

func TestRemoveAndReset(t *testing.T) {
	r := testRound(6)
	r.Place(0, 0)
	r.Remove(0)
	if r.Slot(0) != nil {
		t.Error("slot not emptied by Remove")
	}

	placeInOrder(t, r, "dna", "moon", "www", "wall")
	r.Reset()
	if r.Full() {
		t.Error("Reset left slots occupied")
	}
	for i := range r.Pool {
		if r.Placed(i) {
			t.Errorf("pool index %d still placed after Reset", i)
		}
	}
}
