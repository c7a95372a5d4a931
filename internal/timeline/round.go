// Package timeline implements the chronology-ordering game: shuffled
// historical events must be placed into slots in year order.
package timeline

import (
	"errors"
	"math/rand"

	"github.com/nandinis/edudeck/internal/catalog"
	"github.com/nandinis/edudeck/internal/shuffle"
)

// ErrIncomplete is returned by Check while slots remain empty.
var ErrIncomplete = errors.New("timeline: not all events placed")

// Round is one timeline level: a shuffled pool of events and an
// equal number of ordering slots.
type Round struct {
	Pool  []catalog.Event
	slots []int // index into Pool, -1 when empty
}

// NewRound shuffles the level's events into the pool and opens one
// empty slot per event.
func NewRound(events []catalog.Event, rng *rand.Rand) *Round {
	pool := shuffle.Copy(rng, events)
	slots := make([]int, len(pool))
	for i := range slots {
		slots[i] = -1
	}
	return &Round{Pool: pool, slots: slots}
}

// Place puts the pool event at poolIndex into the slot. An event
// already placed elsewhere moves to the new slot; a slot already
// holding an event swaps it back to the pool. Out-of-range indices
// are ignored.
func (r *Round) Place(poolIndex, slot int) {
	if poolIndex < 0 || poolIndex >= len(r.Pool) || slot < 0 || slot >= len(r.slots) {
		return
	}
	for i, p := range r.slots {
		if p == poolIndex {
			r.slots[i] = -1
		}
	}
	r.slots[slot] = poolIndex
}

// Remove empties the slot.
func (r *Round) Remove(slot int) {
	if slot < 0 || slot >= len(r.slots) {
		return
	}
	r.slots[slot] = -1
}

// Slot returns the event placed at slot, or nil when empty.
func (r *Round) Slot(slot int) *catalog.Event {
	if slot < 0 || slot >= len(r.slots) || r.slots[slot] < 0 {
		return nil
	}
	return &r.Pool[r.slots[slot]]
}

// Placed reports whether the pool event at poolIndex occupies a slot.
func (r *Round) Placed(poolIndex int) bool {
	for _, p := range r.slots {
		if p == poolIndex {
			return true
		}
	}
	return false
}

// Size is the number of slots in the round.
func (r *Round) Size() int {
	return len(r.slots)
}

// Full reports whether every slot is occupied.
func (r *Round) Full() bool {
	for _, p := range r.slots {
		if p < 0 {
			return false
		}
	}
	return true
}

// Check verifies the placed ordering. It returns ErrIncomplete while
// slots remain empty, true when years never decrease left to right
// (same-year events may appear in either order), and false otherwise.
func (r *Round) Check() (bool, error) {
	if !r.Full() {
		return false, ErrIncomplete
	}
	for i := 1; i < len(r.slots); i++ {
		if r.Pool[r.slots[i]].Year < r.Pool[r.slots[i-1]].Year {
			return false, nil
		}
	}
	return true, nil
}

// Reset empties every slot, returning all events to the pool.
func (r *Round) Reset() {
	for i := range r.slots {
		r.slots[i] = -1
	}
}
