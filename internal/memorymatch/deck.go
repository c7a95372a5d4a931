// Package memorymatch implements the pair-matching card game. Each
// pair contributes two cards (prompt and answer) that match when their
// keys agree.
package memorymatch

import (
	"math/rand"

	"github.com/nandinis/edudeck/internal/catalog"
	"github.com/nandinis/edudeck/internal/shuffle"
)

// Card is one face-down tile on the board.
type Card struct {
	Key     string
	Face    string
	Matched bool
}

// FlipResult describes the outcome of a flip.
type FlipResult int

const (
	// FlipIgnored means the flip had no effect (already face-up,
	// already matched, or two cards are pending resolution).
	FlipIgnored FlipResult = iota
	// FlipFirst means the card is the first of a pair attempt.
	FlipFirst
	// FlipMatch means the second card matched the first.
	FlipMatch
	// FlipMiss means the second card did not match; the pair stays
	// visible until Settle is called.
	FlipMiss
)

// Deck is the state of one memory level.
type Deck struct {
	Cards []Card

	faceUp  []int
	moves   int
	matched int
}

// NewDeck builds a shuffled deck from the level's pairs.
func NewDeck(pairs []catalog.Pair, rng *rand.Rand) *Deck {
	cards := make([]Card, 0, len(pairs)*2)
	for _, p := range pairs {
		cards = append(cards,
			Card{Key: p.Key, Face: p.Prompt},
			Card{Key: p.Key, Face: p.Answer},
		)
	}
	shuffle.Slice(rng, cards)
	return &Deck{Cards: cards}
}

// Flip turns the card at index face-up. A move is counted when the
// second card of an attempt is revealed. At most two cards can be
// face-up at once; a third flip is ignored until Settle resolves the
// pending pair.
func (d *Deck) Flip(index int) FlipResult {
	if index < 0 || index >= len(d.Cards) {
		return FlipIgnored
	}
	if d.Cards[index].Matched || d.isFaceUp(index) || len(d.faceUp) >= 2 {
		return FlipIgnored
	}

	d.faceUp = append(d.faceUp, index)
	if len(d.faceUp) == 1 {
		return FlipFirst
	}

	d.moves++
	a, b := d.faceUp[0], d.faceUp[1]
	if d.Cards[a].Key == d.Cards[b].Key {
		d.Cards[a].Matched = true
		d.Cards[b].Matched = true
		d.matched++
		d.faceUp = nil
		return FlipMatch
	}
	return FlipMiss
}

// Settle turns a missed pair face-down again. No-op unless a miss is
// pending.
func (d *Deck) Settle() {
	if len(d.faceUp) == 2 {
		d.faceUp = nil
	}
}

// FaceUp reports whether the card at index is currently visible,
// either matched or mid-attempt.
func (d *Deck) FaceUp(index int) bool {
	if index < 0 || index >= len(d.Cards) {
		return false
	}
	return d.Cards[index].Matched || d.isFaceUp(index)
}

func (d *Deck) isFaceUp(index int) bool {
	for _, i := range d.faceUp {
		if i == index {
			return true
		}
	}
	return false
}

// Pending reports whether a missed pair is waiting for Settle.
func (d *Deck) Pending() bool {
	return len(d.faceUp) == 2
}

// Moves is the number of completed pair attempts.
func (d *Deck) Moves() int {
	return d.moves
}

// MatchedPairs is the number of pairs found so far.
func (d *Deck) MatchedPairs() int {
	return d.matched
}

// Complete reports whether every pair has been matched.
func (d *Deck) Complete() bool {
	return d.matched*2 == len(d.Cards)
}
