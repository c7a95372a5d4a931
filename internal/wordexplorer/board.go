// Package wordexplorer implements the letter-board word game: a rack
// of letters drawn from the difficulty's pool, a dictionary of valid
// words, and per-session found-word tracking.
package wordexplorer

import (
	"errors"
	"math/rand"
	"strings"

	"github.com/nandinis/edudeck/internal/catalog"
	"github.com/nandinis/edudeck/internal/shuffle"
)

// RackSize is the number of letters dealt to the board.
const RackSize = 12

// Submission failure modes. All are recoverable: the board clears the
// current selection and the session continues.
var (
	ErrTooShort        = errors.New("wordexplorer: words must be at least 3 letters long")
	ErrAlreadyFound    = errors.New("wordexplorer: word already found")
	ErrNotInDictionary = errors.New("wordexplorer: not a valid word")
)

// Board is the state of one word-explorer session.
type Board struct {
	Letters    []string
	dictionary map[string]string

	selected []int
	current  strings.Builder

	found      []string
	foundSet   map[string]bool
	FoundWords []FoundWord
}

// FoundWord pairs a credited word with its definition.
type FoundWord struct {
	Word       string
	Definition string
}

// NewBoard shuffles the letter pool and deals RackSize letters.
func NewBoard(content catalog.WordContent, rng *rand.Rand) *Board {
	letters := shuffle.Copy(rng, content.Letters)
	if len(letters) > RackSize {
		letters = letters[:RackSize]
	}
	return &Board{
		Letters:    letters,
		dictionary: content.Dictionary,
		foundSet:   make(map[string]bool),
	}
}

// Select adds the letter at index to the current word. A letter tile
// can be used at most once per word; out-of-range or repeated indices
// are ignored.
func (b *Board) Select(index int) {
	if index < 0 || index >= len(b.Letters) {
		return
	}
	for _, i := range b.selected {
		if i == index {
			return
		}
	}
	b.selected = append(b.selected, index)
	b.current.WriteString(b.Letters[index])
}

// Selected reports whether the tile at index is part of the current word.
func (b *Board) Selected(index int) bool {
	for _, i := range b.selected {
		if i == index {
			return true
		}
	}
	return false
}

// Current returns the word being assembled.
func (b *Board) Current() string {
	return b.current.String()
}

// Clear abandons the current selection.
func (b *Board) Clear() {
	b.selected = nil
	b.current.Reset()
}

// Submit validates the current word. On success the word is credited
// (it can never be credited again this session) and its definition
// returned. On any failure the selection is cleared, except for the
// too-short case where the player may keep extending the word.
func (b *Board) Submit() (FoundWord, error) {
	word := strings.ToUpper(b.Current())

	if len(word) < 3 {
		return FoundWord{}, ErrTooShort
	}

	if b.foundSet[word] {
		b.Clear()
		return FoundWord{}, ErrAlreadyFound
	}

	def, ok := b.dictionary[word]
	if !ok {
		b.Clear()
		return FoundWord{}, ErrNotInDictionary
	}

	b.foundSet[word] = true
	b.found = append(b.found, word)
	fw := FoundWord{Word: word, Definition: def}
	b.FoundWords = append(b.FoundWords, fw)
	b.Clear()
	return fw, nil
}

// Found returns the credited words in discovery order.
func (b *Board) Found() []string {
	return append([]string(nil), b.found...)
}
