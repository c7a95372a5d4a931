package catalog

import "errors"

// ErrNotFound is returned when a game or content set does not exist.
var ErrNotFound = errors.New("catalog: not found")

// Category classifies a game in the library.
type Category string

const (
	CategoryPuzzle   Category = "Puzzle"
	CategoryLogic    Category = "Logic"
	CategoryMemory   Category = "Memory"
	CategoryMath     Category = "Math"
	CategoryLanguage Category = "Language"
	CategoryHistory  Category = "History"
)

// Categories lists every valid category, in display order.
func Categories() []Category {
	return []Category{
		CategoryPuzzle,
		CategoryLogic,
		CategoryMemory,
		CategoryMath,
		CategoryLanguage,
		CategoryHistory,
	}
}

// Game describes one entry in the game library. All fields except
// PlayCount are immutable; the play count is owned by the Service and
// only changes through IncrementPlayCount.
type Game struct {
	ID               string   `yaml:"id"`
	Title            string   `yaml:"title"`
	Category         Category `yaml:"category"`
	Description      string   `yaml:"description"`
	Difficulty       string   `yaml:"difficulty"`
	Featured         bool     `yaml:"featured"`
	EducationalValue string   `yaml:"educational_value"`
	PlayCount        int      `yaml:"play_count"`
}

// WordContent is the letter pool and dictionary for one word-game
// difficulty. Dictionary keys are uppercase words; values are
// definitions shown when a word is found.
type WordContent struct {
	Letters    []string          `yaml:"letters"`
	Dictionary map[string]string `yaml:"dictionary"`
}

// Pair is one matchable pair for the memory game. Key is unique within
// a level; Prompt and Answer become the two card faces.
type Pair struct {
	Key    string `yaml:"key"`
	Prompt string `yaml:"prompt"`
	Answer string `yaml:"answer"`
}

// PairSet is one memory-match level.
type PairSet struct {
	Theme string `yaml:"theme"`
	Pairs []Pair `yaml:"pairs"`
}

// Event is one entry on a timeline round. Year is the sort key; it is
// never shown to the player until the round resolves.
type Event struct {
	ID          string `yaml:"id"`
	Label       string `yaml:"label"`
	Year        int    `yaml:"year"`
	Description string `yaml:"description"`
}

// EventSet is the ordered list of timeline levels for one difficulty.
type EventSet struct {
	Levels [][]Event `yaml:"levels"`
}

// Puzzle is one logic-grid puzzle: natural-language clues plus the
// category/item matrix the player deduces over.
type Puzzle struct {
	Size       int        `yaml:"size"`
	Clues      []string   `yaml:"clues"`
	Categories []string   `yaml:"categories"`
	Items      [][]string `yaml:"items"`
}
