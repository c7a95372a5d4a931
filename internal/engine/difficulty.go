package engine

import "time"

// Difficulty is the named tier selected once at session start.
type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

// Difficulties lists the selectable tiers in ascending order.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

// Profile carries the per-difficulty session parameters: countdown
// length, operand ceiling for generated content, how many solved
// rounds escalate the internal tier, and the score multiplier.
type Profile struct {
	TimeLimit       time.Duration
	MaxNumber       int
	ProgressionRate int
	Multiplier      float64
}

var profiles = map[Difficulty]Profile{
	Easy:   {TimeLimit: 90 * time.Second, MaxNumber: 12, ProgressionRate: 15, Multiplier: 1.0},
	Medium: {TimeLimit: 60 * time.Second, MaxNumber: 20, ProgressionRate: 10, Multiplier: 1.5},
	Hard:   {TimeLimit: 45 * time.Second, MaxNumber: 50, ProgressionRate: 8, Multiplier: 2.0},
}

// ProfileFor returns the parameters for a difficulty. Unknown values
// fall back to Medium.
func ProfileFor(d Difficulty) Profile {
	if p, ok := profiles[d]; ok {
		return p
	}
	return profiles[Medium]
}

// Valid reports whether d names a known difficulty.
func (d Difficulty) Valid() bool {
	_, ok := profiles[d]
	return ok
}
