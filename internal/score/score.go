// Package score holds the pure scoring rules for every game. All
// functions are deterministic and side-effect free so they can be
// exercised directly in tests.
package score

import (
	"math"

	"github.com/nandinis/edudeck/internal/engine"
)

// StreakBonusCap is the ceiling for the math streak bonus.
const StreakBonusCap = 50

// MathPoints awards a correct math answer: tier-scaled base points
// times the difficulty multiplier, plus a capped streak bonus.
func MathPoints(tier int, d engine.Difficulty, streak int) int {
	base := float64(tier*10) * engine.ProfileFor(d).Multiplier
	return int(math.Round(base)) + min(streak*2, StreakBonusCap)
}

// WordPoints awards a found word by length, scaled by difficulty.
func WordPoints(wordLen int, d engine.Difficulty) int {
	return int(math.Round(float64(wordLen*10) * engine.ProfileFor(d).Multiplier))
}

// MatchPoints awards one successful pair match; early matches with few
// moves are worth more, floored at 10.
func MatchPoints(moves int) int {
	return max(50-moves*2, 10)
}

// MatchBonus is the one-time completion bonus for a memory level:
// time efficiency plus move efficiency, each floored at zero.
func MatchBonus(elapsedSecs, totalMoves int) int {
	timeBonus := max(300-elapsedSecs*2, 0)
	moveBonus := max(200-totalMoves*5, 0)
	return timeBonus + moveBonus
}

// TimelinePoints awards a correctly ordered timeline level.
func TimelinePoints(level int) int {
	return level * 50
}

// GridPoints awards a solved logic puzzle by its zero-based index.
func GridPoints(puzzleIndex int) int {
	return (puzzleIndex + 1) * 100
}
