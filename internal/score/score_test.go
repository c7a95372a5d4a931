package score

import (
	"testing"

	"github.com/nandinis/edudeck/internal/engine"
)

func TestMathPoints(t *testing.T) {
	tests := []struct {
		name   string
		tier   int
		diff   engine.Difficulty
		streak int
		want   int
	}{
		{"tier1 easy no streak", 1, engine.Easy, 0, 10},
		{"tier1 medium", 1, engine.Medium, 0, 15},
		{"tier1 hard", 1, engine.Hard, 0, 20},
		{"tier3 medium streak 4", 3, engine.Medium, 4, 45 + 8},
		{"streak bonus capped", 2, engine.Easy, 100, 20 + 50},
		{"tier5 hard", 5, engine.Hard, 0, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MathPoints(tt.tier, tt.diff, tt.streak); got != tt.want {
				t.Errorf("MathPoints(%d, %s, %d) = %d, want %d",
					tt.tier, tt.diff, tt.streak, got, tt.want)
			}
		})
	}
}

func TestMathPointsZeroStreakAfterMiss(t *testing.T) {
	// The first correct answer after a miss earns no streak bonus.
	withStreak := MathPoints(2, engine.Medium, 3)
	fresh := MathPoints(2, engine.Medium, 0)
	if fresh >= withStreak {
		t.Errorf("streak bonus missing: fresh=%d withStreak=%d", fresh, withStreak)
	}
	if fresh != 30 {
		t.Errorf("fresh = %d, want 30", fresh)
	}
}

func TestWordPoints(t *testing.T) {
	if got := WordPoints(3, engine.Easy); got != 30 {
		t.Errorf("3-letter easy = %d, want 30", got)
	}
	if got := WordPoints(5, engine.Medium); got != 75 {
		t.Errorf("5-letter medium = %d, want 75", got)
	}
	if got := WordPoints(7, engine.Hard); got != 140 {
		t.Errorf("7-letter hard = %d, want 140", got)
	}
}

func TestMatchPoints(t *testing.T) {
	if got := MatchPoints(0); got != 50 {
		t.Errorf("no moves = %d, want 50", got)
	}
	if got := MatchPoints(10); got != 30 {
		t.Errorf("10 moves = %d, want 30", got)
	}
	// Floors at 10 no matter how many moves.
	if got := MatchPoints(100); got != 10 {
		t.Errorf("100 moves = %d, want 10", got)
	}
}

func TestMatchBonus(t *testing.T) {
	if got := MatchBonus(0, 0); got != 500 {
		t.Errorf("perfect game = %d, want 500", got)
	}
	if got := MatchBonus(60, 20); got != 180+100 {
		t.Errorf("60s/20 moves = %d, want 280", got)
	}
	// Both components floor at zero.
	if got := MatchBonus(1000, 1000); got != 0 {
		t.Errorf("slow game = %d, want 0", got)
	}
}

func TestTimelinePoints(t *testing.T) {
	for level := 1; level <= 3; level++ {
		if got := TimelinePoints(level); got != level*50 {
			t.Errorf("level %d = %d, want %d", level, got, level*50)
		}
	}
}

func TestGridPoints(t *testing.T) {
	if got := GridPoints(0); got != 100 {
		t.Errorf("first puzzle = %d, want 100", got)
	}
	if got := GridPoints(1); got != 200 {
		t.Errorf("second puzzle = %d, want 200", got)
	}
}
