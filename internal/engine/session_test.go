package engine

import (
	"testing"
	"time"
)

func startedSession(t *testing.T, cfg Config, d Difficulty) *Session {
	t.Helper()
	s := NewSession(cfg)
	if !cfg.SkipDifficultySelect {
		if err := s.SelectDifficulty(d); err != nil {
			t.Fatalf("select difficulty: %v", err)
		}
	}
	if err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	return s
}

func TestLifecycleHappyPath(t *testing.T) {
	s := NewSession(Config{GameID: "math-blitz"})
	if s.Phase != PhaseDifficultySelect {
		t.Fatalf("initial phase = %d, want difficulty select", s.Phase)
	}

	if err := s.SelectDifficulty(Hard); err != nil {
		t.Fatalf("select: %v", err)
	}
	if s.Phase != PhaseReady {
		t.Fatalf("phase after select = %d, want ready", s.Phase)
	}
	if s.Profile.Multiplier != 2.0 {
		t.Errorf("hard multiplier = %v, want 2.0", s.Profile.Multiplier)
	}

	if err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if s.Phase != PhaseActive {
		t.Fatalf("phase after start = %d, want active", s.Phase)
	}
	if s.RemainingSecs != 45 {
		t.Errorf("remaining = %d, want 45", s.RemainingSecs)
	}
}

func TestSelectRejectedOutsideSelection(t *testing.T) {
	s := startedSession(t, Config{GameID: "math-blitz"}, Easy)
	if err := s.SelectDifficulty(Hard); err != ErrBadTransition {
		t.Errorf("expected ErrBadTransition, got %v", err)
	}
	if s.Diff != Easy {
		t.Errorf("difficulty changed after start")
	}
}

func TestCountdownCompletesExactlyOnce(t *testing.T) {
	s := startedSession(t, Config{GameID: "word-explorer", TimeLimit: 3 * time.Second}, Easy)

	s.Tick()
	if s.RemainingSecs != 2 || s.Terminal() {
		t.Fatalf("after 1 tick: remaining=%d terminal=%v", s.RemainingSecs, s.Terminal())
	}
	s.Tick()
	s.Tick()
	if !s.Terminal() {
		t.Fatal("expected terminal at zero remaining")
	}
	if s.RemainingSecs != 0 {
		t.Errorf("remaining = %d, want 0 (never negative)", s.RemainingSecs)
	}

	// A stale expiry signal after completion must be a no-op.
	gen := s.Generation
	s.Tick()
	if s.RemainingSecs != 0 || s.Generation != gen {
		t.Error("tick after completion mutated the session")
	}
}

func TestCountUpNeverExpires(t *testing.T) {
	s := startedSession(t, Config{GameID: "memory-match", CountUp: true, SkipDifficultySelect: true}, "")
	for i := 0; i < 500; i++ {
		s.Tick()
	}
	if s.Terminal() {
		t.Fatal("count-up session must not expire")
	}
	if s.ElapsedSecs != 500 {
		t.Errorf("elapsed = %d, want 500", s.ElapsedSecs)
	}
}

func TestScoreMonotonic(t *testing.T) {
	s := startedSession(t, Config{GameID: "math-blitz"}, Medium)

	s.AddPoints(25)
	s.AddPoints(-100)
	s.AddPoints(0)
	if s.Score != 25 {
		t.Errorf("score = %d, want 25 (negative deltas ignored)", s.Score)
	}
}

func TestStreakResetOnMiss(t *testing.T) {
	s := startedSession(t, Config{GameID: "math-blitz"}, Medium)

	s.RecordCorrect()
	s.RecordCorrect()
	s.RecordCorrect()
	if s.Streak != 3 {
		t.Fatalf("streak = %d, want 3", s.Streak)
	}

	s.RecordMiss()
	if s.Streak != 0 {
		t.Errorf("streak after miss = %d, want 0", s.Streak)
	}
	// Rounds completed is not reset by a miss.
	if s.RoundsCompleted != 3 {
		t.Errorf("rounds = %d, want 3", s.RoundsCompleted)
	}
}

func TestTierEscalationCappedAtMax(t *testing.T) {
	s := startedSession(t, Config{GameID: "math-blitz"}, Hard) // rate 8

	// Far more than 5 * progressionRate correct rounds.
	for i := 0; i < 8*MaxTier*3; i++ {
		s.RecordCorrect()
		if s.Tier > MaxTier {
			t.Fatalf("tier %d exceeds cap after %d rounds", s.Tier, i+1)
		}
	}
	if s.Tier != MaxTier {
		t.Errorf("tier = %d, want %d", s.Tier, MaxTier)
	}
}

func TestTierEscalatesAtRate(t *testing.T) {
	s := startedSession(t, Config{GameID: "math-blitz"}, Medium) // rate 10

	for i := 0; i < 9; i++ {
		s.RecordCorrect()
	}
	if s.Tier != 1 {
		t.Fatalf("tier = %d before rate boundary, want 1", s.Tier)
	}
	s.RecordCorrect()
	if s.Tier != 2 {
		t.Errorf("tier = %d at boundary, want 2", s.Tier)
	}
}

func TestCompleteIdempotent(t *testing.T) {
	s := startedSession(t, Config{GameID: "timeline-sort"}, Easy)

	if !s.Complete() {
		t.Fatal("first Complete returned false")
	}
	if s.Complete() {
		t.Fatal("second Complete returned true; completion must run once")
	}
}

func TestRoundTransition(t *testing.T) {
	s := startedSession(t, Config{GameID: "memory-match", CountUp: true, SkipDifficultySelect: true}, "")

	if err := s.BeginRoundTransition(); err != nil {
		t.Fatalf("begin transition: %v", err)
	}
	if s.Active() {
		t.Error("session active during round transition")
	}
	if err := s.ResumeActive(); err != nil {
		t.Fatalf("resume: %v", err)
	}
	if !s.Active() {
		t.Error("session not active after resume")
	}
}

func TestRestartBumpsGeneration(t *testing.T) {
	s := startedSession(t, Config{GameID: "math-blitz"}, Easy)
	gen := s.Generation

	s.Complete()
	if err := s.Start(); err != nil {
		t.Fatalf("restart: %v", err)
	}
	if s.Generation <= gen {
		t.Error("generation did not advance on restart")
	}
	if s.Score != 0 || s.Streak != 0 || s.Tier != 1 {
		t.Error("restart did not reset counters")
	}
}
