package engine

import (
	"errors"
	"time"
)

// Phase is the lifecycle state of a game session.
type Phase int

const (
	PhaseDifficultySelect Phase = iota // Choosing a difficulty profile
	PhaseReady                         // Instructions shown, waiting for start
	PhaseActive                        // Timer running, input accepted
	PhaseRoundTransition               // Between rounds (level cleared)
	PhaseCompleted                     // Terminal for this session instance
)

// MaxTier is the cap for the internal auto-escalating difficulty tier.
const MaxTier = 5

// ErrBadTransition is returned for lifecycle calls made in the wrong phase.
var ErrBadTransition = errors.New("engine: invalid phase transition")

// Config fixes the shape of a session before it starts.
type Config struct {
	GameID string

	// CountUp makes the timer count elapsed time instead of counting
	// down (memory match). Ignored when Untimed is set.
	CountUp bool

	// Untimed disables the timer entirely (logic grid).
	Untimed bool

	// TimeLimit overrides the difficulty profile's countdown when
	// nonzero (word explorer always plays 3 minutes).
	TimeLimit time.Duration

	// SkipDifficultySelect starts the session directly in Ready with
	// the given difficulty (games without a selectable profile).
	SkipDifficultySelect bool
	FixedDifficulty      Difficulty
}

// Session is the shared lifecycle every game runs through: difficulty
// selection, ready, timed active play, round transitions, completion.
// It owns score, streak, rounds, tier escalation, and the timer
// bookkeeping; the per-game packages own content and verification.
//
// Sessions are driven from a single goroutine (the Bubble Tea update
// loop); no internal locking.
type Session struct {
	Config  Config
	Phase   Phase
	Diff    Difficulty
	Profile Profile

	Score           int
	Streak          int
	RoundsCompleted int
	Tier            int

	RemainingSecs int
	ElapsedSecs   int

	StartedAt time.Time

	// Generation increments on every (re)start, so tick messages from
	// an earlier run of this screen can be recognized and dropped.
	Generation int
}

// NewSession creates a session in difficulty selection (or Ready when
// the game has no selectable profile).
func NewSession(cfg Config) *Session {
	s := &Session{Config: cfg, Phase: PhaseDifficultySelect, Tier: 1}
	if cfg.SkipDifficultySelect {
		d := cfg.FixedDifficulty
		if !d.Valid() {
			d = Medium
		}
		s.Diff = d
		s.Profile = ProfileFor(d)
		s.Phase = PhaseReady
	}
	return s
}

// SelectDifficulty fixes the profile for this session. Only valid
// during difficulty selection; the profile is immutable afterwards.
func (s *Session) SelectDifficulty(d Difficulty) error {
	if s.Phase != PhaseDifficultySelect {
		return ErrBadTransition
	}
	if !d.Valid() {
		return errors.New("engine: unknown difficulty")
	}
	s.Diff = d
	s.Profile = ProfileFor(d)
	s.Phase = PhaseReady
	return nil
}

// Start transitions Ready → Active, resetting counters and arming the
// timer. Restarting a completed session (play again) is allowed and
// bumps the generation so stale ticks are discarded.
func (s *Session) Start() error {
	if s.Phase != PhaseReady && s.Phase != PhaseCompleted {
		return ErrBadTransition
	}

	s.Score = 0
	s.Streak = 0
	s.RoundsCompleted = 0
	s.Tier = 1
	s.ElapsedSecs = 0
	s.StartedAt = time.Now()
	s.Generation++

	limit := s.Profile.TimeLimit
	if s.Config.TimeLimit > 0 {
		limit = s.Config.TimeLimit
	}
	if s.Config.Untimed || s.Config.CountUp {
		s.RemainingSecs = 0
	} else {
		s.RemainingSecs = int(limit.Seconds())
	}

	s.Phase = PhaseActive
	return nil
}

// Tick advances the timer by one second. In countdown mode the session
// completes exactly when remaining time reaches zero. Ticks outside
// Active (including after completion) are no-ops, which makes a late
// expiry signal idempotent.
func (s *Session) Tick() {
	if s.Phase != PhaseActive && s.Phase != PhaseRoundTransition {
		return
	}

	s.ElapsedSecs++
	if s.Config.Untimed || s.Config.CountUp {
		return
	}

	if s.RemainingSecs > 0 {
		s.RemainingSecs--
	}
	if s.RemainingSecs == 0 {
		s.Complete()
	}
}

// AddPoints increases the score. Negative deltas are ignored: score is
// monotonically non-decreasing within a session.
func (s *Session) AddPoints(n int) {
	if n > 0 {
		s.Score += n
	}
}

// RecordCorrect registers a solved round: streak grows and the internal
// tier escalates every ProgressionRate rounds, capped at MaxTier. The
// tier never de-escalates.
func (s *Session) RecordCorrect() {
	s.Streak++
	s.RoundsCompleted++

	rate := s.Profile.ProgressionRate
	if rate > 0 && s.RoundsCompleted%rate == 0 && s.Tier < MaxTier {
		s.Tier++
	}
}

// RecordMiss resets the streak. Score is unchanged; wrong answers
// never deduct points.
func (s *Session) RecordMiss() {
	s.Streak = 0
}

// BeginRoundTransition pauses input between finite levels.
func (s *Session) BeginRoundTransition() error {
	if s.Phase != PhaseActive {
		return ErrBadTransition
	}
	s.Phase = PhaseRoundTransition
	return nil
}

// ResumeActive returns from a round transition to active play.
func (s *Session) ResumeActive() error {
	if s.Phase != PhaseRoundTransition {
		return ErrBadTransition
	}
	s.Phase = PhaseActive
	return nil
}

// Complete moves the session to its terminal phase. It runs at most
// once; repeat calls report false so completion side effects (bonus
// scoring, persistence, notifications) happen exactly once.
func (s *Session) Complete() bool {
	if s.Phase == PhaseCompleted {
		return false
	}
	s.Phase = PhaseCompleted
	s.Generation++
	return true
}

// Active reports whether the session accepts input.
func (s *Session) Active() bool {
	return s.Phase == PhaseActive
}

// Terminal reports whether the session has ended.
func (s *Session) Terminal() bool {
	return s.Phase == PhaseCompleted
}
