// Package play carries the plumbing shared by every game screen:
// generation-stamped timer ticks and session persistence (start/end
// events plus the progress merge).
package play

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/nandinis/edudeck/internal/engine"
	"github.com/nandinis/edudeck/internal/store"
)

// TickMsg is the once-per-second timer message. Generation identifies
// which run of the session armed the tick; a stale generation means the
// session was restarted or completed and the tick must be dropped.
type TickMsg struct {
	Generation int
}

// TickCmd arms a one-second tick stamped with the session generation.
func TickCmd(generation int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return TickMsg{Generation: generation}
	})
}

// Recorder persists session lifecycle events and the end-of-session
// progress merge. A nil Recorder pointer is usable: every method is a
// no-op, so screens do not special-case a missing store.
type Recorder struct {
	progress store.ProgressRepo
	events   store.EventRepo

	sessionID string
}

// NewRecorder creates a Recorder over the given store. st may be nil.
func NewRecorder(st *store.Store) *Recorder {
	if st == nil {
		return nil
	}
	return &Recorder{
		progress: st.ProgressRepo(),
		events:   st.EventRepo(),
	}
}

// Begin logs the session start event and assigns the session ID.
func (r *Recorder) Begin(gameID string, d engine.Difficulty) {
	if r == nil {
		return
	}
	r.sessionID = uuid.New().String()
	_ = r.events.AppendSessionEvent(context.Background(), store.SessionEventData{
		SessionID:  r.sessionID,
		GameID:     gameID,
		Action:     "start",
		Difficulty: string(d),
	})
}

// Outcome is what a finished session contributed.
type Outcome struct {
	Score           int
	RoundsCompleted int
	LevelCompleted  int
	DurationSecs    int
}

// Finish logs the session end event, merges the outcome into the
// game's progress record, and returns the stored record after the
// merge along with whether this session set a new high score.
func (r *Recorder) Finish(gameID string, d engine.Difficulty, out Outcome) (best int, newHigh bool) {
	if r == nil {
		return 0, false
	}
	ctx := context.Background()

	_ = r.events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:       r.sessionID,
		GameID:          gameID,
		Action:          "end",
		Difficulty:      string(d),
		Score:           out.Score,
		RoundsCompleted: out.RoundsCompleted,
		DurationSecs:    out.DurationSecs,
	})

	prev, err := r.progress.Load(ctx, gameID)
	if err == nil {
		newHigh = out.Score > prev.HighScore
	}

	_ = r.progress.Save(ctx, gameID, store.ProgressUpdate{
		Score:          out.Score,
		LevelCompleted: out.LevelCompleted,
		PlayTimeSecs:   out.DurationSecs,
	})

	if cur, err := r.progress.Load(ctx, gameID); err == nil {
		best = cur.HighScore
	} else {
		best = out.Score
	}
	return best, newHigh
}

// BestScore reads the stored high score for a game; zero when unknown.
func (r *Recorder) BestScore(gameID string) int {
	if r == nil {
		return 0
	}
	p, err := r.progress.Load(context.Background(), gameID)
	if err != nil {
		return 0
	}
	return p.HighScore
}
