package store

import (
	"context"
	"time"
)

// Progress is the per-game cumulative record kept across sessions.
type Progress struct {
	GameID            string
	HighScore         int
	LevelsCompleted   int
	LastPlayed        *time.Time
	TotalPlayTimeSecs int
}

// ProgressUpdate carries the outcome of a finished session. Merge
// semantics are monotonic: high score and levels completed only move
// upward, play time accumulates.
type ProgressUpdate struct {
	Score          int
	LevelCompleted int
	PlayTimeSecs   int
}

// ProgressRepo manages per-game progress records.
type ProgressRepo interface {
	// Load returns the progress record for gameID. A zero-value record
	// (never nil) is returned when the game has not been played.
	Load(ctx context.Context, gameID string) (*Progress, error)

	// Save merges update into the stored record for gameID, creating
	// it if absent. Lower scores never overwrite a higher stored score.
	Save(ctx context.Context, gameID string, update ProgressUpdate) error
}

// SessionEventData captures a session lifecycle event for the log.
type SessionEventData struct {
	SessionID       string
	GameID          string
	Action          string // "start" or "end"
	Difficulty      string
	Score           int
	RoundsCompleted int
	DurationSecs    int
}

// SessionRecord is a logged session event as read back from the store.
type SessionRecord struct {
	Sequence        int64
	Timestamp       time.Time
	SessionID       string
	GameID          string
	Action          string
	Difficulty      string
	Score           int
	RoundsCompleted int
	DurationSecs    int
}

// EventRepo provides append and query access to session events.
type EventRepo interface {
	// AppendSessionEvent records a session start or end event.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// RecentSessions returns the most recent session end events,
	// newest first, up to limit.
	RecentSessions(ctx context.Context, limit int) ([]SessionRecord, error)
}
