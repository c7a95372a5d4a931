package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProgressLoadEmpty(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()

	p, err := repo.Load(context.Background(), "math-blitz")
	require.NoError(t, err)
	require.NotNil(t, p)
	require.Equal(t, "math-blitz", p.GameID)
	require.Zero(t, p.HighScore)
	require.Nil(t, p.LastPlayed)
}

func TestProgressHighScoreMerge(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "math-blitz", ProgressUpdate{Score: 420, PlayTimeSecs: 60}))

	p, err := repo.Load(ctx, "math-blitz")
	require.NoError(t, err)
	require.Equal(t, 420, p.HighScore)
	require.NotNil(t, p.LastPlayed)

	// A lower score must not overwrite the stored high score.
	require.NoError(t, repo.Save(ctx, "math-blitz", ProgressUpdate{Score: 100, PlayTimeSecs: 45}))

	p, err = repo.Load(ctx, "math-blitz")
	require.NoError(t, err)
	require.Equal(t, 420, p.HighScore)
	require.Equal(t, 105, p.TotalPlayTimeSecs)

	// A higher score updates it exactly.
	require.NoError(t, repo.Save(ctx, "math-blitz", ProgressUpdate{Score: 777}))

	p, err = repo.Load(ctx, "math-blitz")
	require.NoError(t, err)
	require.Equal(t, 777, p.HighScore)
}

func TestProgressLevelsOnlyAdvance(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "timeline-sort", ProgressUpdate{LevelCompleted: 3}))
	require.NoError(t, repo.Save(ctx, "timeline-sort", ProgressUpdate{LevelCompleted: 2}))

	p, err := repo.Load(ctx, "timeline-sort")
	require.NoError(t, err)
	require.Equal(t, 3, p.LevelsCompleted)
}

func TestProgressIsolatedPerGame(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "word-explorer", ProgressUpdate{Score: 90}))
	require.NoError(t, repo.Save(ctx, "memory-match", ProgressUpdate{Score: 350}))

	p1, err := repo.Load(ctx, "word-explorer")
	require.NoError(t, err)
	p2, err := repo.Load(ctx, "memory-match")
	require.NoError(t, err)

	require.Equal(t, 90, p1.HighScore)
	require.Equal(t, 350, p2.HighScore)
}

func TestSessionEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	events := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, events.AppendSessionEvent(ctx, SessionEventData{
		SessionID:  "abc",
		GameID:     "math-blitz",
		Action:     "start",
		Difficulty: "Hard",
	}))
	require.NoError(t, events.AppendSessionEvent(ctx, SessionEventData{
		SessionID:       "abc",
		GameID:          "math-blitz",
		Action:          "end",
		Score:           512,
		RoundsCompleted: 17,
		DurationSecs:    45,
	}))

	records, err := events.RecentSessions(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 1) // only end events
	require.Equal(t, "math-blitz", records[0].GameID)
	require.Equal(t, 512, records[0].Score)
	require.Equal(t, 17, records[0].RoundsCompleted)
}
