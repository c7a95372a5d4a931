package play

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nandinis/edudeck/internal/engine"
	"github.com/nandinis/edudeck/internal/store"
)

func testRecorder(t *testing.T) (*Recorder, *store.Store) {
	t.Helper()
	st, err := store.Open("file::memory:?cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return NewRecorder(st), st
}

func TestNilRecorderIsSafe(t *testing.T) {
	var r *Recorder
	r.Begin("math-blitz", engine.Easy)
	best, newHigh := r.Finish("math-blitz", engine.Easy, Outcome{Score: 100})
	require.Zero(t, best)
	require.False(t, newHigh)
	require.Zero(t, r.BestScore("math-blitz"))
}

func TestFinishReportsNewHighScore(t *testing.T) {
	r, _ := testRecorder(t)

	r.Begin("math-blitz", engine.Medium)
	best, newHigh := r.Finish("math-blitz", engine.Medium, Outcome{
		Score: 300, RoundsCompleted: 12, DurationSecs: 60,
	})
	require.Equal(t, 300, best)
	require.True(t, newHigh)

	// A lower score keeps the stored best and is not a new high.
	r.Begin("math-blitz", engine.Medium)
	best, newHigh = r.Finish("math-blitz", engine.Medium, Outcome{
		Score: 150, RoundsCompleted: 7, DurationSecs: 45,
	})
	require.Equal(t, 300, best)
	require.False(t, newHigh)
	require.Equal(t, 300, r.BestScore("math-blitz"))
}

func TestFinishLogsSessionEvents(t *testing.T) {
	r, st := testRecorder(t)

	r.Begin("logic-grid", engine.Hard)
	r.Finish("logic-grid", engine.Hard, Outcome{Score: 200, DurationSecs: 90})

	recs, err := st.EventRepo().RecentSessions(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.Equal(t, "logic-grid", recs[0].GameID)
	require.Equal(t, 200, recs[0].Score)
	require.Equal(t, "Hard", recs[0].Difficulty)
	require.NotEmpty(t, recs[0].SessionID)
}
