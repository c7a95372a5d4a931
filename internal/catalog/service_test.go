package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func testService(t *testing.T) *Service {
	t.Helper()
	s, err := NewService(true)
	require.NoError(t, err)
	return s
}

func TestAllGames(t *testing.T) {
	s := testService(t)
	games, err := s.All(context.Background())
	require.NoError(t, err)
	require.Len(t, games, 5)
}

func TestByID(t *testing.T) {
	s := testService(t)
	ctx := context.Background()

	g, err := s.ByID(ctx, "math-blitz")
	require.NoError(t, err)
	require.Equal(t, "Math Blitz", g.Title)
	require.Equal(t, CategoryMath, g.Category)

	_, err = s.ByID(ctx, "no-such-game")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFeatured(t *testing.T) {
	s := testService(t)
	games, err := s.Featured(context.Background())
	require.NoError(t, err)
	require.Len(t, games, 3)
	for _, g := range games {
		require.True(t, g.Featured, "game %s not featured", g.ID)
	}
}

func TestByCategory(t *testing.T) {
	s := testService(t)
	ctx := context.Background()

	games, err := s.ByCategory(ctx, "History")
	require.NoError(t, err)
	require.Len(t, games, 1)
	require.Equal(t, "timeline-sort", games[0].ID)

	all, err := s.ByCategory(ctx, "All")
	require.NoError(t, err)
	require.Len(t, all, 5)

	none, err := s.ByCategory(ctx, "Puzzle")
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestSearch(t *testing.T) {
	s := testService(t)
	ctx := context.Background()

	games, err := s.Search(ctx, "chronological")
	require.NoError(t, err)
	require.Len(t, games, 1)
	require.Equal(t, "timeline-sort", games[0].ID)

	games, err = s.Search(ctx, "MEMORY")
	require.NoError(t, err)
	require.NotEmpty(t, games)

	games, err = s.Search(ctx, "zzzzz")
	require.NoError(t, err)
	require.Empty(t, games)
}

func TestIncrementPlayCount(t *testing.T) {
	s := testService(t)
	ctx := context.Background()

	before, err := s.ByID(ctx, "word-explorer")
	require.NoError(t, err)

	updated, err := s.IncrementPlayCount(ctx, "word-explorer")
	require.NoError(t, err)
	require.Equal(t, before.PlayCount+1, updated.PlayCount)

	// The increment is visible to later reads.
	after, err := s.ByID(ctx, "word-explorer")
	require.NoError(t, err)
	require.Equal(t, updated.PlayCount, after.PlayCount)

	_, err = s.IncrementPlayCount(ctx, "no-such-game")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestContentAccessors(t *testing.T) {
	s := testService(t)
	ctx := context.Background()

	for _, d := range []string{"Easy", "Medium", "Hard"} {
		wc, err := s.WordContent(ctx, d)
		require.NoError(t, err, d)
		require.GreaterOrEqual(t, len(wc.Letters), 12, d)
		require.NotEmpty(t, wc.Dictionary, d)

		levels, err := s.EventLevels(ctx, d)
		require.NoError(t, err, d)
		require.NotEmpty(t, levels, d)
	}

	_, err := s.WordContent(ctx, "Impossible")
	require.ErrorIs(t, err, ErrNotFound)
	_, err = s.EventLevels(ctx, "Impossible")
	require.ErrorIs(t, err, ErrNotFound)

	pairs, err := s.PairLevels(ctx)
	require.NoError(t, err)
	require.Len(t, pairs, 3)

	puzzles, err := s.Puzzles(ctx)
	require.NoError(t, err)
	require.Len(t, puzzles, 2)
}

func TestDelayHonorsCancellation(t *testing.T) {
	s, err := NewService(false) // latency enabled
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = s.All(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
