package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nandinis/edudeck/internal/catalog"
	"github.com/nandinis/edudeck/internal/store"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()

	cat, err := catalog.NewService(true)
	require.NoError(t, err)

	st, err := store.Open("file::memory:?cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	srv := httptest.NewServer(New(cat, st).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func TestHealth(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestListGames(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Get(srv.URL + "/api/games")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var games []catalog.Game
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&games))
	require.Len(t, games, 5)
}

func TestSearchGames(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Get(srv.URL + "/api/games?q=math")
	require.NoError(t, err)
	defer resp.Body.Close()

	var games []catalog.Game
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&games))
	require.Len(t, games, 1)
	require.Equal(t, "math-blitz", games[0].ID)
}

func TestFeatured(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Get(srv.URL + "/api/games/featured")
	require.NoError(t, err)
	defer resp.Body.Close()

	var games []catalog.Game
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&games))
	require.Len(t, games, 3)
	for _, g := range games {
		require.True(t, g.Featured)
	}
}

func TestGameByID(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Get(srv.URL + "/api/games/math-blitz")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var game catalog.Game
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&game))
	require.Equal(t, "Math Blitz", game.Title)
}

func TestGameNotFound(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Get(srv.URL + "/api/games/no-such-game")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPlayIncrementsCount(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Post(srv.URL+"/api/games/logic-grid/play", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var game catalog.Game
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&game))
	require.Equal(t, 1, game.PlayCount)
}

func TestProgressUnplayedGame(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Get(srv.URL + "/api/progress/math-blitz")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var p store.Progress
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&p))
	require.Equal(t, "math-blitz", p.GameID)
	require.Zero(t, p.HighScore)
}

func TestSessionsEmpty(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Get(srv.URL + "/api/sessions")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var recs []store.SessionRecord
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&recs))
	require.Empty(t, recs)
}
