package memorymatch

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/nandinis/edudeck/internal/catalog"
	"github.com/nandinis/edudeck/internal/engine"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testLevels() []catalog.PairSet {
	return []catalog.PairSet{
		{Theme: "Animal Sounds", Pairs: []catalog.Pair{
			{Key: "cow", Prompt: "Cow", Answer: "Moo"},
		}},
		{Theme: "Capital Cities", Pairs: []catalog.Pair{
			{Key: "fr", Prompt: "France", Answer: "Paris"},
		}},
	}
}

func startedScreen(t *testing.T) *Screen {
	t.Helper()
	s := New(nil, nil)
	s.Update(levelsMsg{Levels: testLevels()})
	if s.sess.Phase != engine.PhaseReady {
		t.Fatalf("expected ready phase, got %v", s.sess.Phase)
	}
	s.Update(specialKey(tea.KeyEnter))
	if s.sess.Phase != engine.PhaseActive {
		t.Fatalf("expected active phase, got %v", s.sess.Phase)
	}
	return s
}

func TestViewShowsLevelTheme(t *testing.T) {
	s := startedScreen(t)
	if v := s.View(80, 24); !strings.Contains(v, "Animal Sounds") {
		t.Error("active view does not name the current level theme")
	}
}

func TestLevelClearAnnouncesNextTheme(t *testing.T) {
	s := startedScreen(t)

	// One pair in the level: flip both cards to clear it.
	s.Update(specialKey(tea.KeyEnter))
	s.Update(keyPress('l'))
	s.Update(specialKey(tea.KeyEnter))

	if s.sess.Phase != engine.PhaseRoundTransition {
		t.Fatalf("expected round transition, got %v", s.sess.Phase)
	}
	if v := s.View(80, 24); !strings.Contains(v, "Capital Cities") {
		t.Error("transition view does not name the next level theme")
	}
}
