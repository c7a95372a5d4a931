// Package timeline is the chronology-ordering game screen.
package timeline

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nandinis/edudeck/internal/catalog"
	"github.com/nandinis/edudeck/internal/engine"
	"github.com/nandinis/edudeck/internal/router"
	"github.com/nandinis/edudeck/internal/score"
	"github.com/nandinis/edudeck/internal/screen"
	"github.com/nandinis/edudeck/internal/screens/play"
	"github.com/nandinis/edudeck/internal/screens/shared"
	"github.com/nandinis/edudeck/internal/screens/summary"
	"github.com/nandinis/edudeck/internal/store"
	"github.com/nandinis/edudeck/internal/timeline"
	"github.com/nandinis/edudeck/internal/ui/components"
	"github.com/nandinis/edudeck/internal/ui/layout"
	"github.com/nandinis/edudeck/internal/ui/theme"
)

// GameID is the catalog identifier for this game.
const GameID = "timeline-sort"

type levelsMsg struct {
	Levels [][]catalog.Event
	Err    error
}

// Screen runs a timeline sort session. Untimed: the challenge is
// getting the order right, not speed.
type Screen struct {
	cat *catalog.Service
	rec *play.Recorder

	sess   *engine.Session
	levels [][]catalog.Event
	level  int
	round  *timeline.Round
	cursor int

	diffSelect shared.DifficultySelect
	toast      components.Toast
	levelsDone int
	loading    bool
	errMsg     string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.BestScoreProvider = (*Screen)(nil)

// New creates the timeline screen in difficulty selection.
func New(cat *catalog.Service, st *store.Store) *Screen {
	return &Screen{
		cat:        cat,
		rec:        play.NewRecorder(st),
		sess:       engine.NewSession(engine.Config{GameID: GameID, Untimed: true}),
		diffSelect: shared.NewDifficultySelect(),
	}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Timeline Sort"
}

func (s *Screen) BestScore() int {
	return s.rec.BestScore(GameID)
}

func (s *Screen) KeyHints() []layout.KeyHint {
	switch {
	case s.errMsg != "":
		return []layout.KeyHint{
			{Key: "R", Description: "Retry"},
			{Key: "Esc", Description: "Back"},
		}
	case s.sess.Phase == engine.PhaseDifficultySelect:
		return shared.DifficultyKeyHints()
	case s.sess.Phase == engine.PhaseReady, s.sess.Phase == engine.PhaseCompleted:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Back"},
		}
	case s.sess.Phase == engine.PhaseRoundTransition:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next level"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose event"},
			{Key: "Enter", Description: "Place"},
			{Key: "U", Description: "Undo"},
			{Key: "C", Description: "Check"},
			{Key: "Esc", Description: "Quit game"},
		}
	}
}

func (s *Screen) loadLevels() tea.Cmd {
	cat := s.cat
	diff := string(s.sess.Diff)
	return func() tea.Msg {
		levels, err := cat.EventLevels(context.Background(), diff)
		return levelsMsg{Levels: levels, Err: err}
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.toast.Update(msg)

	switch msg := msg.(type) {
	case levelsMsg:
		s.loading = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.errMsg = ""
		s.levels = msg.Levels
		return s, nil

	case play.TickMsg:
		if msg.Generation != s.sess.Generation {
			return s, nil
		}
		s.sess.Tick()
		return s, play.TickCmd(s.sess.Generation)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		if key == "r" || key == "R" {
			s.errMsg = ""
			s.loading = true
			return s, s.loadLevels()
		}
		return s, nil
	}

	switch s.sess.Phase {
	case engine.PhaseDifficultySelect:
		if d, ok := s.diffSelect.Handle(key); ok {
			_ = s.sess.SelectDifficulty(d)
			s.loading = true
			return s, s.loadLevels()
		}
		return s, nil

	case engine.PhaseReady, engine.PhaseCompleted:
		if key == "enter" && !s.loading && len(s.levels) > 0 {
			return s, s.start()
		}
		return s, nil

	case engine.PhaseRoundTransition:
		if key == "enter" {
			_ = s.sess.ResumeActive()
			s.openLevel()
		}
		return s, nil

	case engine.PhaseActive:
		return s.handlePlayKey(key)
	}
	return s, nil
}

func (s *Screen) handlePlayKey(key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "up", "k":
		s.moveCursor(-1)
	case "down", "j":
		s.moveCursor(1)
	case "enter":
		s.placeCurrent()
	case "u", "U", "backspace":
		s.undoLast()
	case "c", "C":
		return s.check()
	}
	return s, nil
}

// moveCursor steps over pool entries that are already placed.
func (s *Screen) moveCursor(dir int) {
	n := len(s.round.Pool)
	for i := s.cursor + dir; i >= 0 && i < n; i += dir {
		if !s.round.Placed(i) {
			s.cursor = i
			return
		}
	}
}

// placeCurrent drops the highlighted event into the first empty slot.
func (s *Screen) placeCurrent() {
	if s.round.Placed(s.cursor) {
		return
	}
	for slot := 0; slot < s.round.Size(); slot++ {
		if s.round.Slot(slot) == nil {
			s.round.Place(s.cursor, slot)
			s.moveCursor(1)
			if s.round.Placed(s.cursor) {
				s.moveCursor(-1)
			}
			return
		}
	}
}

// undoLast empties the last filled slot.
func (s *Screen) undoLast() {
	for slot := s.round.Size() - 1; slot >= 0; slot-- {
		if s.round.Slot(slot) != nil {
			s.round.Remove(slot)
			return
		}
	}
}

func (s *Screen) check() (screen.Screen, tea.Cmd) {
	ok, err := s.round.Check()
	if errors.Is(err, timeline.ErrIncomplete) {
		return s, s.toast.Show("Place every event first", components.ToastError, 1500*time.Millisecond)
	}
	if !ok {
		s.sess.RecordMiss()
		return s, s.toast.Show("Not quite — adjust the order", components.ToastError, 1500*time.Millisecond)
	}

	pts := score.TimelinePoints(s.level + 1)
	s.sess.AddPoints(pts)
	s.sess.RecordCorrect()
	s.levelsDone++

	if s.level+1 >= len(s.levels) {
		s.sess.Complete()
		return s, s.finish()
	}
	s.level++
	_ = s.sess.BeginRoundTransition()
	return s, s.toast.Show(fmt.Sprintf("+%d", pts), components.ToastSuccess, 2*time.Second)
}

func (s *Screen) start() tea.Cmd {
	if err := s.sess.Start(); err != nil {
		return nil
	}
	s.level = 0
	s.levelsDone = 0
	s.rec.Begin(GameID, s.sess.Diff)
	s.openLevel()
	return play.TickCmd(s.sess.Generation)
}

func (s *Screen) openLevel() {
	s.round = timeline.NewRound(s.levels[s.level],
		rand.New(rand.NewSource(time.Now().UnixNano())))
	s.cursor = 0
}

func (s *Screen) finish() tea.Cmd {
	best, newHigh := s.rec.Finish(GameID, s.sess.Diff, play.Outcome{
		Score:           s.sess.Score,
		RoundsCompleted: s.sess.RoundsCompleted,
		LevelCompleted:  s.levelsDone,
		DurationSecs:    s.sess.ElapsedSecs,
	})
	result := summary.Result{
		GameTitle:    "Timeline Sort",
		Difficulty:   string(s.sess.Diff),
		Score:        s.sess.Score,
		BestScore:    best,
		NewHighScore: newHigh,
		DurationSecs: s.sess.ElapsedSecs,
		Lines: []string{
			fmt.Sprintf("Levels cleared: %d", s.levelsDone),
		},
	}
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: summary.New(result)}
	}
}

func (s *Screen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.Error).
			Render("Could not load events.\n\n" + s.errMsg + "\n\nPress R to retry.")
	}
	if s.loading {
		return lipgloss.NewStyle().
			Width(width).Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Loading events...")
	}

	switch s.sess.Phase {
	case engine.PhaseDifficultySelect:
		return s.diffSelect.View(width, height, "TIMELINE SORT",
			"Put historical events in chronological order.\nNo timer — take your time and think it through.")

	case engine.PhaseReady:
		return shared.RenderReady(width, height, "TIMELINE SORT", s.sess.Diff,
			"Place each event into the timeline, earliest first.\nPress C to check your order.\nPress Enter when you're ready!")

	case engine.PhaseCompleted:
		return shared.RenderPlayAgain(width, height, s.sess.Score)

	case engine.PhaseRoundTransition:
		return lipgloss.NewStyle().
			Width(width).Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.Text).
			Render(fmt.Sprintf("Correct!\n\nLevel %d of %d up next.\n\nPress Enter to continue.",
				s.level+1, len(s.levels)))
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(shared.RenderHUD(width,
		fmt.Sprintf("★ %d", s.sess.Score),
		fmt.Sprintf("level %d/%d", s.level+1, len(s.levels)),
	))
	b.WriteString("\n\n")

	// Timeline slots.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Timeline (earliest → latest)")))
	b.WriteString("\n")
	for slot := 0; slot < s.round.Size(); slot++ {
		var line string
		if e := s.round.Slot(slot); e != nil {
			line = fmt.Sprintf("%d. %s", slot+1, e.Label)
		} else {
			line = fmt.Sprintf("%d. ────────────", slot+1)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Secondary).Render(line)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Unplaced events.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Events")))
	b.WriteString("\n")
	for i, e := range s.round.Pool {
		if s.round.Placed(i) {
			continue
		}
		style := lipgloss.NewStyle().Foreground(theme.Text)
		prefix := "  "
		if i == s.cursor {
			style = style.Foreground(theme.Primary).Bold(true)
			prefix = "▸ "
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(prefix+e.Label)))
		b.WriteString("\n")
	}

	if s.toast.Visible() {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.toast.View()))
		b.WriteString("\n")
	}

	return b.String()
}
