// Package mathblitz is the timed arithmetic game screen.
package mathblitz

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nandinis/edudeck/internal/catalog"
	"github.com/nandinis/edudeck/internal/engine"
	"github.com/nandinis/edudeck/internal/mathblitz"
	"github.com/nandinis/edudeck/internal/router"
	"github.com/nandinis/edudeck/internal/score"
	"github.com/nandinis/edudeck/internal/screen"
	"github.com/nandinis/edudeck/internal/screens/play"
	"github.com/nandinis/edudeck/internal/screens/shared"
	"github.com/nandinis/edudeck/internal/screens/summary"
	"github.com/nandinis/edudeck/internal/store"
	"github.com/nandinis/edudeck/internal/ui/components"
	"github.com/nandinis/edudeck/internal/ui/layout"
	"github.com/nandinis/edudeck/internal/ui/theme"
)

// GameID is the catalog identifier for this game.
const GameID = "math-blitz"

// Screen runs a math blitz session.
type Screen struct {
	cat *catalog.Service
	rec *play.Recorder

	sess    *engine.Session
	gen     *mathblitz.Generator
	problem mathblitz.Problem

	diffSelect shared.DifficultySelect
	input      components.TextInput
	toast      components.Toast
	answered   int
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.BestScoreProvider = (*Screen)(nil)

// New creates the math blitz screen in difficulty selection.
func New(cat *catalog.Service, st *store.Store) *Screen {
	return &Screen{
		cat:        cat,
		rec:        play.NewRecorder(st),
		sess:       engine.NewSession(engine.Config{GameID: GameID}),
		gen:        mathblitz.New(rand.New(rand.NewSource(time.Now().UnixNano()))),
		diffSelect: shared.NewDifficultySelect(),
		input:      components.NewTextInput("Answer...", true, 8),
	}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Math Blitz"
}

func (s *Screen) BestScore() int {
	return s.rec.BestScore(GameID)
}

func (s *Screen) KeyHints() []layout.KeyHint {
	switch s.sess.Phase {
	case engine.PhaseDifficultySelect:
		return shared.DifficultyKeyHints()
	case engine.PhaseReady, engine.PhaseCompleted:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Quit game"},
		}
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.toast.Update(msg)

	switch msg := msg.(type) {
	case play.TickMsg:
		if msg.Generation != s.sess.Generation {
			return s, nil
		}
		s.sess.Tick()
		if s.sess.Terminal() {
			return s, s.finish()
		}
		return s, play.TickCmd(s.sess.Generation)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.sess.Active() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch s.sess.Phase {
	case engine.PhaseDifficultySelect:
		if d, ok := s.diffSelect.Handle(key); ok {
			_ = s.sess.SelectDifficulty(d)
		}
		return s, nil

	case engine.PhaseReady, engine.PhaseCompleted:
		if key == "enter" {
			return s, s.start()
		}
		return s, nil

	case engine.PhaseActive:
		if key == "enter" {
			return s.submit()
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// start arms the timer and deals the first problem.
func (s *Screen) start() tea.Cmd {
	if err := s.sess.Start(); err != nil {
		return nil
	}
	s.answered = 0
	s.rec.Begin(GameID, s.sess.Diff)
	s.problem = s.gen.Next(s.sess.Tier, s.sess.Diff)
	s.input.Reset()
	return tea.Batch(s.input.Init(), play.TickCmd(s.sess.Generation))
}

func (s *Screen) submit() (screen.Screen, tea.Cmd) {
	if s.input.Value() == "" {
		return s, nil
	}
	s.answered++

	var cmd tea.Cmd
	if mathblitz.Check(s.problem, s.input.Value()) {
		pts := score.MathPoints(s.sess.Tier, s.sess.Diff, s.sess.Streak)
		s.sess.AddPoints(pts)
		s.sess.RecordCorrect()
		cmd = s.toast.Show(fmt.Sprintf("+%d", pts), components.ToastSuccess, 1500*time.Millisecond)
	} else {
		s.sess.RecordMiss()
		cmd = s.toast.Show(
			fmt.Sprintf("Answer: %d", s.problem.Answer),
			components.ToastError, 1500*time.Millisecond)
	}

	s.problem = s.gen.Next(s.sess.Tier, s.sess.Diff)
	s.input.Reset()
	return s, cmd
}

// finish persists the session exactly once and shows the summary.
func (s *Screen) finish() tea.Cmd {
	best, newHigh := s.rec.Finish(GameID, s.sess.Diff, play.Outcome{
		Score:           s.sess.Score,
		RoundsCompleted: s.sess.RoundsCompleted,
		LevelCompleted:  s.sess.Tier,
		DurationSecs:    s.sess.ElapsedSecs,
	})
	result := summary.Result{
		GameTitle:    "Math Blitz",
		Difficulty:   string(s.sess.Diff),
		Score:        s.sess.Score,
		BestScore:    best,
		NewHighScore: newHigh,
		DurationSecs: s.sess.ElapsedSecs,
		Lines: []string{
			fmt.Sprintf("Solved: %d of %d", s.sess.RoundsCompleted, s.answered),
			fmt.Sprintf("Reached tier %d", s.sess.Tier),
		},
	}
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: summary.New(result)}
	}
}

func (s *Screen) View(width, height int) string {
	switch s.sess.Phase {
	case engine.PhaseDifficultySelect:
		return s.diffSelect.View(width, height, "MATH BLITZ",
			"Solve as many problems as you can before time runs out.\nHarder problems are worth more — keep a streak going!")

	case engine.PhaseReady:
		return shared.RenderReady(width, height, "MATH BLITZ", s.sess.Diff,
			fmt.Sprintf("You have %d seconds.\nPress Enter when you're ready!",
				int(s.sess.Profile.TimeLimit.Seconds())))

	case engine.PhaseCompleted:
		return shared.RenderPlayAgain(width, height, s.sess.Score)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(shared.RenderHUD(width,
		fmt.Sprintf("⏱ %ds", s.sess.RemainingSecs),
		fmt.Sprintf("★ %d", s.sess.Score),
		fmt.Sprintf("🔥 %d", s.sess.Streak),
		fmt.Sprintf("tier %d", s.sess.Tier),
	))
	b.WriteString("\n\n")

	limit := int(s.sess.Profile.TimeLimit.Seconds())
	if limit > 0 {
		bar := components.NewProgressBar("", float64(s.sess.RemainingSecs)/float64(limit), false, 32)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render(s.problem.Text())))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View()))
	b.WriteString("\n\n")

	if s.toast.Visible() {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.toast.View()))
		b.WriteString("\n")
	}

	return b.String()
}
