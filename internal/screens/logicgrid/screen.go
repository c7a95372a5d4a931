// Package logicgrid is the deduction puzzle screen.
package logicgrid

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nandinis/edudeck/internal/catalog"
	"github.com/nandinis/edudeck/internal/engine"
	"github.com/nandinis/edudeck/internal/logicgrid"
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
const GameID = "logic-grid"

type puzzlesMsg struct {
	Puzzles []catalog.Puzzle
	Err     error
}

// Screen runs a logic grid session over the catalog's puzzles.
type Screen struct {
	cat *catalog.Service
	rec *play.Recorder

	sess    *engine.Session
	puzzles []catalog.Puzzle
	puzzle  int
	grid    *logicgrid.Grid
	row     int
	col     int

	toast   components.Toast
	solved  int
	loading bool
	errMsg  string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.BestScoreProvider = (*Screen)(nil)

// New creates the logic grid screen. Untimed, no difficulty profile.
func New(cat *catalog.Service, st *store.Store) *Screen {
	return &Screen{
		cat: cat,
		rec: play.NewRecorder(st),
		sess: engine.NewSession(engine.Config{
			GameID:               GameID,
			Untimed:              true,
			SkipDifficultySelect: true,
			FixedDifficulty:      engine.Hard,
		}),
		loading: true,
	}
}

func (s *Screen) Init() tea.Cmd {
	cat := s.cat
	return func() tea.Msg {
		puzzles, err := cat.Puzzles(context.Background())
		return puzzlesMsg{Puzzles: puzzles, Err: err}
	}
}

func (s *Screen) Title() string {
	return "Logic Grid"
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
	case s.sess.Phase == engine.PhaseReady, s.sess.Phase == engine.PhaseCompleted:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Back"},
		}
	case s.sess.Phase == engine.PhaseRoundTransition:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next puzzle"},
		}
	default:
		return []layout.KeyHint{
			{Key: "←↑↓→", Description: "Move"},
			{Key: "Enter", Description: "Mark"},
			{Key: "C", Description: "Check"},
			{Key: "X", Description: "Clear grid"},
			{Key: "Esc", Description: "Quit game"},
		}
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.toast.Update(msg)

	switch msg := msg.(type) {
	case puzzlesMsg:
		s.loading = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.errMsg = ""
		s.puzzles = msg.Puzzles
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
			return s, s.Init()
		}
		return s, nil
	}
	if s.loading || len(s.puzzles) == 0 {
		return s, nil
	}

	switch s.sess.Phase {
	case engine.PhaseReady, engine.PhaseCompleted:
		if key == "enter" {
			return s, s.start()
		}
		return s, nil

	case engine.PhaseRoundTransition:
		if key == "enter" {
			_ = s.sess.ResumeActive()
			s.openPuzzle()
		}
		return s, nil

	case engine.PhaseActive:
		size := s.puzzles[s.puzzle].Size
		switch key {
		case "left", "h":
			if s.col > 0 {
				s.col--
			}
		case "right", "l":
			if s.col < size-1 {
				s.col++
			}
		case "up", "k":
			if s.row > 0 {
				s.row--
			}
		case "down", "j":
			if s.row < size-1 {
				s.row++
			}
		case "enter", "space":
			s.grid.Toggle(s.row, s.col)
		case "x", "X":
			s.grid.Reset()
		case "c", "C":
			return s.check()
		}
		return s, nil
	}
	return s, nil
}

func (s *Screen) start() tea.Cmd {
	if err := s.sess.Start(); err != nil {
		return nil
	}
	s.puzzle = 0
	s.solved = 0
	s.rec.Begin(GameID, s.sess.Diff)
	s.openPuzzle()
	return play.TickCmd(s.sess.Generation)
}

func (s *Screen) openPuzzle() {
	s.grid = logicgrid.NewGrid(s.puzzles[s.puzzle])
	s.row, s.col = 0, 0
}

func (s *Screen) check() (screen.Screen, tea.Cmd) {
	if !s.grid.Solved() {
		s.sess.RecordMiss()
		return s, s.toast.Show("Keep deducing — mark the certain pairs",
			components.ToastError, 2*time.Second)
	}

	pts := score.GridPoints(s.puzzle)
	s.sess.AddPoints(pts)
	s.sess.RecordCorrect()
	s.solved++

	if s.puzzle+1 >= len(s.puzzles) {
		s.sess.Complete()
		return s, s.finish()
	}
	s.puzzle++
	_ = s.sess.BeginRoundTransition()
	return s, s.toast.Show(fmt.Sprintf("+%d", pts), components.ToastSuccess, 2*time.Second)
}

func (s *Screen) finish() tea.Cmd {
	best, newHigh := s.rec.Finish(GameID, s.sess.Diff, play.Outcome{
		Score:           s.sess.Score,
		RoundsCompleted: s.sess.RoundsCompleted,
		LevelCompleted:  s.solved,
		DurationSecs:    s.sess.ElapsedSecs,
	})
	result := summary.Result{
		GameTitle:    "Logic Grid",
		Score:        s.sess.Score,
		BestScore:    best,
		NewHighScore: newHigh,
		DurationSecs: s.sess.ElapsedSecs,
		Lines: []string{
			fmt.Sprintf("Puzzles solved: %d", s.solved),
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
			Render("Could not load puzzles.\n\n" + s.errMsg + "\n\nPress R to retry.")
	}
	if s.loading {
		return lipgloss.NewStyle().
			Width(width).Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Loading puzzles...")
	}

	switch s.sess.Phase {
	case engine.PhaseReady:
		return shared.RenderReady(width, height, "LOGIC GRID", s.sess.Diff,
			"Use the clues to match each item pair.\nMark cells O (match) or X (ruled out), then press C.\nPress Enter when you're ready!")

	case engine.PhaseCompleted:
		return shared.RenderPlayAgain(width, height, s.sess.Score)

	case engine.PhaseRoundTransition:
		return lipgloss.NewStyle().
			Width(width).Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.Text).
			Render(fmt.Sprintf("Solved!\n\nPuzzle %d of %d up next.\n\nPress Enter to continue.",
				s.puzzle+1, len(s.puzzles)))
	}

	p := s.puzzles[s.puzzle]
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(shared.RenderHUD(width,
		fmt.Sprintf("★ %d", s.sess.Score),
		fmt.Sprintf("puzzle %d/%d", s.puzzle+1, len(s.puzzles)),
	))
	b.WriteString("\n\n")

	// Clues.
	for i, clue := range p.Clues {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).
				Render(fmt.Sprintf("%d. %s", i+1, clue))))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Column headers.
	header := strings.Repeat(" ", 14)
	for _, item := range p.Items[1] {
		header += fmt.Sprintf("%-12s", truncate(item, 10))
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(header)))
	b.WriteString("\n")

	// Grid rows.
	for r := 0; r < p.Size; r++ {
		line := fmt.Sprintf("%-14s", truncate(p.Items[0][r], 12))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)+s.renderRow(r, p.Size)))
		b.WriteString("\n")
	}

	if s.toast.Visible() {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.toast.View()))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *Screen) renderRow(r, size int) string {
	var cells []string
	for c := 0; c < size; c++ {
		cell := s.grid.Cell(r, c)
		style := lipgloss.NewStyle().Width(12)
		switch cell {
		case logicgrid.Possible:
			style = style.Foreground(theme.Success).Bold(true)
		case logicgrid.Impossible:
			style = style.Foreground(theme.Error)
		default:
			style = style.Foreground(theme.TextDim)
		}
		text := "[" + cell.Symbol() + "]"
		if r == s.row && c == s.col {
			text = "▸" + text
			style = style.Bold(true)
		} else {
			text = " " + text
		}
		cells = append(cells, style.Render(text))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
