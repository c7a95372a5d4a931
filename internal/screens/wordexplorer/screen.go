// Package wordexplorer is the letter-board word hunt screen.
package wordexplorer

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
	"github.com/nandinis/edudeck/internal/ui/components"
	"github.com/nandinis/edudeck/internal/ui/layout"
	"github.com/nandinis/edudeck/internal/ui/theme"
	"github.com/nandinis/edudeck/internal/wordexplorer"
)

// GameID is the catalog identifier for this game.
const GameID = "word-explorer"

// timeLimit is fixed for every difficulty; the difficulty changes the
// letter pool and dictionary instead.
const timeLimit = 3 * time.Minute

type contentMsg struct {
	Content catalog.WordContent
	Err     error
}

// Screen runs a word explorer session.
type Screen struct {
	cat *catalog.Service
	rec *play.Recorder

	sess  *engine.Session
	board *wordexplorer.Board

	diffSelect shared.DifficultySelect
	toast      components.Toast
	loading    bool
	errMsg     string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.BestScoreProvider = (*Screen)(nil)

// New creates the word explorer screen in difficulty selection.
func New(cat *catalog.Service, st *store.Store) *Screen {
	return &Screen{
		cat:        cat,
		rec:        play.NewRecorder(st),
		sess:       engine.NewSession(engine.Config{GameID: GameID, TimeLimit: timeLimit}),
		diffSelect: shared.NewDifficultySelect(),
	}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Word Explorer"
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
	default:
		return []layout.KeyHint{
			{Key: "a-z", Description: "Pick letter"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Backspace", Description: "Clear"},
			{Key: "Esc", Description: "Quit game"},
		}
	}
}

// loadContent fetches the letter pool for the chosen difficulty.
func (s *Screen) loadContent() tea.Cmd {
	cat := s.cat
	diff := string(s.sess.Diff)
	return func() tea.Msg {
		wc, err := cat.WordContent(context.Background(), diff)
		return contentMsg{Content: wc, Err: err}
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.toast.Update(msg)

	switch msg := msg.(type) {
	case contentMsg:
		s.loading = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.errMsg = ""
		s.board = wordexplorer.NewBoard(msg.Content, rand.New(rand.NewSource(time.Now().UnixNano())))
		return s, nil

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
	return s, nil
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		if key == "r" || key == "R" {
			s.errMsg = ""
			s.loading = true
			return s, s.loadContent()
		}
		return s, nil
	}

	switch s.sess.Phase {
	case engine.PhaseDifficultySelect:
		if d, ok := s.diffSelect.Handle(key); ok {
			_ = s.sess.SelectDifficulty(d)
			s.loading = true
			return s, s.loadContent()
		}
		return s, nil

	case engine.PhaseReady, engine.PhaseCompleted:
		if key == "enter" && s.board != nil && !s.loading {
			return s, s.start()
		}
		return s, nil

	case engine.PhaseActive:
		switch key {
		case "enter":
			return s.submit()
		case "backspace":
			s.board.Clear()
			return s, nil
		}
		if len(key) == 1 && key[0] >= 'a' && key[0] <= 'z' {
			s.pickLetter(strings.ToUpper(key))
		}
		return s, nil
	}
	return s, nil
}

// pickLetter selects the first unselected tile showing the letter.
func (s *Screen) pickLetter(letter string) {
	for i, l := range s.board.Letters {
		if l == letter && !s.board.Selected(i) {
			s.board.Select(i)
			return
		}
	}
}

func (s *Screen) start() tea.Cmd {
	if err := s.sess.Start(); err != nil {
		return nil
	}
	s.rec.Begin(GameID, s.sess.Diff)
	return tea.Batch(s.loadFreshBoard(), play.TickCmd(s.sess.Generation))
}

// loadFreshBoard re-deals letters so replays get a new rack.
func (s *Screen) loadFreshBoard() tea.Cmd {
	s.loading = true
	return s.loadContent()
}

func (s *Screen) submit() (screen.Screen, tea.Cmd) {
	fw, err := s.board.Submit()
	if err != nil {
		var text string
		switch {
		case errors.Is(err, wordexplorer.ErrTooShort):
			text = "At least 3 letters"
		case errors.Is(err, wordexplorer.ErrAlreadyFound):
			text = "Already found!"
		default:
			text = "Not in the dictionary"
		}
		s.sess.RecordMiss()
		return s, s.toast.Show(text, components.ToastError, 1500*time.Millisecond)
	}

	pts := score.WordPoints(len(fw.Word), s.sess.Diff)
	s.sess.AddPoints(pts)
	s.sess.RecordCorrect()
	return s, s.toast.Show(
		fmt.Sprintf("+%d  %s — %s", pts, fw.Word, fw.Definition),
		components.ToastSuccess, 2500*time.Millisecond)
}

func (s *Screen) finish() tea.Cmd {
	found := s.board.Found()
	best, newHigh := s.rec.Finish(GameID, s.sess.Diff, play.Outcome{
		Score:           s.sess.Score,
		RoundsCompleted: len(found),
		DurationSecs:    s.sess.ElapsedSecs,
	})
	lines := []string{fmt.Sprintf("Words found: %d", len(found))}
	if len(found) > 0 {
		lines = append(lines, strings.Join(found, ", "))
	}
	result := summary.Result{
		GameTitle:    "Word Explorer",
		Difficulty:   string(s.sess.Diff),
		Score:        s.sess.Score,
		BestScore:    best,
		NewHighScore: newHigh,
		DurationSecs: s.sess.ElapsedSecs,
		Lines:        lines,
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
			Render("Could not load word content.\n\n" + s.errMsg + "\n\nPress R to retry.")
	}
	if s.loading {
		return lipgloss.NewStyle().
			Width(width).Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Dealing letters...")
	}

	switch s.sess.Phase {
	case engine.PhaseDifficultySelect:
		return s.diffSelect.View(width, height, "WORD EXPLORER",
			"Build words from the letter rack.\nLonger words are worth more points.")

	case engine.PhaseReady:
		return shared.RenderReady(width, height, "WORD EXPLORER", s.sess.Diff,
			"You have 3 minutes.\nType letters to build a word, Enter to submit.\nPress Enter when you're ready!")

	case engine.PhaseCompleted:
		return shared.RenderPlayAgain(width, height, s.sess.Score)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(shared.RenderHUD(width,
		fmt.Sprintf("⏱ %ds", s.sess.RemainingSecs),
		fmt.Sprintf("★ %d", s.sess.Score),
		fmt.Sprintf("words %d", len(s.board.Found())),
	))
	b.WriteString("\n\n")

	// Letter rack: selected tiles are highlighted.
	var tiles []string
	for i, l := range s.board.Letters {
		style := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Foreground(theme.Text).
			Padding(0, 1)
		if s.board.Selected(i) {
			style = style.
				BorderForeground(theme.ArcadeYellow).
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				Bold(true)
		}
		tiles = append(tiles, style.Render(l))
	}
	half := len(tiles) / 2
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.JoinHorizontal(lipgloss.Top, tiles[:half]...)))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.JoinHorizontal(lipgloss.Top, tiles[half:]...)))
	b.WriteString("\n\n")

	current := s.board.Current()
	if current == "" {
		current = "_"
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(current)))
	b.WriteString("\n\n")

	if s.toast.Visible() {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.toast.View()))
		b.WriteString("\n\n")
	}

	if found := s.board.Found(); len(found) > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).
				Render("Found: "+strings.Join(found, "  "))))
		b.WriteString("\n")
	}

	return b.String()
}
