// Package memorymatch is the pair-matching card game screen.
package memorymatch

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nandinis/edudeck/internal/catalog"
	"github.com/nandinis/edudeck/internal/engine"
	"github.com/nandinis/edudeck/internal/memorymatch"
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
const GameID = "memory-match"

// settleDelay is how long a missed pair stays visible.
const settleDelay = 900 * time.Millisecond

type levelsMsg struct {
	Levels []catalog.PairSet
	Err    error
}

// settleMsg flips a missed pair back over. Seq guards against a stale
// settle after a restart.
type settleMsg struct {
	Seq int
}

// Screen runs a memory match session across the catalog's levels.
type Screen struct {
	cat *catalog.Service
	rec *play.Recorder

	sess   *engine.Session
	levels []catalog.PairSet
	level  int
	deck   *memorymatch.Deck
	cursor int

	levelStart int // session elapsed when the level started
	totalMoves int
	settleSeq  int
	levelsDone int
	toast      components.Toast
	loading    bool
	errMsg     string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.BestScoreProvider = (*Screen)(nil)

// New creates the memory match screen. The game has no difficulty
// profile; the levels themselves ramp up.
func New(cat *catalog.Service, st *store.Store) *Screen {
	return &Screen{
		cat: cat,
		rec: play.NewRecorder(st),
		sess: engine.NewSession(engine.Config{
			GameID:               GameID,
			CountUp:              true,
			SkipDifficultySelect: true,
			FixedDifficulty:      engine.Medium,
		}),
		loading: true,
	}
}

func (s *Screen) Init() tea.Cmd {
	cat := s.cat
	return func() tea.Msg {
		levels, err := cat.PairLevels(context.Background())
		return levelsMsg{Levels: levels, Err: err}
	}
}

func (s *Screen) Title() string {
	return "Memory Match"
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
			{Key: "Enter", Description: "Next level"},
		}
	default:
		return []layout.KeyHint{
			{Key: "←↑↓→", Description: "Move"},
			{Key: "Enter", Description: "Flip"},
			{Key: "Esc", Description: "Quit game"},
		}
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

	case settleMsg:
		if msg.Seq == s.settleSeq {
			s.deck.Settle()
		}
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
	if s.loading || len(s.levels) == 0 {
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
			s.openLevel()
		}
		return s, nil

	case engine.PhaseActive:
		cols := s.columns()
		switch key {
		case "left", "h":
			if s.cursor%cols > 0 {
				s.cursor--
			}
		case "right", "l":
			if s.cursor%cols < cols-1 && s.cursor+1 < len(s.deck.Cards) {
				s.cursor++
			}
		case "up", "k":
			if s.cursor-cols >= 0 {
				s.cursor -= cols
			}
		case "down", "j":
			if s.cursor+cols < len(s.deck.Cards) {
				s.cursor += cols
			}
		case "enter", "space":
			return s.flip()
		}
		return s, nil
	}
	return s, nil
}

func (s *Screen) start() tea.Cmd {
	if err := s.sess.Start(); err != nil {
		return nil
	}
	s.level = 0
	s.levelsDone = 0
	s.totalMoves = 0
	s.rec.Begin(GameID, s.sess.Diff)
	s.openLevel()
	return play.TickCmd(s.sess.Generation)
}

// openLevel deals a fresh deck for the current level.
func (s *Screen) openLevel() {
	s.deck = memorymatch.NewDeck(s.levels[s.level].Pairs,
		rand.New(rand.NewSource(time.Now().UnixNano())))
	s.cursor = 0
	s.levelStart = s.sess.ElapsedSecs
	s.settleSeq++
}

func (s *Screen) flip() (screen.Screen, tea.Cmd) {
	switch s.deck.Flip(s.cursor) {
	case memorymatch.FlipMatch:
		pts := score.MatchPoints(s.deck.Moves())
		s.sess.AddPoints(pts)
		s.sess.RecordCorrect()
		if s.deck.Complete() {
			return s.completeLevel()
		}
		return s, s.toast.Show(fmt.Sprintf("+%d", pts), components.ToastSuccess, time.Second)

	case memorymatch.FlipMiss:
		s.sess.RecordMiss()
		s.settleSeq++
		seq := s.settleSeq
		return s, tea.Tick(settleDelay, func(time.Time) tea.Msg {
			return settleMsg{Seq: seq}
		})
	}
	return s, nil
}

// completeLevel awards the efficiency bonus and advances or finishes.
func (s *Screen) completeLevel() (screen.Screen, tea.Cmd) {
	levelElapsed := s.sess.ElapsedSecs - s.levelStart
	bonus := score.MatchBonus(levelElapsed, s.deck.Moves())
	s.sess.AddPoints(bonus)
	s.totalMoves += s.deck.Moves()
	s.levelsDone++

	if s.level+1 >= len(s.levels) {
		s.sess.Complete()
		return s, s.finish()
	}

	s.level++
	_ = s.sess.BeginRoundTransition()
	return s, s.toast.Show(fmt.Sprintf("Level clear! +%d bonus", bonus),
		components.ToastSuccess, 2*time.Second)
}

func (s *Screen) finish() tea.Cmd {
	best, newHigh := s.rec.Finish(GameID, s.sess.Diff, play.Outcome{
		Score:           s.sess.Score,
		RoundsCompleted: s.sess.RoundsCompleted,
		LevelCompleted:  s.levelsDone,
		DurationSecs:    s.sess.ElapsedSecs,
	})
	result := summary.Result{
		GameTitle:    "Memory Match",
		Score:        s.sess.Score,
		BestScore:    best,
		NewHighScore: newHigh,
		DurationSecs: s.sess.ElapsedSecs,
		Lines: []string{
			fmt.Sprintf("Levels cleared: %d", s.levelsDone),
			fmt.Sprintf("Total moves: %d", s.totalMoves),
		},
	}
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: summary.New(result)}
	}
}

// columns is the card grid width for the current deck.
func (s *Screen) columns() int {
	n := len(s.deck.Cards)
	switch {
	case n <= 8:
		return 4
	case n <= 12:
		return 4
	default:
		return 6
	}
}

func (s *Screen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.Error).
			Render("Could not load levels.\n\n" + s.errMsg + "\n\nPress R to retry.")
	}
	if s.loading {
		return lipgloss.NewStyle().
			Width(width).Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Shuffling cards...")
	}

	switch s.sess.Phase {
	case engine.PhaseReady:
		return shared.RenderReady(width, height, "MEMORY MATCH", s.sess.Diff,
			"Flip cards to find matching pairs.\nFewer moves and faster clears earn bigger bonuses.\nPress Enter when you're ready!")

	case engine.PhaseCompleted:
		return shared.RenderPlayAgain(width, height, s.sess.Score)

	case engine.PhaseRoundTransition:
		name := s.levels[s.level].Theme
		return lipgloss.NewStyle().
			Width(width).Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.Text).
			Render(fmt.Sprintf("Level clear!\n\nNext up: %s\n\nPress Enter to continue.", name))
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(shared.RenderHUD(width,
		fmt.Sprintf("⏱ %ds", s.sess.ElapsedSecs),
		fmt.Sprintf("★ %d", s.sess.Score),
		fmt.Sprintf("moves %d", s.deck.Moves()),
		fmt.Sprintf("level %d/%d", s.level+1, len(s.levels)),
	))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(s.levels[s.level].Theme)))
	b.WriteString("\n\n")

	cols := s.columns()
	var rows []string
	for start := 0; start < len(s.deck.Cards); start += cols {
		end := start + cols
		if end > len(s.deck.Cards) {
			end = len(s.deck.Cards)
		}
		var tiles []string
		for i := start; i < end; i++ {
			tiles = append(tiles, s.renderCard(i))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	}
	for _, row := range rows {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, row))
		b.WriteString("\n")
	}

	if s.toast.Visible() {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.toast.View()))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *Screen) renderCard(i int) string {
	card := s.deck.Cards[i]
	face := "▒▒▒▒▒▒"
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Foreground(theme.TextDim).
		Width(10).
		Align(lipgloss.Center)

	if s.deck.FaceUp(i) {
		face = card.Face
		style = style.Foreground(theme.Text)
		if card.Matched {
			style = style.BorderForeground(theme.Success).Foreground(theme.Success)
		}
	}
	if i == s.cursor {
		style = style.BorderForeground(theme.ArcadeYellow).Bold(true)
	}
	return style.Render(face)
}
