// Package stats shows per-game progress records and recent sessions.
package stats

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nandinis/edudeck/internal/screen"
	"github.com/nandinis/edudeck/internal/store"
	"github.com/nandinis/edudeck/internal/ui/layout"
	"github.com/nandinis/edudeck/internal/ui/theme"
)

// trackedGames is the display order of the progress table.
var trackedGames = []struct {
	ID    string
	Title string
}{
	{"math-blitz", "Math Blitz"},
	{"word-explorer", "Word Explorer"},
	{"memory-match", "Memory Match"},
	{"timeline-sort", "Timeline Sort"},
	{"logic-grid", "Logic Grid"},
}

type statsLoadedMsg struct {
	Progress []store.Progress
	Recent   []store.SessionRecord
	Err      error
}

// StatsScreen displays stored progress and the session log.
type StatsScreen struct {
	st       *store.Store
	progress []store.Progress
	recent   []store.SessionRecord
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a new StatsScreen.
func New(st *store.Store) *StatsScreen {
	return &StatsScreen{st: st}
}

func (s *StatsScreen) Init() tea.Cmd {
	st := s.st
	return func() tea.Msg {
		if st == nil {
			return statsLoadedMsg{}
		}
		ctx := context.Background()

		var progress []store.Progress
		for _, g := range trackedGames {
			p, err := st.ProgressRepo().Load(ctx, g.ID)
			if err != nil {
				return statsLoadedMsg{Err: err}
			}
			progress = append(progress, *p)
		}

		recent, err := st.EventRepo().RecentSessions(ctx, 10)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		return statsLoadedMsg{Progress: progress, Recent: recent}
	}
}

func (s *StatsScreen) Title() string {
	return "Stats"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(statsLoadedMsg); ok {
		if m.Err != nil {
			s.errMsg = m.Err.Error()
		} else {
			s.progress = m.Progress
			s.recent = m.Recent
		}
		s.loaded = true
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading stats...")
	}

	var b strings.Builder
	b.WriteString("\n")

	header := fmt.Sprintf("  %-16s %10s %8s %10s  %s", "Game", "Best", "Levels", "Time", "Last played")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(header)))
	b.WriteString("\n")
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 64)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n")

	for i, g := range trackedGames {
		var p store.Progress
		if i < len(s.progress) {
			p = s.progress[i]
		}
		last := "never"
		if p.LastPlayed != nil {
			last = p.LastPlayed.Format("Jan 02, 2006")
		}
		mins := p.TotalPlayTimeSecs / 60
		secs := p.TotalPlayTimeSecs % 60
		line := fmt.Sprintf("  %-16s %10d %8d %7d:%02d  %s",
			g.Title, p.HighScore, p.LevelsCompleted, mins, secs, last)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if p.LastPlayed == nil {
			style = style.Foreground(theme.TextDim)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Recent sessions")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n")

	if len(s.recent) == 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
				Render("No sessions yet. Go play something!")))
		b.WriteString("\n")
		return b.String()
	}

	for _, r := range s.recent {
		mins := r.DurationSecs / 60
		secs := r.DurationSecs % 60
		line := fmt.Sprintf("  %s  %-16s %-8s %6d pts  %d:%02d",
			r.Timestamp.Format("Jan 02"), r.GameID, r.Difficulty, r.Score, mins, secs)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
