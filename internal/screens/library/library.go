// Package library implements the browsable game catalog screen:
// category filters, free-text search, and game launch.
package library

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nandinis/edudeck/internal/catalog"
	"github.com/nandinis/edudeck/internal/router"
	"github.com/nandinis/edudeck/internal/screen"
	logicgridscreen "github.com/nandinis/edudeck/internal/screens/logicgrid"
	mathblitzscreen "github.com/nandinis/edudeck/internal/screens/mathblitz"
	memorymatchscreen "github.com/nandinis/edudeck/internal/screens/memorymatch"
	timelinescreen "github.com/nandinis/edudeck/internal/screens/timeline"
	wordexplorerscreen "github.com/nandinis/edudeck/internal/screens/wordexplorer"
	"github.com/nandinis/edudeck/internal/store"
	"github.com/nandinis/edudeck/internal/ui/components"
	"github.com/nandinis/edudeck/internal/ui/layout"
	"github.com/nandinis/edudeck/internal/ui/theme"
)

// categories cycled with tab; "All" is the catalog's pseudo-category.
var categories = []string{"All", "Math", "Language", "Memory", "History", "Logic", "Puzzle"}

// gamesLoadedMsg carries the result of an async catalog query.
type gamesLoadedMsg struct {
	Games []catalog.Game
	Err   error
}

// LibraryScreen lists the catalog with filtering and search.
type LibraryScreen struct {
	cat *catalog.Service
	st  *store.Store

	games    []catalog.Game
	selected int
	category int

	search    components.TextInput
	searching bool
	query     string

	loading bool
	errMsg  string
}

var _ screen.Screen = (*LibraryScreen)(nil)
var _ screen.KeyHintProvider = (*LibraryScreen)(nil)

// New creates a new LibraryScreen.
func New(cat *catalog.Service, st *store.Store) *LibraryScreen {
	return &LibraryScreen{
		cat:     cat,
		st:      st,
		search:  components.NewTextInput("Search games...", false, 40),
		loading: true,
	}
}

func (l *LibraryScreen) Init() tea.Cmd {
	return l.load()
}

func (l *LibraryScreen) Title() string {
	return "Game Library"
}

func (l *LibraryScreen) KeyHints() []layout.KeyHint {
	if l.searching {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Search"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	if l.errMsg != "" {
		return []layout.KeyHint{
			{Key: "R", Description: "Retry"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Play"},
		{Key: "Tab", Description: "Category"},
		{Key: "/", Description: "Search"},
		{Key: "Esc", Description: "Back"},
	}
}

// load queries the catalog for the current filter state.
func (l *LibraryScreen) load() tea.Cmd {
	cat := l.cat
	category := categories[l.category]
	query := l.query
	return func() tea.Msg {
		ctx := context.Background()
		var games []catalog.Game
		var err error
		if query != "" {
			games, err = cat.Search(ctx, query)
		} else {
			games, err = cat.ByCategory(ctx, category)
		}
		return gamesLoadedMsg{Games: games, Err: err}
	}
}

func (l *LibraryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case gamesLoadedMsg:
		l.loading = false
		if msg.Err != nil {
			l.errMsg = msg.Err.Error()
			return l, nil
		}
		l.errMsg = ""
		l.games = msg.Games
		if l.selected >= len(l.games) {
			l.selected = 0
		}
		return l, nil

	case tea.KeyMsg:
		return l.handleKey(msg)
	}

	if l.searching {
		var cmd tea.Cmd
		l.search, cmd = l.search.Update(msg)
		return l, cmd
	}
	return l, nil
}

func (l *LibraryScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if l.searching {
		switch key {
		case "enter":
			l.searching = false
			l.query = strings.TrimSpace(l.search.Value())
			l.loading = true
			return l, l.load()
		case "esc":
			l.searching = false
			l.search.Reset()
			return l, nil
		}
		var cmd tea.Cmd
		l.search, cmd = l.search.Update(msg)
		return l, cmd
	}

	if l.errMsg != "" {
		switch key {
		case "r", "R":
			l.errMsg = ""
			l.loading = true
			return l, l.load()
		}
		return l, nil
	}

	switch key {
	case "up", "k":
		if l.selected > 0 {
			l.selected--
		}
	case "down", "j":
		if l.selected < len(l.games)-1 {
			l.selected++
		}
	case "tab":
		l.category = (l.category + 1) % len(categories)
		l.query = ""
		l.search.Reset()
		l.loading = true
		return l, l.load()
	case "/":
		l.searching = true
		return l, l.search.Init()
	case "enter":
		return l.launch()
	}
	return l, nil
}

// launch opens the selected game's screen and bumps its play count.
func (l *LibraryScreen) launch() (screen.Screen, tea.Cmd) {
	if l.selected < 0 || l.selected >= len(l.games) {
		return l, nil
	}
	game := l.games[l.selected]

	var next screen.Screen
	switch game.ID {
	case mathblitzscreen.GameID:
		next = mathblitzscreen.New(l.cat, l.st)
	case wordexplorerscreen.GameID:
		next = wordexplorerscreen.New(l.cat, l.st)
	case memorymatchscreen.GameID:
		next = memorymatchscreen.New(l.cat, l.st)
	case timelinescreen.GameID:
		next = timelinescreen.New(l.cat, l.st)
	case logicgridscreen.GameID:
		next = logicgridscreen.New(l.cat, l.st)
	default:
		return l, nil
	}

	cat := l.cat
	id := game.ID
	return l, tea.Batch(
		func() tea.Msg {
			_, _ = cat.IncrementPlayCount(context.Background(), id)
			return nil
		},
		func() tea.Msg {
			return router.PushScreenMsg{Screen: next}
		},
	)
}

func (l *LibraryScreen) View(width, height int) string {
	if l.loading {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Loading library...")
	}

	if l.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.Error).
			Render("Could not load the library.\n\n" + l.errMsg + "\n\nPress R to retry.")
	}

	var b strings.Builder

	// Filter line: category tabs plus the active search query.
	var tabs []string
	for i, c := range categories {
		if i == l.category && l.query == "" {
			tabs = append(tabs, lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Secondary).
				Bold(true).
				Render(" "+c+" "))
		} else {
			tabs = append(tabs, lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render(" "+c+" "))
		}
	}
	b.WriteString("  " + strings.Join(tabs, ""))
	if l.query != "" {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Render(fmt.Sprintf("   search: %q", l.query)))
	}
	b.WriteString("\n")

	if l.searching {
		b.WriteString("  " + l.search.View() + "\n")
	}
	b.WriteString("\n")

	if len(l.games) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("  No games match."))
		return b.String()
	}

	for i, g := range l.games {
		title := g.Title
		if g.Featured {
			title += " ★"
		}
		meta := fmt.Sprintf("%s · %s · played %d×", g.Category, g.Difficulty, g.PlayCount)

		if i == l.selected {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Primary).
				Bold(true).
				Render("  ▸ "+title) + "\n")
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("    "+g.Description) + "\n")
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render("    "+meta) + "\n")
		} else {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("    "+title) + "\n")
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render("    "+meta) + "\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}
