package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/nandinis/edudeck/internal/catalog"
	"github.com/nandinis/edudeck/internal/router"
	"github.com/nandinis/edudeck/internal/screen"
	"github.com/nandinis/edudeck/internal/screens/library"
	logicgridscreen "github.com/nandinis/edudeck/internal/screens/logicgrid"
	mathblitzscreen "github.com/nandinis/edudeck/internal/screens/mathblitz"
	memorymatchscreen "github.com/nandinis/edudeck/internal/screens/memorymatch"
	"github.com/nandinis/edudeck/internal/screens/stats"
	timelinescreen "github.com/nandinis/edudeck/internal/screens/timeline"
	wordexplorerscreen "github.com/nandinis/edudeck/internal/screens/wordexplorer"
	"github.com/nandinis/edudeck/internal/store"
	"github.com/nandinis/edudeck/internal/ui/components"
)

// HomeScreen is the arcade cabinet front of the application.
type HomeScreen struct {
	menu       components.Menu
	menuLabels []string
	played     int
	totalScore int
}

var _ screen.Screen = (*HomeScreen)(nil)

// gameIDs drives the dashboard stats; the order matches the menu.
var gameIDs = []string{
	mathblitzscreen.GameID,
	wordexplorerscreen.GameID,
	memorymatchscreen.GameID,
	timelinescreen.GameID,
	logicgridscreen.GameID,
}

// New creates a new HomeScreen.
func New(cat *catalog.Service, st *store.Store) *HomeScreen {
	var played, totalScore int
	if st != nil {
		ctx := context.Background()
		for _, id := range gameIDs {
			p, err := st.ProgressRepo().Load(ctx, id)
			if err != nil {
				continue
			}
			if p.LastPlayed != nil {
				played++
			}
			totalScore += p.HighScore
		}
	}

	menuLabels := []string{
		"MATH BLITZ",
		"WORD EXPLORER",
		"MEMORY MATCH",
		"TIMELINE SORT",
		"LOGIC GRID",
		"GAME LIBRARY",
		"STATS",
		"EXIT",
	}

	push := func(build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: build()}
			}
		}
	}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: push(func() screen.Screen { return mathblitzscreen.New(cat, st) })},
		{Label: menuLabels[1], Action: push(func() screen.Screen { return wordexplorerscreen.New(cat, st) })},
		{Label: menuLabels[2], Action: push(func() screen.Screen { return memorymatchscreen.New(cat, st) })},
		{Label: menuLabels[3], Action: push(func() screen.Screen { return timelinescreen.New(cat, st) })},
		{Label: menuLabels[4], Action: push(func() screen.Screen { return logicgridscreen.New(cat, st) })},
		{Label: menuLabels[5], Action: push(func() screen.Screen { return library.New(cat, st) })},
		{Label: menuLabels[6], Action: push(func() screen.Screen { return stats.New(st) })},
		{Label: menuLabels[7], Action: func() tea.Cmd { return tea.Quit }},
	}

	return &HomeScreen{
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
		played:     played,
		totalScore: totalScore,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height by
	// adding back header (3) + footer (3) + frame gaps.
	termHeight := height + 8
	compact := termHeight < 36 || width < 100

	// All sections share a uniform content width so they line up.
	cw := components.ContentWidth(width)

	var sections []string

	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderTagline(cw))
	}
	sections = append(sections, renderStatsBar(h.played, h.totalScore, cw, compact))
	if compact {
		sections = append(sections, renderArcadeMenuCompact(h.menuLabels, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderArcadeMenu(h.menuLabels, h.menu.Selected, cw))
	}

	content := strings.Join(sections, "\n\n")

	return components.CabinetFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
