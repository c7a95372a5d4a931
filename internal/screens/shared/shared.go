// Package shared holds the view pieces common to the game screens:
// the difficulty selector, ready/replay cards, and the in-game HUD.
package shared

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/nandinis/edudeck/internal/engine"
	"github.com/nandinis/edudeck/internal/ui/components"
	"github.com/nandinis/edudeck/internal/ui/layout"
	"github.com/nandinis/edudeck/internal/ui/theme"
)

var difficulties = engine.Difficulties()

// DifficultySelect is the three-way difficulty chooser.
type DifficultySelect struct {
	selected int
}

// NewDifficultySelect starts on Medium.
func NewDifficultySelect() DifficultySelect {
	return DifficultySelect{selected: 1}
}

// Handle processes a key. It returns the chosen difficulty and true
// when a choice was confirmed.
func (d *DifficultySelect) Handle(key string) (engine.Difficulty, bool) {
	switch key {
	case "up", "k":
		if d.selected > 0 {
			d.selected--
		}
	case "down", "j":
		if d.selected < len(difficulties)-1 {
			d.selected++
		}
	case "1", "2", "3":
		d.selected = int(key[0] - '1')
		return difficulties[d.selected], true
	case "enter":
		return difficulties[d.selected], true
	}
	return "", false
}

// DifficultyKeyHints are the footer hints while choosing a difficulty.
func DifficultyKeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Confirm"},
		{Key: "Esc", Description: "Back"},
	}
}

// View renders the chooser with the game title and a short blurb.
func (d DifficultySelect) View(width, height int, title, blurb string) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(title)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Align(lipgloss.Center).Render(blurb)))
	b.WriteString("\n\n\n")

	for i, diff := range difficulties {
		p := engine.ProfileFor(diff)
		label := fmt.Sprintf("%-8s %3ds · ×%.1f points", strings.ToUpper(string(diff)),
			int(p.TimeLimit.Seconds()), p.Multiplier)
		if i == d.selected {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("▸ "+label)))
		} else {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Text).Render("  "+label)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RenderReady shows the pre-game instructions card.
func RenderReady(width, height int, title string, d engine.Difficulty, body string) string {
	head := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(title)
	diff := lipgloss.NewStyle().Foreground(theme.Secondary).Render(
		fmt.Sprintf("Difficulty: %s", d))
	text := lipgloss.NewStyle().Foreground(theme.Text).Align(lipgloss.Center).Render(body)

	card := components.ArcadeCard(head+"\n\n"+diff+"\n\n"+text, components.ContentWidth(width))
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(card)
}

// RenderPlayAgain shows the post-summary replay card.
func RenderPlayAgain(width, height, finalScore int) string {
	text := fmt.Sprintf("Final score: %d\n\nPress Enter to play again\nor Esc to go back.", finalScore)
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render(text)
}

// RenderHUD lays the stat badges out on one line.
func RenderHUD(width int, badges ...string) string {
	styled := make([]string, 0, len(badges))
	for _, badge := range badges {
		styled = append(styled, lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true).
			Render(badge))
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		strings.Join(styled, "    "))
}
