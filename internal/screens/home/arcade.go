package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/nandinis/edudeck/internal/ui/components"
	"github.com/nandinis/edudeck/internal/ui/theme"
)

// Block-letter marquee title.
const arcadeTitleFull = ` ███████╗██████╗ ██╗   ██╗██████╗ ███████╗ ██████╗██╗  ██╗
 ██╔════╝██╔══██╗██║   ██║██╔══██╗██╔════╝██╔════╝██║ ██╔╝
 █████╗  ██║  ██║██║   ██║██║  ██║█████╗  ██║     █████╔╝
 ██╔══╝  ██║  ██║██║   ██║██║  ██║██╔══╝  ██║     ██╔═██╗
 ███████╗██████╔╝╚██████╔╝██████╔╝███████╗╚██████╗██║  ██╗
 ╚══════╝╚═════╝  ╚═════╝ ╚═════╝ ╚══════╝ ╚═════╝╚═╝  ╚═╝`

const arcadeTitleCompact = "E · D · U · D · E · C · K"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	if compact {
		return lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(style.Render(arcadeTitleCompact))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(arcadeTitleFull))
}

const tagline = "Learn through play"

func renderTagline(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Align(lipgloss.Center).
		Render(tagline)
}

// renderStatsBar renders the dashboard stats in a bordered box matching
// the content width.
func renderStatsBar(played, totalScore, cw int, compact bool) string {
	playedStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	scoreStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s",
			playedStyle.Render(fmt.Sprintf("▸%d", played)),
			scoreStyle.Render(fmt.Sprintf("★%d", totalScore)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s",
			playedStyle.Render(fmt.Sprintf("▸ %d PLAYED", played)),
			scoreStyle.Render(fmt.Sprintf("★ %d TOTAL SCORE", totalScore)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 24

// renderArcadeMenu renders each menu item as a fixed-width button.
func renderArcadeMenu(items []string, selected int, cw int) string {
	var buttons []string
	for i, label := range items {
		buttons = append(buttons, components.ArcadeButton(label, i == selected, buttonWidth))
	}
	block := strings.Join(buttons, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderArcadeMenuCompact renders menu items as simple text lines for
// very small terminals where bordered buttons would overflow.
func renderArcadeMenuCompact(items []string, selected int, cw int) string {
	var lines []string
	for i, label := range items {
		var line string
		if i == selected {
			line = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				Bold(true).
				Render(" ▸ " + label + " ")
		} else {
			line = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + label)
		}
		lines = append(lines, line)
	}
	block := strings.Join(lines, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}
