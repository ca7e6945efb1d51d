package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const panelWidth = 34

// styles are derived from a theme whenever it changes.
type styles struct {
	panel    lipgloss.Style
	title    lipgloss.Style
	label    lipgloss.Style
	value    lipgloss.Style
	active   lipgloss.Style
	muted    lipgloss.Style
	graph    lipgloss.Style
	progress lipgloss.Style
	help     lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(t.Border).
			Padding(0, 1).
			Width(panelWidth),
		title:    lipgloss.NewStyle().Bold(true).Foreground(t.Title).MarginBottom(1),
		label:    lipgloss.NewStyle().Foreground(t.Label).Width(10),
		value:    lipgloss.NewStyle().Foreground(t.Value),
		active:   lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		muted:    lipgloss.NewStyle().Foreground(t.Muted),
		graph:    lipgloss.NewStyle().Foreground(t.Accent),
		progress: lipgloss.NewStyle().Foreground(t.Accent),
		help: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 2),
	}
}

// ProgressBar draws a fixed-width bar for a fraction in [0, 1].
func ProgressBar(fraction float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(fraction * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func Separator(width int) string {
	if width < 5 {
		return strings.Repeat("─", max(width, 0))
	}
	left := (width - 3) / 2
	return strings.Repeat("─", left) + " ◆ " + strings.Repeat("─", width-3-left)
}
