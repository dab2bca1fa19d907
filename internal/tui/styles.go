package tui

import (
	"charm.land/bubbles/v2/table"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tally/internal/config"
)

// Styles holds every lipgloss style the views use, built once from the
// configured color scheme
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Subtle   lipgloss.Style

	// Boxes around the main content
	TableBox  lipgloss.Style
	FormBox   lipgloss.Style
	DeleteBox lipgloss.Style
	ErrorBox  lipgloss.Style

	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style

	StatusBar  lipgloss.Style
	StatusMode lipgloss.Style

	Table table.Styles
}

// NewStyles derives the view styles from a color scheme
func NewStyles(colors config.ColorScheme) Styles {
	accent := lipgloss.Color(colors.Accent)
	subtle := lipgloss.Color(colors.Subtle)

	tableStyles := table.DefaultStyles()
	tableStyles.Header = tableStyles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(colors.Border)).
		BorderBottom(true).
		Foreground(lipgloss.Color(colors.Title)).
		Bold(true)
	tableStyles.Selected = tableStyles.Selected.
		Foreground(lipgloss.Color(colors.Normal)).
		Background(lipgloss.Color(colors.SelectedBg)).
		Bold(true)
	tableStyles.Cell = tableStyles.Cell.Foreground(lipgloss.Color(colors.Normal))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors.Title)),
		Subtitle: lipgloss.NewStyle().Foreground(accent),
		Subtle:   lipgloss.NewStyle().Foreground(subtle),

		TableBox:  box.BorderForeground(lipgloss.Color(colors.Border)),
		FormBox:   box.BorderForeground(lipgloss.Color(colors.Edit)).Padding(1, 2),
		DeleteBox: box.BorderForeground(lipgloss.Color(colors.Delete)).Padding(1, 2),
		ErrorBox:  box.BorderForeground(lipgloss.Color(colors.ErrorFg)).Padding(1, 2),

		Success: lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Create)).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color(colors.WarningFg)),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color(colors.ErrorFg)).Bold(true),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color(colors.InfoFg)),

		StatusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.StatusBarText)),
		StatusMode: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.StatusBarText)).
			Background(lipgloss.Color(colors.StatusBarBg)).
			Bold(true).
			Padding(0, 1),

		Table: tableStyles,
	}
}
