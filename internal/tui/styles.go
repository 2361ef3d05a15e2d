package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/natvega/tasktique/internal/theme"
)

// Styles holds the lipgloss styles for one theme.
type Styles struct {
	Title     lipgloss.Style
	Subtle    lipgloss.Style
	Selected  lipgloss.Style
	StatusBar lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
	Completed lipgloss.Style
	Overdue   lipgloss.Style
	High      lipgloss.Style
}

// NewStyles builds the palette for the given theme preference. System
// defers to the terminal background via adaptive colors.
func NewStyles(th theme.Theme) Styles {
	var (
		primary   lipgloss.TerminalColor = lipgloss.AdaptiveColor{Light: "#7E69AB", Dark: "#9b87f5"}
		secondary lipgloss.TerminalColor = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#888888"}
		success   lipgloss.TerminalColor = lipgloss.AdaptiveColor{Light: "#4F7942", Dark: "#87AF87"}
		danger    lipgloss.TerminalColor = lipgloss.AdaptiveColor{Light: "#A23E3E", Dark: "#AF5F5F"}
	)
	switch th {
	case theme.Light:
		primary = lipgloss.Color("#7E69AB")
		secondary = lipgloss.Color("#666666")
		success = lipgloss.Color("#4F7942")
		danger = lipgloss.Color("#A23E3E")
	case theme.Dark:
		primary = lipgloss.Color("#9b87f5")
		secondary = lipgloss.Color("#888888")
		success = lipgloss.Color("#87AF87")
		danger = lipgloss.Color("#AF5F5F")
	}

	return Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(primary).MarginBottom(1),
		Subtle:    lipgloss.NewStyle().Foreground(secondary),
		Selected:  lipgloss.NewStyle().Bold(true).Foreground(primary),
		StatusBar: lipgloss.NewStyle().Foreground(secondary),
		Success:   lipgloss.NewStyle().Foreground(success),
		Error:     lipgloss.NewStyle().Foreground(danger),
		Completed: lipgloss.NewStyle().Strikethrough(true).Foreground(secondary),
		Overdue:   lipgloss.NewStyle().Foreground(danger),
		High:      lipgloss.NewStyle().Bold(true).Foreground(danger),
	}
}
