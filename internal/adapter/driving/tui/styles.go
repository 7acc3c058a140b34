package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary     = lipgloss.Color("#2f6b3b")
	colorMuted       = lipgloss.Color("#8a8a8a")
	colorDestructive = lipgloss.Color("#e53935")
	colorSuccess     = lipgloss.Color("#8BC34A")
)

// Styles holds the lipgloss styles used by the catalog screen.
type Styles struct {
	Title        lipgloss.Style
	Label        lipgloss.Style
	FocusedLabel lipgloss.Style
	Prompt       lipgloss.Style
	Status       lipgloss.Style
	Placeholder  lipgloss.Style
	Row          lipgloss.Style
	SelectedRow  lipgloss.Style
	Muted        lipgloss.Style
	Dialog       lipgloss.Style
	Help         lipgloss.Style
}

// DefaultStyles returns the catalog screen styles.
func DefaultStyles() Styles {
	return Styles{
		Title:        lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).MarginBottom(1),
		Label:        lipgloss.NewStyle().Foreground(colorMuted),
		FocusedLabel: lipgloss.NewStyle().Bold(true).Foreground(colorPrimary),
		Prompt:       lipgloss.NewStyle().Foreground(colorDestructive),
		Status:       lipgloss.NewStyle().Foreground(colorSuccess),
		Placeholder:  lipgloss.NewStyle().Italic(true).Foreground(colorMuted),
		Row:          lipgloss.NewStyle().PaddingLeft(2),
		SelectedRow:  lipgloss.NewStyle().PaddingLeft(1).Bold(true).Foreground(colorPrimary),
		Muted:        lipgloss.NewStyle().Foreground(colorMuted),
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDestructive).
			Padding(0, 2).
			MarginTop(1),
		Help: lipgloss.NewStyle().Foreground(colorMuted).MarginTop(1),
	}
}
