// Package components provides reusable TUI widgets and layout helpers.
package components

import "github.com/charmbracelet/lipgloss"

// Palette is the set of styles widgets and views render with. The tui
// package builds one from the configured color scheme.
type Palette struct {
	Title    lipgloss.Style
	Section  lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Focus    lipgloss.Style
	Muted    lipgloss.Style
	Help     lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
	Success  lipgloss.Style
	Row      lipgloss.Style
	RowAlt   lipgloss.Style
	Selected lipgloss.Style
	Border   lipgloss.Style
}

// DefaultPalette is the saffron palette, used when a widget is rendered
// without one.
func DefaultPalette() Palette {
	primary := lipgloss.Color("#FF9933")
	secondary := lipgloss.Color("#CC7A29")
	accent := lipgloss.Color("#FFD27F")
	muted := lipgloss.Color("#7A4A1A")

	return Palette{
		Title:    lipgloss.NewStyle().Foreground(accent).Bold(true),
		Section:  lipgloss.NewStyle().Foreground(primary).Bold(true),
		Label:    lipgloss.NewStyle().Foreground(secondary),
		Value:    lipgloss.NewStyle().Foreground(primary),
		Focus:    lipgloss.NewStyle().Foreground(accent).Bold(true),
		Muted:    lipgloss.NewStyle().Foreground(muted),
		Help:     lipgloss.NewStyle().Foreground(secondary),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4444")),
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFCC00")),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("#138808")),
		Row:      lipgloss.NewStyle().Foreground(primary),
		RowAlt:   lipgloss.NewStyle().Foreground(secondary),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("#000000")).Background(primary).Bold(true),
		Border:   lipgloss.NewStyle().Foreground(secondary),
	}
}
