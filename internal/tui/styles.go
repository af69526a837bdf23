// Package tui provides the terminal user interface for VEDA.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vedaai/veda/internal/config"
	"github.com/vedaai/veda/internal/tui/components"
)

// Theme contains all style definitions for the TUI.
type Theme struct {
	PrimaryColor   lipgloss.Color
	SecondaryColor lipgloss.Color
	AccentColor    lipgloss.Color
	MutedColor     lipgloss.Color

	Base      lipgloss.Style
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Accent    lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
	Success   lipgloss.Style
	Muted     lipgloss.Style

	Header        lipgloss.Style
	Footer        lipgloss.Style
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Label         lipgloss.Style
	Value         lipgloss.Style
	Box           lipgloss.Style
	Selected      lipgloss.Style
	Alert         lipgloss.Style
	AlertWarn     lipgloss.Style
	AlertCrit     lipgloss.Style
	StatusKey     lipgloss.Style
	StatusDivider lipgloss.Style

	palette components.Palette
}

type colors struct {
	primary, secondary, accent, muted, background lipgloss.Color
	errorColor, warning, success                  lipgloss.Color
}

// NewTheme creates a theme for the configured color scheme.
func NewTheme(scheme config.ColorScheme) *Theme {
	switch scheme {
	case config.ColorSchemeOcean:
		return buildTheme(colors{
			primary:    "#38BDF8",
			secondary:  "#0EA5E9",
			accent:     "#A5F3FC",
			muted:      "#1E5A7A",
			background: "#000000",
			errorColor: "#F87171",
			warning:    "#FBBF24",
			success:    "#34D399",
		})
	case config.ColorSchemeMono:
		return buildTheme(colors{
			primary:    "#FFFFFF",
			secondary:  "#AAAAAA",
			accent:     "#FFFFFF",
			muted:      "#666666",
			background: "#000000",
			errorColor: "#FF4444",
			warning:    "#FFAA00",
			success:    "#FFFFFF",
		})
	default:
		return buildTheme(colors{
			primary:    "#FF9933",
			secondary:  "#CC7A29",
			accent:     "#FFD27F",
			muted:      "#7A4A1A",
			background: "#000000",
			errorColor: "#FF4444",
			warning:    "#FFCC00",
			success:    "#138808",
		})
	}
}

func buildTheme(c colors) *Theme {
	t := &Theme{
		PrimaryColor:   c.primary,
		SecondaryColor: c.secondary,
		AccentColor:    c.accent,
		MutedColor:     c.muted,
	}

	t.Base = lipgloss.NewStyle().Foreground(c.primary)
	t.Primary = lipgloss.NewStyle().Foreground(c.primary)
	t.Secondary = lipgloss.NewStyle().Foreground(c.secondary)
	t.Accent = lipgloss.NewStyle().Foreground(c.accent)
	t.Error = lipgloss.NewStyle().Foreground(c.errorColor)
	t.Warning = lipgloss.NewStyle().Foreground(c.warning)
	t.Success = lipgloss.NewStyle().Foreground(c.success)
	t.Muted = lipgloss.NewStyle().Foreground(c.muted)

	t.Header = lipgloss.NewStyle().Foreground(c.primary).Bold(true).Padding(0, 1)
	t.Footer = lipgloss.NewStyle().Foreground(c.secondary).Padding(0, 1)
	t.Title = lipgloss.NewStyle().Foreground(c.accent).Bold(true)
	t.Subtitle = lipgloss.NewStyle().Foreground(c.primary).Bold(true)
	t.Label = lipgloss.NewStyle().Foreground(c.secondary)
	t.Value = lipgloss.NewStyle().Foreground(c.primary)

	t.Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(c.secondary).
		Padding(0, 1)

	t.Selected = lipgloss.NewStyle().
		Foreground(c.background).
		Background(c.primary).
		Bold(true)

	t.Alert = lipgloss.NewStyle().Foreground(c.primary).Bold(true)
	t.AlertWarn = lipgloss.NewStyle().Foreground(c.warning).Bold(true)
	t.AlertCrit = lipgloss.NewStyle().Foreground(c.errorColor).Bold(true)

	t.StatusKey = lipgloss.NewStyle().Foreground(c.accent).Bold(true)
	t.StatusDivider = lipgloss.NewStyle().Foreground(c.muted).SetString(" │ ")

	t.palette = components.Palette{
		Title:    t.Title,
		Section:  t.Subtitle,
		Label:    t.Label,
		Value:    t.Value,
		Focus:    t.Accent.Bold(true),
		Muted:    t.Muted,
		Help:     t.Secondary,
		Error:    t.Error,
		Warning:  t.Warning,
		Success:  t.Success,
		Row:      t.Primary,
		RowAlt:   t.Secondary,
		Selected: t.Selected,
		Border:   t.Secondary,
	}

	return t
}

// Palette returns the theme as styles for components and views.
func (t *Theme) Palette() components.Palette {
	return t.palette
}

const (
	BoxHorizontal       = "─"
	BoxDoubleHorizontal = "═"
)

// DrawHorizontalLine draws a horizontal line.
func (t *Theme) DrawHorizontalLine(width int) string {
	return t.Secondary.Render(strings.Repeat(BoxHorizontal, max(width, 0)))
}

// DrawDoubleLine draws a double horizontal line.
func (t *Theme) DrawDoubleLine(width int) string {
	return t.Primary.Render(strings.Repeat(BoxDoubleHorizontal, max(width, 0)))
}
