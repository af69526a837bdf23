package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// LayoutBreakpoint defines terminal width thresholds for responsive layout.
type LayoutBreakpoint int

const (
	BreakpointNarrow LayoutBreakpoint = 60
	BreakpointMedium LayoutBreakpoint = 100
	BreakpointWide   LayoutBreakpoint = 140
)

// GetBreakpoint returns the layout breakpoint for the given width.
func GetBreakpoint(width int) LayoutBreakpoint {
	switch {
	case width < int(BreakpointNarrow):
		return BreakpointNarrow
	case width < int(BreakpointMedium):
		return BreakpointMedium
	default:
		return BreakpointWide
	}
}

// Panel renders content in a rounded border with the title set into the top edge.
func (t *Theme) Panel(title, content string, width int) string {
	rendered := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.SecondaryColor).
		Width(max(width-2, 1)).
		Padding(0, 1).
		Render(content)

	if title == "" {
		return rendered
	}

	lines := strings.Split(rendered, "\n")
	label := t.Accent.Bold(true).Render(" " + title + " ")
	labelWidth := lipgloss.Width(label)

	edge := lipgloss.Width(lines[0])
	if labelWidth+4 < edge {
		border := lipgloss.RoundedBorder()
		left := t.Secondary.Render(border.TopLeft + border.Top)
		right := t.Secondary.Render(strings.Repeat(border.Top, edge-labelWidth-3) + border.TopRight)
		lines[0] = left + label + right
	}
	return strings.Join(lines, "\n")
}

// ContentWidth returns the usable content width, capped between min and max.
func ContentWidth(termWidth, minWidth, maxWidth int) int {
	w := max(termWidth, minWidth)
	if maxWidth > 0 && w > maxWidth {
		w = maxWidth
	}
	return w
}

// ContentHeight returns the usable content height after subtracting chrome.
func ContentHeight(termHeight, chromeLines int) int {
	return max(termHeight-chromeLines, 5)
}
