package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ColumnSpec sizes one column for FitColumns.
type ColumnSpec struct {
	MinWidth int
	Weight   float64
	Priority int // lower is dropped first
}

// FitColumns distributes availableWidth among columns. Columns are dropped,
// lowest priority first, until the minimum widths fit; dropped columns get
// width 0. separator is the width of the gap between visible columns.
func FitColumns(specs []ColumnSpec, availableWidth, separator int) []int {
	widths := make([]int, len(specs))
	visible := make([]bool, len(specs))
	for i := range specs {
		visible[i] = true
	}

	spare := func() (int, float64, int) {
		used, weight, count := 0, 0.0, 0
		for i, s := range specs {
			if !visible[i] {
				continue
			}
			used += s.MinWidth
			weight += s.Weight
			count++
		}
		if count > 1 {
			used += (count - 1) * separator
		}
		return availableWidth - used - 2, weight, count
	}

	remaining, totalWeight, count := spare()
	for remaining < 0 && count > 1 {
		lowest := -1
		for i, s := range specs {
			if visible[i] && (lowest < 0 || s.Priority < specs[lowest].Priority) {
				lowest = i
			}
		}
		visible[lowest] = false
		remaining, totalWeight, count = spare()
	}
	if remaining < 0 {
		remaining = 0
	}

	for i, s := range specs {
		if !visible[i] {
			continue
		}
		widths[i] = s.MinWidth
		if totalWeight > 0 {
			widths[i] += int(float64(remaining) * s.Weight / totalWeight)
		}
	}

	return widths
}

// SideBySide renders two blocks next to each other, or stacked when they
// do not fit in totalWidth.
func SideBySide(left, right string, totalWidth, gap int) string {
	leftWidth := lipgloss.Width(left)
	if leftWidth+lipgloss.Width(right)+gap > totalWidth {
		return left + "\n\n" + right
	}

	leftLines := strings.Split(left, "\n")
	rightLines := strings.Split(right, "\n")
	n := max(len(leftLines), len(rightLines))

	var b strings.Builder
	for i := 0; i < n; i++ {
		l, r := "", ""
		if i < len(leftLines) {
			l = leftLines[i]
		}
		if i < len(rightLines) {
			r = rightLines[i]
		}
		b.WriteString(PadRight(l, leftWidth+gap))
		b.WriteString(r)
		if i < n-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// ProgressBar renders percent (0-100) as a bar of the given width. Bars at
// or past warnAt percent use the warning style, full bars the error style.
func ProgressBar(p Palette, percent float64, width int, warnAt float64) string {
	percent = min(max(percent, 0), 100)

	barWidth := max(width-2, 4)
	filled := int(percent / 100 * float64(barWidth))
	bar := "[" + strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled) + "]"

	switch {
	case percent >= 100:
		return p.Error.Render(bar)
	case percent >= warnAt:
		return p.Warning.Render(bar)
	default:
		return p.Success.Render(bar)
	}
}

// Truncate shortens s to maxWidth cells, ending with an ellipsis when cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > maxWidth {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

// PadRight pads s with spaces to width cells.
func PadRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// PadLeft pads s with leading spaces to width cells.
func PadLeft(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", width-w) + s
}

// KeyValue renders an aligned "label: value" line.
func KeyValue(p Palette, label, value string, width int) string {
	return p.Label.Width(width).Render(label+":") + " " + p.Value.Render(value)
}
