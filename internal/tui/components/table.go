package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Column defines a table column. Width is the minimum width; Weight shares
// out the spare width; columns with the lowest Priority are dropped first
// when the table does not fit.
type Column struct {
	Title    string
	Width    int
	Weight   float64
	Align    lipgloss.Position
	Priority int
}

const columnGap = 3 // " | "

// Table is a scrolling, selectable table.
type Table struct {
	columns     []Column
	rows        [][]string
	selected    int
	offset      int
	visibleRows int
	focused     bool
	palette     Palette

	currentPage int
	totalPages  int
	totalRows   int
}

// NewTable creates a new table with the given columns.
func NewTable(columns []Column) *Table {
	return &Table{
		columns:     columns,
		rows:        [][]string{},
		visibleRows: 10,
		palette:     DefaultPalette(),
	}
}

// SetPalette sets the styles the table renders with.
func (t *Table) SetPalette(p Palette) {
	t.palette = p
}

// SetRows replaces the table data, keeping the selection in range.
func (t *Table) SetRows(rows [][]string) {
	t.rows = rows
	if t.selected >= len(rows) {
		t.selected = len(rows) - 1
	}
	if t.selected < 0 {
		t.selected = 0
	}
	if t.offset > t.selected {
		t.offset = t.selected
	}
}

// SetPagination sets the page footer. A zero totalPages hides it.
func (t *Table) SetPagination(page, totalPages, totalRows int) {
	t.currentPage = page
	t.totalPages = totalPages
	t.totalRows = totalRows
}

// SetVisibleRows sets the number of visible rows.
func (t *Table) SetVisibleRows(n int) {
	if n < 1 {
		n = 1
	}
	t.visibleRows = n
}

// Focus sets the table focus state. The selection is only highlighted when focused.
func (t *Table) Focus(focused bool) {
	t.focused = focused
}

// Selected returns the currently selected row index.
func (t *Table) Selected() int {
	return t.selected
}

// SelectedRow returns the currently selected row data.
func (t *Table) SelectedRow() []string {
	if t.selected >= 0 && t.selected < len(t.rows) {
		return t.rows[t.selected]
	}
	return nil
}

// MoveUp moves the selection up.
func (t *Table) MoveUp() {
	if t.selected > 0 {
		t.selected--
		if t.selected < t.offset {
			t.offset = t.selected
		}
	}
}

// MoveDown moves the selection down.
func (t *Table) MoveDown() {
	if t.selected < len(t.rows)-1 {
		t.selected++
		if t.selected >= t.offset+t.visibleRows {
			t.offset = t.selected - t.visibleRows + 1
		}
	}
}

// GoToTop goes to the first row.
func (t *Table) GoToTop() {
	t.selected = 0
	t.offset = 0
}

// Render renders the table at its minimum column widths.
func (t *Table) Render() string {
	width := 0
	for _, c := range t.columns {
		width += c.Width + columnGap
	}
	return t.RenderResponsive(width)
}

// RenderResponsive renders the table fitted to width.
func (t *Table) RenderResponsive(width int) string {
	specs := make([]ColumnSpec, len(t.columns))
	for i, c := range t.columns {
		specs[i] = ColumnSpec{MinWidth: c.Width, Weight: c.Weight, Priority: c.Priority}
	}
	widths := FitColumns(specs, width, columnGap)

	lineWidth := 0
	for _, w := range widths {
		if w > 0 {
			lineWidth += w + columnGap
		}
	}
	rule := t.palette.Border.Render(strings.Repeat("─", lineWidth))

	var b strings.Builder
	b.WriteString(t.renderRow(t.headers(), widths, t.palette.Title))
	b.WriteString("\n")
	b.WriteString(rule)
	b.WriteString("\n")

	end := t.offset + t.visibleRows
	if end > len(t.rows) {
		end = len(t.rows)
	}
	for i := t.offset; i < end; i++ {
		style := t.palette.Row
		switch {
		case i == t.selected && t.focused:
			style = t.palette.Selected
		case (i-t.offset)%2 == 1:
			style = t.palette.RowAlt
		}
		b.WriteString(t.renderRow(t.rows[i], widths, style))
		b.WriteString("\n")
	}

	if t.totalPages > 0 {
		b.WriteString(rule)
		b.WriteString("\n")
		b.WriteString(t.palette.Muted.Render(fmt.Sprintf("Page %d/%d | %d total", t.currentPage, t.totalPages, t.totalRows)))
	}

	return b.String()
}

func (t *Table) headers() []string {
	headers := make([]string, len(t.columns))
	for i, col := range t.columns {
		headers[i] = col.Title
	}
	return headers
}

func (t *Table) renderRow(cells []string, widths []int, style lipgloss.Style) string {
	var parts []string

	for i, col := range t.columns {
		w := widths[i]
		if w == 0 {
			continue
		}
		cell := ""
		if i < len(cells) {
			cell = Truncate(cells[i], w)
		}

		switch col.Align {
		case lipgloss.Right:
			cell = PadLeft(cell, w)
		case lipgloss.Center:
			pad := w - lipgloss.Width(cell)
			cell = strings.Repeat(" ", pad/2) + cell + strings.Repeat(" ", pad-pad/2)
		default:
			cell = PadRight(cell, w)
		}

		parts = append(parts, style.Render(cell))
	}

	return " " + strings.Join(parts, " | ") + " "
}

// Empty returns true if the table has no rows.
func (t *Table) Empty() bool {
	return len(t.rows) == 0
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int {
	return len(t.rows)
}
