package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func foodColumns() []Column {
	return []Column{
		{Title: "Food", Width: 12, Weight: 2, Priority: 10},
		{Title: "Meal", Width: 9, Priority: 5},
		{Title: "Qty", Width: 4, Align: lipgloss.Right, Priority: 3},
		{Title: "kcal", Width: 6, Align: lipgloss.Right, Priority: 9},
		{Title: "Protein", Width: 7, Align: lipgloss.Right, Priority: 1},
	}
}

func foodRows() [][]string {
	return [][]string{
		{"Roti", "Lunch", "2", "144", "6.0"},
		{"Dal", "Lunch", "1", "150", "9.0"},
		{"Chai", "Snacks", "1", "80", "2.0"},
		{"Poha", "Breakfast", "1", "250", "5.0"},
	}
}

func TestTable_Navigation(t *testing.T) {
	table := NewTable(foodColumns())
	table.SetRows(foodRows())
	table.SetVisibleRows(2)

	table.MoveUp()
	if table.Selected() != 0 {
		t.Errorf("MoveUp at top should stay at 0, got %d", table.Selected())
	}

	for i := 0; i < 10; i++ {
		table.MoveDown()
	}
	if table.Selected() != 3 {
		t.Errorf("MoveDown should clamp at last row, got %d", table.Selected())
	}
	if table.SelectedRow()[0] != "Poha" {
		t.Errorf("unexpected selected row %v", table.SelectedRow())
	}

	table.GoToTop()
	if table.Selected() != 0 || table.SelectedRow()[0] != "Roti" {
		t.Errorf("GoToTop should select the first row")
	}
}

func TestTable_SetRows_ClampsSelection(t *testing.T) {
	table := NewTable(foodColumns())
	table.SetRows(foodRows())
	for i := 0; i < 3; i++ {
		table.MoveDown()
	}

	table.SetRows(foodRows()[:2])
	if table.Selected() != 1 {
		t.Errorf("expected selection clamped to 1, got %d", table.Selected())
	}

	table.SetRows(nil)
	if table.Selected() != 0 || table.SelectedRow() != nil || !table.Empty() {
		t.Error("empty table should have no selected row")
	}
}

func TestTable_RenderResponsive(t *testing.T) {
	table := NewTable(foodColumns())
	table.SetRows(foodRows())

	wide := table.RenderResponsive(100)
	for _, want := range []string{"Food", "Meal", "Qty", "kcal", "Protein", "Roti", "144"} {
		if !strings.Contains(wide, want) {
			t.Errorf("expected %q in wide table", want)
		}
	}

	narrow := table.RenderResponsive(30)
	if strings.Contains(narrow, "Protein") || strings.Contains(narrow, "Qty") {
		t.Error("expected low priority columns dropped on narrow table")
	}
	if !strings.Contains(narrow, "Food") || !strings.Contains(narrow, "kcal") {
		t.Error("expected high priority columns kept on narrow table")
	}
}

func TestTable_RenderPagination(t *testing.T) {
	table := NewTable(foodColumns())
	table.SetRows(foodRows())

	if strings.Contains(table.Render(), "Page") {
		t.Error("no pagination footer expected before SetPagination")
	}

	table.SetPagination(2, 5, 42)
	if out := table.Render(); !strings.Contains(out, "Page 2/5 | 42 total") {
		t.Errorf("expected pagination footer, got %q", out)
	}
}

func TestTable_RightAlign(t *testing.T) {
	table := NewTable([]Column{{Title: "kcal", Width: 6, Align: lipgloss.Right}})
	table.SetRows([][]string{{"80"}})

	if out := table.Render(); !strings.Contains(out, "    80") {
		t.Errorf("expected right aligned cell in %q", out)
	}
}
