// Package history provides the saved assessments and quotes browser.
package history

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vedaai/veda/internal/models"
	"github.com/vedaai/veda/internal/services/metrics"
	"github.com/vedaai/veda/internal/services/premium"
	"github.com/vedaai/veda/internal/tui/components"
	metricsview "github.com/vedaai/veda/internal/tui/views/metrics"
	premiumview "github.com/vedaai/veda/internal/tui/views/premium"
	"github.com/vedaai/veda/internal/util"
)

// Tab selects which history is listed.
type Tab int

const (
	TabAssessments Tab = iota
	TabQuotes
)

func (t Tab) String() string {
	if t == TabQuotes {
		return "Insurance Quotes"
	}
	return "Health Assessments"
}

// Action tells the app what a key press asks for.
type Action int

const (
	ActionNone Action = iota
	ActionReload
	ActionDelete
	ActionClear
)

// HistoryView lists saved calculations with paging and a detail pane.
type HistoryView struct {
	palette components.Palette
	tab     Tab
	now     time.Time

	assessTable *components.Table
	quoteTable  *components.Table
	assessments []*models.Assessment
	quotes      []*models.Quote

	assessPage models.Pagination
	quotePage  models.Pagination
	totalPages [2]int

	showDetail bool
	err        error
}

// NewHistoryView creates the view on the assessments tab.
func NewHistoryView(p components.Palette, pageSize int) *HistoryView {
	assessTable := components.NewTable([]components.Column{
		{Title: "When", Width: 14, Weight: 1, Priority: 10},
		{Title: "BMI", Width: 5, Align: lipgloss.Right, Priority: 9},
		{Title: "Category", Width: 11, Priority: 8},
		{Title: "Target", Width: 7, Align: lipgloss.Right, Priority: 7},
		{Title: "Weight", Width: 6, Align: lipgloss.Right, Priority: 5},
		{Title: "Activity", Width: 11, Priority: 3},
		{Title: "Goal", Width: 11, Priority: 2},
	})
	quoteTable := components.NewTable([]components.Column{
		{Title: "When", Width: 14, Weight: 1, Priority: 10},
		{Title: "Coverage", Width: 10, Priority: 8},
		{Title: "Tier", Width: 13, Priority: 6},
		{Title: "Annual", Width: 9, Align: lipgloss.Right, Priority: 9},
		{Title: "Age", Width: 3, Align: lipgloss.Right, Priority: 5},
		{Title: "Members", Width: 7, Align: lipgloss.Right, Priority: 4},
		{Title: "Zone", Width: 5, Priority: 2},
	})

	for _, t := range []*components.Table{assessTable, quoteTable} {
		t.SetPalette(p)
		t.SetVisibleRows(pageSize)
		t.Focus(true)
	}

	page := models.Pagination{Page: 1, PageSize: pageSize}
	return &HistoryView{
		palette:     p,
		assessTable: assessTable,
		quoteTable:  quoteTable,
		assessPage:  page,
		quotePage:   page,
		totalPages:  [2]int{1, 1},
		now:         time.Now(),
	}
}

// Tab returns the active tab.
func (v *HistoryView) Tab() Tab {
	return v.tab
}

// Page returns the page to load for the active tab.
func (v *HistoryView) Page() models.Pagination {
	if v.tab == TabQuotes {
		return v.quotePage
	}
	return v.assessPage
}

// SetNow sets the time relative timestamps are measured from.
func (v *HistoryView) SetNow(t time.Time) {
	v.now = t
}

// SetError shows a load or delete error.
func (v *HistoryView) SetError(err error) {
	v.err = err
}

// SetAssessments replaces the assessment page.
func (v *HistoryView) SetAssessments(list *models.AssessmentList) {
	v.err = nil
	v.assessments = list.Assessments
	v.assessPage.Page = list.Page
	v.totalPages[TabAssessments] = list.TotalPages

	rows := make([][]string, len(list.Assessments))
	for i, a := range list.Assessments {
		rows[i] = []string{
			util.RelativeTimeString(a.CreatedAt, v.now),
			fmt.Sprintf("%.1f", a.BMI),
			a.Category.String(),
			fmt.Sprintf("%d", a.TargetCalories),
			fmt.Sprintf("%.1f", a.WeightKg),
			a.ActivityLevel.String(),
			a.Goal.String(),
		}
	}
	v.assessTable.SetRows(rows)
	v.assessTable.SetPagination(list.Page, list.TotalPages, list.Total)
	if len(rows) == 0 {
		v.showDetail = false
	}
}

// SetQuotes replaces the quote page.
func (v *HistoryView) SetQuotes(list *models.QuoteList) {
	v.err = nil
	v.quotes = list.Quotes
	v.quotePage.Page = list.Page
	v.totalPages[TabQuotes] = list.TotalPages

	rows := make([][]string, len(list.Quotes))
	for i, q := range list.Quotes {
		rows[i] = []string{
			util.RelativeTimeString(q.CreatedAt, v.now),
			strings.TrimPrefix(q.Coverage.String(), "₹"),
			q.TierName,
			premiumview.Rupees(q.AnnualPremium),
			fmt.Sprintf("%d", q.AgeYears),
			fmt.Sprintf("%d", q.Members),
			zoneShort(q.Zone),
		}
	}
	v.quoteTable.SetRows(rows)
	v.quoteTable.SetPagination(list.Page, list.TotalPages, list.Total)
	if len(rows) == 0 {
		v.showDetail = false
	}
}

func zoneShort(z models.Zone) string {
	if z == models.Zone1 {
		return "Metro"
	}
	return "Other"
}

func (v *HistoryView) table() *components.Table {
	if v.tab == TabQuotes {
		return v.quoteTable
	}
	return v.assessTable
}

// SelectedAssessment returns the highlighted assessment, or nil.
func (v *HistoryView) SelectedAssessment() *models.Assessment {
	idx := v.assessTable.Selected()
	if idx >= 0 && idx < len(v.assessments) {
		return v.assessments[idx]
	}
	return nil
}

// SelectedQuote returns the highlighted quote, or nil.
func (v *HistoryView) SelectedQuote() *models.Quote {
	idx := v.quoteTable.Selected()
	if idx >= 0 && idx < len(v.quotes) {
		return v.quotes[idx]
	}
	return nil
}

// SelectedID returns the ID of the highlighted row on the active tab.
func (v *HistoryView) SelectedID() string {
	if v.tab == TabQuotes {
		if q := v.SelectedQuote(); q != nil {
			return q.ID
		}
		return ""
	}
	if a := v.SelectedAssessment(); a != nil {
		return a.ID
	}
	return ""
}

// ShowingDetail reports whether the detail pane is open.
func (v *HistoryView) ShowingDetail() bool {
	return v.showDetail
}

// HandleKey handles a key press and reports what the app should do.
func (v *HistoryView) HandleKey(key string) Action {
	if v.showDetail {
		switch key {
		case "esc", "enter":
			v.showDetail = false
		case "d", "delete":
			v.showDetail = false
			return ActionDelete
		}
		return ActionNone
	}

	switch key {
	case "tab", "shift+tab":
		v.tab = 1 - v.tab
		v.table().GoToTop()
		return ActionReload
	case "up", "k":
		v.table().MoveUp()
	case "down", "j":
		v.table().MoveDown()
	case "enter":
		if v.SelectedID() != "" {
			v.showDetail = true
		}
	case "pgdown", "n":
		if v.Page().Page < v.totalPages[v.tab] {
			v.setPage(v.Page().Page + 1)
			return ActionReload
		}
	case "pgup", "p":
		if v.Page().Page > 1 {
			v.setPage(v.Page().Page - 1)
			return ActionReload
		}
	case "d", "delete":
		if v.SelectedID() != "" {
			return ActionDelete
		}
	case "X":
		if !v.table().Empty() {
			return ActionClear
		}
	}
	return ActionNone
}

func (v *HistoryView) setPage(n int) {
	if v.tab == TabQuotes {
		v.quotePage.Page = n
	} else {
		v.assessPage.Page = n
	}
	v.table().GoToTop()
}

// ResetPage returns the active tab to its first page, e.g. after a clear.
func (v *HistoryView) ResetPage() {
	v.setPage(1)
}

// Render renders the list or the detail pane.
func (v *HistoryView) Render(width int) string {
	p := v.palette
	var b strings.Builder

	b.WriteString(p.Title.Render("═══ HISTORY ═══"))
	b.WriteString("\n\n")

	for _, t := range []Tab{TabAssessments, TabQuotes} {
		label := " " + t.String() + " "
		if t == v.tab {
			b.WriteString(p.Selected.Render(label))
		} else {
			b.WriteString(p.Muted.Render(label))
		}
		b.WriteString(" ")
	}
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(p.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n\n")
	}

	if v.showDetail {
		b.WriteString(v.renderDetail(width))
		b.WriteString("\n\n")
		b.WriteString(p.Help.Render("Esc:Back  d:Delete"))
		return b.String()
	}

	table := v.table()
	if table.Empty() {
		b.WriteString(p.Muted.Render("Nothing saved yet."))
	} else {
		b.WriteString(table.RenderResponsive(width))
	}
	b.WriteString("\n\n")

	if width < 80 {
		b.WriteString(p.Help.Render("Tab:Switch  Enter:View  d:Del  n/p:Page"))
	} else {
		b.WriteString(p.Help.Render("Tab:Switch  ↑/↓:Select  Enter:Details  d:Delete  X:Clear all  PgUp/PgDn:Page"))
	}
	return b.String()
}

func (v *HistoryView) renderDetail(width int) string {
	p := v.palette
	const lw = 16

	if v.tab == TabQuotes {
		q := v.SelectedQuote()
		if q == nil {
			return p.Muted.Render("No quote selected")
		}
		in := premium.PremiumInput{
			Age:            q.AgeYears,
			Coverage:       q.Coverage,
			Members:        q.Members,
			HasPreExisting: q.HasPreExisting,
			Zone:           q.Zone,
		}
		preExisting := "No"
		if q.HasPreExisting {
			preExisting = "Yes"
		}
		profile := strings.Join([]string{
			p.Section.Render("PROFILE"),
			components.KeyValue(p, "Saved", util.FormatDateTime(q.CreatedAt), lw),
			components.KeyValue(p, "Eldest age", fmt.Sprintf("%d", q.AgeYears), lw),
			components.KeyValue(p, "Coverage", q.Coverage.String(), lw),
			components.KeyValue(p, "Members", fmt.Sprintf("%d", q.Members), lw),
			components.KeyValue(p, "Pre-existing", preExisting, lw),
			components.KeyValue(p, "Zone", q.Zone.String(), lw),
		}, "\n")
		quote := premiumview.RenderQuote(p, premium.Estimate(in), premium.GetInsuranceTips(q.AgeYears, q.HasPreExisting, q.Members))
		return components.SideBySide(profile, quote, width, 4)
	}

	a := v.SelectedAssessment()
	if a == nil {
		return p.Muted.Render("No assessment selected")
	}
	profile := strings.Join([]string{
		p.Section.Render("PROFILE"),
		components.KeyValue(p, "Saved", util.FormatDateTime(a.CreatedAt), lw),
		components.KeyValue(p, "Weight", fmt.Sprintf("%.1f kg", a.WeightKg), lw),
		components.KeyValue(p, "Height", fmt.Sprintf("%.1f cm", a.HeightCm), lw),
		components.KeyValue(p, "Age", fmt.Sprintf("%d", a.AgeYears), lw),
		components.KeyValue(p, "Gender", a.Gender.String(), lw),
		components.KeyValue(p, "Activity", a.ActivityLevel.String(), lw),
		components.KeyValue(p, "Goal", a.Goal.String(), lw),
	}, "\n")
	result := metrics.Replay(a)
	return components.SideBySide(profile, metricsview.RenderResult(p, result, metrics.PersonalizedTips(result)), width, 4)
}
