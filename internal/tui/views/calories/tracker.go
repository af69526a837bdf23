// Package calories provides the daily food log view.
package calories

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vedaai/veda/internal/models"
	"github.com/vedaai/veda/internal/services/calories"
	"github.com/vedaai/veda/internal/tui/components"
	"github.com/vedaai/veda/internal/util"
)

// Action tells the app what a key press asks for.
type Action int

const (
	ActionNone Action = iota
	ActionReload
	ActionAdd
	ActionDelete
	ActionClear
)

// ProgressWarnAt is the percent of the daily goal at which the bar turns amber.
const ProgressWarnAt = 80

type mode int

const (
	modeLog mode = iota
	modeAdd
)

// Focus targets in add mode.
const (
	focusSearch = iota
	focusMeal
	focusQuantity
	focusCount
)

// TrackerView shows one day of the food log and the food picker.
type TrackerView struct {
	palette components.Palette
	table   *components.Table

	date    string
	today   string
	summary *calories.Summary
	week    []calories.DayTotal
	err     error

	mode       mode
	search     *components.Input
	meal       *components.Select
	quantity   *components.Input
	results    []models.FoodItem
	resultIdx  int
	addFocus   int
	pendingAdd calories.AddEntryInput
}

// NewTrackerView creates a tracker showing today.
func NewTrackerView(p components.Palette, today string) *TrackerView {
	columns := []components.Column{
		{Title: "Food", Width: 14, Weight: 2, Priority: 10},
		{Title: "Meal", Width: 9, Priority: 6},
		{Title: "Qty", Width: 4, Align: lipgloss.Right, Priority: 5},
		{Title: "kcal", Width: 6, Align: lipgloss.Right, Priority: 9},
		{Title: "Protein", Width: 7, Align: lipgloss.Right, Priority: 3},
		{Title: "Carbs", Width: 6, Align: lipgloss.Right, Priority: 2},
		{Title: "Fat", Width: 5, Align: lipgloss.Right, Priority: 1},
	}

	table := components.NewTable(columns)
	table.SetPalette(p)
	table.SetVisibleRows(10)
	table.Focus(true)

	mealOpts := make([]components.Option, len(models.MealTypes))
	for i, m := range models.MealTypes {
		mealOpts[i] = components.Option{Label: m.String(), Value: string(m)}
	}

	v := &TrackerView{
		palette:  p,
		table:    table,
		date:     today,
		today:    today,
		search:   components.NewInput("Search").SetWidth(24).SetMaxLength(30).SetPlaceholder("roti, dal, chai"),
		meal:     components.NewSelect("Meal", mealOpts),
		quantity: components.NewInput("Servings").SetNumeric(true).SetWidth(5).SetMaxLength(4).SetValue("1"),
	}
	v.results = calories.SearchFoods("")
	return v
}

// MealForHour suggests the meal for a time of day.
func MealForHour(hour int) models.MealType {
	switch {
	case hour < 11:
		return models.MealBreakfast
	case hour < 16:
		return models.MealLunch
	case hour < 19:
		return models.MealSnacks
	default:
		return models.MealDinner
	}
}

// SetMeal presets the meal used for new entries.
func (v *TrackerView) SetMeal(m models.MealType) {
	v.meal.SetValue(string(m))
}

// Date returns the date on display.
func (v *TrackerView) Date() string {
	return v.date
}

// SetToday updates the current date. A view showing the old today follows it.
func (v *TrackerView) SetToday(today string) {
	if v.date == v.today {
		v.date = today
	}
	v.today = today
}

// SetData replaces the day summary and the weekly totals.
func (v *TrackerView) SetData(sum *calories.Summary, week []calories.DayTotal) {
	v.summary = sum
	v.week = week
	v.err = nil

	if sum == nil {
		v.table.SetRows(nil)
		return
	}

	rows := make([][]string, len(sum.Entries))
	for i, e := range sum.Entries {
		rows[i] = []string{
			e.FoodName,
			e.Meal.String(),
			formatQty(e.Quantity),
			fmt.Sprintf("%.0f", e.Calories),
			fmt.Sprintf("%.1f", e.Protein),
			fmt.Sprintf("%.1f", e.Carbs),
			fmt.Sprintf("%.1f", e.Fat),
		}
	}
	v.table.SetRows(rows)
}

// SetError shows a load or save error.
func (v *TrackerView) SetError(err error) {
	v.err = err
}

// Adding reports whether the food picker is open.
func (v *TrackerView) Adding() bool {
	return v.mode == modeAdd
}

// PendingAdd returns the entry requested by the last ActionAdd.
func (v *TrackerView) PendingAdd() calories.AddEntryInput {
	return v.pendingAdd
}

// SelectedEntry returns the highlighted entry, or nil.
func (v *TrackerView) SelectedEntry() *models.FoodLogEntry {
	if v.summary == nil {
		return nil
	}
	idx := v.table.Selected()
	if idx >= 0 && idx < len(v.summary.Entries) {
		return v.summary.Entries[idx]
	}
	return nil
}

// HandleKey handles a key press and reports what the app should do.
func (v *TrackerView) HandleKey(key string) Action {
	if v.mode == modeAdd {
		return v.handleAddKey(key)
	}

	switch key {
	case "up", "k":
		v.table.MoveUp()
	case "down", "j":
		v.table.MoveDown()
	case "left", "[":
		return v.shiftDate(-1)
	case "right", "]":
		if v.date < v.today {
			return v.shiftDate(1)
		}
	case "t":
		if v.date != v.today {
			v.date = v.today
			return ActionReload
		}
	case "a", "/":
		v.openPicker()
	case "d", "delete":
		if v.SelectedEntry() != nil {
			return ActionDelete
		}
	case "X":
		if v.summary != nil && len(v.summary.Entries) > 0 {
			return ActionClear
		}
	case "1", "2", "3", "4", "5":
		quick := calories.QuickAddFoods()
		idx := int(key[0] - '1')
		if idx < len(quick) {
			v.pendingAdd = calories.AddEntryInput{
				FoodID:   quick[idx].ID,
				Quantity: 1,
				Meal:     models.MealType(v.meal.Value()),
				Date:     v.date,
			}
			return ActionAdd
		}
	}
	return ActionNone
}

func (v *TrackerView) shiftDate(days int) Action {
	d, err := util.ShiftDate(v.date, days)
	if err != nil {
		v.err = err
		return ActionNone
	}
	v.date = d
	return ActionReload
}

func (v *TrackerView) openPicker() {
	v.mode = modeAdd
	v.search.SetValue("")
	v.quantity.SetValue("1")
	v.results = calories.SearchFoods("")
	v.resultIdx = 0
	v.setAddFocus(focusSearch)
}

func (v *TrackerView) setAddFocus(f int) {
	v.addFocus = f
	v.search.Focus(f == focusSearch)
	v.meal.Focus(f == focusMeal)
	v.quantity.Focus(f == focusQuantity)
}

func (v *TrackerView) handleAddKey(key string) Action {
	switch key {
	case "esc":
		v.mode = modeLog
		v.setAddFocus(-1)
		return ActionNone
	case "tab":
		v.setAddFocus((v.addFocus + 1) % focusCount)
		return ActionNone
	case "shift+tab":
		v.setAddFocus((v.addFocus + focusCount - 1) % focusCount)
		return ActionNone
	case "up":
		if v.resultIdx > 0 {
			v.resultIdx--
		}
		return ActionNone
	case "down":
		if v.resultIdx < len(v.results)-1 {
			v.resultIdx++
		}
		return ActionNone
	case "enter":
		return v.submitPicker()
	}

	switch v.addFocus {
	case focusSearch:
		v.search.HandleKey(key)
		v.results = calories.SearchFoods(v.search.Value())
		v.resultIdx = min(v.resultIdx, max(len(v.results)-1, 0))
	case focusMeal:
		v.meal.HandleKey(key)
	case focusQuantity:
		v.quantity.HandleKey(key)
	}
	return ActionNone
}

func (v *TrackerView) submitPicker() Action {
	if len(v.results) == 0 {
		v.err = fmt.Errorf("no food matches %q", v.search.Value())
		return ActionNone
	}

	qty := 1.0
	if v.quantity.Value() != "" {
		q, err := v.quantity.Float()
		if err != nil {
			v.err = err
			return ActionNone
		}
		qty = q
	}

	v.pendingAdd = calories.AddEntryInput{
		FoodID:   v.results[v.resultIdx].ID,
		Quantity: qty,
		Meal:     models.MealType(v.meal.Value()),
		Date:     v.date,
	}
	v.err = nil
	v.mode = modeLog
	v.setAddFocus(-1)
	return ActionAdd
}

func formatQty(q float64) string {
	if q == math.Trunc(q) {
		return fmt.Sprintf("%.0f", q)
	}
	return fmt.Sprintf("%.1f", q)
}

// Render renders the tracker for the given width.
func (v *TrackerView) Render(width int) string {
	p := v.palette
	var b strings.Builder

	title := "═══ CALORIE TRACKER ═══"
	dateLabel := v.date
	if t, err := util.ParseDate(v.date); err == nil {
		dateLabel = t.Format("Mon 02 Jan 2006")
	}
	if v.date == v.today {
		dateLabel += " (today)"
	}
	b.WriteString(p.Title.Render(title) + "  " + p.Value.Render("◀ "+dateLabel+" ▶"))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(p.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n\n")
	}

	if v.mode == modeAdd {
		b.WriteString(v.renderPicker(width))
		return b.String()
	}

	if v.summary == nil {
		b.WriteString(p.Muted.Render("Loading..."))
		return b.String()
	}

	b.WriteString(v.renderProgress(width))
	b.WriteString("\n\n")

	for _, m := range models.MealTypes {
		b.WriteString(p.Label.Render(fmt.Sprintf("%s %.0f", m.String(), v.summary.MealCalories[m])))
		b.WriteString("   ")
	}
	b.WriteString("\n\n")

	if v.table.Empty() {
		b.WriteString(p.Muted.Render("Nothing logged for this day."))
	} else {
		b.WriteString(v.table.RenderResponsive(width))
	}
	b.WriteString("\n\n")

	if len(v.week) > 0 {
		b.WriteString(v.renderWeek())
		b.WriteString("\n\n")
	}

	b.WriteString(v.renderQuickAdd())
	b.WriteString("\n")
	if width < 80 {
		b.WriteString(p.Help.Render("a:Add  1-5:Quick  d:Del  ←/→:Day"))
	} else {
		b.WriteString(p.Help.Render("a:Add food  1-5:Quick add  d:Delete  X:Clear day  ←/→:Day  t:Today"))
	}

	return b.String()
}

func (v *TrackerView) renderProgress(width int) string {
	p := v.palette
	s := v.summary

	var b strings.Builder
	b.WriteString(components.ProgressBar(p, s.Progress, min(width, 60), ProgressWarnAt))
	b.WriteString(" ")
	b.WriteString(p.Value.Render(fmt.Sprintf("%.0f%%", s.Progress)))
	b.WriteString("\n")

	b.WriteString(p.Value.Bold(true).Render(fmt.Sprintf("%.0f / %d kcal", s.Calories, s.Goal)))
	b.WriteString("  ")
	if s.Remaining >= 0 {
		b.WriteString(p.Success.Render(fmt.Sprintf("%.0f remaining", s.Remaining)))
	} else {
		b.WriteString(p.Error.Render(fmt.Sprintf("%.0f over", -s.Remaining)))
	}
	b.WriteString("\n")
	b.WriteString(p.Label.Render(fmt.Sprintf("Protein %.1fg  Carbs %.1fg  Fat %.1fg", s.Protein, s.Carbs, s.Fat)))

	return b.String()
}

func (v *TrackerView) renderWeek() string {
	p := v.palette
	goal := 0
	if v.summary != nil {
		goal = v.summary.Goal
	}

	var b strings.Builder
	b.WriteString(p.Section.Render("LAST 7 DAYS"))
	b.WriteString("\n")
	for _, d := range v.week {
		label := d.Date
		if t, err := util.ParseDate(d.Date); err == nil {
			label = t.Format("Mon 02")
		}
		pct := 0.0
		if goal > 0 {
			pct = d.Calories / float64(goal) * 100
		}
		style := p.Row
		if d.Date == v.date {
			style = p.Focus
		}
		b.WriteString(style.Render(components.PadRight(label, 8)))
		b.WriteString(components.ProgressBar(p, pct, 22, ProgressWarnAt))
		b.WriteString(p.Value.Render(fmt.Sprintf(" %5.0f", d.Calories)))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (v *TrackerView) renderQuickAdd() string {
	p := v.palette
	var parts []string
	for i, f := range calories.QuickAddFoods() {
		parts = append(parts, p.Focus.Render(fmt.Sprintf("%d", i+1))+":"+p.Value.Render(f.Name))
	}
	return p.Label.Render("Quick add ("+models.MealType(v.meal.Value()).String()+"): ") + strings.Join(parts, "  ")
}

func (v *TrackerView) renderPicker(width int) string {
	p := v.palette
	var b strings.Builder

	b.WriteString(p.Section.Render("ADD FOOD"))
	b.WriteString("\n")
	b.WriteString(v.search.RenderWith(p))
	b.WriteString("\n\n")

	if len(v.results) == 0 {
		b.WriteString(p.Muted.Render("No matching foods."))
		b.WriteString("\n")
	}

	nameWidth := max(min(width-40, 24), 10)
	for i, f := range v.results {
		line := fmt.Sprintf("%s %s %s %6.0f kcal",
			components.PadRight(components.Truncate(f.Name, nameWidth), nameWidth),
			components.PadRight(f.NameHi, 6),
			components.PadRight(f.Serving, 16),
			f.Calories,
		)
		if i == v.resultIdx {
			b.WriteString(p.Selected.Render("> " + line))
		} else {
			b.WriteString(p.Row.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.meal.RenderWith(p))
	b.WriteString("\n")
	b.WriteString(v.quantity.RenderWith(p))
	b.WriteString("\n\n")
	b.WriteString(p.Help.Render("Type to search  ↑/↓:Choose  Tab:Meal/Servings  Enter:Add  Esc:Back"))

	return b.String()
}
