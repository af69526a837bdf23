package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vedaai/veda/internal/config"
	"github.com/vedaai/veda/internal/database"
	"github.com/vedaai/veda/internal/models"
	"github.com/vedaai/veda/internal/services/calories"
	"github.com/vedaai/veda/internal/services/metrics"
	"github.com/vedaai/veda/internal/services/premium"
	"github.com/vedaai/veda/internal/tui/components"
	caloriesview "github.com/vedaai/veda/internal/tui/views/calories"
	historyview "github.com/vedaai/veda/internal/tui/views/history"
	metricsview "github.com/vedaai/veda/internal/tui/views/metrics"
	premiumview "github.com/vedaai/veda/internal/tui/views/premium"
	"github.com/vedaai/veda/internal/util"
)

// Version information (set at build time)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// MaxContentWidth is the maximum width for content display
const MaxContentWidth = 140

// HistoryPageSize is the number of saved calculations listed per page.
const HistoryPageSize = 10

// Module represents a view module in the application.
type Module string

const (
	ModuleDashboard Module = "dashboard"
	ModuleMetrics   Module = "metrics"
	ModulePremium   Module = "premium"
	ModuleCalories  Module = "calories"
	ModuleHistory   Module = "history"
	ModuleHelp      Module = "help"
)

// App is the main Bubble Tea application model.
type App struct {
	// Dependencies
	db     *database.DB
	config *config.Config
	clock  util.Clock

	// Services
	metricsSvc  *metrics.Service
	premiumSvc  *premium.Service
	caloriesSvc *calories.Service

	// Views
	metricsView  *metricsview.MetricsView
	premiumView  *premiumview.PremiumView
	trackerView  *caloriesview.TrackerView
	historyView  *historyview.HistoryView
	dashboard    dashboardData
	dashboardErr error

	// UI state
	theme    *Theme
	keys     KeyMap
	width    int
	height   int
	ready    bool
	quitting bool
	confirm  *confirmPrompt

	currentModule  Module
	previousModule Module

	alerts []Alert
}

// confirmPrompt is a yes/no modal. A nil onYes means quit.
type confirmPrompt struct {
	title   string
	message string
	onYes   tea.Cmd
}

// Alert represents a status bar message.
type Alert struct {
	Level   AlertLevel
	Message string
	Time    time.Time
}

// AlertLevel indicates the severity of an alert.
type AlertLevel int

const (
	AlertInfo AlertLevel = iota
	AlertWarning
	AlertCritical
)

type dashboardData struct {
	summary    *calories.Summary
	assessment *models.Assessment
	quote      *models.Quote
}

// tickMsg is sent periodically to update the UI.
type tickMsg time.Time

// New creates a new App instance.
func New(db *database.DB, cfg *config.Config, clock util.Clock) *App {
	if clock == nil {
		clock = util.SystemClock{}
	}

	theme := NewTheme(cfg.Display.ColorScheme)
	palette := theme.Palette()

	caloriesSvc := calories.NewService(db.DB, clock, cfg.Calories.DailyGoal)

	trackerView := caloriesview.NewTrackerView(palette, caloriesSvc.Today())
	trackerView.SetMeal(caloriesview.MealForHour(clock.Now().Hour()))

	historyView := historyview.NewHistoryView(palette, HistoryPageSize)
	historyView.SetNow(clock.Now())

	return &App{
		db:            db,
		config:        cfg,
		clock:         clock,
		metricsSvc:    metrics.NewService(db.DB, clock),
		premiumSvc:    premium.NewService(db.DB, clock),
		caloriesSvc:   caloriesSvc,
		metricsView:   metricsview.NewMetricsView(palette, cfg.Profile),
		premiumView:   premiumview.NewPremiumView(palette, cfg.Insurance),
		trackerView:   trackerView,
		historyView:   historyView,
		theme:         theme,
		keys:          DefaultKeyMap(),
		currentModule: ModuleDashboard,
		alerts:        []Alert{},
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tickCmd(),
		a.loadDashboard(),
	)
}

// tickCmd returns a command that sends tick messages.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type dashboardLoadedMsg struct {
	data dashboardData
	err  error
}

type assessedMsg struct {
	report *metrics.Report
	err    error
}

type quotedMsg struct {
	report *premium.QuoteReport
	err    error
}

type caloriesLoadedMsg struct {
	date    string
	summary *calories.Summary
	week    []calories.DayTotal
	err     error
}

type foodLogChangedMsg struct {
	message string
	err     error
}

type historyLoadedMsg struct {
	tab         historyview.Tab
	assessments *models.AssessmentList
	quotes      *models.QuoteList
	err         error
}

type historyChangedMsg struct {
	message string
	err     error
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		return a, nil

	case tickMsg:
		a.historyView.SetNow(a.clock.Now())
		shown := a.trackerView.Date()
		a.trackerView.SetToday(a.caloriesSvc.Today())
		if a.trackerView.Date() != shown {
			return a, tea.Batch(tickCmd(), a.loadCalories(), a.loadDashboard())
		}
		return a, tickCmd()

	case dashboardLoadedMsg:
		a.dashboardErr = msg.err
		if msg.err == nil {
			a.dashboard = msg.data
		}
		return a, nil

	case assessedMsg:
		if msg.err != nil {
			a.metricsView.SetError(msg.err)
			return a, nil
		}
		a.metricsView.SetReport(msg.report)
		a.AddAlert(AlertInfo, fmt.Sprintf("Assessment saved: BMI %.1f (%s)", msg.report.Result.BMI, msg.report.Result.Category.Label))
		return a, a.loadDashboard()

	case quotedMsg:
		if msg.err != nil {
			a.premiumView.SetError(msg.err)
			return a, nil
		}
		a.premiumView.SetReport(msg.report)
		a.AddAlert(AlertInfo, "Quote saved: "+premiumview.Rupees(msg.report.Result.Annual)+"/year")
		return a, a.loadDashboard()

	case caloriesLoadedMsg:
		if msg.date != a.trackerView.Date() {
			return a, nil
		}
		if msg.err != nil {
			a.trackerView.SetError(msg.err)
			return a, nil
		}
		a.trackerView.SetData(msg.summary, msg.week)
		return a, nil

	case foodLogChangedMsg:
		if msg.err != nil {
			a.trackerView.SetError(msg.err)
			a.AddAlert(AlertWarning, msg.err.Error())
			return a, nil
		}
		a.AddAlert(AlertInfo, msg.message)
		return a, tea.Batch(a.loadCalories(), a.loadDashboard())

	case historyLoadedMsg:
		if msg.tab != a.historyView.Tab() {
			return a, nil
		}
		switch {
		case msg.err != nil:
			a.historyView.SetError(msg.err)
		case msg.tab == historyview.TabQuotes:
			a.historyView.SetQuotes(msg.quotes)
		default:
			a.historyView.SetAssessments(msg.assessments)
		}
		return a, nil

	case historyChangedMsg:
		if msg.err != nil {
			a.historyView.SetError(msg.err)
			a.AddAlert(AlertWarning, msg.err.Error())
			return a, nil
		}
		a.AddAlert(AlertInfo, msg.message)
		return a, tea.Batch(a.loadHistory(), a.loadDashboard())
	}

	return a, nil
}

// handleKeyPress processes key press events.
func (a *App) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Modal takes priority
	if a.confirm != nil {
		switch msg.String() {
		case "y", "Y", "enter":
			prompt := a.confirm
			a.confirm = nil
			if prompt.onYes == nil {
				a.quitting = true
				return a, tea.Quit
			}
			return a, prompt.onYes
		case "n", "N", "esc":
			a.confirm = nil
		}
		return a, nil
	}

	// Text entry gets every key except function keys and ctrl+c
	if a.capturingText() && !a.keys.IsFunctionKey(msg) && msg.String() != "ctrl+c" {
		return a.handleCaloriesKeys(msg)
	}

	if a.keys.IsQuit(msg) {
		a.confirm = &confirmPrompt{title: "CONFIRM EXIT", message: "Are you sure you want to exit?"}
		return a, nil
	}

	if module, ok := a.keys.ModuleFor(msg); ok {
		return a, a.switchModule(module)
	}

	switch a.currentModule {
	case ModuleMetrics:
		return a.handleMetricsKeys(msg)
	case ModulePremium:
		return a.handlePremiumKeys(msg)
	case ModuleCalories:
		return a.handleCaloriesKeys(msg)
	case ModuleHistory:
		return a.handleHistoryKeys(msg)
	case ModuleHelp:
		if a.keys.Back.Matches(msg) && a.previousModule != "" {
			a.currentModule = a.previousModule
			a.previousModule = ""
		}
	}

	return a, nil
}

func (a *App) capturingText() bool {
	return a.currentModule == ModuleCalories && a.trackerView.Adding()
}

// switchModule opens a module and returns the command that loads its data.
func (a *App) switchModule(module Module) tea.Cmd {
	if module == ModuleHelp {
		if a.currentModule != ModuleHelp {
			a.previousModule = a.currentModule
		}
		a.currentModule = ModuleHelp
		return nil
	}

	a.currentModule = module
	switch module {
	case ModuleDashboard:
		return a.loadDashboard()
	case ModuleCalories:
		return a.loadCalories()
	case ModuleHistory:
		return a.loadHistory()
	}
	return nil
}

func (a *App) handleMetricsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.metricsView.HandleKey(msg.String()) {
	case components.FormSubmit:
		in, err := a.metricsView.Input()
		if err != nil {
			return a, nil
		}
		return a, a.assess(in)
	case components.FormCancel:
		a.metricsView.Reset()
	}
	return a, nil
}

func (a *App) handlePremiumKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.premiumView.HandleKey(msg.String()) {
	case components.FormSubmit:
		in, err := a.premiumView.Input()
		if err != nil {
			return a, nil
		}
		return a, a.quote(in)
	case components.FormCancel:
		a.premiumView.Reset()
	}
	return a, nil
}

func (a *App) handleCaloriesKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.trackerView.HandleKey(msg.String()) {
	case caloriesview.ActionReload:
		return a, a.loadCalories()
	case caloriesview.ActionAdd:
		return a, a.addEntry(a.trackerView.PendingAdd())
	case caloriesview.ActionDelete:
		if e := a.trackerView.SelectedEntry(); e != nil {
			return a, a.removeEntry(e)
		}
	case caloriesview.ActionClear:
		date := a.trackerView.Date()
		a.confirm = &confirmPrompt{
			title:   "CLEAR DAY",
			message: "Remove every entry logged on " + date + "?",
			onYes:   a.clearDay(date),
		}
	}
	return a, nil
}

func (a *App) handleHistoryKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.historyView.HandleKey(msg.String()) {
	case historyview.ActionReload:
		return a, a.loadHistory()
	case historyview.ActionDelete:
		if id := a.historyView.SelectedID(); id != "" {
			return a, a.deleteHistory(a.historyView.Tab(), id)
		}
	case historyview.ActionClear:
		tab := a.historyView.Tab()
		a.confirm = &confirmPrompt{
			title:   "CLEAR HISTORY",
			message: "Delete all saved " + strings.ToLower(tab.String()) + "?",
			onYes:   a.clearHistory(tab),
		}
	}
	return a, nil
}

// loadDashboard loads today's totals and the latest saved calculations.
func (a *App) loadDashboard() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		var data dashboardData
		var err error

		if data.summary, err = a.caloriesSvc.DailySummary(ctx, a.caloriesSvc.Today()); err != nil {
			return dashboardLoadedMsg{err: err}
		}
		if data.assessment, err = a.metricsSvc.LatestAssessment(ctx); err != nil {
			return dashboardLoadedMsg{err: err}
		}
		if data.quote, err = a.premiumSvc.LatestQuote(ctx); err != nil {
			return dashboardLoadedMsg{err: err}
		}
		return dashboardLoadedMsg{data: data}
	}
}

func (a *App) assess(in metrics.AssessInput) tea.Cmd {
	return func() tea.Msg {
		report, err := a.metricsSvc.Assess(context.Background(), in)
		return assessedMsg{report: report, err: err}
	}
}

func (a *App) quote(in premium.PremiumInput) tea.Cmd {
	return func() tea.Msg {
		report, err := a.premiumSvc.Quote(context.Background(), in)
		return quotedMsg{report: report, err: err}
	}
}

// loadCalories loads the tracker's day and the week ending on it.
func (a *App) loadCalories() tea.Cmd {
	date := a.trackerView.Date()
	return func() tea.Msg {
		ctx := context.Background()
		summary, err := a.caloriesSvc.DailySummary(ctx, date)
		if err != nil {
			return caloriesLoadedMsg{date: date, err: err}
		}
		week, err := a.caloriesSvc.WeeklyTotals(ctx, date)
		return caloriesLoadedMsg{date: date, summary: summary, week: week, err: err}
	}
}

func (a *App) addEntry(in calories.AddEntryInput) tea.Cmd {
	return func() tea.Msg {
		e, err := a.caloriesSvc.AddEntry(context.Background(), in)
		if err != nil {
			return foodLogChangedMsg{err: err}
		}
		return foodLogChangedMsg{message: fmt.Sprintf("Added %s to %s (%.0f kcal)", e.FoodName, strings.ToLower(e.Meal.String()), e.Calories)}
	}
}

func (a *App) removeEntry(e *models.FoodLogEntry) tea.Cmd {
	return func() tea.Msg {
		if err := a.caloriesSvc.RemoveEntry(context.Background(), e.ID); err != nil {
			return foodLogChangedMsg{err: err}
		}
		return foodLogChangedMsg{message: "Removed " + e.FoodName}
	}
}

func (a *App) clearDay(date string) tea.Cmd {
	return func() tea.Msg {
		n, err := a.caloriesSvc.ClearDay(context.Background(), date)
		if err != nil {
			return foodLogChangedMsg{err: err}
		}
		return foodLogChangedMsg{message: fmt.Sprintf("Cleared %d entries", n)}
	}
}

// loadHistory loads the history view's active tab and page.
func (a *App) loadHistory() tea.Cmd {
	tab := a.historyView.Tab()
	page := a.historyView.Page()
	return func() tea.Msg {
		ctx := context.Background()
		if tab == historyview.TabQuotes {
			list, err := a.premiumSvc.ListQuotes(ctx, page)
			return historyLoadedMsg{tab: tab, quotes: list, err: err}
		}
		list, err := a.metricsSvc.ListAssessments(ctx, page)
		return historyLoadedMsg{tab: tab, assessments: list, err: err}
	}
}

func (a *App) deleteHistory(tab historyview.Tab, id string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		var err error
		if tab == historyview.TabQuotes {
			err = a.premiumSvc.DeleteQuote(ctx, id)
		} else {
			err = a.metricsSvc.DeleteAssessment(ctx, id)
		}
		if err != nil {
			return historyChangedMsg{err: err}
		}
		return historyChangedMsg{message: "Deleted 1 record"}
	}
}

func (a *App) clearHistory(tab historyview.Tab) tea.Cmd {
	a.historyView.ResetPage()
	return func() tea.Msg {
		ctx := context.Background()
		var n int64
		var err error
		if tab == historyview.TabQuotes {
			n, err = a.premiumSvc.ClearQuotes(ctx)
		} else {
			n, err = a.metricsSvc.ClearAssessments(ctx)
		}
		if err != nil {
			return historyChangedMsg{err: err}
		}
		return historyChangedMsg{message: fmt.Sprintf("Deleted %d records", n)}
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initializing..."
	}

	if a.quitting {
		return a.theme.Title.Render("Stay healthy. Namaste!")
	}

	var b strings.Builder

	b.WriteString(a.renderHeader())
	b.WriteString("\n")

	b.WriteString(a.renderAlertBar())
	b.WriteString("\n")

	contentHeight := ContentHeight(a.height, 6) // header, alert, footer
	if a.confirm != nil {
		b.WriteString(a.renderConfirmDialog(contentHeight))
	} else {
		b.WriteString(a.renderContent(contentHeight))
	}

	b.WriteString("\n")
	b.WriteString(a.renderFooter())

	return b.String()
}

// renderHeader renders the top header bar.
func (a *App) renderHeader() string {
	title := fmt.Sprintf("%s v%s", strings.ToUpper(a.config.App.Name), Version)
	if GetBreakpoint(a.width) != BreakpointNarrow {
		title = fmt.Sprintf("%s · HEALTH & INSURANCE v%s", strings.ToUpper(a.config.App.Name), Version)
	}

	info := "Namaste"
	if a.config.App.UserName != "" {
		info += ", " + a.config.App.UserName
	}

	spacing := max(a.width-lipgloss.Width(title)-lipgloss.Width(info)-4, 1)

	header := a.theme.Header.Render(title) +
		strings.Repeat(" ", spacing) +
		a.theme.Header.Render(info)

	return header + "\n" + a.theme.DrawDoubleLine(a.width)
}

// renderAlertBar renders the clock and the latest alert.
func (a *App) renderAlertBar() string {
	now := a.clock.Now()
	timeStr := now.Format(a.config.Display.DateFormat + " " + a.config.Display.TimeFormat)

	var alertText string
	if len(a.alerts) > 0 {
		alert := a.alerts[0]
		switch alert.Level {
		case AlertCritical:
			alertText = a.theme.AlertCrit.Render("ERROR: " + alert.Message)
		case AlertWarning:
			alertText = a.theme.AlertWarn.Render("WARNING: " + alert.Message)
		default:
			alertText = a.theme.Alert.Render(alert.Message)
		}
	} else {
		alertText = a.theme.Muted.Render("Ready")
	}

	return a.theme.Value.Render(timeStr) + a.theme.StatusDivider.Render() + alertText
}

// renderContent renders the main content area based on current module.
func (a *App) renderContent(height int) string {
	contentWidth := ContentWidth(a.width, 40, MaxContentWidth)
	content := a.getModuleContent(contentWidth)

	style := lipgloss.NewStyle().
		Width(a.width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Top)

	contentStyle := lipgloss.NewStyle().
		Width(contentWidth)

	return style.Render(contentStyle.Render(content))
}

// getModuleContent returns the content for the current module.
func (a *App) getModuleContent(width int) string {
	switch a.currentModule {
	case ModuleMetrics:
		return a.metricsView.Render(width)
	case ModulePremium:
		return a.premiumView.Render(width)
	case ModuleCalories:
		return a.trackerView.Render(width)
	case ModuleHistory:
		return a.historyView.Render(width)
	case ModuleHelp:
		return a.renderHelp()
	default:
		return a.renderDashboard(width)
	}
}

// renderDashboard renders today's overview.
func (a *App) renderDashboard(width int) string {
	var b strings.Builder
	p := a.theme.Palette()

	b.WriteString(a.theme.Title.Render("═══ TODAY ═══"))
	b.WriteString("\n\n")

	if a.dashboardErr != nil {
		b.WriteString(a.theme.Error.Render("Error: " + a.dashboardErr.Error()))
		b.WriteString("\n\n")
	}

	cardWidth := width
	if GetBreakpoint(width) == BreakpointWide {
		cardWidth = (width - 2) / 3
	}

	var food strings.Builder
	if s := a.dashboard.summary; s != nil {
		food.WriteString(components.ProgressBar(p, s.Progress, max(cardWidth-6, 10), caloriesview.ProgressWarnAt))
		food.WriteString("\n")
		food.WriteString(a.theme.Value.Render(fmt.Sprintf("%.0f / %d kcal", s.Calories, s.Goal)))
		food.WriteString("\n")
		food.WriteString(a.theme.Label.Render(fmt.Sprintf("%d entries  P %.0fg  C %.0fg  F %.0fg", len(s.Entries), s.Protein, s.Carbs, s.Fat)))
	} else {
		food.WriteString(a.theme.Muted.Render("Loading..."))
	}

	var health strings.Builder
	if as := a.dashboard.assessment; as != nil {
		health.WriteString(a.theme.Value.Render(fmt.Sprintf("BMI %.1f  %s", as.BMI, as.Category)))
		health.WriteString("\n")
		health.WriteString(a.theme.Label.Render(fmt.Sprintf("Target %d kcal  Water %.1f L", as.TargetCalories, as.WaterLiters)))
		health.WriteString("\n")
		health.WriteString(a.theme.Muted.Render(util.RelativeTimeString(as.CreatedAt, a.clock.Now())))
	} else {
		health.WriteString(a.theme.Muted.Render("No assessment yet. Press F3."))
	}

	var cover strings.Builder
	if q := a.dashboard.quote; q != nil {
		cover.WriteString(a.theme.Value.Render(fmt.Sprintf("%s  %s/year", q.TierName, premiumview.Rupees(q.AnnualPremium))))
		cover.WriteString("\n")
		cover.WriteString(a.theme.Label.Render(fmt.Sprintf("%s for %d, age %d", q.Coverage, q.Members, q.AgeYears)))
		cover.WriteString("\n")
		cover.WriteString(a.theme.Muted.Render(util.RelativeTimeString(q.CreatedAt, a.clock.Now())))
	} else {
		cover.WriteString(a.theme.Muted.Render("No quote yet. Press F4."))
	}

	cards := []string{
		a.theme.Panel("Calories", food.String(), cardWidth),
		a.theme.Panel("Latest Assessment", health.String(), cardWidth),
		a.theme.Panel("Latest Quote", cover.String(), cardWidth),
	}
	if cardWidth < width {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	} else {
		b.WriteString(strings.Join(cards, "\n"))
	}

	return b.String()
}

// renderHelp renders the help screen.
func (a *App) renderHelp() string {
	var b strings.Builder

	b.WriteString(a.theme.Title.Render("═══ HELP ═══"))
	b.WriteString("\n\n")

	b.WriteString(a.theme.Subtitle.Render("NAVIGATION"))
	b.WriteString("\n\n")

	navItems := [][2]string{
		{"F1", "Help"},
		{"F2", "Dashboard"},
		{"F3", "Health Metrics (BMI, BMR, TDEE)"},
		{"F4", "Insurance Premium Estimator"},
		{"F5", "Calorie Tracker"},
		{"F6", "History"},
		{"F10", "Quit"},
	}

	for _, item := range navItems {
		line := fmt.Sprintf("    %-10s  %s", item[0], item[1])
		b.WriteString(a.theme.Primary.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(a.theme.Subtitle.Render("CONTROLS"))
	b.WriteString("\n\n")

	ctrlItems := [][2]string{
		{"Tab", "Next field / switch history tab"},
		{"←/→", "Choose option / change day"},
		{"Ctrl+S", "Calculate"},
		{"Esc", "Reset form / back"},
		{"a", "Add food"},
		{"1-5", "Quick add"},
		{"d", "Delete selected"},
		{"X", "Clear day or history"},
		{"PgUp/Dn", "Page navigation"},
	}

	for _, item := range ctrlItems {
		line := fmt.Sprintf("    %-10s  %s", item[0], item[1])
		b.WriteString(a.theme.Primary.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(a.theme.Muted.Render("Estimates are for guidance only and are not medical or financial advice."))
	b.WriteString("\n")
	b.WriteString(a.theme.Muted.Render("Press Esc to return"))

	return b.String()
}

// renderConfirmDialog renders the active confirmation dialog.
func (a *App) renderConfirmDialog(height int) string {
	dialog := a.theme.Box.Render(
		a.theme.Title.Render(a.confirm.title) + "\n\n" +
			a.theme.Base.Render(a.confirm.message) + "\n\n" +
			a.theme.Label.Render("[Y]es  [N]o"),
	)

	style := lipgloss.NewStyle().
		Width(a.width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center)

	return style.Render(dialog)
}

// renderFooter renders the bottom status bar.
func (a *App) renderFooter() string {
	separator := a.theme.DrawHorizontalLine(a.width)
	help := a.keys.StatusBarHelp(a.width)
	return separator + "\n" + a.theme.Footer.Render(help)
}

// AddAlert adds a new alert to the display.
func (a *App) AddAlert(level AlertLevel, message string) {
	a.alerts = append([]Alert{{
		Level:   level,
		Message: message,
		Time:    a.clock.Now(),
	}}, a.alerts...)

	// Keep only last 10 alerts
	if len(a.alerts) > 10 {
		a.alerts = a.alerts[:10]
	}
}

// ClearAlerts removes all alerts.
func (a *App) ClearAlerts() {
	a.alerts = []Alert{}
}

// Run starts the TUI application.
func Run(ctx context.Context, db *database.DB, cfg *config.Config, clock util.Clock) error {
	app := New(db, cfg, clock)

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))

	_, err := p.Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
