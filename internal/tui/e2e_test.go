package tui

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/vedaai/veda/internal/config"
	"github.com/vedaai/veda/internal/util"
)

// newE2EApp creates an App for end-to-end testing via teatest.
// Unlike newTestApp, this does NOT pre-configure width/height/ready
// since teatest sends WindowSizeMsg via WithInitialTermSize.
func newE2EApp(t *testing.T) *App {
	t.Helper()
	return New(newMigratedDB(t), config.Default(), util.NewFixedClock(testNow))
}

// waitFor is a convenience wrapper around teatest.WaitFor with a standard timeout.
func waitFor(t *testing.T, tm *teatest.TestModel, text string) {
	t.Helper()
	teatest.WaitFor(t, tm.Output(), func(bts []byte) bool {
		return bytes.Contains(bts, []byte(text))
	}, teatest.WithDuration(5*time.Second))
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// typeKeys sends s one key at a time, as a user would type it.
func typeKeys(tm *teatest.TestModel, s string) {
	for _, r := range s {
		tm.Send(runes(string(r)))
	}
}

// --- End-to-end tests ---
// These launch the real Bubble Tea program in a headless virtual terminal,
// send actual keystrokes, and assert on the rendered screen output.

func TestE2E_DashboardOnStartup(t *testing.T) {
	tm := teatest.NewTestModel(t, newE2EApp(t),
		teatest.WithInitialTermSize(120, 40))
	t.Cleanup(func() { tm.Quit() })

	waitFor(t, tm, "No assessment yet")
}

func TestE2E_FullNavigationRoundTrip(t *testing.T) {
	tm := teatest.NewTestModel(t, newE2EApp(t),
		teatest.WithInitialTermSize(120, 40))
	t.Cleanup(func() { tm.Quit() })

	waitFor(t, tm, "TODAY")

	tm.Send(tea.KeyMsg{Type: tea.KeyF3})
	waitFor(t, tm, "HEALTH METRICS")

	tm.Send(tea.KeyMsg{Type: tea.KeyF4})
	waitFor(t, tm, "HEALTH INSURANCE")

	tm.Send(tea.KeyMsg{Type: tea.KeyF5})
	waitFor(t, tm, "CALORIE TRACKER")

	tm.Send(tea.KeyMsg{Type: tea.KeyF6})
	waitFor(t, tm, "Nothing saved yet.")

	// Help, then Esc back to History
	tm.Send(tea.KeyMsg{Type: tea.KeyF1})
	waitFor(t, tm, "NAVIGATION")
	tm.Send(tea.KeyMsg{Type: tea.KeyEscape})
	waitFor(t, tm, "Health Assessments")

	tm.Send(tea.KeyMsg{Type: tea.KeyF2})
	waitFor(t, tm, "Latest Quote")
}

func TestE2E_QuitFlow(t *testing.T) {
	tm := teatest.NewTestModel(t, newE2EApp(t),
		teatest.WithInitialTermSize(120, 40))

	waitFor(t, tm, "TODAY")

	// F10 → confirm dialog
	tm.Send(tea.KeyMsg{Type: tea.KeyF10})
	waitFor(t, tm, "CONFIRM EXIT")

	// y → quit
	tm.Send(runes("y"))

	// Program should terminate; verify final model state
	m := tm.FinalModel(t, teatest.WithFinalTimeout(5*time.Second))
	app, ok := m.(*App)
	if !ok {
		t.Fatal("expected *App final model")
	}
	if !app.quitting {
		t.Error("expected app to be quitting")
	}
}

func TestE2E_QuitCancel(t *testing.T) {
	tm := teatest.NewTestModel(t, newE2EApp(t),
		teatest.WithInitialTermSize(120, 40))
	t.Cleanup(func() { tm.Quit() })

	waitFor(t, tm, "TODAY")

	tm.Send(runes("q"))
	waitFor(t, tm, "CONFIRM EXIT")

	tm.Send(runes("n"))

	// Navigation works again once the dialog is gone
	tm.Send(tea.KeyMsg{Type: tea.KeyF3})
	waitFor(t, tm, "HEALTH METRICS")
}

func TestE2E_HealthAssessment(t *testing.T) {
	tm := teatest.NewTestModel(t, newE2EApp(t),
		teatest.WithInitialTermSize(140, 50))
	t.Cleanup(func() { tm.Quit() })

	tm.Send(tea.KeyMsg{Type: tea.KeyF3})
	waitFor(t, tm, "HEALTH METRICS")

	typeKeys(tm, "70")
	tm.Send(tea.KeyMsg{Type: tea.KeyTab})
	typeKeys(tm, "170")
	tm.Send(tea.KeyMsg{Type: tea.KeyTab})
	typeKeys(tm, "25")
	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlS})

	waitFor(t, tm, "Assessment saved: BMI 24.2")
}

func TestE2E_QuickAddFood(t *testing.T) {
	tm := teatest.NewTestModel(t, newE2EApp(t),
		teatest.WithInitialTermSize(120, 40))
	t.Cleanup(func() { tm.Quit() })

	tm.Send(tea.KeyMsg{Type: tea.KeyF5})
	waitFor(t, tm, "Nothing logged for this day.")

	tm.Send(runes("1"))
	waitFor(t, tm, "Added Roti to breakfast")
}

func TestE2E_NarrowTerminal(t *testing.T) {
	tm := teatest.NewTestModel(t, newE2EApp(t),
		teatest.WithInitialTermSize(50, 24))
	t.Cleanup(func() { tm.Quit() })

	waitFor(t, tm, "F10 Quit")

	tm.Send(tea.KeyMsg{Type: tea.KeyF4})
	waitFor(t, tm, "HEALTH INSURANCE")
}

func TestE2E_WideTerminal(t *testing.T) {
	tm := teatest.NewTestModel(t, newE2EApp(t),
		teatest.WithInitialTermSize(200, 50))
	t.Cleanup(func() { tm.Quit() })

	waitFor(t, tm, "[F3]Health Metrics")

	tm.Send(tea.KeyMsg{Type: tea.KeyF6})
	waitFor(t, tm, "Insurance Quotes")
}
