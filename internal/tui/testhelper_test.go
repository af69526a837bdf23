package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vedaai/veda/internal/config"
	"github.com/vedaai/veda/internal/database"
	"github.com/vedaai/veda/internal/util"
)

// testNow is Saturday morning, so the tracker defaults to breakfast.
var testNow = time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)

// newMigratedDB opens an in-memory database with the embedded migrations applied.
func newMigratedDB(t *testing.T) *database.DB {
	t.Helper()

	db, err := database.NewInMemory()
	if err != nil {
		t.Fatalf("creating test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := database.Migrate(context.Background(), db); err != nil {
		t.Fatalf("running migrations: %v", err)
	}
	return db
}

// newTestApp creates an App backed by an in-memory database with a fixed
// clock. The window is set to 120x40 and marked ready.
func newTestApp(t *testing.T) *App {
	t.Helper()

	app := New(newMigratedDB(t), config.Default(), util.NewFixedClock(testNow))
	app.width = 120
	app.height = 40
	app.ready = true

	return app
}

// send delivers msgs to the app and runs every command they produce until
// the app settles. Tick commands are never produced here since tests do not
// call Init or send tickMsg through send.
func send(t *testing.T, app *App, msgs ...tea.Msg) {
	t.Helper()
	for _, msg := range msgs {
		_, cmd := app.Update(msg)
		run(t, app, cmd)
	}
}

func run(t *testing.T, app *App, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case nil, tea.QuitMsg:
	case tea.BatchMsg:
		for _, c := range msg {
			run(t, app, c)
		}
	default:
		_, next := app.Update(msg)
		run(t, app, next)
	}
}

// keyMsg creates a tea.KeyMsg for a regular character key.
func keyMsg(key string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

// specialKeyMsg creates a tea.KeyMsg for a special key type.
func specialKeyMsg(keyType tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: keyType}
}

// typeString sends s one rune at a time.
func typeString(t *testing.T, app *App, s string) {
	t.Helper()
	for _, r := range s {
		send(t, app, keyMsg(string(r)))
	}
}
