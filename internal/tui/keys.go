package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines the global key bindings. Module views handle their own keys.
type KeyMap struct {
	Up       Key
	Down     Key
	PageUp   Key
	PageDown Key

	Select Key
	Back   Key
	Quit   Key

	// Function keys for module navigation
	F1  Key
	F2  Key
	F3  Key
	F4  Key
	F5  Key
	F6  Key
	F10 Key
}

// Key represents a key binding.
type Key struct {
	Keys    []string
	Help    string
	Enabled bool
}

func newKey(help string, keys ...string) Key {
	return Key{Keys: keys, Help: help, Enabled: true}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       newKey("up", "up", "k"),
		Down:     newKey("down", "down", "j"),
		PageUp:   newKey("page up", "pgup"),
		PageDown: newKey("page down", "pgdown"),

		Select: newKey("select", "enter"),
		Back:   newKey("back", "esc"),
		Quit:   newKey("quit", "q", "ctrl+c"),

		F1:  newKey("Help", "f1"),
		F2:  newKey("Dashboard", "f2"),
		F3:  newKey("Health", "f3"),
		F4:  newKey("Premium", "f4"),
		F5:  newKey("Calories", "f5"),
		F6:  newKey("History", "f6"),
		F10: newKey("Quit", "f10"),
	}
}

// Matches checks if a key message matches this key binding.
func (k Key) Matches(msg tea.KeyMsg) bool {
	if !k.Enabled {
		return false
	}

	keyStr := msg.String()
	for _, key := range k.Keys {
		if keyStr == key {
			return true
		}
	}
	return false
}

// MatchesAny checks if a key message matches any of the provided key bindings.
func MatchesAny(msg tea.KeyMsg, keys ...Key) bool {
	for _, k := range keys {
		if k.Matches(msg) {
			return true
		}
	}
	return false
}

// IsQuit checks if the key message asks to quit.
func (km KeyMap) IsQuit(msg tea.KeyMsg) bool {
	return km.Quit.Matches(msg) || km.F10.Matches(msg)
}

// IsFunctionKey checks if the key message is a module function key.
func (km KeyMap) IsFunctionKey(msg tea.KeyMsg) bool {
	return MatchesAny(msg, km.F1, km.F2, km.F3, km.F4, km.F5, km.F6, km.F10)
}

// ModuleFor returns the module a function key opens, and false for F10
// and any other key.
func (km KeyMap) ModuleFor(msg tea.KeyMsg) (Module, bool) {
	switch {
	case km.F1.Matches(msg):
		return ModuleHelp, true
	case km.F2.Matches(msg):
		return ModuleDashboard, true
	case km.F3.Matches(msg):
		return ModuleMetrics, true
	case km.F4.Matches(msg):
		return ModulePremium, true
	case km.F5.Matches(msg):
		return ModuleCalories, true
	case km.F6.Matches(msg):
		return ModuleHistory, true
	default:
		return "", false
	}
}

// StatusBarHelp returns the help text for the status bar. Narrow terminals
// get the short form.
func (km KeyMap) StatusBarHelp(width int) string {
	if width < 80 {
		return "F1 Help F2 Home F3 Health F4 Premium F5 Food F6 History F10 Quit"
	}
	return "[F1]Help [F2]Dashboard [F3]Health Metrics [F4]Premium [F5]Calories [F6]History [F10]Quit"
}
