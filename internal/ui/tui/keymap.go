package tui

import (
	"github.com/isaacphi/adminshell/internal/ui/tui/keymap"
)

// mode reports whether the active screen is capturing text input
func (m Model) mode() keymap.AppMode {
	if m.screens.CapturesInput(m.nav.Current()) {
		return keymap.InputMode
	}
	return keymap.NormalMode
}

// GetKeyMap returns all relevant keybindings for the current state
func (m Model) GetKeyMap() keymap.KeyMap {
	km := keymap.NewKeyMap(m.source)

	// Global keys are suspended while a screen takes text input
	if m.mode() == keymap.NormalMode {
		km.Add(keymap.SystemGroup, m.keys.Quit)
		km.Add(keymap.SystemGroup, m.keys.Help)
	}

	km.Merge(m.screens.KeyMap(m.nav.Current()))
	return km
}
