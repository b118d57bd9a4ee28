package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/isaacphi/adminshell/internal/config"
	"github.com/isaacphi/adminshell/internal/ui/tui/keymap"
)

// globalKeys are available on every screen outside input mode
type globalKeys struct {
	Quit key.Binding
	Help key.Binding
}

func newGlobalKeys(source *config.KeyMap) globalKeys {
	return globalKeys{
		Quit: keymap.Binding(source, config.KeyActionQuit, "quit"),
		Help: keymap.Binding(source, config.KeyActionToggleHelp, "toggle help"),
	}
}
