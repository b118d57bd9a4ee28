package layout

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/isaacphi/adminshell/internal/config"
	"github.com/isaacphi/adminshell/internal/ui/tui/components/help"
	"github.com/isaacphi/adminshell/internal/ui/tui/keymap"
	"github.com/isaacphi/adminshell/internal/ui/tui/theme"
	"github.com/stretchr/testify/assert"
)

func TestGridWrapsRows(t *testing.T) {
	cell := strings.Repeat("x", 10)

	oneRow := Grid(40, 2, cell, cell, cell)
	assert.Equal(t, 1, lipgloss.Height(oneRow))
	assert.Equal(t, 34, lipgloss.Width(oneRow))

	twoRows := Grid(25, 2, cell, cell, cell)
	assert.Equal(t, 2, lipgloss.Height(twoRows))
}

func TestComposeKeepsFooterAtBottom(t *testing.T) {
	thm := theme.DefaultTheme()
	source := &config.KeyMap{Quit: []string{"q"}}
	km := keymap.NewKeyMap(source)
	km.AddAction(keymap.SystemGroup, config.KeyActionQuit, "quit")

	result := LayoutScreen(60, 12, help.New(km, thm), thm, "")
	assert.Equal(t, 10, result.ContentHeight)

	out := Compose("hello", result)
	lines := strings.Split(out, "\n")
	assert.Equal(t, "hello", lines[0])
	assert.Contains(t, lines[len(lines)-1], "quit")
}

func TestPageHeader(t *testing.T) {
	out := PageHeader(theme.DefaultTheme(), "Back to Menu", "Analytics", "Deep dive into your data")
	assert.Contains(t, out, "← Back to Menu")
	assert.Contains(t, out, "Analytics")
	assert.Contains(t, out, "Deep dive into your data")
}
