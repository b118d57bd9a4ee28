package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/isaacphi/adminshell/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSource() *config.KeyMap {
	return &config.KeyMap{
		Quit:   []string{"q", "ctrl+c"},
		Back:   []string{"esc"},
		Toggle: []string{" "},
		Up:     []string{"up", "k"},
	}
}

func TestBinding(t *testing.T) {
	b := Binding(testSource(), config.KeyActionQuit, "quit")

	assert.Equal(t, []string{"q", "ctrl+c"}, b.Keys())
	assert.Equal(t, "q/ctrl+c", b.Help().Key)
	assert.Equal(t, "quit", b.Help().Desc)
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, b))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlC}, b))
	assert.False(t, key.Matches(tea.KeyMsg{Type: tea.KeyEsc}, b))
}

func TestDisplayKeys(t *testing.T) {
	assert.Equal(t, "space", Binding(testSource(), config.KeyActionToggle, "toggle").Help().Key)
	assert.Equal(t, "↑/k", Binding(testSource(), config.KeyActionUp, "up").Help().Key)
}

func TestGroupsAndHelp(t *testing.T) {
	km := NewKeyMap(testSource())
	km.AddAction(SystemGroup, config.KeyActionQuit, "quit")

	other := NewKeyMap(testSource())
	other.AddAction(NavigationGroup, config.KeyActionBack, "back")
	km.Merge(other)

	all := km.AllBindings()
	require.Len(t, all, 2)
	assert.Equal(t, "back", all[0].Help().Desc, "navigation is listed before system keys")
	assert.Equal(t, all, km.ShortHelp())

	full := km.FullHelp()
	require.Len(t, full, 2)
	assert.Equal(t, "quit", full[1][0].Help().Desc)
}
