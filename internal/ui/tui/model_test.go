package tui

import (
	"io"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/isaacphi/adminshell/internal/config"
	"github.com/isaacphi/adminshell/internal/nav"
	"github.com/isaacphi/adminshell/internal/ui/tui/keymap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg, err := config.Load(nil, nil)
	require.NoError(t, err)
	m := New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(Model)
}

// press sends a key and feeds any navigation messages it produces back
// into the model, the way the program loop would.
func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	updated, cmd := m.Update(msg)
	m = updated.(Model)

	for _, navMsg := range navMessages(cmd) {
		updated, _ = m.Update(navMsg)
		m = updated.(Model)
	}
	return m
}

func navMessages(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, navMessages(c)...)
		}
		return out
	case nav.EnterMsg, nav.NavigateMsg, nav.BackMsg:
		return []tea.Msg{msg}
	}
	return nil
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestKeyboardWalkthrough(t *testing.T) {
	m := newTestModel(t)
	require.Equal(t, nav.Landing, m.Current())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, nav.Menu, m.Current())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, nav.Analytics, m.Current())
	assert.Contains(t, m.View(), "Deep dive into your data")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, nav.Menu, m.Current())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("4")})
	assert.Equal(t, nav.Settings, m.Current())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")})
	assert.Equal(t, nav.Menu, m.Current())
}

func TestNavigationMessagesDriveController(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(nav.EnterMsg{})
	updated, _ = updated.Update(nav.NavigateMsg{Target: nav.Users})
	assert.Equal(t, nav.Users, updated.(Model).Current())

	updated, _ = updated.Update(nav.NavigateMsg{Target: nav.Landing})
	assert.Equal(t, nav.Users, updated.(Model).Current(), "landing is not a navigation target")

	updated, _ = updated.Update(nav.BackMsg{})
	assert.Equal(t, nav.Menu, updated.(Model).Current())
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.True(t, isQuit(cmd))

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, isQuit(cmd))
}

func TestGlobalKeysSuspendedWhileEditing(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("4")})
	require.Equal(t, nav.Settings, m.Current())

	// Start editing the first name
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, keymap.InputMode, m.mode())
	assert.Contains(t, m.View(), "editing")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	m = updated.(Model)
	assert.False(t, isQuit(cmd))
	assert.Equal(t, nav.Settings, m.Current())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, isQuit(cmd), "ctrl+c always quits")
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t)
	require.False(t, m.help.ShowAll)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	assert.True(t, updated.(Model).help.ShowAll)
}

func TestGetKeyMapIncludesGlobals(t *testing.T) {
	m := newTestModel(t)

	var helps []string
	for _, b := range m.GetKeyMap().AllBindings() {
		helps = append(helps, b.Help().Desc)
	}
	assert.Contains(t, helps, "quit")
	assert.Contains(t, helps, "open menu")
}
