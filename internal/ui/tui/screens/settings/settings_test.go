package settings

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/isaacphi/adminshell/internal/config"
	"github.com/isaacphi/adminshell/internal/nav"
	"github.com/isaacphi/adminshell/internal/ui/tui/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSettings(t *testing.T) *Model {
	t.Helper()
	cfg, err := config.Load(nil, nil)
	require.NoError(t, err)
	return New(theme.DefaultTheme(), &cfg.KeyMap)
}

var (
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func focusOn(t *testing.T, m *Model, id string) {
	t.Helper()
	for range 20 {
		if m.Focused() == id {
			return
		}
		m.Update(tab)
	}
	t.Fatalf("never reached %s", id)
}

func TestDefaults(t *testing.T) {
	m := newTestSettings(t)

	assert.Equal(t, FirstName, m.Focused())
	assert.Equal(t, "Admin", m.Value(FirstName))
	assert.Equal(t, "User", m.Value(LastName))
	assert.Equal(t, "admin@startup002.com", m.Value(Email))
	for _, id := range []string{TwoFactor, EmailAlerts, PushAlerts, WeeklyReports} {
		assert.True(t, m.Enabled(id), id)
	}
	assert.False(t, m.CapturesInput())
}

func TestFocusWraps(t *testing.T) {
	m := newTestSettings(t)

	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, Save, m.Focused())
	m.Update(tab)
	assert.Equal(t, FirstName, m.Focused())
}

func TestToggleSwitches(t *testing.T) {
	m := newTestSettings(t)

	focusOn(t, m, TwoFactor)
	m.Update(space)
	assert.False(t, m.Enabled(TwoFactor))

	focusOn(t, m, PushAlerts)
	m.Update(enter)
	assert.False(t, m.Enabled(PushAlerts))

	// Toggling a text field does nothing
	focusOn(t, m, Email)
	m.Update(space)
	assert.False(t, m.CapturesInput())
}

func TestEditField(t *testing.T) {
	m := newTestSettings(t)

	focusOn(t, m, LastName)
	m.Update(enter)
	require.True(t, m.CapturesInput())

	// q and b are plain text while editing
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("qb")})
	assert.Equal(t, "Userqb", m.Value(LastName))

	m.Update(esc)
	assert.False(t, m.CapturesInput())
	assert.Equal(t, LastName, m.Focused())
}

func TestSubmitLeavesEditing(t *testing.T) {
	m := newTestSettings(t)
	m.Update(enter)
	require.True(t, m.CapturesInput())

	cmd := m.Update(enter)
	require.NotNil(t, cmd)
	m.Update(cmd())
	assert.False(t, m.CapturesInput())
}

func TestCancelRestoresDefaults(t *testing.T) {
	m := newTestSettings(t)

	m.Update(enter)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("istrator")})
	m.Update(esc)
	focusOn(t, m, WeeklyReports)
	m.Update(space)
	require.Equal(t, "Administrator", m.Value(FirstName))
	require.False(t, m.Enabled(WeeklyReports))

	focusOn(t, m, Save)
	m.Update(enter)
	assert.Equal(t, "Administrator", m.Value(FirstName), "save keeps values in memory")

	focusOn(t, m, Cancel)
	m.Update(enter)
	assert.Equal(t, "Admin", m.Value(FirstName))
	assert.True(t, m.Enabled(WeeklyReports))
}

func TestBackResetsFocus(t *testing.T) {
	m := newTestSettings(t)
	focusOn(t, m, Email)

	cmd := m.Update(esc)
	require.NotNil(t, cmd)
	assert.Equal(t, nav.BackMsg{}, cmd())
	assert.Equal(t, FirstName, m.Focused())
}
