package admin

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/isaacphi/adminshell/internal/config"
	"github.com/isaacphi/adminshell/internal/nav"
	"github.com/isaacphi/adminshell/internal/ui/tui/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminDashboard(t *testing.T) {
	cfg, err := config.Load(nil, nil)
	require.NoError(t, err)
	m := New(theme.DefaultTheme(), &cfg.KeyMap)

	view := m.View()
	for _, s := range Stats {
		assert.Contains(t, view, s.Label)
	}
	assert.Contains(t, view, "Revenue Overview")
	assert.Contains(t, view, "@user_1")

	assert.Nil(t, m.Update(tea.KeyMsg{Type: tea.KeyEnter}))
	cmd := m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	require.NotNil(t, cmd)
	assert.Equal(t, nav.BackMsg{}, cmd())
}
