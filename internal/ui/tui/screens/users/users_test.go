package users

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/isaacphi/adminshell/internal/config"
	"github.com/isaacphi/adminshell/internal/nav"
	"github.com/isaacphi/adminshell/internal/ui/tui/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUsers(t *testing.T) *Model {
	t.Helper()
	cfg, err := config.Load(nil, nil)
	require.NoError(t, err)
	return New(theme.DefaultTheme(), &cfg.KeyMap)
}

func typeText(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []int
	}{
		{"empty returns all", "", []int{1, 2, 3, 4, 5}},
		{"name match", "sarah", []int{2}},
		{"case insensitive", "MIKE", []int{3}},
		{"email match", "david@", []int{5}},
		{"shared substring", "e", []int{1, 2, 3, 4, 5}},
		{"no match", "zzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ids []int
			for _, u := range Filter(Users, tt.query) {
				ids = append(ids, u.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestSearchCapturesInputAndFilters(t *testing.T) {
	m := newTestUsers(t)
	require.Len(t, m.Visible(), len(Users))

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	require.True(t, m.CapturesInput())

	typeText(m, "emily")
	require.Len(t, m.Visible(), 1)
	assert.Equal(t, "Emily Davis", m.Visible()[0].Name)

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.CapturesInput())
	assert.Len(t, m.Visible(), 1, "leaving search keeps the filter")
}

func TestSubmitLeavesSearch(t *testing.T) {
	m := newTestUsers(t)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})

	cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	m.Update(cmd())
	assert.False(t, m.CapturesInput())
}

func TestEmptyResultMessage(t *testing.T) {
	m := newTestUsers(t)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	typeText(m, "nobody")

	assert.Empty(t, m.Visible())
	assert.Contains(t, m.View(), "No users match your search.")
}

func TestBackOutsideSearch(t *testing.T) {
	m := newTestUsers(t)

	cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, nav.BackMsg{}, cmd())
}
