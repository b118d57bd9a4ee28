package screens

import (
	"io"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/isaacphi/adminshell/internal/config"
	"github.com/isaacphi/adminshell/internal/nav"
	"github.com/isaacphi/adminshell/internal/ui/tui/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	cfg, err := config.Load(nil, nil)
	require.NoError(t, err)
	return NewRenderer(theme.DefaultTheme(), cfg)
}

func TestRenderShowsEachScreen(t *testing.T) {
	r := newTestRenderer(t)

	tests := []struct {
		id   nav.ScreenID
		want string
	}{
		{nav.Landing, "repository"},
		{nav.Menu, "Main Menu"},
		{nav.Users, "User Management"},
		{nav.Admin, "Admin Dashboard"},
		{nav.Analytics, "Traffic Sources (Last 7 Days)"},
		{nav.Settings, "Profile Settings"},
	}

	for _, tt := range tests {
		t.Run(tt.id.String(), func(t *testing.T) {
			assert.Contains(t, r.Render(tt.id), tt.want)
		})
	}
}

func TestRenderUnknownFallsBackToLanding(t *testing.T) {
	r := newTestRenderer(t)
	c := nav.NewController(slog.New(slog.NewTextHandler(io.Discard, nil)))
	c.Enter()

	assert.Equal(t, r.Render(nav.Landing), r.Render(nav.ScreenID(42)))
	assert.Same(t, r.Screen(nav.Landing), r.Screen(nav.ScreenID(-1)))
	assert.Equal(t, nav.Menu, c.Current(), "rendering must not change navigation state")
}

func TestUpdateRoutesToScreen(t *testing.T) {
	r := newTestRenderer(t)

	cmd := r.Update(nav.Landing, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, nav.EnterMsg{}, cmd())

	cmd = r.Update(nav.Admin, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, nav.BackMsg{}, cmd())
}

func TestCapturesInputFollowsScreen(t *testing.T) {
	r := newTestRenderer(t)

	assert.False(t, r.CapturesInput(nav.Users))
	r.Update(nav.Users, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	assert.True(t, r.CapturesInput(nav.Users))
	assert.False(t, r.CapturesInput(nav.Settings))
}

func TestKeyMapIsNeverEmpty(t *testing.T) {
	r := newTestRenderer(t)
	for _, id := range nav.All() {
		assert.NotEmpty(t, r.KeyMap(id).AllBindings(), id.String())
	}
}
