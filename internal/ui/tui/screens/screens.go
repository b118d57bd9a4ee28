package screens

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/isaacphi/adminshell/internal/config"
	"github.com/isaacphi/adminshell/internal/nav"
	"github.com/isaacphi/adminshell/internal/ui/tui/keymap"
	"github.com/isaacphi/adminshell/internal/ui/tui/screens/admin"
	"github.com/isaacphi/adminshell/internal/ui/tui/screens/analytics"
	"github.com/isaacphi/adminshell/internal/ui/tui/screens/landing"
	"github.com/isaacphi/adminshell/internal/ui/tui/screens/menu"
	"github.com/isaacphi/adminshell/internal/ui/tui/screens/settings"
	"github.com/isaacphi/adminshell/internal/ui/tui/screens/users"
	"github.com/isaacphi/adminshell/internal/ui/tui/theme"
)

// Screen is implemented by every screen model
type Screen interface {
	SetSize(width, height int)
	Update(msg tea.Msg) tea.Cmd
	View() string
	GetKeyMap() keymap.KeyMap
	CapturesInput() bool
}

// Renderer maps each ScreenID to the screen that presents it. Any id it
// does not know is served by the landing screen.
type Renderer struct {
	screens map[nav.ScreenID]Screen
}

// NewRenderer builds every screen up front; screens keep their own state
// (menu cursor, form values) for the life of the process.
func NewRenderer(thm *theme.Theme, cfg *config.ConfigSchema) *Renderer {
	source := &cfg.KeyMap
	return &Renderer{
		screens: map[nav.ScreenID]Screen{
			nav.Landing:   landing.New(thm, cfg.Brand, source),
			nav.Menu:      menu.New(thm, source),
			nav.Users:     users.New(thm, source),
			nav.Admin:     admin.New(thm, source),
			nav.Analytics: analytics.New(thm, source),
			nav.Settings:  settings.New(thm, source),
		},
	}
}

// Screen returns the screen presenting id, falling back to landing
func (r *Renderer) Screen(id nav.ScreenID) Screen {
	if s, ok := r.screens[id]; ok {
		return s
	}
	return r.screens[nav.Landing]
}

// Render returns the presentation of id
func (r *Renderer) Render(id nav.ScreenID) string {
	return r.Screen(id).View()
}

// Update routes msg to the screen presenting id
func (r *Renderer) Update(id nav.ScreenID, msg tea.Msg) tea.Cmd {
	return r.Screen(id).Update(msg)
}

// KeyMap returns the bindings offered by the screen presenting id
func (r *Renderer) KeyMap(id nav.ScreenID) keymap.KeyMap {
	return r.Screen(id).GetKeyMap()
}

// CapturesInput reports whether the screen presenting id is taking text
func (r *Renderer) CapturesInput(id nav.ScreenID) bool {
	return r.Screen(id).CapturesInput()
}

// SetSize resizes every screen
func (r *Renderer) SetSize(width, height int) {
	for _, s := range r.screens {
		s.SetSize(width, height)
	}
}
