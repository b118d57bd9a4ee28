package landing

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/isaacphi/adminshell/internal/config"
	"github.com/isaacphi/adminshell/internal/nav"
	"github.com/isaacphi/adminshell/internal/ui/tui/keymap"
	"github.com/isaacphi/adminshell/internal/ui/tui/theme"
)

// Model represents the landing screen
type Model struct {
	theme  *theme.Theme
	brand  config.Brand
	source *config.KeyMap
	enter  key.Binding
	width  int
	height int
}

// New creates a new landing screen model
func New(thm *theme.Theme, brand config.Brand, source *config.KeyMap) *Model {
	return &Model{
		theme:  thm,
		brand:  brand,
		source: source,
		enter:  keymap.Binding(source, config.KeyActionEnter, "open menu"),
	}
}

// SetSize sets the area available to the screen
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles updates to the landing screen
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.enter) {
		return nav.Enter()
	}
	return nil
}

// View renders the brand centred in the available area
func (m *Model) View() string {
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		m.theme.BrandStyle.Render(m.brand.Title),
		"",
		m.theme.SubtitleStyle.Render(m.brand.Tagline),
	)

	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// GetKeyMap returns landing screen specific keybindings
func (m *Model) GetKeyMap() keymap.KeyMap {
	km := keymap.NewKeyMap(m.source)
	km.Add(keymap.NavigationGroup, m.enter)
	return km
}

// CapturesInput is always false; the landing screen has no text input
func (m *Model) CapturesInput() bool {
	return false
}
