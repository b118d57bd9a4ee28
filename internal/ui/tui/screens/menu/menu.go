package menu

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/isaacphi/adminshell/internal/config"
	"github.com/isaacphi/adminshell/internal/nav"
	"github.com/isaacphi/adminshell/internal/ui/tui/keymap"
	"github.com/isaacphi/adminshell/internal/ui/tui/layout"
	"github.com/isaacphi/adminshell/internal/ui/tui/theme"
)

// Item is one entry of the main menu
type Item struct {
	Target      nav.ScreenID
	Label       string
	Description string
}

// Items are the menu entries in display order
var Items = []Item{
	{Target: nav.Users, Label: "User Management", Description: "Manage access and profiles"},
	{Target: nav.Admin, Label: "Admin Dashboard", Description: "System overview and controls"},
	{Target: nav.Analytics, Label: "Analytics", Description: "Data insights and reporting"},
	{Target: nav.Settings, Label: "Settings", Description: "App configuration"},
}

const cardWidth = 38

type keys struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Jump   key.Binding
}

// Model represents the main menu
type Model struct {
	theme  *theme.Theme
	source *config.KeyMap
	keys   keys
	cursor int
	width  int
	height int
}

// New creates a new menu model
func New(thm *theme.Theme, source *config.KeyMap) *Model {
	return &Model{
		theme:  thm,
		source: source,
		keys: keys{
			Up:     keymap.Binding(source, config.KeyActionUp, "up"),
			Down:   keymap.Binding(source, config.KeyActionDown, "down"),
			Select: keymap.Binding(source, config.KeyActionSelect, "open"),
			Jump: key.NewBinding(
				key.WithKeys("1", "2", "3", "4"),
				key.WithHelp("1-4", "jump"),
			),
		},
	}
}

// SetSize sets the area available to the screen
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Cursor returns the index of the highlighted item
func (m *Model) Cursor() int {
	return m.cursor
}

// Update moves the highlight and opens the selected entry
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(Items)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Select):
		return nav.Navigate(Items[m.cursor].Target)
	case key.Matches(keyMsg, m.keys.Jump):
		i, err := strconv.Atoi(keyMsg.String())
		if err != nil || i < 1 || i > len(Items) {
			return nil
		}
		m.cursor = i - 1
		return nav.Navigate(Items[m.cursor].Target)
	}
	return nil
}

// View renders the menu as a grid of cards
func (m *Model) View() string {
	cards := make([]string, len(Items))
	for i, item := range Items {
		style := m.theme.CardStyle
		label := m.theme.TitleStyle.Render(item.Label)
		if i == m.cursor {
			style = m.theme.SelectedStyle
			label = m.theme.BrandStyle.Render(item.Label)
		}

		body := lipgloss.JoinVertical(
			lipgloss.Left,
			fmt.Sprintf("%s  %s", m.theme.KeyHintStyle.Render(strconv.Itoa(i+1)), label),
			m.theme.MutedStyle.Render("   "+item.Description),
		)
		cards[i] = style.Width(cardWidth).Render(body)
	}

	gridWidth := m.width
	if gridWidth == 0 || gridWidth > 2*(cardWidth+2)+2 {
		gridWidth = 2*(cardWidth+2) + 2
	}

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		m.theme.TitleStyle.Render("Main Menu"),
		"",
		layout.Grid(gridWidth, 2, cards...),
	)

	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// GetKeyMap returns menu specific keybindings
func (m *Model) GetKeyMap() keymap.KeyMap {
	km := keymap.NewKeyMap(m.source)
	km.Add(keymap.NavigationGroup, m.keys.Up)
	km.Add(keymap.NavigationGroup, m.keys.Down)
	km.Add(keymap.ActionGroup, m.keys.Select)
	km.Add(keymap.ActionGroup, m.keys.Jump)
	return km
}

// CapturesInput is always false; the menu has no text input
func (m *Model) CapturesInput() bool {
	return false
}
