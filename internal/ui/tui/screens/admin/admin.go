package admin

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/isaacphi/adminshell/internal/config"
	"github.com/isaacphi/adminshell/internal/nav"
	"github.com/isaacphi/adminshell/internal/ui/tui/components/chart"
	"github.com/isaacphi/adminshell/internal/ui/tui/keymap"
	"github.com/isaacphi/adminshell/internal/ui/tui/layout"
	"github.com/isaacphi/adminshell/internal/ui/tui/theme"
)

// Stat is one summary card
type Stat struct {
	Label  string
	Value  string
	Change string
}

var Stats = []Stat{
	{Label: "Total Revenue", Value: "$45,231.89", Change: "+20.1%"},
	{Label: "Active Users", Value: "2,350", Change: "+180.1%"},
	{Label: "Bounce Rate", Value: "12.23%", Change: "-4.5%"},
	{Label: "Active Sessions", Value: "573", Change: "+19%"},
}

// Revenue is the trend shown in the revenue overview, oldest first
var Revenue = []float64{5, 10, 8, 20, 15, 25, 22, 30, 28, 35, 38}

const activityCount = 6

const (
	cardWidth  = 22
	panelWidth = 50
)

// Model represents the admin dashboard
type Model struct {
	theme  *theme.Theme
	source *config.KeyMap
	back   key.Binding
	width  int
	height int
}

// New creates a new admin dashboard screen
func New(thm *theme.Theme, source *config.KeyMap) *Model {
	return &Model{
		theme:  thm,
		source: source,
		back:   keymap.Binding(source, config.KeyActionBack, "back to menu"),
	}
}

// SetSize sets the area available to the screen
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles back navigation; the dashboard is otherwise static
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.back) {
		return nav.Back()
	}
	return nil
}

func (m *Model) statCard(s Stat) string {
	return m.theme.CardStyle.Width(cardWidth).Render(lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.MutedStyle.Render(s.Label),
		m.theme.TitleStyle.Render(s.Value)+"  "+m.theme.BadgeStyle.Render(s.Change),
	))
}

func (m *Model) revenuePanel() string {
	bars := chart.Bars{
		Values:   Revenue,
		Max:      40,
		Height:   8,
		BarWidth: 3,
		Gap:      1,
		Style: func(int) lipgloss.Style {
			return lipgloss.NewStyle().Foreground(m.theme.Primary)
		},
	}
	return m.theme.CardStyle.Width(panelWidth).Render(lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.TitleStyle.Render("Revenue Overview"),
		"",
		bars.View(),
	))
}

func (m *Model) activityPanel() string {
	lines := []string{m.theme.TitleStyle.Render("Recent Activity"), ""}
	for i := 1; i <= activityCount; i++ {
		lines = append(lines,
			lipgloss.NewStyle().Foreground(m.theme.Primary).Render("●")+
				" New user registration "+
				m.theme.BrandStyle.Render(fmt.Sprintf("@user_%d", i)),
			m.theme.MutedStyle.Render("  2 minutes ago"),
		)
	}
	return m.theme.CardStyle.Width(panelWidth).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// View renders the admin dashboard
func (m *Model) View() string {
	width := m.width
	if width == 0 {
		width = 4*(cardWidth+4) + 6
	}

	cards := make([]string, len(Stats))
	for i, s := range Stats {
		cards[i] = m.statCard(s)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		layout.PageHeader(m.theme, "Back to Menu", "Admin Dashboard", "System overview and performance metrics"),
		"",
		layout.Grid(width, 2, cards...),
		"",
		layout.Grid(width, 2, m.revenuePanel(), m.activityPanel()),
	)
}

// GetKeyMap returns admin screen specific keybindings
func (m *Model) GetKeyMap() keymap.KeyMap {
	km := keymap.NewKeyMap(m.source)
	km.Add(keymap.NavigationGroup, m.back)
	return km
}

// CapturesInput is always false; the dashboard has no text input
func (m *Model) CapturesInput() bool {
	return false
}
