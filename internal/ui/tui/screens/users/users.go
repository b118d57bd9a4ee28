package users

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/isaacphi/adminshell/internal/config"
	"github.com/isaacphi/adminshell/internal/nav"
	"github.com/isaacphi/adminshell/internal/ui/tui/components/input"
	"github.com/isaacphi/adminshell/internal/ui/tui/keymap"
	"github.com/isaacphi/adminshell/internal/ui/tui/layout"
	"github.com/isaacphi/adminshell/internal/ui/tui/theme"
)

// User is a row of the mock user table
type User struct {
	ID     int
	Name   string
	Email  string
	Role   string
	Active bool
}

// Status returns the label shown in the status column
func (u User) Status() string {
	if u.Active {
		return "Active"
	}
	return "Offline"
}

// Users is the static user list
var Users = []User{
	{ID: 1, Name: "Alex Rivera", Email: "alex@example.com", Role: "Admin", Active: true},
	{ID: 2, Name: "Sarah Chen", Email: "sarah@example.com", Role: "Editor", Active: true},
	{ID: 3, Name: "Mike Johnson", Email: "mike@example.com", Role: "Viewer", Active: false},
	{ID: 4, Name: "Emily Davis", Email: "emily@example.com", Role: "Editor", Active: true},
	{ID: 5, Name: "David Kim", Email: "david@example.com", Role: "Viewer", Active: true},
}

// Filter returns the users whose name or email contains query, ignoring case
func Filter(users []User, query string) []User {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return users
	}

	var matched []User
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Name), query) ||
			strings.Contains(strings.ToLower(u.Email), query) {
			matched = append(matched, u)
		}
	}
	return matched
}

type keys struct {
	Back      key.Binding
	Search    key.Binding
	ExitInput key.Binding
	Up        key.Binding
	Down      key.Binding
}

// Model represents the user management screen
type Model struct {
	theme   *theme.Theme
	source  *config.KeyMap
	keys    keys
	search  *input.Model
	table   table.Model
	visible []User
	width   int
	height  int
}

// New creates a new user management screen
func New(thm *theme.Theme, source *config.KeyMap) *Model {
	columns := []table.Column{
		{Title: "User", Width: 16},
		{Title: "Email", Width: 20},
		{Title: "Role", Width: 8},
		{Title: "Status", Width: 10},
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(thm.Subtle).
		BorderBottom(true).
		Foreground(thm.Muted).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(thm.Primary).
		Bold(true)

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(len(Users)+1),
		table.WithStyles(styles),
	)

	m := &Model{
		theme:  thm,
		source: source,
		keys: keys{
			Back:      keymap.Binding(source, config.KeyActionBack, "back to menu"),
			Search:    keymap.Binding(source, config.KeyActionSearch, "search"),
			ExitInput: keymap.Binding(source, config.KeyActionExitInput, "exit search"),
			Up:        keymap.Binding(source, config.KeyActionUp, "up"),
			Down:      keymap.Binding(source, config.KeyActionDown, "down"),
		},
		search: input.New(thm, "", "Search users...", ""),
		table:  t,
	}
	m.table.KeyMap.LineUp = m.keys.Up
	m.table.KeyMap.LineDown = m.keys.Down
	m.search.SetWidth(40)
	m.applyFilter()
	return m
}

// SetSize sets the area available to the screen
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Visible returns the users currently shown in the table
func (m *Model) Visible() []User {
	return m.visible
}

// CapturesInput reports whether the search box is taking keystrokes
func (m *Model) CapturesInput() bool {
	return m.search.Focused()
}

func (m *Model) applyFilter() {
	m.visible = Filter(Users, m.search.Value())

	rows := make([]table.Row, len(m.visible))
	for i, u := range m.visible {
		status := "○ " + u.Status()
		if u.Active {
			status = "● " + u.Status()
		}
		rows[i] = table.Row{u.Name, u.Email, u.Role, status}
	}
	m.table.SetRows(rows)
	m.table.SetCursor(0)
}

// Update handles search input, table movement and back navigation
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(input.InputSubmitMsg); ok {
		m.search.Blur()
		return nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	if m.search.Focused() {
		if key.Matches(keyMsg, m.keys.ExitInput) {
			m.search.Blur()
			return nil
		}
		before := m.search.Value()
		cmd := m.search.Update(keyMsg)
		if m.search.Value() != before {
			m.applyFilter()
		}
		return cmd
	}

	switch {
	case key.Matches(keyMsg, m.keys.Back):
		return nav.Back()
	case key.Matches(keyMsg, m.keys.Search):
		m.search.Focus()
		return nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(keyMsg)
	return cmd
}

// View renders the user management screen
func (m *Model) View() string {
	header := layout.PageHeader(m.theme, "Back to Menu", "User Management", "Manage system access and permissions")
	addUser := m.theme.FocusedStyle.Render("Add User")

	var body string
	if len(m.visible) == 0 {
		body = m.theme.MutedStyle.Render("No users match your search.")
	} else {
		body = m.table.View()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Bottom, header, "    ", addUser),
		"",
		m.search.View(false),
		"",
		body,
	)
}

// GetKeyMap returns user screen specific keybindings
func (m *Model) GetKeyMap() keymap.KeyMap {
	km := keymap.NewKeyMap(m.source)
	if m.search.Focused() {
		km.Add(keymap.SystemGroup, m.keys.ExitInput)
		return km
	}
	km.Add(keymap.NavigationGroup, m.keys.Back)
	km.Add(keymap.NavigationGroup, m.keys.Up)
	km.Add(keymap.NavigationGroup, m.keys.Down)
	km.Add(keymap.ActionGroup, m.keys.Search)
	return km
}
