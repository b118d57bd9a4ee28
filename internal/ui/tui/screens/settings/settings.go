package settings

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/isaacphi/adminshell/internal/config"
	"github.com/isaacphi/adminshell/internal/nav"
	"github.com/isaacphi/adminshell/internal/ui/tui/components/input"
	"github.com/isaacphi/adminshell/internal/ui/tui/focus"
	"github.com/isaacphi/adminshell/internal/ui/tui/keymap"
	"github.com/isaacphi/adminshell/internal/ui/tui/layout"
	"github.com/isaacphi/adminshell/internal/ui/tui/theme"
)

// Focus targets
const (
	FirstName      = "firstName"
	LastName       = "lastName"
	Email          = "email"
	TwoFactor      = "twoFactor"
	ChangePassword = "changePassword"
	EmailAlerts    = "emailAlerts"
	PushAlerts     = "pushNotifications"
	WeeklyReports  = "weeklyReports"
	Cancel         = "cancel"
	Save           = "save"
)

var notificationLabels = map[string]string{
	EmailAlerts:   "Email Alerts",
	PushAlerts:    "Push Notifications",
	WeeklyReports: "Weekly Reports",
}

var defaultSwitches = map[string]bool{
	TwoFactor:     true,
	EmailAlerts:   true,
	PushAlerts:    true,
	WeeklyReports: true,
}

const sectionWidth = 64

type keys struct {
	Back      key.Binding
	NextField key.Binding
	PrevField key.Binding
	InputMode key.Binding
	ExitInput key.Binding
	Toggle    key.Binding
}

// Model represents the settings screen. Values live only in memory and
// are never submitted.
type Model struct {
	theme    *theme.Theme
	source   *config.KeyMap
	keys     keys
	focus    *focus.Manager
	inputs   map[string]*input.Model
	switches map[string]bool
	width    int
	height   int
}

// New creates a new settings screen
func New(thm *theme.Theme, source *config.KeyMap) *Model {
	m := &Model{
		theme:  thm,
		source: source,
		keys: keys{
			Back:      keymap.Binding(source, config.KeyActionBack, "back to menu"),
			NextField: keymap.Binding(source, config.KeyActionNextField, "next"),
			PrevField: keymap.Binding(source, config.KeyActionPrevField, "previous"),
			InputMode: keymap.Binding(source, config.KeyActionInputMode, "edit / activate"),
			ExitInput: keymap.Binding(source, config.KeyActionExitInput, "done editing"),
			Toggle:    keymap.Binding(source, config.KeyActionToggle, "toggle"),
		},
		focus: focus.New(),
		inputs: map[string]*input.Model{
			FirstName: input.New(thm, "First Name", "", "Admin"),
			LastName:  input.New(thm, "Last Name", "", "User"),
			Email:     input.New(thm, "Email Address", "", "admin@startup002.com"),
		},
		switches: make(map[string]bool),
	}

	m.inputs[FirstName].SetWidth(sectionWidth/2 - 4)
	m.inputs[LastName].SetWidth(sectionWidth/2 - 4)
	m.inputs[Email].SetWidth(sectionWidth - 6)

	for _, id := range []string{FirstName, LastName, Email} {
		m.focus.Register(id, m.inputs[id])
	}
	for _, id := range []string{TwoFactor, ChangePassword, EmailAlerts, PushAlerts, WeeklyReports, Cancel, Save} {
		m.focus.Register(id, nil)
	}

	m.resetForm()
	return m
}

// SetSize sets the area available to the screen
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Focused returns the highlighted item
func (m *Model) Focused() string {
	return m.focus.Current()
}

// Value returns the current value of a text field
func (m *Model) Value(id string) string {
	if in, ok := m.inputs[id]; ok {
		return in.Value()
	}
	return ""
}

// Enabled returns the state of a switch or checkbox
func (m *Model) Enabled(id string) bool {
	return m.switches[id]
}

// CapturesInput reports whether a text field is being edited
func (m *Model) CapturesInput() bool {
	return m.focus.GetMode() == focus.InputFocus
}

func (m *Model) resetForm() {
	for _, in := range m.inputs {
		in.Reset()
	}
	for id, on := range defaultSwitches {
		m.switches[id] = on
	}
}

// Update handles updates to the settings screen
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(input.InputSubmitMsg); ok {
		m.focus.BlurAll()
		return nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	if m.CapturesInput() {
		if key.Matches(keyMsg, m.keys.ExitInput) {
			m.focus.BlurAll()
			return nil
		}
		return m.inputs[m.focus.Current()].Update(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, m.keys.Back):
		m.focus.Reset()
		return nav.Back()
	case key.Matches(keyMsg, m.keys.NextField):
		m.focus.Next()
	case key.Matches(keyMsg, m.keys.PrevField):
		m.focus.Prev()
	case key.Matches(keyMsg, m.keys.Toggle):
		m.toggle(m.focus.Current())
	case key.Matches(keyMsg, m.keys.InputMode):
		m.activate(m.focus.Current())
	}
	return nil
}

func (m *Model) toggle(id string) {
	if _, ok := defaultSwitches[id]; ok {
		m.switches[id] = !m.switches[id]
	}
}

func (m *Model) activate(id string) {
	switch id {
	case Cancel:
		m.resetForm()
	case Save, ChangePassword:
		// Nothing is submitted
	default:
		if !m.focus.Activate() {
			m.toggle(id)
		}
	}
}

func (m *Model) section(title string, body ...string) string {
	parts := append([]string{m.theme.BrandStyle.Render(title), ""}, body...)
	return m.theme.CardStyle.Width(sectionWidth).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m *Model) marker(id string) string {
	if m.focus.Current() == id {
		return m.theme.BrandStyle.Render("›")
	}
	return " "
}

func (m *Model) checkbox(id, label string) string {
	box := "[ ]"
	if m.switches[id] {
		box = m.theme.BadgeStyle.Render("[x]")
	}
	return m.marker(id) + " " + box + " " + label
}

func (m *Model) button(id, label string) string {
	style := m.theme.InputStyle
	if m.focus.Current() == id {
		style = m.theme.FocusedStyle
	}
	return style.Render(label)
}

// View renders the settings screen
func (m *Model) View() string {
	current := m.focus.Current()

	profile := m.section("Profile Settings",
		lipgloss.JoinHorizontal(lipgloss.Top,
			m.inputs[FirstName].View(current == FirstName),
			"  ",
			m.inputs[LastName].View(current == LastName),
		),
		m.inputs[Email].View(current == Email),
	)

	twoFactor := "off"
	if m.switches[TwoFactor] {
		twoFactor = m.theme.BadgeStyle.Render("on")
	}
	security := m.section("Security & Privacy",
		m.marker(TwoFactor)+" Two-Factor Authentication  "+twoFactor,
		m.theme.MutedStyle.Render("  Add an extra layer of security"),
		"",
		m.marker(ChangePassword)+" "+m.theme.BrandStyle.Render("Change Password"),
	)

	notifications := m.section("Notifications",
		m.checkbox(EmailAlerts, notificationLabels[EmailAlerts]),
		m.checkbox(PushAlerts, notificationLabels[PushAlerts]),
		m.checkbox(WeeklyReports, notificationLabels[WeeklyReports]),
	)

	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		m.button(Cancel, "Cancel"),
		"  ",
		m.button(Save, "Save Changes"),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		layout.PageHeader(m.theme, "Back to Menu", "Settings", "Configure your application preferences"),
		"",
		profile,
		security,
		notifications,
		lipgloss.PlaceHorizontal(sectionWidth, lipgloss.Right, buttons),
	)
}

// GetKeyMap returns settings screen specific keybindings
func (m *Model) GetKeyMap() keymap.KeyMap {
	km := keymap.NewKeyMap(m.source)
	if m.CapturesInput() {
		km.Add(keymap.SystemGroup, m.keys.ExitInput)
		return km
	}
	km.Add(keymap.NavigationGroup, m.keys.Back)
	km.Add(keymap.NavigationGroup, m.keys.NextField)
	km.Add(keymap.NavigationGroup, m.keys.PrevField)
	km.Add(keymap.ActionGroup, m.keys.InputMode)
	km.Add(keymap.ActionGroup, m.keys.Toggle)
	return km
}
