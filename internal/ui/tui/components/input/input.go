package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/isaacphi/adminshell/internal/ui/tui/theme"
)

// InputSubmitMsg is emitted when enter is pressed in a focused input
type InputSubmitMsg struct {
	Label string
	Value string
}

// Model represents a labelled text input
type Model struct {
	Label     string
	textInput textinput.Model
	theme     *theme.Theme
	initial   string
	width     int
}

// New creates a new input prefilled with value
func New(thm *theme.Theme, label, placeholder, value string) *Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 120
	ti.Prompt = ""
	ti.SetValue(value)

	m := &Model{
		Label:     label,
		textInput: ti,
		theme:     thm,
		initial:   value,
	}
	m.SetWidth(30)
	return m
}

// SetWidth sets the outer width of the input, border included
func (m *Model) SetWidth(width int) {
	m.width = width
	m.textInput.Width = max(width-4, 1) // Account for padding and borders
}

// Focus focuses the input
func (m *Model) Focus() {
	m.textInput.Focus()
}

// Blur blurs the input
func (m *Model) Blur() {
	m.textInput.Blur()
}

// Focused reports whether the input is capturing keys
func (m *Model) Focused() bool {
	return m.textInput.Focused()
}

// Value returns the current input value
func (m *Model) Value() string {
	return m.textInput.Value()
}

// SetValue sets the input value
func (m *Model) SetValue(value string) {
	m.textInput.SetValue(value)
}

// Reset restores the value the input was created with
func (m *Model) Reset() {
	m.textInput.SetValue(m.initial)
}

// Update handles input updates
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if !m.textInput.Focused() {
		return nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEnter {
		label, value := m.Label, m.textInput.Value()
		return func() tea.Msg {
			return InputSubmitMsg{Label: label, Value: value}
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return cmd
}

// View renders the label above the bordered input. highlighted draws the
// border in the primary color even when the input is not focused.
func (m *Model) View(highlighted bool) string {
	style := m.theme.InputStyle
	if highlighted || m.Focused() {
		style = m.theme.FocusedStyle
	}
	box := style.Width(m.width - 2).Render(m.textInput.View())

	if m.Label == "" {
		return box
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.theme.MutedStyle.Render(m.Label), box)
}
