package nav

import tea "github.com/charmbracelet/bubbletea"

// EnterMsg asks the host to leave the landing screen.
type EnterMsg struct{}

// NavigateMsg asks the host to open Target.
type NavigateMsg struct {
	Target ScreenID
}

// BackMsg asks the host to return to the menu.
type BackMsg struct{}

// Enter returns a command emitting EnterMsg.
func Enter() tea.Cmd {
	return func() tea.Msg {
		return EnterMsg{}
	}
}

// Navigate returns a command emitting NavigateMsg for target.
func Navigate(target ScreenID) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Target: target}
	}
}

// Back returns a command emitting BackMsg.
func Back() tea.Cmd {
	return func() tea.Msg {
		return BackMsg{}
	}
}

// Apply performs the transition requested by msg and reports whether msg
// was a navigation message.
func (c *Controller) Apply(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case EnterMsg:
		c.Enter()
	case NavigateMsg:
		c.Navigate(msg.Target)
	case BackMsg:
		c.Back()
	default:
		return false
	}
	return true
}
