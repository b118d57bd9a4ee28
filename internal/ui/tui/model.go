package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/isaacphi/adminshell/internal/config"
	"github.com/isaacphi/adminshell/internal/nav"
	"github.com/isaacphi/adminshell/internal/ui/tui/components/help"
	"github.com/isaacphi/adminshell/internal/ui/tui/keymap"
	"github.com/isaacphi/adminshell/internal/ui/tui/layout"
	"github.com/isaacphi/adminshell/internal/ui/tui/screens"
	"github.com/isaacphi/adminshell/internal/ui/tui/theme"
)

// Model is the root Bubble Tea model. It owns the navigation controller
// and turns navigation messages from screens into transitions.
type Model struct {
	nav     *nav.Controller
	screens *screens.Renderer
	source  *config.KeyMap
	keys    globalKeys
	help    help.Model
	theme   *theme.Theme
	logger  *slog.Logger
	width   int
	height  int
}

// New creates the root model positioned on the landing screen
func New(cfg *config.ConfigSchema, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}
	thm := theme.New(cfg.Theme)
	source := &cfg.KeyMap

	m := Model{
		nav:     nav.NewController(logger),
		screens: screens.NewRenderer(thm, cfg),
		source:  source,
		keys:    newGlobalKeys(source),
		theme:   thm,
		logger:  logger,
	}
	m.help = help.New(m.GetKeyMap(), thm)
	return m
}

// Current returns the active screen
func (m Model) Current() nav.ScreenID {
	return m.nav.Current()
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles all the application updates
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.SetWidth(msg.Width)
		m.screens.SetSize(msg.Width, max(msg.Height-layout.FooterHeight, 0))
		return m, nil

	case nav.EnterMsg, nav.NavigateMsg, nav.BackMsg:
		m.nav.Apply(msg)
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.mode() == keymap.NormalMode {
			switch {
			case key.Matches(msg, m.keys.Quit):
				m.logger.Debug("quit requested", "screen", m.nav.Current().String())
				return m, tea.Quit
			case key.Matches(msg, m.keys.Help):
				m.help.ShowAll = !m.help.ShowAll
				return m, nil
			}
		}
	}

	return m, m.screens.Update(m.nav.Current(), msg)
}

// View renders the active screen above the help footer
func (m Model) View() string {
	focusHint := ""
	if m.mode() == keymap.InputMode {
		focusHint = "editing"
	}

	m.help.SetKeybindings(m.GetKeyMap())
	result := layout.LayoutScreen(m.width, m.height, m.help, m.theme, focusHint)
	return layout.Compose(m.screens.Render(m.nav.Current()), result)
}
