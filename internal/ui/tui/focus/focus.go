package focus

// FocusMode represents the current focus state
type FocusMode int

const (
	NavFocus   FocusMode = iota // Focus is on navigation (hotkeys active)
	InputFocus                  // Focus is on text input
)

// FocusableComponent interface for components that can be focused
type FocusableComponent interface {
	Focus()
	Blur()
	Focused() bool
}

// Manager tracks an ordered ring of focus targets and which of them, if
// any, is capturing text input. Targets without a component (toggles,
// buttons) can be highlighted but never enter input mode.
type Manager struct {
	order      []string
	components map[string]FocusableComponent
	current    int
	mode       FocusMode
}

// New creates a new focus manager
func New() *Manager {
	return &Manager{
		components: make(map[string]FocusableComponent),
		mode:       NavFocus,
	}
}

// Register appends a target to the focus ring. component may be nil.
func (m *Manager) Register(id string, component FocusableComponent) {
	m.order = append(m.order, id)
	if component != nil {
		m.components[id] = component
	}
}

// Next highlights the following target, wrapping around
func (m *Manager) Next() {
	m.move(1)
}

// Prev highlights the preceding target, wrapping around
func (m *Manager) Prev() {
	m.move(-1)
}

func (m *Manager) move(delta int) {
	if len(m.order) == 0 {
		return
	}
	m.BlurAll()
	m.current = (m.current + delta + len(m.order)) % len(m.order)
}

// Reset highlights the first target in nav mode
func (m *Manager) Reset() {
	m.BlurAll()
	m.current = 0
}

// Current returns the ID of the highlighted target
func (m *Manager) Current() string {
	if len(m.order) == 0 {
		return ""
	}
	return m.order[m.current]
}

// Activate focuses the highlighted target's component and switches to
// input mode. It reports false if the target has no component.
func (m *Manager) Activate() bool {
	comp, ok := m.components[m.Current()]
	if !ok {
		return false
	}
	comp.Focus()
	m.mode = InputFocus
	return true
}

// BlurAll blurs all components and switches to nav mode
func (m *Manager) BlurAll() {
	for _, comp := range m.components {
		comp.Blur()
	}
	m.mode = NavFocus
}

// GetMode returns the current focus mode
func (m *Manager) GetMode() FocusMode {
	return m.mode
}
