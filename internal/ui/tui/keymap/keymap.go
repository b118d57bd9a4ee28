package keymap

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/isaacphi/adminshell/internal/config"
)

// AppMode represents the application's current input mode
type AppMode int

const (
	NormalMode AppMode = iota
	InputMode
)

type KeyGroup int

const (
	SystemGroup KeyGroup = iota
	NavigationGroup
	ActionGroup
)

var groupOrder = []KeyGroup{NavigationGroup, ActionGroup, SystemGroup}

// KeyMap represents a set of keybindings organised by group. It satisfies
// the bubbles help.KeyMap interface.
type KeyMap struct {
	Groups map[KeyGroup][]key.Binding
	source *config.KeyMap
}

// NewKeyMap creates a new empty keymap resolving actions against source
func NewKeyMap(source *config.KeyMap) KeyMap {
	return KeyMap{
		Groups: make(map[KeyGroup][]key.Binding),
		source: source,
	}
}

// Binding builds a key binding for a configured action
func Binding(source *config.KeyMap, action, help string) key.Binding {
	keys := source.GetKeys(action)
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(displayKeys(keys), help),
	)
}

func displayKeys(keys []string) string {
	names := make([]string, len(keys))
	for i, k := range keys {
		switch k {
		case " ":
			names[i] = "space"
		case "up":
			names[i] = "↑"
		case "down":
			names[i] = "↓"
		case "left":
			names[i] = "←"
		case "right":
			names[i] = "→"
		default:
			names[i] = k
		}
	}
	return strings.Join(names, "/")
}

// Add adds a key binding to the keymap
func (k *KeyMap) Add(group KeyGroup, binding key.Binding) {
	k.Groups[group] = append(k.Groups[group], binding)
}

// AddAction adds the binding for a configured action to the keymap
func (k *KeyMap) AddAction(group KeyGroup, action, help string) {
	k.Add(group, Binding(k.source, action, help))
}

// Merge combines two keymaps
func (k *KeyMap) Merge(other KeyMap) {
	for group, bindings := range other.Groups {
		for _, binding := range bindings {
			k.Add(group, binding)
		}
	}
}

// AllBindings returns all bindings in display order
func (k KeyMap) AllBindings() []key.Binding {
	var allBindings []key.Binding
	for _, group := range groupOrder {
		allBindings = append(allBindings, k.Groups[group]...)
	}
	return allBindings
}

// ShortHelp returns keybindings for the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	return k.AllBindings()
}

// FullHelp returns one column per non-empty group
func (k KeyMap) FullHelp() [][]key.Binding {
	var result [][]key.Binding
	for _, group := range groupOrder {
		if bindings := k.Groups[group]; len(bindings) > 0 {
			result = append(result, bindings)
		}
	}
	return result
}
