package config

import "encoding/json"

// Key bindings
const (
	KeyActionQuit       = "quit"
	KeyActionToggleHelp = "toggleHelp"
	KeyActionEnter      = "enter"
	KeyActionBack       = "back"
	KeyActionUp         = "up"
	KeyActionDown       = "down"
	KeyActionLeft       = "left"
	KeyActionRight      = "right"
	KeyActionSelect     = "select"
	KeyActionNextField  = "nextField"
	KeyActionPrevField  = "prevField"
	KeyActionInputMode  = "inputMode"
	KeyActionExitInput  = "exitInput"
	KeyActionToggle     = "toggle"
	KeyActionSearch     = "search"
)

type KeyMap struct {
	Quit       []string `mapstructure:"quit" json:"quit" yaml:"quit" validate:"required,min=1,dive,required" jsonschema:"description=Exit the application,default=q"`
	ToggleHelp []string `mapstructure:"toggleHelp" json:"toggleHelp" yaml:"toggleHelp" validate:"required,min=1,dive,required" jsonschema:"description=Toggle help display,default=?"`
	Enter      []string `mapstructure:"enter" json:"enter" yaml:"enter" validate:"required,min=1,dive,required" jsonschema:"description=Leave the landing screen,default=enter"`
	Back       []string `mapstructure:"back" json:"back" yaml:"back" validate:"required,min=1,dive,required" jsonschema:"description=Return to the main menu,default=esc"`
	Up         []string `mapstructure:"up" json:"up" yaml:"up" validate:"required,min=1,dive,required" jsonschema:"description=Move up,default=up"`
	Down       []string `mapstructure:"down" json:"down" yaml:"down" validate:"required,min=1,dive,required" jsonschema:"description=Move down,default=down"`
	Left       []string `mapstructure:"left" json:"left" yaml:"left" validate:"required,min=1,dive,required" jsonschema:"description=Move left,default=left"`
	Right      []string `mapstructure:"right" json:"right" yaml:"right" validate:"required,min=1,dive,required" jsonschema:"description=Move right,default=right"`
	Select     []string `mapstructure:"select" json:"select" yaml:"select" validate:"required,min=1,dive,required" jsonschema:"description=Open the highlighted menu item,default=enter"`
	NextField  []string `mapstructure:"nextField" json:"nextField" yaml:"nextField" validate:"required,min=1,dive,required" jsonschema:"description=Focus the next settings item,default=tab"`
	PrevField  []string `mapstructure:"prevField" json:"prevField" yaml:"prevField" validate:"required,min=1,dive,required" jsonschema:"description=Focus the previous settings item,default=shift+tab"`
	InputMode  []string `mapstructure:"inputMode" json:"inputMode" yaml:"inputMode" validate:"required,min=1,dive,required" jsonschema:"description=Edit the focused field,default=i"`
	ExitInput  []string `mapstructure:"exitInput" json:"exitInput" yaml:"exitInput" validate:"required,min=1,dive,required" jsonschema:"description=Exit input mode,default=esc"`
	Toggle     []string `mapstructure:"toggle" json:"toggle" yaml:"toggle" validate:"required,min=1,dive,required" jsonschema:"description=Toggle the focused switch or checkbox (space by default)"`
	Search     []string `mapstructure:"search" json:"search" yaml:"search" validate:"required,min=1,dive,required" jsonschema:"description=Focus the user search box,default=/"`

	keyCache map[string][]string
}

// GetKeys returns the key bindings for an action
func (k *KeyMap) GetKeys(action string) []string {
	// Initialize cache if needed
	if k.keyCache == nil {
		k.keyCache = make(map[string][]string)
		jsonBytes, err := json.Marshal(k)
		if err != nil {
			return nil
		}
		if err := json.Unmarshal(jsonBytes, &k.keyCache); err != nil {
			return nil
		}
	}

	return k.keyCache[action]
}
