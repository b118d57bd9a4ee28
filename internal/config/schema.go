package config

// Log controls the slog handler installed by appState.
type Log struct {
	Level string `mapstructure:"level" json:"level" yaml:"level" validate:"omitempty,oneof=DEBUG INFO WARN ERROR" jsonschema:"description=Logging level,enum=DEBUG,enum=INFO,enum=WARN,enum=ERROR,default=INFO"`
	File  string `mapstructure:"file" json:"file,omitempty" yaml:"file,omitempty" jsonschema:"description=Log file path. Logs are discarded while the TUI is running if empty"`
}

// Brand is the text shown on the landing screen.
type Brand struct {
	Title   string `mapstructure:"title" json:"title" yaml:"title" validate:"required" jsonschema:"description=Landing screen title,default=repository"`
	Tagline string `mapstructure:"tagline" json:"tagline" yaml:"tagline" validate:"required" jsonschema:"description=Landing screen tagline,default=startup002"`
}

type UI struct {
	AltScreen bool `mapstructure:"altScreen" json:"altScreen" yaml:"altScreen" jsonschema:"description=Run the TUI in the terminal's alternate screen buffer,default=true"`
}

type ConfigSchema struct {
	Log    Log               `mapstructure:"log" json:"log" yaml:"log"`
	Brand  Brand             `mapstructure:"brand" json:"brand" yaml:"brand"`
	UI     UI                `mapstructure:"ui" json:"ui" yaml:"ui"`
	Theme  map[string]string `mapstructure:"theme" json:"theme,omitempty" yaml:"theme,omitempty" validate:"dive,keys,oneof=primary secondary tertiary text muted subtle success warning error,endkeys,hexcolor" jsonschema:"description=Hex colour overrides keyed by theme role"`
	KeyMap KeyMap            `mapstructure:"keymap" json:"keymap" yaml:"keymap"`

	// Internal fields for printing
	sources map[string][]configSource
	unknown []string
}
