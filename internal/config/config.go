package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

/*
Config System Design:
Configuration is hierarchical with the following precedence
(highest to lowest priority):

1. Runtime overrides (CLI flags)
2. Environment variables (ADMINSHELL_*)
3. Local project config (.adminshell/*.adminshell.{yaml,json})
4. Global user config ($XDG_CONFIG_HOME/adminshell/*.adminshell.{yaml,json})
5. Default values (embedded defaults.adminshell.yaml)

Multiple files in one directory are merged alphabetically. Lists combine
without duplicates, maps deep-merge and scalars override. The origin of
every value is tracked so `adminshell config -s` can show it.

Example:
~/.config/adminshell/keys.adminshell.yaml:  { keymap: { back: ["x"] } }
./.adminshell/keys.adminshell.yaml:         { keymap: { back: ["z"] } }
The result will be: { keymap: { back: ["esc", "backspace", "b", "x", "z"] } }
*/

//go:embed defaults.adminshell.yaml
var defaultsYAML []byte

const (
	appName        = "adminshell"
	defaultsSource = "default"
)

// envVarConfig defines an environment variable mapping
type envVarConfig struct {
	key    string // Key in the config
	envVar string // Environment variable name
}

// Environment variables to load
var envVars = []envVarConfig{
	{key: "log.level", envVar: "ADMINSHELL_LOG_LEVEL"},
	{key: "log.file", envVar: "ADMINSHELL_LOG_FILE"},
	{key: "brand.title", envVar: "ADMINSHELL_BRAND_TITLE"},
	{key: "brand.tagline", envVar: "ADMINSHELL_BRAND_TAGLINE"},
	{key: "ui.altScreen", envVar: "ADMINSHELL_UI_ALTSCREEN"},
}

type configSource struct {
	value  interface{}
	source string
}

type loader struct {
	v       *viper.Viper
	sources map[string][]configSource
	unknown []string
}

// New loads the configuration from the standard locations and applies
// any runtime overrides
func New(overrides *RuntimeOverrides) (*ConfigSchema, error) {
	loadEnv()

	dirs, err := configDirs()
	if err != nil {
		return nil, err
	}
	return Load(dirs, overrides)
}

// Load builds the configuration from the embedded defaults followed by
// every config file found in dirs, in order.
func Load(dirs []string, overrides *RuntimeOverrides) (*ConfigSchema, error) {
	l := &loader{
		v:       viper.New(),
		sources: make(map[string][]configSource),
	}

	if err := l.loadDefaults(); err != nil {
		return nil, errors.Wrap(err, "error loading defaults")
	}

	for _, dir := range dirs {
		if err := l.loadDir(dir); err != nil {
			return nil, err
		}
	}

	l.loadEnvVars()

	if err := l.applyOverrides(overrides); err != nil {
		return nil, err
	}

	var cfg ConfigSchema
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "error unmarshaling config")
	}
	cfg.sources = l.sources
	cfg.unknown = l.unknown

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func configDirs() ([]string, error) {
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(err, "could not resolve home directory")
		}
		xdgConfig = filepath.Join(home, ".config")
	}

	return []string{
		filepath.Join(xdgConfig, appName),
		"." + appName,
	}, nil
}

// findConfigFiles returns all *.adminshell.{yaml,json} files in a directory
func findConfigFiles(dir string) ([]string, error) {
	var files []string
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, "."+appName+".yaml") ||
			strings.HasSuffix(name, "."+appName+".json") {
			files = append(files, filepath.Join(dir, name))
		}
	}
	sort.Strings(files)
	return files, nil
}

func (l *loader) loadDefaults() error {
	l.v.SetConfigType("yaml")
	if err := l.v.ReadConfig(bytes.NewReader(defaultsYAML)); err != nil {
		return errors.Wrap(err, "could not read embedded defaults")
	}
	l.trackSources(l.v.AllSettings(), "", defaultsSource)
	return nil
}

func (l *loader) loadDir(dir string) error {
	files, err := findConfigFiles(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "error listing config directory %s", dir)
	}

	known := GetKnownKeys()
	for _, f := range files {
		fv := viper.New()
		fv.SetConfigFile(f)
		if err := fv.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "error reading config file %s", f)
		}

		for _, key := range fv.AllKeys() {
			if !IsKnownKey(known, key) {
				l.unknown = append(l.unknown, fmt.Sprintf("%s (%s)", key, f))
			}
		}

		settings := fv.AllSettings()
		l.trackSources(settings, "", f)

		if err := l.mergeConfig(settings); err != nil {
			return errors.Wrapf(err, "error merging config from %s", f)
		}
	}
	return nil
}

func (l *loader) loadEnvVars() {
	for _, env := range envVars {
		val, ok := os.LookupEnv(env.envVar)
		if !ok || val == "" {
			continue
		}
		l.v.Set(env.key, val)
		l.addSource(env.key, val, fmt.Sprintf("%s environment variable", env.envVar))
	}
}

func (l *loader) applyOverrides(overrides *RuntimeOverrides) error {
	if overrides == nil {
		return nil
	}
	if overrides.LogLevel != nil {
		level := strings.ToUpper(*overrides.LogLevel)
		l.v.Set("log.level", level)
		l.addSource("log.level", level, "--log-level flag")
	}
	if overrides.LogFile != nil {
		l.v.Set("log.file", *overrides.LogFile)
		l.addSource("log.file", *overrides.LogFile, "--log-file flag")
	}
	return nil
}

func (l *loader) mergeConfig(settings map[string]interface{}) error {
	for key, value := range settings {
		existing := l.v.Get(key)
		if existing == nil {
			// Key doesn't exist, just set it
			l.v.Set(key, value)
			continue
		}

		switch existingVal := existing.(type) {
		case []interface{}:
			newSlice, ok := value.([]interface{})
			if !ok {
				return fmt.Errorf("type mismatch for key %s: expected list, got %T", key, value)
			}
			l.v.Set(key, mergeSlices(existingVal, newSlice))

		case map[string]interface{}:
			newMap, ok := value.(map[string]interface{})
			if !ok {
				return fmt.Errorf("type mismatch for key %s: expected map, got %T", key, value)
			}
			l.v.Set(key, mergeMapRecursive(existingVal, newMap))

		default:
			l.v.Set(key, value)
		}
	}
	return nil
}

// mergeSlices appends b to a, dropping values already present
func mergeSlices(a, b []interface{}) []interface{} {
	seen := make(map[interface{}]bool)
	combined := make([]interface{}, 0, len(a)+len(b))
	for _, list := range [][]interface{}{a, b} {
		for _, v := range list {
			if !seen[v] {
				seen[v] = true
				combined = append(combined, v)
			}
		}
	}
	return combined
}

func mergeMapRecursive(existing, incoming map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{}, len(existing))
	for k, v := range existing {
		result[k] = v
	}

	for k, v := range incoming {
		if existing[k] == nil {
			result[k] = v
			continue
		}

		switch existingVal := existing[k].(type) {
		case map[string]interface{}:
			if newVal, ok := v.(map[string]interface{}); ok {
				result[k] = mergeMapRecursive(existingVal, newVal)
			} else {
				result[k] = v
			}
		case []interface{}:
			if newVal, ok := v.([]interface{}); ok {
				result[k] = mergeSlices(existingVal, newVal)
			} else {
				result[k] = v
			}
		default:
			result[k] = v
		}
	}

	return result
}

// trackSources records the file that set every leaf key in settings
func (l *loader) trackSources(settings map[string]interface{}, prefix, source string) {
	for key, value := range settings {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		if nested, ok := value.(map[string]interface{}); ok && len(nested) > 0 {
			l.trackSources(nested, full, source)
			continue
		}
		l.addSource(full, value, source)
	}
}

func (l *loader) addSource(key string, value interface{}, source string) {
	key = strings.ToLower(key)
	l.sources[key] = append(l.sources[key], configSource{value: value, source: source})
}

// Validate validates the configuration against the schema tags
func (s *ConfigSchema) Validate() error {
	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		return errors.Wrap(err, "config validation error")
	}
	return nil
}

// UnknownKeys lists keys found in config files that the schema does not
// define, each annotated with the file it came from.
func (s *ConfigSchema) UnknownKeys() []string {
	return s.unknown
}

// Source returns where the final value of key came from.
func (s *ConfigSchema) Source(key string) string {
	list := s.sources[strings.ToLower(key)]
	if len(list) == 0 {
		return defaultsSource
	}
	return list[len(list)-1].source
}
