package config

import (
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// GetKnownKeys returns all valid configuration keys based on the schema
func GetKnownKeys() map[string]bool {
	known := make(map[string]bool)
	addKnownKeysByType("", reflect.TypeOf(ConfigSchema{}), known)
	return known
}

// addKnownKeysByType recursively adds keys by examining the struct type
func addKnownKeysByType(prefix string, t reflect.Type, known map[string]bool) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		// viper lowercases all keys
		key := strings.ToLower(tag)
		if prefix != "" {
			key = prefix + "." + key
		}
		known[key] = true

		switch field.Type.Kind() {
		case reflect.Struct:
			addKnownKeysByType(key, field.Type, known)
		case reflect.Map:
			if field.Type.Elem().Kind() == reflect.Struct {
				addKnownKeysByType(key+".*", field.Type.Elem(), known)
			} else {
				known[key+".*"] = true
			}
		}
	}
}

// matchesWildcard checks if a key matches a wildcard pattern
func matchesWildcard(pattern, key string) bool {
	patternParts := strings.Split(strings.ToLower(pattern), ".")
	keyParts := strings.Split(strings.ToLower(key), ".")

	if len(patternParts) != len(keyParts) {
		return false
	}

	for i := range patternParts {
		if patternParts[i] != "*" && patternParts[i] != keyParts[i] {
			return false
		}
	}
	return true
}

// IsKnownKey checks if a key is known, including wildcard matches
func IsKnownKey(known map[string]bool, key string) bool {
	if known[strings.ToLower(key)] {
		return true
	}

	for pattern := range known {
		if strings.Contains(pattern, "*") && matchesWildcard(pattern, key) {
			return true
		}
	}
	return false
}

// PrintConfig writes the configuration in a YAML-like layout. When prefix
// is set only keys under that dotted path are printed.
func (s *ConfigSchema) PrintConfig(w io.Writer, includeSources bool, prefix string) {
	s.printValue(w, reflect.ValueOf(*s), "", "", includeSources, strings.ToLower(prefix), 0)
}

// WriteYAML encodes the configuration as YAML.
func (s *ConfigSchema) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}
	return enc.Close()
}

func (s *ConfigSchema) printValue(w io.Writer, v reflect.Value, key, path string, includeSources bool, prefix string, indent int) {
	if !onPrefixPath(path, prefix) {
		return
	}
	pad := strings.Repeat("  ", indent)

	switch v.Kind() {
	case reflect.Struct:
		if key != "" {
			fmt.Fprintf(w, "%s%s:\n", pad, key)
			indent++
		}
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			tag := field.Tag.Get("mapstructure")
			if !field.IsExported() || tag == "" {
				continue
			}
			s.printValue(w, v.Field(i), tag, joinPath(path, tag), includeSources, prefix, indent)
		}

	case reflect.Map:
		if v.Len() == 0 {
			return
		}
		fmt.Fprintf(w, "%s%s:\n", pad, key)
		keys := v.MapKeys()
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
		for _, k := range keys {
			s.printValue(w, v.MapIndex(k), k.String(), joinPath(path, k.String()), includeSources, prefix, indent+1)
		}

	default:
		if prefix != "" && !strings.HasPrefix(path, prefix) {
			return
		}
		if v.Kind() == reflect.Slice {
			parts := make([]string, v.Len())
			for i := range parts {
				parts[i] = fmt.Sprintf("%q", v.Index(i).Interface())
			}
			fmt.Fprintf(w, "%s%s: [%s]", pad, key, strings.Join(parts, ", "))
		} else {
			fmt.Fprintf(w, "%s%s: %v", pad, key, v.Interface())
		}
		if includeSources {
			fmt.Fprintf(w, " # (%s)", s.Source(path))
		}
		fmt.Fprintln(w)
	}
}

func joinPath(path, key string) string {
	key = strings.ToLower(key)
	if path == "" {
		return key
	}
	return path + "." + key
}

// onPrefixPath reports whether path is inside prefix or one of its ancestors
func onPrefixPath(path, prefix string) bool {
	if prefix == "" || path == "" {
		return true
	}
	return strings.HasPrefix(path, prefix) || strings.HasPrefix(prefix, path+".")
}
