package app

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// KVList collects repeatable key=value flag values.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

func (l *KVList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}

// Map splits each entry at its first '='. Later entries win.
func (l KVList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		out[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return out
}

// LoadOverrides reads a flat YAML mapping of board tunables into the string
// form the sim factories accept. A missing file yields an empty map.
func LoadOverrides(path string) (map[string]string, error) {
	out := map[string]string{}
	if path == "" {
		return out, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return out, nil
		}
		return nil, err
	}
	var raw map[string]any
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	for key, value := range raw {
		switch value.(type) {
		case nil:
			continue
		case map[string]any, []any:
			return nil, fmt.Errorf("%s: %q must be a scalar", path, key)
		}
		out[key] = fmt.Sprint(value)
	}
	return out, nil
}

// BoardOverrides merges the override file with -set flags, flags last.
func (c *Config) BoardOverrides() (map[string]string, error) {
	out, err := LoadOverrides(c.ConfigFile)
	if err != nil {
		return nil, err
	}
	for key, value := range c.Sets.Map() {
		out[key] = value
	}
	return out, nil
}
