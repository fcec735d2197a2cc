package keybinds

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the user's keybinding overrides. Each section maps an action to
// a comma-separated key list, e.g. `save: "s,ctrl+s"`.
type Config struct {
	Version  string            `yaml:"version"`
	Global   map[string]string `yaml:"global,omitempty"`
	Grid     map[string]string `yaml:"grid,omitempty"`
	CellEdit map[string]string `yaml:"cell_edit,omitempty"`
	Notice   map[string]string `yaml:"notice,omitempty"`
	Help     map[string]string `yaml:"help,omitempty"`
}

// sections pairs each context with its config section
func (c *Config) sections() map[Context]map[string]string {
	return map[Context]map[string]string{
		ContextGlobal:   c.Global,
		ContextGrid:     c.Grid,
		ContextCellEdit: c.CellEdit,
		ContextNotice:   c.Notice,
		ContextHelp:     c.Help,
	}
}

// LoadConfig loads keybinding configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("invalid %s format: %w", filepath.Base(path), err)
	}

	return &config, nil
}

// SaveConfig saves keybinding configuration to a YAML file
func SaveConfig(config *Config, path string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// SplitKeys splits "up, k" into ["up", "k"]. A lone "," is kept as the comma key.
func SplitKeys(keys string) []string {
	if strings.TrimSpace(keys) == "," {
		return []string{","}
	}
	var out []string
	for _, k := range strings.Split(keys, ",") {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}

// ApplyConfig applies user configuration to a registry.
// Each configured action loses its existing keys in that context first.
func ApplyConfig(registry *Registry, config *Config) error {
	for context, section := range config.sections() {
		for actionStr, keys := range section {
			action := Action(actionStr)
			if !KnownActions[action] {
				return fmt.Errorf("unknown action %q in section %q", actionStr, context)
			}
			registry.Unbind(context, action)
			for _, key := range SplitKeys(keys) {
				if err := ValidateKey(key); err != nil {
					return fmt.Errorf("section %q action %q: %w", context, actionStr, err)
				}
				registry.Register(context, key, action)
			}
		}
	}
	return nil
}

// LoadOrDefault loads user config if it exists, otherwise returns default registry
func LoadOrDefault(configPath string) (*Registry, error) {
	registry := NewDefaultRegistry()

	config, err := LoadConfig(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return registry, nil
		}
		return nil, fmt.Errorf("failed to load keybinds: %w", err)
	}

	if err := ApplyConfig(registry, config); err != nil {
		return nil, fmt.Errorf("failed to apply keybinds config: %w", err)
	}

	return registry, nil
}

// ExportDefaults returns the default bindings as a Config, useful as a
// starting point for a user file
func ExportDefaults() *Config {
	r := NewDefaultRegistry()
	config := &Config{Version: "1"}

	export := func(context Context) map[string]string {
		out := make(map[string]string)
		for _, b := range r.ListBindings(context) {
			if existing, ok := out[string(b.Action)]; ok {
				out[string(b.Action)] = existing + "," + b.Key
			} else {
				out[string(b.Action)] = b.Key
			}
		}
		return out
	}

	config.Global = export(ContextGlobal)
	config.Grid = export(ContextGrid)
	config.CellEdit = export(ContextCellEdit)
	config.Notice = export(ContextNotice)
	config.Help = export(ContextHelp)
	return config
}
