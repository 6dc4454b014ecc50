// Package config provides configuration types, defaults, and
// persistence for glint.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glinthq/glint/internal/log"
	"github.com/glinthq/glint/internal/render"
	"github.com/glinthq/glint/internal/token"
)

// Config holds all configuration options for glint.
type Config struct {
	// Format selects the default output format: "ansi", "html",
	// "page", or "json".
	Format string `mapstructure:"format"`

	// Grammar forces a grammar ID; "auto" detects from filename and
	// content.
	Grammar string `mapstructure:"grammar"`

	Theme ThemeConfig `mapstructure:"theme"`
	Watch WatchConfig `mapstructure:"watch"`
}

// ThemeConfig holds theme customization options.
type ThemeConfig struct {
	// Preset loads a built-in theme as the base.
	// Valid values: "default", "nord", "mono"
	Preset string `mapstructure:"preset"`

	// Colors overrides individual token colors by kind name, e.g.
	//   colors:
	//     keyword: "#FF79C6"
	//     attr-name: "#FFB86C"
	Colors map[string]string `mapstructure:"colors"`
}

// WatchConfig holds watch-mode options.
type WatchConfig struct {
	// DebounceMs is the quiet period after a write before
	// re-rendering, in milliseconds.
	DebounceMs int `mapstructure:"debounce_ms"`
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Format:  "ansi",
		Grammar: "auto",
		Theme: ThemeConfig{
			Preset: "default",
		},
		Watch: WatchConfig{
			DebounceMs: 200,
		},
	}
}

// BuildTheme resolves the configured preset plus per-kind overrides
// into a render.Theme. Unknown kind names are logged and skipped
// rather than rejected.
func (t ThemeConfig) BuildTheme() render.Theme {
	theme := render.PresetTheme(t.Preset)
	for name, color := range t.Colors {
		kind, ok := kindByName(name)
		if !ok {
			log.Warn(log.CatConfig, "ignoring color for unknown token kind", "kind", name)
			continue
		}
		theme[kind] = color
	}
	return theme
}

func kindByName(name string) (token.Kind, bool) {
	for _, k := range token.Kinds() {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Glint Configuration

# Default output format: "ansi" (terminal), "html" (span stream),
# "page" (standalone document), or "json" (raw token dump)
format: ansi

# Force a grammar, or "auto" to detect from filename and content.
# Run 'glint grammars' for the available IDs.
grammar: auto

# Theme configuration
theme:
  # Use a preset (run 'glint themes' to see available presets):
  preset: default
  #
  # Override specific token colors (works with any preset):
  # colors:
  #   keyword: "#FF79C6"
  #   string: "#50FA7B"
  #   attr-name: "#FFB86C"

# Watch mode
watch:
  debounce_ms: 200  # Quiet period after a write before re-rendering
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
