// Package config provides configuration types and defaults for rouge.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rouge-editor/rouge/internal/log"
)

// UIConfig holds user interface configuration options.
type UIConfig struct {
	GutterWidth   int  `mapstructure:"gutter_width" yaml:"gutter_width"`       // line number gutter cells
	ShowStatusBar bool `mapstructure:"show_status_bar" yaml:"show_status_bar"` // status line at the bottom
}

// ThemeConfig holds color overrides. Values are hex colors like "#10B981";
// empty values keep the built-in defaults.
type ThemeConfig struct {
	Highlight string `mapstructure:"highlight" yaml:"highlight"` // mode indicator / cursor accents
	Subtle    string `mapstructure:"subtle" yaml:"subtle"`       // gutter and continuation markers
	Error     string `mapstructure:"error" yaml:"error"`         // notices (e.g. file changed on disk)
}

// WatchConfig controls the on-disk change watcher for the opened file.
type WatchConfig struct {
	Enabled    bool `mapstructure:"enabled" yaml:"enabled"`
	DebounceMS int  `mapstructure:"debounce_ms" yaml:"debounce_ms"`
}

// Config holds all configuration options for rouge.
type Config struct {
	UI      UIConfig    `mapstructure:"ui" yaml:"ui"`
	Theme   ThemeConfig `mapstructure:"theme" yaml:"theme"`
	Watch   WatchConfig `mapstructure:"watch" yaml:"watch"`
	Debug   bool        `mapstructure:"debug" yaml:"debug"`
	LogPath string      `mapstructure:"log_path" yaml:"log_path"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		UI: UIConfig{
			GutterWidth:   3,
			ShowStatusBar: true,
		},
		Theme: ThemeConfig{
			Highlight: "#7571F9",
			Subtle:    "#5C5C5C",
			Error:     "#ED567A",
		},
		Watch: WatchConfig{
			Enabled:    true,
			DebounceMS: 1000,
		},
		Debug:   false,
		LogPath: "rouge.log",
	}
}

// Validate checks option ranges that the editor cannot clamp sensibly.
func (c Config) Validate() error {
	if c.UI.GutterWidth < 0 {
		return fmt.Errorf("ui.gutter_width must not be negative, got %d", c.UI.GutterWidth)
	}
	if c.Watch.DebounceMS < 0 {
		return fmt.Errorf("watch.debounce_ms must not be negative, got %d", c.Watch.DebounceMS)
	}
	return nil
}

// DefaultConfigTemplate returns the commented YAML written on first run.
func DefaultConfigTemplate() string {
	return `# rouge configuration
#
# This file was generated with the default settings. Uncomment and edit
# values to override them.

ui:
  # Width of the line number gutter, in cells.
  gutter_width: 3
  # Show the status line ([MODE] ... (line:col)) at the bottom.
  show_status_bar: true

theme:
  # Hex colors. Leave empty to keep the defaults.
  highlight: "#7571F9"
  subtle: "#5C5C5C"
  error: "#ED567A"

watch:
  # Show a notice when the opened file changes on disk.
  enabled: true
  debounce_ms: 1000

# Structured debug logging (also enabled by --debug or ROUGE_DEBUG=1).
debug: false
log_path: rouge.log
`
}

// WriteDefaultConfig creates a config file at the given path with default
// settings and comments. Creates the parent directory if it doesn't exist.
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
