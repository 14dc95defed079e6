package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/rouge-editor/rouge/internal/log"
)

// Save writes the configuration to the given path as YAML, replacing
// whatever is there. Creates the parent directory if it doesn't exist.
func Save(c Config, configPath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to save config", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Saved config", "path", configPath)
	return nil
}

// Load reads a YAML config file into a Config, starting from the defaults
// so absent keys keep their built-in values.
func Load(configPath string) (Config, error) {
	c := Defaults()

	data, err := os.ReadFile(configPath)
	if err != nil {
		return c, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parsing config file: %w", err)
	}
	return c, nil
}
