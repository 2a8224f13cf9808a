// Package config handles configuration loading and validation for todo.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hay-kot/todo/internal/core/styles"
	"gopkg.in/yaml.v3"
)

// ColorMode controls whether item decorations are emitted.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // color when stdout is a color-capable terminal
	ColorAlways ColorMode = "always" // always emit ANSI sequences
	ColorNever  ColorMode = "never"  // plain text only
)

// IsValid reports whether m is a supported color mode.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	}
	return false
}

// Config holds the application configuration.
type Config struct {
	Store   StoreConfig   `yaml:"store"`
	Display DisplayConfig `yaml:"display"`
	Prompt  string        `yaml:"prompt"`
}

// StoreConfig locates the primary and archive files.
type StoreConfig struct {
	Path    string `yaml:"path"`
	Archive string `yaml:"archive"`
}

// DisplayConfig controls how the list is rendered.
type DisplayConfig struct {
	Color       ColorMode `yaml:"color"`
	Theme       string    `yaml:"theme"`
	ShowClosed  *bool     `yaml:"show_closed"`
	ClearScreen *bool     `yaml:"clear_screen"`
}

// ShowClosedOrDefault reports whether closed items are listed. Defaults to true.
func (d DisplayConfig) ShowClosedOrDefault() bool {
	return d.ShowClosed == nil || *d.ShowClosed
}

// ClearScreenOrDefault reports whether the screen is cleared around each
// render. Defaults to true.
func (d DisplayConfig) ClearScreenOrDefault() bool {
	return d.ClearScreen == nil || *d.ClearScreen
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	home, _ := os.UserHomeDir()

	return Config{
		Store: StoreConfig{
			Path:    filepath.Join(home, ".todo"),
			Archive: filepath.Join(home, ".todo.old"),
		},
		Display: DisplayConfig{
			Color: ColorAuto,
			Theme: styles.DefaultTheme,
		},
		Prompt: ">: ",
	}
}

// Load reads configuration from the given path. If configPath is empty or
// doesn't exist, the defaults are returned.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults fills zero values and expands ~ in store paths.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Store.Path == "" {
		c.Store.Path = defaults.Store.Path
	}
	if c.Store.Archive == "" {
		c.Store.Archive = defaults.Store.Archive
	}
	if c.Display.Color == "" {
		c.Display.Color = defaults.Display.Color
	}
	if c.Display.Theme == "" {
		c.Display.Theme = defaults.Display.Theme
	}
	if c.Prompt == "" {
		c.Prompt = defaults.Prompt
	}

	c.Store.Path = ExpandHome(c.Store.Path)
	c.Store.Archive = ExpandHome(c.Store.Archive)
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// Marshal encodes the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
