package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hay-kot/criterio"
	"github.com/hay-kot/todo/internal/core/styles"
)

// Validate checks that the configuration is valid. Field errors are
// aggregated into a criterio.FieldErrors.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("store.path", c.Store.Path, notEmpty),
		criterio.Run("store.archive", c.Store.Archive, notEmpty),
		c.validateDistinctPaths(),
		criterio.Run("display.color", c.Display.Color, validColorMode),
		criterio.Run("display.theme", c.Display.Theme, themeExists),
	)
}

// ValidateDeep runs Validate and additionally checks that the store paths
// are usable on this machine.
func (c *Config) ValidateDeep() error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		criterio.Run("store.path", c.Store.Path, isFileOrNotExist),
		criterio.Run("store.archive", c.Store.Archive, isFileOrNotExist),
	)
}

func (c *Config) validateDistinctPaths() error {
	if c.Store.Path == "" || c.Store.Archive == "" {
		return nil
	}
	if filepath.Clean(c.Store.Path) == filepath.Clean(c.Store.Archive) {
		return criterio.NewFieldErrors("store.archive", fmt.Errorf("must differ from store.path"))
	}
	return nil
}

func notEmpty(s string) error {
	if s == "" {
		return fmt.Errorf("cannot be empty")
	}
	return nil
}

func validColorMode(m ColorMode) error {
	if !m.IsValid() {
		return fmt.Errorf("invalid color mode %q (must be auto, always, or never)", m)
	}
	return nil
}

func themeExists(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q (available: %v)", name, styles.ThemeNames())
	}
	return nil
}

// isFileOrNotExist validates that a path is a regular file or doesn't exist.
func isFileOrNotExist(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil // will be created
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, not a file", path)
	}
	return nil
}
