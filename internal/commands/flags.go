package commands

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/hay-kot/todo/internal/core/config"
	"github.com/urfave/cli/v3"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string

	// Overrides applied on top of the config file when set explicitly.
	StorePath   string
	ArchivePath string
	Color       string
	Theme       string
	HideClosed  bool

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config
}

// GlobalFlags returns the root command flags bound to f.
func (f *Flags) GlobalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error, fatal, panic)",
			Sources:     cli.EnvVars("TODO_LOG_LEVEL"),
			Value:       "info",
			Destination: &f.LogLevel,
		},
		&cli.StringFlag{
			Name:        "log-file",
			Usage:       "path to log file, or - to disable logging",
			Sources:     cli.EnvVars("TODO_LOG_FILE"),
			Value:       DefaultLogFile(),
			Destination: &f.LogFile,
		},
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "path to config file",
			Sources:     cli.EnvVars("TODO_CONFIG"),
			Value:       DefaultConfigPath(),
			Destination: &f.ConfigPath,
		},
		&cli.StringFlag{
			Name:        "file",
			Aliases:     []string{"f"},
			Usage:       "path to the todo file (overrides store.path)",
			Sources:     cli.EnvVars("TODO_FILE"),
			Destination: &f.StorePath,
		},
		&cli.StringFlag{
			Name:        "archive",
			Usage:       "path to the archive file (overrides store.archive)",
			Sources:     cli.EnvVars("TODO_ARCHIVE"),
			Destination: &f.ArchivePath,
		},
		&cli.StringFlag{
			Name:        "color",
			Usage:       "color output (auto, always, never)",
			Sources:     cli.EnvVars("TODO_COLOR"),
			Destination: &f.Color,
		},
		&cli.StringFlag{
			Name:        "theme",
			Usage:       "color theme (overrides display.theme)",
			Destination: &f.Theme,
		},
		&cli.BoolFlag{
			Name:        "hide-closed",
			Usage:       "do not list closed items",
			Destination: &f.HideClosed,
		},
	}
}

// LoadConfig reads the config file and applies any explicitly set flag
// overrides, then re-validates the result.
func (f *Flags) LoadConfig(c *cli.Command) (*config.Config, error) {
	cfg, err := config.Load(f.ConfigPath)
	if err != nil {
		return nil, err
	}

	if c.IsSet("file") {
		cfg.Store.Path = config.ExpandHome(f.StorePath)
	}
	if c.IsSet("archive") {
		cfg.Store.Archive = config.ExpandHome(f.ArchivePath)
	}
	if c.IsSet("color") {
		cfg.Display.Color = config.ColorMode(f.Color)
	}
	if c.IsSet("theme") {
		cfg.Display.Theme = f.Theme
	}
	if c.IsSet("hide-closed") {
		show := !f.HideClosed
		cfg.Display.ShowClosed = &show
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "todo", "config.yaml")
}

// DefaultLogFile returns the default log file path using the system's state directory.
// On macOS: ~/Library/Logs/todo/todo.log
// On Linux: $XDG_STATE_HOME/todo/todo.log (defaults to ~/.local/state/todo/todo.log)
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "todo", "todo.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "todo", "todo.log")
	}

	return filepath.Join(home, ".local", "state", "todo", "todo.log")
}
