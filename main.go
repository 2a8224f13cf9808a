package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/todo/internal/commands"
	"github.com/hay-kot/todo/internal/core/logging"
	"github.com/hay-kot/todo/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, init() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	// ldflags aren't set for `go install module@version`, so fall back to
	// the module version and VCS metadata Go records in the binary.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	// Interrupts end the prompt like quit, so the list is still saved.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	var logCloser func()

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "todo",
		Usage:     "Keep a todo list in a plain text file",
		UsageText: "todo [global options] [command [command options]]",
		Description: `todo keeps a list of items in a line-per-item text file and edits it
through a small interactive prompt.

Run 'todo' with no arguments to open the prompt. Type 'help' inside the
prompt for the available commands. Closed items are moved to the archive
file when the prompt exits.

Run 'todo ls' to print the list without opening the prompt.`,
		Version: build(),
		Flags:   flags.GlobalFlags(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger.Hook(logging.ContextHook{})
			logCloser = closer

			cfg, err := flags.LoadConfig(c)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Config = cfg

			log.Debug().
				Str("store", cfg.Store.Path).
				Str("archive", cfg.Store.Archive).
				Str("config", flags.ConfigPath).
				Msg("configuration loaded")

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	replCmd := commands.NewReplCmd(flags)

	app = commands.NewLsCmd(flags).Register(app)
	app = commands.NewConfigCmd(flags).Register(app)

	// The interactive prompt is the default action when no subcommand is provided
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'todo --help' for usage", c.Args().First())
		}
		return replCmd.Run(ctx, c)
	}

	exitCode := 0
	runErr := app.Run(ctx, os.Args)
	stop()
	if runErr != nil {
		fmt.Println()
		fmt.Println(runErr.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
