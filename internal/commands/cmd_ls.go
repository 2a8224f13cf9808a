package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/hay-kot/todo/internal/core/logging"
	"github.com/hay-kot/todo/internal/core/todo"
	"github.com/hay-kot/todo/internal/data/stores"
	"github.com/hay-kot/todo/internal/render"
	"github.com/hay-kot/todo/pkg/iojson"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
)

type LsCmd struct {
	flags *Flags

	// flags
	format   string
	archived bool
}

// NewLsCmd creates a new ls command
func NewLsCmd(flags *Flags) *LsCmd {
	return &LsCmd{flags: flags}
}

// Register adds the ls command to the application
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Usage:     "Print the todo list and exit",
		UsageText: "todo ls [--format text|json|markdown] [--archived]",
		Description: `Prints the stored items without opening the interactive prompt.
The files are only read; nothing is saved.

Formats:
  text      one "<index>) <marker> <text>" line per item
  json      one JSON object per line with index, status, and text
  markdown  a task list rendered for the terminal

Use --archived to list the archive file instead of the todo file.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (text, json, markdown)",
				Value:       "text",
				Destination: &cmd.format,
			},
			&cli.BoolFlag{
				Name:        "archived",
				Usage:       "list the archive file",
				Destination: &cmd.archived,
			},
		},
		Action: cmd.run,
	})

	return app
}

// lsItem is the JSON output format for todo ls --format json.
type lsItem struct {
	Index  int         `json:"index"`
	Status todo.Status `json:"status"`
	Text   string      `json:"text"`
}

func (cmd *LsCmd) run(ctx context.Context, c *cli.Command) error {
	cfg := cmd.flags.Config

	path := cfg.Store.Path
	if cmd.archived {
		path = cfg.Store.Archive
	}

	ctx = logging.WithStore(logging.WithCommand(ctx, "ls"), path)

	items, err := stores.ReadItemsFile(path)
	if err != nil {
		log.Error().Ctx(ctx).Err(err).Msg("failed to read todo file")
		if cmd.format == "json" {
			_ = iojson.WriteError(os.Stderr, "read todo file", map[string]any{
				"path":  path,
				"error": err.Error(),
			})
		}
		return fmt.Errorf("read %s: %w", path, err)
	}

	log.Debug().Ctx(ctx).Int("items", len(items)).Str("format", cmd.format).Msg("listing items")

	out := c.Root().Writer
	showClosed := cfg.Display.ShowClosedOrDefault() || cmd.archived

	switch cmd.format {
	case "json":
		for i, item := range items {
			if err := iojson.WriteLine(out, lsItem{Index: i, Status: item.Status, Text: item.Text}); err != nil {
				return fmt.Errorf("encode item: %w", err)
			}
		}
		return nil

	case "markdown":
		profile := colorProfile(cfg.Display.Color, out)
		rendered, err := render.RenderMarkdown(render.Markdown(items, showClosed), terminalWidth(out, 80), profile)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(out, rendered)
		return err

	case "text":
		rcfg := renderConfig(cfg, out)
		rcfg.ClearScreen = false
		rcfg.ShowClosed = showClosed
		return render.New(out, rcfg).Render(items)

	default:
		return fmt.Errorf("unknown format %q (must be text, json, or markdown)", cmd.format)
	}
}
