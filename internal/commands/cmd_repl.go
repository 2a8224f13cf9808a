package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/hay-kot/todo/internal/core/logging"
	"github.com/hay-kot/todo/internal/core/todo"
	"github.com/hay-kot/todo/internal/data/stores"
	"github.com/hay-kot/todo/internal/render"
	"github.com/hay-kot/todo/internal/repl"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
)

// ReplCmd runs the interactive prompt. It is the root command's default action.
type ReplCmd struct {
	flags *Flags
}

// NewReplCmd creates a new interactive command.
func NewReplCmd(flags *Flags) *ReplCmd {
	return &ReplCmd{flags: flags}
}

// Run loads the store, runs the prompt loop until quit, and writes the list
// back. Errors before or during the loop return without saving.
func (cmd *ReplCmd) Run(ctx context.Context, c *cli.Command) error {
	cfg := cmd.flags.Config
	ctx = logging.WithStore(logging.WithCommand(ctx, "repl"), cfg.Store.Path)

	store, err := stores.OpenTodoStore(cfg.Store.Path, cfg.Store.Archive, logging.Component("store"))
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error().Ctx(ctx).Err(err).Msg("failed to close store")
		}
	}()

	items, err := store.Load()
	if err != nil {
		return fmt.Errorf("load todo items: %w", err)
	}

	var (
		in  io.Reader = os.Stdin
		out io.Writer = os.Stdout
	)
	if root := c.Root(); root != nil {
		if root.Reader != nil {
			in = root.Reader
		}
		if root.Writer != nil {
			out = root.Writer
		}
	}

	session := repl.NewSession(todo.NewList(items), repl.Options{
		In:       in,
		Out:      out,
		Renderer: render.New(out, renderConfig(cfg, out)),
		Prompt:   cfg.Prompt,
		Logger:   logging.Component("repl"),
	})

	if err := session.Run(ctx); err != nil {
		return err
	}

	res, err := store.Save(session.List().Items())
	if err != nil {
		return fmt.Errorf("save todo items: %w", err)
	}

	log.Info().Ctx(ctx).
		Int("kept", res.Kept).
		Int("archived", res.Archived).
		Int("dropped", res.Dropped).
		Msg("session ended")

	return nil
}
