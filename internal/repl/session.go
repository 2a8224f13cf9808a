// Package repl implements the interactive todo prompt: it renders the list,
// reads one command per line, and applies it until the user quits.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hay-kot/todo/internal/core/todo"
	"github.com/hay-kot/todo/internal/render"
	"github.com/rs/zerolog"
)

// Action tells the loop what to do after a command.
type Action int

const (
	ActionContinue Action = iota
	ActionQuit
)

// Options configures a Session.
type Options struct {
	In       io.Reader
	Out      io.Writer
	Renderer *render.Renderer
	Prompt   string
	Logger   zerolog.Logger
}

// Session owns the item list for the lifetime of the interactive loop.
// Handlers receive the list for the duration of a single command only.
type Session struct {
	list     *todo.List
	in       *bufio.Reader
	out      io.Writer
	renderer *render.Renderer
	prompt   string
	logger   zerolog.Logger

	// pending holds a read that was still in flight when a previous
	// readLine call was cancelled.
	pending chan readResult
}

type readResult struct {
	line string
	err  error
}

// NewSession creates a session over list.
func NewSession(list *todo.List, opts Options) *Session {
	return &Session{
		list:     list,
		in:       bufio.NewReader(opts.In),
		out:      opts.Out,
		renderer: opts.Renderer,
		prompt:   opts.Prompt,
		logger:   opts.Logger,
	}
}

// List returns the session's list.
func (s *Session) List() *todo.List {
	return s.list
}

// Run loops render, prompt, dispatch until the user quits, input reaches
// end of file, or ctx is cancelled. Cancellation also interrupts a pending
// prompt. Saving is left to the caller.
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			s.logger.Debug().Ctx(ctx).Err(err).Msg("session cancelled")
			return nil
		}

		if err := s.renderer.Render(s.list.Items()); err != nil {
			return fmt.Errorf("render list: %w", err)
		}

		if _, err := fmt.Fprintf(s.out, "\n\n%s", s.prompt); err != nil {
			return fmt.Errorf("write prompt: %w", err)
		}

		line, err := s.readLine(ctx)
		if err != nil {
			switch {
			case errors.Is(err, io.EOF):
				s.logger.Debug().Ctx(ctx).Msg("input closed, quitting")
				return nil
			case ctx.Err() != nil:
				s.logger.Debug().Ctx(ctx).Err(err).Msg("session cancelled at prompt")
				return nil
			}
			return fmt.Errorf("read input: %w", err)
		}

		if err := s.renderer.Clear(); err != nil {
			return fmt.Errorf("clear screen: %w", err)
		}

		action, err := s.Dispatch(ctx, line)
		if err != nil {
			return err
		}
		if action == ActionQuit {
			return nil
		}
	}
}

// Dispatch parses and executes a single command line. Unknown or empty
// commands show the full help. Invalid arguments show the command's help and
// leave the list unchanged.
func (s *Session) Dispatch(ctx context.Context, line string) (Action, error) {
	cmd := ParseCommandInput(line)

	s.logger.Debug().Ctx(ctx).Str("command", cmd.Name).Int("args", len(cmd.Args)).Msg("dispatch")

	var err error
	switch cmd.Name {
	case "quit":
		return ActionQuit, nil
	case "add":
		err = addItem(s.list, cmd.Args)
	case "edit":
		err = editItem(s.list, cmd.Args)
	case "delete":
		err = deleteItem(s.list, cmd.Args)
	case "help":
		topic := ""
		if len(cmd.Args) > 0 {
			topic = strings.TrimSpace(cmd.Args[0])
		}
		return ActionContinue, s.Help(ctx, topic)
	default:
		return ActionContinue, s.Help(ctx, "")
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		s.logger.Debug().Ctx(ctx).
			Str("topic", usageErr.Topic).
			Str("reason", usageErr.Reason).
			Msg("invalid command input")
		return ActionContinue, s.Help(ctx, usageErr.Topic)
	}

	return ActionContinue, err
}

// Help prints the help for topic, or every topic when topic is not a known
// command, then waits for one line of input. End of input or cancellation
// ends the wait.
func (s *Session) Help(ctx context.Context, topic string) error {
	if t, ok := lookupTopic(topic); ok {
		if _, err := fmt.Fprintln(s.out, t.Text); err != nil {
			return err
		}
	} else {
		for _, t := range Topics {
			if _, err := fmt.Fprintln(s.out, t.Text); err != nil {
				return err
			}
		}
	}

	if _, err := s.readLine(ctx); err != nil && !errors.Is(err, io.EOF) && ctx.Err() == nil {
		return fmt.Errorf("read input: %w", err)
	}

	return nil
}

// readLine waits for the next input line or for ctx to be done. A read that
// is interrupted keeps running and is picked up by the next call, so no line
// is lost.
func (s *Session) readLine(ctx context.Context) (string, error) {
	if s.pending == nil {
		ch := make(chan readResult, 1)
		go func() {
			line, err := s.readRawLine()
			ch <- readResult{line: line, err: err}
		}()
		s.pending = ch
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-s.pending:
		s.pending = nil
		return res.line, res.err
	}
}

// readRawLine reads a line without its terminator. A final line without a
// newline is returned with a nil error; io.EOF is only returned when no
// input remains.
func (s *Session) readRawLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
