package commands

import (
	"io"

	"github.com/hay-kot/todo/internal/core/config"
	"github.com/hay-kot/todo/internal/core/styles"
	"github.com/hay-kot/todo/internal/render"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// colorProfile resolves the configured color mode for out. In auto mode the
// profile comes from the terminal and environment (NO_COLOR, CLICOLOR_FORCE).
func colorProfile(mode config.ColorMode, out io.Writer) termenv.Profile {
	switch mode {
	case config.ColorNever:
		return termenv.Ascii
	case config.ColorAlways:
		return termenv.TrueColor
	default:
		return termenv.NewOutput(out).EnvColorProfile()
	}
}

// isTerminal reports whether w is a file descriptor attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// terminalWidth returns the width of w, or fallback when w is not a terminal.
func terminalWidth(w io.Writer, fallback int) int {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return fallback
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}

// renderConfig builds the renderer configuration for out. Screen clearing is
// only enabled when out is a terminal.
func renderConfig(cfg *config.Config, out io.Writer) render.Config {
	palette, _ := styles.GetPalette(cfg.Display.Theme)

	return render.Config{
		Profile:     colorProfile(cfg.Display.Color, out),
		Palette:     palette,
		ShowClosed:  cfg.Display.ShowClosedOrDefault(),
		ClearScreen: cfg.Display.ClearScreenOrDefault() && isTerminal(out),
	}
}
