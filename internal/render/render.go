// Package render prints todo lists to a terminal with per-status decoration.
package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/hay-kot/todo/internal/core/styles"
	"github.com/hay-kot/todo/internal/core/todo"
	"github.com/muesli/termenv"
)

// ClearSequence clears the terminal and moves the cursor home.
const ClearSequence = "\x1b[2J\x1b[1;1H"

// Config controls renderer output. The zero value renders plain text with
// closed items hidden and no screen clearing.
type Config struct {
	// Profile selects the color capability. termenv.Ascii disables all
	// escape sequences except screen clearing.
	Profile termenv.Profile
	Palette styles.Palette

	ShowClosed  bool
	ClearScreen bool
}

type statusStyle struct {
	marker string
	marks  lipgloss.Style // applied to the marker
	text   lipgloss.Style // applied to the item text
}

// Renderer writes decorated item lines to an output.
type Renderer struct {
	out    io.Writer
	cfg    Config
	styles map[todo.Status]statusStyle
}

// New creates a Renderer writing to out.
func New(out io.Writer, cfg Config) *Renderer {
	lr := lipgloss.NewRenderer(out)
	lr.SetColorProfile(cfg.Profile)

	// Item text is shown as stored, so tabs are not expanded to spaces.
	fg := func(c lipgloss.Color) lipgloss.Style {
		s := lr.NewStyle().TabWidth(lipgloss.NoTabConversion)
		if c != "" {
			s = s.Foreground(c)
		}
		return s
	}

	p := cfg.Palette
	return &Renderer{
		out: out,
		cfg: cfg,
		styles: map[todo.Status]statusStyle{
			todo.StatusInProgress: {
				marker: "[?]",
				marks:  fg(p.InProgress),
				text:   fg(p.InProgress),
			},
			todo.StatusFinished: {
				marker: "[!]",
				marks:  fg(p.Finished),
				text:   fg(p.Finished).Strikethrough(true),
			},
			todo.StatusClosed: {
				marker: "[#]",
				marks:  fg(p.Closed),
				text:   fg(p.Closed).Strikethrough(true),
			},
			todo.StatusNormal: {
				marker: "[-]",
				marks:  fg(p.Normal),
				text:   fg(p.Normal),
			},
			todo.StatusUnmarked: {
				marker: "[ ]",
				marks:  fg(p.Normal),
				text:   fg(p.Normal),
			},
			todo.StatusDeleted: {
				marker: "[DELETED]",
				marks:  fg(p.Deleted),
				text:   fg(p.Deleted).Strikethrough(true),
			},
		},
	}
}

// Clear emits ClearSequence when screen clearing is enabled.
func (r *Renderer) Clear() error {
	if !r.cfg.ClearScreen {
		return nil
	}
	_, err := io.WriteString(r.out, ClearSequence)
	return err
}

// Render clears the screen and writes one line per item in index order.
// Closed items are skipped entirely unless ShowClosed is set; the remaining
// lines keep their positional index.
func (r *Renderer) Render(items []todo.Item) error {
	if err := r.Clear(); err != nil {
		return err
	}

	for i, item := range items {
		if item.Status == todo.StatusClosed && !r.cfg.ShowClosed {
			continue
		}
		if _, err := fmt.Fprintln(r.out, r.Line(i, item)); err != nil {
			return err
		}
	}

	return nil
}

// Line formats a single item as "<index>) <marker> <text>".
func (r *Renderer) Line(index int, item todo.Item) string {
	st, ok := r.styles[item.Status]
	if !ok {
		st = r.styles[todo.StatusUnmarked]
	}

	return fmt.Sprintf("%d) %s %s", index, st.marks.Render(st.marker), st.text.Render(item.Text))
}
