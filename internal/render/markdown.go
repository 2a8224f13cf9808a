package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/hay-kot/todo/internal/core/todo"
	"github.com/muesli/termenv"
)

var mdEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"*", `\*`,
	"_", `\_`,
	"[", `\[`,
	"]", `\]`,
	"#", `\#`,
	"~", `\~`,
	"<", `\<`,
)

// Markdown builds a GitHub-flavored task list from items, each prefixed with
// its index. Finished and closed items are checked, closed items are also
// struck through, and deleted items are omitted. Closed items are omitted
// unless showClosed is set.
func Markdown(items []todo.Item, showClosed bool) string {
	var b strings.Builder

	for i, item := range items {
		text := mdEscaper.Replace(item.Text)

		switch item.Status {
		case todo.StatusDeleted:
			continue
		case todo.StatusClosed:
			if !showClosed {
				continue
			}
			fmt.Fprintf(&b, "- [x] `%d` ~~%s~~\n", i, text)
		case todo.StatusFinished:
			fmt.Fprintf(&b, "- [x] `%d` %s\n", i, text)
		case todo.StatusInProgress:
			fmt.Fprintf(&b, "- [ ] `%d` **%s**\n", i, text)
		default:
			fmt.Fprintf(&b, "- [ ] `%d` %s\n", i, text)
		}
	}

	return b.String()
}

// RenderMarkdown renders markdown source for the terminal. With the Ascii
// profile the "notty" style is used so no escape sequences are emitted.
func RenderMarkdown(src string, width int, profile termenv.Profile) (string, error) {
	style := "dark"
	if profile == termenv.Ascii {
		style = "notty"
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithColorProfile(profile),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}

	out, err := r.Render(src)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}

	return out, nil
}
