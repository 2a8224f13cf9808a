// Package styles provides the named color palettes used to decorate todo items.
package styles

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Palette defines the per-status colors. An empty color leaves the
// terminal's default foreground.
type Palette struct {
	InProgress lipgloss.Color
	Finished   lipgloss.Color
	Closed     lipgloss.Color
	Normal     lipgloss.Color
	Deleted    lipgloss.Color
}

// DefaultTheme is the name of the default theme. It only uses the basic ANSI
// colors.
const DefaultTheme = "ansi"

// themes holds the built-in named palettes.
var themes = map[string]Palette{
	"ansi": {
		InProgress: lipgloss.Color("3"), // yellow
		Finished:   lipgloss.Color("2"), // green
		Closed:     lipgloss.Color("8"), // gray
	},
	"tokyo-night": {
		InProgress: lipgloss.Color("#e0af68"),
		Finished:   lipgloss.Color("#9ece6a"),
		Closed:     lipgloss.Color("#565f89"),
		Normal:     lipgloss.Color("#c0caf5"),
		Deleted:    lipgloss.Color("#f7768e"),
	},
	"gruvbox": {
		InProgress: lipgloss.Color("#fabd2f"),
		Finished:   lipgloss.Color("#b8bb26"),
		Closed:     lipgloss.Color("#665c54"),
		Normal:     lipgloss.Color("#ebdbb2"),
		Deleted:    lipgloss.Color("#fb4934"),
	},
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}
