package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThemeNames_Sorted(t *testing.T) {
	assert.Equal(t, []string{"ansi", "gruvbox", "tokyo-night"}, ThemeNames())
}

func TestGetPalette(t *testing.T) {
	p, ok := GetPalette(DefaultTheme)
	assert.True(t, ok)
	assert.Equal(t, "3", string(p.InProgress))

	_, ok = GetPalette("solarized")
	assert.False(t, ok)
}
