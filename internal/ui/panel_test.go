package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPanelTitled(t *testing.T) {
	SetTheme("mono")
	out := renderPanel("Rankings", []string{"a", "bb"})
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "+- Rankings "))

	// every row is the same visible width
	w := len([]rune(lines[0]))
	for _, ln := range lines {
		assert.Equal(t, w, len([]rune(stripANSI(ln))))
	}
}

func TestRenderPanelUntitled(t *testing.T) {
	SetTheme("mono")
	out := renderPanel("", []string{"one line"})
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "+----------+", lines[0])
	assert.Equal(t, "| one line |", lines[1])
}

func TestProgressBarUsesThemeGlyphs(t *testing.T) {
	SetTheme("mono")
	assert.Equal(t, "#####-----  50%", ProgressBar(1, 2, 10))

	SetTheme("classic")
	assert.Equal(t, "██████████ 100%", ProgressBar(3, 3, 10))
	SetTheme("mono")
}

func TestSetThemeResetsColor(t *testing.T) {
	SetColorForcing(true, false)
	defer func() {
		SetColorForcing(false, false)
		SetTheme("mono")
	}()

	SetTheme("mono")
	assert.Equal(t, "x", C(bold, "x"), "mono disables color")

	// switching back to a colored theme must not stay colorless
	SetTheme("classic")
	assert.Equal(t, bold+"x"+reset, C(bold, "x"))
}
