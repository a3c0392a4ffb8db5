package ui

import (
	"fmt"
	"regexp"
	"strings"
)

var ansiRegexp = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string { return ansiRegexp.ReplaceAllString(s, "") }

// ProgressBar renders the season progress bar with the current theme's
// bar glyphs.
func ProgressBar(done, total, width int) string {
	t := Current()
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(t.BarFill, filled) + strings.Repeat(t.BarEmpty, width-filled)
	pct := int(float64(done) / float64(total) * 100)
	return fmt.Sprintf("%s %3d%%", bar, pct)
}

// Panel draws a framed box using the current theme.
func Panel(lines []string) { fmt.Println(renderPanel("", lines)) }

// TitledPanel draws the box with a title set into the top border.
func TitledPanel(title string, lines []string) { fmt.Println(renderPanel(title, lines)) }

func renderPanel(title string, lines []string) string {
	t := Current()
	// compute visible width
	maxw := 0
	for _, ln := range lines {
		if w := len([]rune(stripANSI(ln))); w > maxw {
			maxw = w
		}
	}
	if tw := len([]rune(title)) + 1; title != "" && tw > maxw {
		maxw = tw
	}
	pad := func(s string) string {
		vis := len([]rune(stripANSI(s)))
		if vis < maxw {
			s = s + strings.Repeat(" ", maxw-vis)
		}
		return s
	}

	var sb strings.Builder
	if title == "" {
		sb.WriteString(t.CornerTL + strings.Repeat(t.H, maxw+2) + t.CornerTR)
	} else {
		sb.WriteString(t.CornerTL + t.H + " " + C(t.Title, title) + " " +
			strings.Repeat(t.H, maxw-len([]rune(title))-1) + t.CornerTR)
	}
	for _, ln := range lines {
		sb.WriteString("\n" + t.V + " " + pad(ln) + " " + t.V)
	}
	sb.WriteString("\n" + t.CornerBL + strings.Repeat(t.H, maxw+2) + t.CornerBR)
	return sb.String()
}
