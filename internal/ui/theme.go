package ui

import "strings"

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Title, Muted, Accent, Success, Error, Pending string
	SymUpcoming, SymLive, SymDone                 string
	BarFill, BarEmpty                             string
	CornerTL, CornerTR, CornerBL, CornerBR        string
	H, V                                          string
}

var current Theme

func SetTheme(name string) {
	// mono is the only colorless theme; picking another one resets it
	disableColor = false
	switch strings.ToLower(name) {
	case "neon":
		current = Theme{
			Title: "\033[95m", // bright magenta
			Muted: fgGray, Accent: "\033[96m",
			Success: fgGreen, Error: fgRed, Pending: "\033[93m",
			SymUpcoming: "◦", SymLive: "▸", SymDone: "✔",
			BarFill: "▰", BarEmpty: "▱",
			CornerTL: "╭", CornerTR: "╮", CornerBL: "╰", CornerBR: "╯",
			H: "─", V: "│",
		}
	case "mono":
		disableColor = true
		current = Theme{
			Title: "", Muted: "", Accent: "", Success: "", Error: "", Pending: "",
			SymUpcoming: "-", SymLive: ">", SymDone: "x",
			BarFill: "#", BarEmpty: "-",
			CornerTL: "+", CornerTR: "+", CornerBL: "+", CornerBR: "+",
			H: "-", V: "|",
		}
	default: // classic
		current = Theme{
			Title: bold, Muted: fgGray, Accent: fgBlue,
			Success: fgGreen, Error: fgRed, Pending: fgYellow,
			SymUpcoming: "•", SymLive: "▶", SymDone: "✔",
			BarFill: "█", BarEmpty: "░",
			CornerTL: "┌", CornerTR: "┐", CornerBL: "└", CornerBR: "┘",
			H: "─", V: "│",
		}
	}
}

// Expose what renderers need
func Current() Theme { return current }
