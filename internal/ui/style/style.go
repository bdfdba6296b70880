// Package style holds the palette and glyphs shared by every pathforge view.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Ink    = lipgloss.Color("#0B0F19")
	Mist   = lipgloss.Color("#F6F7FB")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
	Sky    = lipgloss.Color("#0EA5E9")
)

// Status icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Tilde   = "~"
)

// Cell glyphs. Every glyph is one column wide.
const (
	Wall  = "#"
	Open  = "."
	Heavy = ":"
	Step  = "*"
	Start = "S"
	Goal  = "G"
)

// Arrows indexed by direction code (dy+1)*3 + (dx+1); index 4 is the
// target or an unreachable cell.
var Arrows = [9]string{"↖", "↑", "↗", "←", "o", "→", "↙", "↓", "↘"}
