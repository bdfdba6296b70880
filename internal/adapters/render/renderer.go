// Package render draws grids, paths and direction fields as colored text.
package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/pathforge/internal/core/domain"
	"go.trai.ch/pathforge/internal/core/ports"
	"go.trai.ch/pathforge/internal/ui/output"
	"go.trai.ch/pathforge/internal/ui/style"
	"go.trai.ch/zerr"
)

// Renderer implements ports.Renderer. Rows are drawn top to bottom with y
// growing downward, one glyph per cell.
type Renderer struct {
	profile termenv.Profile
}

// NewRenderer creates a Renderer using the shared color profile.
func NewRenderer() *Renderer {
	return NewRendererWithProfile(output.Profile())
}

// NewRendererWithProfile creates a Renderer with a fixed color profile.
func NewRendererWithProfile(p termenv.Profile) *Renderer {
	return &Renderer{profile: p}
}

// RenderPath draws world with path overlaid. Consecutive path nodes that are
// not adjacent are joined along their grid line.
func (r *Renderer) RenderPath(w io.Writer, world ports.GridView, path []domain.Point) error {
	onPath := make(map[domain.Point]bool, len(path))
	for i, p := range path {
		if i == 0 {
			onPath[p] = true
			continue
		}
		for c := range domain.Line(path[i-1], p) {
			onPath[c] = true
		}
	}

	var start, goal domain.Point
	if len(path) > 0 {
		start, goal = path[0], path[len(path)-1]
	}

	var b strings.Builder
	for y := range world.Height() {
		for x := range world.Width() {
			p := domain.Pt(x, y)
			switch {
			case len(path) > 0 && p == start:
				b.WriteString(r.paint(style.Start, style.Green))
			case len(path) > 0 && p == goal:
				b.WriteString(r.paint(style.Goal, style.Iris))
			case onPath[p]:
				b.WriteString(r.paint(style.Step, style.Yellow))
			default:
				b.WriteString(r.cell(world, p))
			}
		}
		b.WriteByte('\n')
	}
	return write(w, b.String())
}

// RenderField draws one arrow per reachable cell pointing along field.
func (r *Renderer) RenderField(w io.Writer, world ports.GridView, target domain.Point, field ports.DirectionField) error {
	var b strings.Builder
	for y := range world.Height() {
		for x := range world.Width() {
			p := domain.Pt(x, y)
			switch {
			case p == target:
				b.WriteString(r.paint(style.Goal, style.Iris))
			case !world.IsPassable(p):
				b.WriteString(r.paint(style.Wall, style.Slate))
			case !field.Reachable(p):
				b.WriteString(r.paint(style.Open, style.Red))
			default:
				b.WriteString(r.paint(Arrow(field.Direction(p)), style.Sky))
			}
		}
		b.WriteByte('\n')
	}
	return write(w, b.String())
}

// Arrow returns the glyph for a step direction. The zero vector maps to the
// center glyph.
func Arrow(v domain.Vector2) string {
	return style.Arrows[(sign(v.Y)+1)*3+sign(v.X)+1]
}

func (r *Renderer) cell(world ports.GridView, p domain.Point) string {
	switch {
	case !world.IsPassable(p):
		return r.paint(style.Wall, style.Slate)
	case world.CellCost(p) > 1:
		return r.paint(style.Heavy, style.Sky)
	default:
		return r.paint(style.Open, style.Slate)
	}
}

func (r *Renderer) paint(glyph string, c lipgloss.Color) string {
	return r.profile.String(glyph).Foreground(r.profile.Color(string(c))).String()
}

func sign(v float64) int {
	const eps = 1e-9
	switch {
	case v > eps:
		return 1
	case v < -eps:
		return -1
	default:
		return 0
	}
}

func write(w io.Writer, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return zerr.Wrap(err, "failed to write rendering")
	}
	return nil
}

