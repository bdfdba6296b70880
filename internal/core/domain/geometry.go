package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// Point is a cell coordinate on a 2D grid.
type Point struct {
	X int
	Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// ParsePoint parses a cell written as "x,y".
func ParsePoint(s string) (Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Point{}, zerr.With(zerr.Wrap(ErrInvalidPoint, "expected x,y"), "point", s)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(xs))
	y, errY := strconv.Atoi(strings.TrimSpace(ys))
	if errX != nil || errY != nil {
		return Point{}, zerr.With(zerr.Wrap(ErrInvalidPoint, "coordinates must be integers"), "point", s)
	}
	return Pt(x, y), nil
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// String implements fmt.Stringer.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Vector2 is a 2D direction or displacement.
type Vector2 struct {
	X float64
	Y float64
}

// Len returns the Euclidean length of v.
func (v Vector2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns v scaled to unit length. The zero vector is returned unchanged.
func (v Vector2) Normalize() Vector2 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vector2{X: v.X / l, Y: v.Y / l}
}

// IsZero reports whether v is the zero vector.
func (v Vector2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Rect is an axis-aligned block of cells, [X, X+Width) x [Y, Y+Height).
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// DiagonalMode controls which diagonal moves a grid permits.
type DiagonalMode int

const (
	// DiagonalNever allows cardinal moves only.
	DiagonalNever DiagonalMode = iota
	// DiagonalAlways allows every diagonal move into a passable cell.
	DiagonalAlways
	// DiagonalNoCutCorners allows a diagonal move only if both adjacent cardinal cells are passable.
	DiagonalNoCutCorners
)

// String returns the canonical name of the mode.
func (m DiagonalMode) String() string {
	switch m {
	case DiagonalNever:
		return "never"
	case DiagonalAlways:
		return "always"
	case DiagonalNoCutCorners:
		return "no-cut-corners"
	default:
		return fmt.Sprintf("DiagonalMode(%d)", int(m))
	}
}

// ParseDiagonalMode converts a configuration string into a DiagonalMode.
// An empty string selects DiagonalNever.
func ParseDiagonalMode(s string) (DiagonalMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "never", "none":
		return DiagonalNever, nil
	case "always":
		return DiagonalAlways, nil
	case "no-cut-corners", "nocutcorners", "no_cut_corners":
		return DiagonalNoCutCorners, nil
	default:
		return DiagonalNever, zerr.With(zerr.Wrap(ErrUnknownDiagonalMode, "failed to parse diagonal mode"), "mode", s)
	}
}
