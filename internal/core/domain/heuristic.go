package domain

import (
	"math"
	"strings"

	"go.trai.ch/zerr"
)

// Sqrt2 is the cost multiplier of a diagonal grid move.
const Sqrt2 = math.Sqrt2

// Manhattan estimates |dx| + |dy|. Admissible on 4-connected grids with unit cost.
type Manhattan struct{}

// Estimate implements ports.Heuristic.
func (Manhattan) Estimate(from, to Point) float64 {
	return float64(absInt(from.X-to.X) + absInt(from.Y-to.Y))
}

// Euclidean estimates the straight-line distance.
type Euclidean struct{}

// Estimate implements ports.Heuristic.
func (Euclidean) Estimate(from, to Point) float64 {
	return math.Hypot(float64(from.X-to.X), float64(from.Y-to.Y))
}

// Diagonal estimates octile distance: straight moves cost Cardinal, diagonal moves cost Diag.
// The zero value uses 1 and √2.
type Diagonal struct {
	Cardinal float64
	Diag     float64
}

// Estimate implements ports.Heuristic.
func (d Diagonal) Estimate(from, to Point) float64 {
	c, dg := d.Cardinal, d.Diag
	if c == 0 {
		c = 1
	}
	if dg == 0 {
		dg = Sqrt2
	}
	dx := float64(absInt(from.X - to.X))
	dy := float64(absInt(from.Y - to.Y))
	return c*(dx+dy) + (dg-2*c)*math.Min(dx, dy)
}

// Zero always estimates 0, reducing informed search to Dijkstra.
type Zero[N comparable] struct{}

// Estimate implements ports.Heuristic.
func (Zero[N]) Estimate(_, _ N) float64 {
	return 0
}

// HeuristicFunc adapts a plain function to the heuristic contract.
type HeuristicFunc[N comparable] func(from, to N) float64

// Estimate calls f(from, to).
func (f HeuristicFunc[N]) Estimate(from, to N) float64 {
	return f(from, to)
}

// PointHeuristic is a heuristic over grid cells.
type PointHeuristic interface {
	Estimate(from, to Point) float64
}

// ParseHeuristic resolves a heuristic name used in scenarios and CLI flags.
func ParseHeuristic(name string) (PointHeuristic, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "diagonal", "octile":
		return Diagonal{}, nil
	case "manhattan":
		return Manhattan{}, nil
	case "euclidean":
		return Euclidean{}, nil
	case "zero", "dijkstra":
		return Zero[Point]{}, nil
	default:
		return nil, zerr.With(zerr.Wrap(ErrUnknownHeuristic, "failed to resolve heuristic"), "heuristic", name)
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
