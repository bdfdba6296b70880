package ports

import (
	"io"

	"go.trai.ch/pathforge/internal/core/domain"
)

// GridView is the read-only view of a grid needed for rendering.
type GridView interface {
	Width() int
	Height() int
	IsPassable(p domain.Point) bool
	CellCost(p domain.Point) float64
}

// DirectionField is the read-only view of a direction field needed for rendering.
type DirectionField interface {
	Direction(p domain.Point) domain.Vector2
	Reachable(p domain.Point) bool
}

// Renderer draws grids, paths and direction fields as text.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// RenderPath draws the grid with path overlaid.
	RenderPath(w io.Writer, world GridView, path []domain.Point) error
	// RenderField draws one arrow per cell pointing along the field.
	RenderField(w io.Writer, world GridView, target domain.Point, field DirectionField) error
}
