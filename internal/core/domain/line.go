package domain

import "iter"

// Line yields the cells of the Bresenham line from a to b, both endpoints included.
func Line(a, b Point) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		dx := absInt(b.X - a.X)
		dy := -absInt(b.Y - a.Y)
		sx, sy := 1, 1
		if a.X > b.X {
			sx = -1
		}
		if a.Y > b.Y {
			sy = -1
		}
		errTerm := dx + dy
		cur := a
		for {
			if !yield(cur) || cur == b {
				return
			}
			e2 := 2 * errTerm
			if e2 >= dy {
				errTerm += dy
				cur.X += sx
			}
			if e2 <= dx {
				errTerm += dx
				cur.Y += sy
			}
		}
	}
}
