// Package geometry provides the fixed-capacity polygon primitives the
// splitters build on: point/quad types, polygon area, line integration, the
// point-line side test, and axis-aligned Sutherland-Hodgman clipping.
package geometry

import "math"

// Point is a location in bin-fractional coordinates: X is a pos0 (or pos1)
// bin index, Y is the complementary axis.
type Point struct {
	X, Y float64
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Cross returns the 2D cross product p x q.
func Cross(p, q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Quad is the four-corner footprint of one detector pixel in bin-fractional
// coordinates, in the order supplied by the geometry layer (A, B, C, D).
// Orientation (CW/CCW) does not matter: every quantity derived from a Quad
// is taken in absolute value.
type Quad [4]Point

// Area is the quadrilateral area via the diagonal cross product,
// 0.5*|(C-A) x (D-B)|. This identity is exact for any simple quadrilateral,
// not just convex ones.
func (q Quad) Area() float64 {
	return 0.5 * math.Abs(Cross(q[2].Sub(q[0]), q[3].Sub(q[1])))
}

// Bounds returns the axis-aligned bounding box (minX, maxX, minY, maxY) of
// the quadrilateral's four corners.
func (q Quad) Bounds() (minX, maxX, minY, maxY float64) {
	minX, maxX = q[0].X, q[0].X
	minY, maxY = q[0].Y, q[0].Y
	for _, c := range q[1:] {
		minX = math.Min(minX, c.X)
		maxX = math.Max(maxX, c.X)
		minY = math.Min(minY, c.Y)
		maxY = math.Max(maxY, c.Y)
	}
	return
}
