// Package geom holds the small amount of planar geometry the tab bar needs:
// points, sizes, rectangles, edge insets and ring arithmetic on item indices.
//
// All coordinates are float64 "points". The terminal renderer maps one point
// to one cell; other renderers are free to choose their own scale.
package geom

import "math"

// Point is a location in a 2D coordinate space.
type Point struct {
	X, Y float64
}

// Size is a width and a height.
type Size struct {
	Width, Height float64
}

// Empty returns true if the size has no area.
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Left returns the minimum x coordinate.
func (r Rect) Left() float64 { return r.X }

// Right returns the maximum x coordinate.
func (r Rect) Right() float64 { return r.X + r.Width }

// Top returns the minimum y coordinate.
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the maximum y coordinate.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Offset returns the rectangle translated by dx, dy.
func (r Rect) Offset(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Contains reports whether p lies inside r. The right and bottom edges are
// exclusive so that adjacent rectangles never both contain a point.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Inset shrinks the rectangle by the given insets. Width and height clamp to
// zero.
func (r Rect) Inset(in Insets) Rect {
	r.X += in.Left
	r.Y += in.Top
	r.Width = math.Max(r.Width-in.Left-in.Right, 0)
	r.Height = math.Max(r.Height-in.Top-in.Bottom, 0)
	return r
}

// Insets is four-sided padding.
type Insets struct {
	Top    float64 `toml:"top"`
	Left   float64 `toml:"left"`
	Bottom float64 `toml:"bottom"`
	Right  float64 `toml:"right"`
}

// Horizontal returns Left+Right.
func (in Insets) Horizontal() float64 { return in.Left + in.Right }

// Vertical returns Top+Bottom.
func (in Insets) Vertical() float64 { return in.Top + in.Bottom }

// DistanceToRect returns the Euclidean distance from p to the closest point of
// r. Points inside the rectangle are at distance zero.
func DistanceToRect(r Rect, p Point) float64 {
	if r.Contains(p) {
		return 0
	}

	closest := Point{X: r.X, Y: r.Y}
	if r.Right() < p.X {
		closest.X = r.Right()
	} else if p.X > r.X {
		closest.X = p.X
	}
	if r.Bottom() < p.Y {
		closest.Y = r.Bottom()
	} else if p.Y > r.Y {
		closest.Y = p.Y
	}

	return math.Hypot(closest.X-p.X, closest.Y-p.Y)
}

// Modulo returns the mathematical (non-negative) remainder of x divided by m.
// The sign of m is ignored. Modulo panics if m is zero, like the % operator.
func Modulo(x, m int) int {
	if m < 0 {
		m = -m
	}
	r := x % m
	if r < 0 {
		r += m
	}
	return r
}

// CircularDistance returns the shortest number of hops between indices a and
// b on a ring of n slots. It returns 0 when n < 1.
func CircularDistance(a, b, n int) int {
	if n < 1 {
		return 0
	}
	return min(Modulo(a-b, n), Modulo(b-a, n))
}

// CircularDirection returns the direction to travel from a to reach b along
// the shortest path: -1 towards lower indices, +1 towards higher indices, 0
// when a and b coincide. Ties (exactly half way round) resolve to -1, the
// direction measured by the left operand of [CircularDistance].
func CircularDirection(a, b, n int) int {
	if n < 1 {
		return 0
	}
	left, right := Modulo(a-b, n), Modulo(b-a, n)
	switch {
	case left == 0:
		return 0
	case left <= right:
		return -1
	default:
		return 1
	}
}
