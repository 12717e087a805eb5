package geom

import (
	"fmt"
	"math"
)

// Rect is an axis-aligned rectangle. Rects built with R, BoundingBox or
// Extend always satisfy Min <= Max on both axes.
type Rect struct {
	Min Vec2
	Max Vec2
}

// R returns the rectangle spanned by (x0, y0) and (x1, y1) in any order.
func R(x0, y0, x1, y1 float64) Rect {
	return BoundingBox(V(x0, y0), V(x1, y1))
}

// BoundingBox returns the smallest Rect containing both a and b.
func BoundingBox(a, b Vec2) Rect {
	return Rect{
		Min: Vec2{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)},
		Max: Vec2{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)},
	}
}

func (r Rect) Center() Vec2    { return r.Min.Add(r.Max).Scale(0.5) }
func (r Rect) Diagonal() Vec2  { return r.Max.Sub(r.Min) }
func (r Rect) Width() float64  { return r.Max.X - r.Min.X }
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Empty reports whether r has zero width or zero height.
func (r Rect) Empty() bool { return !(r.Max.X > r.Min.X && r.Max.Y > r.Min.Y) }

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Extend grows r to include p.
func (r Rect) Extend(p Vec2) Rect {
	return Rect{
		Min: Vec2{X: math.Min(r.Min.X, p.X), Y: math.Min(r.Min.Y, p.Y)},
		Max: Vec2{X: math.Max(r.Max.X, p.X), Y: math.Max(r.Max.Y, p.Y)},
	}
}

// Inset shrinks r by d on every side; a negative d grows it.
func (r Rect) Inset(d float64) Rect {
	return BoundingBox(r.Min.Add(V(d, d)), r.Max.Sub(V(d, d)))
}

func (r Rect) String() string {
	return fmt.Sprintf("[%.5f, %.5f, %.5f, %.5f]", r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
}
