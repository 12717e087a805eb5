// Package geom provides the 2D value types the rest of viewfit is built on
// and loaders that turn geometry files into drawable Data.
package geom

import "fmt"

// Vec2 is a point or a free vector in the plane.
type Vec2 struct {
	X float64
	Y float64
}

func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(w Vec2) Vec2      { return Vec2{v.X + w.X, v.Y + w.Y} }
func (v Vec2) Sub(w Vec2) Vec2      { return Vec2{v.X - w.X, v.Y - w.Y} }
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Mul(w Vec2) Vec2      { return Vec2{v.X * w.X, v.Y * w.Y} }
func (v Vec2) Div(w Vec2) Vec2      { return Vec2{v.X / w.X, v.Y / w.Y} }
func (v Vec2) String() string       { return fmt.Sprintf("(%g, %g)", v.X, v.Y) }

// Dist2 returns the squared distance between v and w.
func (v Vec2) Dist2(w Vec2) float64 {
	d := v.Sub(w)
	return d.X*d.X + d.Y*d.Y
}
