// Package affine computes and applies axis-aligned affine transforms between
// rectangles.
//
// A Transform maps input coordinates to output coordinates as
//
//	out = Offset + Scale ⊙ in
//
// where ⊙ is the component-wise product. Each axis is scaled independently
// and there is no rotation or shear. Transforms are plain values; every
// function in this package is pure and safe for concurrent use.
//
// Degenerate inputs (a zero-width or zero-height inner rectangle, a zero
// scale component on an inverse) are not rejected. They follow IEEE-754
// division and yield ±Inf or NaN components, which callers can detect with
// Transform.Finite.
package affine

import (
	"fmt"
	"math"

	"viewfit/internal/geom"
)

// Transform holds the parameters of out = Offset + Scale ⊙ in.
type Transform struct {
	Offset geom.Vec2
	Scale  geom.Vec2
}

// Identity maps every point onto itself.
var Identity = Transform{Scale: geom.V(1, 1)}

// Translate returns the transform that adds v.
func Translate(v geom.Vec2) Transform {
	return Transform{Offset: v, Scale: geom.V(1, 1)}
}

// Scaling returns the transform that multiplies by s about the origin.
func Scaling(s geom.Vec2) Transform {
	return Transform{Scale: s}
}

// Compose returns the transform that applies inner first and outer second.
func Compose(outer, inner Transform) Transform {
	return Transform{
		Offset: outer.Offset.Add(outer.Scale.Mul(inner.Offset)),
		Scale:  outer.Scale.Mul(inner.Scale),
	}
}

// Invert returns the transform that InverseTransformPoint applies.
func Invert(t Transform) Transform {
	inv := geom.V(1/t.Scale.X, 1/t.Scale.Y)
	return Transform{
		Offset: t.Offset.Mul(inv).Scale(-1),
		Scale:  inv,
	}
}

// Finite reports whether every parameter is a finite number.
func (t Transform) Finite() bool {
	for _, f := range [...]float64{t.Offset.X, t.Offset.Y, t.Scale.X, t.Scale.Y} {
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return false
		}
	}
	return true
}

func (t Transform) String() string {
	return fmt.Sprintf("offset=%v scale=%v", t.Offset, t.Scale)
}
