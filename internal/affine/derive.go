package affine

import (
	"math"

	"viewfit/internal/geom"
)

// StretchOptions tunes ScaleStretch.
//
// Zoom multiplies the scale after the exact fit (2 is twice as big, 0.5 twice
// as small) while keeping the centre of inner in place. Zero means 1.
type StretchOptions struct {
	Zoom float64
}

// FitOptions tunes ScaleFit.
//
// InvertY flips the direction of growth of the Y axis, e.g. to draw Y-up
// data on a Y-down screen. Zoom behaves as in StretchOptions.
type FitOptions struct {
	InvertY bool
	Zoom    float64
}

func zoomOrDefault(z float64) float64 {
	if z == 0 {
		return 1
	}
	return z
}

// ScaleStretch returns the transform that maps inner exactly onto outer,
// scaling each axis independently. The aspect ratio is not preserved.
//
// inner must have non-zero width and height.
func ScaleStretch(inner, outer geom.Rect, opts StretchOptions) Transform {
	zoom := zoomOrDefault(opts.Zoom)

	diagIn := inner.Diagonal()
	diagOut := outer.Diagonal()
	ci := inner.Center()
	co := outer.Center()

	scale := diagOut.Scale(zoom).Div(diagIn)
	return Transform{
		Offset: co.Sub(scale.Mul(ci)),
		Scale:  scale,
	}
}

// ScaleFit returns the uniform transform that fits inner inside outer,
// centred. The smaller of the two per-axis ratios is used so the scaled
// inner never exceeds outer on either axis.
//
// inner must have non-zero width and height.
func ScaleFit(inner, outer geom.Rect, opts FitOptions) Transform {
	zoom := zoomOrDefault(opts.Zoom)
	flipY := 1.0
	if opts.InvertY {
		flipY = -1
	}

	diagIn := inner.Diagonal()
	diagOut := outer.Diagonal()
	ci := inner.Center()
	co := outer.Center()

	sx := diagOut.X / diagIn.X
	sy := diagOut.Y / diagIn.Y
	s := math.Min(sx, sy) * zoom

	return Transform{
		Offset: geom.V(co.X-s*ci.X, co.Y-flipY*s*ci.Y),
		Scale:  geom.V(s, flipY*s),
	}
}
