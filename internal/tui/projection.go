package tui

import (
	"math"

	"viewfit/internal/affine"
	"viewfit/internal/geom"
)

type viewMode int

const (
	modeFit viewMode = iota
	modeStretch
)

func (v viewMode) String() string {
	if v == modeStretch {
		return "stretch"
	}
	return "fit"
}

// projection places data coordinates on the braille micro-grid (2x4 dots per
// cell) of a w x h cell map.
type projection struct {
	bounds geom.Rect        // padded data bounds
	view   geom.Rect        // micro-grid extent
	micro  affine.Transform // data -> micro-grid
	cell   affine.Transform // data -> cells
	ok     bool
}

// cellToMicro is the scale between cell and micro-grid coordinates.
var cellToMicro = geom.V(2, 4)

func newProjection(bounds geom.Rect, w, h int, mode viewMode, invertY bool, zoom float64, pan geom.Vec2) projection {
	if w <= 0 || h <= 0 {
		return projection{}
	}
	pr := projection{
		bounds: padBounds(bounds),
		view:   geom.R(0, 0, float64(w*2-1), float64(h*4-1)),
	}
	switch mode {
	case modeStretch:
		pr.micro = affine.ScaleStretch(pr.bounds, pr.view, affine.StretchOptions{Zoom: zoom})
		if invertY {
			// mirror about the horizontal centre line of the view
			flip := affine.Transform{Offset: geom.V(0, pr.view.Min.Y+pr.view.Max.Y), Scale: geom.V(1, -1)}
			pr.micro = affine.Compose(flip, pr.micro)
		}
	default:
		pr.micro = affine.ScaleFit(pr.bounds, pr.view, affine.FitOptions{InvertY: invertY, Zoom: zoom})
	}
	pr.micro = affine.Compose(affine.Translate(pan.Mul(cellToMicro)), pr.micro)
	pr.cell = affine.Compose(affine.Scaling(geom.V(1/cellToMicro.X, 1/cellToMicro.Y)), pr.micro)
	pr.ok = pr.micro.Finite()
	return pr
}

// padBounds gives flat or single-point data a non-zero extent so the
// derived transforms stay finite.
func padBounds(b geom.Rect) geom.Rect {
	d := math.Max(b.Width(), b.Height()) * 0.05
	if d == 0 {
		d = 0.5
	}
	if b.Width() == 0 {
		b.Min.X -= d
		b.Max.X += d
	}
	if b.Height() == 0 {
		b.Min.Y -= d
		b.Max.Y += d
	}
	return b
}

// toMicro returns the micro-grid dot for a data coordinate.
func (pr projection) toMicro(p geom.Vec2) (int, int, bool) {
	if !pr.ok {
		return 0, 0, false
	}
	m := affine.TransformPoint(p, pr.micro)
	return int(math.Round(m.X)), int(math.Round(m.Y)), true
}

// toCell returns the cell containing a data coordinate.
func (pr projection) toCell(p geom.Vec2) (int, int, bool) {
	mx, my, ok := pr.toMicro(p)
	if !ok {
		return 0, 0, false
	}
	return floorDiv(mx, 2), floorDiv(my, 4), true
}

// cellToData returns the data coordinate under the centre of a cell.
func (pr projection) cellToData(cx, cy int) (geom.Vec2, bool) {
	if !pr.ok {
		return geom.Vec2{}, false
	}
	c := geom.V(float64(cx)+0.25, float64(cy)+0.375)
	return affine.InverseTransformPoint(c, pr.cell), true
}

// visible returns the data extent currently on screen.
func (pr projection) visible() geom.Rect {
	return affine.InverseTransformRect(pr.view, pr.micro)
}

// cellSize returns how many data units one cell spans on each axis.
func (pr projection) cellSize() geom.Vec2 {
	return affine.InverseTransformArea(geom.R(0, 0, 1, 1), pr.cell).Diagonal()
}

// dataRect returns where the padded data bounds land on the micro-grid.
func (pr projection) dataRect() geom.Rect {
	return affine.TransformRect(pr.bounds, pr.micro)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
