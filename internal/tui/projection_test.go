package tui

import (
	"testing"

	"github.com/stretchr/testify/require"

	"viewfit/internal/geom"
)

func TestProjectionFitInvertY(t *testing.T) {
	// 10x5 cells is a 20x20 dot micro-grid
	pr := newProjection(geom.R(0, 0, 10, 10), 10, 5, modeFit, true, 1, geom.Vec2{})
	require.True(t, pr.ok)

	x, y, ok := pr.toMicro(geom.V(0, 0))
	require.True(t, ok)
	require.Equal(t, []int{0, 19}, []int{x, y}, "data origin is bottom-left")

	x, y, _ = pr.toMicro(geom.V(10, 10))
	require.Equal(t, []int{19, 0}, []int{x, y})

	cx, cy, _ := pr.toCell(geom.V(0, 0))
	require.Equal(t, []int{0, 4}, []int{cx, cy})

	size := pr.cellSize()
	require.InDelta(t, 2/1.9, size.X, 1e-9)
	require.InDelta(t, 4/1.9, size.Y, 1e-9)
}

func TestProjectionCellRoundTrip(t *testing.T) {
	for _, mode := range []viewMode{modeFit, modeStretch} {
		for _, invert := range []bool{false, true} {
			pr := newProjection(geom.R(-3, 40, 17, 45), 30, 12, mode, invert, 1.5, geom.V(3, -2))
			for cy := 0; cy < 12; cy++ {
				for cx := 0; cx < 30; cx++ {
					p, ok := pr.cellToData(cx, cy)
					require.True(t, ok)
					gx, gy, _ := pr.toCell(p)
					require.Equal(t, []int{cx, cy}, []int{gx, gy}, "mode=%v invert=%v", mode, invert)
				}
			}
		}
	}
}

func TestProjectionStretchFillsView(t *testing.T) {
	pr := newProjection(geom.R(0, 0, 10, 5), 10, 5, modeStretch, true, 1, geom.Vec2{})
	got := pr.dataRect()
	require.InDelta(t, 0, got.Min.X, 1e-9)
	require.InDelta(t, 0, got.Min.Y, 1e-9)
	require.InDelta(t, 19, got.Max.X, 1e-9)
	require.InDelta(t, 19, got.Max.Y, 1e-9)

	// Y-up: the top edge of the data lands on the first row
	_, y, _ := pr.toMicro(geom.V(0, 5))
	require.Equal(t, 0, y)
	require.Negative(t, pr.micro.Scale.Y)
}

func TestProjectionPanAndZoom(t *testing.T) {
	bounds := geom.R(0, 0, 10, 10)
	base := newProjection(bounds, 10, 5, modeFit, true, 1, geom.Vec2{})
	panned := newProjection(bounds, 10, 5, modeFit, true, 1, geom.V(2, 1))

	x0, y0, _ := base.toMicro(geom.V(3, 3))
	x1, y1, _ := panned.toMicro(geom.V(3, 3))
	require.Equal(t, []int{x0 + 4, y0 + 4}, []int{x1, y1})

	zoomed := newProjection(bounds, 10, 5, modeFit, true, 2, geom.Vec2{})
	vis := zoomed.visible()
	require.InDelta(t, base.visible().Width()/2, vis.Width(), 1e-9)
	require.InDelta(t, 5, vis.Center().X, 1e-9)
	require.InDelta(t, 5, vis.Center().Y, 1e-9)
}

func TestProjectionDegenerateBounds(t *testing.T) {
	pr := newProjection(geom.R(4, 4, 4, 4), 10, 5, modeStretch, true, 1, geom.Vec2{})
	require.True(t, pr.ok)
	x, y, _ := pr.toMicro(geom.V(4, 4))
	require.Equal(t, []int{10, 10}, []int{x, y})

	flat := newProjection(geom.R(0, 1, 8, 1), 10, 5, modeStretch, false, 1, geom.Vec2{})
	require.True(t, flat.ok)

	require.False(t, newProjection(geom.R(0, 0, 1, 1), 0, 5, modeFit, true, 1, geom.Vec2{}).ok)
}

func TestFillPolygonWithHole(t *testing.T) {
	b := newBrailleBuf(10, 5)
	outer := [][2]float64{{0, 0}, {19, 0}, {19, 19}, {0, 19}, {0, 0}}
	hole := [][2]float64{{6, 6}, {13, 6}, {13, 13}, {6, 13}}
	fillPolygon(b, [][][2]float64{outer, hole})

	lines := b.toLines()
	require.Equal(t, '⣿', []rune(lines[0])[0])
	require.Equal(t, ' ', []rune(lines[2])[4], "centre of the hole stays empty")
}

func TestFloorDiv(t *testing.T) {
	require.Equal(t, 2, floorDiv(5, 2))
	require.Equal(t, -3, floorDiv(-5, 2))
	require.Equal(t, -1, floorDiv(-4, 4))
	require.Equal(t, 0, floorDiv(3, 4))
}
