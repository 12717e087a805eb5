package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"viewfit/internal/affine"
	"viewfit/internal/geom"
)

// renderMap draws the visible layers into a w x h block of braille cells.
func (m Model) renderMap(w, h int) string {
	br := newBrailleBuf(w, h)
	pr := m.projection(w, h)
	if pr.ok {
		m.drawLayers(br, pr)
	}
	lines := br.toLines()

	// Hover highlight: draw a circle at the hovered vertex cell
	if m.hovering {
		cx, cy := m.hoverMicX/2, m.hoverMicY/4
		if cy >= 0 && cy < len(lines) {
			r := []rune(lines[cy])
			if cx >= 0 && cx < len(r) {
				circle := lipgloss.NewStyle().Foreground(hoverColor(m.zoom)).Render("◯")
				lines[cy] = string(r[:cx]) + circle + string(r[cx+1:])
			}
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) drawLayers(br *brailleBuf, pr projection) {
	project := func(p geom.Vec2) [2]float64 {
		q := affine.TransformPoint(p, pr.micro)
		return [2]float64{q.X, q.Y}
	}

	// polygons: fill then edges
	if m.showPolys {
		for _, poly := range m.data.Polygons {
			rings := make([][][2]float64, 0, len(poly))
			for _, ring := range poly {
				pts := make([][2]float64, len(ring))
				for i, p := range ring {
					pts[i] = project(p)
				}
				rings = append(rings, pts)
			}
			fillPolygon(br, rings)
			for _, ring := range poly {
				drawPath(br, pr, ring, true)
			}
		}
	}

	if m.showLines {
		for _, ls := range m.data.Lines {
			drawPath(br, pr, ls, false)
		}
	}

	if m.showPoints {
		for _, p := range m.data.Points {
			if mx, my, ok := pr.toMicro(p); ok {
				br.setPixel(mx, my)
			}
		}
	}
}

// drawPath strokes a polyline, closing it back to the start if closed.
func drawPath(br *brailleBuf, pr projection, pts []geom.Vec2, closed bool) {
	if len(pts) == 0 {
		return
	}
	x0, y0, _ := pr.toMicro(pts[0])
	px, py := x0, y0
	for _, p := range pts[1:] {
		mx, my, _ := pr.toMicro(p)
		br.drawLineMicro(px, py, mx, my)
		px, py = mx, my
	}
	if closed {
		br.drawLineMicro(px, py, x0, y0)
	} else if len(pts) == 1 {
		br.setPixel(x0, y0)
	}
}
