package tui

import "math"

// brailleBuf is a w x h cell canvas with a 2x4 dot micro-grid per cell.
type brailleBuf struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit mask
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	for i := range m {
		m[i] = make([]uint8, w)
	}
	return &brailleBuf{w: w, h: h, m: m}
}

// dotBits[rx][ry] is the Unicode braille bit for a dot within its cell.
var dotBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, cy := mx/2, my/4
	if cy >= b.h || cx >= b.w {
		return
	}
	b.m[cy][cx] |= dotBits[mx%2][my%4]
}

// drawLineMicro draws a line on the microgrid using Bresenham
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// fillTriangle sets every dot whose centre lies inside the triangle abc,
// given in micro-grid coordinates. Only the part overlapping the canvas is
// scanned.
func (b *brailleBuf) fillTriangle(a, c, d [2]float64) {
	minX := max(0, int(math.Floor(min(a[0], c[0], d[0]))))
	maxX := min(b.w*2-1, int(math.Ceil(max(a[0], c[0], d[0]))))
	minY := max(0, int(math.Floor(min(a[1], c[1], d[1]))))
	maxY := min(b.h*4-1, int(math.Ceil(max(a[1], c[1], d[1]))))
	edge := func(p, q [2]float64, x, y float64) float64 {
		return (q[0]-p[0])*(y-p[1]) - (q[1]-p[1])*(x-p[0])
	}
	area := edge(a, c, d[0], d[1])
	if area == 0 {
		return
	}
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px, py := float64(x), float64(y)
			w0 := edge(c, d, px, py) * area
			w1 := edge(d, a, px, py) * area
			w2 := edge(a, c, px, py) * area
			if w0 >= 0 && w1 >= 0 && w2 >= 0 {
				b.setPixel(x, y)
			}
		}
	}
}

func (b *brailleBuf) toLines() []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		row := make([]rune, b.w)
		for x := 0; x < b.w; x++ {
			mask := b.m[y][x]
			if mask == 0 {
				row[x] = ' '
			} else {
				row[x] = rune(0x2800 + int(mask))
			}
		}
		out[y] = string(row)
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
