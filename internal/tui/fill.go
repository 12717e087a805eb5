package tui

import (
	"log"

	"github.com/rclancey/earcut"
)

// fillPolygon triangulates a projected polygon (outer ring first, then
// holes) and fills the triangles on b. Rings are in micro-grid coordinates.
func fillPolygon(b *brailleBuf, rings [][][2]float64) {
	var coords []float64
	var holes []int
	for i, ring := range rings {
		ring = openRing(ring)
		if len(ring) < 3 {
			if i == 0 {
				return
			}
			continue
		}
		if i > 0 {
			holes = append(holes, len(coords)/2)
		}
		for _, p := range ring {
			coords = append(coords, p[0], p[1])
		}
	}
	idx, err := earcut.Earcut(coords, holes, 2)
	if err != nil {
		log.Printf("triangulate %d vertices: %v", len(coords)/2, err)
		return
	}
	vert := func(i int) [2]float64 { return [2]float64{coords[i*2], coords[i*2+1]} }
	for t := 0; t+2 < len(idx); t += 3 {
		b.fillTriangle(vert(idx[t]), vert(idx[t+1]), vert(idx[t+2]))
	}
}

// openRing drops the closing vertex of a ring that repeats its first.
func openRing(ring [][2]float64) [][2]float64 {
	if n := len(ring); n > 1 && ring[0] == ring[n-1] {
		return ring[:n-1]
	}
	return ring
}
