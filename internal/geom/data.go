package geom

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoGeometry is returned when an input decodes cleanly but holds nothing
// drawable.
var ErrNoGeometry = errors.New("no geometries found")

// Data is a minimal geometry container for rendering.
type Data struct {
	Points   []Vec2
	Lines    [][]Vec2
	Polygons [][][]Vec2 // rings: first outer, following holes
	Bounds   Rect

	// Attribute table, one row per feature, when the format carries one.
	Columns []string
	Rows    [][]string

	seen bool
}

// Empty reports whether d holds no points, lines or polygons.
func (d *Data) Empty() bool {
	return len(d.Points) == 0 && len(d.Lines) == 0 && len(d.Polygons) == 0
}

func (d *Data) Counts() string {
	return fmt.Sprintf("pts=%d ls=%d poly=%d", len(d.Points), len(d.Lines), len(d.Polygons))
}

func (d *Data) grow(p Vec2) {
	if !d.seen {
		d.Bounds = Rect{Min: p, Max: p}
		d.seen = true
		return
	}
	d.Bounds = d.Bounds.Extend(p)
}

func (d *Data) addPoint(p Vec2) {
	d.Points = append(d.Points, p)
	d.grow(p)
}

func (d *Data) addLine(ls []Vec2) {
	if len(ls) == 0 {
		return
	}
	d.Lines = append(d.Lines, ls)
	for _, p := range ls {
		d.grow(p)
	}
}

func (d *Data) addPolygon(poly [][]Vec2) {
	if len(poly) == 0 {
		return
	}
	d.Polygons = append(d.Polygons, poly)
	for _, ring := range poly {
		for _, p := range ring {
			d.grow(p)
		}
	}
}

// Vertices calls fn for every vertex in d: points, then line vertices, then
// polygon ring vertices.
func (d *Data) Vertices(fn func(Vec2)) {
	for _, p := range d.Points {
		fn(p)
	}
	for _, ls := range d.Lines {
		for _, p := range ls {
			fn(p)
		}
	}
	for _, poly := range d.Polygons {
		for _, ring := range poly {
			for _, p := range ring {
				fn(p)
			}
		}
	}
}

// Supported reports whether Load understands the file extension of path.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".geojson", ".json", ".csv", ".kml", ".wkt":
		return true
	}
	return false
}

// Load reads path with the decoder picked by its extension.
func Load(path string) (Data, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".geojson", ".json":
		return LoadGeoJSON(path)
	case ".csv":
		return LoadCSV(path)
	case ".kml":
		return LoadKML(path)
	case ".wkt":
		b, err := os.ReadFile(path)
		if err != nil {
			return Data{}, err
		}
		return ParseWKT(string(b))
	}
	return Data{}, fmt.Errorf("unsupported file: %q", ext)
}
