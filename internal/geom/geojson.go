package geom

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
)

// LoadGeoJSON reads a GeoJSON file. Feature properties become the attribute
// table, one row per feature.
func LoadGeoJSON(path string) (Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return Data{}, err
	}
	defer f.Close()
	return DecodeGeoJSON(f)
}

// DecodeGeoJSON accepts a FeatureCollection, a Feature or a bare geometry,
// including GeometryCollection.
func DecodeGeoJSON(r io.Reader) (Data, error) {
	var raw map[string]any
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return Data{}, fmt.Errorf("geojson: %w", err)
	}
	var d Data
	parsePoint := func(v any) (Vec2, bool) {
		if a, ok := v.([]any); ok && len(a) >= 2 {
			lon, lok := a[0].(float64)
			lat, aok := a[1].(float64)
			if lok && aok {
				return V(lon, lat), true
			}
		}
		return Vec2{}, false
	}
	parseLine := func(v any) []Vec2 {
		arr, _ := v.([]any)
		var pts []Vec2
		for _, el := range arr {
			if pt, ok := parsePoint(el); ok {
				pts = append(pts, pt)
			}
		}
		return pts
	}
	parsePolygon := func(v any) [][]Vec2 {
		arr, _ := v.([]any)
		var poly [][]Vec2
		for _, ring := range arr {
			if ls := parseLine(ring); len(ls) > 0 {
				poly = append(poly, ls)
			}
		}
		return poly
	}
	var walkGeom func(g map[string]any)
	walkGeom = func(g map[string]any) {
		coords := g["coordinates"]
		gt, _ := g["type"].(string)
		switch gt {
		case "Point":
			if pt, ok := parsePoint(coords); ok {
				d.addPoint(pt)
			}
		case "MultiPoint":
			for _, p := range parseLine(coords) {
				d.addPoint(p)
			}
		case "LineString":
			d.addLine(parseLine(coords))
		case "MultiLineString":
			arr, _ := coords.([]any)
			for _, el := range arr {
				d.addLine(parseLine(el))
			}
		case "Polygon":
			d.addPolygon(parsePolygon(coords))
		case "MultiPolygon":
			arr, _ := coords.([]any)
			for _, el := range arr {
				d.addPolygon(parsePolygon(el))
			}
		case "GeometryCollection":
			gs, _ := g["geometries"].([]any)
			for _, sub := range gs {
				if sm, ok := sub.(map[string]any); ok {
					walkGeom(sm)
				}
			}
		}
	}

	var features []map[string]any
	switch t, _ := raw["type"].(string); t {
	case "Feature":
		features = append(features, raw)
	case "FeatureCollection":
		fs, _ := raw["features"].([]any)
		for _, f := range fs {
			if fm, ok := f.(map[string]any); ok {
				features = append(features, fm)
			}
		}
	case "":
		return Data{}, fmt.Errorf("geojson: missing type")
	default:
		walkGeom(raw)
	}
	for _, fm := range features {
		if g, ok := fm["geometry"].(map[string]any); ok {
			walkGeom(g)
		}
	}
	if d.Empty() {
		return Data{}, fmt.Errorf("geojson: %w", ErrNoGeometry)
	}
	d.Columns, d.Rows = featureProperties(features)
	return d, nil
}

// featureProperties unions property keys across features in first-seen
// order and renders each feature's values as strings.
func featureProperties(features []map[string]any) ([]string, [][]string) {
	var order []string
	seen := map[string]bool{}
	props := make([]map[string]any, 0, len(features))
	for _, fm := range features {
		pm, _ := fm["properties"].(map[string]any)
		props = append(props, pm)
		// map iteration order is random
		for _, k := range slices.Sorted(maps.Keys(pm)) {
			if !seen[k] {
				seen[k] = true
				order = append(order, k)
			}
		}
	}
	if len(order) == 0 {
		return nil, nil
	}
	rows := make([][]string, 0, len(props))
	for _, pm := range props {
		vals := make([]string, 0, len(order))
		for _, k := range order {
			switch t := pm[k].(type) {
			case nil:
				vals = append(vals, "")
			case string:
				vals = append(vals, t)
			case float64:
				vals = append(vals, fmt.Sprintf("%g", t))
			case bool:
				vals = append(vals, fmt.Sprintf("%t", t))
			default:
				bs, _ := json.Marshal(t)
				vals = append(vals, string(bs))
			}
		}
		rows = append(rows, vals)
	}
	return order, rows
}
