package geom

import (
	"errors"
	"strconv"
	"strings"
)

// ParseWKT parses a subset of WKT into Data.
// Supported: POINT, MULTIPOINT, LINESTRING, MULTILINESTRING, POLYGON.
func ParseWKT(wkt string) (Data, error) {
	s := strings.TrimSpace(wkt)
	if s == "" {
		return Data{}, errors.New("empty wkt")
	}
	up := strings.ToUpper(s)
	var d Data

	// body returns the text between the first open and last close delimiter.
	body := func(opening, closing, kind string) (string, error) {
		i := strings.Index(s, opening)
		j := strings.LastIndex(s, closing)
		if i < 0 || j <= i {
			return "", errors.New("wkt " + kind + ": invalid")
		}
		return s[i+len(opening) : j], nil
	}
	// MULTIPOINT may be written as (1 2, 3 4) or ((1 2), (3 4)).
	stripParens := func(t string) string {
		return strings.Trim(strings.TrimSpace(t), "()")
	}
	parseTuples := func(block string) []Vec2 {
		var out []Vec2
		for _, tup := range strings.Split(block, ",") {
			parts := strings.Fields(stripParens(tup))
			if len(parts) < 2 {
				continue
			}
			x, e1 := strconv.ParseFloat(parts[0], 64)
			y, e2 := strconv.ParseFloat(parts[1], 64)
			if e1 != nil || e2 != nil {
				continue
			}
			out = append(out, V(x, y))
		}
		return out
	}
	splitRings := func(block string) []string {
		norm := strings.Join(strings.Fields(block), " ")
		norm = strings.ReplaceAll(norm, ") , (", "),(")
		norm = strings.ReplaceAll(norm, "), (", "),(")
		return strings.Split(norm, "),(")
	}

	switch {
	case strings.HasPrefix(up, "POINT"), strings.HasPrefix(up, "MULTIPOINT"):
		kind := "point"
		if up[0] == 'M' {
			kind = "multipoint"
		}
		b, err := body("(", ")", kind)
		if err != nil {
			return Data{}, err
		}
		for _, p := range parseTuples(b) {
			d.addPoint(p)
		}
	case strings.HasPrefix(up, "LINESTRING"):
		b, err := body("(", ")", "linestring")
		if err != nil {
			return Data{}, err
		}
		d.addLine(parseTuples(b))
	case strings.HasPrefix(up, "MULTILINESTRING"):
		b, err := body("((", "))", "multilinestring")
		if err != nil {
			return Data{}, err
		}
		for _, part := range splitRings(b) {
			d.addLine(parseTuples(part))
		}
	case strings.HasPrefix(up, "POLYGON"):
		b, err := body("((", "))", "polygon")
		if err != nil {
			return Data{}, err
		}
		var poly [][]Vec2
		for _, rp := range splitRings(b) {
			if ring := parseTuples(rp); len(ring) > 0 {
				poly = append(poly, ring)
			}
		}
		d.addPolygon(poly)
	default:
		return Data{}, errors.New("unsupported wkt type")
	}
	if d.Empty() {
		return Data{}, errors.New("wkt: no coordinates parsed")
	}
	return d, nil
}
