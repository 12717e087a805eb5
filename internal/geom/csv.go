package geom

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadCSV reads a CSV with latitude/longitude columns and returns its points.
// The whole table is kept as attributes.
func LoadCSV(path string) (Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return Data{}, err
	}
	defer f.Close()
	return DecodeCSV(f)
}

// DecodeCSV detects columns named lat|latitude|y and lon|lng|long|longitude|x
// (case-insensitive). Rows with unparsable coordinates are skipped.
func DecodeCSV(r io.Reader) (Data, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	recs, err := cr.ReadAll()
	if err != nil {
		return Data{}, fmt.Errorf("csv: %w", err)
	}
	if len(recs) == 0 {
		return Data{}, errors.New("empty csv")
	}
	header := recs[0]
	idxLat, idxLon := -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "lat", "latitude", "y":
			if idxLat == -1 {
				idxLat = i
			}
		case "lon", "lng", "long", "longitude", "x":
			if idxLon == -1 {
				idxLon = i
			}
		}
	}
	if idxLat == -1 || idxLon == -1 {
		return Data{}, errors.New("csv: latitude/longitude columns not found")
	}
	var d Data
	for _, row := range recs[1:] {
		if idxLon >= len(row) || idxLat >= len(row) {
			continue
		}
		lon, err1 := strconv.ParseFloat(strings.TrimSpace(row[idxLon]), 64)
		lat, err2 := strconv.ParseFloat(strings.TrimSpace(row[idxLat]), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		d.addPoint(V(lon, lat))
		vals := make([]string, len(header))
		copy(vals, row)
		d.Rows = append(d.Rows, vals)
	}
	if d.Empty() {
		return Data{}, fmt.Errorf("csv: %w", ErrNoGeometry)
	}
	d.Columns = header
	return d, nil
}
