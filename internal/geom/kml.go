package geom

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadKML reads Point, LineString and Polygon placemarks from a KML file.
func LoadKML(path string) (Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return Data{}, err
	}
	defer f.Close()
	return DecodeKML(f)
}

type kmlCoords struct {
	Coordinates string `xml:"coordinates"`
}

type kmlPolygon struct {
	Outer kmlCoords   `xml:"outerBoundaryIs>LinearRing"`
	Inner []kmlCoords `xml:"innerBoundaryIs>LinearRing"`
}

type kmlPlacemark struct {
	Name       string        `xml:"name"`
	Points     []kmlCoords   `xml:"Point"`
	LineString []kmlCoords   `xml:"LineString"`
	Polygons   []kmlPolygon  `xml:"Polygon"`
	Multi      *kmlPlacemark `xml:"MultiGeometry"`
}

// DecodeKML walks every Placemark, at any Folder/Document depth. KML
// coordinates are "lon,lat[,alt]"; altitude is ignored.
func DecodeKML(r io.Reader) (Data, error) {
	var d Data
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Data{}, fmt.Errorf("kml: %w", err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "Placemark" {
			continue
		}
		var pm kmlPlacemark
		if err := dec.DecodeElement(&pm, &se); err != nil {
			return Data{}, fmt.Errorf("kml: %w", err)
		}
		d.addPlacemark(&pm)
		d.Rows = append(d.Rows, []string{pm.Name})
	}
	if d.Empty() {
		return Data{}, fmt.Errorf("kml: %w", ErrNoGeometry)
	}
	d.Columns = []string{"name"}
	return d, nil
}

func (d *Data) addPlacemark(pm *kmlPlacemark) {
	for _, p := range pm.Points {
		for _, v := range parseKMLCoords(p.Coordinates) {
			d.addPoint(v)
		}
	}
	for _, ls := range pm.LineString {
		d.addLine(parseKMLCoords(ls.Coordinates))
	}
	for _, pg := range pm.Polygons {
		poly := [][]Vec2{parseKMLCoords(pg.Outer.Coordinates)}
		for _, in := range pg.Inner {
			poly = append(poly, parseKMLCoords(in.Coordinates))
		}
		d.addPolygon(poly)
	}
	if pm.Multi != nil {
		d.addPlacemark(pm.Multi)
	}
}

// parseKMLCoords splits whitespace separated "lon,lat[,alt]" tuples.
func parseKMLCoords(s string) []Vec2 {
	var out []Vec2
	for _, tuple := range strings.Fields(s) {
		vals := strings.Split(tuple, ",")
		if len(vals) < 2 {
			continue
		}
		lon, err1 := strconv.ParseFloat(strings.TrimSpace(vals[0]), 64)
		lat, err2 := strconv.ParseFloat(strings.TrimSpace(vals[1]), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		out = append(out, V(lon, lat))
	}
	return out
}
