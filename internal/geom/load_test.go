package geom

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseWKT(t *testing.T) {
	tests := []struct {
		name   string
		wkt    string
		counts string
		bounds Rect
	}{
		{"point", "POINT (30 10)", "pts=1 ls=0 poly=0", R(30, 10, 30, 10)},
		{"multipoint", "MULTIPOINT ((10 40), (40 30), (20 20))", "pts=3 ls=0 poly=0", R(10, 20, 40, 40)},
		{"multipoint bare", "multipoint (10 40, 40 30)", "pts=2 ls=0 poly=0", R(10, 30, 40, 40)},
		{"linestring", "LINESTRING (30 10, 10 30, 40 40)", "pts=0 ls=1 poly=0", R(10, 10, 40, 40)},
		{"multilinestring", "MULTILINESTRING ((10 10, 20 20), (40 40, 30 30))", "pts=0 ls=2 poly=0", R(10, 10, 40, 40)},
		{"polygon with hole", "POLYGON ((35 10, 45 45, 15 40, 10 20, 35 10),\n (20 30, 35 35, 30 20, 20 30))", "pts=0 ls=0 poly=1", R(10, 10, 45, 45)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseWKT(tt.wkt)
			require.NoError(t, err)
			require.Equal(t, tt.counts, d.Counts())
			require.Equal(t, tt.bounds, d.Bounds)
		})
	}

	d, err := ParseWKT("POLYGON ((35 10, 45 45, 15 40, 10 20, 35 10), (20 30, 35 35, 30 20, 20 30))")
	require.NoError(t, err)
	require.Len(t, d.Polygons[0], 2)
	require.Len(t, d.Polygons[0][1], 4)
}

func TestParseWKTErrors(t *testing.T) {
	for _, in := range []string{"", "   ", "CIRCLE (1 2)", "POINT 1 2", "POLYGON (1 2, 3 4)", "LINESTRING (a b, c d)"} {
		_, err := ParseWKT(in)
		require.Error(t, err, "input %q", in)
	}
}

func TestDecodeGeoJSON(t *testing.T) {
	const fc = `{
	  "type": "FeatureCollection",
	  "features": [
	    {"type": "Feature", "properties": {"name": "a", "pop": 3},
	     "geometry": {"type": "Point", "coordinates": [1, 2]}},
	    {"type": "Feature", "properties": {"name": "b", "open": true},
	     "geometry": {"type": "LineString", "coordinates": [[0, 0], [4, -1]]}},
	    {"type": "Feature", "properties": null,
	     "geometry": {"type": "MultiPolygon", "coordinates": [[[[0,0],[1,0],[1,1],[0,0]]], [[[5,5],[6,5],[6,6],[5,5]]]]}}
	  ]
	}`
	d, err := DecodeGeoJSON(strings.NewReader(fc))
	require.NoError(t, err)
	require.Equal(t, "pts=1 ls=1 poly=2", d.Counts())
	require.Equal(t, R(0, -1, 6, 6), d.Bounds)
	require.Equal(t, []string{"name", "pop", "open"}, d.Columns)
	require.Equal(t, [][]string{{"a", "3", ""}, {"b", "", "true"}, {"", "", ""}}, d.Rows)
}

func TestDecodeGeoJSONBareGeometry(t *testing.T) {
	d, err := DecodeGeoJSON(strings.NewReader(`{"type":"GeometryCollection","geometries":[{"type":"Point","coordinates":[3,4]},{"type":"MultiPoint","coordinates":[[1,1],[2,2]]}]}`))
	require.NoError(t, err)
	require.Equal(t, "pts=3 ls=0 poly=0", d.Counts())
	require.Nil(t, d.Columns)

	_, err = DecodeGeoJSON(strings.NewReader(`{"type":"FeatureCollection","features":[]}`))
	require.ErrorIs(t, err, ErrNoGeometry)

	_, err = DecodeGeoJSON(strings.NewReader(`{"coordinates":[1,2]}`))
	require.Error(t, err)

	_, err = DecodeGeoJSON(strings.NewReader(`{`))
	require.Error(t, err)
}

func TestDecodeCSV(t *testing.T) {
	const in = "name, Latitude, lon\nx, 10, 20\nbad, nope, 1\ny, -5, 25\n"
	d, err := DecodeCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, []Vec2{V(20, 10), V(25, -5)}, d.Points)
	require.Equal(t, R(20, -5, 25, 10), d.Bounds)
	require.Equal(t, []string{"name", "Latitude", "lon"}, d.Columns)
	require.Len(t, d.Rows, 2)

	_, err = DecodeCSV(strings.NewReader("a,b\n1,2\n"))
	require.Error(t, err)
	_, err = DecodeCSV(strings.NewReader("lat,lon\nx,y\n"))
	require.ErrorIs(t, err, ErrNoGeometry)
}

func TestDecodeKML(t *testing.T) {
	const in = `<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2"><Document><Folder>
  <Placemark><name>pin</name><Point><coordinates>-122.08,37.42,0</coordinates></Point></Placemark>
  <Placemark><name>path</name><LineString><coordinates>-122.0,37.0 -121.0,38.0</coordinates></LineString></Placemark>
  <Placemark><name>area</name><MultiGeometry>
    <Polygon>
      <outerBoundaryIs><LinearRing><coordinates>0,0 4,0 4,4 0,0</coordinates></LinearRing></outerBoundaryIs>
      <innerBoundaryIs><LinearRing><coordinates>1,1 2,1 2,2 1,1</coordinates></LinearRing></innerBoundaryIs>
    </Polygon>
  </MultiGeometry></Placemark>
</Folder></Document></kml>`
	d, err := DecodeKML(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, "pts=1 ls=1 poly=1", d.Counts())
	require.Len(t, d.Polygons[0], 2)
	require.Equal(t, [][]string{{"pin"}, {"path"}, {"area"}}, d.Rows)
	require.Equal(t, R(-122.08, 0, 4, 38), d.Bounds)
}

func TestLoadByExtension(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "shape.WKT")
	require.NoError(t, os.WriteFile(p, []byte("LINESTRING (0 0, 1 1)"), 0o644))
	require.True(t, Supported(p))

	d, err := Load(p)
	require.NoError(t, err)
	require.Equal(t, R(0, 0, 1, 1), d.Bounds)

	_, err = Load(filepath.Join(dir, "missing.geojson"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(filepath.Join(dir, "shape.shp"))
	require.Error(t, err)
	require.False(t, Supported("shape.shp"))
}
