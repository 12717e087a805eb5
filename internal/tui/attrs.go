package tui

import (
	"fmt"
	"path/filepath"
	"strconv"

	table "github.com/charmbracelet/bubbles/table"

	"viewfit/internal/geom"
)

const maxColW = 24

// refreshAttrs rebuilds the attribute table from the loaded dataset and
// reports whether there is anything to show.
func (m *Model) refreshAttrs() bool {
	cols, rows := m.attributes()
	if len(cols) == 0 || len(rows) == 0 {
		m.status = "no attributes for current dataset"
		return false
	}
	tcols := make([]table.Column, 0, len(cols)+1)
	tcols = append(tcols, table.Column{Title: "#", Width: 4})
	for _, c := range cols {
		tcols = append(tcols, table.Column{Title: c, Width: min(len(c)+2, maxColW)})
	}
	trows := make([]table.Row, 0, len(rows))
	for i, r := range rows {
		row := make(table.Row, len(tcols))
		row[0] = strconv.Itoa(i + 1)
		copy(row[1:], r)
		trows = append(trows, row)
	}
	// clear rows first so columns and rows never disagree mid-update
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(tcols)
	m.tbl.SetRows(trows)
	m.status = fmt.Sprintf("attributes: %d rows", len(trows))
	return true
}

// attributes returns the dataset's own table, or a one-row summary for
// formats that carry none.
func (m *Model) attributes() ([]string, [][]string) {
	if len(m.data.Columns) > 0 {
		return m.data.Columns, m.data.Rows
	}
	if m.selPath == "" {
		return nil, nil
	}
	cols := []string{"name", "bbox", "points", "lines", "polygons"}
	vals := []string{
		filepath.Base(m.selPath),
		m.data.Bounds.String(),
		strconv.Itoa(len(m.data.Points)),
		strconv.Itoa(len(m.data.Lines)),
		strconv.Itoa(len(m.data.Polygons)),
	}
	return cols, [][]string{vals}
}

// refreshXform fills the transform table with the parameters of the
// current projection.
func (m *Model) refreshXform() {
	lo := m.layout()
	pr := m.projection(lo.mapW, lo.mapH)
	vec := func(v geom.Vec2) string { return fmt.Sprintf("(%.6g, %.6g)", v.X, v.Y) }
	rows := []table.Row{
		{"mode", m.mode.String()},
		{"zoom", fmt.Sprintf("%.3fx", m.zoom)},
		{"invert y", strconv.FormatBool(m.invertY)},
		{"pan", vec(m.pan)},
	}
	if pr.ok {
		rows = append(rows,
			table.Row{"offset", vec(pr.micro.Offset)},
			table.Row{"scale", vec(pr.micro.Scale)},
			table.Row{"data", pr.bounds.String()},
			table.Row{"on screen", pr.dataRect().String()},
			table.Row{"view", pr.view.String()},
			table.Row{"visible", pr.visible().String()},
			table.Row{"cell size", vec(pr.cellSize())},
		)
	} else {
		rows = append(rows, table.Row{"transform", "no data"})
	}
	m.xtbl.SetRows(rows)
	m.xtbl.SetHeight(len(rows) + 1)
}
