package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"viewfit/internal/geom"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func pasted(t *testing.T, wkt string) Model {
	t.Helper()
	m := send(t, New(DefaultOptions()), tea.WindowSizeMsg{Width: 60, Height: 20}, key("p"))
	require.True(t, m.pasteMode)
	m.ta.SetValue(wkt)
	m = send(t, m, key("enter"))
	require.False(t, m.pasteMode)
	return m
}

func TestPasteRendersPolygon(t *testing.T) {
	m := pasted(t, "POLYGON ((0 0, 10 0, 10 10, 0 10, 0 0))")
	require.Equal(t, "pts=0 ls=0 poly=1", m.data.Counts())
	require.True(t, m.showPolys)
	require.Contains(t, m.status, "rendered WKT")

	out := m.View()
	require.True(t, strings.ContainsRune(out, '⣿'), "filled polygon")
}

func TestPasteRejectsBadWKT(t *testing.T) {
	m := send(t, New(DefaultOptions()), tea.WindowSizeMsg{Width: 60, Height: 20}, key("p"))
	m.ta.SetValue("CIRCLE (1 2)")
	m = send(t, m, key("enter"))
	require.True(t, m.pasteMode)
	require.Contains(t, m.status, "wkt error")
	require.True(t, m.data.Empty())

	m = send(t, m, key("esc"))
	require.False(t, m.pasteMode)
}

func TestViewControls(t *testing.T) {
	m := pasted(t, "LINESTRING (0 0, 4 2, 8 8)")

	m = send(t, m, key("+"), key("+"))
	require.InDelta(t, 1.44, m.zoom, 1e-9)

	m = send(t, m, key("s"))
	require.Equal(t, modeStretch, m.mode)
	m = send(t, m, key("y"))
	require.False(t, m.invertY)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, geom.V(2, -1), m.pan)

	m = send(t, m, key("0"))
	require.Equal(t, modeFit, m.mode)
	require.True(t, m.invertY)
	require.Equal(t, 1.0, m.zoom)
	require.Equal(t, geom.Vec2{}, m.pan)
}

func TestTransformTable(t *testing.T) {
	m := pasted(t, "MULTIPOINT (0 0, 10 5)")
	m = send(t, m, key("t"))
	require.True(t, m.showXform)

	rows := map[string]string{}
	for _, r := range m.xtbl.Rows() {
		rows[r[0]] = r[1]
	}
	require.Equal(t, "fit", rows["mode"])
	require.Contains(t, rows, "scale")
	require.Contains(t, rows, "visible")

	m = send(t, m, key("esc"))
	require.False(t, m.showXform)
}

func TestHoverReportsDataCoordinates(t *testing.T) {
	m := pasted(t, "MULTIPOINT (0 0, 10 10)")
	lo := m.layout()
	pr := m.projection(lo.mapW, lo.mapH)

	cx, cy, ok := pr.toCell(geom.V(10, 10))
	require.True(t, ok)
	m = send(t, m, tea.MouseMsg{X: cx + lo.mapX, Y: cy + lo.mapY})
	require.True(t, m.hoverHasGeo)
	require.True(t, m.hovering)

	size := pr.cellSize()
	require.InDelta(t, 10, m.hoverGeo.X, size.X)
	require.InDelta(t, 10, m.hoverGeo.Y, size.Y)

	m = send(t, m, tea.MouseMsg{X: -1, Y: 0})
	require.False(t, m.hoverHasGeo)
}

func TestAttributesSummary(t *testing.T) {
	m := pasted(t, "POINT (1 2)")
	m = send(t, m, key("a"))
	require.False(t, m.showAttrs, "pasted data has no attributes")

	m.selPath = "/tmp/points.wkt"
	m = send(t, m, key("a"))
	require.True(t, m.showAttrs)
	require.Len(t, m.tbl.Rows(), 1)
}

func TestInspectNearest(t *testing.T) {
	m := pasted(t, "MULTIPOINT (0 0, 5 5, 10 10)")
	m = send(t, m, key("i"))
	require.Contains(t, m.inspectPopup, "nearest: lon=5.000000 lat=5.000000")
}
