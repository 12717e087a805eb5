package tui

import (
	"fmt"
	"strings"

	table "github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	lo := m.layout()

	// Update list size with accurate content height when sidebar visible
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, lo.contentH-2)
	}

	header := titleStyle.Render(" viewfit ─ " + m.mode.String() + " ")
	header = lipgloss.NewStyle().Width(lo.contentW).Render(header)

	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(lo.sidebarW).Render(m.l.View())
	}

	var mapView string
	switch {
	case m.showAttrs:
		mapView = m.renderTable(m.tbl, lo)
	case m.showXform:
		mapView = m.renderTable(m.xtbl, lo)
	case m.pasteMode:
		m.ta.SetWidth(lo.mapW)
		m.ta.SetHeight(min(lo.mapH, 12))
		mapView = lipgloss.NewStyle().Width(lo.mapW).Height(lo.mapH).Render(m.ta.View())
	default:
		// plain map canvas: no border, no background highlight
		mapView = lipgloss.NewStyle().Width(lo.mapW).Height(lo.mapH).Render(m.renderMap(lo.mapW, lo.mapH))
	}

	// inspect popup sits between header and body
	popup := ""
	if m.inspectPopup != "" && !m.showAttrs && !m.showXform {
		maxPopupW := max(20, min(48, lo.contentW/2))
		box := boxStyle.MaxWidth(maxPopupW).Render(m.inspectPopup)
		popup = lipgloss.Place(lo.contentW, lipgloss.Height(box), lipgloss.Left, lipgloss.Center, box)
	}

	body := mapView
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapView)
	}

	// Footer: status, help, and hover coordinates at the right
	help := m.renderHelp()
	status := dimStyle.Render(" " + m.status + " ")
	coords := ""
	if m.hoverHasGeo {
		coords = dimStyle.Render(fmt.Sprintf("  x=%.5f y=%.5f  ", m.hoverGeo.X, m.hoverGeo.Y))
	}
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, help)
	spacerW := max(0, lo.contentW-lipgloss.Width(left)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
	footer := lipgloss.NewStyle().Width(lo.contentW).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, popup, body, footer)
	return appStyle.Width(lo.contentW).Height(m.height).Render(ui)
}

// renderTable centres a table box in the map area.
func (m Model) renderTable(t table.Model, lo layout) string {
	colW := 0
	for _, c := range t.Columns() {
		colW += c.Width + 3
	}
	if colW == 0 {
		colW = min(60, lo.contentW-6)
	}
	maxW := min(lo.mapW, max(32, colW))
	t.SetWidth(maxW - 4)
	t.SetHeight(min(lo.mapH-2, 20))
	box := boxStyle.Width(maxW).Render(t.View())
	return lipgloss.Place(lo.mapW, lo.mapH, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"↑↓←→ pan",
		"+/- zoom",
		"s fit/stretch",
		"y flip",
		"0 reset",
		"Tab files",
		"p paste",
		"a attrs",
		"t transform",
		"i inspect",
		"l layers",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
