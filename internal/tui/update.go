package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"viewfit/internal/geom"
)

const (
	zoomStep = 1.2
	zoomMax  = 64
	zoomMin  = 0.05
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, m.layout().contentH-2)
		}
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			return m.updatePaste(msg)
		}
		if m.showAttrs || m.showXform {
			switch msg.String() {
			case "esc", "a", "t":
				m.showAttrs, m.showXform = false, false
				return m, nil
			case "up", "down", "pgup", "pgdown", "home", "end", "k", "j":
				var cmd tea.Cmd
				if m.showAttrs {
					m.tbl, cmd = m.tbl.Update(msg)
				} else {
					m.xtbl, cmd = m.xtbl.Update(msg)
				}
				return m, cmd
			}
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "1":
			m.showPoints = !m.showPoints
			m.status = fmt.Sprintf("points: %v", m.showPoints)
		case "2":
			m.showLines = !m.showLines
			m.status = fmt.Sprintf("lines: %v", m.showLines)
		case "3":
			m.showPolys = !m.showPolys
			m.status = fmt.Sprintf("polys: %v", m.showPolys)
		case "+", "=":
			m.zoomBy(zoomStep)
		case "-", "_":
			m.zoomBy(1 / zoomStep)
		case "0":
			m.resetView()
			m.status = "view reset"
			m.logView("reset")
		case "s":
			if m.mode == modeFit {
				m.mode = modeStretch
			} else {
				m.mode = modeFit
			}
			m.status = "projection: " + m.mode.String()
			m.logView("mode")
		case "y":
			m.invertY = !m.invertY
			m.status = fmt.Sprintf("invert y: %v", m.invertY)
			m.logView("invert")
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(sidebarWidth-2, m.layout().contentH-2)
			}
		case "p":
			m.pasteMode = true
			m.ta.SetValue("")
			m.status = "paste mode"
			m.ta.Focus()
		case "h":
			m.helpVisible = !m.helpVisible
		case "a":
			m.showXform = false
			m.showAttrs = m.refreshAttrs()
		case "t":
			m.showAttrs = false
			m.showXform = true
			m.status = "transform"
		case "i":
			m.inspect()
		case "esc":
			m.inspectPopup = ""
		case "l":
			all := m.showPoints && m.showLines && m.showPolys
			m.showPoints = !all
			m.showLines = !all
			m.showPolys = !all
			m.status = fmt.Sprintf("layers: pts=%v ls=%v poly=%v", m.showPoints, m.showLines, m.showPolys)
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
			}
		case "up":
			m.pan.Y--
		case "down":
			m.pan.Y++
		case "left":
			m.pan.X -= 2
		case "right":
			m.pan.X += 2
		}
		if m.showXform {
			m.refreshXform()
		}
	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.zoomBy(zoomStep)
		case tea.MouseButtonWheelDown:
			m.zoomBy(1 / zoomStep)
		}
		m.hover(msg.X, msg.Y)
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updatePaste(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pasteMode = false
		m.status = "view mode"
		m.ta.Blur()
		return m, nil
	case "enter":
		w := strings.TrimSpace(m.ta.Value())
		if w == "" {
			m.status = "paste: empty"
			return m, nil
		}
		d, err := geom.ParseWKT(w)
		if err != nil {
			m.status = "wkt error: " + err.Error()
			return m, nil
		}
		m.selPath = ""
		m.setData(d)
		m.status = "rendered WKT  counts: " + d.Counts()
		m.pasteMode = false
		m.ta.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

func (m *Model) zoomBy(f float64) {
	z := m.zoom * f
	if z > zoomMax || z < zoomMin {
		return
	}
	m.zoom = z
	m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
}

// hover tracks the mouse over the map: the data coordinate under the cursor
// and the nearest vertex, both through the current projection.
func (m *Model) hover(x, y int) {
	lo := m.layout()
	cx, cy := x-lo.mapX, y-lo.mapY
	if cx < 0 || cx >= lo.mapW || cy < 0 || cy >= lo.mapH {
		m.hovering = false
		m.hoverHasGeo = false
		return
	}
	pr := m.projection(lo.mapW, lo.mapH)
	m.hoverGeo, m.hoverHasGeo = pr.cellToData(cx, cy)

	cursor := geom.V(float64(cx*2), float64(cy*4))
	best := -1.0
	m.data.Vertices(func(p geom.Vec2) {
		mx, my, ok := pr.toMicro(p)
		if !ok {
			return
		}
		v := geom.V(float64(mx), float64(my))
		if d := v.Dist2(cursor); best < 0 || d < best {
			best = d
			m.hoverMicX, m.hoverMicY = mx, my
		}
	})
	m.hovering = best >= 0
}

// inspect builds the popup for the point nearest the centre of the map.
func (m *Model) inspect() {
	lo := m.layout()
	pr := m.projection(lo.mapW, lo.mapH)
	centre := geom.V(float64(lo.mapW/2), float64(lo.mapH/2))
	best := -1.0
	var nearest geom.Vec2
	for _, p := range m.data.Points {
		cx, cy, ok := pr.toCell(p)
		if !ok {
			continue
		}
		if d := geom.V(float64(cx), float64(cy)).Dist2(centre); best < 0 || d < best {
			best = d
			nearest = p
		}
	}
	if best < 0 {
		m.inspectPopup = "no feature nearby"
		m.status = m.inspectPopup
		return
	}
	name := filepath.Base(m.selPath)
	if m.selPath == "" {
		name = "<unsaved>"
	}
	meta := []string{
		fmt.Sprintf("name: %s", name),
		fmt.Sprintf("path: %s", m.selPath),
		fmt.Sprintf("bbox: %v", m.data.Bounds),
		fmt.Sprintf("visible: %v", pr.visible()),
		fmt.Sprintf("counts: %s", m.data.Counts()),
		fmt.Sprintf("nearest: lon=%.6f lat=%.6f", nearest.X, nearest.Y),
	}
	m.inspectPopup = strings.Join(meta, "\n")
	m.status = "inspect popup"
}
