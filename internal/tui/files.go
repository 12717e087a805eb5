package tui

import (
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"viewfit/internal/geom"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !geom.Supported(name) {
			continue
		}
		ext := strings.ToLower(filepath.Ext(name))
		items = append(items, fileItem{title: name, desc: ext, path: filepath.Join(m.cwd, name)})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.items = items
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no supported files in current directory"
	}
}

// loadPath loads a supported file into the model.
func (m *Model) loadPath(p string) {
	d, err := geom.Load(p)
	if err != nil {
		m.status = "load error: " + err.Error()
		log.Printf("load %s: %v", p, err)
		return
	}
	m.selPath = p
	m.setData(d)
	m.status = "loaded: " + filepath.Base(p) + "  counts: " + d.Counts()
	log.Printf("load %s: %s bounds=%v", p, d.Counts(), d.Bounds)
	// If attributes are currently shown, verify availability for the new dataset
	if m.showAttrs {
		m.showAttrs = m.refreshAttrs()
	}
}

// setData swaps the dataset and resets the view so it is fully visible.
func (m *Model) setData(d geom.Data) {
	m.data = d
	m.resetView()
	m.inspectPopup = ""
	m.hovering, m.hoverHasGeo = false, false
	// prefer polys > lines > points for visibility
	m.showPolys = len(d.Polygons) > 0
	m.showLines = len(d.Lines) > 0 && !m.showPolys
	m.showPoints = len(d.Points) > 0 && len(d.Lines) == 0 && !m.showPolys
	if m.showXform {
		m.refreshXform()
	}
}
