package tui

import (
	"log"
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"viewfit/internal/geom"
)

// Options is the initial viewport configuration.
type Options struct {
	Stretch bool    // stretch each axis instead of fitting uniformly
	InvertY bool    // data Y grows upwards
	Zoom    float64 // zero means 1
}

// DefaultOptions suits geographic data: uniform fit, Y-up.
func DefaultOptions() Options {
	return Options{InvertY: true, Zoom: 1}
}

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	// viewport
	opts    Options
	mode    viewMode
	invertY bool
	zoom    float64
	pan     geom.Vec2 // in cells

	status string

	// file explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	data geom.Data

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// layer visibility
	showPoints bool
	showLines  bool
	showPolys  bool

	inspectPopup string

	// hover state
	hovering    bool
	hoverMicX   int
	hoverMicY   int
	hoverHasGeo bool
	hoverGeo    geom.Vec2

	// attributes and transform tables
	showAttrs bool
	tbl       table.Model
	showXform bool
	xtbl      table.Model
}

func New(opts Options) Model {
	m := Model{
		opts:        opts,
		helpVisible: true,
		status:      "viewfit ready",
		showPoints:  true,
		showLines:   true,
		showPolys:   true,
	}
	m.resetView()
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste WKT here (POINT, MULTIPOINT, LINESTRING, MULTILINESTRING, POLYGON). Press Enter to render; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.xtbl = table.New(table.WithColumns([]table.Column{
		{Title: "param", Width: 12},
		{Title: "value", Width: 44},
	}))
	m.refreshDir()
	return m
}

// NewWithPath preloads a file's data at launch.
func NewWithPath(path string, opts Options) Model {
	m := New(opts)
	m.loadPath(path)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// resetView restores the viewport to the launch options.
func (m *Model) resetView() {
	m.mode = modeFit
	if m.opts.Stretch {
		m.mode = modeStretch
	}
	m.invertY = m.opts.InvertY
	m.zoom = m.opts.Zoom
	if m.zoom == 0 {
		m.zoom = 1
	}
	m.pan = geom.Vec2{}
}

// layout holds the screen geometry shared by View and mouse handling.
type layout struct {
	contentW, contentH int
	sidebarW           int
	mapX, mapY         int
	mapW, mapH         int
}

const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
)

func (m Model) layout() layout {
	var lo layout
	lo.contentH = max(4, m.height-headerHeight-footerHeight)
	lo.contentW = max(10, m.width)
	if m.showSidebar {
		lo.sidebarW = sidebarWidth
		lo.mapX = sidebarWidth + 1
	}
	lo.mapY = headerHeight
	lo.mapW = max(10, lo.contentW-lo.sidebarW-1)
	lo.mapH = lo.contentH
	return lo
}

// projection derives the current data -> screen mapping for a w x h map.
func (m Model) projection(w, h int) projection {
	if m.data.Empty() {
		return projection{}
	}
	return newProjection(m.data.Bounds, w, h, m.mode, m.invertY, m.zoom, m.pan)
}

func (m Model) logView(reason string) {
	lo := m.layout()
	pr := m.projection(lo.mapW, lo.mapH)
	log.Printf("view %s: mode=%s zoom=%.3f invertY=%v pan=%v %v", reason, m.mode, m.zoom, m.invertY, m.pan, pr.micro)
}
