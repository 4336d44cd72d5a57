// Package tui is the terminal viewer: it loads datasets, frames them with
// their bounding box and renders them on a braille canvas.
package tui

import (
	"os"

	list "github.com/charmbracelet/bubbles/list"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"geoplot/geom"
	"geoplot/internal/config"
	"geoplot/internal/source"
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	// view is the world region mapped onto the map area. Pan translates
	// it, zoom scales it about its center; zoom tracks the magnification
	// relative to the fitted view so it can be capped.
	view    geom.Box
	hasView bool
	zoom    float64

	status string

	// File explorer
	cwd     string
	l       list.Model
	selPath string

	// Loaded dataset
	data source.Data

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// layer visibility
	showPoints bool
	showLines  bool
	showPolys  bool

	// inspect popup
	inspectPopup string

	// hover state
	hovering   bool
	hoverCellX int
	hoverCellY int
	hoverMicX  int
	hoverMicY  int

	cfg config.Config
	log zerolog.Logger
}

func New(cfg config.Config, log zerolog.Logger) Model {
	m := Model{
		helpVisible: true,
		zoom:        1.0,
		status:      "geoplot ready",
		showPoints:  true,
		showLines:   true,
		showPolys:   true,
		cfg:         cfg,
		log:         log,
	}
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
	m.ta.Placeholder = "Paste WKT here (POINT, MULTIPOINT, LINESTRING, POLYGON). Press Enter to render; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	m.refreshDir()
	return m
}

// NewWithPath preloads a file's data at launch.
func NewWithPath(cfg config.Config, log zerolog.Logger, path string) Model {
	m := New(cfg, log)
	m.loadPath(path)
	return m
}

// setData installs a dataset and refits the view to it.
func (m *Model) setData(d source.Data) {
	m.data = d
	m.view = fitView(d, m.cfg)
	m.hasView = true
	m.zoom = 1.0
}

func (m Model) Init() tea.Cmd { return nil }
