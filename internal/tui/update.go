package tui

import (
	"fmt"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"geoplot/geom"
	"geoplot/internal/source"
)

const (
	zoomStep = 1.2
	maxZoom  = 64
	minZoom  = 0.05
	panStep  = 0.05
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, m.height-1-2) // provisional; refined in View
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
		case "l":
			all := m.showPoints && m.showLines && m.showPolys
			m.showPoints = !all
			m.showLines = !all
			m.showPolys = !all
			m.status = fmt.Sprintf("layers: pts=%v ls=%v poly=%v", m.showPoints, m.showLines, m.showPolys)
		case "+", "=":
			if m.hasView && m.zoom < maxZoom {
				m.zoom *= zoomStep
				m.view = zoomView(m.view, 1/zoomStep)
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.hasView && m.zoom > minZoom {
				m.zoom /= zoomStep
				m.view = zoomView(m.view, zoomStep)
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "f":
			m.view = fitView(m.data, m.cfg)
			m.hasView = true
			m.zoom = 1.0
			m.status = "view fit to data"
		case "up":
			if m.hasView {
				m.view = panView(m.view, 0, panStep)
			}
		case "down":
			if m.hasView {
				m.view = panView(m.view, 0, -panStep)
			}
		case "left":
			if m.hasView {
				m.view = panView(m.view, -panStep, 0)
			}
		case "right":
			if m.hasView {
				m.view = panView(m.view, panStep, 0)
			}
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(sidebarWidth-2, m.height-1-2)
			}
		case "p":
			m.pasteMode = !m.pasteMode
			if m.pasteMode {
				m.ta.SetValue("")
				m.status = "paste mode"
				m.ta.Focus()
			} else {
				m.status = "view mode"
				m.ta.Blur()
			}
		case "h":
			m.helpVisible = !m.helpVisible
		case "i":
			m.inspect()
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
			}
		case "esc":
			m.inspectPopup = ""
		}
	case tea.MouseMsg:
		m.updateHover(msg)
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
		m.ta.Blur()
		return m, nil
	case "enter":
		w := strings.TrimSpace(m.ta.Value())
		if w == "" {
			m.status = "paste: empty"
			return m, nil
		}
		d, err := source.ParseWKT(w)
		if err != nil {
			m.log.Warn().Err(err).Msg("wkt paste rejected")
			m.status = "wkt error: " + err.Error()
			return m, nil
		}
		m.setData(d)
		m.log.Info().Int("points", len(d.Points)).Msg("rendered pasted wkt")
		m.status = "rendered WKT"
		m.pasteMode = false
		m.ta.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

// inspect fills the popup with the dataset extent and the vertex nearest to
// the viewport center.
func (m *Model) inspect() {
	if !m.data.HasBounds {
		m.inspectPopup = "no dataset loaded"
		m.status = m.inspectPopup
		return
	}
	b := m.data.Bounds
	lower, upper := b.Corners()
	c := b.Center()
	meta := []string{
		fmt.Sprintf("path: %s", pathOrUnsaved(m.selPath)),
		fmt.Sprintf("bounds: [%.5f, %.5f] .. [%.5f, %.5f]", lower.X, lower.Y, upper.X, upper.Y),
		fmt.Sprintf("size: %.5f x %.5f  area: %.5f", b.Width(), b.Height(), b.Area()),
		fmt.Sprintf("center: (%.5f, %.5f)", c.X, c.Y),
		fmt.Sprintf("counts: pts=%d ls=%d poly=%d", len(m.data.Points), len(m.data.Lines), len(m.data.Polygons)),
	}
	if p, ok := m.nearestVertexToCenter(); ok {
		meta = append(meta, fmt.Sprintf("nearest: (%.6f, %.6f)", p.X, p.Y))
	}
	m.inspectPopup = strings.Join(meta, "\n")
	m.status = "inspect popup"
}

func pathOrUnsaved(p string) string {
	if p == "" {
		return "<unsaved>"
	}
	return p
}

// nearestVertexToCenter scans every vertex for the one closest to the
// viewport center in screen space.
func (m Model) nearestVertexToCenter() (geom.Vec, bool) {
	lay := m.layout()
	w, h := lay.mapWidth, lay.mapHeight
	cx, cy := w/2, h/2
	best := 1<<31 - 1
	var bestPt geom.Vec
	m.eachVertex(func(p geom.Vec) {
		sx, sy, ok := m.worldToCell(p, w, h)
		if !ok {
			return
		}
		dx, dy := sx-cx, sy-cy
		if d := dx*dx + dy*dy; d < best {
			best = d
			bestPt = p
		}
	})
	if best == 1<<31-1 {
		return geom.Vec{}, false
	}
	return bestPt, true
}

// eachVertex visits every vertex of every layer.
func (m Model) eachVertex(f func(geom.Vec)) {
	for _, p := range m.data.Points {
		f(p)
	}
	for _, ls := range m.data.Lines {
		for _, p := range ls {
			f(p)
		}
	}
	for _, poly := range m.data.Polygons {
		for _, ring := range poly {
			for _, p := range ring {
				f(p)
			}
		}
	}
}

// updateHover tracks the mouse over the map area and snaps to the nearest
// vertex on the braille microgrid.
func (m *Model) updateHover(msg tea.MouseMsg) {
	lay := m.layout()
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, lay.contentHeight-2)
	}
	cx, cy := msg.X, msg.Y
	if cx < lay.mapOriginX || cx >= lay.mapOriginX+lay.mapWidth ||
		cy < lay.mapOriginY || cy >= lay.mapOriginY+lay.mapHeight {
		m.hovering = false
		return
	}
	m.hovering = true
	m.hoverCellX = cx - lay.mapOriginX
	m.hoverCellY = cy - lay.mapOriginY
	hxMic := m.hoverCellX * 2
	hyMic := m.hoverCellY * 4
	best := 1<<31 - 1
	bx, by := hxMic, hyMic
	m.eachVertex(func(p geom.Vec) {
		mx, my, ok := m.worldToMicro(p, lay.mapWidth, lay.mapHeight)
		if !ok {
			return
		}
		dx, dy := mx-hxMic, my-hyMic
		if d := dx*dx + dy*dy; d < best {
			best = d
			bx, by = mx, my
		}
	})
	m.hoverMicX, m.hoverMicY = bx, by
}
