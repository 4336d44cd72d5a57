package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const sidebarWidth = 28

type layout struct {
	contentWidth  int
	contentHeight int
	sidebarWidth  int
	mapOriginX    int
	mapOriginY    int
	mapWidth      int
	mapHeight     int
}

// layout computes the screen regions. Update and View must agree on these
// numbers or mouse hits drift off the map.
func (m Model) layout() layout {
	var lay layout
	if m.showSidebar {
		lay.sidebarWidth = sidebarWidth
	}
	headerHeight := 1
	footerHeight := 2
	lay.contentHeight = m.height - headerHeight - footerHeight
	if lay.contentHeight < 4 {
		lay.contentHeight = 4
	}
	lay.contentWidth = max(10, m.width)
	lay.mapWidth = lay.contentWidth - lay.sidebarWidth - 1
	if lay.mapWidth < 10 {
		lay.mapWidth = 10
	}
	lay.mapHeight = lay.contentHeight
	lay.mapOriginX = lay.sidebarWidth
	if m.showSidebar {
		lay.mapOriginX++
	}
	lay.mapOriginY = headerHeight
	return lay
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	lay := m.layout()

	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, lay.contentHeight-2)
	}

	// Header
	header := titleStyle.Render(" geoplot ─ terminal geometry viewer ")
	header = lipgloss.NewStyle().Width(lay.contentWidth).Render(header)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(lay.sidebarWidth).Render(m.l.View())
	}

	// Map viewport
	var canvas string
	if m.pasteMode {
		m.ta.SetWidth(lay.mapWidth)
		m.ta.SetHeight(min(lay.mapHeight, 12))
		canvas = m.ta.View()
	} else {
		canvas = m.renderMap(lay.mapWidth, lay.mapHeight)
	}
	mapView := lipgloss.NewStyle().Width(lay.mapWidth).Height(lay.mapHeight).Render(canvas)

	// Inspect popup overlay
	popup := ""
	if m.inspectPopup != "" {
		maxPopupW := min(56, lay.contentWidth/2)
		if maxPopupW < 20 {
			maxPopupW = 20
		}
		box := boxStyle.MaxWidth(maxPopupW).Render(m.inspectPopup)
		popup = lipgloss.Place(lay.contentWidth, lay.contentHeight, lipgloss.Left, lipgloss.Center, box)
	}

	// Body row
	body := mapView
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapView)
	}

	// Footer / help
	status := dimStyle.Render(" " + m.status + " ")
	footer := lipgloss.NewStyle().Width(lay.contentWidth).Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, status, m.renderHelp()))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, popup, body, footer)
	return appStyle.Width(lay.contentWidth).Height(m.height).Render(ui)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"↑↓←→ pan",
		"+/- zoom",
		"f fit",
		"Tab sidebar",
		"Enter open",
		"p paste",
		"i inspect",
		"l layers",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
