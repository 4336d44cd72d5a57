package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"geoplot/geom"
)

func pressRunes(m Model, key string, n int) Model {
	for i := 0; i < n; i++ {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
		m = next.(Model)
	}
	return m
}

func TestZoomIsCapped(t *testing.T) {
	m := Model{
		view:    geom.FromCorners(geom.V(0, 0), geom.V(10, 10)),
		hasView: true,
		zoom:    1.0,
	}

	m = pressRunes(m, "+", 200)
	require.LessOrEqual(t, m.zoom, float64(maxZoom)*zoomStep)
	require.Greater(t, m.view.Width(), 10.0/(maxZoom*zoomStep))

	m = pressRunes(m, "-", 400)
	require.GreaterOrEqual(t, m.zoom, minZoom/zoomStep)
	require.Less(t, m.view.Width(), 10.0/(minZoom/zoomStep)+1)
}

func TestZoomRequiresView(t *testing.T) {
	var m Model
	m = pressRunes(m, "+", 3)
	require.False(t, m.hasView)
	require.Equal(t, 0.0, m.zoom)
}
