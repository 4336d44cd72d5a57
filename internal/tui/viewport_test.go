package tui

import (
	"testing"

	"github.com/stretchr/testify/require"

	"geoplot/geom"
	"geoplot/internal/config"
	"geoplot/internal/source"
)

func testCfg() config.Config {
	return config.Config{MarginFrac: 0.05, DefaultExtentW: 360, DefaultExtentH: 180}
}

func TestFitViewAddsMargin(t *testing.T) {
	d := source.Data{Bounds: geom.FromCorners(geom.V(0, 0), geom.V(10, 10)), HasBounds: true}
	v := fitView(d, testCfg())
	require.InDelta(t, -0.5, v.Min.X, 1e-9)
	require.InDelta(t, -0.5, v.Min.Y, 1e-9)
	require.InDelta(t, 10.5, v.Max.X, 1e-9)
	require.InDelta(t, 10.5, v.Max.Y, 1e-9)
	require.InDelta(t, 5, v.Center().X, 1e-9)
	require.InDelta(t, 5, v.Center().Y, 1e-9)
}

func TestFitViewDegenerateBounds(t *testing.T) {
	// a single point still produces a view with positive spans
	d := source.Data{Bounds: geom.FromPoint(geom.V(3, 4)), HasBounds: true}
	v := fitView(d, testCfg())
	require.Greater(t, v.Width(), 0.0)
	require.Greater(t, v.Height(), 0.0)
	require.True(t, v.Contains(geom.V(3, 4)))

	// a horizontal line is degenerate on y only
	line := source.Data{Bounds: geom.FromCorners(geom.V(0, 5), geom.V(10, 5)), HasBounds: true}
	v = fitView(line, testCfg())
	require.Greater(t, v.Height(), 0.0)
	require.Greater(t, v.Width(), 10.0)
}

func TestFitViewFallback(t *testing.T) {
	v := fitView(source.Data{}, testCfg())
	require.Equal(t, geom.V(-180, -90), v.Min)
	require.Equal(t, geom.V(180, 90), v.Max)
}

func TestZoomAndPan(t *testing.T) {
	view := geom.FromCorners(geom.V(0, 0), geom.V(10, 10))

	in := zoomView(view, 0.5)
	require.Equal(t, view.Center(), in.Center())
	require.InDelta(t, 5.0, in.Width(), 1e-9)

	out := zoomView(view, 2)
	require.Equal(t, view.Center(), out.Center())
	require.InDelta(t, 20.0, out.Width(), 1e-9)

	moved := panView(view, 0.1, -0.2)
	require.InDelta(t, 1.0, moved.Min.X, 1e-9)
	require.InDelta(t, -2.0, moved.Min.Y, 1e-9)
	require.InDelta(t, view.Width(), moved.Width(), 1e-9)
}

func TestWorldToCell(t *testing.T) {
	m := Model{view: geom.FromCorners(geom.V(0, 0), geom.V(10, 10)), hasView: true}

	// world Y grows up, cell Y grows down
	sx, sy, ok := m.worldToCell(geom.V(0, 0), 11, 11)
	require.True(t, ok)
	require.Equal(t, 0, sx)
	require.Equal(t, 10, sy)

	sx, sy, ok = m.worldToCell(geom.V(10, 10), 11, 11)
	require.True(t, ok)
	require.Equal(t, 10, sx)
	require.Equal(t, 0, sy)

	sx, sy, ok = m.worldToCell(geom.V(5, 5), 11, 11)
	require.True(t, ok)
	require.Equal(t, 5, sx)
	require.Equal(t, 5, sy)
}

func TestWorldToCellNoView(t *testing.T) {
	var m Model
	_, _, ok := m.worldToCell(geom.V(1, 1), 80, 24)
	require.False(t, ok)
}

func TestCellToWorldRoundTrip(t *testing.T) {
	m := Model{view: geom.FromCorners(geom.V(-50, -25), geom.V(50, 25)), hasView: true}
	p, ok := m.cellToWorld(0, 0, 101, 51)
	require.True(t, ok)
	require.InDelta(t, -50, p.X, 1e-9)
	require.InDelta(t, 25, p.Y, 1e-9)

	sx, sy, ok := m.worldToCell(p, 101, 51)
	require.True(t, ok)
	require.Equal(t, 0, sx)
	require.Equal(t, 0, sy)
}
