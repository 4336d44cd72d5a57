package tui

import (
	"geoplot/geom"
	"geoplot/internal/config"
	"geoplot/internal/source"
)

// minViewSpan keeps the view box two-dimensional when the data extent is
// degenerate along an axis (single point, axis-parallel line).
const minViewSpan = 1e-9

// defaultView is the fallback extent centered on the origin, used when a
// dataset has no bounding box.
func defaultView(cfg config.Config) geom.Box {
	half := geom.V(cfg.DefaultExtentW/2, cfg.DefaultExtentH/2)
	return geom.FromCorners(half.Scale(-1), half)
}

// fitView frames a dataset: its bounding box padded on every side by the
// configured margin fraction.
func fitView(d source.Data, cfg config.Config) geom.Box {
	if !d.HasBounds {
		return defaultView(cfg)
	}
	b := d.Bounds
	if b.Width() <= minViewSpan {
		b = b.Insert(b.Center().Add(geom.V(-0.5, 0))).Insert(b.Center().Add(geom.V(0.5, 0)))
	}
	if b.Height() <= minViewSpan {
		b = b.Insert(b.Center().Add(geom.V(0, -0.5))).Insert(b.Center().Add(geom.V(0, 0.5)))
	}
	return scaleAbout(b, 1+2*cfg.MarginFrac, b.Center())
}

// scaleAbout scales b by s about a pivot point, composed from the library
// transforms.
func scaleAbout(b geom.Box, s float64, pivot geom.Vec) geom.Box {
	return b.Translate(pivot.Scale(-1)).Scale(s).Translate(pivot)
}

// zoomView scales the view about its center. factor > 1 zooms out.
func zoomView(view geom.Box, factor float64) geom.Box {
	return scaleAbout(view, factor, view.Center())
}

// panView shifts the view by a fraction of its own size per axis.
func panView(view geom.Box, fracX, fracY float64) geom.Box {
	return view.Translate(view.Size().Mul(geom.V(fracX, fracY)))
}

// worldToCell projects a world point into cell coordinates of a w x h map
// area. Y is flipped: larger world Y is up, larger cell Y is down.
func (m Model) worldToCell(p geom.Vec, w, h int) (int, int, bool) {
	if !m.hasView || m.view.Width() <= 0 || m.view.Height() <= 0 || w <= 1 || h <= 1 {
		return 0, 0, false
	}
	nx := (p.X - m.view.Min.X) / m.view.Width()
	ny := (p.Y - m.view.Min.Y) / m.view.Height()
	sx := int(nx * float64(w-1))
	sy := int((1 - ny) * float64(h-1))
	return sx, sy, true
}

// worldToMicro projects into the 2x4-per-cell braille microgrid.
func (m Model) worldToMicro(p geom.Vec, w, h int) (int, int, bool) {
	return m.worldToCell(p, w*2, h*4)
}

// cellToWorld inverts worldToCell for the center of a cell.
func (m Model) cellToWorld(cx, cy, w, h int) (geom.Vec, bool) {
	if !m.hasView || m.view.Width() <= 0 || m.view.Height() <= 0 || w <= 1 || h <= 1 {
		return geom.Vec{}, false
	}
	nx := float64(cx) / float64(w-1)
	ny := 1 - float64(cy)/float64(h-1)
	return m.view.Min.Add(m.view.Size().Mul(geom.V(nx, ny))), true
}
