package tui

import (
	"sort"
	"strings"

	"geoplot/geom"
)

// renderMap draws the visible layers onto a w x h cell canvas backed by a
// braille microgrid.
func (m Model) renderMap(w, h int) string {
	lines := make([]string, h)
	blank := strings.Repeat(" ", w)
	for y := range lines {
		lines[y] = blank
	}
	br := newBrailleBuf(w, h)

	if m.showPolys {
		for _, poly := range m.data.Polygons {
			m.drawPolygon(br, poly, w, h)
		}
	}

	if m.showPoints {
		for _, p := range m.data.Points {
			if m.hasView && !m.view.Contains(p) {
				continue
			}
			mx, my, ok := m.worldToMicro(p, w, h)
			if !ok {
				continue
			}
			br.setPixel(mx, my)
		}
	}

	if m.showLines {
		for _, ls := range m.data.Lines {
			havePrev := false
			var px, py int
			for _, p := range ls {
				mx, my, ok := m.worldToMicro(p, w, h)
				if !ok {
					continue
				}
				if havePrev {
					br.drawLine(px, py, mx, my)
				}
				px, py = mx, my
				havePrev = true
			}
		}
	}

	// Composite braille overlay onto the base lines
	for y, row := range br.toLines() {
		if y >= h || row == blank {
			continue
		}
		base := []rune(lines[y])
		for x, r := range []rune(row) {
			if x < len(base) && r != ' ' {
				base[x] = r
			}
		}
		lines[y] = string(base)
	}

	// Hover highlight: a colored circle at the snapped vertex cell
	if m.hovering {
		cx := m.hoverMicX / 2
		cy := m.hoverMicY / 4
		if cy >= 0 && cy < len(lines) {
			r := []rune(lines[cy])
			if cx >= 0 && cx < len(r) {
				lines[cy] = string(r[:cx]) + hoverStyle.Render("◯") + string(r[cx+1:])
			}
		}
	}
	return strings.Join(lines, "\n")
}

// drawPolygon fills the outer ring with an even-odd scanline pass on the
// microgrid, then strokes every ring. Holes are not carved out of the fill.
func (m Model) drawPolygon(br *brailleBuf, poly [][]geom.Vec, w, h int) {
	var ringsMic [][][2]int
	for _, ring := range poly {
		var mic [][2]int
		for _, p := range ring {
			mx, my, ok := m.worldToMicro(p, w, h)
			if !ok {
				continue
			}
			mic = append(mic, [2]int{mx, my})
		}
		if len(mic) >= 3 {
			ringsMic = append(ringsMic, mic)
		}
	}
	if len(ringsMic) == 0 {
		return
	}

	outer := ringsMic[0]
	wMic := w * 2
	hMic := h * 4
	for yMic := 0; yMic < hMic; yMic++ {
		var xs []int
		for i := 0; i < len(outer); i++ {
			a := outer[i]
			b := outer[(i+1)%len(outer)]
			if a[1] == b[1] { // horizontal edge: skip
				continue
			}
			y0, y1 := a[1], b[1]
			x0, x1 := a[0], b[0]
			if (yMic >= y0 && yMic < y1) || (yMic >= y1 && yMic < y0) {
				t := float64(yMic-y0) / float64(y1-y0)
				xs = append(xs, int(float64(x0)+t*float64(x1-x0)))
			}
		}
		if len(xs) < 2 {
			continue
		}
		sort.Ints(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			start, end := xs[i], xs[i+1]
			if start > end {
				start, end = end, start
			}
			// spans are clamped to the buffer so off-view crossings
			// cost nothing
			for xMic := max(0, start); xMic <= min(end, wMic-1); xMic++ {
				br.setPixel(xMic, yMic)
			}
		}
	}

	for _, ring := range ringsMic {
		for i := 0; i < len(ring); i++ {
			a := ring[i]
			b := ring[(i+1)%len(ring)]
			br.drawLine(a[0], a[1], b[0], b[1])
		}
	}
}
