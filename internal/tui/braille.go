package tui

// brailleBuf is a high-resolution drawing surface: each terminal cell holds
// a 2x4 grid of braille dots, addressed in "micro" coordinates.
type brailleBuf struct {
	w, h int // in cells
	m    [][]uint8
}

// Dot bit layout of U+2800..U+28FF, indexed by [column][row] within a cell.
var brailleBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	for i := range m {
		m[i] = make([]uint8, w)
	}
	return &brailleBuf{w: w, h: h, m: m}
}

// setPixel sets one micro-pixel. Out-of-range coordinates are dropped.
func (b *brailleBuf) setPixel(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, cy := mx/2, my/4
	if cx >= b.w || cy >= b.h {
		return
	}
	b.m[cy][cx] |= brailleBits[mx%2][my%4]
}

// drawLine draws a Bresenham line in micro coordinates. Segments are
// clipped to the buffer first so far off-screen endpoints cost nothing.
func (b *brailleBuf) drawLine(x0, y0, x1, y1 int) {
	var ok bool
	x0, y0, x1, y1, ok = clipSegment(x0, y0, x1, y1, b.w*2-1, b.h*4-1)
	if !ok {
		return
	}
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// toLines renders the buffer as one string per cell row.
func (b *brailleBuf) toLines() []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		row := make([]rune, b.w)
		for x := 0; x < b.w; x++ {
			if mask := b.m[y][x]; mask == 0 {
				row[x] = ' '
			} else {
				row[x] = rune(0x2800 + int(mask))
			}
		}
		out[y] = string(row)
	}
	return out
}

// clipSegment clips a segment to [0,maxX] x [0,maxY] (Liang-Barsky). The
// final bool is false when the segment misses the rectangle entirely.
func clipSegment(x0, y0, x1, y1, maxX, maxY int) (int, int, int, int, bool) {
	dx := float64(x1 - x0)
	dy := float64(y1 - y0)
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, float64(x0)},        // x >= 0
		{dx, float64(maxX - x0)},  // x <= maxX
		{-dy, float64(y0)},        // y >= 0
		{dy, float64(maxY - y0)},  // y <= maxY
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}
	return x0 + int(t0*dx), y0 + int(t0*dy), x0 + int(t1*dx), y0 + int(t1*dy), true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
