package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBrailleSetPixel(t *testing.T) {
	b := newBrailleBuf(2, 1)
	b.setPixel(0, 0)
	lines := b.toLines()
	require.Len(t, lines, 1)
	require.Equal(t, rune(0x2801), []rune(lines[0])[0])
	require.Equal(t, ' ', []rune(lines[0])[1])
}

func TestBrailleOutOfRangeIgnored(t *testing.T) {
	b := newBrailleBuf(2, 2)
	b.setPixel(-1, 0)
	b.setPixel(0, -3)
	b.setPixel(4, 0)
	b.setPixel(0, 8)
	for _, line := range b.toLines() {
		require.Equal(t, "  ", line)
	}
}

func TestBrailleDrawLine(t *testing.T) {
	b := newBrailleBuf(4, 1)
	b.drawLine(0, 0, 7, 0)
	// a horizontal line across the top row lights the top dots of each cell
	for _, r := range b.toLines()[0] {
		require.NotEqual(t, ' ', r)
	}
}

func TestBrailleDrawLineClipsHugeEndpoints(t *testing.T) {
	b := newBrailleBuf(4, 2)
	// endpoints a billion micro-pixels off-screen: only the on-screen
	// span may be walked
	b.drawLine(-1_000_000_000, 3, 1_000_000_000, 3)
	for _, r := range b.toLines()[0] {
		require.NotEqual(t, ' ', r)
	}
}

func TestBrailleDrawLineFullyOutside(t *testing.T) {
	b := newBrailleBuf(2, 2)
	b.drawLine(100, 0, 100, 100)
	b.drawLine(-5, -5, -1, -1)
	for _, line := range b.toLines() {
		require.Equal(t, "  ", line)
	}
}

func TestClipSegment(t *testing.T) {
	// diagonal through the rectangle keeps its interior portion
	x0, y0, x1, y1, ok := clipSegment(-10, -10, 10, 10, 7, 7)
	require.True(t, ok)
	require.Equal(t, 0, x0)
	require.Equal(t, 0, y0)
	require.Equal(t, 7, x1)
	require.Equal(t, 7, y1)

	// inside segment is untouched
	x0, y0, x1, y1, ok = clipSegment(1, 2, 3, 4, 7, 7)
	require.True(t, ok)
	require.Equal(t, [4]int{1, 2, 3, 4}, [4]int{x0, y0, x1, y1})

	_, _, _, _, ok = clipSegment(8, 0, 20, 0, 7, 7)
	require.False(t, ok)
}

func TestBrailleAllDots(t *testing.T) {
	b := newBrailleBuf(1, 1)
	for mx := 0; mx < 2; mx++ {
		for my := 0; my < 4; my++ {
			b.setPixel(mx, my)
		}
	}
	require.Equal(t, string(rune(0x28FF)), strings.TrimSpace(b.toLines()[0]))
}
