package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

// Buffer is a cell buffer with a per-cell depth value so nearer geometry
// wins overdraw. Depth is normalized [0, 1], smaller is nearer
type Buffer struct {
	width, height int
	runes         []rune
	styles        []tcell.Style
	depth         []float64
}

// NewBuffer allocates a buffer for the given dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Reset(width, height)
	return b
}

// Reset resizes if needed and clears every cell
func (b *Buffer) Reset(width, height int) {
	n := width * height
	if n != len(b.runes) {
		b.runes = make([]rune, n)
		b.styles = make([]tcell.Style, n)
		b.depth = make([]float64, n)
	}
	b.width = width
	b.height = height
	for i := range b.runes {
		b.runes[i] = ' '
		b.styles[i] = tcell.StyleDefault
		b.depth[i] = math.Inf(1)
	}
}

// Size returns the buffer dimensions
func (b *Buffer) Size() (width, height int) {
	return b.width, b.height
}

// Plot writes a cell if it is in bounds and nearer than what is already
// there
func (b *Buffer) Plot(x, y int, depth float64, r rune, style tcell.Style) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	idx := y*b.width + x
	if depth > b.depth[idx] {
		return
	}
	b.runes[idx] = r
	b.styles[idx] = style
	b.depth[idx] = depth
}

// Print writes a text row ignoring depth, for HUD overlays
func (b *Buffer) Print(x, y int, text string, style tcell.Style) {
	for i, r := range text {
		cx := x + i
		if cx < 0 || cx >= b.width || y < 0 || y >= b.height {
			continue
		}
		idx := y*b.width + cx
		b.runes[idx] = r
		b.styles[idx] = style
		b.depth[idx] = -1 // UI always wins
	}
}

// Flush writes the buffer to the screen and shows it
func (b *Buffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			idx := y*b.width + x
			screen.SetContent(x, y, b.runes[idx], nil, b.styles[idx])
		}
	}
	screen.Show()
}
