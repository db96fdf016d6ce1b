package render

import "github.com/gdamore/tcell/v2"

// Cell is one composited terminal cell
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
}

// Buffer is a cell compositor flushed to the screen once per frame
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a buffer with the specified dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts dimensions, reallocating only if capacity is insufficient
func (b *Buffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Size returns width and height in cells
func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

// Clear resets all cells to blank background using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Fg: RgbText, Bg: RgbBackground}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes a glyph with its foreground, keeping the background
func (b *Buffer) Set(x, y int, r rune, fg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	c := &b.cells[y*b.width+x]
	c.Rune = r
	c.Fg = fg
}

// Fill replaces the background and clears the glyph
func (b *Buffer) Fill(x, y int, bg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: ' ', Fg: RgbText, Bg: bg}
}

// Shade blends src over the background
func (b *Buffer) Shade(x, y int, src RGB, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	c := &b.cells[y*b.width+x]
	c.Bg = c.Bg.Blend(src, alpha)
}

// Text writes s starting at x, clipped to the buffer
func (b *Buffer) Text(x, y int, s string, fg RGB) {
	for _, r := range s {
		b.Set(x, y, r, fg)
		x++
	}
}

// TextCentered writes s centered on row y
func (b *Buffer) TextCentered(y int, s string, fg RGB) {
	n := len([]rune(s))
	b.Text((b.width-n)/2, y, s, fg)
}

// Cell returns the composited cell at x, y
func (b *Buffer) Cell(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// Flush copies the buffer to the screen in the given color mode
func (b *Buffer) Flush(screen tcell.Screen, mode ColorMode) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			style := tcell.StyleDefault
			if mode != ColorModeMono {
				style = style.Foreground(toTcell(c.Fg, mode)).Background(toTcell(c.Bg, mode))
			}
			screen.SetContent(x, y, c.Rune, nil, style)
		}
	}
}
