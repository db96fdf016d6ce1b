package render

import (
	"math"

	"github.com/lixenwraith/gravity-eater/parameter"
	"github.com/lixenwraith/gravity-eater/vmath"
)

// Projection maps logical viewport units to terminal cells
type Projection struct {
	CellWidth  float64
	CellHeight float64
}

func DefaultProjection() Projection {
	return Projection{CellWidth: parameter.CellWidth, CellHeight: parameter.CellHeight}
}

// LogicalSize returns the viewport covered by cols x rows cells
func (p Projection) LogicalSize(cols, rows int) (float64, float64) {
	return float64(cols) * p.CellWidth, float64(rows) * p.CellHeight
}

// ToCell returns the cell containing v
func (p Projection) ToCell(v vmath.Vec2) (int, int) {
	return int(math.Floor(v.X / p.CellWidth)), int(math.Floor(v.Y / p.CellHeight))
}

// CellCenter returns the logical center of cell x, y; mouse input maps through it
func (p Projection) CellCenter(x, y int) vmath.Vec2 {
	return vmath.Vec2{X: (float64(x) + 0.5) * p.CellWidth, Y: (float64(y) + 0.5) * p.CellHeight}
}

// eachInRadius calls fn for every cell whose center lies within r of c, and always for c's own cell
func (p Projection) eachInRadius(c vmath.Vec2, r float64, fn func(x, y int, d float64)) {
	x0, y0 := p.ToCell(vmath.Vec2{X: c.X - r, Y: c.Y - r})
	x1, y1 := p.ToCell(vmath.Vec2{X: c.X + r, Y: c.Y + r})
	cx, cy := p.ToCell(c)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			d := vmath.Distance(p.CellCenter(x, y), c)
			if d <= r || (x == cx && y == cy) {
				fn(x, y, d)
			}
		}
	}
}

// fillDisc paints the background of every cell covered by the disc
func (p Projection) fillDisc(buf *Buffer, c vmath.Vec2, r float64, bg RGB) {
	p.eachInRadius(c, r, func(x, y int, _ float64) {
		buf.Fill(x, y, bg)
	})
}

// glyphDisc writes glyph over every cell covered by the disc
func (p Projection) glyphDisc(buf *Buffer, c vmath.Vec2, r float64, glyph rune, fg RGB) {
	p.eachInRadius(c, r, func(x, y int, _ float64) {
		buf.Set(x, y, glyph, fg)
	})
}

// strokeRing writes glyph on cells whose centers lie within half a cell of the circle
func (p Projection) strokeRing(buf *Buffer, c vmath.Vec2, r float64, glyph rune, fg RGB) {
	half := math.Max(p.CellWidth, p.CellHeight) * 0.5
	p.eachInRadius(c, r+half, func(x, y int, d float64) {
		if math.Abs(d-r) <= half {
			buf.Set(x, y, glyph, fg)
		}
	})
}
