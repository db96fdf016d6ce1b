package core

import "github.com/lixenwraith/gravity-eater/vmath"

// Viewport is the play area in logical units, origin at top-left
type Viewport struct {
	Width, Height float64
}

// NewViewport returns a viewport with negative or NaN dimensions clamped to zero
func NewViewport(width, height float64) Viewport {
	return Viewport{
		Width:  vmath.Clamp(width, 0, maxViewportExtent),
		Height: vmath.Clamp(height, 0, maxViewportExtent),
	}
}

const maxViewportExtent = 1 << 20

// Center returns the viewport midpoint
func (v Viewport) Center() vmath.Vec2 {
	return vmath.Vec2{X: v.Width * 0.5, Y: v.Height * 0.5}
}

// Contains reports whether p lies inside the viewport expanded by margin on every side
func (v Viewport) Contains(p vmath.Vec2, margin float64) bool {
	return p.X >= -margin && p.X <= v.Width+margin &&
		p.Y >= -margin && p.Y <= v.Height+margin
}

// ClampPoint returns p clamped into [0, Width] x [0, Height]
func (v Viewport) ClampPoint(p vmath.Vec2) vmath.Vec2 {
	return vmath.Vec2{
		X: vmath.Clamp(p.X, 0, v.Width),
		Y: vmath.Clamp(p.Y, 0, v.Height),
	}
}
