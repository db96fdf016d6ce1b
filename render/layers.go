package render

import (
	"math"

	"github.com/lixenwraith/gravity-eater/engine"
	"github.com/lixenwraith/gravity-eater/parameter"
	"github.com/lixenwraith/gravity-eater/vmath"
)

// Layer draws one part of a frame
type Layer interface {
	Render(snap *engine.Snapshot, buf *Buffer, proj Projection)
}

// Priority determines render order. Lower values render first
type Priority int

const (
	PriorityFood Priority = iota
	PriorityHazard
	PriorityPlayer
	PriorityHUD
	PriorityBanner
)

type foodLayer struct{}

func (foodLayer) Render(snap *engine.Snapshot, buf *Buffer, proj Projection) {
	for _, f := range snap.Foods {
		proj.glyphDisc(buf, f.Pos, f.Radius, '•', RgbFood)
	}
}

type hazardLayer struct{}

func (hazardLayer) Render(snap *engine.Snapshot, buf *Buffer, proj Projection) {
	for _, h := range snap.Hazards {
		proj.strokeRing(buf, h.Pos, h.Radius+parameter.HazardRingOffset, '·', RgbHazardRing)
		proj.fillDisc(buf, h.Pos, h.Radius, RgbHazard)
	}
}

type playerLayer struct{}

func (playerLayer) Render(snap *engine.Snapshot, buf *Buffer, proj Projection) {
	p := snap.Player
	halo := p.Radius + parameter.HaloOffset + math.Sin(snap.Time*parameter.HaloFrequency)*parameter.HaloAmplitude

	proj.strokeRing(buf, p.Pos, halo, '·', RgbHalo)
	proj.fillDisc(buf, p.Pos, p.Radius, RgbPlayer)

	hx, hy := proj.ToCell(vmath.V2AddScaled(p.Pos, vmath.Vec2{X: -1, Y: -1}, p.Radius*0.35))
	buf.Set(hx, hy, '∙', RgbHighlight)
}

type hudLayer struct{}

func (hudLayer) Render(snap *engine.Snapshot, buf *Buffer, _ Projection) {
	for i, line := range HUDLines(snap) {
		buf.Text(parameter.HUDLeft, parameter.HUDTop+i, line, RgbText)
	}
}

type bannerLayer struct{}

func (bannerLayer) Render(snap *engine.Snapshot, buf *Buffer, _ Projection) {
	title, lines, ok := Banner(snap)
	if !ok {
		return
	}

	w, h := buf.Size()
	fw, fh := float64(w), float64(h)
	x0, y0 := int(fw*parameter.BannerLeft), int(fh*parameter.BannerTop)
	x1, y1 := int(fw*(parameter.BannerLeft+parameter.BannerWidth)), int(fh*(parameter.BannerTop+parameter.BannerHeight))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			buf.Shade(x, y, RGBBlack, parameter.BannerShade)
		}
	}

	buf.TextCentered(int(fh*parameter.BannerTitleRow), title, RgbBanner)
	sub := int(fh * parameter.BannerSubRow)
	for i, line := range lines {
		buf.TextCentered(sub+i, line, RgbBanner)
	}
}
