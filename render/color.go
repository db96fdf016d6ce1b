package render

import "github.com/gdamore/tcell/v2"

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Palette
var (
	RgbBackground = RGB{7, 10, 18}
	RgbFood       = RGB{148, 255, 166}
	RgbHazard     = RGB{242, 106, 106}
	RgbHazardRing = RgbBackground.Blend(RgbHazard, 0.45)
	RgbHalo       = RgbBackground.Blend(RGB{110, 145, 255}, 0.35)
	RgbPlayer     = RGB{22, 26, 44}
	RgbHighlight  = RgbPlayer.Blend(RGB{255, 255, 255}, 0.1)
	RgbText       = RgbBackground.Blend(RGB{255, 255, 255}, 0.9)
	RgbBanner     = RGB{255, 255, 255}
	RGBBlack      = RGB{0, 0, 0}
)

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (dst RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return dst
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(dst.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(dst.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(dst.B)*inv),
	}
}

// ColorMode selects how RGB reaches the terminal
type ColorMode uint8

const (
	ColorModeTrueColor ColorMode = iota
	ColorMode256
	ColorModeMono
)

// ParseColorMode maps a config value to a mode; "auto" asks the screen
func ParseColorMode(name string, screen tcell.Screen) ColorMode {
	switch name {
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor
	case "256":
		return ColorMode256
	case "mono":
		return ColorModeMono
	}
	if screen == nil {
		return ColorModeTrueColor
	}
	switch n := screen.Colors(); {
	case n >= 1<<24:
		return ColorModeTrueColor
	case n > 0:
		return ColorMode256
	}
	return ColorModeMono
}

var palette256 = func() []tcell.Color {
	p := make([]tcell.Color, 256)
	for i := range p {
		p[i] = tcell.PaletteColor(i)
	}
	return p
}()

// toTcell converts rgb for the given mode
func toTcell(rgb RGB, mode ColorMode) tcell.Color {
	c := tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
	switch mode {
	case ColorMode256:
		return tcell.FindColor(c, palette256)
	case ColorModeMono:
		return tcell.ColorDefault
	}
	return c
}
