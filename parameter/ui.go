package parameter

// Terminal Projection
const (
	// Logical units covered by one terminal cell; cells are roughly twice as tall as wide
	CellWidth  = 8.0
	CellHeight = 16.0
)

// HUD Layout
const (
	HUDLeft = 2 // Column of HUD text
	HUDTop  = 1 // Row of the first HUD line
)

// Banner Layout, as fractions of the screen
const (
	BannerLeft     = 0.15
	BannerTop      = 0.35
	BannerWidth    = 0.70
	BannerHeight   = 0.28
	BannerTitleRow = 0.45
	BannerSubRow   = 0.53
	BannerShade    = 0.45 // Black overlay alpha
)

// Player Halo
const (
	HaloOffset    = 5.0
	HaloAmplitude = 1.3
	HaloFrequency = 6.0 // Radians per second

	// HazardRingOffset draws the hazard outline just outside its body
	HazardRingOffset = 4.0
)
