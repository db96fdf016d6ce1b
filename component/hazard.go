package component

import "github.com/lixenwraith/gravity-eater/core"

// HazardComponent travels in a straight line from a viewport edge
// Lethal only while meaningfully larger than the player
type HazardComponent struct {
	core.Kinetic
	Radius float64
}
