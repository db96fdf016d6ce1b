package component

import "github.com/lixenwraith/gravity-eater/core"

// FoodComponent is a drifting particle the player captures for score and mass
type FoodComponent struct {
	core.Kinetic
	Radius float64
	Mass   float64
}
