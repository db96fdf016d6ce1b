package core

import "github.com/lixenwraith/gravity-eater/vmath"

// Kinetic is the motion state shared by every entity
type Kinetic struct {
	// Pos is the entity center in logical viewport units
	Pos vmath.Vec2
	// Vel is velocity in units per second
	Vel vmath.Vec2
}
