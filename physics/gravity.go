package physics

import (
	"github.com/lixenwraith/gravity-eater/core"
	"github.com/lixenwraith/gravity-eater/vmath"
)

// GravityProfile defines attraction parameters toward a source
type GravityProfile struct {
	Strength float64 // Source gravity strength
	Mass     float64 // Source mass
	Epsilon  float64 // Softening added to d² to avoid the d→0 singularity
	MaxAccel float64 // Upper bound on acceleration magnitude
}

// GravityAccel returns acceleration magnitude at distance d: clamp(strength*mass / (d² + eps), 0, maxAccel)
func GravityAccel(profile *GravityProfile, d float64) float64 {
	return vmath.Clamp(profile.Strength*profile.Mass/(d*d+profile.Epsilon), 0, profile.MaxAccel)
}

// ApplyGravity accelerates k toward source when minDist < d < maxDist, returns true if pull was applied
// d is the current source distance; callers that already measured it pass it to avoid a second sqrt
func ApplyGravity(k *core.Kinetic, source vmath.Vec2, d, minDist, maxDist float64, profile *GravityProfile, dt float64) bool {
	if d >= maxDist || d <= minDist {
		return false
	}
	dir := vmath.V2Scale(vmath.V2Sub(source, k.Pos), 1/d)
	Accelerate(k, vmath.V2Scale(dir, GravityAccel(profile, d)), dt)
	return true
}
