package physics

import (
	"github.com/lixenwraith/gravity-eater/core"
	"github.com/lixenwraith/gravity-eater/vmath"
)

// Integrate advances position by velocity: p = p + v*dt
func Integrate(k *core.Kinetic, dt float64) {
	k.Pos = vmath.V2AddScaled(k.Pos, k.Vel, dt)
}

// Accelerate applies acceleration to velocity: v = v + a*dt
func Accelerate(k *core.Kinetic, accel vmath.Vec2, dt float64) {
	k.Vel = vmath.V2AddScaled(k.Vel, accel, dt)
}

// ClampSpeed limits velocity magnitude to maxSpeed preserving direction
func ClampSpeed(k *core.Kinetic, maxSpeed float64) {
	k.Vel = vmath.ClampMagnitude(k.Vel, maxSpeed)
}

// Damp scales velocity uniformly
func Damp(k *core.Kinetic, factor float64) {
	k.Vel = vmath.V2Scale(k.Vel, factor)
}

// ReflectBoundsX handles horizontal boundary collision for a circle of radius r, returns true if reflection occurred
// Position is clamped to the wall and X velocity multiplied by restitution (negative for a bounce)
func ReflectBoundsX(k *core.Kinetic, r, width, restitution float64) bool {
	if k.Pos.X < r {
		k.Pos.X = r
		k.Vel = vmath.ReflectAxisX(k.Vel, restitution)
		return true
	}
	if k.Pos.X > width-r {
		k.Pos.X = width - r
		k.Vel = vmath.ReflectAxisX(k.Vel, restitution)
		return true
	}
	return false
}

// ReflectBoundsY handles vertical boundary collision for a circle of radius r, returns true if reflection occurred
func ReflectBoundsY(k *core.Kinetic, r, height, restitution float64) bool {
	if k.Pos.Y < r {
		k.Pos.Y = r
		k.Vel = vmath.ReflectAxisY(k.Vel, restitution)
		return true
	}
	if k.Pos.Y > height-r {
		k.Pos.Y = height - r
		k.Vel = vmath.ReflectAxisY(k.Vel, restitution)
		return true
	}
	return false
}

// ReflectBounds handles both axis boundary collisions independently, returns true if any reflection occurred
func ReflectBounds(k *core.Kinetic, r float64, vp core.Viewport, restitution float64) bool {
	rx := ReflectBoundsX(k, r, vp.Width, restitution)
	ry := ReflectBoundsY(k, r, vp.Height, restitution)
	return rx || ry
}
