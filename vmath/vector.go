package vmath

import "math"

// Vec2 is a float64 2D vector in logical viewport units
type Vec2 struct {
	X, Y float64
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// V2AddScaled returns a + b*s, the integration step v += a*dt
func V2AddScaled(a, b Vec2, s float64) Vec2 {
	return Vec2{a.X + b.X*s, a.Y + b.Y*s}
}

// Magnitude returns Euclidean vector length
func Magnitude(v Vec2) float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns Euclidean distance between two points
func Distance(a, b Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Normalize2D returns unit vector, zero-safe
// Vectors shorter than eps normalize to zero to avoid jitter near the origin
func Normalize2D(v Vec2, eps float64) Vec2 {
	mag := Magnitude(v)
	if mag <= eps || mag == 0 {
		return Vec2{}
	}
	inv := 1.0 / mag
	return Vec2{v.X * inv, v.Y * inv}
}

// ClampMagnitude limits vector to maxMag while preserving direction
// Returns unchanged vector if magnitude <= maxMag
func ClampMagnitude(v Vec2, maxMag float64) Vec2 {
	mag := Magnitude(v)
	if mag <= maxMag || mag == 0 {
		return v
	}
	return V2Scale(v, maxMag/mag)
}

// ReflectAxisX returns velocity reflected off a vertical wall scaled by restitution
// restitution is the signed factor applied to X, e.g. -0.7 for a soft bounce
func ReflectAxisX(v Vec2, restitution float64) Vec2 {
	return Vec2{v.X * restitution, v.Y}
}

// ReflectAxisY returns velocity reflected off a horizontal wall scaled by restitution
func ReflectAxisY(v Vec2, restitution float64) Vec2 {
	return Vec2{v.X, v.Y * restitution}
}
