package physics

import "math"

// Body is the state of a circle that takes part in a collision.
type Body struct {
	Position Vector
	Velocity Vector
	Mass     float64
}

// Approaching reports whether two bodies are closing in on each other along the
// line connecting their centers. Bodies moving apart, or keeping their distance,
// are not approaching.
func Approaching(p1, v1, p2, v2 Vector) bool {
	return v2.Sub(v1).Dot(p2.Sub(p1)) < 0
}

// Elastic computes the velocities of two bodies after a perfectly elastic collision.
//
// Both velocities are rotated into the frame of the collision normal, the normal
// components are exchanged using the 1D elastic collision equation, and the result
// is rotated back. Tangential components are unchanged.
//
// The returned ok is false, and the input velocities are returned untouched, when the
// bodies are not approaching, share the same center, have a non-positive total mass,
// or the result would not be finite.
func Elastic(a, b Body) (va, vb Vector, ok bool) {
	va, vb = a.Velocity, b.Velocity

	delta := b.Position.Sub(a.Position)
	if delta.X == 0 && delta.Y == 0 {
		return va, vb, false
	}
	if !Approaching(a.Position, a.Velocity, b.Position, b.Velocity) {
		return va, vb, false
	}

	m1, m2 := a.Mass, b.Mass
	total := m1 + m2
	if total <= 0 {
		return va, vb, false
	}

	angle := -math.Atan2(delta.Y, delta.X)

	// Velocities in the collision frame
	u1 := Rotate(a.Velocity, angle)
	u2 := Rotate(b.Velocity, angle)

	// 1D elastic collision along the normal
	v1 := Vector{
		X: (u1.X*(m1-m2) + 2*m2*u2.X) / total,
		Y: u1.Y,
	}
	v2 := Vector{
		X: (u2.X*(m2-m1) + 2*m1*u1.X) / total,
		Y: u2.Y,
	}

	final1 := Rotate(v1, -angle)
	final2 := Rotate(v2, -angle)
	if !final1.IsFinite() || !final2.IsFinite() {
		return va, vb, false
	}

	return final1, final2, true
}
