package physics

import "github.com/lixenwraith/zombies/vmath"

// ApplyVelocityChange adds dv to the body's velocity (mass-independent impulse)
// Returns false for a stale handle or a static body
func (w *World) ApplyVelocityChange(h BodyHandle, dv vmath.Vec2) bool {
	slot, ok := w.bodies[h]
	if !ok || slot.typ != BodyDynamic {
		return false
	}
	mass := slot.body.Mass()
	slot.body.ApplyImpulseAtLocalPoint(toVector(dv.Scale(mass)), toVector(vmath.Vec2{}))
	return true
}

// SetBodyRotation overrides the body's orientation without applying torque
// Used for cosmetic, input-derived facing
func (w *World) SetBodyRotation(h BodyHandle, angle float64) bool {
	slot, ok := w.bodies[h]
	if !ok {
		return false
	}
	slot.body.SetAngle(angle)
	return true
}
