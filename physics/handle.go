package physics

import (
	"github.com/lixenwraith/zombies/ident"
	"github.com/lixenwraith/zombies/vmath"
)

// BodyHandle names a body slot in the facade's storage
// Handles are allocated from a monotonic counter and never reused; zero is never valid
type BodyHandle uint64

// ColliderHandle names a collider slot; zero means "no collider"
type ColliderHandle uint64

// IsValid reports whether h was ever allocated
func (h BodyHandle) IsValid() bool { return h != 0 }

// IsValid reports whether h was ever allocated
func (h ColliderHandle) IsValid() bool { return h != 0 }

// Pose is a body's world transform
type Pose struct {
	Position vmath.Vec2
	Rotation float64 // radians, 0 = facing up
}

// BodyType selects how the engine integrates a body
type BodyType uint8

const (
	// BodyDynamic bodies are integrated and respond to contacts
	BodyDynamic BodyType = iota
	// BodyStatic bodies never move (scenery)
	BodyStatic
)

// BodyDesc fully describes a rigid body before it exists in any world
type BodyDesc struct {
	Type            BodyType
	Position        vmath.Vec2
	Rotation        float64
	Velocity        vmath.Vec2
	AngularVelocity float64

	// Mass must be positive for dynamic bodies; non-positive values fall back to 1
	Mass float64
	// Moment of inertia; ignored when FixedRotation is set
	Moment float64
	// FixedRotation gives the body infinite moment so contacts never spin it
	FixedRotation bool
	// LinearDamping is applied per step as v *= 1 / (1 + dt*LinearDamping)
	LinearDamping float64

	// Kind is recorded in the facade side-table under the returned handle
	Kind ident.Kind
}

// ColliderDesc describes a box collider attached to a body
type ColliderDesc struct {
	HalfExtents vmath.Vec2
	Friction    float64
	Elasticity  float64
	// Sensor colliders report contacts without a physical response
	Sensor bool
}

// BoxMass returns the mass of a solid box with the given half extents
func BoxMass(density float64, halfExtents vmath.Vec2) float64 {
	return density * 4 * halfExtents.X * halfExtents.Y
}
