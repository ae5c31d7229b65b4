package entity

import (
	"github.com/lixenwraith/zombies/physics"
	"github.com/lixenwraith/zombies/scene"
	"github.com/lixenwraith/zombies/vmath"
)

// HandleBundle names the parts of a live entity
// Collider is zero for entities admitted without one
type HandleBundle struct {
	Sprite   scene.SpriteID
	Body     physics.BodyHandle
	Collider physics.ColliderHandle
}

// PositionQuery resolves body poses; satisfied by *physics.World
type PositionQuery interface {
	BodyPosition(h physics.BodyHandle) (physics.Pose, bool)
}

// SceneMutator updates sprite transforms; satisfied by *scene.Scene
type SceneMutator interface {
	SetPosition(id scene.SpriteID, pos vmath.Vec2) bool
	SetRotation(id scene.SpriteID, degrees float64) bool
}

// Inserted is the live form of an entity
type Inserted struct {
	Handles HandleBundle
	// Oriented entities push their body rotation to the sprite
	Oriented bool
}

// Sync copies the body pose into the sprite
// Returns false without touching the scene when the body no longer exists
func (e *Inserted) Sync(q PositionQuery, m SceneMutator) bool {
	pose, ok := q.BodyPosition(e.Handles.Body)
	if !ok {
		return false
	}
	m.SetPosition(e.Handles.Sprite, pose.Position)
	if e.Oriented {
		m.SetRotation(e.Handles.Sprite, vmath.RadToDeg(pose.Rotation))
	}
	return true
}
