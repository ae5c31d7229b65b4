package entity

import (
	"github.com/lixenwraith/zombies/asset"
	"github.com/lixenwraith/zombies/ident"
	"github.com/lixenwraith/zombies/physics"
	"github.com/lixenwraith/zombies/scene"
	"github.com/lixenwraith/zombies/vmath"
)

// Insertable is a fully described entity that does not yet exist in any world.
// It carries the sprite, the rigid body description and an optional collider.
// An Insertable is consumed exactly once: Take hands its parts over and seals it.
//
// Example usage:
//
//	ins, id := entity.NewBullet(sprite, pose.Position, pose.Rotation, weapon)
//	handles := entity.Admit(ins, physicsWorld, sc)
type Insertable struct {
	sprite   asset.Sprite
	body     physics.BodyDesc
	collider *physics.ColliderDesc
	taken    bool
}

// NewInsertable stages an entity from its parts. collider may be nil for entities
// that never touch anything.
func NewInsertable(sprite asset.Sprite, body physics.BodyDesc, collider *physics.ColliderDesc) *Insertable {
	return &Insertable{
		sprite:   sprite,
		body:     body,
		collider: collider,
	}
}

// Take decomposes the insertable into its parts.
// Panics if called a second time: an insertable can be admitted into a world only once.
func (i *Insertable) Take() (asset.Sprite, physics.BodyDesc, *physics.ColliderDesc) {
	if i.taken {
		panic("insertable already consumed - cannot take parts after Take()")
	}
	i.taken = true
	return i.sprite, i.body, i.collider
}

// Taken reports whether Take has been called
func (i *Insertable) Taken() bool {
	return i.taken
}

// Kind returns the kind tag that will be attached to the body
func (i *Insertable) Kind() ident.Kind {
	return i.body.Kind
}

// Body returns a copy of the staged body description
func (i *Insertable) Body() physics.BodyDesc {
	return i.body
}

// BodyInserter creates bodies and colliders; satisfied by *physics.World
type BodyInserter interface {
	InsertBody(desc physics.BodyDesc) physics.BodyHandle
	InsertCollider(desc physics.ColliderDesc, body physics.BodyHandle) (physics.ColliderHandle, bool)
}

// SpriteAdder creates sprite slots; satisfied by *scene.Scene
type SpriteAdder interface {
	Add(sprite asset.Sprite, pos vmath.Vec2) scene.SpriteID
}

// Admit inserts the staged entity and returns the handles naming its live parts.
// Order: body, then collider (it references the body handle), then sprite at the body's position.
// Every handle in the returned bundle is immediately usable.
func Admit(ins *Insertable, bodies BodyInserter, sprites SpriteAdder) HandleBundle {
	sprite, bodyDesc, colliderDesc := ins.Take()

	var h HandleBundle
	h.Body = bodies.InsertBody(bodyDesc)
	if colliderDesc != nil {
		h.Collider, _ = bodies.InsertCollider(*colliderDesc, h.Body)
	}
	h.Sprite = sprites.Add(sprite, bodyDesc.Position)

	return h
}
