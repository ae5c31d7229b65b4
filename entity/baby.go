package entity

import (
	"github.com/lixenwraith/zombies/asset"
	"github.com/lixenwraith/zombies/constants"
	"github.com/lixenwraith/zombies/ident"
	"github.com/lixenwraith/zombies/physics"
	"github.com/lixenwraith/zombies/vmath"
)

// InsertedBaby is a live baby zombie
type InsertedBaby struct {
	Inserted
	ID     ident.Identity
	Health float64
}

// NewBaby stages a stationary enemy at position
func NewBaby(sprite asset.Sprite, position vmath.Vec2) (*Insertable, ident.Identity) {
	id := ident.New()
	half := vmath.V2(constants.BabyHalfWidth, constants.BabyHalfHeight)

	body := physics.BodyDesc{
		Position:      position,
		Mass:          physics.BoxMass(constants.BabyDensity, half),
		FixedRotation: true,
		LinearDamping: constants.BabyLinearDamping,
		Kind:          ident.Enemy(id),
	}
	collider := &physics.ColliderDesc{HalfExtents: half, Friction: constants.DefaultFriction}

	return NewInsertable(sprite, body, collider), id
}
