package entity

import (
	"github.com/lixenwraith/zombies/asset"
	"github.com/lixenwraith/zombies/constants"
	"github.com/lixenwraith/zombies/ident"
	"github.com/lixenwraith/zombies/physics"
	"github.com/lixenwraith/zombies/vmath"
)

// InsertedCharacter is the live player
type InsertedCharacter struct {
	Inserted
	ID ident.Identity
}

// NewCharacter stages the player at spawn
// Infinite moment keeps contacts from spinning it; facing is set from input each frame
func NewCharacter(sprite asset.Sprite, spawn vmath.Vec2) (*Insertable, ident.Identity) {
	id := ident.New()
	half := vmath.V2(constants.CharacterHalfWidth, constants.CharacterHalfHeight)

	body := physics.BodyDesc{
		Position:      spawn,
		Mass:          physics.BoxMass(constants.CharacterDensity, half),
		FixedRotation: true,
		LinearDamping: constants.CharacterLinearDamping,
		Kind:          ident.Player(id),
	}
	collider := &physics.ColliderDesc{HalfExtents: half, Friction: constants.DefaultFriction}

	return NewInsertable(sprite, body, collider), id
}
