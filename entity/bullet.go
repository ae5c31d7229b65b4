package entity

import (
	"github.com/lixenwraith/zombies/asset"
	"github.com/lixenwraith/zombies/constants"
	"github.com/lixenwraith/zombies/ident"
	"github.com/lixenwraith/zombies/physics"
	"github.com/lixenwraith/zombies/vmath"
)

// Weapon holds projectile parameters
type Weapon struct {
	Speed    float64 // units per second along the firing direction
	Standoff float64 // spawn distance ahead of the shooter
	Damage   float64
}

// DefaultWeapon returns the stock weapon
func DefaultWeapon() Weapon {
	return Weapon{
		Speed:    constants.BulletSpeed,
		Standoff: constants.BulletStandoff,
		Damage:   constants.BulletDamage,
	}
}

// InsertedBullet is a live projectile
type InsertedBullet struct {
	Inserted
	ID     ident.Identity
	Damage float64
}

// NewBullet stages a projectile fired from origin at angle (radians, 0 = up, clockwise)
// The bullet spawns Standoff units ahead of origin so it never overlaps the shooter,
// moves at Speed along the same direction and keeps the firing angle as a fixed rotation.
func NewBullet(sprite asset.Sprite, origin vmath.Vec2, angle float64, w Weapon) (*Insertable, ident.Identity) {
	id := ident.New()
	dir := vmath.Direction(angle)
	half := vmath.V2(constants.BulletHalfWidth, constants.BulletHalfHeight)

	body := physics.BodyDesc{
		Position:      origin.Add(dir.Scale(w.Standoff)),
		Rotation:      angle,
		Velocity:      dir.Scale(w.Speed),
		Mass:          physics.BoxMass(constants.BulletDensity, half),
		FixedRotation: true,
		Kind:          ident.Bullet(id),
	}
	collider := &physics.ColliderDesc{HalfExtents: half}

	return NewInsertable(sprite, body, collider), id
}
