package event

import (
	"github.com/lixenwraith/zombies/ident"
	"github.com/lixenwraith/zombies/vmath"
)

// BulletFiredPayload describes a fired projectile
type BulletFiredPayload struct {
	Bullet ident.Identity
	Origin vmath.Vec2
	Angle  float64 // radians
}

// EnemyDestroyedPayload describes an enemy removed by a hit
type EnemyDestroyedPayload struct {
	Enemy    ident.Identity
	Bullet   ident.Identity
	Damage   float64
	Health   float64 // health after damage; may still be positive
	Position vmath.Vec2
}

// BulletDestroyedPayload describes a projectile removed by a hit
type BulletDestroyedPayload struct {
	Bullet ident.Identity
}

// EnemySpawnedPayload describes an admitted enemy
type EnemySpawnedPayload struct {
	Enemy    ident.Identity
	Position vmath.Vec2
}
