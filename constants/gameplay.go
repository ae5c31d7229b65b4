package constants

// Player Character
const (
	// CharacterHalfWidth and CharacterHalfHeight are the collider half extents
	CharacterHalfWidth  = 20.0
	CharacterHalfHeight = 20.0

	// CharacterDensity sets mass from collider area
	CharacterDensity = 1.0

	// CharacterLinearDamping bleeds velocity so the player stops when keys are released
	CharacterLinearDamping = 1.0

	// CharacterMoveImpulse is the velocity change applied per pressed movement key per frame
	CharacterMoveImpulse = 5.0
)

// Bullet
const (
	// BulletHalfWidth and BulletHalfHeight are the collider half extents
	BulletHalfWidth  = 5.0
	BulletHalfHeight = 5.0

	// BulletDensity sets mass from collider area
	BulletDensity = 0.1

	// BulletDamage is the default damage of the standard weapon
	BulletDamage = 10

	// BulletSpeed is the default muzzle speed in world units per second
	BulletSpeed = 300.0

	// BulletStandoff is the spawn offset from the shooter's center along the firing direction
	// Must exceed CharacterHalfHeight + BulletHalfHeight so a fresh bullet never overlaps its shooter
	BulletStandoff = 40.0
)

// Baby (enemy)
const (
	// BabyHalfWidth and BabyHalfHeight are the collider half extents
	BabyHalfWidth  = 50.0
	BabyHalfHeight = 25.0

	// BabyDensity sets mass from collider area
	BabyDensity = 0.1

	// BabyLinearDamping settles a baby after it is shoved
	BabyLinearDamping = 1.0

	// BabyHealth is the starting health of a spawned baby
	BabyHealth = 32
)

// Colliders
const (
	// DefaultFriction applies to solid, non-projectile colliders
	DefaultFriction = 0.5
)
