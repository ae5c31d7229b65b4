package event

// EventType represents the type of gameplay event
type EventType int

const (
	// EventBulletFired signals a projectile was admitted into the world
	// Trigger: primary action | Payload: *BulletFiredPayload
	EventBulletFired EventType = iota + 1

	// EventEnemyDestroyed signals an enemy was removed by a projectile hit
	// Trigger: contact resolution | Payload: *EnemyDestroyedPayload
	EventEnemyDestroyed

	// EventBulletDestroyed signals a projectile was removed after a hit
	// Trigger: contact resolution | Payload: *BulletDestroyedPayload
	EventBulletDestroyed

	// EventEnemySpawned signals an enemy was admitted into the world
	// Trigger: startup spawn list, SpawnEnemy | Payload: *EnemySpawnedPayload
	EventEnemySpawned
)

var typeNames = map[EventType]string{
	EventBulletFired:     "BulletFired",
	EventEnemyDestroyed:  "EnemyDestroyed",
	EventBulletDestroyed: "BulletDestroyed",
	EventEnemySpawned:    "EnemySpawned",
}

func (t EventType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// GameEvent is a single queued event
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
