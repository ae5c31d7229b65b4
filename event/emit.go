package event

import (
	"github.com/lixenwraith/zombies/ident"
	"github.com/lixenwraith/zombies/vmath"
)

// EmitBulletFired queues a fired-projectile event
func EmitBulletFired(b *Buffer, bullet ident.Identity, origin vmath.Vec2, angle float64, frame int64) {
	b.Push(GameEvent{
		Type:    EventBulletFired,
		Payload: &BulletFiredPayload{Bullet: bullet, Origin: origin, Angle: angle},
		Frame:   frame,
	})
}

// EmitEnemyDestroyed queues an enemy removal caused by a hit
func EmitEnemyDestroyed(b *Buffer, p EnemyDestroyedPayload, frame int64) {
	b.Push(GameEvent{Type: EventEnemyDestroyed, Payload: &p, Frame: frame})
}

// EmitBulletDestroyed queues a projectile removal caused by a hit
func EmitBulletDestroyed(b *Buffer, bullet ident.Identity, frame int64) {
	b.Push(GameEvent{
		Type:    EventBulletDestroyed,
		Payload: &BulletDestroyedPayload{Bullet: bullet},
		Frame:   frame,
	})
}

// EmitEnemySpawned queues an enemy admission event
func EmitEnemySpawned(b *Buffer, enemy ident.Identity, pos vmath.Vec2, frame int64) {
	b.Push(GameEvent{
		Type:    EventEnemySpawned,
		Payload: &EnemySpawnedPayload{Enemy: enemy, Position: pos},
		Frame:   frame,
	})
}
