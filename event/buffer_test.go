package event

import (
	"testing"

	"github.com/lixenwraith/zombies/constants"
	"github.com/lixenwraith/zombies/ident"
	"github.com/lixenwraith/zombies/vmath"
)

func TestBuffer_DrainOrder(t *testing.T) {
	b := NewBuffer(8)

	for i := 0; i < 5; i++ {
		b.Push(GameEvent{Type: EventBulletFired, Frame: int64(i)})
	}
	if b.Len() != 5 {
		t.Errorf("Expected 5 pending, got %d", b.Len())
	}

	events := b.Drain()
	if len(events) != 5 {
		t.Fatalf("Expected 5 events, got %d", len(events))
	}
	for i, ev := range events {
		if ev.Frame != int64(i) {
			t.Errorf("Expected frame %d at position %d, got %d", i, i, ev.Frame)
		}
	}

	if b.Drain() != nil {
		t.Error("Expected empty buffer after drain")
	}
	if b.Len() != 0 {
		t.Errorf("Expected 0 pending, got %d", b.Len())
	}
}

func TestBuffer_OverflowDropsOldest(t *testing.T) {
	b := NewBuffer(4)

	for i := 0; i < 7; i++ {
		b.Push(GameEvent{Type: EventEnemySpawned, Frame: int64(i)})
	}

	if b.Dropped() != 3 {
		t.Errorf("Expected 3 dropped, got %d", b.Dropped())
	}
	events := b.Drain()
	if len(events) != 4 {
		t.Fatalf("Expected 4 events, got %d", len(events))
	}
	for i, ev := range events {
		if want := int64(i + 3); ev.Frame != want {
			t.Errorf("Expected frame %d at position %d, got %d", want, i, ev.Frame)
		}
	}

	// Drop count survives draining; the ring is reusable
	b.Push(GameEvent{Type: EventBulletFired, Frame: 9})
	if got := b.Drain(); len(got) != 1 || got[0].Frame != 9 {
		t.Errorf("Expected single frame 9 event after reuse, got %+v", got)
	}
	if b.Dropped() != 3 {
		t.Errorf("Expected dropped count kept at 3, got %d", b.Dropped())
	}
}

func TestBuffer_WrapsAcrossDrains(t *testing.T) {
	b := NewBuffer(3)
	b.Push(GameEvent{Frame: 1})
	b.Push(GameEvent{Frame: 2})
	b.Push(GameEvent{Frame: 3})
	b.Push(GameEvent{Frame: 4})
	b.Drain()

	b.Push(GameEvent{Frame: 5})
	b.Push(GameEvent{Frame: 6})
	events := b.Drain()
	if len(events) != 2 || events[0].Frame != 5 || events[1].Frame != 6 {
		t.Errorf("Expected frames 5,6, got %+v", events)
	}
}

func TestNewBuffer_DefaultCapacity(t *testing.T) {
	if got := NewBuffer(0).Cap(); got != constants.EventBufferSize {
		t.Errorf("Expected default capacity %d, got %d", constants.EventBufferSize, got)
	}
	if got := NewBuffer(16).Cap(); got != 16 {
		t.Errorf("Expected capacity 16, got %d", got)
	}
}

func TestEmitHelpers_Payloads(t *testing.T) {
	b := NewBuffer(8)
	enemy, bullet := ident.New(), ident.New()

	EmitEnemyDestroyed(b, EnemyDestroyedPayload{Enemy: enemy, Bullet: bullet, Damage: 10, Position: vmath.V2(1, 2)}, 7)
	EmitBulletDestroyed(b, bullet, 7)

	events := b.Drain()
	if len(events) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(events))
	}
	if events[0].Type != EventEnemyDestroyed || events[1].Type != EventBulletDestroyed {
		t.Errorf("Expected EnemyDestroyed then BulletDestroyed, got %v then %v", events[0].Type, events[1].Type)
	}

	p, ok := events[0].Payload.(*EnemyDestroyedPayload)
	if !ok {
		t.Fatalf("Expected *EnemyDestroyedPayload, got %T", events[0].Payload)
	}
	if p.Enemy != enemy || p.Bullet != bullet || p.Damage != 10 {
		t.Errorf("Unexpected payload %+v", p)
	}

	bp := events[1].Payload.(*BulletDestroyedPayload)
	if bp.Bullet != bullet {
		t.Errorf("Expected bullet %v, got %v", bullet, bp.Bullet)
	}
	if events[1].Frame != 7 {
		t.Errorf("Expected frame 7, got %d", events[1].Frame)
	}
}

func TestEventType_String(t *testing.T) {
	if EventBulletFired.String() != "BulletFired" {
		t.Errorf("Expected BulletFired, got %s", EventBulletFired)
	}
	if EventType(999).String() != "Unknown" {
		t.Errorf("Expected Unknown, got %s", EventType(999))
	}
}
