package physics

import "github.com/jakecoffman/cp"

// ContactKind distinguishes the two edges of a contact
type ContactKind uint8

const (
	ContactStarted ContactKind = iota
	ContactStopped
)

func (k ContactKind) String() string {
	if k == ContactStarted {
		return "started"
	}
	return "stopped"
}

// ContactEvent reports that the colliders of two bodies began or stopped touching
type ContactEvent struct {
	Kind ContactKind
	A, B BodyHandle
}

// collisionTypeEntity is assigned to every collider so a single handler observes all pairs
const collisionTypeEntity cp.CollisionType = 1

// installContactHandler routes engine begin/separate callbacks into the event stream
func (w *World) installContactHandler() {
	handler := w.space.NewCollisionHandler(collisionTypeEntity, collisionTypeEntity)

	handler.BeginFunc = func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
		w.recordContact(ContactStarted, arb)
		return true
	}

	handler.SeparateFunc = func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) {
		w.recordContact(ContactStopped, arb)
	}
}

// recordContact appends an event unless either body is unknown to the facade
// Separations triggered by RemoveBody are dropped: events are produced by Step only
func (w *World) recordContact(kind ContactKind, arb *cp.Arbiter) {
	if w.removing {
		return
	}

	bodyA, bodyB := arb.Bodies()
	a, okA := w.handles[bodyA]
	b, okB := w.handles[bodyB]
	if !okA || !okB {
		return
	}

	w.events = append(w.events, ContactEvent{Kind: kind, A: a, B: b})
}
