package world

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/zombies/event"
	"github.com/lixenwraith/zombies/ident"
	"github.com/lixenwraith/zombies/physics"
)

// contactRule reacts to a started contact between two classes
// apply receives the kinds ordered as (first, second)
type contactRule struct {
	first, second ident.Class
	apply         func(w *World, plan *removalPlan, first, second ident.Kind)
}

var contactRules = []contactRule{
	{ident.ClassBullet, ident.ClassEnemy, bulletHitsEnemy},
}

type removal struct {
	id         ident.Identity
	collection Collection
}

type hit struct {
	bullet ident.Identity
	damage float64
}

// removalPlan is the deduplicated outcome of one frame's contacts
type removalPlan struct {
	order []removal
	seen  map[ident.Identity]struct{}
	hits  map[ident.Identity]hit // enemy -> first bullet that hit it
}

func newRemovalPlan() *removalPlan {
	return &removalPlan{
		seen: make(map[ident.Identity]struct{}),
		hits: make(map[ident.Identity]hit),
	}
}

func (p *removalPlan) mark(id ident.Identity, c Collection) {
	if _, dup := p.seen[id]; dup {
		return
	}
	p.seen[id] = struct{}{}
	p.order = append(p.order, removal{id: id, collection: c})
}

func bulletHitsEnemy(w *World, plan *removalPlan, bullet, enemy ident.Kind) {
	damage := w.weapon.Damage
	if b, ok := w.bullets[bullet.ID]; ok {
		damage = b.Damage
	}

	plan.mark(bullet.ID, CollectionBullets)
	plan.mark(enemy.ID, CollectionBabies)
	if _, ok := plan.hits[enemy.ID]; !ok {
		plan.hits[enemy.ID] = hit{bullet: bullet.ID, damage: damage}
	}
}

// collectRemovals classifies started contacts without mutating anything
// Contacts whose bodies are gone or untagged are skipped
func (w *World) collectRemovals(events []physics.ContactEvent) *removalPlan {
	plan := newRemovalPlan()

	for _, ev := range events {
		if ev.Kind != physics.ContactStarted {
			continue
		}

		a, okA := w.physics.BodyKind(ev.A)
		b, okB := w.physics.BodyKind(ev.B)
		if !okA || !okB {
			w.log.Debug("contact skipped",
				zap.Uint64("a", uint64(ev.A)),
				zap.Uint64("b", uint64(ev.B)))
			continue
		}

		for _, r := range contactRules {
			switch {
			case a.Class == r.first && b.Class == r.second:
				r.apply(w, plan, a, b)
			case b.Class == r.first && a.Class == r.second:
				r.apply(w, plan, b, a)
			}
		}
	}

	return plan
}

// applyRemovals removes every planned entity once and reports the outcome
func (w *World) applyRemovals(plan *removalPlan) {
	for _, r := range plan.order {
		switch r.collection {
		case CollectionBabies:
			baby, ok := w.babies[r.id]
			if !ok {
				continue
			}
			h := plan.hits[r.id]
			baby.Health -= h.damage
			pose, _ := w.physics.BodyPosition(baby.Handles.Body)

			if w.RemoveEntity(r.id, CollectionBabies) {
				w.kills++
				event.EmitEnemyDestroyed(w.events, event.EnemyDestroyedPayload{
					Enemy:    r.id,
					Bullet:   h.bullet,
					Damage:   h.damage,
					Health:   baby.Health,
					Position: pose.Position,
				}, w.frame)
				w.log.Debug("enemy destroyed", zap.Stringer("id", r.id), zap.Float64("health", baby.Health))
			}

		case CollectionBullets:
			if w.RemoveEntity(r.id, CollectionBullets) {
				event.EmitBulletDestroyed(w.events, r.id, w.frame)
			}
		}
	}
}

func (w *World) resolveContacts(events []physics.ContactEvent) {
	if len(events) == 0 {
		return
	}
	w.applyRemovals(w.collectRemovals(events))
}
