package physics

import (
	"math"

	"github.com/jakecoffman/cp"
	"go.uber.org/zap"

	"github.com/lixenwraith/zombies/constants"
	"github.com/lixenwraith/zombies/ident"
	"github.com/lixenwraith/zombies/vmath"
)

// Config holds simulation parameters
type Config struct {
	// TickRate is steps per simulated second; each Step advances 1/TickRate seconds
	TickRate int
}

// DefaultConfig returns a 60 Hz zero-gravity configuration
func DefaultConfig() Config {
	return Config{TickRate: constants.PhysicsTickRate}
}

type bodySlot struct {
	body      *cp.Body
	typ       BodyType
	kind      ident.Kind
	damping   float64
	colliders []ColliderHandle
}

// World is the simulation facade: it owns the engine space, body and collider storage,
// the kind side-table and the per-step contact event stream
// Not safe for concurrent use; the frame goroutine owns it
type World struct {
	space *cp.Space
	dt    float64

	bodies    map[BodyHandle]*bodySlot
	handles   map[*cp.Body]BodyHandle
	colliders map[ColliderHandle]*cp.Shape

	nextBody     BodyHandle
	nextCollider ColliderHandle

	events   []ContactEvent
	removing bool

	log *zap.Logger
}

// New creates an empty zero-gravity world
func New(cfg Config, log *zap.Logger) *World {
	if cfg.TickRate <= 0 {
		cfg.TickRate = constants.PhysicsTickRate
	}
	if log == nil {
		log = zap.NewNop()
	}

	space := cp.NewSpace()
	space.SetGravity(cp.Vector{})

	w := &World{
		space:     space,
		dt:        1 / float64(cfg.TickRate),
		bodies:    make(map[BodyHandle]*bodySlot, 64),
		handles:   make(map[*cp.Body]BodyHandle, 64),
		colliders: make(map[ColliderHandle]*cp.Shape, 64),
		events:    make([]ContactEvent, 0, 16),
		log:       log,
	}
	w.installContactHandler()

	return w
}

// TimeStep returns the simulated seconds per Step
func (w *World) TimeStep() float64 {
	return w.dt
}

// Step advances the simulation one fixed tick
// Events from the previous tick are discarded first; ContactEvents is valid until the next Step
func (w *World) Step() {
	w.events = w.events[:0]

	for _, slot := range w.bodies {
		if slot.typ == BodyDynamic && slot.damping > 0 {
			v := slot.body.Velocity()
			slot.body.SetVelocityVector(v.Mult(1 / (1 + w.dt*slot.damping)))
		}
	}

	w.space.Step(w.dt)
}

// ContactEvents returns the contacts produced by the last Step
// The slice is reused by the next Step; callers must not retain it
func (w *World) ContactEvents() []ContactEvent {
	return w.events
}

// InsertBody builds the described body in the space and returns its handle
func (w *World) InsertBody(desc BodyDesc) BodyHandle {
	var body *cp.Body
	switch desc.Type {
	case BodyStatic:
		body = cp.NewStaticBody()
	default:
		mass := desc.Mass
		if mass <= 0 {
			mass = 1
		}
		moment := desc.Moment
		if desc.FixedRotation {
			moment = math.Inf(1)
		} else if moment <= 0 {
			moment = mass
		}
		body = cp.NewBody(mass, moment)
	}

	body.SetPosition(toVector(desc.Position))
	body.SetAngle(desc.Rotation)
	if desc.Type == BodyDynamic {
		body.SetVelocityVector(toVector(desc.Velocity))
		body.SetAngularVelocity(desc.AngularVelocity)
	}

	w.space.AddBody(body)

	w.nextBody++
	h := w.nextBody
	w.bodies[h] = &bodySlot{
		body:    body,
		typ:     desc.Type,
		kind:    desc.Kind,
		damping: desc.LinearDamping,
	}
	w.handles[body] = h

	w.log.Debug("body inserted",
		zap.Uint64("body", uint64(h)),
		zap.Stringer("kind", desc.Kind),
		zap.Float64("x", desc.Position.X),
		zap.Float64("y", desc.Position.Y))

	return h
}

// InsertCollider attaches a box collider to an existing body
// Returns false if the body handle is stale
func (w *World) InsertCollider(desc ColliderDesc, body BodyHandle) (ColliderHandle, bool) {
	slot, ok := w.bodies[body]
	if !ok {
		return 0, false
	}

	shape := cp.NewBox(slot.body, 2*desc.HalfExtents.X, 2*desc.HalfExtents.Y, 0)
	shape.SetFriction(desc.Friction)
	shape.SetElasticity(desc.Elasticity)
	shape.SetSensor(desc.Sensor)
	shape.SetCollisionType(collisionTypeEntity)
	w.space.AddShape(shape)

	w.nextCollider++
	h := w.nextCollider
	w.colliders[h] = shape
	slot.colliders = append(slot.colliders, h)

	return h, true
}

// RemoveBody deletes a body and every collider attached to it
// Returns false if the handle is unknown, making double removal harmless
func (w *World) RemoveBody(h BodyHandle) bool {
	slot, ok := w.bodies[h]
	if !ok {
		return false
	}

	w.removing = true
	for _, ch := range slot.colliders {
		if shape, ok := w.colliders[ch]; ok {
			w.space.RemoveShape(shape)
			delete(w.colliders, ch)
		}
	}
	w.space.RemoveBody(slot.body)
	w.removing = false

	delete(w.handles, slot.body)
	delete(w.bodies, h)

	w.log.Debug("body removed", zap.Uint64("body", uint64(h)), zap.Stringer("kind", slot.kind))
	return true
}

// BodyPosition returns the current pose, or false for a stale handle
func (w *World) BodyPosition(h BodyHandle) (Pose, bool) {
	slot, ok := w.bodies[h]
	if !ok {
		return Pose{}, false
	}
	return Pose{
		Position: fromVector(slot.body.Position()),
		Rotation: slot.body.Angle(),
	}, true
}

// BodyKind returns the kind tag recorded for the body
// Returns false for a stale handle or an untagged body
func (w *World) BodyKind(h BodyHandle) (ident.Kind, bool) {
	slot, ok := w.bodies[h]
	if !ok || slot.kind.IsZero() {
		return ident.Kind{}, false
	}
	return slot.kind, true
}

// BodyVelocity returns the linear velocity, or false for a stale handle
func (w *World) BodyVelocity(h BodyHandle) (vmath.Vec2, bool) {
	slot, ok := w.bodies[h]
	if !ok {
		return vmath.Vec2{}, false
	}
	return fromVector(slot.body.Velocity()), true
}

// HasCollider reports whether the collider is still attached to a live body
func (w *World) HasCollider(h ColliderHandle) bool {
	_, ok := w.colliders[h]
	return ok
}

// BodyCount returns the number of live bodies
func (w *World) BodyCount() int {
	return len(w.bodies)
}

func toVector(v vmath.Vec2) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

func fromVector(v cp.Vector) vmath.Vec2 {
	return vmath.Vec2{X: v.X, Y: v.Y}
}
