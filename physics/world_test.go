package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/zombies/ident"
	"github.com/lixenwraith/zombies/vmath"
)

const eps = 1e-9

func boxDesc(x, y float64, kind ident.Kind) BodyDesc {
	half := vmath.V2(10, 10)
	return BodyDesc{
		Position: vmath.V2(x, y),
		Mass:     BoxMass(1, half),
		Kind:     kind,
	}
}

func insertBox(t *testing.T, w *World, x, y float64, kind ident.Kind) (BodyHandle, ColliderHandle) {
	t.Helper()
	bh := w.InsertBody(boxDesc(x, y, kind))
	ch, ok := w.InsertCollider(ColliderDesc{HalfExtents: vmath.V2(10, 10)}, bh)
	if !ok {
		t.Fatalf("Expected collider insertion to succeed for body %d", bh)
	}
	return bh, ch
}

func TestInsertBody_PositionBeforeStep(t *testing.T) {
	w := New(DefaultConfig(), nil)

	h := w.InsertBody(BodyDesc{
		Position: vmath.V2(100, 60),
		Rotation: 0.5,
		Mass:     1,
	})

	if !h.IsValid() {
		t.Fatal("Expected valid body handle")
	}

	pose, ok := w.BodyPosition(h)
	if !ok {
		t.Fatal("Expected body position to resolve")
	}
	if !pose.Position.ApproxEqual(vmath.V2(100, 60), eps) {
		t.Errorf("Expected position (100, 60), got %v", pose.Position)
	}
	if math.Abs(pose.Rotation-0.5) > eps {
		t.Errorf("Expected rotation 0.5, got %v", pose.Rotation)
	}
}

func TestHandles_NeverReused(t *testing.T) {
	w := New(DefaultConfig(), nil)

	first := w.InsertBody(BodyDesc{Mass: 1})
	w.RemoveBody(first)
	second := w.InsertBody(BodyDesc{Mass: 1})

	if first == second {
		t.Errorf("Expected fresh handle after removal, got %d twice", first)
	}
	if _, ok := w.BodyPosition(first); ok {
		t.Error("Expected stale handle to resolve to absence")
	}
}

func TestRemoveBody_RemovesCollidersAndIsIdempotent(t *testing.T) {
	w := New(DefaultConfig(), nil)
	bh, ch := insertBox(t, w, 0, 0, ident.Enemy(ident.New()))

	if !w.HasCollider(ch) {
		t.Fatal("Expected collider to be attached")
	}

	if !w.RemoveBody(bh) {
		t.Fatal("Expected first removal to succeed")
	}
	if w.HasCollider(ch) {
		t.Error("Expected collider to be removed with its body")
	}
	if _, ok := w.BodyPosition(bh); ok {
		t.Error("Expected removed body to resolve to absence")
	}
	if _, ok := w.BodyKind(bh); ok {
		t.Error("Expected removed body kind to resolve to absence")
	}
	if w.RemoveBody(bh) {
		t.Error("Expected second removal to report false")
	}
	if w.BodyCount() != 0 {
		t.Errorf("Expected 0 bodies, got %d", w.BodyCount())
	}
}

func TestInsertCollider_StaleBody(t *testing.T) {
	w := New(DefaultConfig(), nil)
	bh := w.InsertBody(BodyDesc{Mass: 1})
	w.RemoveBody(bh)

	if _, ok := w.InsertCollider(ColliderDesc{HalfExtents: vmath.V2(1, 1)}, bh); ok {
		t.Error("Expected collider insertion on stale body to fail")
	}
}

func TestBodyKind_SideTable(t *testing.T) {
	w := New(DefaultConfig(), nil)
	id := ident.New()

	tagged := w.InsertBody(boxDesc(0, 0, ident.Bullet(id)))
	untagged := w.InsertBody(boxDesc(50, 0, ident.Kind{}))

	kind, ok := w.BodyKind(tagged)
	if !ok {
		t.Fatal("Expected tagged body kind to resolve")
	}
	if kind != ident.Bullet(id) {
		t.Errorf("Expected %v, got %v", ident.Bullet(id), kind)
	}

	if _, ok := w.BodyKind(untagged); ok {
		t.Error("Expected untagged body to report no kind")
	}
}

func TestStep_IntegratesVelocity(t *testing.T) {
	w := New(Config{TickRate: 10}, nil)
	h := w.InsertBody(BodyDesc{
		Position: vmath.V2(0, 0),
		Velocity: vmath.V2(0, -10),
		Mass:     1,
	})

	w.Step()

	pose, _ := w.BodyPosition(h)
	if !pose.Position.ApproxEqual(vmath.V2(0, -1), 1e-6) {
		t.Errorf("Expected (0, -1) after one 0.1s step, got %v", pose.Position)
	}
}

func TestStep_FixedRotationIgnoresContacts(t *testing.T) {
	w := New(DefaultConfig(), nil)

	desc := boxDesc(0, 0, ident.Kind{})
	desc.FixedRotation = true
	desc.Rotation = 0.25
	fixed := w.InsertBody(desc)
	w.InsertCollider(ColliderDesc{HalfExtents: vmath.V2(10, 10), Friction: 1}, fixed)

	// Off-center hit from a moving box
	hitter := w.InsertBody(BodyDesc{Position: vmath.V2(-40, 8), Velocity: vmath.V2(200, 0), Mass: 1})
	w.InsertCollider(ColliderDesc{HalfExtents: vmath.V2(5, 5), Friction: 1}, hitter)

	for i := 0; i < 60; i++ {
		w.Step()
	}

	pose, _ := w.BodyPosition(fixed)
	if math.Abs(pose.Rotation-0.25) > 1e-9 {
		t.Errorf("Expected rotation to stay 0.25, got %v", pose.Rotation)
	}
}

func TestContactEvents_StartedOncePerContact(t *testing.T) {
	w := New(DefaultConfig(), nil)
	a, _ := insertBox(t, w, 0, 0, ident.Bullet(ident.New()))
	b, _ := insertBox(t, w, 15, 0, ident.Enemy(ident.New()))

	w.Step()

	started := 0
	for _, ev := range w.ContactEvents() {
		if ev.Kind != ContactStarted {
			continue
		}
		started++
		pairOK := (ev.A == a && ev.B == b) || (ev.A == b && ev.B == a)
		if !pairOK {
			t.Errorf("Expected contact between %d and %d, got %d/%d", a, b, ev.A, ev.B)
		}
	}
	if started != 1 {
		t.Fatalf("Expected exactly 1 started event, got %d", started)
	}

	// Next step: previous events are gone, persisting contact does not restart
	w.Step()
	for _, ev := range w.ContactEvents() {
		if ev.Kind == ContactStarted {
			t.Errorf("Expected no new started event for persisting contact, got %+v", ev)
		}
	}
}

func TestContactEvents_StoppedAfterSeparation(t *testing.T) {
	w := New(DefaultConfig(), nil)
	a, _ := insertBox(t, w, 0, 0, ident.Kind{})
	b, _ := insertBox(t, w, 15, 0, ident.Kind{})

	w.Step()
	w.ApplyVelocityChange(a, vmath.V2(-300, 0))
	w.ApplyVelocityChange(b, vmath.V2(300, 0))

	stopped := false
	for i := 0; i < 60 && !stopped; i++ {
		w.Step()
		for _, ev := range w.ContactEvents() {
			if ev.Kind == ContactStopped {
				stopped = true
			}
		}
	}

	if !stopped {
		t.Error("Expected a stopped event after bodies separate")
	}
}

func TestRemoveBody_DoesNotEmitEvents(t *testing.T) {
	w := New(DefaultConfig(), nil)
	a, _ := insertBox(t, w, 0, 0, ident.Kind{})
	insertBox(t, w, 15, 0, ident.Kind{})

	w.Step()
	n := len(w.ContactEvents())

	w.RemoveBody(a)

	if got := len(w.ContactEvents()); got != n {
		t.Errorf("Expected removal to leave %d events, got %d", n, got)
	}
}

func TestApplyVelocityChange_MassIndependent(t *testing.T) {
	w := New(DefaultConfig(), nil)
	light := w.InsertBody(BodyDesc{Mass: 1})
	heavy := w.InsertBody(BodyDesc{Mass: 500})

	dv := vmath.V2(5, -5)
	w.ApplyVelocityChange(light, dv)
	w.ApplyVelocityChange(heavy, dv)

	for _, h := range []BodyHandle{light, heavy} {
		v, ok := w.BodyVelocity(h)
		if !ok {
			t.Fatalf("Expected velocity for body %d", h)
		}
		if !v.ApproxEqual(dv, 1e-9) {
			t.Errorf("Expected velocity %v for body %d, got %v", dv, h, v)
		}
	}
}

func TestApplyVelocityChange_StaticAndStale(t *testing.T) {
	w := New(DefaultConfig(), nil)
	static := w.InsertBody(BodyDesc{Type: BodyStatic, Position: vmath.V2(5, 5)})

	if w.ApplyVelocityChange(static, vmath.V2(1, 0)) {
		t.Error("Expected static body to reject velocity change")
	}
	if w.ApplyVelocityChange(BodyHandle(999), vmath.V2(1, 0)) {
		t.Error("Expected unknown handle to report false")
	}
}

func TestLinearDamping(t *testing.T) {
	w := New(DefaultConfig(), nil)
	damped := w.InsertBody(BodyDesc{Mass: 1, Velocity: vmath.V2(100, 0), LinearDamping: 1})
	free := w.InsertBody(BodyDesc{Mass: 1, Velocity: vmath.V2(100, 0)})

	for i := 0; i < 30; i++ {
		w.Step()
	}

	vd, _ := w.BodyVelocity(damped)
	vf, _ := w.BodyVelocity(free)

	if vd.X >= vf.X {
		t.Errorf("Expected damped body slower than free body, got %v vs %v", vd.X, vf.X)
	}
	if vd.X <= 0 {
		t.Errorf("Expected damped body still moving forward, got %v", vd.X)
	}
}

func TestSetBodyRotation(t *testing.T) {
	w := New(DefaultConfig(), nil)
	h := w.InsertBody(BodyDesc{Mass: 1, FixedRotation: true})

	if !w.SetBodyRotation(h, math.Pi) {
		t.Fatal("Expected rotation update to succeed")
	}
	pose, _ := w.BodyPosition(h)
	if math.Abs(pose.Rotation-math.Pi) > eps {
		t.Errorf("Expected rotation π, got %v", pose.Rotation)
	}

	w.RemoveBody(h)
	if w.SetBodyRotation(h, 0) {
		t.Error("Expected rotation update on stale handle to fail")
	}
}
