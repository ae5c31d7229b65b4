package world

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/zombies/constants"
	"github.com/lixenwraith/zombies/entity"
	"github.com/lixenwraith/zombies/event"
	"github.com/lixenwraith/zombies/input"
	"github.com/lixenwraith/zombies/vmath"
)

// moveKeys maps movement keys to unit directions (y grows downward)
var moveKeys = map[input.Button]vmath.Vec2{
	input.Key('w'): {X: 0, Y: -1},
	input.Key('s'): {X: 0, Y: 1},
	input.Key('a'): {X: -1, Y: 0},
	input.Key('d'): {X: 1, Y: 0},
}

func isFire(b input.Button) bool {
	return b == input.Mouse(input.MouseLeft) || b == input.Key(' ')
}

// HandleButtonEvent records the press state; a fire press spawns a bullet immediately
func (w *World) HandleButtonEvent(b input.Button, pressed bool) {
	if pressed {
		w.pressed[b] = true
	} else {
		delete(w.pressed, b)
	}

	if pressed && isFire(b) {
		w.Fire()
	}
}

// HandlePointerMotion records the pointer position in world units
func (w *World) HandlePointerMotion(pos vmath.Vec2) {
	w.pointer = pos
	w.pointerSeen = true
}

// Fire spawns a bullet from the player's current pose
// Returns false if the player body cannot be resolved
func (w *World) Fire() bool {
	pose, ok := w.PlayerPose()
	if !ok {
		return false
	}

	ins, id := entity.NewBullet(w.sprites.bullet, pose.Position, pose.Rotation, w.weapon)
	w.InsertInsertable(ins)

	event.EmitBulletFired(w.events, id, pose.Position, pose.Rotation, w.frame)
	w.log.Debug("bullet fired",
		zap.Stringer("id", id),
		zap.Float64("angle_deg", vmath.RadToDeg(pose.Rotation)))
	return true
}

// applyControls turns held keys into a velocity change and the pointer into facing
func (w *World) applyControls() {
	body := w.player.Handles.Body

	var dir vmath.Vec2
	for b := range w.pressed {
		if d, ok := moveKeys[b]; ok {
			dir = dir.Add(d)
		}
	}
	if dir != (vmath.Vec2{}) {
		w.physics.ApplyVelocityChange(body, dir.Scale(constants.CharacterMoveImpulse))
	}

	if !w.pointerSeen {
		return
	}
	pose, ok := w.physics.BodyPosition(body)
	if !ok {
		return
	}
	w.physics.SetBodyRotation(body, vmath.AimAngle(pose.Position, w.pointer))
}
