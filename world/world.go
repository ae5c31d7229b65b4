package world

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/lixenwraith/zombies/asset"
	"github.com/lixenwraith/zombies/config"
	"github.com/lixenwraith/zombies/entity"
	"github.com/lixenwraith/zombies/event"
	"github.com/lixenwraith/zombies/ident"
	"github.com/lixenwraith/zombies/input"
	"github.com/lixenwraith/zombies/physics"
	"github.com/lixenwraith/zombies/scene"
	"github.com/lixenwraith/zombies/vmath"
)

// Sprite names every world requires from the asset library
const (
	SpritePlayer = "player"
	SpriteBullet = "bullet"
	SpriteBaby   = "baby"
)

// Collection selects a registry of removable entities
type Collection uint8

const (
	CollectionBullets Collection = iota + 1
	CollectionBabies
)

func (c Collection) String() string {
	switch c {
	case CollectionBullets:
		return "bullets"
	case CollectionBabies:
		return "babies"
	default:
		return "none"
	}
}

type sprites struct {
	player asset.Sprite
	bullet asset.Sprite
	baby   asset.Sprite
}

// World is the registry of live entities: it owns the simulation, the scene and the
// per-collection maps, and drives the frame cycle
// Not safe for concurrent use; the frame goroutine owns it
type World struct {
	physics *physics.World
	scene   *scene.Scene
	sprites sprites

	weapon      entity.Weapon
	enemyHealth float64

	player  *entity.InsertedCharacter
	bullets map[ident.Identity]*entity.InsertedBullet
	babies  map[ident.Identity]*entity.InsertedBaby

	pressed     map[input.Button]bool
	pointer     vmath.Vec2
	pointerSeen bool

	frame int64
	kills int

	events *event.Buffer
	log    *zap.Logger
}

// Option configures a World
type Option func(*World)

// WithLogger sets the logger; the default discards everything
func WithLogger(log *zap.Logger) Option {
	return func(w *World) {
		if log != nil {
			w.log = log
		}
	}
}

// WithEvents routes gameplay events into b instead of a private buffer
func WithEvents(b *event.Buffer) Option {
	return func(w *World) {
		if b != nil {
			w.events = b
		}
	}
}

// New builds the world from settings: the player at its spawn point and every configured enemy
func New(settings *config.Settings, assets *asset.Library, opts ...Option) (*World, error) {
	if err := assets.Require(SpritePlayer, SpriteBullet, SpriteBaby); err != nil {
		return nil, fmt.Errorf("world sprites: %w", err)
	}
	player, _ := assets.Sprite(SpritePlayer)
	bullet, _ := assets.Sprite(SpriteBullet)
	baby, _ := assets.Sprite(SpriteBaby)

	w := &World{
		scene:   scene.New(),
		sprites: sprites{player: player, bullet: bullet, baby: baby},
		weapon: entity.Weapon{
			Speed:    settings.Weapon.Speed,
			Standoff: settings.Weapon.Standoff,
			Damage:   settings.Weapon.Damage,
		},
		enemyHealth: settings.Enemy.Health,
		bullets:     make(map[ident.Identity]*entity.InsertedBullet, 64),
		babies:      make(map[ident.Identity]*entity.InsertedBaby, 16),
		pressed:     make(map[input.Button]bool, 8),
		log:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.events == nil {
		w.events = event.NewBuffer(settings.Events.Capacity)
	}

	w.physics = physics.New(physics.Config{TickRate: settings.Physics.TickRate}, w.log.Named("physics"))

	spawn := vmath.V2(settings.Player.SpawnPoint.X, settings.Player.SpawnPoint.Y)
	ins, _ := entity.NewCharacter(w.sprites.player, spawn)
	w.InsertInsertable(ins)

	for _, p := range settings.Enemy.Spawns {
		w.SpawnEnemy(vmath.V2(p.X, p.Y))
	}

	w.log.Info("world ready",
		zap.Stringer("player", w.player.ID),
		zap.Int("enemies", len(w.babies)),
		zap.Int("tick_rate", settings.Physics.TickRate),
		zap.Float64("dt", w.physics.TimeStep()))

	return w, nil
}

// InsertInsertable admits a staged entity and registers it by its kind
// Panics when a second player is inserted: a world has exactly one
func (w *World) InsertInsertable(ins *entity.Insertable) entity.HandleBundle {
	kind := ins.Kind()
	if kind.Is(ident.ClassPlayer) && w.player != nil {
		panic("world already has a player - cannot insert another")
	}

	h := entity.Admit(ins, w.physics, w.scene)

	switch kind.Class {
	case ident.ClassPlayer:
		w.player = &entity.InsertedCharacter{
			Inserted: entity.Inserted{Handles: h, Oriented: true},
			ID:       kind.ID,
		}
	case ident.ClassBullet:
		w.bullets[kind.ID] = &entity.InsertedBullet{
			Inserted: entity.Inserted{Handles: h, Oriented: true},
			ID:       kind.ID,
			Damage:   w.weapon.Damage,
		}
	case ident.ClassEnemy:
		w.babies[kind.ID] = &entity.InsertedBaby{
			Inserted: entity.Inserted{Handles: h},
			ID:       kind.ID,
			Health:   w.enemyHealth,
		}
	}

	return h
}

// SpawnEnemy admits a baby at pos and returns its identity
func (w *World) SpawnEnemy(pos vmath.Vec2) ident.Identity {
	ins, id := entity.NewBaby(w.sprites.baby, pos)
	w.InsertInsertable(ins)
	event.EmitEnemySpawned(w.events, id, pos, w.frame)
	w.log.Debug("enemy spawned", zap.Stringer("id", id), zap.Float64("x", pos.X), zap.Float64("y", pos.Y))
	return id
}

// RemoveEntity removes the body (with its colliders) and the sprite of a live entity,
// then drops its registry entry. Returns false if the identity is not in the collection.
func (w *World) RemoveEntity(id ident.Identity, c Collection) bool {
	var h entity.HandleBundle
	switch c {
	case CollectionBullets:
		b, ok := w.bullets[id]
		if !ok {
			return false
		}
		h = b.Handles
		delete(w.bullets, id)
	case CollectionBabies:
		b, ok := w.babies[id]
		if !ok {
			return false
		}
		h = b.Handles
		delete(w.babies, id)
	default:
		return false
	}

	w.physics.RemoveBody(h.Body)
	w.scene.Remove(h.Sprite)
	return true
}

// StepPhysics advances the simulation one fixed tick
func (w *World) StepPhysics() {
	w.physics.Step()
}

// Update runs one frame: controls, physics step, sprite sync, contact resolution
func (w *World) Update() {
	w.applyControls()
	w.StepPhysics()
	w.syncAll()
	w.resolveContacts(w.physics.ContactEvents())
	w.frame++
}

func (w *World) syncAll() {
	w.player.Sync(w.physics, w.scene)
	for _, b := range w.bullets {
		b.Sync(w.physics, w.scene)
	}
	for _, b := range w.babies {
		b.Sync(w.physics, w.scene)
	}
}

// Character returns the player
func (w *World) Character() *entity.InsertedCharacter {
	return w.player
}

// PlayerPose returns the player's current body pose
func (w *World) PlayerPose() (physics.Pose, bool) {
	return w.physics.BodyPosition(w.player.Handles.Body)
}

// Bullet returns a live bullet by identity
func (w *World) Bullet(id ident.Identity) (*entity.InsertedBullet, bool) {
	b, ok := w.bullets[id]
	return b, ok
}

// Baby returns a live baby by identity
func (w *World) Baby(id ident.Identity) (*entity.InsertedBaby, bool) {
	b, ok := w.babies[id]
	return b, ok
}

func (w *World) BulletCount() int { return len(w.bullets) }

func (w *World) BabyCount() int { return len(w.babies) }

// Kills returns the number of enemies destroyed so far
func (w *World) Kills() int { return w.kills }

// Frame returns the number of completed Updates
func (w *World) Frame() int64 { return w.frame }

// Events returns the gameplay event buffer
func (w *World) Events() *event.Buffer { return w.events }

// Physics exposes the simulation facade for read-only queries
func (w *World) Physics() *physics.World { return w.physics }

// Scene exposes the presentation scene
func (w *World) Scene() *scene.Scene { return w.scene }
