package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"go.uber.org/multierr"

	"github.com/lixenwraith/zombies/constants"
)

// ErrInvalid marks settings that fail validation
var ErrInvalid = errors.New("invalid settings")

// RunModeEnv selects the optional per-environment file layered over default.toml
const RunModeEnv = "RUN_MODE"

type Settings struct {
	Window  WindowConfig  `toml:"window" envPrefix:"WINDOW_"`
	Player  PlayerConfig  `toml:"player" envPrefix:"PLAYER_"`
	Physics PhysicsConfig `toml:"physics" envPrefix:"PHYSICS_"`
	Weapon  WeaponConfig  `toml:"weapon" envPrefix:"WEAPON_"`
	Enemy   EnemyConfig   `toml:"enemy" envPrefix:"ENEMY_"`
	Events  EventsConfig  `toml:"events" envPrefix:"EVENTS_"`
	Logging LoggingConfig `toml:"logging" envPrefix:"LOGGING_"`
	Audio   AudioConfig   `toml:"audio" envPrefix:"AUDIO_"`
	Assets  AssetsConfig  `toml:"assets" envPrefix:"ASSETS_"`
}

type Point struct {
	X float64 `toml:"x" env:"X"`
	Y float64 `toml:"y" env:"Y"`
}

// WindowConfig is the visible world area in world units, fitted to the terminal
type WindowConfig struct {
	Width  float64 `toml:"width" env:"WIDTH"`
	Height float64 `toml:"height" env:"HEIGHT"`
}

type PlayerConfig struct {
	SpawnPoint Point `toml:"spawn_point" envPrefix:"SPAWN_POINT_"`
}

type PhysicsConfig struct {
	TickRate int `toml:"tick_rate" env:"TICK_RATE"` // steps per second
}

type WeaponConfig struct {
	Speed    float64 `toml:"speed" env:"SPEED"`
	Standoff float64 `toml:"standoff" env:"STANDOFF"`
	Damage   float64 `toml:"damage" env:"DAMAGE"`
}

type EnemyConfig struct {
	Health float64 `toml:"health" env:"HEALTH"`
	Spawns []Point `toml:"spawns"` // file-only
}

// EventsConfig sizes the per-frame gameplay event buffer
type EventsConfig struct {
	Capacity int `toml:"capacity" env:"CAPACITY"`
}

type LoggingConfig struct {
	Level  string `toml:"level" env:"LEVEL"`
	Format string `toml:"format" env:"FORMAT"` // "json" or "console"
	Debug  bool   `toml:"debug" env:"DEBUG"`   // write logs/zombies.log
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled" env:"ENABLED"`
	Volume  float64 `toml:"volume" env:"VOLUME"` // base-2 steps, 0 = unity
}

type AssetsConfig struct {
	Manifest string `toml:"manifest" env:"MANIFEST"` // empty selects the built-in sprites
}

// Load builds settings from dir: default.toml (required), then <RUN_MODE>.toml and
// local.toml (both optional), then ZOMBIES_* environment overrides
func Load(dir string) (*Settings, error) {
	cfg := defaults()

	if err := mergeFile(cfg, filepath.Join(dir, "default.toml"), true); err != nil {
		return nil, err
	}

	mode := os.Getenv(RunModeEnv)
	if mode == "" {
		mode = "development"
	}
	if err := mergeFile(cfg, filepath.Join(dir, mode+".toml"), false); err != nil {
		return nil, err
	}
	if err := mergeFile(cfg, filepath.Join(dir, "local.toml"), false); err != nil {
		return nil, err
	}

	if err := applyEnv(cfg, nil); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func mergeFile(cfg *Settings, path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Validate reports every out-of-range value at once
func (s *Settings) Validate() error {
	var errs error
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("%w: window %vx%v must be positive", ErrInvalid, s.Window.Width, s.Window.Height))
	}
	if s.Physics.TickRate <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("%w: physics.tick_rate %d must be positive", ErrInvalid, s.Physics.TickRate))
	}
	if s.Weapon.Speed <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("%w: weapon.speed %v must be positive", ErrInvalid, s.Weapon.Speed))
	}
	if s.Weapon.Standoff < 0 {
		errs = multierr.Append(errs, fmt.Errorf("%w: weapon.standoff %v must not be negative", ErrInvalid, s.Weapon.Standoff))
	}
	if s.Enemy.Health <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("%w: enemy.health %v must be positive", ErrInvalid, s.Enemy.Health))
	}
	if s.Events.Capacity <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("%w: events.capacity %d must be positive", ErrInvalid, s.Events.Capacity))
	}
	switch s.Logging.Format {
	case "json", "console":
	default:
		errs = multierr.Append(errs, fmt.Errorf("%w: logging.format %q", ErrInvalid, s.Logging.Format))
	}
	return errs
}

// Defaults returns the built-in settings used beneath every config file
func Defaults() *Settings {
	return defaults()
}

func defaults() *Settings {
	return &Settings{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			SpawnPoint: Point{X: 400, Y: 450},
		},
		Physics: PhysicsConfig{
			TickRate: constants.PhysicsTickRate,
		},
		Weapon: WeaponConfig{
			Speed:    constants.BulletSpeed,
			Standoff: constants.BulletStandoff,
			Damage:   constants.BulletDamage,
		},
		Enemy: EnemyConfig{
			Health: constants.BabyHealth,
		},
		Events: EventsConfig{
			Capacity: constants.EventBufferSize,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Audio: AudioConfig{
			Enabled: true,
		},
	}
}
