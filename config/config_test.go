package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/multierr"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad_RepoDefaults(t *testing.T) {
	t.Setenv(RunModeEnv, "development")

	cfg, err := Load(".")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
		t.Errorf("Expected 800x600 window, got %vx%v", cfg.Window.Width, cfg.Window.Height)
	}
	if len(cfg.Enemy.Spawns) != 2 {
		t.Errorf("Expected 2 enemy spawns, got %d", len(cfg.Enemy.Spawns))
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Expected development overlay to set debug level, got %q", cfg.Logging.Level)
	}
}

func TestLoad_Layering(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "default.toml", `
[window]
width = 1000.0
height = 500.0

[player.spawn_point]
x = 1.0
y = 2.0
`)
	writeFile(t, dir, "staging.toml", `
[window]
width = 640.0
`)
	writeFile(t, dir, "local.toml", `
[player.spawn_point]
x = 9.0
`)
	t.Setenv(RunModeEnv, "staging")
	t.Setenv(EnvPrefix+"PLAYER_SPAWN_POINT_Y", "42")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Window.Width != 640 {
		t.Errorf("Expected run-mode file to override width, got %v", cfg.Window.Width)
	}
	if cfg.Window.Height != 500 {
		t.Errorf("Expected default height 500 to survive, got %v", cfg.Window.Height)
	}
	if cfg.Player.SpawnPoint.X != 9 {
		t.Errorf("Expected local file to override x, got %v", cfg.Player.SpawnPoint.X)
	}
	if cfg.Player.SpawnPoint.Y != 42 {
		t.Errorf("Expected env to override y, got %v", cfg.Player.SpawnPoint.Y)
	}
	if cfg.Physics.TickRate != 60 {
		t.Errorf("Expected built-in tick rate 60, got %d", cfg.Physics.TickRate)
	}
}

func TestLoad_MissingDefaultIsError(t *testing.T) {
	if _, err := Load(t.TempDir()); err == nil {
		t.Error("Expected error when default.toml is missing")
	}
}

func TestLoad_ParseError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "default.toml", "[window\nwidth = ")

	if _, err := Load(dir); err == nil {
		t.Error("Expected parse error")
	}
}

func TestLoad_BadEnvValue(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "default.toml", "")
	t.Setenv(EnvPrefix+"PHYSICS_TICK_RATE", "fast")

	if _, err := Load(dir); err == nil {
		t.Error("Expected error for non-numeric tick rate")
	}
}

func TestValidate(t *testing.T) {
	cfg := Defaults()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected defaults to validate, got %v", err)
	}

	cfg.Window.Width = 0
	cfg.Physics.TickRate = -1
	cfg.Logging.Format = "xml"

	err := cfg.Validate()
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("Expected ErrInvalid, got %v", err)
	}
	if n := len(multierr.Errors(err)); n != 3 {
		t.Errorf("Expected 3 validation errors, got %d: %v", n, err)
	}
}

func TestApplyEnv(t *testing.T) {
	environ := map[string]string{
		"ZOMBIES_WINDOW_WIDTH":         "1024",
		"ZOMBIES_PLAYER_SPAWN_POINT_X": "12.5",
		"ZOMBIES_AUDIO_ENABLED":        "false",
		"ZOMBIES_LOGGING_FORMAT":       "json",
		"ZOMBIES_EVENTS_CAPACITY":      "32",
		"WINDOW_HEIGHT":                "1",
		"UNRELATED":                    "1",
	}

	cfg := Defaults()
	if err := applyEnv(cfg, environ); err != nil {
		t.Fatalf("applyEnv failed: %v", err)
	}

	if cfg.Window.Width != 1024 {
		t.Errorf("Expected width 1024, got %v", cfg.Window.Width)
	}
	if cfg.Window.Height != 600 {
		t.Errorf("Expected unprefixed variable ignored, got height %v", cfg.Window.Height)
	}
	if cfg.Player.SpawnPoint.X != 12.5 {
		t.Errorf("Expected spawn x 12.5, got %v", cfg.Player.SpawnPoint.X)
	}
	if cfg.Player.SpawnPoint.Y != 450 {
		t.Errorf("Expected spawn y untouched at 450, got %v", cfg.Player.SpawnPoint.Y)
	}
	if cfg.Audio.Enabled {
		t.Error("Expected audio disabled")
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Expected json format, got %q", cfg.Logging.Format)
	}
	if cfg.Events.Capacity != 32 {
		t.Errorf("Expected event capacity 32, got %d", cfg.Events.Capacity)
	}
}

func TestApplyEnv_BadValue(t *testing.T) {
	cfg := Defaults()
	err := applyEnv(cfg, map[string]string{"ZOMBIES_WEAPON_SPEED": "quick"})
	if err == nil {
		t.Fatal("Expected error for non-numeric weapon speed")
	}
	if !strings.HasPrefix(err.Error(), "env ZOMBIES_*: ") {
		t.Errorf("Expected wrapped env error, got %v", err)
	}
	if cfg.Weapon.Speed != 300 {
		t.Errorf("Expected speed untouched at 300, got %v", cfg.Weapon.Speed)
	}
}
