package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/zombies/asset"
	"github.com/lixenwraith/zombies/audio"
	"github.com/lixenwraith/zombies/config"
	"github.com/lixenwraith/zombies/constants"
	"github.com/lixenwraith/zombies/event"
	"github.com/lixenwraith/zombies/input"
	"github.com/lixenwraith/zombies/scene"
	"github.com/lixenwraith/zombies/vmath"
	"github.com/lixenwraith/zombies/world"
)

var (
	configDir = flag.String("config", "config", "Directory holding default.toml and its overrides")
	debugFlag = flag.Bool("debug", false, "Write debug logs to logs/zombies.log")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	settings, err := config.Load(*configDir)
	if err != nil {
		return err
	}
	if *debugFlag {
		settings.Logging.Debug = true
		settings.Logging.Level = "debug"
	}

	log, err := newLogger(settings.Logging)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer log.Sync()

	lib, err := loadAssets(settings.Assets)
	if err != nil {
		return err
	}
	log.Debug("sprites loaded", zap.Strings("names", lib.Names()), zap.String("manifest", settings.Assets.Manifest))

	events := event.NewBuffer(settings.Events.Capacity)
	w, err := world.New(settings, lib, world.WithLogger(log), world.WithEvents(events))
	if err != nil {
		return err
	}

	sound := audio.NewSoundManager(settings.Audio.Volume)
	if settings.Audio.Enabled {
		if err := sound.Initialize(); err != nil {
			// Non-fatal, game runs silent
			log.Warn("audio unavailable", zap.Error(err))
		}
	}
	defer sound.Cleanup()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			sound.Cleanup()
			reportCrash(log, r, debug.Stack(), os.Stderr)
			os.Exit(1)
		}
	}()

	translator := input.NewTranslator(w, constants.KeyRepeatDelay, constants.KeyHoldTimeout)

	g := &game{
		screen:     screen,
		world:      w,
		events:     events,
		translator: translator,
		sound:      sound,
		window:     settings.Window,
		log:        log,
	}
	return g.loop(time.Second / time.Duration(settings.Physics.TickRate))
}

// reportCrash logs a recovered panic, flushes the logger and prints the crash to out
// os.Exit skips deferred calls, so the flush must happen here
func reportCrash(log *zap.Logger, r any, stack []byte, out io.Writer) {
	log.Error("panic", zap.Any("recovered", r), zap.ByteString("stack", stack))
	_ = log.Sync()
	fmt.Fprintf(out, "\nZOMBIES CRASHED: %v\nStack Trace:\n%s\n", r, stack)
}

func loadAssets(cfg config.AssetsConfig) (*asset.Library, error) {
	if cfg.Manifest == "" {
		return asset.Default()
	}
	return asset.Load(cfg.Manifest)
}

type game struct {
	screen     tcell.Screen
	world      *world.World
	events     *event.Buffer
	dropped    uint64
	translator *input.Translator
	sound      *audio.SoundManager
	window     config.WindowConfig
	log        *zap.Logger
}

// loop runs one simulation step and one render per tick until the user quits
func (g *game) loop(interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			eventChan <- ev
		}
	}()

	g.resize()

	for {
		select {
		case ev := <-eventChan:
			if _, ok := ev.(*tcell.EventResize); ok {
				g.screen.Sync()
				g.resize()
				continue
			}
			if g.translator.Handle(ev, time.Now()) {
				g.log.Info("quit requested", zap.Int64("frame", g.world.Frame()), zap.Int("kills", g.world.Kills()))
				return nil
			}

		case now := <-ticker.C:
			g.translator.Tick(now)
			g.world.Update()
			g.dispatch(g.events.Drain())
			g.world.Render(g.screen, g.transform())
			g.screen.Show()
		}
	}
}

func (g *game) transform() scene.Transform {
	cols, rows := g.screen.Size()
	return viewport(g.window, cols, rows)
}

func (g *game) resize() {
	g.translator.SetViewport(g.transform())
}

// dispatch turns gameplay events into sound and log lines
func (g *game) dispatch(events []event.GameEvent) {
	if d := g.events.Dropped(); d != g.dropped {
		g.log.Warn("gameplay events dropped",
			zap.Uint64("count", d-g.dropped),
			zap.Int("capacity", g.events.Cap()),
			zap.Int64("frame", g.world.Frame()))
		g.dropped = d
	}
	for _, ev := range events {
		switch p := ev.Payload.(type) {
		case *event.BulletFiredPayload:
			g.sound.PlayShot()
			g.log.Debug("fired", zap.Stringer("bullet", p.Bullet), zap.Int64("frame", ev.Frame))
		case *event.EnemyDestroyedPayload:
			g.sound.PlayHit()
			g.log.Info("enemy destroyed",
				zap.Stringer("enemy", p.Enemy),
				zap.Stringer("bullet", p.Bullet),
				zap.Float64("damage", p.Damage),
				zap.Int64("frame", ev.Frame))
		default:
			g.log.Debug("event", zap.Stringer("type", ev.Type), zap.Int64("frame", ev.Frame))
		}
	}
}

// viewport fits the configured world window to a cols x rows terminal
func viewport(win config.WindowConfig, cols, rows int) scene.Transform {
	cols = max(cols, 1)
	rows = max(rows, 1)
	return scene.Viewport(
		vmath.V2(win.Width/2, win.Height/2),
		cols, rows,
		win.Width/float64(cols), win.Height/float64(rows),
	)
}
