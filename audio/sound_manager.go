package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// SoundManager plays gameplay sound effects through a single mixer
// Every Play call is a no-op until Initialize succeeds, so the game runs without an audio device
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      *effects.Volume
	initialized bool
}

// NewSoundManager creates a new sound manager
// volume is in base-2 steps relative to unity (0 = unchanged, -1 = half)
func NewSoundManager(volume float64) *SoundManager {
	mixer := &beep.Mixer{}
	return &SoundManager{
		mixer: mixer,
		volume: &effects.Volume{
			Streamer: mixer,
			Base:     2,
			Volume:   volume,
		},
	}
}

// Initialize sets up the speaker
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.volume)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// PlayShot plays the short descending zap of a fired projectile
func (sm *SoundManager) PlayShot() {
	sm.play(beep.Take(sampleRate.N(time.Millisecond*90), NewShotGenerator(sampleRate)))
}

// PlayHit plays the crunch of a projectile destroying an enemy
func (sm *SoundManager) PlayHit() {
	sm.play(beep.Take(sampleRate.N(time.Millisecond*250), NewHitGenerator(sampleRate)))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// ShotGenerator generates a fast downward frequency sweep
type ShotGenerator struct {
	sr    beep.SampleRate
	pos   int
	phase float64
}

// NewShotGenerator creates a shot sound generator
func NewShotGenerator(sr beep.SampleRate) *ShotGenerator {
	return &ShotGenerator{sr: sr}
}

func (g *ShotGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// 1800Hz falling toward 300Hz
		freq := 300 + 1500*math.Exp(-t*30)
		g.phase += freq / float64(g.sr)
		if g.phase >= 1 {
			g.phase -= 1
		}

		// Square wave, quick exponential decay
		sample := 0.25
		if g.phase >= 0.5 {
			sample = -0.25
		}
		sample *= math.Exp(-t * 25)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ShotGenerator) Err() error {
	return nil
}

// HitGenerator generates a noisy low thump
type HitGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

// NewHitGenerator creates a hit sound generator
func NewHitGenerator(sr beep.SampleRate) *HitGenerator {
	return &HitGenerator{
		sr:   sr,
		seed: time.Now().UnixNano(),
	}
}

func (g *HitGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Exp(-t * 12)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		thump := 0.4 * math.Sin(2*math.Pi*70*t)

		sample := envelope * (0.2*noise + thump)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *HitGenerator) Err() error {
	return nil
}
