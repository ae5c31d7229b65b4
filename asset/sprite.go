package asset

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sort"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/zombies/vmath"
)

// ErrUnknownSprite is returned when a sprite name is not present in the library
var ErrUnknownSprite = errors.New("unknown sprite")

// Sprite is a terminal glyph sprite with a world-unit footprint
type Sprite struct {
	Name   string
	Glyph  rune
	Style  tcell.Style
	Width  float64
	Height float64

	// Headings holds 8 glyphs clockwise from "up" for oriented sprites; empty for static glyphs
	Headings []rune
}

// GlyphFor returns the glyph matching a heading in degrees (0 = up, clockwise)
func (s Sprite) GlyphFor(degrees float64) rune {
	if len(s.Headings) == 0 {
		return s.Glyph
	}
	sector := 360.0 / float64(len(s.Headings))
	d := vmath.NormalizeDeg(degrees)
	idx := int(math.Floor((d+sector/2)/sector)) % len(s.Headings)
	return s.Headings[idx]
}

// spriteEntry is the manifest row for one sprite
type spriteEntry struct {
	Name     string   `yaml:"name"`
	Glyph    string   `yaml:"glyph"`
	Headings []string `yaml:"headings"`
	Fg       string   `yaml:"fg"`
	Bg       string   `yaml:"bg"`
	Bold     bool     `yaml:"bold"`
	Width    float64  `yaml:"width"`
	Height   float64  `yaml:"height"`
}

type manifestFile struct {
	Sprites []spriteEntry `yaml:"sprites"`
}

// Library holds validated sprites indexed by name
type Library struct {
	sprites map[string]Sprite
}

// Load reads and validates a sprite manifest from a YAML file
func Load(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sprite manifest: %w", err)
	}
	return Parse(data)
}

// Default returns the built-in sprite library
func Default() (*Library, error) {
	return Parse([]byte(DefaultSpriteManifest))
}

// Parse decodes a manifest and validates every entry, reporting all failures together
func Parse(data []byte) (*Library, error) {
	var f manifestFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse sprite manifest: %w", err)
	}

	lib := &Library{sprites: make(map[string]Sprite, len(f.Sprites))}
	var errs error
	for i := range f.Sprites {
		sprite, err := f.Sprites[i].build()
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("sprite #%d: %w", i, err))
			continue
		}
		if _, dup := lib.sprites[sprite.Name]; dup {
			errs = multierr.Append(errs, fmt.Errorf("sprite %q: duplicate name", sprite.Name))
			continue
		}
		lib.sprites[sprite.Name] = sprite
	}
	if errs != nil {
		return nil, errs
	}
	return lib, nil
}

// Sprite returns the named sprite
func (l *Library) Sprite(name string) (Sprite, error) {
	s, ok := l.sprites[name]
	if !ok {
		return Sprite{}, fmt.Errorf("%w: %q", ErrUnknownSprite, name)
	}
	return s, nil
}

// Require resolves every name, aggregating all misses into one error
func (l *Library) Require(names ...string) error {
	var errs error
	for _, name := range names {
		if _, err := l.Sprite(name); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

// Names returns the sorted sprite names
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.sprites))
	for name := range l.sprites {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (e spriteEntry) build() (Sprite, error) {
	if e.Name == "" {
		return Sprite{}, errors.New("missing name")
	}

	glyph, err := singleRune(e.Glyph)
	if err != nil {
		return Sprite{}, fmt.Errorf("sprite %q glyph: %w", e.Name, err)
	}

	if e.Width <= 0 || e.Height <= 0 {
		return Sprite{}, fmt.Errorf("sprite %q: footprint %vx%v must be positive", e.Name, e.Width, e.Height)
	}

	style := tcell.StyleDefault.Bold(e.Bold)
	if e.Fg != "" {
		c, err := parseColor(e.Fg)
		if err != nil {
			return Sprite{}, fmt.Errorf("sprite %q fg: %w", e.Name, err)
		}
		style = style.Foreground(c)
	}
	if e.Bg != "" {
		c, err := parseColor(e.Bg)
		if err != nil {
			return Sprite{}, fmt.Errorf("sprite %q bg: %w", e.Name, err)
		}
		style = style.Background(c)
	}

	var headings []rune
	if len(e.Headings) > 0 {
		if len(e.Headings) != 8 {
			return Sprite{}, fmt.Errorf("sprite %q: want 8 headings, got %d", e.Name, len(e.Headings))
		}
		headings = make([]rune, 0, 8)
		for _, h := range e.Headings {
			r, err := singleRune(h)
			if err != nil {
				return Sprite{}, fmt.Errorf("sprite %q heading: %w", e.Name, err)
			}
			headings = append(headings, r)
		}
	}

	return Sprite{
		Name:     e.Name,
		Glyph:    glyph,
		Style:    style,
		Width:    e.Width,
		Height:   e.Height,
		Headings: headings,
	}, nil
}

func singleRune(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%q is not a single character", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// parseColor accepts W3C names and #rrggbb
func parseColor(s string) (tcell.Color, error) {
	c := tcell.GetColor(s)
	if c == tcell.ColorDefault && s != "default" {
		return c, fmt.Errorf("unknown color %q", s)
	}
	return c, nil
}
