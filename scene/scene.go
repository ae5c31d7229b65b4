package scene

import (
	"math"
	"sort"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/lixenwraith/zombies/asset"
	"github.com/lixenwraith/zombies/vmath"
)

// SpriteID names a sprite slot in the scene
type SpriteID uuid.UUID

// NilSprite is the zero SpriteID
var NilSprite SpriteID

func (id SpriteID) String() string { return uuid.UUID(id).String() }

// Canvas is the drawing surface; tcell.Screen satisfies it
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
	Clear()
}

// Node is the presentation state of one sprite
type Node struct {
	Sprite   asset.Sprite
	Position vmath.Vec2
	Rotation float64 // degrees, clockwise from up
	seq      uint64
}

// Scene holds sprite slots keyed by SpriteID
// Not safe for concurrent use
type Scene struct {
	nodes map[SpriteID]*Node
	seq   uint64
}

// New creates an empty scene
func New() *Scene {
	return &Scene{nodes: make(map[SpriteID]*Node, 64)}
}

// Add creates a sprite slot at pos and returns its id
func (s *Scene) Add(sprite asset.Sprite, pos vmath.Vec2) SpriteID {
	id := SpriteID(uuid.New())
	s.seq++
	s.nodes[id] = &Node{Sprite: sprite, Position: pos, seq: s.seq}
	return id
}

// SetPosition moves a sprite; false for an unknown id
func (s *Scene) SetPosition(id SpriteID, pos vmath.Vec2) bool {
	n, ok := s.nodes[id]
	if !ok {
		return false
	}
	n.Position = pos
	return true
}

// SetRotation sets a sprite's heading in degrees; false for an unknown id
func (s *Scene) SetRotation(id SpriteID, degrees float64) bool {
	n, ok := s.nodes[id]
	if !ok {
		return false
	}
	n.Rotation = degrees
	return true
}

// Remove deletes a sprite slot; false if already gone
func (s *Scene) Remove(id SpriteID) bool {
	if _, ok := s.nodes[id]; !ok {
		return false
	}
	delete(s.nodes, id)
	return true
}

// Get returns a copy of the node
func (s *Scene) Get(id SpriteID) (Node, bool) {
	n, ok := s.nodes[id]
	if !ok {
		return Node{}, false
	}
	return *n, true
}

// Len returns the number of live sprites
func (s *Scene) Len() int {
	return len(s.nodes)
}

// Draw paints every sprite footprint onto the canvas in insertion order
// Footprints smaller than a cell still occupy the cell under their center
func (s *Scene) Draw(c Canvas, t Transform) {
	width, height := c.Size()

	nodes := make([]*Node, 0, len(s.nodes))
	for _, n := range s.nodes {
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].seq < nodes[j].seq })

	for _, n := range nodes {
		half := vmath.V2(n.Sprite.Width/2, n.Sprite.Height/2)
		p0 := t.Apply(n.Position.Sub(half))
		p1 := t.Apply(n.Position.Add(half))
		center := t.Apply(n.Position)

		x0, x1 := cellSpan(p0.X, p1.X, center.X)
		y0, y1 := cellSpan(p0.Y, p1.Y, center.Y)

		glyph := n.Sprite.GlyphFor(n.Rotation)
		for y := max(y0, 0); y <= min(y1, height-1); y++ {
			for x := max(x0, 0); x <= min(x1, width-1); x++ {
				c.SetContent(x, y, glyph, nil, n.Sprite.Style)
			}
		}
	}
}

// cellSpan returns the inclusive cell range covered by [a, b), never empty
func cellSpan(a, b, center float64) (int, int) {
	if a > b {
		a, b = b, a
	}
	lo := int(math.Ceil(a - 0.5))
	hi := int(math.Ceil(b-0.5)) - 1
	if hi < lo {
		c := int(math.Floor(center))
		return c, c
	}
	return lo, hi
}
