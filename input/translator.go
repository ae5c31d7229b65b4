package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/zombies/scene"
	"github.com/lixenwraith/zombies/vmath"
)

// Handler receives translated input; satisfied by *world.World
type Handler interface {
	HandleButtonEvent(b Button, pressed bool)
	HandlePointerMotion(pos vmath.Vec2)
}

var mouseMasks = [...]struct {
	mask   tcell.ButtonMask
	button MouseButton
}{
	{tcell.Button1, MouseLeft},
	{tcell.Button2, MouseRight},
	{tcell.Button3, MouseMiddle},
}

// Translator turns tcell events into button and pointer calls
// Terminals report key presses and repeats but no releases, so a held key is released
// once no repeat arrives within the hold timeout
type Translator struct {
	handler     Handler
	keyTable    *KeyTable
	repeatDelay time.Duration
	timeout     time.Duration

	held    map[Button]time.Time // release deadline per held key
	buttons tcell.ButtonMask

	toWorld scene.Transform
}

// NewTranslator creates a translator with the default key table
// A first press is held for repeatDelay; each repeat extends the hold by holdTimeout
func NewTranslator(h Handler, repeatDelay, holdTimeout time.Duration) *Translator {
	return &Translator{
		handler:     h,
		keyTable:    DefaultKeyTable(),
		repeatDelay: max(repeatDelay, holdTimeout),
		timeout:     holdTimeout,
		held:        make(map[Button]time.Time, 8),
		toWorld:     scene.Identity(),
	}
}

// SetViewport records the world-to-cell transform used for drawing
// Pointer positions are mapped back through its inverse
func (t *Translator) SetViewport(tr scene.Transform) {
	if inv, ok := tr.Inverse(); ok {
		t.toWorld = inv
	}
}

// Handle processes one event and reports whether the user asked to quit
func (t *Translator) Handle(ev tcell.Event, now time.Time) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.handleKey(ev, now)
	case *tcell.EventMouse:
		t.handleMouse(ev)
	}
	return false
}

func (t *Translator) handleKey(ev *tcell.EventKey, now time.Time) bool {
	entry := t.keyTable.Lookup(ev)
	switch entry.Behavior {
	case BehaviorQuit:
		return true
	case BehaviorButton:
		if _, down := t.held[entry.Button]; down {
			t.held[entry.Button] = now.Add(t.timeout)
			break
		}
		t.held[entry.Button] = now.Add(t.repeatDelay)
		t.handler.HandleButtonEvent(entry.Button, true)
	}
	return false
}

func (t *Translator) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	// Cell center
	t.handler.HandlePointerMotion(t.toWorld.Apply(vmath.V2(float64(x)+0.5, float64(y)+0.5)))

	mask := ev.Buttons()
	for _, m := range mouseMasks {
		was := t.buttons&m.mask != 0
		is := mask&m.mask != 0
		if was != is {
			t.handler.HandleButtonEvent(Mouse(m.button), is)
		}
	}
	t.buttons = mask
}

// Tick releases keys whose hold deadline has passed
func (t *Translator) Tick(now time.Time) {
	for b, deadline := range t.held {
		if now.After(deadline) {
			delete(t.held, b)
			t.handler.HandleButtonEvent(b, false)
		}
	}
}

// Held reports whether a keyboard button is currently considered pressed
func (t *Translator) Held(b Button) bool {
	_, ok := t.held[b]
	return ok
}
