package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// KeyBehavior classifies how a key is processed
type KeyBehavior uint8

const (
	BehaviorNone KeyBehavior = iota
	BehaviorButton
	BehaviorQuit
)

// KeyEntry describes a key binding
type KeyEntry struct {
	Behavior KeyBehavior
	Button   Button
}

// KeyTable maps terminal keys to bindings
type KeyTable struct {
	// Special keys (Ctrl+*, arrows)
	SpecialKeys map[tcell.Key]KeyEntry
	// Rune bindings, matched case-insensitively
	Runes map[rune]KeyEntry
}

// DefaultKeyTable binds WASD and arrows to movement, space to fire, q/Esc/Ctrl+C to quit
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyUp:     {BehaviorButton, Key('w')},
			tcell.KeyLeft:   {BehaviorButton, Key('a')},
			tcell.KeyDown:   {BehaviorButton, Key('s')},
			tcell.KeyRight:  {BehaviorButton, Key('d')},
			tcell.KeyEscape: {BehaviorQuit, Button{}},
			tcell.KeyCtrlC:  {BehaviorQuit, Button{}},
		},
		Runes: map[rune]KeyEntry{
			'w': {BehaviorButton, Key('w')},
			'a': {BehaviorButton, Key('a')},
			's': {BehaviorButton, Key('s')},
			'd': {BehaviorButton, Key('d')},
			' ': {BehaviorButton, Key(' ')},
			'q': {BehaviorQuit, Button{}},
		},
	}
}

// Lookup resolves a key event to its binding
func (kt *KeyTable) Lookup(ev *tcell.EventKey) KeyEntry {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[unicode.ToLower(ev.Rune())]
	}
	return kt.SpecialKeys[ev.Key()]
}
