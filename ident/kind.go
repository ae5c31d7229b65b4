package ident

import "fmt"

// Class is the gameplay category a physical body belongs to
type Class uint8

const (
	ClassNone Class = iota
	ClassPlayer
	ClassBullet
	ClassEnemy
)

var classNames = [...]string{
	ClassNone:   "none",
	ClassPlayer: "player",
	ClassBullet: "bullet",
	ClassEnemy:  "enemy",
}

func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return fmt.Sprintf("class(%d)", uint8(c))
}

// Kind tags a body with its category and the identity of the owning entity
// Closed variant: construct only through Player, Bullet, Enemy
// The embedded ID equals the registry key of the live entity
type Kind struct {
	Class Class
	ID    Identity
}

// Player tags the player-controlled body
func Player(id Identity) Kind {
	return Kind{Class: ClassPlayer, ID: id}
}

// Bullet tags a projectile body
func Bullet(id Identity) Kind {
	return Kind{Class: ClassBullet, ID: id}
}

// Enemy tags an enemy body
func Enemy(id Identity) Kind {
	return Kind{Class: ClassEnemy, ID: id}
}

// IsZero reports whether k carries no tag
func (k Kind) IsZero() bool {
	return k.Class == ClassNone
}

// Is reports whether k belongs to class c
func (k Kind) Is(c Class) bool {
	return k.Class == c
}

func (k Kind) String() string {
	if k.IsZero() {
		return "none"
	}
	return k.Class.String() + "(" + k.ID.Short() + ")"
}
