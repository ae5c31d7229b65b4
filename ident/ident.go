// Package ident names gameplay entities independently of any storage slot.
package ident

import "github.com/google/uuid"

// Identity is the globally unique name of one gameplay entity
// Generated at spawn; the only value gameplay code outside the core should hold
type Identity uuid.UUID

// Nil is the zero identity, never assigned to a live entity
var Nil Identity

// New generates a fresh random identity
func New() Identity {
	return Identity(uuid.New())
}

// IsNil reports whether id is the zero identity
func (id Identity) IsNil() bool {
	return id == Nil
}

func (id Identity) String() string {
	return uuid.UUID(id).String()
}

// Short returns the first 8 hex digits, for logs and HUD
func (id Identity) Short() string {
	return id.String()[:8]
}
