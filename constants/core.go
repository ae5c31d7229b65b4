package constants

import "time"

// Game Loop & Engine Timing
const (
	// PhysicsTickRate is the default number of simulation steps per second
	// The frame loop runs one step per frame at this rate
	PhysicsTickRate = 60
)

// Event Limits
const (
	// EventBufferSize is the default number of gameplay events kept between drains
	// A frame produces a handful; overflow only happens if the loop stops draining
	EventBufferSize = 256
)

// Input Timing
const (
	// KeyRepeatDelay holds a freshly pressed key until terminal auto-repeat starts
	KeyRepeatDelay = 550 * time.Millisecond

	// KeyHoldTimeout releases a key when the terminal stops repeating it
	// Terminals report presses only; auto-repeat arrives every ~30-50ms while held
	KeyHoldTimeout = 120 * time.Millisecond
)
