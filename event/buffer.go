package event

import "github.com/lixenwraith/zombies/constants"

// Buffer collects the gameplay events of one frame for the frame loop to drain
// The world pushes during Update and main drains right after, both on the frame goroutine
// Not safe for concurrent use
//
// Overflow: the oldest pending event is overwritten and counted in Dropped
type Buffer struct {
	ring    []GameEvent
	start   int // index of the oldest pending event
	n       int // pending events
	dropped uint64
}

// NewBuffer creates a buffer holding up to capacity pending events
// Non-positive capacity selects constants.EventBufferSize
func NewBuffer(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = constants.EventBufferSize
	}
	return &Buffer{ring: make([]GameEvent, capacity)}
}

// Push appends an event, evicting the oldest when full
func (b *Buffer) Push(ev GameEvent) {
	if b.n == len(b.ring) {
		b.ring[b.start] = ev
		b.start = (b.start + 1) % len(b.ring)
		b.dropped++
		return
	}
	b.ring[(b.start+b.n)%len(b.ring)] = ev
	b.n++
}

// Drain returns pending events oldest first and empties the buffer
func (b *Buffer) Drain() []GameEvent {
	if b.n == 0 {
		return nil
	}
	out := make([]GameEvent, b.n)
	for i := range out {
		idx := (b.start + i) % len(b.ring)
		out[i] = b.ring[idx]
		b.ring[idx] = GameEvent{} // release payload
	}
	b.start, b.n = 0, 0
	return out
}

// Len returns the number of pending events
func (b *Buffer) Len() int { return b.n }

// Cap returns the buffer capacity
func (b *Buffer) Cap() int { return len(b.ring) }

// Dropped returns how many events were evicted since creation
func (b *Buffer) Dropped() uint64 { return b.dropped }
