package event

import (
	"sync"

	"github.com/lixenwraith/hourglass/parameter"
)

// EventQueue is a fixed ring buffer of game events
// Thread-Safety:
//   - Push: any goroutine (input reader, systems)
//   - Consume: single consumer (frame loop)
//
// Overflow: oldest events are overwritten when full
type EventQueue struct {
	mu     sync.Mutex
	events [parameter.EventQueueSize]GameEvent
	head   uint64 // Read index
	tail   uint64 // Write index
}

// NewEventQueue creates an empty queue
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event, dropping the oldest one on overflow
func (eq *EventQueue) Push(ev GameEvent) {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	eq.events[eq.tail&parameter.EventBufferMask] = ev
	eq.tail++
	if eq.tail-eq.head > parameter.EventQueueSize {
		eq.head = eq.tail - parameter.EventQueueSize
	}
}

// Consume returns all pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	n := eq.tail - eq.head
	if n == 0 {
		return nil
	}

	result := make([]GameEvent, 0, n)
	for i := eq.head; i < eq.tail; i++ {
		idx := i & parameter.EventBufferMask
		result = append(result, eq.events[idx])
		eq.events[idx] = GameEvent{}
	}
	eq.head = eq.tail
	return result
}

// Len returns the pending event count
func (eq *EventQueue) Len() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return int(eq.tail - eq.head)
}
