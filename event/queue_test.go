package event

import (
	"sync"
	"testing"

	"github.com/lixenwraith/hourglass/parameter"
)

func TestEventQueueBasic(t *testing.T) {
	eq := NewEventQueue()

	eq.Push(GameEvent{Type: EventTimerStart, Frame: 1})
	eq.Push(GameEvent{Type: EventTimerAddTime, Payload: &AddTimePayload{Seconds: 60}, Frame: 2})
	eq.Push(GameEvent{Type: EventQuit, Frame: 3})

	if eq.Len() != 3 {
		t.Errorf("Expected 3 pending events, got %d", eq.Len())
	}

	events := eq.Consume()
	if len(events) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(events))
	}
	if events[0].Type != EventTimerStart || events[1].Type != EventTimerAddTime || events[2].Type != EventQuit {
		t.Errorf("Expected FIFO order, got %v %v %v", events[0].Type, events[1].Type, events[2].Type)
	}
	if p, ok := events[1].Payload.(*AddTimePayload); !ok || p.Seconds != 60 {
		t.Errorf("Expected add-time payload 60, got %v", events[1].Payload)
	}

	if events := eq.Consume(); len(events) != 0 {
		t.Errorf("Expected 0 events on second consume, got %d", len(events))
	}
}

func TestEventQueueOverflowDropsOldest(t *testing.T) {
	eq := NewEventQueue()
	total := parameter.EventQueueSize + 10

	for i := 0; i < total; i++ {
		eq.Push(GameEvent{Type: EventPointer, Frame: int64(i)})
	}

	events := eq.Consume()
	if len(events) != parameter.EventQueueSize {
		t.Fatalf("Expected %d events, got %d", parameter.EventQueueSize, len(events))
	}
	if events[0].Frame != 10 {
		t.Errorf("Expected oldest surviving frame 10, got %d", events[0].Frame)
	}
	if last := events[len(events)-1].Frame; last != int64(total-1) {
		t.Errorf("Expected newest frame %d, got %d", total-1, last)
	}
}

func TestEventQueueConcurrent(t *testing.T) {
	eq := NewEventQueue()
	numGoroutines := 10
	eventsPerGoroutine := 10

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < eventsPerGoroutine; j++ {
				eq.Push(GameEvent{Type: EventPointer})
			}
		}()
	}
	wg.Wait()

	if events := eq.Consume(); len(events) != numGoroutines*eventsPerGoroutine {
		t.Errorf("Expected %d events, got %d", numGoroutines*eventsPerGoroutine, len(events))
	}
}

func TestEventTypeString(t *testing.T) {
	if EventTimerFinished.String() != "TimerFinished" {
		t.Errorf("Expected TimerFinished, got %s", EventTimerFinished.String())
	}
	if EventType(-1).String() != "Unknown" {
		t.Errorf("Expected Unknown, got %s", EventType(-1).String())
	}
}
