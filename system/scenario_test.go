package system

import (
	"math"
	"testing"
)

// TestCountdownScenario walks a full session through pointer gestures only
func TestCountdownScenario(t *testing.T) {
	h := newHarness(t, 180)
	h.step(0)

	st := h.sim().State()
	if st.UpperChamber != AtRestUpper || st.LowerChamber != AtRestLower {
		t.Fatalf("Expected rest levels, got %v/%v", st.UpperChamber, st.LowerChamber)
	}

	// Click starts the clock and the guard flips the glass
	h.click(0, 0)
	s := h.sim()
	if !h.clock().Running() {
		t.Fatal("Expected click to start the clock")
	}
	if s.FlipsAccepted != 1 {
		t.Fatalf("Expected the start flip, got %d", s.FlipsAccepted)
	}

	for i := 0; i < 900; i++ {
		h.step(0.1)
	}
	if math.Abs(h.clock().Remaining()-90) > 1e-6 {
		t.Errorf("Expected 90s left, got %v", h.clock().Remaining())
	}
	if math.Abs(st.UpperChamber-0.5) > 1e-6 || math.Abs(st.LowerChamber-0.5) > 1e-6 {
		t.Errorf("Expected half-full chambers, got %v/%v", st.UpperChamber, st.LowerChamber)
	}

	// Pause and resume keep the levels and never flip
	h.click(0, 0)
	if h.clock().Running() {
		t.Fatal("Expected click to pause")
	}
	h.step(1)
	if math.Abs(st.UpperChamber-0.5) > 1e-6 {
		t.Errorf("Expected paused levels to hold, got %v", st.UpperChamber)
	}
	h.click(0, 0)
	if !h.clock().Running() || s.FlipsAccepted != 1 {
		t.Errorf("Expected resume without flip, got running=%v flips=%d", h.clock().Running(), s.FlipsAccepted)
	}

	// Drag flips, resets and auto-runs
	h.press(0, 0)
	h.move(20, 0)
	h.release(20, 0)
	h.step(0)

	if h.clock().Remaining() != 180 || !h.clock().Running() {
		t.Errorf("Expected full running clock, got running=%v remaining=%v", h.clock().Running(), h.clock().Remaining())
	}
	if s.FlipsAccepted != 2 {
		t.Errorf("Expected the drag flip, got %d", s.FlipsAccepted)
	}
	if st.UpperChamber != AtRestUpper || st.LowerChamber != AtRestLower {
		t.Errorf("Expected the flip to start from rest, got %v/%v", st.UpperChamber, st.LowerChamber)
	}

	// After the flip the sand is back on top
	for i := 0; i < 10; i++ {
		h.step(0.1)
	}
	if st.Flipping {
		t.Fatal("Expected the flip to finish")
	}
	if math.Abs(st.UpperChamber-h.clock().Progress()) > 1e-9 {
		t.Errorf("Expected upper to track progress %v, got %v", h.clock().Progress(), st.UpperChamber)
	}
}
