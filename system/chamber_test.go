package system

import (
	"math"
	"testing"

	"github.com/lixenwraith/hourglass/event"
)

func TestMapChambers(t *testing.T) {
	tests := []struct {
		name         string
		in           ChamberInput
		upper, lower float64
		ok           bool
	}{
		{"flipping leaves levels alone", ChamberInput{Duration: 100, Remaining: 50, Running: true, Flipping: true}, 0, 0, false},
		{"running maps remaining", ChamberInput{Duration: 100, Remaining: 25, Running: true}, 0.25, 0.75, true},
		{"paused after start maps remaining", ChamberInput{Duration: 100, Remaining: 60, Started: true}, 0.6, 0.4, true},
		{"finished maps to empty upper", ChamberInput{Duration: 100, Remaining: 0, Started: true}, 0, 1, true},
		{"at rest forces rest levels", ChamberInput{Duration: 100, Remaining: 100}, AtRestUpper, AtRestLower, true},
		{"reset while started is at rest", ChamberInput{Duration: 100, Remaining: 100, Started: false}, AtRestUpper, AtRestLower, true},
		{"stopped mid-count never started", ChamberInput{Duration: 100, Remaining: 40}, 0, 0, false},
		{"zero duration at rest", ChamberInput{Duration: 0, Remaining: 0}, AtRestUpper, AtRestLower, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			upper, lower, ok := MapChambers(tt.in)
			if ok != tt.ok {
				t.Fatalf("Expected ok=%v, got %v", tt.ok, ok)
			}
			if !ok {
				return
			}
			if math.Abs(upper-tt.upper) > 1e-9 || math.Abs(lower-tt.lower) > 1e-9 {
				t.Errorf("Expected %v/%v, got %v/%v", tt.upper, tt.lower, upper, lower)
			}
			if math.Abs(upper+lower-1) > 1e-9 {
				t.Errorf("Expected levels to sum to 1, got %v", upper+lower)
			}
		})
	}
}

func TestChamberSystemStampsClockState(t *testing.T) {
	h := newHarness(t, 100)
	h.step(0)

	st := h.sim().State()
	if st.UpperChamber != AtRestUpper || st.LowerChamber != AtRestLower {
		t.Errorf("Expected rest levels, got %v/%v", st.UpperChamber, st.LowerChamber)
	}
	if st.TotalTime != 100 || st.RemainingTime != 100 || st.Running {
		t.Errorf("Expected 100/100 stopped, got %v/%v running=%v", st.TotalTime, st.RemainingTime, st.Running)
	}

	h.clock().Start()
	h.step(0)
	// Flip takes the levels; let it finish
	for i := 0; i < 20; i++ {
		h.step(0.1)
	}
	if st.Flipping {
		t.Fatal("Expected flip to have finished")
	}
	if math.Abs(st.UpperChamber-0.98) > 1e-6 {
		t.Errorf("Expected upper 0.98 after 2s of 100s, got %v", st.UpperChamber)
	}
	if !st.Running || math.Abs(st.RemainingTime-98) > 1e-6 {
		t.Errorf("Expected running with 98s left, got running=%v remaining=%v", st.Running, st.RemainingTime)
	}
}

func TestChamberSystemHoldLevels(t *testing.T) {
	h := newHarness(t, 100)
	h.step(0)

	st := h.sim().State()
	st.UpperChamber, st.LowerChamber = 0.3, 0.7
	h.world.Resource.Hourglass.HoldLevels = true

	NewChamberSystem(h.world).Update()
	if st.UpperChamber != 0.3 {
		t.Errorf("Expected held level 0.3, got %v", st.UpperChamber)
	}
	if h.world.Resource.Hourglass.HoldLevels {
		t.Error("Expected HoldLevels to clear after one pass")
	}

	NewChamberSystem(h.world).Update()
	if st.UpperChamber != AtRestUpper {
		t.Errorf("Expected mapping to resume, got %v", st.UpperChamber)
	}
}

func TestLiveFill(t *testing.T) {
	h := newHarness(t, 100)
	if fill := LiveFill(&h.world.Resource); fill != AtRestUpper {
		t.Errorf("Expected rest fill %v, got %v", AtRestUpper, fill)
	}

	h.clock().Start()
	h.step(0)
	h.step(0.2)
	h.step(0.2)
	if fill := LiveFill(&h.world.Resource); math.Abs(fill-0.996) > 1e-6 {
		t.Errorf("Expected fill 0.996, got %v", fill)
	}
}

func TestMapChambersIdempotent(t *testing.T) {
	inputs := []ChamberInput{
		{Duration: 180, Remaining: 90, Running: true},
		{Duration: 180, Remaining: 90, Started: true},
		{Duration: 180, Remaining: 180},
		{Duration: 180, Remaining: 40},
		{Duration: 180, Remaining: 120, Running: true, Flipping: true},
		{Duration: 86400, Remaining: 1e-6, Running: true},
	}

	for _, in := range inputs {
		u1, l1, ok1 := MapChambers(in)
		u2, l2, ok2 := MapChambers(in)
		if u1 != u2 || l1 != l2 || ok1 != ok2 {
			t.Errorf("Input %+v: expected identical results, got %v/%v/%v then %v/%v/%v", in, u1, l1, ok1, u2, l2, ok2)
		}
	}
}

func TestChamberSystemIdempotent(t *testing.T) {
	h := runningFor(t, 45)

	for _, name := range []string{"running", "paused"} {
		if name == "paused" {
			h.click(0, 0)
		}

		// Zero-delta frames leave every input unchanged
		h.step(0)
		first := *h.sim().State()
		h.step(0)
		second := *h.sim().State()
		if first != second {
			t.Errorf("%s: expected identical state across passes, got %+v then %+v", name, first, second)
		}
		if math.Abs(first.UpperChamber-0.75) > 1e-9 {
			t.Errorf("%s: expected upper 0.75, got %v", name, first.UpperChamber)
		}
	}
}

func TestChamberRefilledClockShowsRest(t *testing.T) {
	h := runningFor(t, 10)
	h.click(0, 0)

	for i := 0; i < 10; i++ {
		h.push(event.EventTimerAddTime, &event.AddTimePayload{Seconds: -3600})
	}
	h.push(event.EventTimerAddTime, &event.AddTimePayload{Seconds: 60})
	h.step(0)

	if h.clock().Duration() != 60 || h.clock().Remaining() != 60 || h.clock().Running() {
		t.Fatalf("Expected a stopped clock full at 60s, got %v/%v running=%v",
			h.clock().Remaining(), h.clock().Duration(), h.clock().Running())
	}
	st := h.sim().State()
	if st.UpperChamber != AtRestUpper || st.LowerChamber != AtRestLower {
		t.Errorf("Expected rest levels on a refilled clock, got %v/%v", st.UpperChamber, st.LowerChamber)
	}

	accepted := h.sim().FlipsAccepted
	h.click(0, 0)
	if h.sim().FlipsAccepted != accepted+1 {
		t.Errorf("Expected the next start to flip, got %d -> %d", accepted, h.sim().FlipsAccepted)
	}
}
