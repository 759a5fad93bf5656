package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/hourglass/core"
	"github.com/lixenwraith/hourglass/parameter"
)

// drain streams s to completion and returns the sample count and peak amplitude
func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok || n == 0 {
			return total, peak
		}
	}
}

func TestOscillatorWaves(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveTriangle, WaveNoise} {
		osc := NewOscillator(440, 100*time.Millisecond, wave, rate)
		n, peak := drain(osc)
		if n != rate.N(100*time.Millisecond) {
			t.Errorf("Wave %d: expected %d samples, got %d", wave, rate.N(100*time.Millisecond), n)
		}
		if peak > 1.0 || peak == 0 {
			t.Errorf("Wave %d: expected peak in (0,1], got %v", wave, peak)
		}
		if osc.Err() != nil {
			t.Errorf("Wave %d: unexpected error %v", wave, osc.Err())
		}
	}
}

func TestSweepStaysInRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	_, peak := drain(NewSweep(600, 150, 200*time.Millisecond, WaveTriangle, rate))
	if peak > 1.0 {
		t.Errorf("Expected bounded sweep, got peak %v", peak)
	}
}

func TestEnvelopeShapesEdges(t *testing.T) {
	rate := beep.SampleRate(1000)
	src := NewOscillator(0, time.Second, WaveTriangle, rate) // constant 1.0 at phase 0
	env := NewEnvelope(src, time.Second, 100*time.Millisecond, 100*time.Millisecond, rate)

	buf := make([][2]float64, 1000)
	n, _ := env.Stream(buf)
	if n != 1000 {
		t.Fatalf("Expected 1000 samples, got %d", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %v", buf[0][0])
	}
	if math.Abs(buf[500][0]-1.0) > 1e-9 {
		t.Errorf("Expected full sustain, got %v", buf[500][0])
	}
	if buf[999][0] >= buf[950][0] {
		t.Errorf("Expected release to fade, got %v >= %v", buf[999][0], buf[950][0])
	}
}

func TestGenerateCues(t *testing.T) {
	rate := beep.SampleRate(parameter.AudioSampleRate)
	tests := []struct {
		sound    core.SoundType
		duration time.Duration
	}{
		{core.SoundBell, parameter.BellSoundDuration},
		{core.SoundWhoosh, parameter.WhooshSoundDuration},
		{core.SoundClick, parameter.ClickSoundDuration},
	}

	for _, tt := range tests {
		s := Generate(tt.sound, rate, parameter.AudioMasterVolume)
		if s == nil {
			t.Fatalf("Sound %d: expected a stream", tt.sound)
		}
		n, peak := drain(s)
		if n != rate.N(tt.duration) {
			t.Errorf("Sound %d: expected %d samples, got %d", tt.sound, rate.N(tt.duration), n)
		}
		if peak == 0 || peak > 1.0 {
			t.Errorf("Sound %d: expected audible bounded output, got peak %v", tt.sound, peak)
		}
	}

	if Generate(core.SoundTypeCount, rate, 1) != nil {
		t.Error("Expected nil stream for unknown sound")
	}
}

func TestSilentVolume(t *testing.T) {
	rate := beep.SampleRate(44100)
	_, peak := drain(Generate(core.SoundClick, rate, 0))
	if peak != 0 {
		t.Errorf("Expected silence at zero volume, got peak %v", peak)
	}
}

func TestSoundManagerWithoutSpeaker(t *testing.T) {
	sm := NewSoundManager(false)

	if sm.Play(core.SoundBell) {
		t.Error("Expected Play to fail before Initialize")
	}
	if sm.IsMuted() {
		t.Error("Expected unmuted manager")
	}
	if !sm.ToggleMute() || !sm.IsMuted() {
		t.Error("Expected ToggleMute to mute")
	}
	if sm.ToggleMute() {
		t.Error("Expected second ToggleMute to unmute")
	}
	sm.Close()

	if !NewSoundManager(true).IsMuted() {
		t.Error("Expected a manager created muted to report muted")
	}
}
