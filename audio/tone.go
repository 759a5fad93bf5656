package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveTriangle
	WaveNoise
)

// oscillator generates a wave whose frequency glides linearly from startFreq to endFreq
type oscillator struct {
	startFreq float64
	endFreq   float64
	phase     float64
	duration  int
	position  int
	wave      WaveType
	rate      beep.SampleRate
	rng       *rand.Rand
}

// NewOscillator creates a fixed-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding between two frequencies over its duration
func NewSweep(startFreq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		startFreq: startFreq,
		endFreq:   endFreq,
		duration:  rate.N(duration),
		wave:      wave,
		rate:      rate,
		rng:       rand.New(rand.NewSource(int64(startFreq*1000) + int64(duration))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.duration)
		freq := o.startFreq + (o.endFreq-o.startFreq)*t
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	release      int
	totalSamples int
}

// NewEnvelope wraps a stream with attack/release shaping over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	if att+rel > total {
		rel = total - att
		if rel < 0 {
			att, rel = total, 0
		}
	}
	return &envelope{
		streamer:     s,
		attack:       att,
		release:      rel,
		totalSamples: total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}
		samples[i][0] *= e.gain()
		samples[i][1] *= e.gain()
		e.position++
	}
	return n, ok
}

// gain returns the envelope level at the current position
func (e *envelope) gain() float64 {
	if e.attack > 0 && e.position < e.attack {
		return float64(e.position) / float64(e.attack)
	}
	releaseStart := e.totalSamples - e.release
	if e.release > 0 && e.position >= releaseStart {
		return math.Max(0, float64(e.totalSamples-e.position)/float64(e.release))
	}
	return 1.0
}

func (e *envelope) Err() error { return e.streamer.Err() }

// layered sums streams sample by sample and ends when the longest one ends
type layered struct {
	streams []beep.Streamer
	buf     [][2]float64
}

// Layer combines one-shot streams into a single finite stream
func Layer(streams ...beep.Streamer) beep.Streamer {
	return &layered{streams: streams}
}

func (l *layered) Stream(samples [][2]float64) (n int, ok bool) {
	if cap(l.buf) < len(samples) {
		l.buf = make([][2]float64, len(samples))
	}
	buf := l.buf[:len(samples)]
	for i := range samples {
		samples[i] = [2]float64{}
	}

	for _, s := range l.streams {
		sn, _ := s.Stream(buf)
		for i := 0; i < sn; i++ {
			samples[i][0] += buf[i][0]
			samples[i][1] += buf[i][1]
		}
		if sn > n {
			n = sn
		}
	}
	return n, n > 0
}

func (l *layered) Err() error {
	for _, s := range l.streams {
		if err := s.Err(); err != nil {
			return err
		}
	}
	return nil
}

// newVolume scales a stream linearly; a zero level is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
