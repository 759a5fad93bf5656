package audio

import (
	"github.com/gopxl/beep"

	"github.com/lixenwraith/hourglass/core"
	"github.com/lixenwraith/hourglass/parameter"
)

// Generate builds the stream for a sound cue, nil for unknown types
func Generate(st core.SoundType, rate beep.SampleRate, volume float64) beep.Streamer {
	switch st {
	case core.SoundBell:
		return bell(rate, volume)
	case core.SoundWhoosh:
		return whoosh(rate, volume)
	case core.SoundClick:
		return click(rate, volume)
	}
	return nil
}

// bell is the finish chime: fundamental plus a fast-decaying octave
func bell(rate beep.SampleRate, volume float64) beep.Streamer {
	fund := NewEnvelope(NewOscillator(880, parameter.BellSoundDuration, WaveSine, rate),
		parameter.BellSoundDuration, parameter.BellSoundAttack, parameter.BellSoundFundamentalRelease, rate)
	over := NewEnvelope(NewOscillator(1760, parameter.BellSoundDuration, WaveSine, rate),
		parameter.BellSoundDuration, parameter.BellSoundAttack, parameter.BellSoundOvertoneRelease, rate)

	return newVolume(Layer(newVolume(fund, 0.7), newVolume(over, 0.3)), volume)
}

// whoosh is the flip cue: noise under a descending sweep
func whoosh(rate beep.SampleRate, volume float64) beep.Streamer {
	d := parameter.WhooshSoundDuration
	noise := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d,
		parameter.WhooshSoundAttack, parameter.WhooshSoundRelease, rate)
	sweep := NewEnvelope(NewSweep(600, 150, d, WaveTriangle, rate), d,
		parameter.WhooshSoundAttack, parameter.WhooshSoundRelease, rate)

	return newVolume(Layer(newVolume(noise, 0.4), newVolume(sweep, 0.6)), volume)
}

// click is the short start/pause tick
func click(rate beep.SampleRate, volume float64) beep.Streamer {
	d := parameter.ClickSoundDuration
	tick := NewEnvelope(NewOscillator(1200, d, WaveTriangle, rate), d,
		parameter.ClickSoundAttack, parameter.ClickSoundRelease, rate)
	return newVolume(tick, volume)
}
