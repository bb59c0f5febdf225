// internal/audio/effects.go
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType selects the oscillator wave shape.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// oscillator generates a raw audio wave for a fixed duration.
type oscillator struct {
	freq     float64
	sweep    float64 // Hz change per second, 0 for a steady tone
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a streamer that plays a wave at freq for duration.
// A non-zero sweep slides the frequency over the tone's lifetime, which is
// what gives the coin and game-over effects their movement.
func NewOscillator(freq, sweep float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		sweep:    sweep,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq + o.sweep*float64(o.position)/float64(o.rate)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping so the tones do not click.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack/release envelope over duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.totalSamples - e.releaseSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withVolume scales a streamer. Zero volume silences it outright because
// the decibel base cannot represent it.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone is the common shape for the game's effects: one enveloped oscillator.
func tone(freq, sweep float64, wave WaveType, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(freq, sweep, duration, wave, rate)
	return NewEnvelope(osc, duration, 2*time.Millisecond, duration/3, rate)
}

// ShotSound is the short blip a turret makes when firing.
func ShotSound(rate beep.SampleRate) beep.Streamer {
	return tone(880, -400, WaveSquare, 70*time.Millisecond, rate)
}

// KillSound is a two-note rising chirp for a destroyed enemy.
func KillSound(rate beep.SampleRate) beep.Streamer {
	n1 := tone(660, 0, WaveSine, 60*time.Millisecond, rate)
	n2 := tone(990, 0, WaveSine, 90*time.Millisecond, rate)
	return beep.Seq(n1, n2)
}

// PlaceSound is the click confirming a turret or asset placement.
func PlaceSound(rate beep.SampleRate) beep.Streamer {
	return tone(440, 0, WaveSquare, 40*time.Millisecond, rate)
}

// DenySound plays when a placement is rejected.
func DenySound(rate beep.SampleRate) beep.Streamer {
	return tone(160, 0, WaveSaw, 120*time.Millisecond, rate)
}

// LeakSound is the buzz when an enemy reaches the exit.
func LeakSound(rate beep.SampleRate) beep.Streamer {
	return tone(110, -30, WaveSaw, 250*time.Millisecond, rate)
}

// GameOverSound is a long falling sweep.
func GameOverSound(rate beep.SampleRate) beep.Streamer {
	return tone(520, -420, WaveSine, 900*time.Millisecond, rate)
}
