// Package audio plays the simulation's sound cues through the system speaker.
// Every cue is synthesized; there are no sample files.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/cosmic-heat/internal/sim"
)

// WaveType selects an oscillator shape.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    uint32 // xorshift state for WaveNoise
}

// NewOscillator creates a wave generator that ends after duration.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    2463534242,
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
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			o.noise ^= o.noise << 13
			o.noise ^= o.noise >> 17
			o.noise ^= o.noise << 5
			val = float64(o.noise)/math.MaxUint32*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	release      int
	releaseStart int
	total        int
}

// NewEnvelope shapes s over duration with the given attack and release.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att, rel := rate.N(attack), rate.N(release)
	return &envelope{
		streamer:     s,
		attack:       att,
		release:      rel,
		releaseStart: max(total-rel, att),
		total:        total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.position >= e.releaseStart && e.release > 0 {
			vol = max(float64(e.total-e.position)/float64(e.release), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func tone(freq float64, d time.Duration, wave WaveType, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, attack, release, rate)
}

// explosionSound is a noise burst over a low rumble.
func explosionSound(rate beep.SampleRate) beep.Streamer {
	const d = 350 * time.Millisecond
	return beep.Mix(
		newVolume(tone(0, d, WaveNoise, 5*time.Millisecond, 300*time.Millisecond, rate), 0.6),
		newVolume(tone(70, d, WaveSine, 5*time.Millisecond, 250*time.Millisecond, rate), 0.5),
	)
}

// pickupSound is a rising two-note chime.
func pickupSound(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		tone(987.77, 70*time.Millisecond, WaveSine, 2*time.Millisecond, 30*time.Millisecond, rate),
		tone(1318.51, 120*time.Millisecond, WaveSine, 2*time.Millisecond, 90*time.Millisecond, rate),
	)
}

// contactSound is a short harsh buzz.
func contactSound(rate beep.SampleRate) beep.Streamer {
	return newVolume(tone(110, 150*time.Millisecond, WaveSaw, 5*time.Millisecond, 60*time.Millisecond, rate), 0.7)
}

// warningSound is a three-pulse siren announcing a boss.
func warningSound(rate beep.SampleRate) beep.Streamer {
	var pulses []beep.Streamer
	for range 3 {
		pulses = append(pulses,
			tone(440, 120*time.Millisecond, WaveSquare, 5*time.Millisecond, 20*time.Millisecond, rate),
			tone(660, 120*time.Millisecond, WaveSquare, 5*time.Millisecond, 20*time.Millisecond, rate),
		)
	}
	return newVolume(beep.Seq(pulses...), 0.4)
}

// CueSound returns a fresh streamer for a cue scaled by volume, or nil
// for an unknown cue.
func CueSound(c sim.Cue, volume float64, rate beep.SampleRate) beep.Streamer {
	var s beep.Streamer
	switch c {
	case sim.CueExplosion:
		s = explosionSound(rate)
	case sim.CuePickup:
		s = pickupSound(rate)
	case sim.CueContact:
		s = contactSound(rate)
	case sim.CueWarning:
		s = warningSound(rate)
	default:
		return nil
	}
	return newVolume(s, volume)
}
