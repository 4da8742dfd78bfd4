package audio

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/cosmic-heat/internal/sim"
)

// SampleRate is the output rate of the speaker.
const SampleRate = beep.SampleRate(44100)

// DefaultVolume is the master volume used by the command line.
const DefaultVolume = 0.6

// Board mixes cue sounds onto the speaker. It implements sim.AudioSink
// and io.Closer. Play never blocks the tick: it only appends a streamer
// to the mixer.
type Board struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	rate    beep.SampleRate
	volume  float64
	started bool
	muted   atomic.Bool
}

// newBoard creates a board that is not attached to the speaker.
func newBoard(volume float64, rate beep.SampleRate) *Board {
	return &Board{
		mixer:  &beep.Mixer{},
		rate:   rate,
		volume: volume,
	}
}

// Open initializes the speaker and starts mixing.
func Open(volume float64) (*Board, error) {
	b := newBoard(volume, SampleRate)
	if err := speaker.Init(b.rate, b.rate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: failed to init speaker: %w", err)
	}
	speaker.Play(b.mixer)
	b.started = true
	return b, nil
}

// Play queues the sound for a cue.
func (b *Board) Play(c sim.Cue) {
	if b.muted.Load() {
		return
	}
	s := CueSound(c, b.volume, b.rate)
	if s == nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.started {
		speaker.Lock()
		b.mixer.Add(s)
		speaker.Unlock()
		return
	}
	b.mixer.Add(s)
}

// ToggleMute flips the mute flag and reports whether sound is now on.
func (b *Board) ToggleMute() bool {
	muted := !b.muted.Load()
	b.muted.Store(muted)
	return !muted
}

// Playing returns the number of sounds still in the mixer.
func (b *Board) Playing() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.started {
		speaker.Lock()
		defer speaker.Unlock()
	}
	return b.mixer.Len()
}

// Close stops every sound and releases the speaker.
func (b *Board) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.started {
		b.mixer.Clear()
		return nil
	}
	speaker.Clear()
	speaker.Close()
	b.started = false
	return nil
}

// Mute is a silent sink. It counts the cues it swallows.
type Mute struct {
	mu    sync.Mutex
	cues  map[sim.Cue]int
	total int
}

// NewMute creates a silent sink.
func NewMute() *Mute {
	return &Mute{cues: make(map[sim.Cue]int)}
}

// Play implements sim.AudioSink.
func (m *Mute) Play(c sim.Cue) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cues[c]++
	m.total++
}

// Count returns how often a cue was requested.
func (m *Mute) Count(c sim.Cue) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cues[c]
}

// Total returns the number of cues requested.
func (m *Mute) Total() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.total
}

// Close implements io.Closer.
func (m *Mute) Close() error { return nil }
