package sim

import "github.com/vovakirdan/cosmic-heat/internal/core"

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventHazardCollided  EventKind = iota // A hazard rammed the player
	EventHazardDestroyed                  // A player bullet destroyed a hazard
	EventPickupCollected
	EventPickupDropped
	EventPlayerHit // An enemy or boss bullet hit the player
	EventBossActivated
	EventBossHit
	EventBossContact
	EventBossDefeated
	EventVictory
	EventRoundLost
)

var eventNames = [...]string{
	EventHazardCollided:  "hazard-collided",
	EventHazardDestroyed: "hazard-destroyed",
	EventPickupCollected: "pickup-collected",
	EventPickupDropped:   "pickup-dropped",
	EventPlayerHit:       "player-hit",
	EventBossActivated:   "boss-activated",
	EventBossHit:         "boss-hit",
	EventBossContact:     "boss-contact",
	EventBossDefeated:    "boss-defeated",
	EventVictory:         "victory",
	EventRoundLost:       "round-lost",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[k]
}

// Event is one tick-level occurrence reported in StepResult.
// Only the fields relevant to Kind are set.
type Event struct {
	Kind   EventKind
	Hazard HazardKind
	Pickup PickupKind
	Tier   int
	Score  int // Score delta, or the final score for EventRoundLost
}

// Cue is a fire-and-forget sound request.
type Cue int

const (
	CueExplosion Cue = iota // Hazard or boss destroyed
	CuePickup               // Pickup collected
	CueContact              // Boss or black hole touching the player
	CueWarning              // Boss activated
)

func (c Cue) String() string {
	switch c {
	case CueExplosion:
		return "explosion"
	case CuePickup:
		return "pickup"
	case CueContact:
		return "contact"
	case CueWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// AudioSink plays cues. Implementations must not block the tick.
type AudioSink interface {
	Play(c Cue)
}

// Presenter shows the round-end screens. The engine continues once a call returns.
type Presenter interface {
	ShowDefeat(score int)
	ShowVictory()
}

// Drawer renders a single actor onto a screen. A no-op implementation is valid.
type Drawer interface {
	Draw(a Actor, s *core.Screen)
}

type nopAudio struct{}

func (nopAudio) Play(Cue) {}

type nopPresenter struct{}

func (nopPresenter) ShowDefeat(int) {}
func (nopPresenter) ShowVictory()   {}
