package sim

import (
	"github.com/vovakirdan/cosmic-heat/internal/config"
	"github.com/vovakirdan/cosmic-heat/internal/core"
)

// State is the complete state of one round. The engine replaces it
// wholesale when a round is lost; nothing outside it survives except
// the session high score.
type State struct {
	Tick    uint64
	Score   int
	Economy Economy
	Player  Player

	Bullets      []*Bullet // Player bullets
	EnemyBullets []*Bullet // Heavy enemy shots; boss bullets live on their Boss
	Hazards      []*Hazard
	Pickups      []*Pickup
	Explosions   []*Explosion
	Encounters   [config.BossTiers]Encounter

	Speeds     Speeds
	Background float64 // Scroll offset of the backdrop in world units

	cooldown int // Ticks until the player may fire again
	inFlight int // Player bullets currently alive
}

// newState builds a fresh round: full economy, player at spawn, empty
// collections and every tier dormant at full health.
func newState(cfg config.Config, scaler Scaler) *State {
	pw, ph := cfg.Player.Size.W, cfg.Player.Size.H
	s := &State{
		Economy: NewEconomy(cfg.Economy.MaxHealth, cfg.Economy.MaxAmmo),
		Player: Player{
			Box: core.NewRect(cfg.Playfield.Width/2, cfg.Playfield.Height-cfg.Player.SpawnOffset, pw, ph),
		},
		Speeds: scaler.Speeds(0),
	}
	for i, b := range cfg.Bosses {
		s.Encounters[i] = Encounter{
			Tier:      b.Tier,
			State:     Dormant,
			Health:    b.MaxHealth,
			MaxHealth: b.MaxHealth,
		}
	}
	return s
}

// InFlight returns the number of live player bullets.
func (s *State) InFlight() int {
	return s.inFlight
}

// Cooldown returns the ticks left before the player may fire.
func (s *State) Cooldown() int {
	return s.cooldown
}

// countHazards returns the live hazards of one kind.
func (s *State) countHazards(kind HazardKind) int {
	n := 0
	for _, h := range s.Hazards {
		if h.Kind == kind && !h.Dead {
			n++
		}
	}
	return n
}

// EachActor calls fn once per live actor in draw order:
// explosions last so they cover what they replace.
func (s *State) EachActor(fn func(Actor)) {
	for _, p := range s.Pickups {
		if !p.Dead {
			fn(Actor{Kind: ActorPickup, Box: p.Box, Pickup: p.Kind})
		}
	}
	for _, h := range s.Hazards {
		if !h.Dead {
			fn(Actor{Kind: ActorHazard, Box: h.Box, Hazard: h.Kind})
		}
	}
	for i := range s.Encounters {
		enc := &s.Encounters[i]
		if enc.Boss == nil {
			continue
		}
		fn(Actor{
			Kind:      ActorBoss,
			Box:       enc.Boss.Box,
			Tier:      enc.Tier,
			Health:    enc.Health,
			MaxHealth: enc.MaxHealth,
		})
		for _, b := range enc.Boss.Bullets {
			if !b.Dead {
				fn(Actor{Kind: ActorBullet, Box: b.Box, Owner: b.Owner, Tier: b.Tier})
			}
		}
	}
	for _, b := range s.EnemyBullets {
		if !b.Dead {
			fn(Actor{Kind: ActorBullet, Box: b.Box, Owner: b.Owner})
		}
	}
	for _, b := range s.Bullets {
		if !b.Dead {
			fn(Actor{Kind: ActorBullet, Box: b.Box, Owner: b.Owner})
		}
	}
	fn(Actor{Kind: ActorPlayer, Box: s.Player.Box})
	for _, e := range s.Explosions {
		fn(Actor{Kind: ActorExplosion, Box: e.Box, Explosion: e.Kind, Frame: e.Frame, Frames: e.Frames})
	}
}

// ActorCount returns the number of live non-player actors.
func (s *State) ActorCount() int {
	n := 0
	s.EachActor(func(a Actor) {
		if a.Kind != ActorPlayer {
			n++
		}
	})
	return n
}
