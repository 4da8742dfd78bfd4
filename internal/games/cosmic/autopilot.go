package cosmic

import (
	"math"

	"github.com/vovakirdan/cosmic-heat/internal/core"
	"github.com/vovakirdan/cosmic-heat/internal/sim"
)

// Autopilot flies the ship from the engine state. It drives headless
// simulations and implements sim.InputSource.
type Autopilot struct {
	engine   *sim.Engine
	maxTicks int
	calls    int

	// DangerRange is how far above the ship, in world units, hazards are dodged.
	DangerRange float64
}

// NewAutopilot creates an autopilot that quits after maxTicks inputs.
// Zero never quits.
func NewAutopilot(e *sim.Engine, maxTicks int) *Autopilot {
	return &Autopilot{engine: e, maxTicks: maxTicks, DangerRange: 260}
}

// Next implements sim.InputSource.
func (a *Autopilot) Next(uint64) (sim.Input, bool) {
	a.calls++
	quit := a.maxTicks > 0 && a.calls >= a.maxTicks
	return a.decide(), quit
}

func (a *Autopilot) decide() sim.Input {
	s := a.engine.State()
	cfg := a.engine.Config()
	player := s.Player.Box
	px, _ := player.Center()

	var in sim.Input

	// Hold a line near the spawn height.
	homeY := cfg.Playfield.Height - cfg.Player.SpawnOffset
	switch {
	case player.Y < homeY-cfg.Player.Speed:
		in.MoveY = 1
	case player.Y > homeY+cfg.Player.Speed:
		in.MoveY = -1
	}

	if threat := a.threat(s, player); threat != nil {
		tx, _ := threat.Center()
		in.MoveX = -int(core.Sign(tx - px))
		if in.MoveX == 0 {
			in.MoveX = 1
		}
		if player.X <= 0 {
			in.MoveX = 1
		} else if player.Right() >= cfg.Playfield.Width {
			in.MoveX = -1
		}
	} else if goal, ok := a.goal(s); ok {
		if math.Abs(goal-px) > cfg.Player.Speed {
			in.MoveX = int(core.Sign(goal - px))
		}
	}

	in.Fire = a.targetAbove(s, player)
	return in
}

// threat returns the closest dangerous actor inside the ship's lane, or nil.
func (a *Autopilot) threat(s *sim.State, player core.Rect) *core.Rect {
	lane := core.NewRect(player.X-player.W/2, player.Y-a.DangerRange, player.W*2, a.DangerRange+player.H)

	var best *core.Rect
	bestDist := math.Inf(1)
	consider := func(box core.Rect) {
		if !box.Intersects(lane) {
			return
		}
		if d := player.Y - box.Bottom(); d < bestDist {
			b := box
			best, bestDist = &b, d
		}
	}

	for _, h := range s.Hazards {
		if h.Kind == sim.HazardBlackHole || h.Kind == sim.HazardMeteorLarge || h.Kind == sim.HazardHeavyEnemy {
			consider(h.Box)
		}
	}
	for _, b := range s.EnemyBullets {
		consider(b.Box)
	}
	for i := range s.Encounters {
		if boss := s.Encounters[i].Boss; boss != nil {
			consider(boss.Box)
			for _, b := range boss.Bullets {
				consider(b.Box)
			}
		}
	}
	return best
}

// goal picks a column to fly to: a needed refill first, then the lowest target.
func (a *Autopilot) goal(s *sim.State) (float64, bool) {
	e := s.Economy
	needy := e.Health*2 < e.MaxHealth || e.Ammo*3 < e.MaxAmmo

	if needy {
		for _, p := range s.Pickups {
			if p.Kind != sim.PickupScore && p.Box.Y > 0 {
				x, _ := p.Box.Center()
				return x, true
			}
		}
	}

	lowest := -math.MaxFloat64
	var x float64
	found := false
	for _, h := range s.Hazards {
		if h.Kind == sim.HazardBlackHole || h.Box.Bottom() <= 0 {
			continue
		}
		if h.Box.Bottom() > lowest {
			lowest = h.Box.Bottom()
			x, _ = h.Box.Center()
			found = true
		}
	}
	for i := range s.Encounters {
		if boss := s.Encounters[i].Boss; boss != nil && !found {
			x, _ = boss.Box.Center()
			found = true
		}
	}
	return x, found
}

// targetAbove reports whether a shootable target sits in the ship's column.
func (a *Autopilot) targetAbove(s *sim.State, player core.Rect) bool {
	column := core.NewRect(player.X, 0, player.W, player.Y)
	for _, h := range s.Hazards {
		if h.Kind != sim.HazardBlackHole && h.Box.Bottom() > 0 && h.Box.Intersects(column) {
			return true
		}
	}
	for i := range s.Encounters {
		if boss := s.Encounters[i].Boss; boss != nil && boss.Box.Bottom() > 0 && boss.Box.Intersects(column) {
			return true
		}
	}
	return false
}
