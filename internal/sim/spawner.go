package sim

import (
	"github.com/vovakirdan/cosmic-heat/internal/config"
	"github.com/vovakirdan/cosmic-heat/internal/core"
)

// spawn runs the per-tick spawn draws. Locked or capped categories do not draw.
func (e *Engine) spawn() {
	s := e.state

	for kind := HazardKind(0); kind < NumHazardKinds; kind++ {
		def := &e.hazardDefs[kind]
		if !e.unlocked(def.Spawn, s.countHazards(kind)) {
			continue
		}
		if !oneIn(e.src, def.Spawn.OneIn) {
			continue
		}
		h := &Hazard{
			Kind:     kind,
			Box:      e.spawnBox(def.Spawn, def.Size),
			VX:       def.Drift,
			Cooldown: def.Weapon.FireDelay,
		}
		s.Hazards = append(s.Hazards, h)
	}

	for kind := PickupKind(0); kind < NumPickupKinds; kind++ {
		def := &e.pickupDefs[kind]
		if def.Spawn.OneIn == 0 || !e.unlocked(def.Spawn, 0) {
			continue
		}
		if oneIn(e.src, def.Spawn.OneIn) {
			e.addPickup(kind, e.spawnBox(def.Spawn, def.Size))
		}
	}

	e.activateBosses()
}

func (e *Engine) unlocked(sc config.SpawnConfig, live int) bool {
	if e.state.Score < sc.Unlock {
		return false
	}
	return sc.Cap == 0 || live < sc.Cap
}

// spawnBox draws a position inside the category's band, fully above the top edge.
func (e *Engine) spawnBox(sc config.SpawnConfig, size config.Size) core.Rect {
	w, h := e.cfg.Playfield.Width, e.cfg.Playfield.Height

	xMax := sc.XMax
	if xMax <= 0 {
		xMax += w
	}
	xMax = min(xMax, w-size.W)
	x := between(e.src, sc.XMin, max(xMax, sc.XMin))

	aboveMax := sc.AboveMax
	if aboveMax == 0 {
		aboveMax = h - size.H
	}
	y := -size.H - between(e.src, sc.AboveMin, max(aboveMax, sc.AboveMin))

	return core.NewRect(x, y, size.W, size.H)
}

func (e *Engine) addPickup(kind PickupKind, box core.Rect) {
	e.state.Pickups = append(e.state.Pickups, &Pickup{Kind: kind, Box: box})
}

// dropAt makes the independent drop draws for a destroyed target.
func (e *Engine) dropAt(drops []config.DropConfig, wreck core.Rect) {
	for _, d := range drops {
		if !oneIn(e.src, d.OneIn) {
			continue
		}
		kind := pickupKindOf(d.Pickup)
		def := &e.pickupDefs[kind]

		var box core.Rect
		if d.AtTop {
			box = e.spawnBox(def.Spawn, def.Size)
		} else {
			cx, cy := wreck.Center()
			box = core.RectAt(cx, cy, def.Size.W, def.Size.H)
		}
		e.addPickup(kind, box)
		e.emit(Event{Kind: EventPickupDropped, Pickup: kind})
	}
}
