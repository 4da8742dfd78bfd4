package sim

import (
	"github.com/vovakirdan/cosmic-heat/internal/core"
)

// resolveCollisions applies every interaction found this tick, then removes
// consumed actors and advances explosions. Each category is checked against
// the player at most once and against the live player bullets.
func (e *Engine) resolveCollisions() {
	e.resolveHazards()
	e.resolveBosses()
	e.resolvePickups()
	e.resolveEnemyBullets()
	e.sweep()
	e.advanceExplosions()
}

func (e *Engine) resolveHazards() {
	s := e.state
	player := s.Player.Box

	for _, hz := range s.Hazards {
		if hz.Dead {
			continue
		}
		def := &e.hazardDefs[hz.Kind]

		if hz.Box.Intersects(player) {
			s.Economy.Damage(def.ContactDamage)
			if def.Persistent {
				e.play(CueContact)
				continue
			}
			hz.Dead = true
			s.Score += def.SurvivedBonus
			e.addExplosion(explosionKind(def.Explosion), hz.Box)
			e.play(CueExplosion)
			e.emit(Event{Kind: EventHazardCollided, Hazard: hz.Kind, Score: def.SurvivedBonus})
			continue
		}

		if !def.Shootable {
			continue
		}
		b := firstHit(s.Bullets, hz.Box)
		if b == nil {
			continue
		}
		b.Dead = true
		hz.Dead = true
		s.Score += def.DestroyedBonus
		e.addExplosion(explosionKind(def.Explosion), hz.Box)
		e.play(CueExplosion)
		e.emit(Event{Kind: EventHazardDestroyed, Hazard: hz.Kind, Score: def.DestroyedBonus})
		e.dropAt(def.Drops, hz.Box)
	}
}

func (e *Engine) resolveBosses() {
	s := e.state
	for i := range s.Encounters {
		enc := &s.Encounters[i]
		if enc.State != Spawned || enc.Boss == nil {
			continue
		}
		bc := &e.cfg.Bosses[i]

		if enc.Boss.Box.Intersects(s.Player.Box) {
			s.Economy.Damage(bc.ContactDamage)
			e.addExplosion(ExplosionImpact, s.Player.Box)
			e.play(CueContact)
			e.emit(Event{Kind: EventBossContact, Tier: enc.Tier})
		}

		for _, b := range s.Bullets {
			if b.Dead || !b.Box.Intersects(enc.Boss.Box) {
				continue
			}
			b.Dead = true
			e.addExplosion(ExplosionImpact, b.Box)
			if e.hitBoss(enc, bc) {
				break
			}
		}
	}
}

func (e *Engine) resolvePickups() {
	s := e.state
	for _, p := range s.Pickups {
		if p.Dead || !p.Box.Intersects(s.Player.Box) {
			continue
		}
		def := &e.pickupDefs[p.Kind]
		s.Economy.Heal(def.Health)
		s.Economy.Refill(def.Ammo)
		s.Score += def.Score
		p.Dead = true
		e.play(CuePickup)
		e.emit(Event{Kind: EventPickupCollected, Pickup: p.Kind, Score: def.Score})
	}
}

func (e *Engine) resolveEnemyBullets() {
	s := e.state
	hit := func(bullets []*Bullet) {
		for _, b := range bullets {
			if b.Dead || !b.Box.Intersects(s.Player.Box) {
				continue
			}
			b.Dead = true
			s.Economy.Damage(b.Damage)
			e.addExplosion(ExplosionImpact, s.Player.Box)
			e.emit(Event{Kind: EventPlayerHit, Tier: b.Tier})
		}
	}

	hit(s.EnemyBullets)
	for i := range s.Encounters {
		if boss := s.Encounters[i].Boss; boss != nil {
			hit(boss.Bullets)
		}
	}
}

// sweep removes dead actors, keeping the in-flight count of player bullets exact.
func (e *Engine) sweep() {
	s := e.state

	live := s.Bullets[:0]
	for _, b := range s.Bullets {
		if b.Dead {
			s.inFlight--
			continue
		}
		live = append(live, b)
	}
	clear(s.Bullets[len(live):])
	s.Bullets = live

	s.EnemyBullets = sweepBullets(s.EnemyBullets)
	for i := range s.Encounters {
		if boss := s.Encounters[i].Boss; boss != nil {
			boss.Bullets = sweepBullets(boss.Bullets)
		}
	}

	hazards := s.Hazards[:0]
	for _, hz := range s.Hazards {
		if !hz.Dead {
			hazards = append(hazards, hz)
		}
	}
	clear(s.Hazards[len(hazards):])
	s.Hazards = hazards

	pickups := s.Pickups[:0]
	for _, p := range s.Pickups {
		if !p.Dead {
			pickups = append(pickups, p)
		}
	}
	clear(s.Pickups[len(pickups):])
	s.Pickups = pickups
}

func sweepBullets(bullets []*Bullet) []*Bullet {
	live := bullets[:0]
	for _, b := range bullets {
		if !b.Dead {
			live = append(live, b)
		}
	}
	clear(bullets[len(live):])
	return live
}

func (e *Engine) advanceExplosions() {
	s := e.state
	active := s.Explosions[:0]
	for _, ex := range s.Explosions {
		if ex.born != s.Tick {
			ex.Frame++
		}
		if ex.Frame < ex.Frames {
			active = append(active, ex)
		}
	}
	clear(s.Explosions[len(active):])
	s.Explosions = active
}

// firstHit returns the first live bullet overlapping box, or nil.
func firstHit(bullets []*Bullet, box core.Rect) *Bullet {
	for _, b := range bullets {
		if !b.Dead && b.Box.Intersects(box) {
			return b
		}
	}
	return nil
}

func explosionKind(name string) ExplosionKind {
	if name == "large" {
		return ExplosionLarge
	}
	return ExplosionSmall
}

// addExplosion centers a new explosion on the given box.
func (e *Engine) addExplosion(kind ExplosionKind, at core.Rect) {
	ec := e.cfg.Explosions.ByName(kind.String())
	cx, cy := at.Center()
	e.state.Explosions = append(e.state.Explosions, &Explosion{
		Kind:   kind,
		Box:    core.RectAt(cx, cy, ec.Size.W, ec.Size.H),
		Frames: ec.Frames,
		born:   e.state.Tick,
	})
}
