package sim

import (
	"math"

	"github.com/vovakirdan/cosmic-heat/internal/config"
	"github.com/vovakirdan/cosmic-heat/internal/core"
)

// update applies player intent, moves every actor and marks off-screen ones dead.
func (e *Engine) update(in Input) {
	s := e.state
	w, h := e.cfg.Playfield.Width, e.cfg.Playfield.Height

	e.movePlayer(in)
	e.fire(in)

	for _, b := range s.Bullets {
		moveBullet(b, w, h)
	}
	for _, b := range s.EnemyBullets {
		moveBullet(b, w, h)
	}

	for _, hz := range s.Hazards {
		hz.VY = s.Speeds.Hazard[hz.Kind]
		hz.Box = hz.Box.Translate(hz.VX, hz.VY)
		if hz.Box.Outside(w, h) {
			hz.Dead = true
			continue
		}
		e.hazardFire(hz)
	}

	for _, p := range s.Pickups {
		p.VY = s.Speeds.Pickup[p.Kind]
		p.Box = p.Box.Translate(0, p.VY)
		if p.Box.Outside(w, h) {
			p.Dead = true
		}
	}

	for i := range s.Encounters {
		enc := &s.Encounters[i]
		if enc.Boss == nil {
			continue
		}
		for _, b := range enc.Boss.Bullets {
			moveBullet(b, w, h)
		}
		e.moveBoss(enc.Boss, &e.cfg.Bosses[i])
		e.bossFire(enc.Boss, &e.cfg.Bosses[i].Weapon)
	}

	s.Background = math.Mod(s.Background+s.Speeds.Background, h)
}

func (e *Engine) movePlayer(in Input) {
	p := &e.state.Player
	speed := e.cfg.Player.Speed
	p.MoveX, p.MoveY = in.MoveX, in.MoveY

	box := p.Box.Translate(float64(in.MoveX)*speed, float64(in.MoveY)*speed)
	box.X = core.ClampF(box.X, 0, e.cfg.Playfield.Width-box.W)
	box.Y = core.ClampF(box.Y, 0, e.cfg.Playfield.Height-box.H)
	p.Box = box
}

// fire spawns a player bullet when the fire-rate limiter allows it.
func (e *Engine) fire(in Input) {
	s := e.state
	pc := &e.cfg.Player

	if s.cooldown > 0 {
		s.cooldown--
	}
	if !in.Fire || s.cooldown > 0 {
		return
	}
	if pc.MaxInFlight > 0 && s.inFlight >= pc.MaxInFlight {
		return
	}
	if !s.Economy.Spend() {
		return
	}

	cx, _ := s.Player.Box.Center()
	s.Bullets = append(s.Bullets, &Bullet{
		Box:   core.NewRect(cx-pc.Bullet.W/2, s.Player.Box.Y-pc.Bullet.H, pc.Bullet.W, pc.Bullet.H),
		VY:    -pc.BulletSpeed,
		Owner: OwnerPlayer,
	})
	s.inFlight++
	s.cooldown = pc.FireDelay
}

func moveBullet(b *Bullet, w, h float64) {
	if b.Dead {
		return
	}
	b.Box = b.Box.Translate(b.VX, b.VY)
	if b.Box.Outside(w, h) || (b.VY < 0 && b.Box.Bottom() <= 0) {
		b.Dead = true
	}
}

// hazardFire lets armed hazards shoot at the player once they are on screen.
func (e *Engine) hazardFire(hz *Hazard) {
	wp := &e.hazardDefs[hz.Kind].Weapon
	if wp.FireDelay == 0 || hz.Box.Y < 0 {
		return
	}
	if hz.Cooldown > 0 {
		hz.Cooldown--
	}
	if hz.Cooldown > 0 {
		return
	}
	hz.Cooldown = wp.FireDelay

	cx, _ := hz.Box.Center()
	vx, vy := 0.0, wp.Speed
	if wp.Aimed {
		px, py := e.state.Player.Box.Center()
		dx, dy := px-cx, py-hz.Box.Bottom()
		if dist := math.Hypot(dx, dy); dist > 0 && dy > 0 {
			vx, vy = dx/dist*wp.Speed, dy/dist*wp.Speed
		}
	}
	e.state.EnemyBullets = append(e.state.EnemyBullets, &Bullet{
		Box:    core.NewRect(cx-wp.Bullet.W/2, hz.Box.Bottom(), wp.Bullet.W, wp.Bullet.H),
		VX:     vx,
		VY:     vy,
		Owner:  OwnerHeavy,
		Damage: wp.Damage,
	})
}

// moveBoss descends to the hold line and then follows the tier's pattern.
func (e *Engine) moveBoss(b *Boss, bc *config.BossConfig) {
	if b.Box.Y < bc.HoldY {
		b.Box.Y = math.Min(b.Box.Y+bc.Speed, bc.HoldY)
		if bc.Pattern != config.PatternWeave {
			return
		}
	}

	maxX := e.cfg.Playfield.Width - b.Box.W
	px, _ := e.state.Player.Box.Center()
	bx, _ := b.Box.Center()

	switch bc.Pattern {
	case config.PatternWeave:
		if b.VX == 0 {
			b.VX = bc.Speed
		}
		b.Box.X += b.VX
		if b.Box.X <= 0 || b.Box.X >= maxX {
			b.VX = -b.VX
		}
	case config.PatternHold:
		step := bc.Speed / 2
		b.Box.X += core.Sign(px-bx) * math.Min(step, math.Abs(px-bx))
	case config.PatternTrack:
		b.Box.X += core.Sign(px-bx) * math.Min(bc.Speed, math.Abs(px-bx))
	}
	b.Box.X = core.ClampF(b.Box.X, 0, maxX)
}

// bossFire drops a bullet straight down on the tier's cadence once visible.
func (e *Engine) bossFire(b *Boss, wp *config.WeaponConfig) {
	if wp.FireDelay == 0 || b.Box.Y < 0 {
		return
	}
	if b.Cooldown > 0 {
		b.Cooldown--
	}
	if b.Cooldown > 0 {
		return
	}
	b.Cooldown = wp.FireDelay

	cx, _ := b.Box.Center()
	b.Bullets = append(b.Bullets, &Bullet{
		Box:    core.NewRect(cx-wp.Bullet.W/2, b.Box.Bottom(), wp.Bullet.W, wp.Bullet.H),
		VY:     wp.Speed,
		Owner:  OwnerBoss,
		Tier:   b.Tier,
		Damage: wp.Damage,
	})
}
