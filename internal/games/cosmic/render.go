package cosmic

import (
	"fmt"
	"math"

	"github.com/vovakirdan/cosmic-heat/internal/core"
	"github.com/vovakirdan/cosmic-heat/internal/sim"
)

// hudRows is the number of screen rows reserved for the status line.
const hudRows = 1

// starCount is the number of backdrop stars.
const starCount = 48

// Renderer maps world coordinates onto a character screen.
// It implements sim.Drawer.
type Renderer struct {
	worldW, worldH float64
}

// NewRenderer creates a renderer for a playfield of the given size.
func NewRenderer(worldW, worldH float64) *Renderer {
	return &Renderer{worldW: worldW, worldH: worldH}
}

// project converts a world box into a clipped cell rectangle below the HUD.
func (r *Renderer) project(box core.Rect, s *core.Screen) (x0, y0, w, h int) {
	rows := s.Height() - hudRows
	if rows <= 0 || s.Width() <= 0 {
		return 0, 0, 0, 0
	}
	sx := float64(s.Width()) / r.worldW
	sy := float64(rows) / r.worldH

	x0 = int(math.Floor(box.X * sx))
	x1 := max(int(math.Ceil(box.Right()*sx)), x0+1)
	y0 = int(math.Floor(box.Y*sy)) + hudRows
	y1 := max(int(math.Ceil(box.Bottom()*sy))+hudRows, y0+1)

	x0, x1 = max(x0, 0), min(x1, s.Width())
	y0, y1 = max(y0, hudRows), min(y1, s.Height())
	return x0, y0, x1 - x0, y1 - y0
}

// Draw renders one actor.
func (r *Renderer) Draw(a sim.Actor, s *core.Screen) {
	x, y, w, h := r.project(a.Box, s)
	if w <= 0 || h <= 0 {
		return
	}

	switch a.Kind {
	case sim.ActorBoss:
		s.FillRect(x, y, w, h, 'M', bossColors[(a.Tier-1)%len(bossColors)])
		r.drawHealthBar(a, x, y-1, w, s)
	case sim.ActorPlayer:
		s.FillRect(x, y, w, h, '█', core.ColorBrightCyan)
		s.SetColored(x+w/2, y, '▲', core.ColorBrightWhite)
	default:
		ch, c := glyph(a)
		s.FillRect(x, y, w, h, ch, c)
	}
}

var bossColors = []core.Color{core.ColorMagenta, core.ColorBrightMagenta, core.ColorBrightRed}

var hazardGlyphs = [sim.NumHazardKinds]struct {
	ch rune
	c  core.Color
}{
	sim.HazardLightEnemy:  {'V', core.ColorRed},
	sim.HazardHeavyEnemy:  {'W', core.ColorBrightRed},
	sim.HazardMeteorSmall: {'o', core.ColorOrange},
	sim.HazardMeteorLarge: {'O', core.ColorOrange},
	sim.HazardBlackHole:   {'@', core.ColorMagenta},
}

var pickupGlyphs = [sim.NumPickupKinds]struct {
	ch rune
	c  core.Color
}{
	sim.PickupAmmo:   {'A', core.ColorYellow},
	sim.PickupHealth: {'+', core.ColorBrightGreen},
	sim.PickupDual:   {'*', core.ColorBrightCyan},
	sim.PickupScore:  {'$', core.ColorBrightYellow},
}

var explosionFrames = []struct {
	ch rune
	c  core.Color
}{
	{'#', core.ColorBrightYellow},
	{'*', core.ColorOrange},
	{'+', core.ColorRed},
	{'.', core.ColorGray},
}

// glyph picks the fill character and color for an actor.
func glyph(a sim.Actor) (rune, core.Color) {
	switch a.Kind {
	case sim.ActorHazard:
		g := hazardGlyphs[a.Hazard]
		return g.ch, g.c
	case sim.ActorPickup:
		g := pickupGlyphs[a.Pickup]
		return g.ch, g.c
	case sim.ActorBullet:
		switch a.Owner {
		case sim.OwnerPlayer:
			return '|', core.ColorBrightYellow
		case sim.OwnerHeavy:
			return '•', core.ColorRed
		default:
			return '!', core.ColorBrightMagenta
		}
	case sim.ActorExplosion:
		phase := 0
		if a.Frames > 0 {
			phase = a.Frame * len(explosionFrames) / a.Frames
		}
		g := explosionFrames[min(phase, len(explosionFrames)-1)]
		return g.ch, g.c
	default:
		return '?', core.ColorDefault
	}
}

func (r *Renderer) drawHealthBar(a sim.Actor, x, y, w int, s *core.Screen) {
	if y < hudRows || a.MaxHealth <= 0 {
		return
	}
	filled := (a.Health*w + a.MaxHealth - 1) / a.MaxHealth
	s.DrawHLine(x, y, w, '▱', core.ColorGray)
	s.DrawHLine(x, y, filled, '▰', core.ColorBrightRed)
}

// DrawBackground draws the scrolling starfield for the given offset.
func (r *Renderer) DrawBackground(offset float64, s *core.Screen) {
	for i := range starCount {
		// Fixed layout; only the vertical offset scrolls.
		sx := float64((i*7919)%997) / 997 * r.worldW
		sy := math.Mod(float64((i*104729)%991)/991*r.worldH+offset, r.worldH)
		x, y, _, _ := r.project(core.NewRect(sx, sy, 1, 1), s)
		if s.Get(x, y) == ' ' {
			ch := '.'
			if i%5 == 0 {
				ch = '·'
			}
			s.SetColored(x, y, ch, core.ColorGray)
		}
	}
}

// DrawHUD draws the status line: economy, score and the active boss.
func (r *Renderer) DrawHUD(e *sim.Engine, s *core.Screen) {
	s.FillRect(0, 0, s.Width(), hudRows, ' ', core.ColorDefault)

	cfg := e.Config()
	hpColor := core.ColorBrightGreen
	if e.Health()*2 < cfg.Economy.MaxHealth {
		hpColor = core.ColorBrightRed
	}
	ammoColor := core.ColorBrightYellow
	if e.Ammo()*5 < cfg.Economy.MaxAmmo {
		ammoColor = core.ColorRed
	}

	x := 1
	put := func(text string, c core.Color) {
		s.DrawTextColored(x, 0, text, c)
		x += len([]rune(text)) + 2
	}
	put(fmt.Sprintf("HP %d/%d", e.Health(), cfg.Economy.MaxHealth), hpColor)
	put(fmt.Sprintf("AMMO %d/%d", e.Ammo(), cfg.Economy.MaxAmmo), ammoColor)
	put(fmt.Sprintf("SCORE %d", e.Score()), core.ColorBrightWhite)
	put(fmt.Sprintf("HI %d", e.HighScore()), core.ColorGray)

	for tier := 1; tier <= len(cfg.Bosses); tier++ {
		b := e.Boss(tier)
		if !b.Active {
			continue
		}
		text := fmt.Sprintf("BOSS %d %d/%d", tier, b.Health, b.MaxHealth)
		s.DrawTextColored(s.Width()-len(text)-1, 0, text, bossColors[(tier-1)%len(bossColors)])
		break
	}
}

// DrawBanner draws a message box in the center of the screen.
func (r *Renderer) DrawBanner(s *core.Screen, c core.Color, title, subtitle string) {
	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (s.Width() - boxW) / 2
	boxY := (s.Height() - boxH) / 2

	s.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	s.DrawBox(boxX, boxY, boxW, boxH, c)
	s.DrawTextColored(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, c)
	s.DrawTextColored(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle, core.ColorWhite)
}
