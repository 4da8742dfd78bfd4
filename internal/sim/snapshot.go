package sim

import "math"

// Snapshot flattens the round state into primitives for determinism checks.
// Positions are stored in fixed point with four fractional bits.
type Snapshot struct {
	Tick      uint64
	Score     int
	HighScore int
	Health    int
	Ammo      int
	PlayerX   int
	PlayerY   int
	Cooldown  int
	InFlight  int
	Paused    bool

	// Each bullet is 4 ints: Owner, Tier, X, Y
	BulletData []int
	// Each hazard is 3 ints: Kind, X, Y
	HazardData []int
	// Each pickup is 3 ints: Kind, X, Y
	PickupData []int
	// Each explosion is 2 ints: Kind, Frame
	ExplosionData []int
	// Each encounter is 5 ints: State, Health, X, Y, Cooldown
	BossData []int

	// RNG state when the engine runs on its own LCG
	RNGState uint64
}

func fixed(v float64) int {
	return int(math.Round(v * 16))
}

// Snapshot returns the current state as a Snapshot.
func (e *Engine) Snapshot() Snapshot {
	s := e.state
	snap := Snapshot{
		Tick:      s.Tick,
		Score:     s.Score,
		HighScore: e.highScore,
		Health:    s.Economy.Health,
		Ammo:      s.Economy.Ammo,
		PlayerX:   fixed(s.Player.Box.X),
		PlayerY:   fixed(s.Player.Box.Y),
		Cooldown:  s.cooldown,
		InFlight:  s.inFlight,
		Paused:    e.paused,
	}

	addBullets := func(bullets []*Bullet) {
		for _, b := range bullets {
			snap.BulletData = append(snap.BulletData, int(b.Owner), b.Tier, fixed(b.Box.X), fixed(b.Box.Y))
		}
	}
	addBullets(s.Bullets)
	addBullets(s.EnemyBullets)

	for _, h := range s.Hazards {
		snap.HazardData = append(snap.HazardData, int(h.Kind), fixed(h.Box.X), fixed(h.Box.Y))
	}
	for _, p := range s.Pickups {
		snap.PickupData = append(snap.PickupData, int(p.Kind), fixed(p.Box.X), fixed(p.Box.Y))
	}
	for _, ex := range s.Explosions {
		snap.ExplosionData = append(snap.ExplosionData, int(ex.Kind), ex.Frame)
	}
	for _, enc := range s.Encounters {
		x, y, cd := 0, 0, 0
		if enc.Boss != nil {
			x, y, cd = fixed(enc.Boss.Box.X), fixed(enc.Boss.Box.Y), enc.Boss.Cooldown
			addBullets(enc.Boss.Bullets)
		}
		snap.BossData = append(snap.BossData, int(enc.State), enc.Health, x, y, cd)
	}

	if lcg, ok := e.src.(*LCG); ok {
		snap.RNGState = lcg.State()
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, v := range []int{
		snap.Score, snap.HighScore, snap.Health, snap.Ammo,
		snap.PlayerX, snap.PlayerY, snap.Cooldown, snap.InFlight,
	} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	if snap.Paused {
		h = h*31 + 1
	}
	for _, data := range [][]int{
		snap.BulletData, snap.HazardData, snap.PickupData, snap.ExplosionData, snap.BossData,
	} {
		h = h*31 + uint64(len(data)) //#nosec G115 -- hash computation
		for _, v := range data {
			h = h*31 + uint64(v) //#nosec G115 -- hash computation
		}
	}
	h = h*31 + snap.RNGState
	return h
}
