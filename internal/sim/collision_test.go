package sim

import (
	"testing"

	"github.com/vovakirdan/cosmic-heat/internal/core"
)

func TestHazardContactDamagesAndScores(t *testing.T) {
	audio := &recordingAudio{}
	e := newTestEngine(t, WithAudio(audio))
	e.state.Hazards = append(e.state.Hazards, &Hazard{Kind: HazardLightEnemy, Box: core.NewRect(480, 600, 56, 48)})

	res := e.Step(Input{})
	if e.Health() != 190 {
		t.Errorf("Health() = %d, expected 190", e.Health())
	}
	if e.Score() != 20 {
		t.Errorf("Score() = %d, expected the survived bonus 20", e.Score())
	}
	if len(e.State().Hazards) != 0 {
		t.Error("the hazard should be consumed by the collision")
	}
	if countEvents(res.Events, EventHazardCollided) != 1 || audio.count(CueExplosion) != 1 {
		t.Error("expected one collision event and one explosion cue")
	}
	if len(e.State().Explosions) != 1 || e.State().Explosions[0].Kind != ExplosionSmall {
		t.Error("expected a small explosion")
	}
}

func TestOneBulletDestroysOneHazard(t *testing.T) {
	e := newTestEngine(t)
	s := e.state
	s.Hazards = append(s.Hazards,
		&Hazard{Kind: HazardLightEnemy, Box: core.NewRect(300, 300, 56, 48)},
		&Hazard{Kind: HazardLightEnemy, Box: core.NewRect(300, 300, 56, 48)},
	)
	addPlayerBullet(e, core.NewRect(320, 320, 6, 18))

	res := e.Step(Input{})
	if got := countEvents(res.Events, EventHazardDestroyed); got != 1 {
		t.Errorf("destroyed events = %d, expected 1", got)
	}
	if e.Score() != 50 {
		t.Errorf("Score() = %d, expected 50", e.Score())
	}
	if len(e.State().Hazards) != 1 {
		t.Errorf("hazards = %d, expected 1 survivor", len(e.State().Hazards))
	}
	if e.State().InFlight() != 0 || len(e.State().Bullets) != 0 {
		t.Error("the bullet should be consumed and the in-flight count released")
	}
}

func TestHazardTakesOnlyFirstBullet(t *testing.T) {
	e := newTestEngine(t)
	e.state.Hazards = append(e.state.Hazards, &Hazard{Kind: HazardMeteorSmall, Box: core.NewRect(300, 300, 40, 40)})
	addPlayerBullet(e, core.NewRect(310, 310, 6, 18))
	addPlayerBullet(e, core.NewRect(320, 310, 6, 18))

	e.Step(Input{})
	if e.Score() != 40 {
		t.Errorf("Score() = %d, expected 40", e.Score())
	}
	if len(e.State().Bullets) != 1 || e.State().InFlight() != 1 {
		t.Errorf("bullets = %d in flight = %d, expected the second bullet to survive",
			len(e.State().Bullets), e.State().InFlight())
	}
}

func TestBlackHoleIsPersistent(t *testing.T) {
	audio := &recordingAudio{}
	e := newTestEngine(t, WithAudio(audio))
	e.state.Hazards = append(e.state.Hazards, &Hazard{Kind: HazardBlackHole, Box: core.NewRect(455, 580, 110, 110)})
	addPlayerBullet(e, core.NewRect(500, 640, 6, 18))

	for range 3 {
		e.Step(Input{})
	}
	if e.Health() != 197 {
		t.Errorf("Health() = %d, expected 197 after three ticks inside", e.Health())
	}
	if len(e.State().Hazards) != 1 {
		t.Error("the black hole should survive contact")
	}
	if e.Score() != 0 {
		t.Errorf("Score() = %d, expected no bonus", e.Score())
	}
	if len(e.State().Bullets) != 1 {
		t.Error("bullets should pass through the black hole")
	}
	if audio.count(CueContact) != 3 {
		t.Errorf("contact cues = %d, expected one per tick inside", audio.count(CueContact))
	}
}

func TestPickupsApplyEffects(t *testing.T) {
	tests := []struct {
		name       string
		kind       PickupKind
		health     int
		ammo       int
		wantHealth int
		wantAmmo   int
		wantScore  int
	}{
		{"health when full", PickupHealth, 200, 200, 200, 200, 0},
		{"health", PickupHealth, 120, 200, 170, 200, 0},
		{"ammo", PickupAmmo, 200, 10, 200, 60, 0},
		{"dual", PickupDual, 100, 180, 150, 200, 0},
		{"score", PickupScore, 200, 200, 200, 200, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			audio := &recordingAudio{}
			e := newTestEngine(t, WithAudio(audio))
			e.state.Economy.Health = tt.health
			e.state.Economy.Ammo = tt.ammo
			e.addPickup(tt.kind, core.NewRect(490, 620, 32, 32))

			res := e.Step(Input{})
			if e.Health() != tt.wantHealth || e.Ammo() != tt.wantAmmo || e.Score() != tt.wantScore {
				t.Errorf("after pickup = %d/%d score %d, expected %d/%d score %d",
					e.Health(), e.Ammo(), e.Score(), tt.wantHealth, tt.wantAmmo, tt.wantScore)
			}
			if len(e.State().Pickups) != 0 {
				t.Error("the pickup should be consumed")
			}
			if countEvents(res.Events, EventPickupCollected) != 1 || audio.count(CuePickup) != 1 {
				t.Error("expected one collect event and one pickup cue")
			}
		})
	}
}

func TestEnemyBulletHitsPlayer(t *testing.T) {
	e := newTestEngine(t)
	e.state.EnemyBullets = append(e.state.EnemyBullets, &Bullet{
		Box:    core.NewRect(500, 610, 8, 16),
		VY:     6,
		Owner:  OwnerHeavy,
		Damage: 10,
	})

	res := e.Step(Input{})
	if e.Health() != 190 {
		t.Errorf("Health() = %d, expected 190", e.Health())
	}
	if len(e.State().EnemyBullets) != 0 {
		t.Error("the enemy bullet should be consumed")
	}
	if countEvents(res.Events, EventPlayerHit) != 1 {
		t.Error("expected one player-hit event")
	}
}

func TestHeavyEnemyAimsAtPlayer(t *testing.T) {
	e := newTestEngine(t)
	e.state.Hazards = append(e.state.Hazards, &Hazard{Kind: HazardHeavyEnemy, Box: core.NewRect(100, 100, 80, 72)})

	e.Step(Input{})
	if len(e.State().EnemyBullets) != 1 {
		t.Fatalf("enemy bullets = %d, expected a shot once on screen", len(e.State().EnemyBullets))
	}
	b := e.State().EnemyBullets[0]
	if b.VX <= 0 || b.VY <= 0 {
		t.Errorf("bullet velocity = (%v, %v), expected toward the player below and to the right", b.VX, b.VY)
	}

	for range 10 {
		e.Step(Input{})
	}
	if len(e.State().EnemyBullets) != 1 {
		t.Error("the heavy enemy should respect its fire delay")
	}
}

func TestExplosionsExpire(t *testing.T) {
	e := newTestEngine(t)
	e.state.Hazards = append(e.state.Hazards, &Hazard{Kind: HazardLightEnemy, Box: core.NewRect(480, 600, 56, 48)})

	e.Step(Input{})
	if ex := e.State().Explosions; len(ex) != 1 || ex[0].Frame != 0 {
		t.Fatal("a new explosion should start on frame 0")
	}
	for range 23 {
		e.Step(Input{})
	}
	if len(e.State().Explosions) != 1 {
		t.Fatalf("explosions = %d, expected the small explosion to still play", len(e.State().Explosions))
	}
	e.Step(Input{})
	if len(e.State().Explosions) != 0 {
		t.Error("the explosion should expire after its frame count")
	}
}

func TestHazardsLeavingScreenAreCulled(t *testing.T) {
	e := newTestEngine(t)
	e.state.Hazards = append(e.state.Hazards, &Hazard{Kind: HazardMeteorSmall, Box: core.NewRect(10, 719, 40, 40)})
	e.addPickup(PickupAmmo, core.NewRect(10, 719, 32, 32))

	e.Step(Input{})
	if len(e.State().Hazards) != 0 || len(e.State().Pickups) != 0 {
		t.Error("actors below the bottom edge should be removed")
	}
	if e.Score() != 0 {
		t.Error("culled actors should not score")
	}
}
