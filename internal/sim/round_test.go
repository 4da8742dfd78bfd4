package sim

import (
	"testing"

	"github.com/vovakirdan/cosmic-heat/internal/config"
	"github.com/vovakirdan/cosmic-heat/internal/core"
)

func assertFreshRound(t *testing.T, e *Engine) {
	t.Helper()
	s := e.State()
	if s.Tick != 0 || s.Score != 0 {
		t.Errorf("tick = %d score = %d, expected 0/0", s.Tick, s.Score)
	}
	if s.Economy.Health != 200 || s.Economy.Ammo != 200 {
		t.Errorf("economy = %d/%d, expected 200/200", s.Economy.Health, s.Economy.Ammo)
	}
	if s.Player.Box.X != 480 || s.Player.Box.Y != 620 {
		t.Errorf("player at (%v, %v), expected (480, 620)", s.Player.Box.X, s.Player.Box.Y)
	}
	if len(s.Bullets)+len(s.EnemyBullets)+len(s.Hazards)+len(s.Pickups)+len(s.Explosions) != 0 {
		t.Error("every actor collection should be empty")
	}
	if s.InFlight() != 0 || s.Cooldown() != 0 {
		t.Errorf("in flight = %d cooldown = %d, expected 0/0", s.InFlight(), s.Cooldown())
	}
	for i, enc := range s.Encounters {
		if enc.State != Dormant || enc.Boss != nil || enc.Health != enc.MaxHealth {
			t.Errorf("tier %d = %v health %d, expected dormant at full health", i+1, enc.State, enc.Health)
		}
	}
}

func TestRoundLostOnFinalHit(t *testing.T) {
	pres := &recordingPresenter{}
	e := newTestEngine(t, WithPresenter(pres))
	e.state.Economy.Health = 10
	e.state.Hazards = append(e.state.Hazards, &Hazard{Kind: HazardLightEnemy, Box: core.NewRect(480, 600, 56, 48)})

	res := e.Step(Input{})
	if !res.Lost {
		t.Fatal("Step() should report the lost round")
	}
	if res.FinalScore != 20 || len(pres.defeats) != 1 || pres.defeats[0] != 20 {
		t.Errorf("final score = %d defeats = %v, expected 20 shown once", res.FinalScore, pres.defeats)
	}
	if countEvents(res.Events, EventRoundLost) != 1 {
		t.Error("expected one round-lost event")
	}
	assertFreshRound(t, e)
	if e.Round() != 1 || e.HighScore() != 20 {
		t.Errorf("round = %d high = %d, expected 1/20", e.Round(), e.HighScore())
	}
}

func TestRoundResetIsComplete(t *testing.T) {
	e := newTestEngine(t)
	s := e.state
	s.Score = 12000
	s.Encounters[0].State = Defeated
	s.Encounters[0].Health = 0
	s.Encounters[1].State = Spawned
	s.Encounters[1].Health = 40
	s.Encounters[1].Boss = &Boss{Tier: 2, Box: core.NewRect(100, 100, 180, 140)}
	s.EnemyBullets = append(s.EnemyBullets, &Bullet{Box: core.NewRect(10, 10, 8, 16), VY: 6, Owner: OwnerHeavy})
	s.Pickups = append(s.Pickups, &Pickup{Kind: PickupDual, Box: core.NewRect(10, 10, 32, 32)})
	s.Hazards = append(s.Hazards, &Hazard{Kind: HazardMeteorSmall, Box: core.NewRect(500, 600, 40, 40)})
	s.Economy.Health = 1
	s.Economy.Ammo = 3

	e.Step(Input{Fire: true, MoveX: 1})
	assertFreshRound(t, e)
	if e.HighScore() < 12000 {
		t.Errorf("HighScore() = %d, expected the session best to survive the reset", e.HighScore())
	}

	res := e.Step(Input{})
	if res.Lost || e.State().Tick != 1 {
		t.Error("the next tick should run on the fresh round")
	}
}

func TestRestartSkipsPresentation(t *testing.T) {
	pres := &recordingPresenter{}
	e := newTestEngine(t, WithPresenter(pres))
	e.Step(Input{Fire: true})
	e.Step(Input{Pause: true})

	e.Restart()
	assertFreshRound(t, e)
	if e.Paused() || len(pres.defeats) != 0 || e.Round() != 0 {
		t.Error("Restart() should unpause without a defeat presentation")
	}
}

func TestLongRunStaysInBounds(t *testing.T) {
	for _, seed := range []int64{1, 7, 2024} {
		e, err := New(config.DefaultConfig(), WithSeed(seed))
		if err != nil {
			t.Fatal(err)
		}
		cfg := e.Config()
		inputs := NewLCG(seed * 31)
		prev := e.State().Speeds
		var activations [config.BossTiers]int

		for tick := 0; tick < 10000; tick++ {
			res := e.Step(Input{
				MoveX: inputs.Intn(3) - 1,
				MoveY: inputs.Intn(3) - 1,
				Fire:  inputs.Intn(3) > 0,
			})
			s := e.State()

			if h := s.Economy.Health; h < 0 || h > cfg.Economy.MaxHealth {
				t.Fatalf("seed %d tick %d: health %d out of range", seed, tick, h)
			}
			if a := s.Economy.Ammo; a < 0 || a > cfg.Economy.MaxAmmo {
				t.Fatalf("seed %d tick %d: ammo %d out of range", seed, tick, a)
			}
			if s.InFlight() != len(s.Bullets) || s.InFlight() > cfg.Player.MaxInFlight {
				t.Fatalf("seed %d tick %d: in flight %d with %d bullets", seed, tick, s.InFlight(), len(s.Bullets))
			}
			p := s.Player.Box
			if p.X < 0 || p.Y < 0 || p.Right() > cfg.Playfield.Width || p.Bottom() > cfg.Playfield.Height {
				t.Fatalf("seed %d tick %d: player at %+v left the playfield", seed, tick, p)
			}
			if n := s.countHazards(HazardHeavyEnemy); n > 2 {
				t.Fatalf("seed %d tick %d: %d heavy enemies", seed, tick, n)
			}

			for _, ev := range res.Events {
				if ev.Kind != EventBossActivated {
					continue
				}
				activations[ev.Tier-1]++
				if activations[ev.Tier-1] > 1 {
					t.Fatalf("seed %d tick %d: tier %d activated twice in one round", seed, tick, ev.Tier)
				}
				if !res.Lost && res.Score < cfg.Bosses[ev.Tier-1].Threshold {
					t.Fatalf("seed %d tick %d: tier %d activated below its threshold", seed, tick, ev.Tier)
				}
			}

			if res.Lost {
				activations = [config.BossTiers]int{}
				prev = s.Speeds
				continue
			}
			for k := range s.Speeds.Hazard {
				if s.Speeds.Hazard[k] < prev.Hazard[k] {
					t.Fatalf("seed %d tick %d: %v slowed down within a round", seed, tick, HazardKind(k))
				}
			}
			prev = s.Speeds
		}
	}
}
