package sim

import (
	"testing"

	"github.com/vovakirdan/cosmic-heat/internal/core"
)

// spawnTierOne activates the first boss and parks it on its hold line,
// with the player moved out of its line of fire.
func spawnTierOne(t *testing.T, e *Engine) *Boss {
	t.Helper()
	e.state.Score = 5000
	e.Step(Input{})
	boss := e.state.Encounters[0].Boss
	if boss == nil {
		t.Fatal("tier 1 should be spawned at 5000")
	}
	boss.Box.X, boss.Box.Y = 400, 80
	e.state.Player.Box.X = 0
	return boss
}

// shootBoss places a player bullet on the boss center.
func shootBoss(e *Engine, boss *Boss) {
	cx, cy := boss.Box.Center()
	addPlayerBullet(e, core.RectAt(cx, cy, 6, 18))
}

func TestBossActivatesOnce(t *testing.T) {
	audio := &recordingAudio{}
	e := newTestEngine(t, WithAudio(audio))
	e.state.Score = 5000

	activations := 0
	for range 60 {
		res := e.Step(Input{})
		activations += countEvents(res.Events, EventBossActivated)
	}

	if activations != 1 || audio.count(CueWarning) != 1 {
		t.Errorf("activations = %d warnings = %d, expected 1 each", activations, audio.count(CueWarning))
	}
	st := e.Boss(1)
	if st.State != Spawned || !st.Active || st.Health != 150 {
		t.Errorf("Boss(1) = %+v, expected spawned at full health", st)
	}
	if e.Boss(2).State != Dormant {
		t.Error("tier 2 should stay dormant below its threshold")
	}
}

func TestBossSpawnsAboveTop(t *testing.T) {
	e := newTestEngine(t)
	e.state.Score = 15000
	e.spawn()

	for i, enc := range e.state.Encounters {
		if enc.State != Spawned || enc.Boss == nil {
			t.Fatalf("tier %d = %v, expected spawned", i+1, enc.State)
		}
		if enc.Boss.Box.Bottom() > 0 {
			t.Errorf("tier %d spawned at %+v, expected above the top edge", i+1, enc.Boss.Box)
		}
	}
}

func TestBossDefeatAfterThirtyHits(t *testing.T) {
	e := newTestEngine(t)
	boss := spawnTierOne(t, e)

	var defeated int
	for i := 1; i <= 30; i++ {
		shootBoss(e, boss)
		res := e.Step(Input{})
		defeated += countEvents(res.Events, EventBossDefeated)

		st := e.Boss(1)
		if i < 30 {
			if st.State != Spawned || st.Health != 150-5*i {
				t.Fatalf("after hit %d Boss(1) = %+v, expected spawned at %d", i, st, 150-5*i)
			}
			continue
		}
		if st.State != Defeated || st.Health != 0 {
			t.Fatalf("after hit 30 Boss(1) = %+v, expected defeated at 0", st)
		}
	}

	if defeated != 1 {
		t.Errorf("defeat events = %d, expected 1", defeated)
	}
	if e.Score() != 5400 {
		t.Errorf("Score() = %d, expected 5400", e.Score())
	}
	if e.state.Encounters[0].Boss != nil {
		t.Error("the tier slot should be freed")
	}

	var large bool
	for _, ex := range e.State().Explosions {
		if ex.Kind == ExplosionLarge {
			large = true
		}
	}
	if !large {
		t.Error("defeat should leave a large explosion")
	}

	for range 100 {
		res := e.Step(Input{})
		if countEvents(res.Events, EventBossActivated) != 0 {
			t.Fatal("a defeated tier must not reactivate")
		}
	}
	if e.Boss(1).State != Defeated || e.Score() != 5400 {
		t.Errorf("Boss(1) = %v score %d, expected defeated with no further reward", e.Boss(1).State, e.Score())
	}
}

func TestBossRewardGrantedOnce(t *testing.T) {
	e := newTestEngine(t)
	boss := spawnTierOne(t, e)
	e.state.Encounters[0].Health = 5

	shootBoss(e, boss)
	shootBoss(e, boss)
	res := e.Step(Input{})

	if countEvents(res.Events, EventBossDefeated) != 1 || e.Score() != 5400 {
		t.Errorf("score = %d, expected the reward exactly once", e.Score())
	}
	if countEvents(res.Events, EventBossHit) != 1 {
		t.Error("only the killing bullet should register a hit")
	}
	if len(e.State().Bullets) != 1 || e.State().InFlight() != 1 {
		t.Errorf("bullets = %d, expected the second bullet to keep flying", len(e.State().Bullets))
	}
}

func TestBossContactDamage(t *testing.T) {
	audio := &recordingAudio{}
	e := newTestEngine(t, WithAudio(audio))
	boss := spawnTierOne(t, e)

	px, py := e.state.Player.Box.Center()
	boss.Box = core.RectAt(px+40, py, boss.Box.W, boss.Box.H)

	res := e.Step(Input{})
	if e.Health() != 180 {
		t.Errorf("Health() = %d, expected 180", e.Health())
	}
	if countEvents(res.Events, EventBossContact) != 1 || audio.count(CueContact) != 1 {
		t.Error("expected one contact event and one contact cue")
	}

	e.Step(Input{})
	if e.Health() != 160 {
		t.Errorf("Health() = %d, expected contact damage every tick", e.Health())
	}
	if e.Boss(1).State != Spawned {
		t.Error("contact should not hurt the boss")
	}
}

func TestBossFiresOnCadence(t *testing.T) {
	e := newTestEngine(t)
	boss := spawnTierOne(t, e)
	boss.Cooldown = 0

	e.Step(Input{})
	if len(boss.Bullets) != 1 {
		t.Fatalf("boss bullets = %d, expected a shot", len(boss.Bullets))
	}
	b := boss.Bullets[0]
	if b.VX != 0 || b.VY <= 0 || b.Owner != OwnerBoss || b.Tier != 1 || b.Damage != 20 {
		t.Errorf("boss bullet = %+v, expected a straight tier 1 shot", b)
	}

	for range 59 {
		e.Step(Input{})
	}
	if len(boss.Bullets) != 1 {
		t.Errorf("boss bullets = %d, expected the next shot after 60 ticks", len(boss.Bullets))
	}
	e.Step(Input{})
	if len(boss.Bullets) != 2 {
		t.Errorf("boss bullets = %d, expected a second shot", len(boss.Bullets))
	}
}

func TestBossWeaveStaysOnScreen(t *testing.T) {
	e := newTestEngine(t)
	boss := spawnTierOne(t, e)

	for range 1000 {
		e.Step(Input{})
		if boss.Box.X < 0 || boss.Box.Right() > e.cfg.Playfield.Width {
			t.Fatalf("boss at %+v left the playfield", boss.Box)
		}
	}
}

func TestFinalTierVictory(t *testing.T) {
	pres := &recordingPresenter{}
	e := newTestEngine(t, WithPresenter(pres))
	e.state.Encounters[0].State = Defeated
	e.state.Encounters[1].State = Defeated
	e.state.Score = 15000

	res := e.Step(Input{})
	if countEvents(res.Events, EventBossActivated) != 1 || e.Boss(3).State != Spawned {
		t.Fatal("only tier 3 should activate")
	}

	boss := e.state.Encounters[2].Boss
	boss.Box.X, boss.Box.Y = 400, 90
	e.state.Encounters[2].Health = 6
	shootBoss(e, boss)

	res = e.Step(Input{})
	if countEvents(res.Events, EventVictory) != 1 || pres.victories != 1 {
		t.Errorf("victory events = %d presenter = %d, expected 1 each",
			countEvents(res.Events, EventVictory), pres.victories)
	}
	if e.Score() != 16000 {
		t.Errorf("Score() = %d, expected 16000", e.Score())
	}
}
