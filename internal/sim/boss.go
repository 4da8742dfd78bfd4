package sim

import "github.com/vovakirdan/cosmic-heat/internal/config"

// EncounterState is the lifecycle of one boss tier within a round.
type EncounterState int

const (
	Dormant EncounterState = iota
	Spawned
	Defeated
)

func (s EncounterState) String() string {
	switch s {
	case Dormant:
		return "dormant"
	case Spawned:
		return "spawned"
	case Defeated:
		return "defeated"
	default:
		return "unknown"
	}
}

// Encounter tracks one boss tier. It moves Dormant -> Spawned -> Defeated
// at most once per round; only a round reset returns it to Dormant.
type Encounter struct {
	Tier      int
	State     EncounterState
	Health    int
	MaxHealth int
	Boss      *Boss // Live actor while Spawned
}

// activateBosses spawns every dormant tier whose threshold the score has reached.
func (e *Engine) activateBosses() {
	s := e.state
	for i := range s.Encounters {
		enc := &s.Encounters[i]
		bc := &e.cfg.Bosses[i]
		if enc.State != Dormant || s.Score < bc.Threshold {
			continue
		}

		enc.State = Spawned
		enc.Health = enc.MaxHealth
		enc.Boss = &Boss{
			Tier:     enc.Tier,
			Box:      e.spawnBox(bc.Spawn, bc.Size),
			Cooldown: bc.Weapon.FireDelay,
		}

		e.play(CueWarning)
		e.emit(Event{Kind: EventBossActivated, Tier: enc.Tier})
		e.logger.Info("boss activated", "tier", enc.Tier, "score", s.Score, "tick", s.Tick)
	}
}

// hitBoss applies one player bullet to a spawned boss.
// It reports whether the hit defeated the boss.
func (e *Engine) hitBoss(enc *Encounter, bc *config.BossConfig) bool {
	enc.Health -= bc.BulletDamage
	e.emit(Event{Kind: EventBossHit, Tier: enc.Tier})
	if enc.Health > 0 {
		return false
	}
	e.defeatBoss(enc, bc)
	return true
}

// defeatBoss destroys the boss, grants the reward once and frees the tier slot.
func (e *Engine) defeatBoss(enc *Encounter, bc *config.BossConfig) {
	s := e.state
	wreck := enc.Boss.Box

	enc.Health = 0
	enc.State = Defeated
	enc.Boss = nil

	s.Score += bc.Reward
	e.addExplosion(ExplosionLarge, wreck)
	e.play(CueExplosion)
	e.emit(Event{Kind: EventBossDefeated, Tier: enc.Tier, Score: bc.Reward})
	e.logger.Info("boss defeated", "tier", enc.Tier, "reward", bc.Reward, "score", s.Score)
	e.dropAt(bc.Drops, wreck)

	if enc.Tier == config.BossTiers {
		e.emit(Event{Kind: EventVictory})
		e.presenter.ShowVictory()
	}
}
