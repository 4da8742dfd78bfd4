package sim

import "github.com/vovakirdan/cosmic-heat/internal/config"

// Speeds is the per-category fall speed for the current score.
type Speeds struct {
	Hazard     [NumHazardKinds]float64
	Pickup     [NumPickupKinds]float64
	Background float64
}

// Scaler maps score to speeds. It is the only reader of the step tables.
type Scaler struct {
	tables config.DifficultyConfig
}

// NewScaler creates a scaler over validated tables.
func NewScaler(tables config.DifficultyConfig) Scaler {
	return Scaler{tables: tables}
}

func (s Scaler) at(t config.StepTable, score int) float64 {
	if !s.tables.Enabled {
		return t.Base()
	}
	return t.At(score)
}

// Speeds returns every category's speed at the given score.
func (s Scaler) Speeds(score int) Speeds {
	t := s.tables
	meteor := s.at(t.Meteor, score)
	refill := s.at(t.Refill, score)

	var sp Speeds
	sp.Hazard[HazardLightEnemy] = s.at(t.LightEnemy, score)
	sp.Hazard[HazardHeavyEnemy] = s.at(t.HeavyEnemy, score)
	sp.Hazard[HazardMeteorSmall] = meteor
	sp.Hazard[HazardMeteorLarge] = meteor
	sp.Hazard[HazardBlackHole] = s.at(t.BlackHole, score)
	sp.Pickup[PickupAmmo] = refill
	sp.Pickup[PickupHealth] = refill
	sp.Pickup[PickupDual] = refill
	sp.Pickup[PickupScore] = s.at(t.ScoreBonus, score)
	sp.Background = s.at(t.Background, score)
	return sp
}
