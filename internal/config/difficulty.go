package config

import "fmt"

// Step is one row of a speed table: from Score onward the category moves at Speed.
type Step struct {
	Score int     `yaml:"score"`
	Speed float64 `yaml:"speed"`
}

// StepTable maps score thresholds to speeds. Rows are ascending by Score.
type StepTable []Step

// At returns the speed of the highest threshold not exceeding score.
// Scores below the first threshold use the first row.
func (t StepTable) At(score int) float64 {
	if len(t) == 0 {
		return 0
	}
	speed := t[0].Speed
	for _, s := range t[1:] {
		if s.Score > score {
			break
		}
		speed = s.Speed
	}
	return speed
}

// Base returns the speed at score zero.
func (t StepTable) Base() float64 {
	return t.At(0)
}

// validate checks that thresholds start at zero, strictly ascend and
// that speeds never decrease.
func (t StepTable) validate(field string) error {
	if len(t) == 0 {
		return &ConfigurationError{Field: field, Reason: "table is empty"}
	}
	if t[0].Score != 0 {
		return &ConfigurationError{Field: field, Reason: "first threshold must be 0"}
	}
	for i := 1; i < len(t); i++ {
		if t[i].Score <= t[i-1].Score {
			return &ConfigurationError{
				Field:  fmt.Sprintf("%s[%d].score", field, i),
				Reason: "thresholds must ascend",
			}
		}
		if t[i].Speed < t[i-1].Speed {
			return &ConfigurationError{
				Field:  fmt.Sprintf("%s[%d].speed", field, i),
				Reason: "speed must not decrease",
			}
		}
	}
	for i, s := range t {
		if s.Speed < 0 {
			return &ConfigurationError{
				Field:  fmt.Sprintf("%s[%d].speed", field, i),
				Reason: "speed must not be negative",
			}
		}
	}
	return nil
}

// tables returns every speed table with its field name, in a fixed order.
func (d DifficultyConfig) tables() []struct {
	name  string
	table StepTable
} {
	return []struct {
		name  string
		table StepTable
	}{
		{"difficulty.meteor", d.Meteor},
		{"difficulty.black_hole", d.BlackHole},
		{"difficulty.light_enemy", d.LightEnemy},
		{"difficulty.heavy_enemy", d.HeavyEnemy},
		{"difficulty.score_bonus", d.ScoreBonus},
		{"difficulty.refill", d.Refill},
		{"difficulty.background", d.Background},
	}
}
