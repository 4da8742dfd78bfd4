// Package config provides YAML-based game configuration loading,
// validation and difficulty presets for Cosmic Heat.
package config

// Config contains every tunable of the simulation.
type Config struct {
	Playfield  PlayfieldConfig  `yaml:"playfield"`
	Player     PlayerConfig     `yaml:"player"`
	Economy    EconomyConfig    `yaml:"economy"`
	Hazards    HazardSet        `yaml:"hazards"`
	Pickups    PickupSet        `yaml:"pickups"`
	Bosses     []BossConfig     `yaml:"bosses"`
	Explosions ExplosionSet     `yaml:"explosions"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PlayfieldConfig defines the world size in world units.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Size is the bounding box of an actor in world units.
type Size struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// PlayerConfig defines the player ship and its gun.
type PlayerConfig struct {
	Size        Size    `yaml:"size"`
	Speed       float64 `yaml:"speed"`        // World units per tick
	SpawnOffset float64 `yaml:"spawn_offset"` // Distance of the spawn point above the bottom edge
	FireDelay   int     `yaml:"fire_delay"`   // Minimum ticks between shots
	MaxInFlight int     `yaml:"max_in_flight"`
	Bullet      Size    `yaml:"bullet"`
	BulletSpeed float64 `yaml:"bullet_speed"`
}

// EconomyConfig defines the bounded player counters.
type EconomyConfig struct {
	MaxHealth int `yaml:"max_health"`
	MaxAmmo   int `yaml:"max_ammo"`
}

// SpawnConfig describes when and where a category appears.
// Spawn happens on a tick iff a draw in [0, OneIn) is zero.
type SpawnConfig struct {
	OneIn  int `yaml:"one_in"`
	Unlock int `yaml:"unlock"` // Minimum score before the category spawns
	Cap    int `yaml:"cap"`    // Maximum live actors, 0 means unlimited

	// XMin and XMax bound the left edge of a new actor.
	// A non-positive XMax is measured back from the right edge.
	XMin float64 `yaml:"x_min"`
	XMax float64 `yaml:"x_max"`

	// New actors start fully above the top edge, between AboveMin and AboveMax
	// units higher than their own height. AboveMax 0 means one playfield height.
	AboveMin float64 `yaml:"above_min"`
	AboveMax float64 `yaml:"above_max"`
}

// DropConfig is one independent pickup draw made when a target is destroyed.
type DropConfig struct {
	Pickup string `yaml:"pickup"` // ammo, health, dual or score
	OneIn  int    `yaml:"one_in"`
	AtTop  bool   `yaml:"at_top"` // Place at the pickup's own spawn band instead of the wreck
}

// WeaponConfig describes an enemy gun. A zero FireDelay disables it.
type WeaponConfig struct {
	FireDelay int     `yaml:"fire_delay"`
	Damage    int     `yaml:"damage"`
	Speed     float64 `yaml:"speed"`
	Bullet    Size    `yaml:"bullet"`
	Aimed     bool    `yaml:"aimed"`
}

// HazardConfig defines one hazard category.
type HazardConfig struct {
	Size           Size         `yaml:"size"`
	Spawn          SpawnConfig  `yaml:"spawn"`
	ContactDamage  int          `yaml:"contact_damage"`
	SurvivedBonus  int          `yaml:"survived_bonus"`
	DestroyedBonus int          `yaml:"destroyed_bonus"`
	Drift          float64      `yaml:"drift"`      // Horizontal velocity
	Persistent     bool         `yaml:"persistent"` // Damages every overlapping tick and is never consumed
	Shootable      bool         `yaml:"shootable"`
	Explosion      string       `yaml:"explosion"` // small or large
	Drops          []DropConfig `yaml:"drops"`
	Weapon         WeaponConfig `yaml:"weapon"`
}

// HazardSet holds the five hazard categories.
type HazardSet struct {
	LightEnemy  HazardConfig `yaml:"light_enemy"`
	HeavyEnemy  HazardConfig `yaml:"heavy_enemy"`
	MeteorSmall HazardConfig `yaml:"meteor_small"`
	MeteorLarge HazardConfig `yaml:"meteor_large"`
	BlackHole   HazardConfig `yaml:"black_hole"`
}

// PickupConfig defines one pickup category and its economy effect.
type PickupConfig struct {
	Size   Size        `yaml:"size"`
	Spawn  SpawnConfig `yaml:"spawn"`
	Health int         `yaml:"health"`
	Ammo   int         `yaml:"ammo"`
	Score  int         `yaml:"score"`
}

// PickupSet holds the four pickup categories.
type PickupSet struct {
	Ammo   PickupConfig `yaml:"ammo"`
	Health PickupConfig `yaml:"health"`
	Dual   PickupConfig `yaml:"dual"`
	Score  PickupConfig `yaml:"score"`
}

// Boss movement patterns.
const (
	PatternWeave = "weave" // Sweep left and right across the field
	PatternHold  = "hold"  // Descend to a fixed line, then drift toward the player
	PatternTrack = "track" // Descend to a fixed line, then follow the player's x
)

// BossConfig defines one boss tier.
type BossConfig struct {
	Tier          int          `yaml:"tier"`
	MaxHealth     int          `yaml:"max_health"`
	Threshold     int          `yaml:"threshold"`
	BulletDamage  int          `yaml:"bullet_damage"` // Health lost per player bullet
	ContactDamage int          `yaml:"contact_damage"`
	Reward        int          `yaml:"reward"`
	Size          Size         `yaml:"size"`
	Pattern       string       `yaml:"pattern"`
	Speed         float64      `yaml:"speed"`
	HoldY         float64      `yaml:"hold_y"`
	Spawn         SpawnConfig  `yaml:"spawn"`
	Weapon        WeaponConfig `yaml:"weapon"`
	Drops         []DropConfig `yaml:"drops"`
}

// ExplosionConfig defines a purely visual explosion.
type ExplosionConfig struct {
	Size   Size `yaml:"size"`
	Frames int  `yaml:"frames"`
}

// ExplosionSet holds the explosion kinds.
type ExplosionSet struct {
	Small  ExplosionConfig `yaml:"small"`
	Large  ExplosionConfig `yaml:"large"`
	Impact ExplosionConfig `yaml:"impact"`
}

// ByName returns the explosion with the given name, falling back to Small.
func (e ExplosionSet) ByName(name string) ExplosionConfig {
	switch name {
	case "large":
		return e.Large
	case "impact":
		return e.Impact
	default:
		return e.Small
	}
}

// DifficultyConfig holds the score-driven speed tables.
type DifficultyConfig struct {
	Enabled    bool      `yaml:"enabled"` // When false every table stays at its base value
	Meteor     StepTable `yaml:"meteor"`
	BlackHole  StepTable `yaml:"black_hole"`
	LightEnemy StepTable `yaml:"light_enemy"`
	HeavyEnemy StepTable `yaml:"heavy_enemy"`
	ScoreBonus StepTable `yaml:"score_bonus"`
	Refill     StepTable `yaml:"refill"`
	Background StepTable `yaml:"background"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the difficulty presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset converts a flag value into a preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	for _, p := range Presets {
		if string(p) == s {
			return p, nil
		}
	}
	return "", &ConfigurationError{Field: "difficulty", Reason: "unknown preset " + s}
}
