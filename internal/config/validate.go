package config

import "fmt"

// ConfigurationError reports an invalid construction parameter.
// It is only produced at setup time, never while a round is running.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Reason)
}

// BossTiers is the number of boss encounters per round.
const BossTiers = 3

// MaxCounter is the upper bound for the health and ammo capacities.
const MaxCounter = 200

// Validate checks every parameter the simulation relies on.
// The first problem found is returned as a *ConfigurationError.
func (c Config) Validate() error {
	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		return &ConfigurationError{Field: "playfield", Reason: "width and height must be positive"}
	}
	if c.Economy.MaxHealth <= 0 || c.Economy.MaxHealth > MaxCounter {
		return &ConfigurationError{Field: "economy.max_health", Reason: fmt.Sprintf("must be in [1, %d]", MaxCounter)}
	}
	if c.Economy.MaxAmmo <= 0 || c.Economy.MaxAmmo > MaxCounter {
		return &ConfigurationError{Field: "economy.max_ammo", Reason: fmt.Sprintf("must be in [1, %d]", MaxCounter)}
	}
	if err := c.validatePlayer(); err != nil {
		return err
	}

	hazards := []struct {
		name string
		h    HazardConfig
	}{
		{"hazards.light_enemy", c.Hazards.LightEnemy},
		{"hazards.heavy_enemy", c.Hazards.HeavyEnemy},
		{"hazards.meteor_small", c.Hazards.MeteorSmall},
		{"hazards.meteor_large", c.Hazards.MeteorLarge},
		{"hazards.black_hole", c.Hazards.BlackHole},
	}
	for _, hz := range hazards {
		if err := validateHazard(hz.name, hz.h); err != nil {
			return err
		}
	}

	if err := c.validatePickups(); err != nil {
		return err
	}
	if err := c.validateBosses(); err != nil {
		return err
	}

	explosions := []struct {
		name string
		e    ExplosionConfig
	}{
		{"explosions.small", c.Explosions.Small},
		{"explosions.large", c.Explosions.Large},
		{"explosions.impact", c.Explosions.Impact},
	}
	for _, ex := range explosions {
		if ex.e.Frames <= 0 {
			return &ConfigurationError{Field: ex.name + ".frames", Reason: "must be positive"}
		}
	}

	for _, tbl := range c.Difficulty.tables() {
		if err := tbl.table.validate(tbl.name); err != nil {
			return err
		}
	}
	return nil
}

func (c Config) validatePlayer() error {
	p := c.Player
	switch {
	case p.Size.W <= 0 || p.Size.H <= 0:
		return &ConfigurationError{Field: "player.size", Reason: "must be positive"}
	case p.Speed < 0:
		return &ConfigurationError{Field: "player.speed", Reason: "must not be negative"}
	case p.FireDelay < 0:
		return &ConfigurationError{Field: "player.fire_delay", Reason: "must not be negative"}
	case p.MaxInFlight < 0:
		return &ConfigurationError{Field: "player.max_in_flight", Reason: "must not be negative"}
	case p.BulletSpeed <= 0:
		return &ConfigurationError{Field: "player.bullet_speed", Reason: "must be positive"}
	case p.SpawnOffset < p.Size.H || p.SpawnOffset > c.Playfield.Height:
		return &ConfigurationError{Field: "player.spawn_offset", Reason: "spawn point must lie inside the playfield"}
	}
	return nil
}

func validateHazard(name string, h HazardConfig) error {
	if h.Size.W <= 0 || h.Size.H <= 0 {
		return &ConfigurationError{Field: name + ".size", Reason: "must be positive"}
	}
	if err := validateSpawn(name+".spawn", h.Spawn); err != nil {
		return err
	}
	if h.Spawn.OneIn <= 0 {
		return &ConfigurationError{Field: name + ".spawn.one_in", Reason: "spawn rate must be positive"}
	}
	if h.ContactDamage < 0 || h.SurvivedBonus < 0 || h.DestroyedBonus < 0 {
		return &ConfigurationError{Field: name, Reason: "damage and bonuses must not be negative"}
	}
	if h.Explosion != "small" && h.Explosion != "large" {
		return &ConfigurationError{Field: name + ".explosion", Reason: "must be small or large"}
	}
	if err := validateDrops(name+".drops", h.Drops); err != nil {
		return err
	}
	return validateWeapon(name+".weapon", h.Weapon)
}

func validateSpawn(name string, s SpawnConfig) error {
	switch {
	case s.OneIn < 0:
		return &ConfigurationError{Field: name + ".one_in", Reason: "must not be negative"}
	case s.Unlock < 0:
		return &ConfigurationError{Field: name + ".unlock", Reason: "must not be negative"}
	case s.Cap < 0:
		return &ConfigurationError{Field: name + ".cap", Reason: "must not be negative"}
	case s.AboveMin < 0 || s.AboveMax < 0:
		return &ConfigurationError{Field: name, Reason: "above_min and above_max must not be negative"}
	case s.AboveMax != 0 && s.AboveMax < s.AboveMin:
		return &ConfigurationError{Field: name + ".above_max", Reason: "must not be below above_min"}
	}
	return nil
}

func validateDrops(name string, drops []DropConfig) error {
	for i, d := range drops {
		field := fmt.Sprintf("%s[%d]", name, i)
		if !IsPickupName(d.Pickup) {
			return &ConfigurationError{Field: field + ".pickup", Reason: "unknown pickup " + d.Pickup}
		}
		if d.OneIn <= 0 {
			return &ConfigurationError{Field: field + ".one_in", Reason: "drop rate must be positive"}
		}
	}
	return nil
}

func validateWeapon(name string, w WeaponConfig) error {
	if w.FireDelay == 0 {
		return nil
	}
	switch {
	case w.FireDelay < 0:
		return &ConfigurationError{Field: name + ".fire_delay", Reason: "must not be negative"}
	case w.Damage < 0:
		return &ConfigurationError{Field: name + ".damage", Reason: "must not be negative"}
	case w.Speed <= 0:
		return &ConfigurationError{Field: name + ".speed", Reason: "must be positive"}
	case w.Bullet.W <= 0 || w.Bullet.H <= 0:
		return &ConfigurationError{Field: name + ".bullet", Reason: "must be positive"}
	}
	return nil
}

func (c Config) validatePickups() error {
	pickups := []struct {
		name string
		p    PickupConfig
		drop bool
	}{
		{"pickups.ammo", c.Pickups.Ammo, true},
		{"pickups.health", c.Pickups.Health, true},
		{"pickups.dual", c.Pickups.Dual, true},
		{"pickups.score", c.Pickups.Score, false},
	}
	for _, pk := range pickups {
		if pk.p.Size.W <= 0 || pk.p.Size.H <= 0 {
			return &ConfigurationError{Field: pk.name + ".size", Reason: "must be positive"}
		}
		if err := validateSpawn(pk.name+".spawn", pk.p.Spawn); err != nil {
			return err
		}
		if pk.drop && pk.p.Spawn.OneIn != 0 {
			return &ConfigurationError{Field: pk.name + ".spawn.one_in", Reason: "refills only appear as drops"}
		}
		if !pk.drop && pk.p.Spawn.OneIn <= 0 {
			return &ConfigurationError{Field: pk.name + ".spawn.one_in", Reason: "spawn rate must be positive"}
		}
		if pk.p.Health < 0 || pk.p.Ammo < 0 || pk.p.Score < 0 {
			return &ConfigurationError{Field: pk.name, Reason: "effects must not be negative"}
		}
	}
	return nil
}

func (c Config) validateBosses() error {
	if len(c.Bosses) != BossTiers {
		return &ConfigurationError{Field: "bosses", Reason: fmt.Sprintf("exactly %d tiers required", BossTiers)}
	}
	for i, b := range c.Bosses {
		name := fmt.Sprintf("bosses[%d]", i)
		switch {
		case b.Tier != i+1:
			return &ConfigurationError{Field: name + ".tier", Reason: "tiers must be listed as 1, 2, 3"}
		case b.MaxHealth <= 0:
			return &ConfigurationError{Field: name + ".max_health", Reason: "must be positive"}
		case b.BulletDamage <= 0:
			return &ConfigurationError{Field: name + ".bullet_damage", Reason: "must be positive"}
		case b.Threshold < 0 || b.ContactDamage < 0 || b.Reward < 0:
			return &ConfigurationError{Field: name, Reason: "threshold, contact damage and reward must not be negative"}
		case b.Size.W <= 0 || b.Size.H <= 0:
			return &ConfigurationError{Field: name + ".size", Reason: "must be positive"}
		case b.Pattern != PatternWeave && b.Pattern != PatternHold && b.Pattern != PatternTrack:
			return &ConfigurationError{Field: name + ".pattern", Reason: "unknown pattern " + b.Pattern}
		}
		if err := validateSpawn(name+".spawn", b.Spawn); err != nil {
			return err
		}
		if err := validateDrops(name+".drops", b.Drops); err != nil {
			return err
		}
		if err := validateWeapon(name+".weapon", b.Weapon); err != nil {
			return err
		}
	}
	return nil
}

// Pickup names used by drop tables.
const (
	PickupAmmo   = "ammo"
	PickupHealth = "health"
	PickupDual   = "dual"
	PickupScore  = "score"
)

// IsPickupName reports whether name refers to a pickup category.
func IsPickupName(name string) bool {
	switch name {
	case PickupAmmo, PickupHealth, PickupDual, PickupScore:
		return true
	}
	return false
}
