package config

import (
	_ "embed"
)

//go:embed defaults/cosmic.yaml
var defaultCosmicYAML []byte

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultCosmicYAML
}

// standardBand is the spawn band shared by most falling actors.
func standardBand(oneIn, unlock int, xMin, xMax, aboveMin float64) SpawnConfig {
	return SpawnConfig{
		OneIn:    oneIn,
		Unlock:   unlock,
		XMin:     xMin,
		XMax:     xMax,
		AboveMin: aboveMin,
	}
}

// DefaultConfig returns the built-in Cosmic Heat configuration.
// It mirrors defaults/cosmic.yaml and is used when no document can be parsed.
func DefaultConfig() Config {
	return Config{
		Playfield: PlayfieldConfig{Width: 960, Height: 720},
		Player: PlayerConfig{
			Size:        Size{W: 60, H: 60},
			Speed:       8,
			SpawnOffset: 100,
			FireDelay:   15,
			MaxInFlight: 8,
			Bullet:      Size{W: 6, H: 18},
			BulletSpeed: 12,
		},
		Economy: EconomyConfig{MaxHealth: 200, MaxAmmo: 200},
		Hazards: HazardSet{
			LightEnemy: HazardConfig{
				Size:           Size{W: 56, H: 48},
				Spawn:          standardBand(121, 0, 100, -50, 50),
				ContactDamage:  10,
				SurvivedBonus:  20,
				DestroyedBonus: 50,
				Shootable:      true,
				Explosion:      "small",
				Drops: []DropConfig{
					{Pickup: "ammo", OneIn: 9},
					{Pickup: "health", OneIn: 9, AtTop: true},
				},
			},
			HeavyEnemy: HazardConfig{
				Size: Size{W: 80, H: 72},
				Spawn: SpawnConfig{
					OneIn: 41, Unlock: 3000, Cap: 2,
					XMin: 200, XMax: -100, AboveMin: 100,
				},
				ContactDamage:  40,
				SurvivedBonus:  20,
				DestroyedBonus: 80,
				Shootable:      true,
				Explosion:      "large",
				Drops:          []DropConfig{{Pickup: "dual", OneIn: 21}},
				Weapon: WeaponConfig{
					FireDelay: 90,
					Damage:    10,
					Speed:     6,
					Bullet:    Size{W: 8, H: 16},
					Aimed:     true,
				},
			},
			MeteorSmall: HazardConfig{
				Size:           Size{W: 40, H: 40},
				Spawn:          standardBand(91, 0, 100, -50, 50),
				ContactDamage:  10,
				SurvivedBonus:  20,
				DestroyedBonus: 40,
				Shootable:      true,
				Explosion:      "small",
				Drops:          []DropConfig{{Pickup: "dual", OneIn: 21}},
			},
			MeteorLarge: HazardConfig{
				Size: Size{W: 96, H: 96},
				Spawn: SpawnConfig{
					OneIn: 101, Unlock: 3001,
					XMin: 0, XMax: 50, AboveMin: 0, AboveMax: 50,
				},
				ContactDamage:  10,
				SurvivedBonus:  50,
				DestroyedBonus: 80,
				Drift:          1.5,
				Shootable:      true,
				Explosion:      "large",
				Drops:          []DropConfig{{Pickup: "dual", OneIn: 11}},
			},
			BlackHole: HazardConfig{
				Size:          Size{W: 110, H: 110},
				Spawn:         standardBand(501, 1001, 100, -50, 50),
				ContactDamage: 1,
				Persistent:    true,
				Explosion:     "small",
			},
		},
		Pickups: PickupSet{
			Ammo: PickupConfig{
				Size:  Size{W: 32, H: 32},
				Spawn: standardBand(0, 0, 50, -30, 30),
				Ammo:  50,
			},
			Health: PickupConfig{
				Size:   Size{W: 32, H: 32},
				Spawn:  standardBand(0, 0, 50, -30, 30),
				Health: 50,
			},
			Dual: PickupConfig{
				Size:   Size{W: 32, H: 32},
				Spawn:  standardBand(0, 0, 50, -30, 30),
				Health: 50,
				Ammo:   50,
			},
			Score: PickupConfig{
				Size:  Size{W: 32, H: 32},
				Spawn: standardBand(61, 0, 50, -50, 50),
				Score: 20,
			},
		},
		Bosses: []BossConfig{
			defaultBoss(1, 150, 5000, 5, 20, 400, Size{W: 160, H: 120}, PatternWeave, 3, 80, 60),
			defaultBoss(2, 150, 10000, 8, 2, 800, Size{W: 180, H: 140}, PatternHold, 2, 100, 45),
			defaultBoss(3, 200, 15000, 6, 1, 1000, Size{W: 220, H: 160}, PatternTrack, 3, 90, 30),
		},
		Explosions: ExplosionSet{
			Small:  ExplosionConfig{Size: Size{W: 64, H: 64}, Frames: 24},
			Large:  ExplosionConfig{Size: Size{W: 128, H: 128}, Frames: 36},
			Impact: ExplosionConfig{Size: Size{W: 32, H: 32}, Frames: 12},
		},
		Difficulty: DefaultDifficulty(),
	}
}

func defaultBoss(tier, maxHealth, threshold, bulletDamage, contactDamage, reward int,
	size Size, pattern string, speed, holdY float64, fireDelay int) BossConfig {
	return BossConfig{
		Tier:          tier,
		MaxHealth:     maxHealth,
		Threshold:     threshold,
		BulletDamage:  bulletDamage,
		ContactDamage: contactDamage,
		Reward:        reward,
		Size:          size,
		Pattern:       pattern,
		Speed:         speed,
		HoldY:         holdY,
		Spawn: SpawnConfig{
			XMin: 200, XMax: -100, AboveMin: 100, AboveMax: 300,
		},
		Weapon: WeaponConfig{
			FireDelay: fireDelay,
			Damage:    20,
			Speed:     7,
			Bullet:    Size{W: 10, H: 20},
		},
		Drops: []DropConfig{{Pickup: "dual", OneIn: 21}},
	}
}

// DefaultDifficulty returns the built-in speed tables.
func DefaultDifficulty() DifficultyConfig {
	return DifficultyConfig{
		Enabled: true,
		Meteor: StepTable{
			{Score: 0, Speed: 1}, {Score: 3000, Speed: 4}, {Score: 10000, Speed: 6},
			{Score: 15000, Speed: 8}, {Score: 20000, Speed: 10},
		},
		BlackHole: StepTable{
			{Score: 0, Speed: 1}, {Score: 5000, Speed: 4}, {Score: 15000, Speed: 6},
			{Score: 20000, Speed: 8},
		},
		LightEnemy: StepTable{{Score: 0, Speed: 2}},
		HeavyEnemy: StepTable{{Score: 0, Speed: 1}},
		ScoreBonus: StepTable{
			{Score: 0, Speed: 1}, {Score: 3000, Speed: 2}, {Score: 10000, Speed: 4},
			{Score: 15000, Speed: 6}, {Score: 20000, Speed: 8},
		},
		Refill: StepTable{{Score: 0, Speed: 2}},
		Background: StepTable{
			{Score: 0, Speed: 1.0}, {Score: 3000, Speed: 1.5}, {Score: 10000, Speed: 2.0},
			{Score: 15000, Speed: 2.5},
		},
	}
}
