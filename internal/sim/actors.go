package sim

import "github.com/vovakirdan/cosmic-heat/internal/core"

// HazardKind is the category of a hazard actor.
type HazardKind int

const (
	HazardLightEnemy HazardKind = iota
	HazardHeavyEnemy
	HazardMeteorSmall
	HazardMeteorLarge
	HazardBlackHole

	NumHazardKinds = 5
)

func (k HazardKind) String() string {
	switch k {
	case HazardLightEnemy:
		return "light-enemy"
	case HazardHeavyEnemy:
		return "heavy-enemy"
	case HazardMeteorSmall:
		return "meteor-small"
	case HazardMeteorLarge:
		return "meteor-large"
	case HazardBlackHole:
		return "black-hole"
	default:
		return "unknown"
	}
}

// PickupKind is the category of a pickup actor.
type PickupKind int

const (
	PickupAmmo PickupKind = iota
	PickupHealth
	PickupDual
	PickupScore

	NumPickupKinds = 4
)

func (k PickupKind) String() string {
	switch k {
	case PickupAmmo:
		return "ammo"
	case PickupHealth:
		return "health"
	case PickupDual:
		return "dual"
	case PickupScore:
		return "score"
	default:
		return "unknown"
	}
}

// pickupKindOf maps a drop table name to its kind.
func pickupKindOf(name string) PickupKind {
	switch name {
	case "ammo":
		return PickupAmmo
	case "health":
		return PickupHealth
	case "dual":
		return PickupDual
	default:
		return PickupScore
	}
}

// Owner tags who fired a bullet.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerHeavy
	OwnerBoss
)

// Player is the ship controlled by the input snapshot.
// Health and ammunition live in the Economy, not here.
type Player struct {
	Box          core.Rect
	MoveX, MoveY int // Last applied movement intent
}

// Bullet is a projectile. Player bullets travel up, enemy bullets down.
type Bullet struct {
	Box    core.Rect
	VX, VY float64
	Owner  Owner
	Tier   int // Boss tier for OwnerBoss
	Damage int // Damage dealt to the player; zero for player bullets
	Dead   bool
}

// Hazard is an enemy, meteor or black hole.
type Hazard struct {
	Kind     HazardKind
	Box      core.Rect
	VX, VY   float64
	Cooldown int // Ticks until the next shot, for armed hazards
	Dead     bool
}

// Pickup is a collectible falling toward the player.
type Pickup struct {
	Kind PickupKind
	Box  core.Rect
	VY   float64
	Dead bool
}

// ExplosionKind selects the explosion animation.
type ExplosionKind int

const (
	ExplosionSmall ExplosionKind = iota
	ExplosionLarge
	ExplosionImpact
)

func (k ExplosionKind) String() string {
	switch k {
	case ExplosionLarge:
		return "large"
	case ExplosionImpact:
		return "impact"
	default:
		return "small"
	}
}

// Explosion is a purely visual, self-expiring effect.
type Explosion struct {
	Kind   ExplosionKind
	Box    core.Rect
	Frame  int
	Frames int

	born uint64 // Tick it was created on; frame 0 is shown for that tick
}

// Boss is the live actor of a spawned encounter. It owns its bullets.
type Boss struct {
	Tier     int
	Box      core.Rect
	VX       float64
	Cooldown int
	Bullets  []*Bullet
}

// ActorKind identifies the collection an Actor view came from.
type ActorKind int

const (
	ActorPlayer ActorKind = iota
	ActorBullet
	ActorHazard
	ActorPickup
	ActorBoss
	ActorExplosion
)

// Actor is a read-only view of one live actor, handed to a Drawer.
type Actor struct {
	Kind      ActorKind
	Box       core.Rect
	Hazard    HazardKind
	Pickup    PickupKind
	Explosion ExplosionKind
	Owner     Owner
	Tier      int
	Frame     int
	Frames    int
	Health    int // Boss health
	MaxHealth int
}
