package sim

import "github.com/vovakirdan/cosmic-heat/internal/core"

// Economy holds the player's bounded health and ammunition counters.
// Every mutation clamps to [0, max].
type Economy struct {
	Health    int
	Ammo      int
	MaxHealth int
	MaxAmmo   int
}

// NewEconomy returns a full economy.
func NewEconomy(maxHealth, maxAmmo int) Economy {
	return Economy{
		Health:    maxHealth,
		Ammo:      maxAmmo,
		MaxHealth: maxHealth,
		MaxAmmo:   maxAmmo,
	}
}

// Damage removes health.
func (e *Economy) Damage(n int) {
	e.Health = core.Clamp(e.Health-n, 0, e.MaxHealth)
}

// Heal restores health.
func (e *Economy) Heal(n int) {
	e.Health = core.Clamp(e.Health+n, 0, e.MaxHealth)
}

// Refill restores ammunition.
func (e *Economy) Refill(n int) {
	e.Ammo = core.Clamp(e.Ammo+n, 0, e.MaxAmmo)
}

// Spend consumes one round of ammunition. It reports false when empty.
func (e *Economy) Spend() bool {
	if e.Ammo <= 0 {
		return false
	}
	e.Ammo--
	return true
}

// Depleted reports whether the round is lost.
func (e *Economy) Depleted() bool {
	return e.Health <= 0
}
