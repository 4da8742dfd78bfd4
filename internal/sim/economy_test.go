package sim

import (
	"testing"

	"github.com/vovakirdan/cosmic-heat/internal/config"
)

func TestEconomyClamps(t *testing.T) {
	tests := []struct {
		name       string
		op         func(*Economy)
		wantHealth int
		wantAmmo   int
	}{
		{"damage", func(e *Economy) { e.Damage(30) }, 170, 200},
		{"overkill", func(e *Economy) { e.Damage(500) }, 0, 200},
		{"heal when full", func(e *Economy) { e.Heal(50) }, 200, 200},
		{"heal partial", func(e *Economy) { e.Damage(20); e.Heal(50) }, 200, 200},
		{"heal after damage", func(e *Economy) { e.Damage(120); e.Heal(50) }, 130, 200},
		{"refill when full", func(e *Economy) { e.Refill(50) }, 200, 200},
		{"spend then refill", func(e *Economy) { e.Spend(); e.Spend(); e.Refill(1) }, 200, 199},
		{"negative heal", func(e *Economy) { e.Heal(-300) }, 0, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEconomy(200, 200)
			tt.op(&e)
			if e.Health != tt.wantHealth || e.Ammo != tt.wantAmmo {
				t.Errorf("economy = %d/%d, expected %d/%d", e.Health, e.Ammo, tt.wantHealth, tt.wantAmmo)
			}
		})
	}
}

func TestEconomySpend(t *testing.T) {
	e := NewEconomy(10, 2)
	if !e.Spend() || !e.Spend() {
		t.Fatal("Spend() should succeed while ammo remains")
	}
	if e.Spend() {
		t.Error("Spend() on an empty magazine should fail")
	}
	if e.Ammo != 0 {
		t.Errorf("Ammo = %d, expected 0", e.Ammo)
	}
}

func TestEconomyDepleted(t *testing.T) {
	e := NewEconomy(10, 10)
	if e.Depleted() {
		t.Error("full economy should not be depleted")
	}
	e.Damage(10)
	if !e.Depleted() {
		t.Error("zero health should be depleted")
	}
}

func TestScalerSteps(t *testing.T) {
	s := NewScaler(config.DefaultDifficulty())

	tests := []struct {
		score int
		want  float64
	}{
		{0, 1},
		{2999, 1},
		{3001, 4},
		{10001, 6},
		{15001, 8},
		{99999, 10},
	}
	for _, tt := range tests {
		if got := s.Speeds(tt.score).Hazard[HazardMeteorSmall]; got != tt.want {
			t.Errorf("meteor speed at %d = %v, expected %v", tt.score, got, tt.want)
		}
	}
}

func TestScalerMonotonic(t *testing.T) {
	s := NewScaler(config.DefaultDifficulty())
	prev := s.Speeds(0)
	for score := 0; score <= 25000; score += 50 {
		sp := s.Speeds(score)
		for k := range sp.Hazard {
			if sp.Hazard[k] < prev.Hazard[k] {
				t.Fatalf("hazard %v slowed down at %d", HazardKind(k), score)
			}
		}
		for k := range sp.Pickup {
			if sp.Pickup[k] < prev.Pickup[k] {
				t.Fatalf("pickup %v slowed down at %d", PickupKind(k), score)
			}
		}
		if sp.Background < prev.Background {
			t.Fatalf("background slowed down at %d", score)
		}
		prev = sp
	}
}

func TestScalerFixedPreset(t *testing.T) {
	d := config.DefaultDifficulty()
	d.Enabled = false
	s := NewScaler(d)

	base := s.Speeds(0)
	if got := s.Speeds(20000); got != base {
		t.Errorf("Speeds(20000) = %+v, expected base speeds %+v", got, base)
	}
}

func TestScalerSharedTables(t *testing.T) {
	sp := NewScaler(config.DefaultDifficulty()).Speeds(12000)
	if sp.Hazard[HazardMeteorSmall] != sp.Hazard[HazardMeteorLarge] {
		t.Error("both meteor sizes should share one speed")
	}
	if sp.Pickup[PickupAmmo] != sp.Pickup[PickupHealth] || sp.Pickup[PickupHealth] != sp.Pickup[PickupDual] {
		t.Error("refills should share one speed")
	}
}

func TestLCGDeterministic(t *testing.T) {
	a, b := NewLCG(7), NewLCG(7)
	for range 100 {
		if a.Intn(1000) != b.Intn(1000) {
			t.Fatal("same seed should produce the same sequence")
		}
	}
	if NewLCG(0).State() != 1 {
		t.Error("seed 0 should be replaced by 1")
	}
}

func TestLCGIntnRange(t *testing.T) {
	r := NewLCG(3)
	seen := map[int]bool{}
	for range 1000 {
		v := r.Intn(5)
		if v < 0 || v >= 5 {
			t.Fatalf("Intn(5) = %d, out of range", v)
		}
		seen[v] = true
	}
	if len(seen) != 5 {
		t.Errorf("Intn(5) produced %d distinct values, expected 5", len(seen))
	}
	if r.Intn(0) != 0 {
		t.Error("Intn(0) should return 0")
	}
}

func TestBetween(t *testing.T) {
	if got := between(alwaysSource{}, 10, 20); got != 10 {
		t.Errorf("between() low = %v, expected 10", got)
	}
	if got := between(&neverSource{}, 10, 20); got != 20 {
		t.Errorf("between() high = %v, expected 20", got)
	}
	if got := between(&neverSource{}, 30, 20); got != 30 {
		t.Errorf("between() empty range = %v, expected 30", got)
	}
}
