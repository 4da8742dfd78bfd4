package cosmic

import (
	"testing"

	"github.com/vovakirdan/cosmic-heat/internal/config"
	"github.com/vovakirdan/cosmic-heat/internal/core"
	"github.com/vovakirdan/cosmic-heat/internal/sim"
)

func newTestEngine(t *testing.T, seed int64) *sim.Engine {
	t.Helper()
	e, err := sim.New(config.DefaultConfig(), sim.WithSeed(seed))
	if err != nil {
		t.Fatalf("sim.New() error = %v", err)
	}
	return e
}

func TestAutopilotQuitsAfterMaxTicks(t *testing.T) {
	e := newTestEngine(t, 3)
	pilot := NewAutopilot(e, 500)

	steps := 0
	loop := &sim.Loop{
		Engine: e,
		Input:  pilot,
		OnTick: func(sim.StepResult) { steps++ },
	}
	if err := loop.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if steps != 500 {
		t.Errorf("steps = %d, expected 500", steps)
	}
}

func TestAutopilotFiresAtTargetAbove(t *testing.T) {
	e := newTestEngine(t, 1)
	s := e.State()
	px, _ := s.Player.Box.Center()
	s.Hazards = append(s.Hazards, &sim.Hazard{Kind: sim.HazardLightEnemy, Box: core.RectAt(px, 200, 56, 48)})

	in, quit := NewAutopilot(e, 0).Next(0)
	if quit {
		t.Error("a zero tick budget should never quit")
	}
	if !in.Fire {
		t.Error("autopilot should fire at a target in its column")
	}
}

func TestAutopilotDodgesBlackHole(t *testing.T) {
	e := newTestEngine(t, 1)
	s := e.State()
	px, _ := s.Player.Box.Center()
	s.Hazards = append(s.Hazards, &sim.Hazard{Kind: sim.HazardBlackHole, Box: core.RectAt(px-20, 450, 110, 110)})

	in, _ := NewAutopilot(e, 0).Next(0)
	if in.MoveX != 1 {
		t.Errorf("MoveX = %d, expected to steer right, away from the hole", in.MoveX)
	}
	if in.Fire {
		t.Error("autopilot should not waste ammo on a black hole")
	}
}

func TestAutopilotInputsAreValid(t *testing.T) {
	e := newTestEngine(t, 11)
	pilot := NewAutopilot(e, 0)

	for range 5000 {
		in, _ := pilot.Next(e.State().Tick)
		if err := in.Validate(); err != nil {
			t.Fatalf("autopilot produced %+v: %v", in, err)
		}
		e.Step(in)
	}
}
