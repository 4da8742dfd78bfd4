package core

import "testing"

func TestInputFrameAxis(t *testing.T) {
	tests := []struct {
		name           string
		actions        []Action
		wantDX, wantDY int
	}{
		{"idle", nil, 0, 0},
		{"left", []Action{ActionLeft}, -1, 0},
		{"up right", []Action{ActionUp, ActionRight}, 1, -1},
		{"opposing cancel", []Action{ActionLeft, ActionRight, ActionDown}, 0, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tc.actions {
				f.Set(a)
			}
			dx, dy := f.Axis()
			if dx != tc.wantDX || dy != tc.wantDY {
				t.Errorf("Axis() = (%d, %d), expected (%d, %d)", dx, dy, tc.wantDX, tc.wantDY)
			}
		})
	}
}

func TestInputFrameCloneAndClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionFire)

	clone := f.Clone()
	f.Clear()

	if f.Has(ActionFire) {
		t.Error("Clear should remove every action")
	}
	if !clone.Has(ActionFire) {
		t.Error("Clone should not share storage with the original")
	}

	var zero InputFrame
	if zero.Has(ActionFire) {
		t.Error("zero frame should report no actions")
	}
	zero.Set(ActionPause)
	if !zero.Has(ActionPause) {
		t.Error("Set on a zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	if ActionFire.String() != "Fire" || Action(99).String() != "Unknown" {
		t.Errorf("String() = %q/%q", ActionFire.String(), Action(99).String())
	}
}
