package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cosmic-heat/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"w", runeKey('w'), core.ActionUp, false},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFire, false},
		{"pause", runeKey('p'), core.ActionPause, false},
		{"restart", runeKey('r'), core.ActionRestart, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey() = (%v, %v), expected (%v, %v)", action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, MenuActionLeft},
		{runeKey('d'), MenuActionRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestHeldInputExpires(t *testing.T) {
	h := NewHeldInput()
	h.Press(core.ActionLeft)
	h.Press(core.ActionFire)

	for i := range HoldTicks {
		f := h.Frame()
		if !f.Has(core.ActionLeft) || !f.Has(core.ActionFire) {
			t.Fatalf("tick %d: held actions missing", i)
		}
	}
	if f := h.Frame(); f.Has(core.ActionLeft) || f.Has(core.ActionFire) {
		t.Error("holds should expire after HoldTicks")
	}
}

func TestHeldInputRepeatExtends(t *testing.T) {
	h := NewHeldInput()
	h.Press(core.ActionUp)
	for range HoldTicks - 1 {
		h.Frame()
	}
	h.Press(core.ActionUp)
	for i := range HoldTicks {
		if !h.Frame().Has(core.ActionUp) {
			t.Fatalf("tick %d: auto-repeat should extend the hold", i)
		}
	}
}

func TestHeldInputOppositeCancels(t *testing.T) {
	h := NewHeldInput()
	h.Press(core.ActionLeft)
	h.Press(core.ActionRight)

	f := h.Frame()
	if f.Has(core.ActionLeft) || !f.Has(core.ActionRight) {
		t.Errorf("frame = %v, expected only right held", f.Actions)
	}
}

func TestHeldInputOneShot(t *testing.T) {
	h := NewHeldInput()
	h.Press(core.ActionPause)
	h.Press(core.ActionNone)

	if !h.Frame().Has(core.ActionPause) {
		t.Fatal("pause should reach the next frame")
	}
	if h.Frame().Has(core.ActionPause) {
		t.Error("pause should last a single tick")
	}

	h.Press(core.ActionDown)
	h.Press(core.ActionRestart)
	h.Release()
	if f := h.Frame(); len(f.Actions) != 0 {
		t.Errorf("Release() left %v", f.Actions)
	}
}
