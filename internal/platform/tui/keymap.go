package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cosmic-heat/internal/core"
)

// HoldTicks is how many ticks a key press keeps a movement or fire action
// active. Terminals report presses and auto-repeats but never releases.
const HoldTicks = 8

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "w", "up", "k":
		return core.ActionUp, false
	case "s", "down", "j":
		return core.ActionDown, false
	case "a", "left", "h":
		return core.ActionLeft, false
	case "d", "right", "l":
		return core.ActionRight, false
	case " ", "f":
		return core.ActionFire, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// IsMute reports whether the key toggles sound.
func (km *KeyMapper) IsMute(msg tea.KeyMsg) bool {
	return msg.String() == "m"
}

// IsScreenshot reports whether the key saves the screen to a file.
func (km *KeyMapper) IsScreenshot(msg tea.KeyMsg) bool {
	return msg.String() == "ctrl+s"
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionScoreboard
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}

// opposite pairs cancel each other's hold.
var opposite = map[core.Action]core.Action{
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
}

// HeldInput turns key presses into per-tick input frames.
// Movement and fire stay held for HoldTicks; other actions last one tick.
type HeldInput struct {
	hold map[core.Action]int
	once core.InputFrame
}

// NewHeldInput creates an empty input state.
func NewHeldInput() *HeldInput {
	return &HeldInput{
		hold: make(map[core.Action]int),
		once: core.NewInputFrame(),
	}
}

// Press records a key press.
func (h *HeldInput) Press(a core.Action) {
	switch a {
	case core.ActionNone:
		return
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		delete(h.hold, opposite[a])
		h.hold[a] = HoldTicks
	case core.ActionFire:
		h.hold[a] = HoldTicks
	default:
		h.once.Set(a)
	}
}

// Frame returns the input for the next tick and ages every hold by one tick.
func (h *HeldInput) Frame() core.InputFrame {
	frame := h.once.Clone()
	h.once.Clear()
	for a, ticks := range h.hold {
		frame.Set(a)
		if ticks <= 1 {
			delete(h.hold, a)
		} else {
			h.hold[a] = ticks - 1
		}
	}
	return frame
}

// Release drops every held and pending action.
func (h *HeldInput) Release() {
	clear(h.hold)
	h.once.Clear()
}
