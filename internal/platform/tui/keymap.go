package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/star-catcher/internal/core"
)

// Terminals report key presses but no releases. A movement key counts as
// held for InitialHold after the first press, which covers the delay before
// auto-repeat starts, and for RepeatHold after each repeat.
const (
	InitialHold = 450 * time.Millisecond
	RepeatHold  = 120 * time.Millisecond
)

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
	case "ctrl+c":
		return core.ActionQuit, true
	case "a", "left", "h":
		return core.ActionLeft, false
	case "d", "right", "l":
		return core.ActionRight, false
	case "w", "up", "k":
		return core.ActionUp, false
	case "s", "down", "j":
		return core.ActionDown, false
	case " ", "space", "p":
		return core.ActionPause, false
	case "enter":
		return core.ActionConfirm, false
	case "esc", "b", "q":
		return core.ActionCancel, false
	}
	return core.ActionNone, false
}

// HoldTracker turns repeated presses of movement keys into held state.
type HoldTracker struct {
	until map[core.Action]time.Time
}

// NewHoldTracker creates an empty tracker.
func NewHoldTracker() *HoldTracker {
	return &HoldTracker{until: make(map[core.Action]time.Time)}
}

// Press records a movement press at now. Pressing one direction releases
// the opposite one.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	hold := InitialHold
	if now.Before(h.until[a]) {
		hold = RepeatHold
	}
	h.until[a] = now.Add(hold)

	switch a {
	case core.ActionLeft:
		delete(h.until, core.ActionRight)
	case core.ActionRight:
		delete(h.until, core.ActionLeft)
	}
}

// Apply marks every action still inside its hold window as held.
func (h *HoldTracker) Apply(frame *core.InputFrame, now time.Time) {
	for a, until := range h.until {
		if now.Before(until) {
			frame.Hold(a)
		} else {
			delete(h.until, a)
		}
	}
}

// Release drops all held actions.
func (h *HoldTracker) Release() {
	clear(h.until)
}

func isMovement(a core.Action) bool {
	return a == core.ActionLeft || a == core.ActionRight
}
