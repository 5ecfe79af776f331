package game

import (
	"time"

	"github.com/charmbracelet/log"
)

// Action is a semantic input, independent of the device that produced it.
type Action int

const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionSoftDrop
	ActionRotateClockwise
	ActionRotateCounterClockwise
	ActionHardDrop
	ActionPause
	ActionQuit
)

var actionNames = map[Action]string{
	ActionNone:                   "none",
	ActionMoveLeft:               "move_left",
	ActionMoveRight:              "move_right",
	ActionSoftDrop:               "soft_drop",
	ActionRotateClockwise:        "rotate_clockwise",
	ActionRotateCounterClockwise: "rotate_counterclockwise",
	ActionHardDrop:               "hard_drop",
	ActionPause:                  "pause",
	ActionQuit:                   "quit",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ActionCooldowns is the minimum time between two accepted presses of a
// repeatable action. Actions not listed have no cooldown.
var ActionCooldowns = map[Action]time.Duration{
	ActionMoveLeft:               100 * time.Millisecond,
	ActionMoveRight:              100 * time.Millisecond,
	ActionSoftDrop:               50 * time.Millisecond,
	ActionRotateClockwise:        200 * time.Millisecond,
	ActionRotateCounterClockwise: 200 * time.Millisecond,
}

// InputHandler turns presses into GameState calls. It rate-limits held keys
// and makes hard drop fire once per physical press.
type InputHandler struct {
	cooldowns     map[Action]time.Duration
	lastAccepted  map[Action]time.Time
	hardDropArmed bool
	logger        *log.Logger
}

func NewInputHandler(logger *log.Logger) *InputHandler {
	if logger == nil {
		logger = discardLogger()
	}
	return &InputHandler{
		cooldowns:     ActionCooldowns,
		lastAccepted:  make(map[Action]time.Time),
		hardDropArmed: true,
		logger:        logger,
	}
}

// Press applies action to state at time now. It returns false when the
// caller should stop the loop.
func (h *InputHandler) Press(state *GameState, action Action, now time.Time) bool {
	switch action {
	case ActionNone:
		return true
	case ActionQuit:
		h.logger.Debug("Quit requested")
		return false
	case ActionHardDrop:
		if !h.hardDropArmed {
			return true
		}
		h.hardDropArmed = false
	}

	if cooldown, ok := h.cooldowns[action]; ok {
		if last, seen := h.lastAccepted[action]; seen && now.Sub(last) < cooldown {
			h.logger.Debug("Action blocked by cooldown", "action", action)
			return true
		}
		h.lastAccepted[action] = now
	}

	h.dispatch(state, action)
	return true
}

// Release re-arms edge-triggered actions once their key is let go.
func (h *InputHandler) Release(action Action) {
	if action == ActionHardDrop && !h.hardDropArmed {
		h.logger.Debug("Hard drop re-armed")
		h.hardDropArmed = true
	}
}

func (h *InputHandler) HardDropArmed() bool {
	return h.hardDropArmed
}

func (h *InputHandler) dispatch(state *GameState, action Action) {
	if state.Over {
		return
	}
	if action == ActionPause {
		state.TogglePause()
		return
	}
	if state.Paused {
		return
	}

	h.logger.Debug("Action executed", "action", action)
	switch action {
	case ActionMoveLeft:
		state.MovePiece(OffsetLeft.Dx, OffsetLeft.Dy)
	case ActionMoveRight:
		state.MovePiece(OffsetRight.Dx, OffsetRight.Dy)
	case ActionSoftDrop:
		state.SoftDrop()
	case ActionRotateClockwise:
		state.RotatePiece(true)
	case ActionRotateCounterClockwise:
		state.RotatePiece(false)
	case ActionHardDrop:
		state.HardDrop()
	}
}
