package core

// Action represents a semantic game action, abstracted from physical key presses.
// Rockets read thrust/brake intents; the platform never passes raw keys to a game.
type Action int

const (
	ActionNone Action = iota

	// Player 1 (arrow keys)
	ActionThrustUp
	ActionThrustDown
	ActionThrustLeft
	ActionThrustRight
	ActionBrake

	// Player 2 (WASD) for the duel mode
	ActionAltThrustUp
	ActionAltThrustDown
	ActionAltThrustLeft
	ActionAltThrustRight
	ActionAltBrake

	ActionPause   // P, Escape - pause/unpause game
	ActionRestart // R key - restart game after game over
	ActionQuit    // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionThrustUp:
		return "ThrustUp"
	case ActionThrustDown:
		return "ThrustDown"
	case ActionThrustLeft:
		return "ThrustLeft"
	case ActionThrustRight:
		return "ThrustRight"
	case ActionBrake:
		return "Brake"
	case ActionAltThrustUp:
		return "AltThrustUp"
	case ActionAltThrustDown:
		return "AltThrustDown"
	case ActionAltThrustLeft:
		return "AltThrustLeft"
	case ActionAltThrustRight:
		return "AltThrustRight"
	case ActionAltBrake:
		return "AltBrake"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// PlayerControls groups the actions that steer one rocket.
type PlayerControls struct {
	Up, Down, Left, Right, Brake Action
}

// Controls lists the control sets by player slot.
var Controls = []PlayerControls{
	{Up: ActionThrustUp, Down: ActionThrustDown, Left: ActionThrustLeft, Right: ActionThrustRight, Brake: ActionBrake},
	{Up: ActionAltThrustUp, Down: ActionAltThrustDown, Left: ActionAltThrustLeft, Right: ActionAltThrustRight, Brake: ActionAltBrake},
}

// InputFrame represents the input state collected during one simulation tick.
// It is filled completely before the tick runs, so a tick sees a consistent snapshot.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
