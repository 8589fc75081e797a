package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-rockets/internal/core"
)

// KeyMap holds the in-game key bindings. It implements help.KeyMap so the
// footer always matches what the keys actually do.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Brake key.Binding

	AltUp    key.Binding
	AltDown  key.Binding
	AltLeft  key.Binding
	AltRight key.Binding
	AltBrake key.Binding

	Pause      key.Binding
	Restart    key.Binding
	Back       key.Binding
	Screenshot key.Binding
	Quit       key.Binding

	// Help-only bindings summarizing a control set.
	thrust    key.Binding
	altThrust key.Binding

	duel bool
}

// DefaultKeyMap returns the default bindings. In duel mode WASD drives the
// second rocket; otherwise it is an alias for the arrow keys.
func DefaultKeyMap(duel bool) KeyMap {
	k := KeyMap{
		Up:    key.NewBinding(key.WithKeys("up")),
		Down:  key.NewBinding(key.WithKeys("down")),
		Left:  key.NewBinding(key.WithKeys("left")),
		Right: key.NewBinding(key.WithKeys("right")),
		Brake: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "brake")),

		AltUp:    key.NewBinding(key.WithKeys("w")),
		AltDown:  key.NewBinding(key.WithKeys("s")),
		AltLeft:  key.NewBinding(key.WithKeys("a")),
		AltRight: key.NewBinding(key.WithKeys("d")),
		AltBrake: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "P2 brake")),

		Pause:      key.NewBinding(key.WithKeys("p", "esc"), key.WithHelp("p", "pause")),
		Restart:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Back:       key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "menu")),
		Screenshot: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "screenshot")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		thrust:    key.NewBinding(key.WithKeys("up", "down", "left", "right"), key.WithHelp("←↑↓→", "thrust")),
		altThrust: key.NewBinding(key.WithKeys("w", "a", "s", "d"), key.WithHelp("wasd", "P2 thrust")),

		duel: duel,
	}

	if !duel {
		k.AltBrake.SetEnabled(false)
		k.altThrust.SetEnabled(false)
	}
	return k
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.thrust, k.Brake, k.altThrust, k.AltBrake, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.thrust, k.Brake},
		{k.altThrust, k.AltBrake},
		{k.Pause, k.Restart, k.Back, k.Screenshot, k.Quit},
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a key mapper for a one- or two-player game.
func NewKeyMapper(duel bool) *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap(duel)}
}

// Keys returns the bindings, for help rendering.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	k := km.keys

	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.Up):
		return core.ActionThrustUp, false
	case key.Matches(msg, k.Down):
		return core.ActionThrustDown, false
	case key.Matches(msg, k.Left):
		return core.ActionThrustLeft, false
	case key.Matches(msg, k.Right):
		return core.ActionThrustRight, false
	case key.Matches(msg, k.Brake):
		return core.ActionBrake, false
	case key.Matches(msg, k.Pause):
		return core.ActionPause, false
	case key.Matches(msg, k.Restart):
		return core.ActionRestart, false
	}

	alt := core.ActionNone
	switch {
	case key.Matches(msg, k.AltUp):
		alt = core.ActionAltThrustUp
	case key.Matches(msg, k.AltDown):
		alt = core.ActionAltThrustDown
	case key.Matches(msg, k.AltLeft):
		alt = core.ActionAltThrustLeft
	case key.Matches(msg, k.AltRight):
		alt = core.ActionAltThrustRight
	case key.Matches(msg, k.AltBrake):
		alt = core.ActionAltBrake
	}

	if !k.duel {
		return soloAlias(alt), false
	}
	return alt, false
}

// soloAlias folds second-player actions onto the first player.
func soloAlias(a core.Action) core.Action {
	switch a {
	case core.ActionAltThrustUp:
		return core.ActionThrustUp
	case core.ActionAltThrustDown:
		return core.ActionThrustDown
	case core.ActionAltThrustLeft:
		return core.ActionThrustLeft
	case core.ActionAltThrustRight:
		return core.ActionThrustRight
	default:
		return core.ActionNone
	}
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
