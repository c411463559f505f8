package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-fifteen/internal/core"
)

// KeyMap defines the key bindings used while playing.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Select  key.Binding
	Cancel  key.Binding
	Restart key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Cancel, k.Restart, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Select, k.Cancel},
		{k.Restart, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "cursor up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "cursor down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h", "a"),
			key.WithHelp("←/h", "cursor left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "d"),
			key.WithHelp("→/l", "cursor right"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "start/pick"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("x", "backspace"),
			key.WithHelp("x", "cancel"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "new board"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// PointerMapper converts a terminal cell into the game's pointer space.
// Games that do not implement it receive raw terminal coordinates.
type PointerMapper interface {
	PointerAt(col, row int) core.Vec2
}

// KeyMapper translates Bubble Tea key and mouse messages to game actions.
// This centralizes bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings the mapper matches against.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to game actions.
// Enter and space both start the game and pick the cell under the keyboard
// cursor; the game uses whichever fits its phase.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) []core.Action {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return []core.Action{core.ActionQuit}
	case key.Matches(msg, km.keys.Up):
		return []core.Action{core.ActionUp}
	case key.Matches(msg, km.keys.Down):
		return []core.Action{core.ActionDown}
	case key.Matches(msg, km.keys.Left):
		return []core.Action{core.ActionLeft}
	case key.Matches(msg, km.keys.Right):
		return []core.Action{core.ActionRight}
	case key.Matches(msg, km.keys.Select):
		return []core.Action{core.ActionStart, core.ActionSelect}
	case key.Matches(msg, km.keys.Cancel):
		return []core.Action{core.ActionSecondary}
	case key.Matches(msg, km.keys.Restart):
		return []core.Action{core.ActionRestart}
	}
	return nil
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	isQuit := false
	for _, a := range km.MapKey(msg) {
		if a == core.ActionQuit {
			isQuit = true
		}
		frame.Set(a)
	}
	return isQuit
}

// MapMouseToFrame updates an input frame based on a mouse message.
// Every mouse event moves the pointer; left press is primary, right press is secondary.
// A frame holds one press: once a button is down, later events in the same
// tick are dropped so the pointer stays where the press happened.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, pm PointerMapper, frame *core.InputFrame) {
	if frame.Has(core.ActionPrimary) || frame.Has(core.ActionSecondary) {
		return
	}
	if pm != nil {
		frame.SetPointer(pm.PointerAt(msg.X, msg.Y))
	} else {
		frame.SetPointer(core.Vec2{X: float64(msg.X), Y: float64(msg.Y)})
	}

	if msg.Action != tea.MouseActionPress {
		return
	}
	switch msg.Button {
	case tea.MouseButtonLeft:
		frame.Set(core.ActionPrimary)
	case tea.MouseButtonRight:
		frame.Set(core.ActionSecondary)
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch {
	case key.Matches(msg, km.keys.Quit), msg.String() == "esc":
		return MenuActionQuit
	case key.Matches(msg, km.keys.Up):
		return MenuActionUp
	case key.Matches(msg, km.keys.Down):
		return MenuActionDown
	case key.Matches(msg, km.keys.Select):
		return MenuActionSelect
	}
	return MenuActionNone
}
