package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/loadscreen/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
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
	case "left", "a", "h":
		return core.ActionLeft, false
	case "right", "d", "l":
		return core.ActionRight, false
	case " ", "space":
		return core.ActionStart, false
	case "up", "w", "k":
		return core.ActionUp, false
	case "down", "s", "j":
		return core.ActionDown, false
	case "enter":
		return core.ActionConfirm, false
	case "esc":
		return core.ActionBack, false
	case "r":
		return core.ActionRestart, false
	case "t":
		return core.ActionTheme, false
	case "tab":
		return core.ActionTab, false
	}

	return core.ActionNone, false
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
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ", "space":
		return MenuActionSelect
	case "esc", "t", "q":
		return MenuActionBack
	}

	return MenuActionNone
}

// LoadScreenKeyMap holds the bindings shown in the loading screen's help bar.
type LoadScreenKeyMap struct {
	Steer    key.Binding
	Start    key.Binding
	Tab      key.Binding
	Theme    key.Binding
	Progress key.Binding
	Retry    key.Binding
	Scroll   key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k LoadScreenKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Steer, k.Start, k.Tab, k.Theme, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k LoadScreenKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Steer, k.Start},
		{k.Tab, k.Theme, k.Progress},
		{k.Retry, k.Scroll, k.Quit},
	}
}

// DefaultLoadScreenKeyMap returns default key bindings.
func DefaultLoadScreenKeyMap() LoadScreenKeyMap {
	return LoadScreenKeyMap{
		Steer: key.NewBinding(
			key.WithKeys("left", "right", "a", "d"),
			key.WithHelp("←/→", "steer"),
		),
		Start: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "start"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Progress: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "bar style"),
		),
		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry updates"),
		),
		Scroll: key.NewBinding(
			key.WithKeys("up", "down", "k", "j"),
			key.WithHelp("↑/↓", "scroll"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
