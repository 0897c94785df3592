package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/loadscreen/internal/core"
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
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"space", runeKey(' '), core.ActionStart, false},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionBack, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"t", runeKey('t'), core.ActionTheme, false},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.ActionTab, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			assert.Equal(t, tt.action, action)
			assert.Equal(t, tt.quit, quit)
		})
	}
}

func TestMapKeyToFrameKeepsOrder(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	assert.False(t, km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyLeft}, &frame))
	assert.False(t, km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyLeft}, &frame))
	assert.False(t, km.MapKeyToFrame(runeKey('z'), &frame))
	assert.False(t, km.MapKeyToFrame(runeKey(' '), &frame))

	assert.Equal(t, []core.Action{core.ActionLeft, core.ActionLeft, core.ActionStart}, frame.Actions)
	assert.True(t, km.MapKeyToFrame(runeKey('q'), &frame))
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	assert.Equal(t, MenuActionUp, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyUp}))
	assert.Equal(t, MenuActionDown, km.MapKeyToMenuAction(runeKey('j')))
	assert.Equal(t, MenuActionSelect, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, MenuActionBack, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEscape}))
	assert.Equal(t, MenuActionBack, km.MapKeyToMenuAction(runeKey('t')))
	assert.Equal(t, MenuActionQuit, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyCtrlC}))
	assert.Equal(t, MenuActionNone, km.MapKeyToMenuAction(runeKey('x')))
}

func TestLoadScreenKeyMapHelp(t *testing.T) {
	k := DefaultLoadScreenKeyMap()
	assert.Len(t, k.ShortHelp(), 5)
	assert.Len(t, k.FullHelp(), 3)
	assert.Equal(t, "theme", k.Theme.Help().Desc)
}
