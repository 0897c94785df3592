package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/loadscreen/internal/theme"
)

// chrome is the themed look shared by every part of the loading screen.
// It is the theme manager's variable sink and is refreshed on every change.
type chrome struct {
	theme    theme.Theme
	palette  theme.Palette
	styles   theme.Styles
	progress theme.ProgressStyle
	vars     theme.VarTable
}

func newChrome(t theme.Theme, p theme.ProgressStyle) *chrome {
	c := &chrome{vars: theme.VarTable{}}
	c.set(t, p)
	return c
}

// SetVar records one applied palette variable.
func (c *chrome) SetVar(name, value string) {
	c.vars.SetVar(name, value)
}

func (c *chrome) set(t theme.Theme, p theme.ProgressStyle) {
	c.theme = t
	c.palette = t.Palette
	c.styles = theme.NewStyles(t)
	c.progress = p
}

// onChange follows the manager's applied themes.
func (c *chrome) onChange(ev theme.ChangeEvent) {
	c.set(theme.Get(ev.Theme), ev.Progress)
}

// themePicker is the theme dropdown.
type themePicker struct {
	themes []theme.Theme
	cursor int
	open   bool
	keys   *KeyMapper
}

func newThemePicker() themePicker {
	return themePicker{themes: theme.All(), keys: NewKeyMapper()}
}

// Open shows the dropdown with the cursor on the current theme.
func (p *themePicker) Open(current string) {
	p.cursor = theme.Index(current)
	p.open = true
}

// Close hides the dropdown.
func (p *themePicker) Close() {
	p.open = false
}

// IsOpen reports whether the dropdown is shown.
func (p themePicker) IsOpen() bool {
	return p.open
}

// HandleKey moves the cursor or closes the dropdown. It returns the chosen
// theme key, or "" when nothing was chosen, and whether the key was a quit.
func (p *themePicker) HandleKey(msg tea.KeyMsg) (chosen string, quit bool) {
	switch p.keys.MapKeyToMenuAction(msg) {
	case MenuActionUp:
		p.cursor = (p.cursor - 1 + len(p.themes)) % len(p.themes)
	case MenuActionDown:
		p.cursor = (p.cursor + 1) % len(p.themes)
	case MenuActionSelect:
		p.open = false
		return p.themes[p.cursor].Key, false
	case MenuActionBack:
		p.open = false
	case MenuActionQuit:
		return "", true
	}
	return "", false
}

// View renders the dropdown list.
func (p themePicker) View(st theme.Styles) string {
	var b strings.Builder
	for i, t := range p.themes {
		if i > 0 {
			b.WriteString("\n")
		}
		line := " " + t.Label + " "
		if i == p.cursor {
			b.WriteString(st.Selected.Render("▸" + line))
			continue
		}
		b.WriteString(st.Text.Render(" " + line))
	}
	return st.Dropdown.Render(b.String())
}
