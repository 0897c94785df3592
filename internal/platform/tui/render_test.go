package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/loadscreen/internal/core"
	"github.com/vovakirdan/loadscreen/internal/theme"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColored(0, 0, "SCORE", core.ColorText)
	s.DrawTextColored(0, 1, "BEST", core.ColorGold)

	neon := theme.Get("neon").Palette
	for _, p := range []*theme.Palette{nil, &neon} {
		out := RenderScreen(s, p)
		assert.Contains(t, out, "SCORE")
		assert.Contains(t, out, "BEST")
	}
}

func TestPaletteStylesResolveThemedColors(t *testing.T) {
	p := theme.Get("sunset").Palette
	styles := newPaletteStyles(&p)

	assert.Equal(t, lipgloss.Color(p.Accent), styles.style(core.ColorAccent).GetForeground())
	assert.Equal(t, lipgloss.Color(p.Danger), styles.style(core.ColorDanger).GetForeground())
	assert.Equal(t, lipgloss.Color("208"), styles.style(core.ColorOrange).GetForeground())

	fallback := newPaletteStyles(nil)
	assert.Equal(t, lipgloss.Color("14"), fallback.style(core.ColorAccent).GetForeground())
}
