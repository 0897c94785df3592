package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/loadscreen/internal/core"
	"github.com/vovakirdan/loadscreen/internal/theme"
)

// colorStyles maps core.Color to lipgloss styles. Themed colours have an
// ANSI fallback here for when no palette is given.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorText:          lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorAccent:        lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorPrimary:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBorder:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorGold:          lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	core.ColorDanger:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorSuccess:       lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorWarning:       lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
}

// paletteStyles resolves cell colours against one theme palette.
type paletteStyles struct {
	palette *theme.Palette
	themed  map[core.Color]lipgloss.Style
}

func newPaletteStyles(p *theme.Palette) paletteStyles {
	return paletteStyles{palette: p, themed: make(map[core.Color]lipgloss.Style)}
}

func (ps paletteStyles) style(c core.Color) lipgloss.Style {
	if ps.palette != nil && c.Themed() {
		if st, ok := ps.themed[c]; ok {
			return st
		}
		if col, ok := ps.palette.Color(c); ok {
			st := lipgloss.NewStyle().Foreground(col)
			ps.themed[c] = st
			return st
		}
	}
	if st, ok := colorStyles[c]; ok {
		return st
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
// Themed colours resolve against p; nil uses the ANSI fallbacks.
func RenderScreen(s *core.Screen, p *theme.Palette) string {
	styles := newPaletteStyles(p)

	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styles.style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
