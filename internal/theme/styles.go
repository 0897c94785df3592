package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/loadscreen/internal/core"
)

// Color resolves a themed core colour against the palette. It returns false
// for fixed colours, which keep their ANSI code.
func (p Palette) Color(c core.Color) (lipgloss.Color, bool) {
	var hex string
	switch c {
	case core.ColorText:
		hex = p.Text
	case core.ColorAccent:
		hex = p.Accent
	case core.ColorPrimary:
		hex = p.Primary
	case core.ColorBorder:
		hex = p.Border
	case core.ColorGold:
		hex = p.Gold
	case core.ColorDanger:
		hex = p.Danger
	case core.ColorSuccess:
		hex = p.Success
	case core.ColorWarning:
		hex = p.Warning
	default:
		return "", false
	}
	return lipgloss.Color(hex), true
}

// Styles are the lipgloss styles of the loading-screen chrome for one theme.
type Styles struct {
	App         lipgloss.Style
	Header      lipgloss.Style
	Title       lipgloss.Style
	ThemeLabel  lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	Panel       lipgloss.Style
	Card        lipgloss.Style
	CardTitle   lipgloss.Style
	CardIcon    lipgloss.Style
	Meta        lipgloss.Style
	Text        lipgloss.Style
	Muted       lipgloss.Style
	Help        lipgloss.Style
	Error       lipgloss.Style
	Success     lipgloss.Style
	Gold        lipgloss.Style
	Dropdown    lipgloss.Style
	Selected    lipgloss.Style
	Emphasis    lipgloss.Style
	Struck      lipgloss.Style
}

// NewStyles derives the chrome styles from a theme's palette.
func NewStyles(t Theme) Styles {
	p := t.Palette
	text := lipgloss.Color(p.Text)
	accent := lipgloss.Color(p.Accent)
	border := lipgloss.Color(p.Border)
	card := lipgloss.Color(p.DarkCard)
	muted := lipgloss.Color(p.TextSecondary)

	return Styles{
		App:    lipgloss.NewStyle().Foreground(text),
		Header: lipgloss.NewStyle().Padding(0, 1).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(border),
		Title:  lipgloss.NewStyle().Bold(true).Foreground(accent),
		ThemeLabel: lipgloss.NewStyle().
			Foreground(text).
			Background(card).
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(border),
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Background(lipgloss.Color(p.TabActive)).
			Padding(0, 2),
		TabInactive: lipgloss.NewStyle().Foreground(muted).Padding(0, 2),
		Panel:       lipgloss.NewStyle().Padding(1, 2),
		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1).
			MarginBottom(1),
		CardTitle: lipgloss.NewStyle().Bold(true).Foreground(text),
		CardIcon:  lipgloss.NewStyle().Foreground(accent),
		Meta:      lipgloss.NewStyle().Foreground(muted),
		Text:      lipgloss.NewStyle().Foreground(text),
		Muted:     lipgloss.NewStyle().Foreground(muted),
		Help:      lipgloss.NewStyle().Foreground(muted),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color(p.Danger)),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color(p.Success)),
		Gold:      lipgloss.NewStyle().Foreground(lipgloss.Color(p.Gold)),
		Dropdown: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Background(card).
			Padding(0, 1),
		Selected:  lipgloss.NewStyle().Bold(true).Foreground(card).Background(accent),
		Emphasis:  lipgloss.NewStyle().Bold(true).Foreground(accent),
		Struck:    lipgloss.NewStyle().Strikethrough(true).Foreground(muted),
	}
}
