package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility, except for the
// themed colors which the platform resolves against the active theme.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray

	// Themed colors
	ColorText
	ColorAccent
	ColorPrimary
	ColorBorder
	ColorGold
	ColorDanger
	ColorSuccess
	ColorWarning
)

// Themed reports whether the color is resolved from the active theme.
func (c Color) Themed() bool {
	return c >= ColorText
}
