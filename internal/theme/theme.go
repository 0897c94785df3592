// Package theme holds the loading screen's colour themes, the persisted
// theme choice and the progress-bar style preference.
package theme

// DefaultKey is the theme used when nothing valid is stored.
const DefaultKey = "original"

// Palette is the set of colour variables a theme defines. Values are CSS
// colour strings: hex colours, "r, g, b" triples, or a gradient for gloss.
type Palette struct {
	DarkCard        string
	Border          string
	Text            string
	Accent          string
	Primary         string
	PrimaryRGB      string
	AccentRGB       string
	SecondaryAccent string
	ProgressBar     string
	ProgressGloss   string
	Cursor          string
	TabActive       string
	TextSecondary   string
	Success         string
	Warning         string
	Danger          string
	Gold            string
}

// Var is one named palette variable.
type Var struct {
	Name  string
	Value string
}

// Vars returns the palette as its seventeen named variables, in a fixed order.
func (p Palette) Vars() []Var {
	return []Var{
		{"--dark-card", p.DarkCard},
		{"--border-color", p.Border},
		{"--text-color", p.Text},
		{"--accent-color", p.Accent},
		{"--primary-color", p.Primary},
		{"--primary-color-rgb", p.PrimaryRGB},
		{"--accent-color-rgb", p.AccentRGB},
		{"--secondary-accent", p.SecondaryAccent},
		{"--progress-bar-color", p.ProgressBar},
		{"--progress-bar-gloss", p.ProgressGloss},
		{"--cursor-color", p.Cursor},
		{"--tab-active", p.TabActive},
		{"--text-secondary", p.TextSecondary},
		{"--theme-success", p.Success},
		{"--theme-warning", p.Warning},
		{"--theme-danger", p.Danger},
		{"--theme-gold", p.Gold},
	}
}

// ProgressStyle is a progress-bar look.
type ProgressStyle string

const (
	StyleRounded  ProgressStyle = ""
	StyleAngular  ProgressStyle = "style-angular"
	StyleNeon     ProgressStyle = "style-neon"
	StyleMinimal  ProgressStyle = "style-minimal"
	StyleGradient ProgressStyle = "style-gradient"
)

// progressCycle is the toggle order.
var progressCycle = []ProgressStyle{StyleRounded, StyleAngular, StyleNeon, StyleMinimal, StyleGradient}

// Next returns the style after s in the toggle cycle. Unknown styles
// restart the cycle.
func (s ProgressStyle) Next() ProgressStyle {
	for i, c := range progressCycle {
		if c == s {
			return progressCycle[(i+1)%len(progressCycle)]
		}
	}
	return progressCycle[1]
}

// Valid reports whether s is one of the known styles.
func (s ProgressStyle) Valid() bool {
	for _, c := range progressCycle {
		if c == s {
			return true
		}
	}
	return false
}

// Name returns a display name for the style.
func (s ProgressStyle) Name() string {
	switch s {
	case StyleRounded:
		return "rounded"
	case StyleAngular:
		return "angular"
	case StyleNeon:
		return "neon"
	case StyleMinimal:
		return "minimal"
	case StyleGradient:
		return "gradient"
	default:
		return string(s)
	}
}

// Theme is a named palette with its recommended progress style.
type Theme struct {
	Key      string
	Label    string
	Progress ProgressStyle
	Palette  Palette
}

// Glow reports whether the theme adds a glow to the progress bar.
func (t Theme) Glow() bool {
	return t.Key == "cyber" || t.Key == "neon"
}

// All returns every built-in theme in picker order.
func All() []Theme {
	out := make([]Theme, len(builtin))
	copy(out, builtin)
	return out
}

// Lookup finds a theme by key.
func Lookup(key string) (Theme, bool) {
	for _, t := range builtin {
		if t.Key == key {
			return t, true
		}
	}
	return Theme{}, false
}

// Get returns the theme for key, or the default theme for unknown keys.
func Get(key string) Theme {
	if t, ok := Lookup(key); ok {
		return t
	}
	t, _ := Lookup(DefaultKey)
	return t
}

// Index returns the picker position of key, or 0 if unknown.
func Index(key string) int {
	for i, t := range builtin {
		if t.Key == key {
			return i
		}
	}
	return 0
}
