package updates

import (
	"regexp"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const maxTitleRunes = 60

var icons = map[Type]string{
	TypeAnnouncement: "📢",
	TypeUpdate:       "⟳",
	TypeEvent:        "📅",
	TypeFeature:      "★",
	TypeFix:          "🔧",
	TypeNews:         "📰",
	TypeDefault:      "ℹ",
}

// Icon returns the glyph for t, or the default glyph for unknown types.
func Icon(t Type) string {
	if icon, ok := icons[t]; ok {
		return icon
	}
	return icons[TypeDefault]
}

// typeRules are checked in order; the first rule with a matching keyword wins.
var typeRules = []struct {
	typ      Type
	keywords []string
}{
	{TypeAnnouncement, []string{"announcement", "attention", "important"}},
	{TypeEvent, []string{"event", "competition"}},
	{TypeUpdate, []string{"update", "version", "changelog"}},
	{TypeFeature, []string{"new feature", "added"}},
	{TypeFix, []string{"fix", "bug", "resolved"}},
	{TypeNews, []string{"news"}},
}

// DetectType classifies content by case-insensitive keyword.
func DetectType(content string) Type {
	lower := strings.ToLower(content)
	for _, rule := range typeRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.typ
			}
		}
	}
	return TypeDefault
}

var markerReplacer = strings.NewReplacer("**", "", "*", "", "~~", "", "__", "")

// ExtractTitle returns the first line of content without markdown markers,
// truncated to 60 characters.
func ExtractTitle(content string) string {
	first, _, _ := strings.Cut(content, "\n")
	title := strings.TrimSpace(markerReplacer.Replace(first))
	if title == "" {
		return DefaultTitle
	}
	if r := []rune(title); len(r) > maxTitleRunes {
		title = string(r[:maxTitleRunes-3]) + "..."
	}
	return title
}

// dateLayouts are tried in order by FormatDate.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	time.DateTime,
	time.DateOnly,
	"January 2, 2006",
	"Jan 2, 2006",
}

// FormatDate renders a timestamp as "Jan 2, 2006". Empty or unparseable
// input yields "Unknown date".
func FormatDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "Unknown date"
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("Jan 2, 2006")
		}
	}
	return "Unknown date"
}

// ContentStyles renders the inline markdown subset.
type ContentStyles struct {
	Bold      lipgloss.Style
	Italic    lipgloss.Style
	Strike    lipgloss.Style
	Underline lipgloss.Style
}

// DefaultContentStyles returns plain terminal text attributes.
func DefaultContentStyles() ContentStyles {
	return ContentStyles{
		Bold:      lipgloss.NewStyle().Bold(true),
		Italic:    lipgloss.NewStyle().Italic(true),
		Strike:    lipgloss.NewStyle().Strikethrough(true),
		Underline: lipgloss.NewStyle().Underline(true),
	}
}

var (
	boldRe      = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicRe    = regexp.MustCompile(`\*(.*?)\*`)
	strikeRe    = regexp.MustCompile(`~~(.*?)~~`)
	underlineRe = regexp.MustCompile(`__(.*?)__`)
)

// FormatContent applies **bold**, *italic*, ~~strike~~ and __underline__
// markers, in that order. Newlines are kept.
func FormatContent(content string, st ContentStyles) string {
	if content == "" {
		return ""
	}
	out := styleMatches(content, boldRe, st.Bold)
	out = styleMatches(out, italicRe, st.Italic)
	out = styleMatches(out, strikeRe, st.Strike)
	return styleMatches(out, underlineRe, st.Underline)
}

func styleMatches(s string, re *regexp.Regexp, style lipgloss.Style) string {
	return re.ReplaceAllStringFunc(s, func(m string) string {
		return style.Render(re.FindStringSubmatch(m)[1])
	})
}
