package updates

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestDetectTypePrecedence(t *testing.T) {
	tests := []struct {
		content string
		want    Type
	}{
		{"IMPORTANT: server restart tonight", TypeAnnouncement},
		{"Attention everyone, event at 8pm", TypeAnnouncement},
		{"Racing competition this weekend", TypeEvent},
		{"Event recap and version notes", TypeEvent},
		{"Changelog for 1.2", TypeUpdate},
		{"Update: we fixed the garage bug", TypeUpdate},
		{"New feature: custom plates", TypeFeature},
		{"Added two new cars", TypeFeature},
		{"Resolved the login issue", TypeFix},
		{"Bug in the bank heist", TypeFix},
		{"Weekly news roundup", TypeNews},
		{"Just saying hi", TypeDefault},
		{"", TypeDefault},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectType(tt.content), tt.content)
	}
}

func TestExtractTitle(t *testing.T) {
	assert.Equal(t, "Big patch", ExtractTitle("**Big** __patch__\nsecond line"))
	assert.Equal(t, "Server Update", ExtractTitle(""))
	assert.Equal(t, "Server Update", ExtractTitle("   \nbody"))
	assert.Equal(t, "strike", ExtractTitle("~~strike~~"))

	long := strings.Repeat("a", 61)
	got := ExtractTitle(long)
	assert.Len(t, got, 60)
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.Equal(t, strings.Repeat("a", 57)+"...", got)

	exact := strings.Repeat("b", 60)
	assert.Equal(t, exact, ExtractTitle(exact))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "May 12, 2025", FormatDate("2025-05-12T18:04:05.123000+00:00"))
	assert.Equal(t, "May 12, 2025", FormatDate("2025-05-12"))
	assert.Equal(t, "Jan 3, 2024", FormatDate("January 3, 2024"))
	assert.Equal(t, "Unknown date", FormatDate(""))
	assert.Equal(t, "Unknown date", FormatDate("yesterday"))
}

func TestIcon(t *testing.T) {
	assert.Equal(t, icons[TypeFix], Icon(TypeFix))
	assert.Equal(t, icons[TypeDefault], Icon("mystery"))
	assert.Equal(t, icons[TypeNews], Update{Type: TypeNews}.Icon())
}

func TestFormatContentStripsMarkers(t *testing.T) {
	plain := ContentStyles{
		Bold:      lipgloss.NewStyle(),
		Italic:    lipgloss.NewStyle(),
		Strike:    lipgloss.NewStyle(),
		Underline: lipgloss.NewStyle(),
	}

	got := FormatContent("**Bold** and *italic*\n~~gone~~ __under__", plain)
	assert.Equal(t, "Bold and italic\ngone under", got)
	assert.Equal(t, "", FormatContent("", plain))
	assert.Equal(t, "no markup", FormatContent("no markup", plain))
}

func TestFormatContentAppliesStyles(t *testing.T) {
	marked := ContentStyles{
		Bold:      lipgloss.NewStyle().SetString("B:"),
		Italic:    lipgloss.NewStyle().SetString("I:"),
		Strike:    lipgloss.NewStyle().SetString("S:"),
		Underline: lipgloss.NewStyle().SetString("U:"),
	}

	got := FormatContent("**a** *b* ~~c~~ __d__", marked)
	assert.Equal(t, "B: a I: b S: c U: d", got)
}
