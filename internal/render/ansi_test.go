package render

import (
	"regexp"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/glinthq/glint/internal/token"
)

// ansiRegex matches ANSI escape sequences
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

func init() {
	// Force ANSI color output in tests (lipgloss disables colors when no TTY)
	lipgloss.SetColorProfile(termenv.ANSI256)
}

func TestANSI_PreservesSourceText(t *testing.T) {
	theme := PresetTheme("default")
	source := "var x = 42 // answer"
	tokens := []token.Token{
		{Kind: token.Keyword, Text: "var", Start: 0, End: 3},
		{Kind: token.Operator, Text: "=", Start: 6, End: 7},
		{Kind: token.Number, Text: "42", Start: 8, End: 10},
		{Kind: token.Comment, Text: "// answer", Start: 11, End: 20},
	}

	out := ANSI(source, tokens, theme)

	// Styling must be additive: stripping the color codes recovers the
	// original text exactly.
	assert.Equal(t, source, stripANSI(out))
	assert.True(t, ansiRegex.MatchString(out), "expected ANSI codes in output")
}

func TestANSI_NoTokensPassesThrough(t *testing.T) {
	out := ANSI("plain text", nil, PresetTheme("default"))
	assert.Equal(t, "plain text", out)
}

func TestANSI_UnthemedKindUnstyled(t *testing.T) {
	// mono themes only comments; other kinds render without codes.
	out := ANSI("42", []token.Token{{Kind: token.Number, Text: "42", Start: 0, End: 2}}, PresetTheme("mono"))
	assert.Equal(t, "42", out)
}

func TestPresetTheme(t *testing.T) {
	assert.Equal(t, []string{"default", "mono", "nord"}, Presets())

	// Unknown preset falls back to the default palette.
	assert.Equal(t, PresetTheme("default"), PresetTheme("no-such-theme"))

	// Presets are copies: mutating one does not leak into the next.
	theme := PresetTheme("default")
	theme[token.Keyword] = "#000000"
	assert.NotEqual(t, "#000000", PresetTheme("default")[token.Keyword])
}
