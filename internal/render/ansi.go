package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/glinthq/glint/internal/token"
)

// ANSI renders source with terminal color codes applied to each token
// span. Untokenized gaps are written through verbatim, so the output
// is the original text plus styling.
func ANSI(source string, tokens []token.Token, theme Theme) string {
	styles := ansiStyles(theme)

	var out strings.Builder
	last := 0
	for _, t := range tokens {
		if t.Start > last {
			out.WriteString(source[last:t.Start])
		}
		if style, ok := styles[t.Kind]; ok {
			out.WriteString(style.Render(t.Text))
		} else {
			out.WriteString(t.Text)
		}
		last = t.End
	}
	if last < len(source) {
		out.WriteString(source[last:])
	}
	return out.String()
}

// ansiStyles builds the lipgloss style table for a theme. Keywords and
// tags are bold to survive muted palettes.
func ansiStyles(theme Theme) map[token.Kind]lipgloss.Style {
	styles := make(map[token.Kind]lipgloss.Style, len(theme))
	for kind, color := range theme {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
		if kind == token.Keyword || kind == token.Tag {
			style = style.Bold(true)
		}
		styles[kind] = style
	}
	return styles
}
