package render

import (
	"fmt"
	"strings"

	"github.com/glinthq/glint/internal/escape"
	"github.com/glinthq/glint/internal/token"
)

// HTML renders source as markup: untokenized gaps become escaped
// literal text and each token becomes a classed span. The result is
// meant to live inside a <pre class="glint"> element.
func HTML(source string, tokens []token.Token) string {
	var out strings.Builder
	last := 0
	for _, t := range tokens {
		if t.Start > last {
			out.WriteString(escape.Escape(source[last:t.Start]))
		}
		out.WriteString(`<span class="glint-`)
		out.WriteString(t.Kind.String())
		out.WriteString(`">`)
		out.WriteString(escape.Escape(t.Text))
		out.WriteString(`</span>`)
		last = t.End
	}
	if last < len(source) {
		out.WriteString(escape.Escape(source[last:]))
	}
	return out.String()
}

// Page wraps HTML output in a minimal standalone document with a
// stylesheet generated from the theme.
func Page(source string, tokens []token.Token, theme Theme) string {
	var out strings.Builder
	out.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<style>\n")
	out.WriteString(Stylesheet(theme))
	out.WriteString("</style>\n</head>\n<body>\n<pre class=\"glint\">")
	out.WriteString(HTML(source, tokens))
	out.WriteString("</pre>\n</body>\n</html>\n")
	return out.String()
}

// Stylesheet emits one CSS rule per themed token kind.
func Stylesheet(theme Theme) string {
	var out strings.Builder
	out.WriteString("pre.glint { background: #1E222A; color: #ABB2BF; padding: 1em; }\n")
	for _, kind := range token.Kinds() {
		color, ok := theme[kind]
		if !ok {
			continue
		}
		fmt.Fprintf(&out, ".glint-%s { color: %s; }\n", kind, color)
	}
	return out.String()
}
