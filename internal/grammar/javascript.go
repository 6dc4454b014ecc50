package grammar

import (
	"regexp"

	"github.com/glinthq/glint/internal/token"
)

// newJavaScript builds the JavaScript pattern table. Strings outrank
// comments so `//` inside a literal (URLs, mostly) cannot open a
// comment; both outrank the operator rule so `//` and `/*` are never
// split into operator tokens.
func newJavaScript() *Grammar {
	return &Grammar{
		ID:   JavaScript,
		Name: "JavaScript",
		Patterns: []Pattern{
			{
				Name:    "string",
				Matcher: regexp.MustCompile("\"(?:[^\"\\\\\n]|\\\\.)*\"|'(?:[^'\\\\\n]|\\\\.)*'|`(?:[^`\\\\]|\\\\.)*`"),
				Kind:    token.String,
			},
			{
				Name:    "comment",
				Matcher: regexp.MustCompile(`(?s)/\*.*?\*/|//[^\n]*`),
				Kind:    token.Comment,
			},
			{
				Name:    "keyword",
				Matcher: regexp.MustCompile(`\b(?:async|await|break|case|catch|class|const|continue|debugger|default|delete|do|else|export|extends|finally|for|function|if|import|in|instanceof|let|new|of|return|static|super|switch|this|throw|try|typeof|var|void|while|with|yield)\b`),
				Kind:    token.Keyword,
			},
			{
				Name:    "number",
				Matcher: regexp.MustCompile(`\b0[xX][0-9a-fA-F]+\b|\b\d+(?:\.\d+)?(?:[eE][+-]?\d+)?\b`),
				Kind:    token.Number,
			},
			{
				Name:    "operator",
				Matcher: regexp.MustCompile(`[+\-*/%=!<>&|^~?]+`),
				Kind:    token.Operator,
			},
		},
	}
}
