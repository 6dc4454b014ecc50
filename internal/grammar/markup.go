package grammar

import (
	"regexp"

	"github.com/glinthq/glint/internal/token"
)

// newMarkup builds the HTML pattern table. Script and style bodies are
// handed off to the JavaScript and CSS grammars; the delimiters
// themselves stay markup tokens. Locators are case-insensitive and
// non-greedy, so each opening tag binds to the nearest close and an
// unterminated element produces no region at all.
func newMarkup() *Grammar {
	return &Grammar{
		ID:   Markup,
		Name: "HTML",
		Patterns: []Pattern{
			{
				Name:    "comment",
				Matcher: regexp.MustCompile(`(?s)<!--.*?-->`),
				Kind:    token.Comment,
			},
			{
				Name:    "tag",
				Matcher: regexp.MustCompile(`</?[A-Za-z][A-Za-z0-9-]*|/?>`),
				Kind:    token.Tag,
			},
			{
				Name:    "attr-value",
				Matcher: regexp.MustCompile(`"[^"]*"|'[^']*'`),
				Kind:    token.AttrValue,
			},
			{
				// Anchored on the trailing = but claims only the name;
				// RE2 has no lookahead, so the delimiter is matched and
				// left unclaimed via the capture group.
				Name:    "attr-name",
				Matcher: regexp.MustCompile(`([A-Za-z_][A-Za-z0-9_-]*)\s*=`),
				Group:   1,
				Kind:    token.AttrName,
			},
		},
		Embeddings: []Embedding{
			{
				Name:    "script",
				Locator: regexp.MustCompile(`(?is)<script\b[^>]*>(.*?)</script\s*>`),
				Inner:   JavaScript,
			},
			{
				Name:    "style",
				Locator: regexp.MustCompile(`(?is)<style\b[^>]*>(.*?)</style\s*>`),
				Inner:   CSS,
			},
		},
	}
}
