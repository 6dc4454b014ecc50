package grammar

import (
	"regexp"

	"github.com/glinthq/glint/internal/token"
)

// newCSS builds the CSS pattern table. Property names reuse the
// attr-name kind and color/dimension literals the number kind, so the
// renderer's kind set stays closed.
func newCSS() *Grammar {
	return &Grammar{
		ID:   CSS,
		Name: "CSS",
		Patterns: []Pattern{
			{
				Name:    "comment",
				Matcher: regexp.MustCompile(`(?s)/\*.*?\*/`),
				Kind:    token.Comment,
			},
			{
				Name:    "string",
				Matcher: regexp.MustCompile("\"[^\"\n]*\"|'[^'\n]*'"),
				Kind:    token.String,
			},
			{
				Name:    "keyword",
				Matcher: regexp.MustCompile(`@[a-zA-Z-]+|!\s*important\b`),
				Kind:    token.Keyword,
			},
			{
				// Property name anchored on its colon; the colon itself
				// is left for the operator rule.
				Name:    "attr-name",
				Matcher: regexp.MustCompile(`([a-zA-Z-][a-zA-Z0-9-]*)\s*:`),
				Group:   1,
				Kind:    token.AttrName,
			},
			{
				Name:    "number",
				Matcher: regexp.MustCompile(`#[0-9a-fA-F]{3,8}|\b\d+(?:\.\d+)?(?:px|em|rem|vh|vw|ms|s|%)?`),
				Kind:    token.Number,
			},
			{
				Name:    "operator",
				Matcher: regexp.MustCompile(`[{}();:,]`),
				Kind:    token.Operator,
			},
		},
	}
}
