package grammar

import (
	"regexp"

	"github.com/glinthq/glint/internal/token"
)

// newJSON builds the JSON pattern table. Object keys are distinguished
// from string values by their trailing colon and rendered as
// attribute names.
func newJSON() *Grammar {
	return &Grammar{
		ID:   JSON,
		Name: "JSON",
		Patterns: []Pattern{
			{
				Name:    "key",
				Matcher: regexp.MustCompile(`("(?:[^"\\]|\\.)*")\s*:`),
				Group:   1,
				Kind:    token.AttrName,
			},
			{
				Name:    "string",
				Matcher: regexp.MustCompile(`"(?:[^"\\]|\\.)*"`),
				Kind:    token.String,
			},
			{
				Name:    "number",
				Matcher: regexp.MustCompile(`-?\b\d+(?:\.\d+)?(?:[eE][+-]?\d+)?\b`),
				Kind:    token.Number,
			},
			{
				Name:    "keyword",
				Matcher: regexp.MustCompile(`\b(?:true|false|null)\b`),
				Kind:    token.Keyword,
			},
			{
				Name:    "operator",
				Matcher: regexp.MustCompile(`[{}\[\],:]`),
				Kind:    token.Operator,
			},
		},
	}
}
