package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/glinthq/glint/internal/token"
)

func TestHTML(t *testing.T) {
	tests := []struct {
		name   string
		source string
		tokens []token.Token
		want   string
	}{
		{
			name:   "no tokens escapes everything",
			source: `a < b & c`,
			tokens: nil,
			want:   "a &lt; b &amp; c",
		},
		{
			name:   "single token with surrounding gaps",
			source: "x = 1",
			tokens: []token.Token{{Kind: token.Number, Text: "1", Start: 4, End: 5}},
			want:   `x = <span class="glint-number">1</span>`,
		},
		{
			name:   "token text is escaped",
			source: `"<b>"`,
			tokens: []token.Token{{Kind: token.String, Text: `"<b>"`, Start: 0, End: 5}},
			want:   `<span class="glint-string">&quot;&lt;b&gt;&quot;</span>`,
		},
		{
			name:   "adjacent tokens",
			source: "1+2",
			tokens: []token.Token{
				{Kind: token.Number, Text: "1", Start: 0, End: 1},
				{Kind: token.Operator, Text: "+", Start: 1, End: 2},
				{Kind: token.Number, Text: "2", Start: 2, End: 3},
			},
			want: `<span class="glint-number">1</span><span class="glint-operator">+</span><span class="glint-number">2</span>`,
		},
		{
			name:   "empty source",
			source: "",
			tokens: nil,
			want:   "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTML(tt.source, tt.tokens))
		})
	}
}

func TestPage(t *testing.T) {
	theme := PresetTheme("default")
	source := "var x"
	tokens := []token.Token{{Kind: token.Keyword, Text: "var", Start: 0, End: 3}}

	page := Page(source, tokens, theme)

	assert.True(t, strings.HasPrefix(page, "<!DOCTYPE html>"))
	assert.Contains(t, page, `<pre class="glint">`)
	assert.Contains(t, page, `<span class="glint-keyword">var</span>`)
	assert.Contains(t, page, ".glint-keyword { color: "+theme[token.Keyword]+"; }")
}

func TestStylesheet_OneRulePerThemedKind(t *testing.T) {
	theme := PresetTheme("mono")
	css := Stylesheet(theme)

	assert.Contains(t, css, ".glint-comment")
	assert.NotContains(t, css, ".glint-keyword")
}
