// Package render turns token streams into presentation output: HTML
// markup with styled spans, or ANSI-colored text for the terminal.
package render

import (
	"sort"

	"github.com/glinthq/glint/internal/token"
)

// Theme maps token kinds to hex colors. A kind with no entry renders
// unstyled.
type Theme map[token.Kind]string

// Presets returns the names of the built-in themes in sorted order.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PresetTheme returns a copy of the named built-in theme, or the
// default theme if the name is unknown.
func PresetTheme(name string) Theme {
	base, ok := presets[name]
	if !ok {
		base = presets["default"]
	}
	theme := make(Theme, len(base))
	for k, v := range base {
		theme[k] = v
	}
	return theme
}

var presets = map[string]Theme{
	"default": {
		token.Keyword:   "#C678DD",
		token.String:    "#98C379",
		token.Number:    "#D19A66",
		token.Comment:   "#5C6370",
		token.Operator:  "#56B6C2",
		token.Tag:       "#E06C75",
		token.AttrName:  "#D19A66",
		token.AttrValue: "#98C379",
	},
	"nord": {
		token.Keyword:   "#81A1C1",
		token.String:    "#A3BE8C",
		token.Number:    "#B48EAD",
		token.Comment:   "#4C566A",
		token.Operator:  "#88C0D0",
		token.Tag:       "#8FBCBB",
		token.AttrName:  "#D08770",
		token.AttrValue: "#A3BE8C",
	},
	// mono keeps comments dimmed and everything else plain, for
	// terminals where color is unwelcome.
	"mono": {
		token.Comment: "#808080",
	},
}
