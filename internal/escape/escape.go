// Package escape provides HTML entity escaping for rendered output.
package escape

import "strings"

// replacer maps the five characters that are reserved in markup.
var replacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// Escape substitutes entity sequences for markup-reserved characters.
func Escape(s string) string {
	return replacer.Replace(s)
}
