package grammar

import (
	"path/filepath"
	"regexp"
	"strings"
)

// markupLikely matches content whose first significant character opens
// a tag. One heuristic is all the auto-detection the engine promises;
// anything that does not look like markup is treated as JavaScript.
var markupLikely = regexp.MustCompile(`(?s)^\s*<`)

// Detect picks a grammar for source content with no other signal.
func Detect(source string) ID {
	if markupLikely.MatchString(source) {
		return Markup
	}
	return JavaScript
}

// extGrammars maps file extensions to grammar IDs for callers that
// know the source's filename.
var extGrammars = map[string]ID{
	".js":   JavaScript,
	".mjs":  JavaScript,
	".cjs":  JavaScript,
	".jsx":  JavaScript,
	".html": Markup,
	".htm":  Markup,
	".xml":  Markup,
	".svg":  Markup,
	".css":  CSS,
	".json": JSON,
}

// DetectPath picks a grammar from a filename, falling back to the
// content heuristic when the extension is unknown.
func DetectPath(path, source string) ID {
	ext := strings.ToLower(filepath.Ext(filepath.Base(path)))
	if id, ok := extGrammars[ext]; ok {
		return id
	}
	return Detect(source)
}
