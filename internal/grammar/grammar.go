// Package grammar defines pattern tables for the tokenization engine
// and the registry that maps grammar IDs to them.
package grammar

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/glinthq/glint/internal/token"
)

// ID identifies a registered grammar.
type ID string

const (
	JavaScript ID = "javascript"
	Markup     ID = "markup"
	CSS        ID = "css"
	JSON       ID = "json"
)

// Pattern is one lexical rule. Position in the grammar's pattern slice
// is the rule's priority: earlier patterns claim their spans first and
// later patterns never partially overwrite them.
//
// Group selects a capture group of Matcher as the token span (0 means
// the whole match). It exists because RE2 has no lookahead: rules like
// "attribute name followed by =" match the delimiter to anchor
// themselves but should only claim the name.
type Pattern struct {
	Name    string
	Matcher *regexp.Regexp
	Group   int
	Kind    token.Kind
}

// Embedding declares that regions of this grammar's text carry a
// second grammar. Locator must capture the inner text as group 1; it
// is written case-insensitive and non-greedy so each open delimiter
// binds to the nearest following close delimiter. A region with no
// close delimiter is simply not located and its content falls back to
// host tokenization.
type Embedding struct {
	Name    string
	Locator *regexp.Regexp
	Inner   ID
}

// Grammar is an immutable pattern table plus any embedded-grammar
// declarations. Construct once, share freely: nothing here is mutated
// after registry construction, so concurrent tokenize calls are safe.
type Grammar struct {
	ID         ID
	Name       string
	Patterns   []Pattern
	Embeddings []Embedding
}

// Registry maps grammar IDs to their pattern tables. It is built once
// by NewRegistry and read-only afterwards; callers pass it explicitly
// rather than relying on package-level state.
type Registry struct {
	grammars map[ID]*Grammar
}

// NewRegistry builds the registry with every built-in grammar.
func NewRegistry() *Registry {
	r := &Registry{grammars: make(map[ID]*Grammar)}
	for _, g := range []*Grammar{
		newJavaScript(),
		newMarkup(),
		newCSS(),
		newJSON(),
	} {
		r.grammars[g.ID] = g
	}
	return r
}

// Lookup returns the grammar registered under id.
func (r *Registry) Lookup(id ID) (*Grammar, error) {
	g, ok := r.grammars[id]
	if !ok {
		return nil, fmt.Errorf("unknown grammar %q", id)
	}
	return g, nil
}

// IDs returns all registered grammar IDs in sorted order.
func (r *Registry) IDs() []ID {
	ids := make([]ID, 0, len(r.grammars))
	for id := range r.grammars {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
