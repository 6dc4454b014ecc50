// Package engine implements the pattern-priority tokenizer and its
// host-language context switch.
//
// A grammar is an ordered pattern table; order is priority. Each
// pattern scans the whole buffer and claims the spans it matches, and
// a match touching any already-claimed offset is discarded whole, so
// no two tokens ever overlap. Grammars with embeddings run the same
// claiming pass for the host table, reserve the located inner regions,
// tokenize those regions recursively under their inner grammar, and
// merge the translated results through the same claim set.
//
// The engine never fails: malformed input (unterminated literals,
// unclosed elements) just yields fewer tokens, and the uncovered gaps
// are the caller's literal text.
package engine

import (
	"sort"
	"strings"

	"github.com/glinthq/glint/internal/grammar"
	"github.com/glinthq/glint/internal/token"
)

// Resolver looks up the inner grammar of an embedding. *grammar.Registry
// satisfies it.
type Resolver interface {
	Lookup(id grammar.ID) (*grammar.Grammar, error)
}

// region is one located embedding occurrence. innerStart doubles as
// the coordinate-translation constant for tokens produced under the
// inner grammar.
type region struct {
	outerStart, outerEnd int
	innerStart, innerEnd int
	inner                *grammar.Grammar
}

// Tokenize converts source into a position-sorted, non-overlapping
// token stream under g. It is a pure function of its inputs: the only
// state it allocates is the per-call claim set, so a grammar built
// once may serve any number of concurrent calls.
func Tokenize(source string, g *grammar.Grammar, res Resolver) []token.Token {
	claims := newClaimSet(len(source))
	regions := locateRegions(source, g, res)

	tokens := hostPass(source, g.Patterns, claims, regions)
	tokens = append(tokens, embeddedPass(source, regions, claims, res)...)

	// Spans are disjoint by construction, so sorting by Start alone
	// yields a total order.
	sort.Slice(tokens, func(i, j int) bool { return tokens[i].Start < tokens[j].Start })
	return tokens
}

// hostPass applies the pattern table in priority order. A match is
// dropped if any of its offsets is claimed, or if it lies strictly
// inside an embedded region's inner text; region delimiters remain
// eligible, so `<script>` itself is still a host token.
func hostPass(source string, patterns []grammar.Pattern, claims claimSet, regions []region) []token.Token {
	var tokens []token.Token
	for _, p := range patterns {
		for _, m := range p.Matcher.FindAllStringSubmatchIndex(source, -1) {
			s, e := m[2*p.Group], m[2*p.Group+1]
			// Zero-width and absent-group matches carry no text.
			// FindAll already advances past empty matches, so
			// skipping keeps the scan moving.
			if s < 0 || e <= s {
				continue
			}
			if insideRegion(regions, s, e) {
				continue
			}
			if claims.any(s, e) {
				continue
			}
			claims.mark(s, e)
			tokens = append(tokens, token.Token{
				Kind:  p.Kind,
				Text:  source[s:e],
				Start: s,
				End:   e,
			})
		}
	}
	return tokens
}

// embeddedPass tokenizes each region's inner text under its inner
// grammar, translates the results into host coordinates, and admits
// them through the shared claim set. Claim-checking here mirrors the
// host pass exactly, so double coverage is impossible even when
// located regions overlap each other or a host token.
func embeddedPass(source string, regions []region, claims claimSet, res Resolver) []token.Token {
	var tokens []token.Token
	for _, r := range regions {
		inner := source[r.innerStart:r.innerEnd]
		if strings.TrimSpace(inner) == "" {
			continue
		}
		for _, t := range Tokenize(inner, r.inner, res) {
			s, e := t.Start+r.innerStart, t.End+r.innerStart
			if claims.any(s, e) {
				continue
			}
			claims.mark(s, e)
			tokens = append(tokens, token.Token{
				Kind:  t.Kind,
				Text:  t.Text,
				Start: s,
				End:   e,
			})
		}
	}
	return tokens
}

// locateRegions finds every embedding occurrence in source. Regions
// whose inner grammar cannot be resolved are skipped: the host grammar
// then tokenizes that span like any other text.
func locateRegions(source string, g *grammar.Grammar, res Resolver) []region {
	if len(g.Embeddings) == 0 {
		return nil
	}
	var regions []region
	for _, emb := range g.Embeddings {
		inner, err := res.Lookup(emb.Inner)
		if err != nil {
			continue
		}
		for _, m := range emb.Locator.FindAllStringSubmatchIndex(source, -1) {
			if len(m) < 4 || m[2] < 0 {
				continue
			}
			regions = append(regions, region{
				outerStart: m[0],
				outerEnd:   m[1],
				innerStart: m[2],
				innerEnd:   m[3],
				inner:      inner,
			})
		}
	}
	return regions
}

// insideRegion reports whether [s, e) lies within some region's inner
// text. Only the interior is excluded from host tokenization; matches
// touching the delimiters stay with the host grammar.
func insideRegion(regions []region, s, e int) bool {
	for _, r := range regions {
		if s >= r.innerStart && e <= r.innerEnd {
			return true
		}
	}
	return false
}
