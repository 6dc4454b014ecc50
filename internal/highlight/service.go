// Package highlight is the public boundary around the tokenization
// engine: it resolves grammars, renders token streams, and absorbs any
// internal fault by degrading to escaped plain text.
package highlight

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/glinthq/glint/internal/cachemanager"
	"github.com/glinthq/glint/internal/config"
	"github.com/glinthq/glint/internal/engine"
	"github.com/glinthq/glint/internal/escape"
	"github.com/glinthq/glint/internal/grammar"
	"github.com/glinthq/glint/internal/log"
	"github.com/glinthq/glint/internal/render"
	"github.com/glinthq/glint/internal/token"
)

// Format selects the output representation.
type Format string

const (
	FormatANSI Format = "ansi"
	FormatHTML Format = "html"
	FormatPage Format = "page"
	FormatJSON Format = "json"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatANSI, FormatHTML, FormatPage, FormatJSON:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown format %q (use ansi, html, page, or json)", s)
	}
}

// Options control a single Render call.
type Options struct {
	// Grammar is a grammar ID, or "auto" to detect.
	Grammar string
	// Path is an optional filename hint for detection.
	Path string
	// Format selects the output representation.
	Format Format
}

// Service wires the grammar registry, theme, and render cache behind
// one entry point. A Service is safe for concurrent use: the registry
// and theme are read-only and each tokenize call keeps its own state.
type Service struct {
	registry *grammar.Registry
	theme    render.Theme
	cache    *cachemanager.InMemoryCacheManager[string]
}

// NewService builds a Service from configuration.
func NewService(cfg config.Config) *Service {
	return &Service{
		registry: grammar.NewRegistry(),
		theme:    cfg.Theme.BuildTheme(),
		cache: cachemanager.NewInMemoryCacheManager[string](
			"render",
			cachemanager.DefaultExpiration,
			cachemanager.DefaultCleanupInterval,
		),
	}
}

// Registry exposes the grammar registry for listing commands.
func (s *Service) Registry() *grammar.Registry {
	return s.registry
}

// Tokens tokenizes source under the named grammar and returns the
// position-sorted token stream.
func (s *Service) Tokens(source string, id grammar.ID) ([]token.Token, error) {
	g, err := s.registry.Lookup(id)
	if err != nil {
		return nil, err
	}
	return engine.Tokenize(source, g, s.registry), nil
}

// Render tokenizes and renders source according to opts. It never
// fails: a misconfigured pattern or any other internal fault degrades
// to the escaped original input, and an unknown grammar or format
// falls back to detection and ANSI respectively.
func (s *Service) Render(source string, opts Options) (out string) {
	defer func() {
		if r := recover(); r != nil {
			log.Error(log.CatRender, "render fault, degrading to plain text", "fault", r)
			out = escape.Escape(source)
		}
	}()

	id := s.resolveGrammar(source, opts)
	format := opts.Format
	if format == "" {
		format = FormatANSI
	}

	key := cacheKey(source, id, format)
	if cached, ok := s.cache.Get(key); ok {
		return cached
	}

	g, err := s.registry.Lookup(id)
	if err != nil {
		// Detection always yields a registered grammar; an explicit
		// unknown ID degrades to plain escaped output.
		log.Warn(log.CatGrammar, "unknown grammar, rendering plain", "grammar", id)
		return escape.Escape(source)
	}

	tokens := engine.Tokenize(source, g, s.registry)
	log.Debug(log.CatEngine, "tokenized", "grammar", id, "bytes", len(source), "tokens", len(tokens))

	rendered := s.renderTokens(source, tokens, format)
	s.cache.Set(key, rendered, cachemanager.DefaultExpiration)
	return rendered
}

func (s *Service) resolveGrammar(source string, opts Options) grammar.ID {
	if opts.Grammar != "" && opts.Grammar != "auto" {
		return grammar.ID(opts.Grammar)
	}
	if opts.Path != "" {
		return grammar.DetectPath(opts.Path, source)
	}
	return grammar.Detect(source)
}

func (s *Service) renderTokens(source string, tokens []token.Token, format Format) string {
	switch format {
	case FormatHTML:
		return render.HTML(source, tokens)
	case FormatPage:
		return render.Page(source, tokens, s.theme)
	case FormatJSON:
		return tokensJSON(tokens)
	default:
		return render.ANSI(source, tokens, s.theme)
	}
}

// tokenDTO is the JSON shape of a token.
type tokenDTO struct {
	Kind  string `json:"kind"`
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

func tokensJSON(tokens []token.Token) string {
	dtos := make([]tokenDTO, 0, len(tokens))
	for _, t := range tokens {
		dtos = append(dtos, tokenDTO{
			Kind:  t.Kind.String(),
			Text:  t.Text,
			Start: t.Start,
			End:   t.End,
		})
	}
	data, err := json.MarshalIndent(dtos, "", "  ")
	if err != nil {
		// Tokens are plain strings and ints; marshal cannot fail.
		panic(err)
	}
	return string(data)
}

func cacheKey(source string, id grammar.ID, format Format) string {
	sum := sha256.Sum256([]byte(source))
	return string(id) + ":" + string(format) + ":" + hex.EncodeToString(sum[:])
}
