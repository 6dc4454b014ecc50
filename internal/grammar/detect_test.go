package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   ID
	}{
		{"html document", "<!DOCTYPE html><html></html>", Markup},
		{"leading whitespace tag", "  \n\t<div>x</div>", Markup},
		{"javascript", "var x = 1;", JavaScript},
		{"comparison is not markup", "if (a<b) {}", JavaScript},
		{"empty defaults to javascript", "", JavaScript},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.source))
		})
	}
}

func TestDetectPath(t *testing.T) {
	tests := []struct {
		path   string
		source string
		want   ID
	}{
		{"app.js", "", JavaScript},
		{"index.html", "", Markup},
		{"style.css", "", CSS},
		{"data.json", "", JSON},
		{"diagram.svg", "", Markup},
		{"page.HTM", "", Markup},
		// Unknown extension falls back to the content heuristic.
		{"notes.txt", "<p>hi</p>", Markup},
		{"notes.txt", "let x = 2", JavaScript},
		{"", "let x = 2", JavaScript},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectPath(tt.path, tt.source), "path=%q", tt.path)
	}
}
