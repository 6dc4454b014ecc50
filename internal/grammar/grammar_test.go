package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_LookupKnownGrammars(t *testing.T) {
	reg := NewRegistry()
	for _, id := range []ID{JavaScript, Markup, CSS, JSON} {
		g, err := reg.Lookup(id)
		require.NoError(t, err)
		assert.Equal(t, id, g.ID)
		assert.NotEmpty(t, g.Patterns)
	}
}

func TestRegistry_LookupUnknownGrammar(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.Lookup("cobol")
	assert.ErrorContains(t, err, "unknown grammar")
}

func TestRegistry_IDsSorted(t *testing.T) {
	reg := NewRegistry()
	ids := reg.IDs()
	assert.Equal(t, []ID{CSS, JavaScript, JSON, Markup}, ids)
}

// TestPatternGroupsExist verifies that every pattern's Group refers to
// a capture group its matcher actually has, and every embedding's
// locator captures the inner text as group 1 and resolves to a
// registered grammar.
func TestPatternGroupsExist(t *testing.T) {
	reg := NewRegistry()
	for _, id := range reg.IDs() {
		g, err := reg.Lookup(id)
		require.NoError(t, err)

		for _, p := range g.Patterns {
			assert.LessOrEqual(t, p.Group, p.Matcher.NumSubexp(),
				"%s/%s: group %d but only %d subexpressions", id, p.Name, p.Group, p.Matcher.NumSubexp())
		}
		for _, emb := range g.Embeddings {
			assert.GreaterOrEqual(t, emb.Locator.NumSubexp(), 1,
				"%s/%s: locator must capture inner text", id, emb.Name)
			_, err := reg.Lookup(emb.Inner)
			assert.NoError(t, err, "%s/%s: inner grammar must be registered", id, emb.Name)
		}
	}
}

func TestMarkupLocator_BindsNearestClose(t *testing.T) {
	reg := NewRegistry()
	markup, err := reg.Lookup(Markup)
	require.NoError(t, err)

	var script *Embedding
	for i := range markup.Embeddings {
		if markup.Embeddings[i].Name == "script" {
			script = &markup.Embeddings[i]
		}
	}
	require.NotNil(t, script)

	// Non-greedy: the first region ends at the first close delimiter.
	src := `<script>a</script><script>b</script>`
	matches := script.Locator.FindAllStringSubmatch(src, -1)
	require.Len(t, matches, 2)
	assert.Equal(t, "a", matches[0][1])
	assert.Equal(t, "b", matches[1][1])
}
