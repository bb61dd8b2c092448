package localetree_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localesync/pkg/localetree"
)

func TestParseJSON(t *testing.T) {
	t.Parallel()

	doc := `{
		"title": "Bonjour",
		"count": 42,
		"ratio": 0.5,
		"active": true,
		"missing": null,
		"nav": {"home": "Accueil"},
		"tags": ["un", "deux"]
	}`

	tree, err := localetree.Parse([]byte(doc))
	require.NoError(t, err)
	require.Equal(t, localetree.KindMapping, tree.Kind())

	title, ok := tree.Child("title")
	require.True(t, ok)
	value, ok := title.StringValue()
	require.True(t, ok)
	assert.Equal(t, "Bonjour", value)

	count, ok := tree.Child("count")
	require.True(t, ok)
	assert.Equal(t, int64(42), count.Value())

	ratio, ok := tree.Child("ratio")
	require.True(t, ok)
	assert.Equal(t, 0.5, ratio.Value())

	active, ok := tree.Child("active")
	require.True(t, ok)
	assert.Equal(t, true, active.Value())

	missing, ok := tree.Child("missing")
	require.True(t, ok)
	require.Equal(t, localetree.KindLeaf, missing.Kind())
	assert.Nil(t, missing.Value())

	nav, ok := tree.Child("nav")
	require.True(t, ok)
	require.Equal(t, localetree.KindMapping, nav.Kind())

	tags, ok := tree.Child("tags")
	require.True(t, ok)
	require.Equal(t, localetree.KindSequence, tags.Kind())
	require.Equal(t, 2, tags.Len())
	first, ok := tags.At(0).StringValue()
	require.True(t, ok)
	assert.Equal(t, "un", first)
}

func TestParseYAML(t *testing.T) {
	t.Parallel()

	doc := strings.Join([]string{
		"title: Bonjour",
		"nav:",
		"  home: Accueil",
		"  items:",
		"    - label: Profil",
		"    - label: Contact",
	}, "\n")

	tree, err := localetree.Parse([]byte(doc))
	require.NoError(t, err)

	nav, ok := tree.Child("nav")
	require.True(t, ok)
	items, ok := nav.Child("items")
	require.True(t, ok)
	require.Equal(t, localetree.KindSequence, items.Kind())

	label, ok := items.At(1).Child("label")
	require.True(t, ok)
	value, _ := label.StringValue()
	assert.Equal(t, "Contact", value)
}

func TestParsePreservesKeyOrder(t *testing.T) {
	t.Parallel()

	doc := `{"zulu": 1, "alpha": 2, "mike": 3}`
	tree, err := localetree.Parse([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, []string{"zulu", "alpha", "mike"}, tree.Keys())
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		doc      string
		expected error
	}{
		{
			name:     "malformed document",
			doc:      `{"title": `,
			expected: localetree.ErrInvalidDocument,
		},
		{
			name:     "empty document",
			doc:      "",
			expected: localetree.ErrInvalidDocument,
		},
		{
			name:     "duplicate key",
			doc:      "title: a\ntitle: b\n",
			expected: localetree.ErrDuplicateKey,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := localetree.Parse([]byte(tt.doc))
			require.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestParseDepthLimit(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	for i := 0; i < localetree.MaxDepth+5; i++ {
		b.WriteString(`{"k":`)
	}
	b.WriteString(`"v"`)
	for i := 0; i < localetree.MaxDepth+5; i++ {
		b.WriteString(`}`)
	}

	_, err := localetree.Parse([]byte(b.String()))
	require.ErrorIs(t, err, localetree.ErrMaxDepth)
}

func TestMarshalJSONKeepsOrderAndTypes(t *testing.T) {
	t.Parallel()

	doc := `{"zulu":"z","alpha":{"nested":[1,true,null,"txt"]},"ratio":0.5}`
	tree, err := localetree.Parse([]byte(doc))
	require.NoError(t, err)

	out, err := tree.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, doc, string(out))
}

func TestEncodeJSONRoundTrip(t *testing.T) {
	t.Parallel()

	doc := `{"title":"Bonjour","nav":{"home":"Accueil"}}`
	tree, err := localetree.Parse([]byte(doc))
	require.NoError(t, err)

	encoded, err := localetree.EncodeJSON(tree, "  ")
	require.NoError(t, err)

	reparsed, err := localetree.Parse(encoded)
	require.NoError(t, err)
	assert.Equal(t, tree.Keys(), reparsed.Keys())

	home, ok := reparsed.Child("nav")
	require.True(t, ok)
	leaf, ok := home.Child("home")
	require.True(t, ok)
	value, _ := leaf.StringValue()
	assert.Equal(t, "Accueil", value)
}

func TestEncodeYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	tree := localetree.NewMapping(
		localetree.MapEntry{Key: "title", Node: localetree.NewString("Bonjour")},
		localetree.MapEntry{Key: "count", Node: localetree.NewLeaf(int64(2))},
		localetree.MapEntry{Key: "tags", Node: localetree.NewSequence(
			localetree.NewString("un"),
			localetree.NewLeaf(nil),
		)},
	)

	encoded, err := localetree.EncodeYAML(tree)
	require.NoError(t, err)

	reparsed, err := localetree.Parse(encoded)
	require.NoError(t, err)
	assert.Equal(t, []string{"title", "count", "tags"}, reparsed.Keys())

	count, ok := reparsed.Child("count")
	require.True(t, ok)
	assert.Equal(t, int64(2), count.Value())

	tags, ok := reparsed.Child("tags")
	require.True(t, ok)
	require.Equal(t, 2, tags.Len())
	assert.Nil(t, tags.At(1).Value())
}

func TestEncodeYAMLNilNode(t *testing.T) {
	t.Parallel()

	_, err := localetree.EncodeYAML(nil)
	require.ErrorIs(t, err, localetree.ErrNilNode)
}

func TestCountLeaves(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		doc      string
		expected int
	}{
		{name: "single leaf", doc: `"hello"`, expected: 1},
		{name: "flat mapping", doc: `{"a":1,"b":2}`, expected: 2},
		{name: "nested", doc: `{"a":{"b":["x","y"]},"c":null}`, expected: 3},
		{name: "empty mapping", doc: `{}`, expected: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tree, err := localetree.Parse([]byte(tt.doc))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, localetree.CountLeaves(tree))
		})
	}

	assert.Equal(t, 0, localetree.CountLeaves(nil))
}
