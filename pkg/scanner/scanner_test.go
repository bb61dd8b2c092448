package scanner_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localesync/pkg/scanner"
)

func scan(t *testing.T, fsys fstest.MapFS, opts ...scanner.Option) *scanner.Result {
	t.Helper()

	s, err := scanner.New(opts...)
	require.NoError(t, err)

	result, err := s.Scan(context.Background(), fsys)
	require.NoError(t, err)
	return result
}

func TestScanFindsHardcodedText(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"pages/home.tsx": &fstest.MapFile{Data: []byte(
			"export default function Home() {\n" +
				"  return <h1>Bienvenue sur le site</h1>;\n" +
				"}\n",
		)},
	}

	result := scan(t, fsys)

	assert.Equal(t, 1, result.TotalFiles)
	require.Len(t, result.Files, 1)

	file := result.Files[0]
	assert.Equal(t, "pages/home.tsx", file.File)
	assert.False(t, file.UsesTranslations)
	require.Len(t, file.Findings, 1)
	assert.Equal(t, 2, file.Findings[0].Line)
	assert.Equal(t, "Bienvenue sur le site", file.Findings[0].Text)
}

func TestScanAttributeText(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"form.tsx": &fstest.MapFile{Data: []byte(
			`<input placeholder="Votre adresse email" title="Champ requis" />` + "\n",
		)},
	}

	result := scan(t, fsys)

	require.Len(t, result.Files, 1)
	texts := make([]string, 0, 2)
	for _, f := range result.Files[0].Findings {
		texts = append(texts, f.Text)
	}
	assert.ElementsMatch(t, []string{"Votre adresse email", "Champ requis"}, texts)
}

func TestScanCleanFileWithHooks(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"clean.tsx": &fstest.MapFile{Data: []byte(
			"const t = useTranslations('home');\n" +
				"return <h1>{t('title')}</h1>;\n",
		)},
	}

	result := scan(t, fsys)

	assert.Equal(t, 1, result.TotalFiles)
	assert.Equal(t, 1, result.CleanFiles)
	assert.Empty(t, result.Files)
}

func TestScanFlagsFileWithoutHooks(t *testing.T) {
	t.Parallel()

	// No hardcoded text either, but a UI file that never touches the
	// catalog still deserves a look.
	fsys := fstest.MapFS{
		"static.tsx": &fstest.MapFile{Data: []byte("export const x = 1;\n")},
	}

	result := scan(t, fsys)

	require.Len(t, result.Files, 1)
	assert.False(t, result.Files[0].UsesTranslations)
	assert.Empty(t, result.Files[0].Findings)
}

func TestScanSkipsCommentsAndImports(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"commented.tsx": &fstest.MapFile{Data: []byte(
			"const t = getTranslations('x');\n" +
				"// <h1>Texte en commentaire</h1>\n" +
				"import thing from '<h1>not real</h1>';\n",
		)},
	}

	result := scan(t, fsys)
	assert.Empty(t, result.Files)
}

func TestScanExtensionFilter(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"ignored.go":  &fstest.MapFile{Data: []byte(`var x = "<h1>Pas scanné</h1>"`)},
		"scanned.vue": &fstest.MapFile{Data: []byte("<h1>Texte visible</h1>\n")},
	}

	result := scan(t, fsys, scanner.WithExtensions(".vue"))

	assert.Equal(t, 1, result.TotalFiles)
	require.Len(t, result.Files, 1)
	assert.Equal(t, "scanned.vue", result.Files[0].File)
}

func TestScanDeterministicOrder(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"b.tsx": &fstest.MapFile{Data: []byte("<h1>Deuxième titre</h1>\n")},
		"a.tsx": &fstest.MapFile{Data: []byte("<h1>Premier titre</h1>\n")},
		"c.tsx": &fstest.MapFile{Data: []byte("<h1>Troisième titre</h1>\n")},
	}

	result := scan(t, fsys)

	require.Len(t, result.Files, 3)
	assert.Equal(t, "a.tsx", result.Files[0].File)
	assert.Equal(t, "b.tsx", result.Files[1].File)
	assert.Equal(t, "c.tsx", result.Files[2].File)
	assert.Equal(t, 3, result.TotalFindings)
}

func TestScanOptionValidation(t *testing.T) {
	t.Parallel()

	_, err := scanner.New(scanner.WithConcurrency(0))
	require.ErrorIs(t, err, scanner.ErrInvalidConcurrency)
}
