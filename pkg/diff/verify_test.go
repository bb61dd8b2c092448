package diff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localesync/pkg/diff"
)

func TestFindUnmodifiedLeaves(t *testing.T) {
	t.Parallel()

	t.Run("identical leaf flagged", func(t *testing.T) {
		t.Parallel()

		a := parse(t, `{"msg":"Bonjour"}`)
		b := parse(t, `{"msg":"Bonjour"}`)

		warnings, err := diff.FindUnmodifiedLeaves(a, b)
		require.NoError(t, err)
		require.Len(t, warnings, 1)
		assert.Equal(t, "msg", warnings[0].Path)
		assert.Equal(t, "Bonjour", warnings[0].Value)
	})

	t.Run("allow-listed value not flagged", func(t *testing.T) {
		t.Parallel()

		a := parse(t, `{"msg":"Bonjour"}`)
		b := parse(t, `{"msg":"Bonjour"}`)

		warnings, err := diff.FindUnmodifiedLeaves(a, b, diff.WithAllowList("Bonjour"))
		require.NoError(t, err)
		assert.Empty(t, warnings)
	})

	t.Run("allow-list matches whole value only", func(t *testing.T) {
		t.Parallel()

		a := parse(t, `{"msg":"Bonjour Paris"}`)
		b := parse(t, `{"msg":"Bonjour Paris"}`)

		warnings, err := diff.FindUnmodifiedLeaves(a, b, diff.WithAllowList("Bonjour"))
		require.NoError(t, err)
		require.Len(t, warnings, 1, "substring of an allow-listed literal must still be flagged")
	})

	t.Run("short values ignored", func(t *testing.T) {
		t.Parallel()

		a := parse(t, `{"currency":"EUR","ok":"OK"}`)
		b := parse(t, `{"currency":"EUR","ok":"OK"}`)

		warnings, err := diff.FindUnmodifiedLeaves(a, b)
		require.NoError(t, err)
		assert.Empty(t, warnings, "values at or below the minimum length stay silent")
	})

	t.Run("custom minimum length", func(t *testing.T) {
		t.Parallel()

		a := parse(t, `{"currency":"EUR"}`)
		b := parse(t, `{"currency":"EUR"}`)

		warnings, err := diff.FindUnmodifiedLeaves(a, b, diff.WithMinLeafLength(2))
		require.NoError(t, err)
		require.Len(t, warnings, 1)
	})

	t.Run("differing leaves not flagged", func(t *testing.T) {
		t.Parallel()

		a := parse(t, `{"msg":"Bonjour"}`)
		b := parse(t, `{"msg":"Hello there"}`)

		warnings, err := diff.FindUnmodifiedLeaves(a, b)
		require.NoError(t, err)
		assert.Empty(t, warnings)
	})

	t.Run("non-string identity ignored", func(t *testing.T) {
		t.Parallel()

		a := parse(t, `{"count":4200,"active":true,"none":null}`)
		b := parse(t, `{"count":4200,"active":true,"none":null}`)

		warnings, err := diff.FindUnmodifiedLeaves(a, b)
		require.NoError(t, err)
		assert.Empty(t, warnings)
	})

	t.Run("restricted to shared keys", func(t *testing.T) {
		t.Parallel()

		a := parse(t, `{"onlyA":"Identique","shared":{"msg":"Pareil ici"}}`)
		b := parse(t, `{"shared":{"msg":"Pareil ici"}}`)

		warnings, err := diff.FindUnmodifiedLeaves(a, b)
		require.NoError(t, err)
		require.Len(t, warnings, 1)
		assert.Equal(t, "shared.msg", warnings[0].Path)
	})

	t.Run("sequences compared at shared indices", func(t *testing.T) {
		t.Parallel()

		a := parse(t, `{"items":["Identique","Aussi identique"]}`)
		b := parse(t, `{"items":["Identique"]}`)

		warnings, err := diff.FindUnmodifiedLeaves(a, b)
		require.NoError(t, err)
		require.Len(t, warnings, 1)
		assert.Equal(t, "items[0]", warnings[0].Path)
	})
}

func TestVerifySynchronized(t *testing.T) {
	t.Parallel()

	ref := parse(t, `{"title":"Bonjour","nav":{"home":"Accueil"}}`)
	out := parse(t, `{"title":"Hello","nav":{"home":"Home"}}`)

	report, err := diff.Verify(ref, out)
	require.NoError(t, err)

	assert.Equal(t, diff.StatusSynchronized, report.Status)
	assert.Equal(t, 3, report.ReferenceKeyCount)
	assert.Equal(t, 3, report.OutputKeyCount)
	assert.Equal(t, 3, report.CommonKeys)
	assert.Empty(t, report.MissingInOutput)
	assert.Empty(t, report.ExtraInOutput)
	assert.Empty(t, report.UnmodifiedLeafWarnings)
}

func TestVerifyStructuralDrift(t *testing.T) {
	t.Parallel()

	ref := parse(t, `{"a":"1","b":"2","c":"3"}`)
	out := parse(t, `{"a":"one","b":"two"}`)

	report, err := diff.Verify(ref, out)
	require.NoError(t, err)

	assert.Equal(t, diff.StatusIssuesDetected, report.Status)
	assert.Equal(t, 3, report.ReferenceKeyCount)
	assert.Equal(t, 2, report.OutputKeyCount)
	assert.Equal(t, 2, report.CommonKeys)
	assert.Equal(t, []string{"c"}, report.MissingInOutput)
	assert.Empty(t, report.ExtraInOutput)
}

func TestVerifyExtraKeys(t *testing.T) {
	t.Parallel()

	ref := parse(t, `{"a":"1"}`)
	out := parse(t, `{"a":"one","stale":"left over"}`)

	report, err := diff.Verify(ref, out)
	require.NoError(t, err)

	assert.Equal(t, diff.StatusIssuesDetected, report.Status)
	assert.Equal(t, []string{"stale"}, report.ExtraInOutput)
	assert.Empty(t, report.MissingInOutput)
}

func TestVerifyWarningsDoNotAffectStatus(t *testing.T) {
	t.Parallel()

	ref := parse(t, `{"msg":"Bonjour"}`)
	out := parse(t, `{"msg":"Bonjour"}`)

	report, err := diff.Verify(ref, out)
	require.NoError(t, err)

	assert.Equal(t, diff.StatusSynchronized, report.Status)
	require.Len(t, report.UnmodifiedLeafWarnings, 1)
	assert.Equal(t, "msg", report.UnmodifiedLeafWarnings[0].Path)
}
