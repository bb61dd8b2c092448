package translate_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localesync/pkg/translate"
)

func TestProviderFunc(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("boom")
	p := translate.ProviderFunc(func(_ context.Context, text string) (string, error) {
		if text == "fail" {
			return "", sentinel
		}
		return "ok:" + text, nil
	})

	out, err := p.Translate(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "ok:hello", out)

	_, err = p.Translate(context.Background(), "fail")
	require.ErrorIs(t, err, sentinel)
}

func TestStatic(t *testing.T) {
	t.Parallel()

	table := map[string]string{"Bonjour": "Hello"}
	p := translate.NewStatic(table)

	// Mutating the source table after construction has no effect.
	table["Bonjour"] = "mutated"

	out, err := p.Translate(context.Background(), "Bonjour")
	require.NoError(t, err)
	assert.Equal(t, "Hello", out)

	passthrough, err := p.Translate(context.Background(), "Inconnu")
	require.NoError(t, err)
	assert.Equal(t, "Inconnu", passthrough, "unknown text passes through unchanged")
}

func TestStaticNilTable(t *testing.T) {
	t.Parallel()

	p := translate.NewStatic(nil)
	out, err := p.Translate(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, "anything", out)
}
