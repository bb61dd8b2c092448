package translate

import "context"

// Provider translates a single text between the fixed source and target
// language pair it was configured with. Implementations may fail
// transiently; callers decide whether and how to retry.
type Provider interface {
	Translate(ctx context.Context, text string) (string, error)
}

// ProviderFunc adapts a plain function to the Provider interface.
type ProviderFunc func(ctx context.Context, text string) (string, error)

// Translate implements Provider.
func (f ProviderFunc) Translate(ctx context.Context, text string) (string, error) {
	return f(ctx, text)
}

// Static is a Provider backed by a fixed translation table. Text without an
// entry passes through unchanged. Useful for tests and offline dry runs.
type Static struct {
	table map[string]string
}

// NewStatic creates a Static provider from the given translation table.
func NewStatic(table map[string]string) *Static {
	copied := make(map[string]string, len(table))
	for k, v := range table {
		copied[k] = v
	}
	return &Static{table: copied}
}

// Translate implements Provider.
func (s *Static) Translate(_ context.Context, text string) (string, error) {
	if translated, ok := s.table[text]; ok {
		return translated, nil
	}
	return text, nil
}
