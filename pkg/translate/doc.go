// Package translate defines the translation provider contract consumed by
// the merge engine, together with ready-to-use implementations: an HTTP
// provider for LibreTranslate-compatible APIs, a static in-memory provider
// for tests and dry runs, and a caching decorator with in-memory and Redis
// backends so repeated sync runs do not re-pay provider calls for text that
// was already translated.
//
// # Provider Contract
//
// A Provider translates a single piece of text between a fixed source and
// target language pair configured at construction time. Calls may fail
// transiently; retry policy is the caller's responsibility (the merge
// engine in pkg/syncer retries with a bounded attempt count).
//
//	type Provider interface {
//	    Translate(ctx context.Context, text string) (string, error)
//	}
//
// # Caching
//
// Wrap any provider to memoize results keyed by the source text:
//
//	client, err := translate.OpenRedis(ctx, os.Getenv("REDIS_URL"))
//	provider = translate.NewCached(provider, translate.NewRedisCache(client))
package translate
