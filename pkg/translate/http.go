package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/text/language"
)

// HTTPConfig holds settings for a LibreTranslate-compatible HTTP provider.
// All fields are populated from environment variables for deployment
// convenience.
type HTTPConfig struct {
	// Translation API endpoint, e.g. https://libretranslate.example.com/translate
	Endpoint string `env:"TRANSLATE_ENDPOINT,required"`

	// Optional API key sent with every request.
	APIKey string `env:"TRANSLATE_API_KEY"`

	// Fixed source/target language pair as BCP 47 tags.
	SourceLang string `env:"TRANSLATE_SOURCE_LANG" envDefault:"fr"`
	TargetLang string `env:"TRANSLATE_TARGET_LANG" envDefault:"en"`

	// Per-request timeout. The merge engine paces and retries on top of
	// this, so a tight timeout keeps worst-case per-leaf latency bounded.
	Timeout time.Duration `env:"TRANSLATE_TIMEOUT" envDefault:"10s"`
}

// HTTPOption configures the HTTP provider during construction.
type HTTPOption func(*HTTP)

// WithHTTPClient overrides the underlying HTTP client.
// Default: http.Client with the configured timeout.
func WithHTTPClient(client *http.Client) HTTPOption {
	return func(p *HTTP) {
		p.client = client
	}
}

// HTTP is a Provider backed by a LibreTranslate-compatible REST API.
type HTTP struct {
	client   *http.Client
	endpoint string
	apiKey   string
	source   string
	target   string
}

// NewHTTP creates an HTTP provider. Language tags are validated eagerly so
// a misconfigured pair fails at startup rather than on the first leaf.
func NewHTTP(cfg HTTPConfig, opts ...HTTPOption) (*HTTP, error) {
	if cfg.Endpoint == "" {
		return nil, ErrEmptyEndpoint
	}

	source, err := language.Parse(cfg.SourceLang)
	if err != nil {
		return nil, fmt.Errorf("%w: source %q", ErrInvalidLanguage, cfg.SourceLang)
	}
	target, err := language.Parse(cfg.TargetLang)
	if err != nil {
		return nil, fmt.Errorf("%w: target %q", ErrInvalidLanguage, cfg.TargetLang)
	}

	p := &HTTP{
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		source:   source.String(),
		target:   target.String(),
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		p.client = &http.Client{Timeout: timeout}
	}

	return p, nil
}

type translateRequest struct {
	Query  string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
	Error          string `json:"error"`
}

// Translate implements Provider.
func (p *HTTP) Translate(ctx context.Context, text string) (string, error) {
	body, err := json.Marshal(translateRequest{
		Query:  text,
		Source: p.source,
		Target: p.target,
		Format: "text",
		APIKey: p.apiKey,
	})
	if err != nil {
		return "", fmt.Errorf("%w: encode request: %s", ErrRequestFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrRequestFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	// Bounded read keeps a misbehaving endpoint from exhausting memory.
	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("%w: read response: %s", ErrRequestFailed, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d: %s", ErrRequestFailed, resp.StatusCode, truncate(string(data), 200))
	}

	var decoded translateResponse
	if err := json.Unmarshal(data, &decoded); err != nil {
		return "", fmt.Errorf("%w: decode response: %s", ErrRequestFailed, err)
	}
	if decoded.Error != "" {
		return "", fmt.Errorf("%w: %s", ErrRequestFailed, decoded.Error)
	}

	return decoded.TranslatedText, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
