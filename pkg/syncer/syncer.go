package syncer

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/dmitrymomot/localesync/pkg/localetree"
	"github.com/dmitrymomot/localesync/pkg/placeholder"
	"github.com/dmitrymomot/localesync/pkg/translate"
)

// Stats counts the string leaves processed by one merge run.
// TotalLeaves == Reused + Translated.
type Stats struct {
	TotalLeaves int
	Reused      int
	Translated  int
}

// Warning records one leaf whose translation attempts were all exhausted,
// leaving the untranslated reference text in the output.
type Warning struct {
	Path string
	Text string
	Err  error
}

// Result is the outcome of one merge run. Tree is structurally identical
// to the reference tree the run was given.
type Result struct {
	Tree     *localetree.Node
	Stats    Stats
	Warnings []Warning
}

// Syncer merges locale catalogs. It is immutable after creation and safe
// for concurrent use, though each Sync call invokes the provider strictly
// sequentially.
type Syncer struct {
	provider    translate.Provider
	logger      *slog.Logger
	maxAttempts int
	retryDelay  time.Duration
	paceDelay   time.Duration
	maxDepth    int
}

// Option configures the Syncer during construction.
type Option func(*Syncer) error

// WithMaxAttempts sets the number of provider attempts per leaf.
// Default: 3.
func WithMaxAttempts(n int) Option {
	return func(s *Syncer) error {
		if n < 1 {
			return ErrInvalidAttempts
		}
		s.maxAttempts = n
		return nil
	}
}

// WithRetryDelay sets the fixed delay between failed provider attempts.
// Default: 500ms.
func WithRetryDelay(d time.Duration) Option {
	return func(s *Syncer) error {
		s.retryDelay = d
		return nil
	}
}

// WithPaceDelay sets the fixed delay that follows every provider
// invocation regardless of outcome. This is cooperative rate-limit pacing,
// not a correctness requirement. Default: 300ms.
func WithPaceDelay(d time.Duration) Option {
	return func(s *Syncer) error {
		s.paceDelay = d
		return nil
	}
}

// WithMaxDepth caps the merge recursion depth.
// Default: localetree.MaxDepth.
func WithMaxDepth(n int) Option {
	return func(s *Syncer) error {
		if n < 1 {
			return ErrInvalidDepth
		}
		s.maxDepth = n
		return nil
	}
}

// WithLogger sets the logger for attempt failures and fallbacks.
// Default: discard.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Syncer) error {
		if logger != nil {
			s.logger = logger
		}
		return nil
	}
}

// New creates a Syncer around the given translation provider.
func New(provider translate.Provider, opts ...Option) (*Syncer, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}

	s := &Syncer{
		provider:    provider,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxAttempts: 3,
		retryDelay:  500 * time.Millisecond,
		paceDelay:   300 * time.Millisecond,
		maxDepth:    localetree.MaxDepth,
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Sync produces a tree mirroring the reference structure, reusing legacy
// string leaves where present and non-empty, translating the rest. A nil
// legacy tree means nothing can be reused. The merge never fails on
// provider errors; the returned error is non-nil only for a nil reference,
// a reference nested beyond the depth limit, or context cancellation.
func (s *Syncer) Sync(ctx context.Context, reference, legacy *localetree.Node) (*Result, error) {
	if reference == nil {
		return nil, ErrNilReference
	}

	res := &Result{}
	tree, err := s.merge(ctx, reference, legacy, nil, 0, res)
	if err != nil {
		return nil, err
	}
	res.Tree = tree

	return res, nil
}

func (s *Syncer) merge(ctx context.Context, ref, legacy *localetree.Node, path localetree.KeyPath, depth int, res *Result) (*localetree.Node, error) {
	if depth > s.maxDepth {
		return nil, localetree.ErrMaxDepth
	}

	switch ref.Kind() {
	case localetree.KindMapping:
		entries := make([]localetree.MapEntry, 0, ref.Len())
		for _, key := range ref.Keys() {
			refChild, _ := ref.Child(key)
			var legacyChild *localetree.Node
			if legacy != nil && legacy.Kind() == localetree.KindMapping {
				legacyChild, _ = legacy.Child(key)
			}
			merged, err := s.merge(ctx, refChild, legacyChild, path.WithKey(key), depth+1, res)
			if err != nil {
				return nil, err
			}
			entries = append(entries, localetree.MapEntry{Key: key, Node: merged})
		}
		return localetree.NewMapping(entries...), nil

	case localetree.KindSequence:
		items := make([]*localetree.Node, 0, ref.Len())
		for i, refItem := range ref.Items() {
			var legacyItem *localetree.Node
			if legacy != nil && legacy.Kind() == localetree.KindSequence {
				legacyItem = legacy.At(i)
			}
			merged, err := s.merge(ctx, refItem, legacyItem, path.WithIndex(i), depth+1, res)
			if err != nil {
				return nil, err
			}
			items = append(items, merged)
		}
		return localetree.NewSequence(items...), nil

	default:
		return s.mergeLeaf(ctx, ref, legacy, path, res)
	}
}

func (s *Syncer) mergeLeaf(ctx context.Context, ref, legacy *localetree.Node, path localetree.KeyPath, res *Result) (*localetree.Node, error) {
	text, isString := ref.StringValue()
	if !isString {
		// Numbers, booleans, and nulls carry no translatable content.
		return localetree.NewLeaf(ref.Value()), nil
	}

	res.Stats.TotalLeaves++

	if legacy != nil {
		if legacyText, ok := legacy.StringValue(); ok && strings.TrimSpace(legacyText) != "" {
			res.Stats.Reused++
			return localetree.NewString(legacyText), nil
		}
	}

	translated, err := s.translateLeaf(ctx, text, path, res)
	if err != nil {
		return nil, err
	}
	res.Stats.Translated++

	return localetree.NewString(translated), nil
}

// translateLeaf runs the bounded retry loop for a single leaf. It returns
// an error only when the context is cancelled; provider exhaustion falls
// back to the untranslated reference text and records a warning.
func (s *Syncer) translateLeaf(ctx context.Context, text string, path localetree.KeyPath, res *Result) (string, error) {
	guarded, markers := placeholder.Protect(text)

	var lastErr error
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		translated, err := s.provider.Translate(ctx, guarded)
		if pauseErr := s.sleep(ctx, s.paceDelay); pauseErr != nil {
			return "", pauseErr
		}
		if err == nil {
			return placeholder.Restore(translated, markers), nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		s.logger.WarnContext(ctx, "translation attempt failed",
			slog.String("path", path.String()),
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", s.maxAttempts),
			slog.Any("error", err),
		)

		if attempt < s.maxAttempts {
			if pauseErr := s.sleep(ctx, s.retryDelay); pauseErr != nil {
				return "", pauseErr
			}
		}
	}

	s.logger.ErrorContext(ctx, "translation exhausted, keeping reference text",
		slog.String("path", path.String()),
		slog.Any("error", lastErr),
	)
	res.Warnings = append(res.Warnings, Warning{Path: path.String(), Text: text, Err: lastErr})

	return text, nil
}

func (s *Syncer) sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
