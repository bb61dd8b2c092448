package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/localesync/pkg/localetree"
	"github.com/dmitrymomot/localesync/pkg/syncer"
	"github.com/dmitrymomot/localesync/pkg/translate"
)

type cacheConfig struct {
	// Optional Redis URL for a shared translation cache. When empty, an
	// in-process cache is used.
	RedisURL string `env:"REDIS_URL"`
}

func newSyncCmd() *cobra.Command {
	var (
		refPath    string
		legacyPath string
		outPath    string
		offline    bool
		attempts   int
		retryDelay time.Duration
		paceDelay  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Produce an output catalog mirroring the reference, reusing legacy translations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := newLogger()
			ctx := cmd.Context()

			ref, err := loadCatalog(refPath)
			if err != nil {
				return err
			}

			var legacy *localetree.Node
			if legacyPath != "" {
				if legacy, err = loadCatalog(legacyPath); err != nil {
					return err
				}
			}

			provider, cleanup, err := buildProvider(ctx, log, offline)
			if err != nil {
				return err
			}
			defer cleanup()

			s, err := syncer.New(provider,
				syncer.WithLogger(log),
				syncer.WithMaxAttempts(attempts),
				syncer.WithRetryDelay(retryDelay),
				syncer.WithPaceDelay(paceDelay),
			)
			if err != nil {
				return err
			}

			result, err := s.Sync(ctx, ref, legacy)
			if err != nil {
				return err
			}

			if err := writeCatalog(outPath, result.Tree); err != nil {
				return err
			}

			log.InfoContext(ctx, "sync complete",
				slog.String("output", outPath),
				slog.Int("total_leaves", result.Stats.TotalLeaves),
				slog.Int("reused", result.Stats.Reused),
				slog.Int("translated", result.Stats.Translated),
				slog.Int("fallback_warnings", len(result.Warnings)),
			)
			for _, w := range result.Warnings {
				log.WarnContext(ctx, "leaf kept untranslated", slog.String("path", w.Path), slog.Any("error", w.Err))
			}

			refLeaves := localetree.CountLeaves(ref)
			outLeaves := localetree.CountLeaves(result.Tree)
			if refLeaves != outLeaves {
				log.ErrorContext(ctx, "leaf count mismatch after sync",
					slog.Int("reference", refLeaves),
					slog.Int("output", outLeaves),
				)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&refPath, "reference", "r", "", "reference catalog (required)")
	cmd.Flags().StringVarP(&legacyPath, "legacy", "l", "", "legacy catalog with prior translations")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "output catalog path (required)")
	cmd.Flags().BoolVar(&offline, "offline", false, "do not call the translation API; untranslated leaves keep reference text")
	cmd.Flags().IntVar(&attempts, "attempts", 3, "provider attempts per leaf")
	cmd.Flags().DurationVar(&retryDelay, "retry-delay", 500*time.Millisecond, "delay between failed provider attempts")
	cmd.Flags().DurationVar(&paceDelay, "pace-delay", 300*time.Millisecond, "delay after every provider call")
	_ = cmd.MarkFlagRequired("reference")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

// buildProvider assembles the translation pipeline: HTTP provider (or a
// pass-through in offline mode) wrapped with a Redis or in-memory cache.
func buildProvider(ctx context.Context, log *slog.Logger, offline bool) (translate.Provider, func(), error) {
	cleanup := func() {}

	var provider translate.Provider
	if offline {
		provider = translate.NewStatic(nil)
	} else {
		var cfg translate.HTTPConfig
		if err := env.Parse(&cfg); err != nil {
			return nil, nil, fmt.Errorf("translation config: %w", err)
		}
		p, err := translate.NewHTTP(cfg)
		if err != nil {
			return nil, nil, err
		}
		provider = p
	}

	var cacheCfg cacheConfig
	if err := env.Parse(&cacheCfg); err != nil {
		return nil, nil, fmt.Errorf("cache config: %w", err)
	}

	var cache translate.Cache
	if cacheCfg.RedisURL != "" {
		client, err := translate.OpenRedis(ctx, cacheCfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		cleanup = func() { _ = client.Close() }
		cache = translate.NewRedisCache(client)
		log.DebugContext(ctx, "using redis translation cache")
	} else {
		cache = translate.NewMemoryCache()
	}

	return translate.NewCached(provider, cache), cleanup, nil
}

func loadCatalog(path string) (*localetree.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %q: %w", path, err)
	}
	tree, err := localetree.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %q: %w", path, err)
	}
	return tree, nil
}

func writeCatalog(path string, tree *localetree.Node) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = localetree.EncodeYAML(tree)
	default:
		data, err = localetree.EncodeJSON(tree, "  ")
	}
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write catalog %q: %w", path, err)
	}
	return nil
}
