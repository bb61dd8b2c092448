package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/localesync/pkg/diff"
)

func newVerifyCmd() *cobra.Command {
	var (
		refPath    string
		outPath    string
		reportPath string
		allowlist  []string
		minLength  int
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Compare two catalogs structurally and flag untranslated leaves",
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := newLogger()
			ctx := cmd.Context()

			ref, err := loadCatalog(refPath)
			if err != nil {
				return err
			}
			out, err := loadCatalog(outPath)
			if err != nil {
				return err
			}

			report, err := diff.Verify(ref, out,
				diff.WithAllowList(allowlist...),
				diff.WithMinLeafLength(minLength),
			)
			if err != nil {
				return err
			}

			log.InfoContext(ctx, "verification complete",
				slog.String("status", report.Status),
				slog.Int("reference_keys", report.ReferenceKeyCount),
				slog.Int("output_keys", report.OutputKeyCount),
				slog.Int("common_keys", report.CommonKeys),
				slog.Int("missing_in_output", len(report.MissingInOutput)),
				slog.Int("extra_in_output", len(report.ExtraInOutput)),
				slog.Int("unmodified_leaves", len(report.UnmodifiedLeafWarnings)),
			)
			for _, p := range report.MissingInOutput {
				log.WarnContext(ctx, "missing in output", slog.String("path", p))
			}
			for _, p := range report.ExtraInOutput {
				log.WarnContext(ctx, "extra in output", slog.String("path", p))
			}
			for _, w := range report.UnmodifiedLeafWarnings {
				log.WarnContext(ctx, "possibly untranslated", slog.String("path", w.Path), slog.String("value", w.Value))
			}

			if reportPath != "" {
				data, err := json.MarshalIndent(report, "", "  ")
				if err != nil {
					return fmt.Errorf("encode report: %w", err)
				}
				if err := os.WriteFile(reportPath, append(data, '\n'), 0o644); err != nil {
					return fmt.Errorf("write report %q: %w", reportPath, err)
				}
				log.InfoContext(ctx, "report written", slog.String("path", reportPath))
			}

			if report.Status != diff.StatusSynchronized {
				return fmt.Errorf("catalogs are not synchronized: %d missing, %d extra",
					len(report.MissingInOutput), len(report.ExtraInOutput))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&refPath, "reference", "r", "", "reference catalog (required)")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "output catalog to verify (required)")
	cmd.Flags().StringVar(&reportPath, "report", "", "write a JSON report to this path")
	cmd.Flags().StringSliceVar(&allowlist, "allow", nil, "leaf values allowed to stay identical across locales")
	cmd.Flags().IntVar(&minLength, "min-length", diff.DefaultMinLeafLength, "minimum leaf length for the untranslated heuristic")
	_ = cmd.MarkFlagRequired("reference")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
