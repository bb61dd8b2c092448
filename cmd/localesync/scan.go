package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/localesync/pkg/scanner"
)

func newScanCmd() *cobra.Command {
	var (
		dir        string
		extensions []string
		jsonOut    bool
	)

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Find hardcoded user-facing text in a source tree",
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := newLogger()
			ctx := cmd.Context()

			var opts []scanner.Option
			if len(extensions) > 0 {
				opts = append(opts, scanner.WithExtensions(extensions...))
			}
			s, err := scanner.New(opts...)
			if err != nil {
				return err
			}

			result, err := s.Scan(ctx, os.DirFS(dir))
			if err != nil {
				return err
			}

			if jsonOut {
				data, err := json.MarshalIndent(result, "", "  ")
				if err != nil {
					return fmt.Errorf("encode scan result: %w", err)
				}
				fmt.Println(string(data))
				return nil
			}

			log.InfoContext(ctx, "scan complete",
				slog.Int("total_files", result.TotalFiles),
				slog.Int("clean_files", result.CleanFiles),
				slog.Int("flagged_files", len(result.Files)),
				slog.Int("findings", result.TotalFindings),
			)
			for _, f := range result.Files {
				log.WarnContext(ctx, "needs attention",
					slog.String("file", f.File),
					slog.Bool("uses_translations", f.UsesTranslations),
					slog.Int("findings", len(f.Findings)),
				)
				for _, finding := range f.Findings {
					log.DebugContext(ctx, "hardcoded text",
						slog.String("file", finding.File),
						slog.Int("line", finding.Line),
						slog.String("text", finding.Text),
					)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "directory to scan")
	cmd.Flags().StringSliceVar(&extensions, "ext", nil, "file extensions to scan (default .tsx,.jsx,.html)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the full result as JSON")

	return cmd
}
