// Command localesync synchronizes, verifies, and audits locale catalogs.
//
//	localesync sync   -r fr.json -l en_old.json -o en.json
//	localesync verify -r fr.json -o en.json --report report.json
//	localesync scan   --dir ./app
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/localesync/pkg/logger"
)

var verbose bool

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := &cobra.Command{
		Use:           "localesync",
		Short:         "Locale catalog synchronization and verification",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newSyncCmd(), newVerifyCmd(), newScanCmd())

	return root.ExecuteContext(ctx)
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return logger.NewConsole(level)
}
