package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"feed-extractor/config"
	"feed-extractor/fetcher"
	"feed-extractor/services"
	"feed-extractor/utils"
)

// Shared dependencies, initialized once before any subcommand runs.
var (
	cfg      *config.Config
	logger   *utils.Logger
	client   *fetcher.Client
	reporter *services.Reporter
)

var rootCmd = &cobra.Command{
	Use:           "feed-extractor",
	Short:         "Extracts mutual-fund NAVs and classified-ad listings into TSV/CSV and JSON",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = utils.NewLogger()
		cfg = config.Load()
		client = fetcher.New(time.Duration(cfg.HTTPTimeoutSec)*time.Second, logger)
		reporter = services.NewReporter(cfg, logger)
	},
}

// Execute runs the CLI. An interrupt cancels the command context so the
// in-flight fetch stops and deferred cleanup still runs before exit.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil && logger != nil {
		logger.Error("%v", err)
	}
	return err
}
