package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"feed-extractor/parser/navfeed"
	"feed-extractor/storage"
)

var fundsCmd = &cobra.Command{
	Use:   "funds",
	Short: "Download the mutual-fund NAV feed and write TSV + JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFunds(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(fundsCmd)
}

// runFunds drives the fund pipeline: fetch the feed into a temp file,
// parse it, then write both encodings. The temp artifact is removed on
// every exit path; output files only exist once parsing has succeeded.
func runFunds(ctx context.Context) error {
	logger.Info("[funds] Fetching NAV feed from %s", cfg.NavFeedURL)

	feedPath, cleanup, err := client.FetchToTemp(ctx, cfg.NavFeedURL)
	if err != nil {
		return err
	}
	defer cleanup()

	feed, err := os.Open(feedPath)
	if err != nil {
		return fmt.Errorf("open downloaded feed: %w", err)
	}
	defer feed.Close()

	records, err := navfeed.NewParser(logger).Parse(feed)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("no fund records parsed from %s", cfg.NavFeedURL)
	}

	tsv, err := storage.NewTabularWriter(cfg.FundTSVPath, '\t', storage.FundColumns)
	if err != nil {
		return err
	}
	if err := tsv.WriteFunds(records); err != nil {
		_ = tsv.Close()
		return err
	}
	if err := tsv.Close(); err != nil {
		return err
	}

	meta := storage.NewMeta("amfi-nav-feed", cfg.NavFeedURL)
	jsonCount, err := storage.WriteFundsJSON(cfg.FundJSONPath, meta, records, cfg.FundJSONCap)
	if err != nil {
		return err
	}

	reporter.Summarize("fund", '\t', cfg.FundTSVPath, cfg.FundJSONPath, tsv.Rows(), jsonCount)
	return nil
}
