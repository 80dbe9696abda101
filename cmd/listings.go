package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"feed-extractor/scraper/olx"
	"feed-extractor/storage"
)

var listingsCmd = &cobra.Command{
	Use:   "listings",
	Short: "Scrape classified-ad listings and write CSV + JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runListings(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(listingsCmd)
}

// runListings drives the scraper pipeline: walk the search pages, then
// write both encodings. Output files only exist once scraping has
// produced at least one listing.
func runListings(ctx context.Context) error {
	scraper, err := olx.New(cfg, logger, client)
	if err != nil {
		return err
	}

	listings, err := scraper.Scrape(ctx)
	if err != nil {
		return err
	}
	if len(listings) == 0 {
		return fmt.Errorf("no listings scraped from %s", cfg.ListingsSearchURL)
	}

	csvw, err := storage.NewTabularWriter(cfg.ListingsCSVPath, ',', storage.ListingColumns)
	if err != nil {
		return err
	}
	if err := csvw.WriteListings(listings); err != nil {
		_ = csvw.Close()
		return err
	}
	if err := csvw.Close(); err != nil {
		return err
	}

	meta := storage.NewMeta("olx-car-covers", cfg.ListingsSearchURL)
	jsonCount, err := storage.WriteListingsJSON(cfg.ListingsJSONPath, meta, listings)
	if err != nil {
		return err
	}

	reporter.Summarize("listing", ',', cfg.ListingsCSVPath, cfg.ListingsJSONPath, csvw.Rows(), jsonCount)
	return nil
}
