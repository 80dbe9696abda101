package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	require.Equal(t, "https://www.amfiindia.com/spages/NAVAll.txt", cfg.NavFeedURL)
	require.Equal(t, "https://www.olx.in/items/q-car-cover", cfg.ListingsSearchURL)
	require.Equal(t, "https://www.olx.in", cfg.ListingsBaseURL)

	require.Equal(t, 10, cfg.HTTPTimeoutSec)
	require.Equal(t, 3, cfg.PagesToScrape)
	require.Equal(t, 2000, cfg.RateLimitMs)
	require.Equal(t, 100, cfg.FundJSONCap)
	require.Equal(t, 5, cfg.SampleRows)

	require.Equal(t, "nav_funds.tsv", cfg.FundTSVPath)
	require.Equal(t, "nav_funds.json", cfg.FundJSONPath)
	require.Equal(t, "olx_car_covers.csv", cfg.ListingsCSVPath)
	require.Equal(t, "olx_car_covers.json", cfg.ListingsJSONPath)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("NAV_FEED_URL", "https://example.com/feed.txt")
	t.Setenv("PAGES_TO_SCRAPE", "1")
	t.Setenv("FUND_JSON_CAP", "0")

	cfg := Load()
	require.Equal(t, "https://example.com/feed.txt", cfg.NavFeedURL)
	require.Equal(t, 1, cfg.PagesToScrape)
	require.Equal(t, 0, cfg.FundJSONCap)
}

func TestLoadIgnoresMalformedInts(t *testing.T) {
	t.Setenv("PAGES_TO_SCRAPE", "many")

	cfg := Load()
	require.Equal(t, 3, cfg.PagesToScrape)
}
