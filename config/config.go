package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	NavFeedURL string

	ListingsBaseURL   string
	ListingsSearchURL string

	HTTPTimeoutSec int
	PagesToScrape  int
	RateLimitMs    int

	FundTSVPath      string
	FundJSONPath     string
	ListingsCSVPath  string
	ListingsJSONPath string

	// FundJSONCap limits the number of records in the fund JSON output.
	// 0 disables the cap. The tabular output always carries all records.
	FundJSONCap int

	SampleRows int
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		NavFeedURL: getEnv("NAV_FEED_URL", "https://www.amfiindia.com/spages/NAVAll.txt"),

		ListingsBaseURL:   getEnv("LISTINGS_BASE_URL", "https://www.olx.in"),
		ListingsSearchURL: getEnv("LISTINGS_SEARCH_URL", "https://www.olx.in/items/q-car-cover"),

		HTTPTimeoutSec: getEnvInt("HTTP_TIMEOUT_SEC", 10),
		PagesToScrape:  getEnvInt("PAGES_TO_SCRAPE", 3),
		RateLimitMs:    getEnvInt("RATE_LIMIT_MS", 2000),

		FundTSVPath:      getEnv("FUND_TSV_PATH", "nav_funds.tsv"),
		FundJSONPath:     getEnv("FUND_JSON_PATH", "nav_funds.json"),
		ListingsCSVPath:  getEnv("LISTINGS_CSV_PATH", "olx_car_covers.csv"),
		ListingsJSONPath: getEnv("LISTINGS_JSON_PATH", "olx_car_covers.json"),

		FundJSONCap: getEnvInt("FUND_JSON_CAP", 100),
		SampleRows:  getEnvInt("SAMPLE_ROWS", 5),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}
