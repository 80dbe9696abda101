package olx

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"feed-extractor/config"
	"feed-extractor/fetcher"
	"feed-extractor/models"
	"feed-extractor/utils"
)

const samplePage = `<html><body>
<div data-aut-id="itemBox">
  <a href="/item/car-cover-1"><span data-aut-id="itemTitle">Waterproof Car Cover</span></a>
  <span data-aut-id="itemPrice">₹ 1,500</span>
  <span data-aut-id="item-location">Mumbai</span>
  <span data-aut-id="itemDate">Today</span>
  <span data-aut-id="itemDescription">Brand new, all sizes</span>
</div>
<div data-aut-id="itemBox">
  <a href="/item/car-cover-2"><span data-aut-id="itemTitle">Basic Cover</span></a>
</div>
<div data-aut-id="itemBox">
  <span data-aut-id="itemPrice">₹ 999</span>
</div>
</body></html>`

func newTestScraper(t *testing.T, cfg *config.Config) *Scraper {
	t.Helper()
	logger := utils.NewLoggerTo(io.Discard)
	s, err := New(cfg, logger, fetcher.New(5*time.Second, logger))
	require.NoError(t, err)
	return s
}

func TestParsePage(t *testing.T) {
	cfg := &config.Config{ListingsBaseURL: "https://www.olx.in"}
	s := newTestScraper(t, cfg)

	listings, err := s.parsePage([]byte(samplePage))
	require.NoError(t, err)

	// The container without a title is dropped.
	require.Len(t, listings, 2)

	first := listings[0]
	require.Equal(t, "Waterproof Car Cover", first.Title)
	require.Equal(t, "₹ 1,500", first.Price)
	require.Equal(t, "Mumbai", first.Location)
	require.Equal(t, "Today", first.Date)
	require.Equal(t, "Brand new, all sizes", first.Description)
	require.Equal(t, "https://www.olx.in/item/car-cover-1", first.Link)

	second := listings[1]
	require.Equal(t, "Basic Cover", second.Title)
	require.Equal(t, models.MissingField, second.Price)
	require.Equal(t, models.MissingField, second.Location)
	require.Equal(t, models.MissingField, second.Date)
	require.Equal(t, models.MissingField, second.Description)
	require.Equal(t, "https://www.olx.in/item/car-cover-2", second.Link)
}

func TestParsePageNoContainers(t *testing.T) {
	cfg := &config.Config{ListingsBaseURL: "https://www.olx.in"}
	s := newTestScraper(t, cfg)

	listings, err := s.parsePage([]byte("<html><body><p>no results</p></body></html>"))
	require.NoError(t, err)
	require.Empty(t, listings)
}

func TestScrapePaginatesAndDeduplicates(t *testing.T) {
	page2 := `<html><body>
<div data-aut-id="itemBox">
  <a href="/item/car-cover-1"><span data-aut-id="itemTitle">Waterproof Car Cover</span></a>
</div>
<div data-aut-id="itemBox">
  <a href="/item/car-cover-3"><span data-aut-id="itemTitle">Premium Cover</span></a>
</div>
</body></html>`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("page") {
		case "", "1":
			fmt.Fprint(w, samplePage)
		case "2":
			fmt.Fprint(w, page2)
		default:
			fmt.Fprint(w, "<html><body></body></html>")
		}
	}))
	defer srv.Close()

	cfg := &config.Config{
		ListingsBaseURL:   srv.URL,
		ListingsSearchURL: srv.URL,
		PagesToScrape:     5,
		RateLimitMs:       0,
	}
	s := newTestScraper(t, cfg)

	listings, err := s.Scrape(context.Background())
	require.NoError(t, err)

	// Pages 1 and 2 overlap on car-cover-1; page 3 is empty and stops the walk.
	require.Len(t, listings, 3)
	require.Equal(t, "Waterproof Car Cover", listings[0].Title)
	require.Equal(t, "Basic Cover", listings[1].Title)
	require.Equal(t, "Premium Cover", listings[2].Title)
}

func TestScrapeLaterPageFailureStopsWalk(t *testing.T) {
	page3 := `<html><body>
<div data-aut-id="itemBox">
  <a href="/item/car-cover-9"><span data-aut-id="itemTitle">Late Cover</span></a>
</div>
</body></html>`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("page") {
		case "", "1":
			fmt.Fprint(w, samplePage)
		case "2":
			http.Error(w, "throttled", http.StatusInternalServerError)
		default:
			fmt.Fprint(w, page3)
		}
	}))
	defer srv.Close()

	cfg := &config.Config{
		ListingsBaseURL:   srv.URL,
		ListingsSearchURL: srv.URL,
		PagesToScrape:     3,
		RateLimitMs:       0,
	}
	s := newTestScraper(t, cfg)

	// A failed page after the first stops the walk: page 1's listings
	// come back without error, page 3 is never fetched.
	listings, err := s.Scrape(context.Background())
	require.NoError(t, err)
	require.Len(t, listings, 2)
	require.Equal(t, "Waterproof Car Cover", listings[0].Title)
	require.Equal(t, "Basic Cover", listings[1].Title)
}

func TestScrapeFirstPageFailureIsFatal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	cfg := &config.Config{
		ListingsBaseURL:   srv.URL,
		ListingsSearchURL: srv.URL,
		PagesToScrape:     2,
	}
	s := newTestScraper(t, cfg)

	_, err := s.Scrape(context.Background())
	require.Error(t, err)
}
