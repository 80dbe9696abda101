// Package olx extracts classified-ad listings from OLX search result
// pages. The page is server-rendered; fields hang off stable
// data-aut-id attributes.
package olx

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"feed-extractor/config"
	"feed-extractor/fetcher"
	"feed-extractor/models"
	"feed-extractor/utils"
)

const (
	containerSelector = `div[data-aut-id="itemBox"]`

	titleSelector       = `span[data-aut-id="itemTitle"]`
	priceSelector       = `span[data-aut-id="itemPrice"]`
	locationSelector    = `span[data-aut-id="item-location"]`
	dateSelector        = `span[data-aut-id="itemDate"]`
	descriptionSelector = `span[data-aut-id="itemDescription"]`
)

// Scraper drives the listings pipeline: sequential page fetches, one
// goquery pass per page.
type Scraper struct {
	cfg     *config.Config
	logger  *utils.Logger
	client  *fetcher.Client
	baseURL *url.URL
}

// New creates a ready-to-use OLX Scraper. The configured base URL must
// parse; relative listing links are resolved against it.
func New(cfg *config.Config, logger *utils.Logger, client *fetcher.Client) (*Scraper, error) {
	base, err := url.Parse(cfg.ListingsBaseURL)
	if err != nil {
		return nil, fmt.Errorf("olx: parse base url %q: %w", cfg.ListingsBaseURL, err)
	}
	return &Scraper{cfg: cfg, logger: logger, client: client, baseURL: base}, nil
}

// Scrape walks up to PagesToScrape search pages and returns the listings
// found. The first page is mandatory: a fetch failure there aborts the
// run. Later pages fail soft — a warning, then stop.
func (s *Scraper) Scrape(ctx context.Context) ([]models.Listing, error) {
	var all []models.Listing
	seen := make(map[string]struct{})

	for page := 1; page <= s.cfg.PagesToScrape; page++ {
		pageURL := s.cfg.ListingsSearchURL
		if page > 1 {
			pageURL = fmt.Sprintf("%s?page=%d", s.cfg.ListingsSearchURL, page)
		}

		s.logger.Info("[olx] Scraping page %d — %s", page, pageURL)

		body, err := s.client.Fetch(ctx, pageURL)
		if err != nil {
			if page == 1 {
				return nil, err
			}
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			s.logger.Warn("[olx] Page %d fetch failed: %v — stopping", page, err)
			break
		}

		listings, err := s.parsePage(body)
		if err != nil {
			if page == 1 {
				return nil, err
			}
			s.logger.Warn("[olx] Page %d parse failed: %v — stopping", page, err)
			break
		}
		if len(listings) == 0 {
			s.logger.Warn("[olx] Page %d returned 0 listings — stopping", page)
			break
		}

		added := 0
		for _, l := range listings {
			if l.Link != models.MissingField {
				if _, dup := seen[l.Link]; dup {
					continue
				}
				seen[l.Link] = struct{}{}
			}
			all = append(all, l)
			added++
		}

		s.logger.Info("[olx] Page %d done — %d listings (%d total)", page, added, len(all))

		if page < s.cfg.PagesToScrape {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(s.cfg.RateLimitMs) * time.Millisecond):
			}
		}
	}

	return all, nil
}

// parsePage extracts every listing container from one results page.
// Listings without a title are skipped; any other missing field becomes
// the "N/A" placeholder.
func (s *Scraper) parsePage(body []byte) ([]models.Listing, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("olx: parse html: %w", err)
	}

	var listings []models.Listing
	doc.Find(containerSelector).Each(func(_ int, box *goquery.Selection) {
		l := s.parseListing(box)
		if l.Title == models.MissingField {
			return
		}
		listings = append(listings, l)
	})

	return listings, nil
}

func (s *Scraper) parseListing(box *goquery.Selection) models.Listing {
	return models.Listing{
		Title:       textOr(box, titleSelector),
		Price:       textOr(box, priceSelector),
		Location:    textOr(box, locationSelector),
		Date:        textOr(box, dateSelector),
		Description: textOr(box, descriptionSelector),
		Link:        s.link(box),
	}
}

// link resolves the first anchor href against the base URL.
func (s *Scraper) link(box *goquery.Selection) string {
	href, ok := box.Find("a[href]").First().Attr("href")
	if !ok || strings.TrimSpace(href) == "" {
		return models.MissingField
	}
	ref, err := url.Parse(href)
	if err != nil {
		return models.MissingField
	}
	return s.baseURL.ResolveReference(ref).String()
}

func textOr(box *goquery.Selection, selector string) string {
	text := strings.TrimSpace(box.Find(selector).First().Text())
	if text == "" {
		return models.MissingField
	}
	return text
}
