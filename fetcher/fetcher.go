package fetcher

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-resty/resty/v2"

	"feed-extractor/utils"
)

// ErrEmptyPayload is returned when a fetch completes but the body is
// empty or whitespace-only. Treated as fatal by both pipelines.
var ErrEmptyPayload = errors.New("fetched payload is empty")

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Client performs single-attempt HTTP retrievals. No retry: a failed or
// empty fetch aborts the run.
type Client struct {
	http   *resty.Client
	logger *utils.Logger
}

// New creates a Client with the given request timeout.
func New(timeout time.Duration, logger *utils.Logger) *Client {
	c := resty.New()
	c.SetTimeout(timeout)
	c.SetHeader("User-Agent", userAgent)
	c.SetHeader("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	c.SetHeader("Accept-Language", "en-US,en;q=0.5")

	return &Client{http: c, logger: logger}
}

// Fetch performs one blocking GET and returns the body. It fails on
// transport errors, non-2xx statuses, and empty payloads.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	c.logger.Debug("[fetch] GET %s", url)

	resp, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", url, resp.Status())
	}

	body := resp.Body()
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, fmt.Errorf("fetch %s: %w", url, ErrEmptyPayload)
	}

	c.logger.Debug("[fetch] %s — %d bytes", url, len(body))
	return body, nil
}

// FetchToTemp downloads the URL into a temporary file and returns its
// path together with a cleanup func that removes it. cleanup is safe to
// call on every exit path; on error no file survives.
func (c *Client) FetchToTemp(ctx context.Context, url string) (string, func(), error) {
	body, err := c.Fetch(ctx, url)
	if err != nil {
		return "", func() {}, err
	}

	f, err := os.CreateTemp("", "feed-extractor-*.txt")
	if err != nil {
		return "", func() {}, fmt.Errorf("create temp file: %w", err)
	}

	cleanup := func() {
		if err := os.Remove(f.Name()); err != nil && !os.IsNotExist(err) {
			c.logger.Warn("[fetch] could not remove temp file %s: %v", f.Name(), err)
		}
	}

	if _, err := f.Write(body); err != nil {
		_ = f.Close()
		cleanup()
		return "", func() {}, fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", func() {}, fmt.Errorf("close temp file: %w", err)
	}

	return f.Name(), cleanup, nil
}
