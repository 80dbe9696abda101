package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"feed-extractor/models"
)

// Meta is the metadata envelope carried at the top of every JSON output.
type Meta struct {
	Source      string `json:"source"`
	SourceURL   string `json:"source_url"`
	ExtractedAt string `json:"extracted_at"`
}

// NewMeta builds the envelope for the given source, stamped now.
func NewMeta(source, sourceURL string) Meta {
	return Meta{
		Source:      source,
		SourceURL:   sourceURL,
		ExtractedAt: time.Now().Format("2006-01-02 15:04:05"),
	}
}

type fundDocument struct {
	Meta    Meta                `json:"meta"`
	Records []models.FundRecord `json:"records"`
}

type listingDocument struct {
	Meta    Meta             `json:"meta"`
	Records []models.Listing `json:"records"`
}

// WriteFundsJSON writes the fund document, truncating the records array
// to limit entries when limit > 0. Returns the number of records written.
// The tabular output is never truncated; only the JSON form is.
func WriteFundsJSON(path string, meta Meta, records []models.FundRecord, limit int) (int, error) {
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	if records == nil {
		records = []models.FundRecord{}
	}
	if err := writeJSON(path, fundDocument{Meta: meta, Records: records}); err != nil {
		return 0, err
	}
	return len(records), nil
}

// WriteListingsJSON writes the listing document. Returns the number of
// records written.
func WriteListingsJSON(path string, meta Meta, listings []models.Listing) (int, error) {
	if listings == nil {
		listings = []models.Listing{}
	}
	if err := writeJSON(path, listingDocument{Meta: meta, Records: listings}); err != nil {
		return 0, err
	}
	return len(listings), nil
}

func writeJSON(path string, doc any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("json: marshal document: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("json: write %q: %w", path, err)
	}
	return nil
}
