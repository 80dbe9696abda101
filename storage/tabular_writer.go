package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"feed-extractor/models"
)

// Column orders for the two tabular outputs.
var (
	FundColumns    = []string{"scheme_code", "scheme_name", "nav", "date", "asset_value"}
	ListingColumns = []string{"title", "price", "location", "date", "description", "link"}
)

// TabularWriter writes records to a delimited text file with a header
// row. Fields containing the delimiter are quoted by encoding/csv, so an
// embedded delimiter never corrupts column alignment.
type TabularWriter struct {
	file   *os.File
	writer *csv.Writer
	rows   int
}

// NewTabularWriter creates (or truncates) the file at the given path and
// writes the header row. Intermediate directories are created
// automatically.
func NewTabularWriter(path string, delimiter rune, header []string) (*TabularWriter, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("tabular: create output dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("tabular: create file %q: %w", path, err)
	}

	w := csv.NewWriter(f)
	w.Comma = delimiter

	if err := w.Write(header); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("tabular: write header: %w", err)
	}
	w.Flush()

	return &TabularWriter{file: f, writer: w}, nil
}

// WriteFunds appends every fund record, one row per record in
// FundColumns order.
func (t *TabularWriter) WriteFunds(records []models.FundRecord) error {
	for _, r := range records {
		row := []string{r.SchemeCode, r.SchemeName, r.NAV, r.Date, r.AssetValue}
		if err := t.writer.Write(row); err != nil {
			return fmt.Errorf("tabular: write row: %w", err)
		}
		t.rows++
	}
	t.writer.Flush()
	return t.writer.Error()
}

// WriteListings appends every listing, one row per record in
// ListingColumns order.
func (t *TabularWriter) WriteListings(listings []models.Listing) error {
	for _, l := range listings {
		row := []string{l.Title, l.Price, l.Location, l.Date, l.Description, l.Link}
		if err := t.writer.Write(row); err != nil {
			return fmt.Errorf("tabular: write row: %w", err)
		}
		t.rows++
	}
	t.writer.Flush()
	return t.writer.Error()
}

// Rows returns the number of data rows written (header excluded).
func (t *TabularWriter) Rows() int {
	return t.rows
}

// Close flushes and closes the underlying file.
func (t *TabularWriter) Close() error {
	t.writer.Flush()
	if err := t.writer.Error(); err != nil {
		_ = t.file.Close()
		return err
	}
	return t.file.Close()
}
