package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"feed-extractor/config"
	"feed-extractor/utils"
)

// Reporter prints a post-write summary: record counts per encoding, the
// output file names, and a sample of the first tabular rows. Everything
// here is best effort; a reporting failure never changes the run's
// outcome.
type Reporter struct {
	cfg    *config.Config
	logger *utils.Logger
	out    io.Writer
}

// NewReporter creates a Reporter writing its table to stdout.
func NewReporter(cfg *config.Config, logger *utils.Logger) *Reporter {
	return &Reporter{cfg: cfg, logger: logger, out: os.Stdout}
}

// Summarize reports on one completed pipeline run. The tabular file is
// read back with the delimiter it was written with.
func (r *Reporter) Summarize(name string, delimiter rune, tabularPath, jsonPath string, tabularCount, jsonCount int) {
	r.logger.Info("[report] %s: %d rows → %s | %d records → %s",
		name, tabularCount, tabularPath, jsonCount, jsonPath)
	if jsonCount < tabularCount {
		r.logger.Info("[report] JSON output capped at %d records", jsonCount)
	}

	header, rows, err := r.sampleRows(tabularPath, delimiter)
	if err != nil {
		r.logger.Warn("[report] Could not read back %s for sampling: %v", tabularPath, err)
		return
	}
	if len(rows) == 0 {
		return
	}

	fmt.Fprintf(r.out, "\nFirst %d of %d %s records:\n", len(rows), tabularCount, name)

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.AppendHeader(toRow(header))
	for _, row := range rows {
		t.AppendRow(toRow(row))
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
}

// sampleRows reads the header and up to SampleRows data rows back from
// the tabular file.
func (r *Reporter) sampleRows(path string, delimiter rune) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, nil, err
	}

	var rows [][]string
	for len(rows) < r.cfg.SampleRows {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		rows = append(rows, row)
	}
	return header, rows, nil
}

func toRow(fields []string) table.Row {
	row := make(table.Row, len(fields))
	for i, f := range fields {
		row[i] = truncate(f, 60)
	}
	return row
}

// truncate keeps sample cells readable; descriptions can run long.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
