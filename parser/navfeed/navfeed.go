// Package navfeed parses the semicolon-delimited NAV text feed published
// by the fund registry. Data rows carry an all-digit scheme code in the
// first field; header and section rows do not, which is how they are
// filtered out.
package navfeed

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"feed-extractor/models"
	"feed-extractor/utils"
)

const (
	// A data row has at least code;isin1;isin2;name;nav;date.
	minFields = 6

	fieldCode = 0
	fieldName = 3
	fieldNAV  = 4
	fieldDate = 5

	// assetMultiplier is a fixed placeholder factor, not a real valuation.
	assetMultiplier = 1000
)

var (
	schemeCodePattern = regexp.MustCompile(`^[0-9]+$`)
	navPattern        = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)
)

// Parser turns the raw feed payload into validated FundRecords.
type Parser struct {
	logger *utils.Logger
}

// NewParser creates a Parser with the given logger.
func NewParser(logger *utils.Logger) *Parser {
	return &Parser{logger: logger}
}

// Parse reads the feed line by line and returns the records that pass
// validation. Invalid candidates are dropped from all outputs; only the
// kept/dropped totals are logged.
func (p *Parser) Parse(r io.Reader) ([]models.FundRecord, error) {
	var records []models.FundRecord
	candidates := 0

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		rec, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}
		candidates++
		if rec == nil {
			continue
		}
		records = append(records, *rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("navfeed: read payload: %w", err)
	}

	p.logger.Info("[navfeed] Parsed %d candidates → %d records (dropped %d)",
		candidates, len(records), candidates-len(records))
	return records, nil
}

// parseLine classifies one feed line. The second return value is false
// for non-candidate lines (headers, section titles, blanks); a candidate
// that fails field validation yields (nil, true).
func parseLine(line string) (*models.FundRecord, bool) {
	fields := strings.Split(line, ";")
	if len(fields) < minFields {
		return nil, false
	}
	if !schemeCodePattern.MatchString(strings.TrimSpace(fields[fieldCode])) {
		return nil, false
	}

	code := strings.TrimSpace(fields[fieldCode])
	name := strings.TrimSpace(fields[fieldName])
	nav := strings.TrimSpace(fields[fieldNAV])
	date := strings.TrimSpace(fields[fieldDate])

	if code == "" || name == "" || nav == "" || date == "" {
		return nil, true
	}

	return &models.FundRecord{
		SchemeCode: code,
		SchemeName: name,
		NAV:        nav,
		Date:       date,
		AssetValue: assetValue(nav),
	}, true
}

// assetValue derives nav × 1000 formatted to two decimals, or the "N/A"
// sentinel when nav fails the strict numeric pattern.
func assetValue(nav string) string {
	if !navPattern.MatchString(nav) {
		return models.MissingField
	}
	v, err := strconv.ParseFloat(nav, 64)
	if err != nil {
		return models.MissingField
	}
	return strconv.FormatFloat(v*assetMultiplier, 'f', 2, 64)
}
