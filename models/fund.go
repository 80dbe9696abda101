package models

// FundRecord is one validated row of the NAV feed. Numeric-looking fields
// stay strings: the feed supplies them as text and the parser validates
// them with pattern checks rather than converting.
type FundRecord struct {
	SchemeCode string `json:"scheme_code"`
	SchemeName string `json:"scheme_name"`
	NAV        string `json:"nav"`
	Date       string `json:"date"`

	// AssetValue is nav × 1000 formatted to two decimals, or "N/A" when
	// nav fails the numeric pattern. A simplified placeholder figure,
	// not a real valuation.
	AssetValue string `json:"asset_value"`
}
