package models

// MissingField is the placeholder written when a listing sub-element is
// absent from the page.
const MissingField = "N/A"

// Listing holds one classified-ad record scraped from a search results
// page. Every field is optional on the page; absent ones carry
// MissingField rather than dropping the record.
type Listing struct {
	Title       string `json:"title"`
	Price       string `json:"price"`
	Location    string `json:"location"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Link        string `json:"link"`
}
