package holiday

import "context"

// Holiday is a public holiday sourced from the external feed (or the static
// fallback table). Read-only; never persisted.
type Holiday struct {
	Date        string `json:"date"` // yyyy-MM-dd
	Name        string `json:"name"`
	LocalName   string `json:"localName"`
	CountryCode string `json:"countryCode"`
}

type Service interface {
	// ListYear returns the public holidays for a year and ISO country
	// code. Feed failures are recovered locally and never surface.
	ListYear(ctx context.Context, year int, countryCode string) ([]Holiday, error)
}
