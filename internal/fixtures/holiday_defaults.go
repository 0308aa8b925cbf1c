package fixtures

import (
	"fmt"

	"github.com/worktrace/worktrace-backend-go/internal/domain/holiday"
)

// ==========================================
// HOLIDAY FALLBACK DATA
// ==========================================

// Static public-holiday tables used when the external feed is unreachable
// or returns garbage. Only the gazetted national holidays are listed; the
// dashboard shows them informationally, nothing cross-references them.

type fallbackHoliday struct {
	Date      string // MM-dd
	Name      string
	LocalName string
}

var indiaHolidays = []fallbackHoliday{
	{"01-26", "Republic Day", "गणतन्त्र दिवस"},
	{"05-01", "Labour Day", "श्रमिक दिन"},
	{"08-15", "Independence Day", "स्वतन्त्रता दिवस"},
	{"10-02", "Gandhi Jayanti", "गांधी जयंती"},
	{"12-25", "Christmas Day", "क्रिसमस"},
}

var fallbackByCountry = map[string][]fallbackHoliday{
	"IN": indiaHolidays,
}

// FallbackHolidays returns the static holiday table for a country and year.
// Returns an empty slice for countries without a table, so callers can
// treat missing fixtures the same as an empty feed result.
func FallbackHolidays(year int, countryCode string) []holiday.Holiday {
	table, ok := fallbackByCountry[countryCode]
	if !ok {
		return []holiday.Holiday{}
	}

	holidays := make([]holiday.Holiday, 0, len(table))
	for _, h := range table {
		holidays = append(holidays, holiday.Holiday{
			Date:        fmt.Sprintf("%d-%s", year, h.Date),
			Name:        h.Name,
			LocalName:   h.LocalName,
			CountryCode: countryCode,
		})
	}
	return holidays
}
