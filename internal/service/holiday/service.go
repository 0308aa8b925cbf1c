package holiday

import (
	"context"
	"log/slog"

	domain "github.com/worktrace/worktrace-backend-go/internal/domain/holiday"
	"github.com/worktrace/worktrace-backend-go/internal/fixtures"
	"github.com/worktrace/worktrace-backend-go/internal/pkg/holidayapi"
)

type holidayServiceImpl struct {
	client *holidayapi.Client
}

func NewHolidayService(client *holidayapi.Client) domain.Service {
	return &holidayServiceImpl{client: client}
}

// ListYear implements holiday.Service. The feed is best-effort: any
// fetch failure falls back to the static table so the calendar still
// shades holidays while offline.
func (s *holidayServiceImpl) ListYear(ctx context.Context, year int, countryCode string) ([]domain.Holiday, error) {
	holidays, err := s.client.FetchYear(ctx, year, countryCode)
	if err != nil {
		slog.Error("holiday feed unavailable, serving fallback table",
			slog.Int("year", year),
			slog.String("country_code", countryCode),
			slog.Any("error", err),
		)
		return fixtures.FallbackHolidays(year, countryCode), nil
	}
	return holidays, nil
}
