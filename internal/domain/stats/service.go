package stats

import (
	"context"
	"time"
)

type Service interface {
	// MonthStats aggregates one calendar month and builds its line chart.
	MonthStats(ctx context.Context, year int, month time.Month) (StatsResponse, error)

	// YearStats aggregates a full year and builds its heatmap grid.
	YearStats(ctx context.Context, year int) (StatsResponse, error)

	// RangeStats aggregates an arbitrary multi-month range; the window is
	// widened to whole months, matching the range views.
	RangeStats(ctx context.Context, start, end time.Time) (StatsResponse, error)

	// PerMonthSummary iterates calendar months from rangeStart up through
	// the month containing the service's reference clock, chronologically.
	// Display-order reversal is the caller's concern.
	PerMonthSummary(ctx context.Context, rangeStart, rangeEnd time.Time) ([]MonthSummary, error)
}
