package stats

import (
	"context"
	"fmt"
	"time"

	domain "github.com/worktrace/worktrace-backend-go/internal/domain/stats"
	"github.com/worktrace/worktrace-backend-go/internal/domain/worklog"
	"github.com/worktrace/worktrace-backend-go/internal/pkg/calendar"
)

type statsServiceImpl struct {
	repo worklog.Repository
	now  func() time.Time
}

func NewStatsService(repo worklog.Repository) domain.Service {
	return &statsServiceImpl{repo: repo, now: time.Now}
}

// NewStatsServiceWithClock pins the reference clock, for deterministic
// per-month breakdowns in tests.
func NewStatsServiceWithClock(repo worklog.Repository, now func() time.Time) domain.Service {
	return &statsServiceImpl{repo: repo, now: now}
}

// MonthStats implements stats.Service.
func (s *statsServiceImpl) MonthStats(ctx context.Context, year int, month time.Month) (domain.StatsResponse, error) {
	start, end := calendar.MonthBounds(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))

	updates, byDate, err := s.fetch(ctx, start, end)
	if err != nil {
		return domain.StatsResponse{}, err
	}

	return domain.StatsResponse{
		Scope:       domain.ScopeMonth,
		PeriodLabel: start.Format("January 2006"),
		Summary:     Summarize(updates),
		Chart:       BuildLineChart(start, end, byDate),
		Records:     toResponses(updates),
	}, nil
}

// YearStats implements stats.Service.
func (s *statsServiceImpl) YearStats(ctx context.Context, year int) (domain.StatsResponse, error) {
	start, end := calendar.YearBounds(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC))

	updates, byDate, err := s.fetch(ctx, start, end)
	if err != nil {
		return domain.StatsResponse{}, err
	}

	return domain.StatsResponse{
		Scope:       domain.ScopeYear,
		PeriodLabel: start.Format("2006"),
		Summary:     Summarize(updates),
		Heatmap:     BuildHeatmap(start, end, byDate),
		Records:     toResponses(updates),
	}, nil
}

// RangeStats implements stats.Service.
func (s *statsServiceImpl) RangeStats(ctx context.Context, start, end time.Time) (domain.StatsResponse, error) {
	// The range views always show whole months.
	start, _ = calendar.MonthBounds(start)
	_, end = calendar.MonthBounds(end)

	updates, byDate, err := s.fetch(ctx, start, end)
	if err != nil {
		return domain.StatsResponse{}, err
	}

	return domain.StatsResponse{
		Scope:       domain.ScopeRange,
		PeriodLabel: fmt.Sprintf("%s – %s", start.Format("Jan 2006"), end.Format("Jan 2006")),
		Summary:     Summarize(updates),
		Chart:       BuildLineChart(start, end, byDate),
		Heatmap:     BuildHeatmap(start, end, byDate),
		Records:     toResponses(updates),
	}, nil
}

// PerMonthSummary implements stats.Service. Months beyond the reference
// clock are skipped even when rangeEnd reaches past it.
func (s *statsServiceImpl) PerMonthSummary(ctx context.Context, rangeStart, rangeEnd time.Time) ([]domain.MonthSummary, error) {
	rangeStart, _ = calendar.MonthBounds(rangeStart)
	_, rangeEnd = calendar.MonthBounds(rangeEnd)

	_, currentMonthEnd := calendar.MonthBounds(s.now())
	if rangeEnd.After(currentMonthEnd) {
		rangeEnd = currentMonthEnd
	}

	_, byDate, err := s.fetch(ctx, rangeStart, rangeEnd)
	if err != nil {
		return nil, err
	}

	var out []domain.MonthSummary
	for cursor := rangeStart; !cursor.After(rangeEnd); cursor = cursor.AddDate(0, 1, 0) {
		monthStart, monthEnd := calendar.MonthBounds(cursor)

		var monthUpdates []worklog.WorkUpdate
		for d := monthStart; !d.After(monthEnd); d = d.AddDate(0, 0, 1) {
			if u := byDate[d.Format("2006-01-02")]; u != nil {
				monthUpdates = append(monthUpdates, *u)
			}
		}

		sum := Summarize(monthUpdates)
		out = append(out, domain.MonthSummary{
			Month:            int(cursor.Month()),
			Year:             cursor.Year(),
			WorkingDays:      sum.WorkingDays,
			LeaveDays:        sum.LeaveDays,
			SickDays:         sum.SickDays,
			CasualDays:       sum.CasualDays,
			TotalDaysInMonth: calendar.DaysInMonth(cursor),
		})
	}

	return out, nil
}

// Summarize folds a set of entries into aggregate counts. Efficiency is
// the share of logged days spent working, not a share of calendar days.
func Summarize(updates []worklog.WorkUpdate) domain.Summary {
	var sum domain.Summary
	for i := range updates {
		sum.TotalEntries++
		switch worklog.Classify(&updates[i]).Level {
		case worklog.LevelLeave:
			sum.LeaveDays++
		case worklog.LevelSick:
			sum.SickDays++
		case worklog.LevelCasual:
			sum.CasualDays++
		default:
			sum.WorkingDays++
		}
	}
	if sum.TotalEntries > 0 {
		sum.EfficiencyRate = float64(sum.WorkingDays) / float64(sum.TotalEntries) * 100
	}
	return sum
}

func (s *statsServiceImpl) fetch(ctx context.Context, start, end time.Time) ([]worklog.WorkUpdate, map[string]*worklog.WorkUpdate, error) {
	updates, err := s.repo.FetchRange(ctx, start, end)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch entries for stats: %w", err)
	}

	byDate := make(map[string]*worklog.WorkUpdate, len(updates))
	for i := range updates {
		byDate[updates[i].Date.Format("2006-01-02")] = &updates[i]
	}
	return updates, byDate, nil
}

func toResponses(updates []worklog.WorkUpdate) []worklog.WorkUpdateResponse {
	out := make([]worklog.WorkUpdateResponse, 0, len(updates))
	for _, u := range updates {
		out = append(out, worklog.NewWorkUpdateResponse(u))
	}
	return out
}
