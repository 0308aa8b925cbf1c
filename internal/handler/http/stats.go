package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/worktrace/worktrace-backend-go/internal/domain/stats"
	"github.com/worktrace/worktrace-backend-go/internal/handler/http/response"
	"github.com/worktrace/worktrace-backend-go/internal/pkg/validator"
)

type StatsHandler interface {
	Stats(w http.ResponseWriter, r *http.Request)
	MonthlySummary(w http.ResponseWriter, r *http.Request)
	Heatmap(w http.ResponseWriter, r *http.Request)
}

type StatsHandlerImpl struct {
	statsService stats.Service
}

func NewStatsHandler(statsService stats.Service) StatsHandler {
	return &StatsHandlerImpl{statsService: statsService}
}

// Stats implements StatsHandler. Dispatches on the scope query param.
func (h *StatsHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var (
		res stats.StatsResponse
		err error
	)
	switch scope := q.Get("scope"); stats.Scope(scope) {
	case stats.ScopeMonth:
		year, month, perr := parseYearMonth(q.Get("year"), q.Get("month"))
		if perr != nil {
			response.HandleError(w, perr)
			return
		}
		res, err = h.statsService.MonthStats(r.Context(), year, month)

	case stats.ScopeYear:
		year, perr := parseYear(q.Get("year"))
		if perr != nil {
			response.HandleError(w, perr)
			return
		}
		res, err = h.statsService.YearStats(r.Context(), year)

	case stats.ScopeRange:
		start, end, perr := parseMonthRange(q.Get("start"), q.Get("end"))
		if perr != nil {
			response.HandleError(w, perr)
			return
		}
		res, err = h.statsService.RangeStats(r.Context(), start, end)

	default:
		response.BadRequest(w, "scope must be one of month, year, range", nil)
		return
	}

	if err != nil {
		slog.Error("Stats service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, res)
}

// MonthlySummary implements StatsHandler. Chronological in the service,
// reversed here so the newest month leads the table.
func (h *StatsHandlerImpl) MonthlySummary(w http.ResponseWriter, r *http.Request) {
	start, end, perr := parseMonthRange(r.URL.Query().Get("start"), r.URL.Query().Get("end"))
	if perr != nil {
		response.HandleError(w, perr)
		return
	}

	summaries, err := h.statsService.PerMonthSummary(r.Context(), start, end)
	if err != nil {
		slog.Error("MonthlySummary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	for i, j := 0, len(summaries)-1; i < j; i, j = i+1, j-1 {
		summaries[i], summaries[j] = summaries[j], summaries[i]
	}
	response.Success(w, summaries)
}

// Heatmap implements StatsHandler. Serves the year grid, or a range grid
// when start and end are given.
func (h *StatsHandlerImpl) Heatmap(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var (
		res stats.StatsResponse
		err error
	)
	if q.Get("start") != "" || q.Get("end") != "" {
		start, end, perr := parseMonthRange(q.Get("start"), q.Get("end"))
		if perr != nil {
			response.HandleError(w, perr)
			return
		}
		res, err = h.statsService.RangeStats(r.Context(), start, end)
	} else {
		year, perr := parseYear(q.Get("year"))
		if perr != nil {
			response.HandleError(w, perr)
			return
		}
		res, err = h.statsService.YearStats(r.Context(), year)
	}

	if err != nil {
		slog.Error("Heatmap service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, res.Heatmap)
}

func parseYear(raw string) (int, error) {
	year, err := strconv.Atoi(raw)
	if err != nil || year < 1970 || year > 9999 {
		return 0, validator.ValidationErrors{{
			Field:   "year",
			Message: "year must be a four-digit year",
		}}
	}
	return year, nil
}

func parseYearMonth(yearRaw, monthRaw string) (int, time.Month, error) {
	year, err := parseYear(yearRaw)
	if err != nil {
		return 0, 0, err
	}
	month, merr := strconv.Atoi(monthRaw)
	if merr != nil || month < 1 || month > 12 {
		return 0, 0, validator.ValidationErrors{{
			Field:   "month",
			Message: "month must be 1-12",
		}}
	}
	return year, time.Month(month), nil
}

// parseMonthRange accepts yyyy-MM month stamps.
func parseMonthRange(startRaw, endRaw string) (time.Time, time.Time, error) {
	var errs validator.ValidationErrors
	start, startOK := validator.IsValidMonth(startRaw)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start", Message: "start must be formatted yyyy-MM"})
	}
	end, endOK := validator.IsValidMonth(endRaw)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end", Message: "end must be formatted yyyy-MM"})
	}
	if len(errs) > 0 {
		return time.Time{}, time.Time{}, errs
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, validator.ValidationErrors{{
			Field:   "end",
			Message: "end must not precede start",
		}}
	}
	return start, end, nil
}
