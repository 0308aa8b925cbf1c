package stats

import (
	"github.com/worktrace/worktrace-backend-go/internal/domain/worklog"
)

// Scope names the temporal window an aggregation is computed over.
type Scope string

const (
	ScopeMonth Scope = "month"
	ScopeYear  Scope = "year"
	ScopeRange Scope = "range"
)

// Summary holds the aggregate counts for one scope.
type Summary struct {
	TotalEntries   int     `json:"total_entries"`
	WorkingDays    int     `json:"working_days"`
	LeaveDays      int     `json:"leave_days"`
	SickDays       int     `json:"sick_days"`
	CasualDays     int     `json:"casual_days"`
	EfficiencyRate float64 `json:"efficiency_rate"`
}

// MonthSummary is one row of the per-month breakdown over a range.
type MonthSummary struct {
	Month            int `json:"month"` // 1-12
	Year             int `json:"year"`
	WorkingDays      int `json:"working_days"`
	LeaveDays        int `json:"leave_days"`
	SickDays         int `json:"sick_days"`
	CasualDays       int `json:"casual_days"`
	TotalDaysInMonth int `json:"total_days_in_month"`
}

// HeatmapCell is one slot of the contribution grid. Empty marks padding
// slots outside the requested range.
type HeatmapCell struct {
	Date  string `json:"date,omitempty"` // yyyy-MM-dd, empty for padding
	Level int    `json:"level"`
	Empty bool   `json:"empty,omitempty"`
}

// HeatmapWeek is one 7-slot column of the grid. MonthLabel is set on the
// first week of the grid and on every week whose first day starts a new
// month relative to the previous week.
type HeatmapWeek struct {
	Cells      [7]HeatmapCell `json:"cells"`
	MonthLabel string         `json:"month_label,omitempty"`
}

// ChartPoint is one normalized point of the bar/line chart geometry.
type ChartPoint struct {
	Day   int     `json:"day"` // 1-based index within the window
	Date  string  `json:"date"`
	Level int     `json:"level"`
	Label string  `json:"label"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Tick  bool    `json:"tick"` // axis label rendered for this point
}

// LineChart is the full geometry for a month or range chart on a fixed
// canvas.
type LineChart struct {
	Width    float64      `json:"width"`
	Height   float64      `json:"height"`
	Padding  float64      `json:"padding"`
	MaxLevel int          `json:"max_level"`
	Points   []ChartPoint `json:"points"`
}

// StatsResponse is the combined payload for one stats view.
type StatsResponse struct {
	Scope       Scope                        `json:"scope"`
	PeriodLabel string                       `json:"period_label"`
	Summary     Summary                      `json:"summary"`
	Chart       *LineChart                   `json:"chart,omitempty"`
	Heatmap     []HeatmapWeek                `json:"heatmap,omitempty"`
	Records     []worklog.WorkUpdateResponse `json:"records,omitempty"`
}
