package stats

import (
	"time"

	domain "github.com/worktrace/worktrace-backend-go/internal/domain/stats"
	"github.com/worktrace/worktrace-backend-go/internal/domain/worklog"
	"github.com/worktrace/worktrace-backend-go/internal/pkg/calendar"
)

// Fixed canvas the frontend renders charts onto. Points are emitted in
// canvas coordinates so the client does no math of its own.
const (
	chartWidth   = 800.0
	chartHeight  = 300.0
	chartPadding = 40.0

	// Levels below this still get a 3-step axis so a quiet month does
	// not render as a flat line glued to the top of the canvas.
	chartMinAxisLevel = 3

	chartTickEvery = 5
)

// BuildLineChart lays out one point per day of [start, end] on the fixed
// canvas. Days without an entry sit at level 0.
func BuildLineChart(start, end time.Time, byDate map[string]*worklog.WorkUpdate) *domain.LineChart {
	days := calendar.DaysBetween(start, end)
	if len(days) == 0 {
		return nil
	}

	maxLevel := chartMinAxisLevel
	levels := make([]int, len(days))
	for i, d := range days {
		st := worklog.Classify(byDate[d.Format("2006-01-02")])
		levels[i] = st.Level
		if st.Level > maxLevel {
			maxLevel = st.Level
		}
	}

	innerW := chartWidth - 2*chartPadding
	innerH := chartHeight - 2*chartPadding

	points := make([]domain.ChartPoint, 0, len(days))
	for i, d := range days {
		x := chartPadding
		if len(days) > 1 {
			x = chartPadding + (float64(i)/float64(len(days)-1))*innerW
		}
		y := chartHeight - chartPadding - (float64(levels[i])/float64(maxLevel))*innerH

		points = append(points, domain.ChartPoint{
			Day:   i + 1,
			Date:  d.Format("2006-01-02"),
			Level: levels[i],
			Label: worklog.Classify(byDate[d.Format("2006-01-02")]).Label,
			X:     x,
			Y:     y,
			Tick:  i == 0 || i == len(days)-1 || (i+1)%chartTickEvery == 0,
		})
	}

	return &domain.LineChart{
		Width:    chartWidth,
		Height:   chartHeight,
		Padding:  chartPadding,
		MaxLevel: maxLevel,
		Points:   points,
	}
}

// BuildHeatmap buckets [start, end] into Sunday-start week columns and
// labels the columns where a new month begins.
func BuildHeatmap(start, end time.Time, byDate map[string]*worklog.WorkUpdate) []domain.HeatmapWeek {
	weeks := calendar.WeeksBetween(start, end, time.Sunday)
	out := make([]domain.HeatmapWeek, 0, len(weeks))

	prevMonth := time.Month(0)
	for i, w := range weeks {
		var hw domain.HeatmapWeek
		for slot, day := range w {
			if day == nil {
				hw.Cells[slot] = domain.HeatmapCell{Empty: true}
				continue
			}
			st := worklog.Classify(byDate[day.Format("2006-01-02")])
			hw.Cells[slot] = domain.HeatmapCell{
				Date:  day.Format("2006-01-02"),
				Level: st.Level,
			}
		}

		if first := w.FirstDay(); first != nil {
			if i == 0 || first.Month() != prevMonth {
				hw.MonthLabel = first.Format("Jan")
			}
			prevMonth = first.Month()
		}

		out = append(out, hw)
	}

	return out
}
