package report

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worktrace/worktrace-backend-go/internal/domain/worklog"
)

type stubRepo struct {
	updates []worklog.WorkUpdate
	err     error
}

func (s *stubRepo) FetchRange(ctx context.Context, start, end time.Time) ([]worklog.WorkUpdate, error) {
	return s.updates, s.err
}

func (s *stubRepo) GetByDate(ctx context.Context, date time.Time) (*worklog.WorkUpdate, error) {
	return nil, nil
}

func (s *stubRepo) GetByID(ctx context.Context, id string) (worklog.WorkUpdate, error) {
	return worklog.WorkUpdate{}, worklog.ErrWorkUpdateNotFound
}

func (s *stubRepo) ListDescending(ctx context.Context) ([]worklog.WorkUpdate, error) {
	return s.updates, nil
}

func (s *stubRepo) Create(ctx context.Context, u worklog.WorkUpdate) (worklog.WorkUpdate, error) {
	return u, nil
}

func (s *stubRepo) Update(ctx context.Context, u worklog.WorkUpdate) (worklog.WorkUpdate, error) {
	return u, nil
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPlanRows(t *testing.T) {
	rows := planRows([]worklog.WorkUpdate{
		{Date: day(2026, time.January, 5), LeaveType: worklog.LeaveRegular},
		{Date: day(2026, time.February, 2), Description: "reviewed PRs"},
		{Date: day(2026, time.February, 3)},
	})

	require.Len(t, rows, 3)
	assert.Equal(t, row{Date: "2026-01-05", Type: "LEAVE", Description: "Leave day."}, rows[0])
	assert.Equal(t, row{Date: "2026-02-02", Type: "WORK", Description: "reviewed PRs"}, rows[1])
	assert.Equal(t, row{Date: "2026-02-03", Type: "WORK", Description: "No description provided."}, rows[2])
}

func TestExportRange_ProducesDocument(t *testing.T) {
	repo := &stubRepo{updates: []worklog.WorkUpdate{
		{Date: day(2026, time.January, 5), LeaveType: worklog.LeaveRegular},
		{Date: day(2026, time.February, 2), Description: "reviewed PRs"},
	}}
	svc := NewReportService(repo)

	doc, err := svc.ExportRange(context.Background(),
		day(2026, time.January, 1), day(2026, time.February, 28))
	require.NoError(t, err)

	assert.Equal(t, "work-updates-2026-01-to-2026-02.pdf", doc.Filename)
	assert.Equal(t, "application/pdf", doc.ContentType)
	assert.True(t, bytes.HasPrefix(doc.Data, []byte("%PDF")))
}

func TestExportRange_EmptyPeriodStillRenders(t *testing.T) {
	svc := NewReportService(&stubRepo{})

	doc, err := svc.ExportRange(context.Background(),
		day(2026, time.March, 1), day(2026, time.March, 31))
	require.NoError(t, err)
	assert.NotEmpty(t, doc.Data)
	assert.Equal(t, "work-updates-2026-03-to-2026-03.pdf", doc.Filename)
}

func TestExportRange_ManyRowsPaginate(t *testing.T) {
	repo := &stubRepo{}
	for d := day(2026, time.January, 1); d.Year() == 2026; d = d.AddDate(0, 0, 1) {
		repo.updates = append(repo.updates, worklog.WorkUpdate{
			Date:        d,
			Description: "a longer description that wraps across the table column and forces multi-line rows in the rendered output",
		})
	}
	svc := NewReportService(repo)

	doc, err := svc.ExportRange(context.Background(),
		day(2026, time.January, 1), day(2026, time.December, 31))
	require.NoError(t, err)
	// A year of wrapped rows needs well over one page.
	assert.Greater(t, len(doc.Data), 20000)
}

func TestExportRange_RepoFailureSurfaces(t *testing.T) {
	svc := NewReportService(&stubRepo{err: errors.New("store down")})

	_, err := svc.ExportRange(context.Background(),
		day(2026, time.January, 1), day(2026, time.January, 31))
	assert.Error(t, err)
}
