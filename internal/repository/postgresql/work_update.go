package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/worktrace/worktrace-backend-go/internal/domain/worklog"
	"github.com/worktrace/worktrace-backend-go/internal/pkg/database"
)

type workUpdateRepository struct {
	db *database.DB
}

func NewWorkUpdateRepository(db *database.DB) worklog.Repository {
	return &workUpdateRepository{db: db}
}

// leaveFlags maps the domain enum onto the store's three boolean columns.
func leaveFlags(t worklog.LeaveType) (isLeave, sickLeave, casualLeave bool) {
	switch t {
	case worklog.LeaveRegular:
		isLeave = true
	case worklog.LeaveSick:
		sickLeave = true
	case worklog.LeaveCasual:
		casualLeave = true
	}
	return
}

// leaveTypeFromFlags folds the stored booleans back into the enum. Rows
// written by this service never set more than one flag, but legacy rows
// might; the fold applies the leave > sick > casual precedence.
func leaveTypeFromFlags(isLeave, sickLeave, casualLeave bool) worklog.LeaveType {
	switch {
	case isLeave:
		return worklog.LeaveRegular
	case sickLeave:
		return worklog.LeaveSick
	case casualLeave:
		return worklog.LeaveCasual
	default:
		return worklog.LeaveNone
	}
}

func scanWorkUpdate(row pgx.Row) (worklog.WorkUpdate, error) {
	var u worklog.WorkUpdate
	var isLeave, sickLeave, casualLeave bool
	err := row.Scan(
		&u.ID, &u.Date, &u.Description,
		&isLeave, &sickLeave, &casualLeave,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return worklog.WorkUpdate{}, err
	}
	u.LeaveType = leaveTypeFromFlags(isLeave, sickLeave, casualLeave)
	return u, nil
}

const workUpdateColumns = `id, date, description, is_leave, sick_leave, casual_leave, created_at, updated_at`

// FetchRange implements worklog.Repository.
func (r *workUpdateRepository) FetchRange(ctx context.Context, start, end time.Time) ([]worklog.WorkUpdate, error) {
	query := `
		SELECT ` + workUpdateColumns + `
		FROM work_updates
		WHERE date >= $1 AND date <= $2
		ORDER BY date ASC
	`

	rows, err := r.db.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch work updates: %w", err)
	}
	defer rows.Close()

	return collectWorkUpdates(rows)
}

// GetByDate implements worklog.Repository.
func (r *workUpdateRepository) GetByDate(ctx context.Context, date time.Time) (*worklog.WorkUpdate, error) {
	query := `
		SELECT ` + workUpdateColumns + `
		FROM work_updates
		WHERE date = $1
		LIMIT 1
	`

	u, err := scanWorkUpdate(r.db.QueryRow(ctx, query, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get work update by date: %w", err)
	}

	return &u, nil
}

// GetByID implements worklog.Repository.
func (r *workUpdateRepository) GetByID(ctx context.Context, id string) (worklog.WorkUpdate, error) {
	query := `
		SELECT ` + workUpdateColumns + `
		FROM work_updates
		WHERE id = $1
	`

	u, err := scanWorkUpdate(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return worklog.WorkUpdate{}, worklog.ErrWorkUpdateNotFound
		}
		return worklog.WorkUpdate{}, fmt.Errorf("failed to get work update: %w", err)
	}

	return u, nil
}

// ListDescending implements worklog.Repository.
func (r *workUpdateRepository) ListDescending(ctx context.Context) ([]worklog.WorkUpdate, error) {
	query := `
		SELECT ` + workUpdateColumns + `
		FROM work_updates
		ORDER BY date DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list work updates: %w", err)
	}
	defer rows.Close()

	return collectWorkUpdates(rows)
}

// Create implements worklog.Repository.
func (r *workUpdateRepository) Create(ctx context.Context, update worklog.WorkUpdate) (worklog.WorkUpdate, error) {
	isLeave, sickLeave, casualLeave := leaveFlags(update.LeaveType)

	query := `
		INSERT INTO work_updates (date, description, is_leave, sick_leave, casual_leave)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		update.Date,
		update.Description,
		isLeave,
		sickLeave,
		casualLeave,
	).Scan(&update.ID, &update.CreatedAt, &update.UpdatedAt)

	if err != nil {
		return worklog.WorkUpdate{}, fmt.Errorf("failed to create work update: %w", err)
	}

	return update, nil
}

// Update implements worklog.Repository.
func (r *workUpdateRepository) Update(ctx context.Context, update worklog.WorkUpdate) (worklog.WorkUpdate, error) {
	isLeave, sickLeave, casualLeave := leaveFlags(update.LeaveType)

	query := `
		UPDATE work_updates
		SET description = $2, is_leave = $3, sick_leave = $4, casual_leave = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		update.ID,
		update.Description,
		isLeave,
		sickLeave,
		casualLeave,
	).Scan(&update.CreatedAt, &update.UpdatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return worklog.WorkUpdate{}, worklog.ErrWorkUpdateNotFound
		}
		return worklog.WorkUpdate{}, fmt.Errorf("failed to update work update: %w", err)
	}

	return update, nil
}

func collectWorkUpdates(rows pgx.Rows) ([]worklog.WorkUpdate, error) {
	var updates []worklog.WorkUpdate
	for rows.Next() {
		u, err := scanWorkUpdate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan work update: %w", err)
		}
		updates = append(updates, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read work updates: %w", err)
	}
	return updates, nil
}
