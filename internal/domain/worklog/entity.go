package worklog

import (
	"time"
)

// LeaveType tags a work update as a leave day. A day is either a work day
// (LeaveNone) or exactly one leave kind; modelling this as a single enum
// makes the mutual exclusivity of the old is_leave/sick_leave/casual_leave
// flags an invariant of the type instead of a UI convention.
type LeaveType string

const (
	LeaveNone    LeaveType = "none"
	LeaveRegular LeaveType = "leave"
	LeaveSick    LeaveType = "sick"
	LeaveCasual  LeaveType = "casual"
)

// Valid reports whether t is one of the known leave types.
func (t LeaveType) Valid() bool {
	switch t {
	case LeaveNone, LeaveRegular, LeaveSick, LeaveCasual:
		return true
	}
	return false
}

// IsLeave reports whether the type represents any kind of leave day.
func (t LeaveType) IsLeave() bool {
	return t == LeaveRegular || t == LeaveSick || t == LeaveCasual
}

// WorkUpdate is one work-log entry for a specific calendar date. At most one
// exists per date; the date's time-of-day component is always ignored.
type WorkUpdate struct {
	ID          string
	Date        time.Time
	Description string
	LeaveType   LeaveType
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// WorkUpdateImage is an image attached to a work update. Images are deleted
// individually and never cascade to the parent entry.
type WorkUpdateImage struct {
	ID           string
	WorkUpdateID string
	ImageURL     string
	CreatedAt    time.Time
}
