package worklog

import (
	"context"
	"time"
)

// Repository defines data access for work updates. There is no delete: the
// normal flow only ever creates a record for a date and mutates it in place.
type Repository interface {
	// FetchRange retrieves work updates whose date falls within
	// [start, end], both inclusive, ordered ascending by date.
	FetchRange(ctx context.Context, start, end time.Time) ([]WorkUpdate, error)

	// GetByDate retrieves the record for a calendar day, nil when absent.
	// Used by the upsert path's lookup-before-insert.
	GetByDate(ctx context.Context, date time.Time) (*WorkUpdate, error)

	// GetByID retrieves a record by id.
	GetByID(ctx context.Context, id string) (WorkUpdate, error)

	// ListDescending retrieves all work updates, newest first, for the
	// dashboard listing.
	ListDescending(ctx context.Context) ([]WorkUpdate, error)

	Create(ctx context.Context, update WorkUpdate) (WorkUpdate, error)
	Update(ctx context.Context, update WorkUpdate) (WorkUpdate, error)
}

// ImageRepository defines data access for image attachments.
type ImageRepository interface {
	Create(ctx context.Context, image WorkUpdateImage) (WorkUpdateImage, error)
	GetByID(ctx context.Context, id string) (WorkUpdateImage, error)
	ListByWorkUpdate(ctx context.Context, workUpdateID string) ([]WorkUpdateImage, error)
	Delete(ctx context.Context, id string) error
}
