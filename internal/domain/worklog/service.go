package worklog

import (
	"context"
	"time"
)

type Service interface {
	// UpsertForDate saves the entry for a calendar date: updates the
	// existing record when one exists, inserts otherwise. The lookup and
	// the branch are not transactional; the dashboard has one writer.
	UpsertForDate(ctx context.Context, date time.Time, req UpsertRequest) (WorkUpdate, error)

	// FetchRange returns records for [start, end] inclusive, ascending.
	FetchRange(ctx context.Context, start, end time.Time) ([]WorkUpdate, error)

	// List returns every record, newest first.
	List(ctx context.Context) ([]WorkUpdate, error)

	// AddImage uploads the file into the date-namespaced bucket path of the
	// owning record and stores the resulting public URL.
	AddImage(ctx context.Context, req AddImageRequest) (WorkUpdateImage, error)

	// RemoveImage deletes both the stored blob and the metadata row. A blob
	// that is already gone counts as success; a URL that does not resolve
	// to a bucket path aborts with ErrInvalidImageURL and deletes nothing.
	RemoveImage(ctx context.Context, imageID string) error

	ListImages(ctx context.Context, workUpdateID string) ([]WorkUpdateImage, error)
}
