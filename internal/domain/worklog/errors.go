package worklog

import "errors"

// Work-log domain errors
var (
	ErrWorkUpdateNotFound = errors.New("work update not found")
	ErrImageNotFound      = errors.New("image not found")
	ErrInvalidImageURL    = errors.New("image URL does not point into the work-updates bucket")

	// ErrImageMetadataOrphaned signals a partial failure: the blob was
	// removed but the metadata row could not be deleted.
	ErrImageMetadataOrphaned = errors.New("image blob deleted but metadata removal failed")
)
