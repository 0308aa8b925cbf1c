package report

import (
	"context"
	"time"
)

// Document is a rendered export ready to stream to the client.
type Document struct {
	Filename    string
	ContentType string
	Data        []byte
}

type Service interface {
	// ExportRange renders every record in [start, end] into a paginated
	// PDF table, sorted ascending by date.
	ExportRange(ctx context.Context, start, end time.Time) (Document, error)
}
