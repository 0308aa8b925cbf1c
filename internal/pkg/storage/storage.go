package storage

import (
	"context"
	"io"
)

// BlobStorage abstracts the image bucket. Paths are bucket-relative keys
// like "work-updates/2026-01-05/1736100000-a1b2c3d4.jpg"; URLs returned by
// PublicURL must resolve for unauthenticated readers.
type BlobStorage interface {
	// Upload stores the blob and returns the normalized path/key.
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Delete removes a blob. A blob that is already gone is not an error.
	Delete(ctx context.Context, path string) error

	// PublicURL returns the public location of a stored blob.
	PublicURL(path string) string
}
