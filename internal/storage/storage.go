package storage

import (
	"context"
	"time"
)

// DefaultPresignedURLExpiry bounds how long an upload or download link stays valid.
const DefaultPresignedURLExpiry = 15 * time.Minute

// FileStorage abstracts the object store holding session media files and
// thumbnails.
type FileStorage interface {
	// GeneratePresignedUploadURL creates a temporary URL that allows a PUT
	// request to upload an object directly to the store.
	GeneratePresignedUploadURL(ctx context.Context, objectKey string, contentType string, expires time.Duration) (string, error)

	// GeneratePresignedDownloadURL creates a temporary URL that allows a GET
	// request to fetch an object directly from the store.
	GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error)

	// DeleteObject removes an object from the store.
	DeleteObject(ctx context.Context, objectKey string) error
}
