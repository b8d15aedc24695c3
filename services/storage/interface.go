package storage

import (
	"context"
	"time"
)

// StorageService defines the interface for image storage operations.
// References returned by UploadFile are opaque identifiers; the booking
// ledger stores them without interpreting or validating their contents.
type StorageService interface {
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
	DeleteFile(ctx context.Context, publicID string) error
	GetDownloadURL(ctx context.Context, publicID string, expires time.Duration) (string, error)
}
