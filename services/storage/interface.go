package storage

import (
	"context"
	"io"
)

// StorageService defines the interface for image storage operations.
type StorageService interface {
	// UploadImage streams an image to the storage backend and returns its public URL.
	UploadImage(ctx context.Context, file io.Reader, folder string) (string, error)
	// DeleteImage removes a previously uploaded image by its public ID.
	DeleteImage(ctx context.Context, publicID string) error
}
