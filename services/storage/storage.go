package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// CloudinaryStorageService implements StorageService using Cloudinary.
type CloudinaryStorageService struct {
	client    *cloudinary.Cloudinary
	cloudName string
}

// NewStorageService creates a new Cloudinary-backed StorageService.
func NewStorageService(client *cloudinary.Cloudinary, cloudName string) StorageService {
	return &CloudinaryStorageService{
		client:    client,
		cloudName: cloudName,
	}
}

// UploadImage uploads the given image stream into the destination folder and
// returns the secure delivery URL.
func (s *CloudinaryStorageService) UploadImage(ctx context.Context, file io.Reader, folder string) (string, error) {
	overwrite := true
	res, err := s.client.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:    folder,
		PublicID:  uuid.New().String(),
		Overwrite: &overwrite,
	})
	if err != nil {
		return "", fmt.Errorf("storage: failed to upload image: %w", err)
	}
	if res.SecureURL == "" {
		return "", fmt.Errorf("storage: upload returned no URL (error: %s)", res.Error.Message)
	}
	return res.SecureURL, nil
}

// DeleteImage removes an uploaded image by public ID.
func (s *CloudinaryStorageService) DeleteImage(ctx context.Context, publicID string) error {
	_, err := s.client.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("storage: failed to delete image %s: %w", publicID, err)
	}
	return nil
}
