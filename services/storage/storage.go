package storage

import (
	"context"
	"fmt"
	"time"

	"turfbook/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStorage implements StorageService using Cloudinary.
type CloudinaryStorage struct {
	cld       *cloudinary.Cloudinary
	cloudName string
}

// NewCloudinaryStorage initializes a Cloudinary-backed StorageService
// from the application configuration.
func NewCloudinaryStorage() (StorageService, error) {
	cfg := config.AppConfig
	if cfg.CloudinaryCloudName == "" || cfg.CloudinaryAPIKey == "" || cfg.CloudinaryAPISecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}

	cld, err := cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}
	return &CloudinaryStorage{cld: cld, cloudName: cfg.CloudinaryCloudName}, nil
}

// UploadFile uploads a file into the specified folder and returns the
// permanent public identifier.
func (s *CloudinaryStorage) UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error) {
	result, err := s.cld.Upload.Upload(ctx, localFilePath, uploader.UploadParams{Folder: destFolder})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}
	if result.PublicID == "" {
		return "", fmt.Errorf("no public ID returned for uploaded file")
	}
	return result.PublicID, nil
}

// DeleteFile deletes a file given its public ID.
func (s *CloudinaryStorage) DeleteFile(ctx context.Context, publicID string) error {
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("failed to delete file %s: %w", publicID, err)
	}
	return nil
}

// GetDownloadURL constructs a public URL for an uploaded image.
func (s *CloudinaryStorage) GetDownloadURL(ctx context.Context, publicID string, expires time.Duration) (string, error) {
	img, err := s.cld.Image(publicID)
	if err != nil {
		return "", fmt.Errorf("failed to get asset %s: %w", publicID, err)
	}
	url, err := img.String()
	if err != nil {
		return "", fmt.Errorf("failed to build URL for %s: %w", publicID, err)
	}
	return url, nil
}
