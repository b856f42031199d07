package storage

import (
	"context"
	"fmt"

	"community-portal-backend/internal/config"
	apperrors "community-portal-backend/internal/errors"
)

// New creates the storage backend selected by STORAGE_DRIVER
func New(ctx context.Context, cfg *config.Config) (Storage, error) {
	switch cfg.StorageDriver {
	case "", "local":
		return NewLocalStorage(cfg.StorageLocalPath)
	case "s3":
		return NewS3Storage(ctx, S3Config{
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
		})
	default:
		return nil, fmt.Errorf("%w: %s (must be 'local' or 's3')", apperrors.ErrUnknownStorageDriver, cfg.StorageDriver)
	}
}
