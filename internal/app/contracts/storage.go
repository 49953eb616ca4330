package contracts

import (
	"context"
	"time"
)

type StorageService interface {
	UploadObject(ctx context.Context, objectKey string, data []byte, contentType string) error
	GetPresignedURL(ctx context.Context, objectKey string, expiry time.Duration) (string, error)
}
