package storage

import (
	"bytes"
	"context"
	"mindfit-service/internal/app/contracts"
	"mindfit-service/internal/pkg/exceptions"
	"time"

	"github.com/minio/minio-go/v7"
)

type minioStorageService struct {
	client     *minio.Client
	bucketName string
}

func NewMinioStorageService(client *minio.Client, bucketName string) contracts.StorageService {
	return &minioStorageService{
		client:     client,
		bucketName: bucketName,
	}
}

func (s *minioStorageService) UploadObject(ctx context.Context, objectKey string, data []byte, contentType string) error {
	reader := bytes.NewReader(data)
	_, err := s.client.PutObject(ctx, s.bucketName, objectKey, reader, int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return exceptions.ErrMinioCreateObject(err, s.bucketName)
	}
	return nil
}

func (s *minioStorageService) GetPresignedURL(ctx context.Context, objectKey string, expiry time.Duration) (string, error) {
	presignedURL, err := s.client.PresignedGetObject(ctx, s.bucketName, objectKey, expiry, nil)
	if err != nil {
		return "", exceptions.ErrMinioFindObjectPresignedURL(err, s.bucketName)
	}
	return presignedURL.String(), nil
}
