package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/example/essence/internal/config"
)

// ErrStorageDisabled is returned when no object storage is configured.
var ErrStorageDisabled = errors.New("object storage is not configured")

// StorageService uploads fragrance pictures to a MinIO bucket.
type StorageService struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

// NewStorageService builds a MinIO-backed storage service. When the
// endpoint is unset the service is disabled and uploads fail with
// ErrStorageDisabled.
func NewStorageService(cfg *config.Config) *StorageService {
	svc := &StorageService{bucket: cfg.MinioBucket, publicURL: cfg.MinioPublicURL}
	if cfg.MinioEndpoint == "" {
		return svc
	}

	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		log.Printf("minio init failed, uploads disabled: %v", err)
		return svc
	}

	svc.client = client
	if svc.publicURL == "" {
		scheme := "http"
		if cfg.MinioUseSSL {
			scheme = "https"
		}
		svc.publicURL = fmt.Sprintf("%s://%s/%s", scheme, cfg.MinioEndpoint, cfg.MinioBucket)
	}

	return svc
}

// UploadPicture stores the file under a random object name and returns
// the public URL.
func (s *StorageService) UploadPicture(ctx context.Context, filename, contentType string, reader io.Reader, size int64) (string, error) {
	if s.client == nil {
		return "", ErrStorageDisabled
	}

	objectName := uuid.New().String() + filepath.Ext(filename)
	_, err := s.client.PutObject(ctx, s.bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}

	return s.publicURL + "/" + objectName, nil
}
