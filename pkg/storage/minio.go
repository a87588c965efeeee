package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/tbcare/screening-api/pkg/config"
)

// MinioStorage keeps exports in an S3-compatible bucket.
type MinioStorage struct {
	client *minio.Client
	bucket string
}

// NewMinioStorage constructs a MinIO-backed store from config.
func NewMinioStorage(cfg config.MinioConfig) (*MinioStorage, error) {
	if strings.TrimSpace(cfg.Endpoint) == "" {
		return nil, errors.New("minio endpoint is required")
	}
	if strings.TrimSpace(cfg.AccessKey) == "" || strings.TrimSpace(cfg.SecretKey) == "" {
		return nil, errors.New("minio access key and secret key are required")
	}
	if strings.TrimSpace(cfg.Bucket) == "" {
		return nil, errors.New("minio bucket is required")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, err
	}

	return &MinioStorage{client: client, bucket: cfg.Bucket}, nil
}

// EnsureBucket creates the configured bucket when missing.
func (m *MinioStorage) EnsureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{})
}

// Save uploads data under name.
func (m *MinioStorage) Save(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	_, err := m.client.PutObject(ctx, m.bucket, name, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return name, nil
}

// Open returns a reader for the object and its size. The caller closes the reader.
func (m *MinioStorage) Open(ctx context.Context, name string) (io.ReadCloser, int64, error) {
	obj, err := m.client.GetObject(ctx, m.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, 0, err
	}
	info, err := obj.Stat()
	if err != nil {
		_ = obj.Close()
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, 0, ErrObjectNotFound
		}
		return nil, 0, err
	}
	return obj, info.Size, nil
}

// Delete removes the object.
func (m *MinioStorage) Delete(ctx context.Context, name string) error {
	return m.client.RemoveObject(ctx, m.bucket, name, minio.RemoveObjectOptions{})
}

// CleanupOlderThan removes objects last modified before now minus ttl.
func (m *MinioStorage) CleanupOlderThan(ctx context.Context, ttl time.Duration) ([]string, error) {
	cutoff := time.Now().Add(-ttl)
	deleted := make([]string, 0)
	for obj := range m.client.ListObjects(ctx, m.bucket, minio.ListObjectsOptions{Recursive: true}) {
		if obj.Err != nil {
			return deleted, obj.Err
		}
		if obj.LastModified.After(cutoff) {
			continue
		}
		if err := m.client.RemoveObject(ctx, m.bucket, obj.Key, minio.RemoveObjectOptions{}); err != nil {
			return deleted, err
		}
		deleted = append(deleted, obj.Key)
	}
	return deleted, nil
}
