package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrObjectNotFound is returned by backends when the requested object does not exist.
var ErrObjectNotFound = errors.New("object not found")

// Backend stores rendered export files.
type Backend interface {
	Save(ctx context.Context, name string, data []byte, contentType string) (string, error)
	Open(ctx context.Context, name string) (io.ReadCloser, int64, error)
	Delete(ctx context.Context, name string) error
}

// Pruner removes stored exports older than a retention period.
type Pruner interface {
	CleanupOlderThan(ctx context.Context, ttl time.Duration) ([]string, error)
}
