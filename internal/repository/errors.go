package repository

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

var (
	// ErrDuplicate wraps unique constraint violations.
	ErrDuplicate = errors.New("duplicate entity")
	// ErrInvalidReference wraps foreign key violations.
	ErrInvalidReference = errors.New("referenced entity does not exist")
	// ErrCacheMiss is returned when a cache key is absent.
	ErrCacheMiss = errors.New("cache miss")
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// wrapPQ attaches a sentinel to constraint violations so services can classify them.
func wrapPQ(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation:
			return fmt.Errorf("%s: %w: %w", op, ErrDuplicate, err)
		case pqForeignKeyViolation:
			return fmt.Errorf("%s: %w: %w", op, ErrInvalidReference, err)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
