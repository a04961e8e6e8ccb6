// Package storage abstracts object storage for uploaded media.
package storage

import (
	"context"
	"io"
)

// ObjectStore persists uploaded media objects and returns publicly
// reachable URLs.
type ObjectStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
}
