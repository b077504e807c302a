package storage

import (
	"context"
	"io"
)

// Storage is the resume storage backend. The local-disk implementation
// covers single-instance deployments; an object-store implementation
// can be dropped in behind the same interface.
type Storage interface {
	// Save writes the content under key and returns the byte count.
	Save(ctx context.Context, key string, r io.Reader) (int64, error)

	// Open returns a reader for the stored content.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// Exists reports whether the key is present and its size.
	Exists(ctx context.Context, key string) (bool, int64, error)

	// Delete removes the stored content. Deleting a missing key is not
	// an error.
	Delete(ctx context.Context, key string) error
}
