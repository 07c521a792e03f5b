// Package blob provides a unified interface for byte-addressable object
// storage, keyed by a flat string key.
//
// Supported backends:
//   - Local filesystem
//   - In-memory (tests)
//
// Features:
//   - Pluggable adapters behind a single Store interface
//   - Instrumented wrapper for logging and tracing
package blob

import (
	"context"
	"io"
)

// Config holds configuration for a blob store.
type Config struct {
	// LocalDir is the filesystem root used by the local adapter.
	LocalDir string `env:"BLOB_LOCAL_DIR" env-default:"./archive/data"`
}

// Store defines the interface for byte-addressable object storage.
type Store interface {
	// Upload writes the contents of r under key, overwriting any existing
	// object at that key.
	Upload(ctx context.Context, key string, r io.Reader) error

	// Download returns a reader over the object stored at key. Callers
	// must close the returned reader. Returns an AppError with
	// errors.CodeNotFound if key does not exist.
	Download(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes the object stored at key. Returns an AppError with
	// errors.CodeNotFound if key does not exist.
	Delete(ctx context.Context, key string) error
}
