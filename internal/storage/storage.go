// Package storage defines the Storage interface for forum attachment files and
// provides local filesystem and S3-compatible backends.
package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

//go:generate mockgen -source=storage.go -destination=../mocks/storage_mocks.go -package=mocks

// ErrNotFound is returned when no object is stored at the requested path
var ErrNotFound = errors.New("file not found")

// Storage defines the interface for all storage backends
type Storage interface {
	// Put stores the content read from reader at path
	Put(ctx context.Context, path string, reader io.Reader, size int64, contentType string) error

	// Open returns a reader for the file at path; callers must close it
	Open(ctx context.Context, path string) (io.ReadCloser, error)

	// Exists checks if a file exists at the specified path
	Exists(ctx context.Context, path string) (bool, error)

	// Delete removes a file. Deleting a missing file is not an error.
	Delete(ctx context.Context, path string) error

	// Stat retrieves file metadata without reading the content
	Stat(ctx context.Context, path string) (*FileInfo, error)
}

// FileInfo contains metadata about a stored file
type FileInfo struct {
	Path         string
	Size         int64
	ContentType  string
	LastModified time.Time
}
