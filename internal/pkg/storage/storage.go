package storage

import (
	"context"
	"io"
)

type FileStorage interface {
	// Upload stores a file and returns the file path/key
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Delete removes a file
	Delete(ctx context.Context, path string) error

	// List returns the relative paths of files under a prefix
	List(ctx context.Context, prefix string) ([]string, error)

	// GetURL generates a public URL for a stored file
	GetURL(ctx context.Context, path string) (string, error)

	// Exists checks if file exists
	Exists(ctx context.Context, path string) (bool, error)
}
