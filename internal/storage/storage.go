package storage

import (
	"context"
	"io"
)

// Storage abstracts where uploaded photo files live. The site runs on local
// disk; a bucket backend can be added behind this interface without touching
// the services.
type Storage interface {
	// Save stores a file at the given path
	Save(ctx context.Context, path string, reader io.Reader) error

	// Delete removes a file at the given path. Deleting a missing file is
	// not an error; callers treat removal as best-effort.
	Delete(ctx context.Context, path string) error

	// Exists checks if a file exists at the given path
	Exists(ctx context.Context, path string) (bool, error)

	// URL returns the public URL for the file
	URL(path string) string
}

// Config holds storage configuration.
type Config struct {
	BasePath string // local upload directory
	BaseURL  string // public URL prefix
}
