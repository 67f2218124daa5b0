package domain

import (
	"context"
	"io"
)

// FileStorage defines the bucket operations the service needs.
// Implemented by S3-compatible storage and the local filesystem.
type FileStorage interface {
	// ListObjects lists keys under prefix. With a non-empty delimiter the
	// first-level common prefixes are returned as Folders.
	ListObjects(ctx context.Context, prefix, delimiter string) (*Listing, error)

	// PutObject uploads body under key, overwriting any existing object
	PutObject(ctx context.Context, key string, body io.Reader, contentType string) error

	// PublicURL returns the path-style public URL of key
	PublicURL(key string) string
}
