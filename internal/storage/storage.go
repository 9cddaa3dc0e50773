// Package storage wraps the S3-compatible bucket that holds gallery images.
package storage

import (
	"context"
	"io"
	"time"
)

// PutOptions describes an upload. Size is the exact byte count, or -1 when
// unknown so the client falls back to multipart chunking.
type PutOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo is what the gallery needs to know about a stored object.
type ObjectInfo struct {
	Key          string
	Size         int64
	ContentType  string
	LastModified time.Time
}

// Storage is the object store behind the gallery.
type Storage interface {
	Put(ctx context.Context, key string, r io.Reader, opt PutOptions) (ObjectInfo, error)
	// List returns every object whose key starts with prefix.
	List(ctx context.Context, prefix string) ([]ObjectInfo, error)
	Delete(ctx context.Context, key string) error
	// PresignGet returns a download URL valid for expiry without credentials.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}
