// Package objectstore wraps the S3-compatible backend that stores profile
// photos behind a small capability interface, so services never touch the
// AWS SDK directly.
package objectstore

import (
	"context"
	"io"
)

// Client is the capability the photo workflow needs from object storage.
type Client interface {
	// Put uploads body under key, overwriting any existing object.
	Put(ctx context.Context, key string, body io.Reader) error

	// Delete removes key. Deleting a key that does not exist returns an
	// error for which IsNotFound reports true.
	Delete(ctx context.Context, key string) error

	// IsNotFound reports whether err from Delete means the key was absent.
	IsNotFound(err error) bool
}
