package service

import "context"

// MediaStore abstracts the binary object storage used for uploaded images.
type MediaStore interface {
	// Upload stores data under key with the given content type.
	Upload(ctx context.Context, key string, contentType string, data []byte) error

	// PublicURL returns the publicly resolvable URL for a stored key.
	PublicURL(key string) string

	// Close releases any resources held by the store.
	Close() error
}
