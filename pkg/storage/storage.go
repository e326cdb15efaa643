package storage

import "context"

// ObjectStore abstracts the avatar bucket. Keys are bucket-relative
// paths ("<profileID>/<filename>"); Upload returns the publicly
// resolvable URL for the stored object.
type ObjectStore interface {
	Upload(ctx context.Context, key, contentType string, data []byte) (string, error)
	Delete(ctx context.Context, key string) error
	// KeyFromURL recovers the object key from a previously issued
	// public URL, or "" when the URL does not belong to this store.
	KeyFromURL(publicURL string) string
}
